package pathkit

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Text paths are geometry-inert, but hit-testing and selection still
// need their rendered extent. TextMeasurer shapes the text with
// HarfBuzz (via go-text/typesetting) when a font face has been
// provided; without one it falls back to an average character width and
// height heuristic rather than failing, mirroring how baking degrades
// when its rendering collaborator is unavailable.

// Heuristic glyph metrics relative to the font size, used when no font
// face is available.
const (
	heuristicAdvance    = 0.6
	heuristicLineHeight = 1.2
)

// defaultFontSize applies when a text path does not declare a size.
const defaultFontSize = 16.0

// TextMeasurer measures text-path extents.
//
// TextMeasurer is safe for concurrent use: the parsed font.Font is
// read-only, and the HarfbuzzShaper instances are pooled since they are
// not concurrent-safe.
type TextMeasurer struct {
	shaperPool sync.Pool

	mu       sync.RWMutex
	textFont *font.Font
}

// NewTextMeasurer creates a measurer with no font face; it measures by
// heuristic until [TextMeasurer.SetFontFace] succeeds.
func NewTextMeasurer() *TextMeasurer {
	return &TextMeasurer{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// SetFontFace parses TTF/OTF font data and uses it for subsequent
// measurements. Passing nil clears the face, restoring the heuristic.
func (tm *TextMeasurer) SetFontFace(ttf []byte) error {
	if ttf == nil {
		tm.mu.Lock()
		tm.textFont = nil
		tm.mu.Unlock()
		return nil
	}
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return err
	}
	tm.mu.Lock()
	tm.textFont = face.Font
	tm.mu.Unlock()
	return nil
}

// TextBounds returns the rendered extent of a text path, anchored at
// its first point (or the origin when it has none). Non-text paths and
// empty text yield the path's point bounds.
func (tm *TextMeasurer) TextBounds(pd PathData) Rect {
	if pd.Kind != KindText || pd.Text == "" {
		return BoundingBox(pd.Points)
	}
	size := pd.FontSize
	if size <= 0 {
		size = defaultFontSize
	}

	var origin Point
	if len(pd.Points) > 0 {
		origin = pd.Points[0]
	}

	w, h, ok := tm.shapedExtent(pd.Text, size)
	if !ok {
		runes := []rune(pd.Text)
		w = heuristicAdvance * size * float64(len(runes))
		h = heuristicLineHeight * size
	}
	return Rect{X: origin.X, Y: origin.Y, W: w, H: h}
}

// shapedExtent shapes the text and returns its advance width and line
// height. ok is false when no font face is set.
func (tm *TextMeasurer) shapedExtent(text string, size float64) (w, h float64, ok bool) {
	tm.mu.RLock()
	textFont := tm.textFont
	tm.mu.RUnlock()
	if textFont == nil {
		return 0, 0, false
	}

	// font.Face is not safe for concurrent use; wrap the shared
	// read-only Font per call. font.NewFace is cheap.
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(textFont),
		Size:      fixed.Int26_6(size * 64),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}

	shaper := tm.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	tm.shaperPool.Put(shaper)

	w = float64(output.Advance) / 64.0
	h = float64(output.LineBounds.Ascent-output.LineBounds.Descent) / 64.0
	return w, h, true
}

// defaultTextMeasurer backs the package-level helpers.
var defaultTextMeasurer = NewTextMeasurer()

// SetFontFace configures the font used by [TextBounds].
func SetFontFace(ttf []byte) error {
	return defaultTextMeasurer.SetFontFace(ttf)
}

// TextBounds measures a text path with the package-level measurer.
func TextBounds(pd PathData) Rect {
	return defaultTextMeasurer.TextBounds(pd)
}
