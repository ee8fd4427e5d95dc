package pathkit

import (
	"github.com/google/uuid"
)

// PathKind distinguishes geometric paths from text paths.
type PathKind int

const (
	// KindPath is a regular geometric path.
	KindPath PathKind = iota

	// KindText is a text path. Text paths are geometry-inert: the
	// eraser, boolean, offset, and baking operations pass them through
	// unchanged.
	KindText
)

// PathData is the central stroke entity of the kernel: an ordered point
// sequence plus rendering attributes.
//
// Points is the draw order and defines segment adjacency. When
// Smoothing is zero the sequence is the literal, final polyline
// ("baked"); when positive it is a sparse skeleton that a curve
// generator expands before rendering or geometric editing.
//
// PathData is an owned value: kernel operations never mutate their
// input, they return new values (see [PathData.Clone]).
type PathData struct {
	// ID is an opaque unique identifier.
	ID string

	// Kind is KindPath or KindText.
	Kind PathKind

	// Points is the ordered point sequence. Fewer than 2 points means
	// no renderable geometry.
	Points []Point

	// Smoothing controls curve fitting. 0 means the points are final.
	Smoothing float64

	// Rendering attributes, opaque to the geometry algorithms.
	Color       string
	FillColor   string
	StrokeWidth float64
	Style       string

	// Text content and size, meaningful only for KindText.
	Text     string
	FontSize float64
}

// NewPathData creates a geometric path with a fresh id.
func NewPathData(points []Point, smoothing float64) PathData {
	return PathData{
		ID:          uuid.NewString(),
		Kind:        KindPath,
		Points:      points,
		Smoothing:   smoothing,
		Color:       "#000000",
		StrokeWidth: 2,
	}
}

// Clone returns a deep copy of the path with the same id.
func (pd PathData) Clone() PathData {
	out := pd
	out.Points = make([]Point, len(pd.Points))
	copy(out.Points, pd.Points)
	return out
}

// cloneWithID deep-copies the path under a fresh derived id,
// keeping all rendering attributes.
func (pd PathData) cloneWithID(id string) PathData {
	out := pd.Clone()
	out.ID = id
	return out
}

// Baked reports whether the point sequence is final.
func (pd PathData) Baked() bool {
	return pd.Smoothing == 0
}

// derivedID builds a new id from a source id plus a short random
// suffix, used by operations that split one path into several.
func derivedID(src string) string {
	return src + "-" + uuid.NewString()[:8]
}
