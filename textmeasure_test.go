package pathkit

import "testing"

func TestTextBounds_Heuristic(t *testing.T) {
	tm := NewTextMeasurer()

	pd := PathData{
		ID:       "t",
		Kind:     KindText,
		Text:     "hello",
		FontSize: 20,
		Points:   []Point{{100, 50}},
	}
	got := tm.TextBounds(pd)
	want := Rect{X: 100, Y: 50, W: 0.6 * 20 * 5, H: 1.2 * 20}
	if !rectApproxEqual(got, want) {
		t.Errorf("TextBounds = %+v, want %+v", got, want)
	}
}

func TestTextBounds_DefaultFontSize(t *testing.T) {
	tm := NewTextMeasurer()

	pd := PathData{ID: "t", Kind: KindText, Text: "ab"}
	got := tm.TextBounds(pd)
	want := Rect{W: 0.6 * 16 * 2, H: 1.2 * 16}
	if !rectApproxEqual(got, want) {
		t.Errorf("TextBounds = %+v, want %+v (default size 16)", got, want)
	}
}

func TestTextBounds_CountsRunesNotBytes(t *testing.T) {
	tm := NewTextMeasurer()

	pd := PathData{ID: "t", Kind: KindText, Text: "héllo", FontSize: 10}
	got := tm.TextBounds(pd)
	if want := 0.6 * 10 * 5; !approxEqual(got.W, want) {
		t.Errorf("width = %v, want %v for 5 runes", got.W, want)
	}
}

func TestTextBounds_NonTextPath(t *testing.T) {
	tm := NewTextMeasurer()

	pd := NewPathData([]Point{{0, 0}, {10, 5}}, 0)
	got := tm.TextBounds(pd)
	if got != (Rect{0, 0, 10, 5}) {
		t.Errorf("TextBounds = %+v, want the point bounds", got)
	}

	empty := PathData{ID: "t", Kind: KindText, Points: []Point{{3, 4}}}
	if got := tm.TextBounds(empty); got != (Rect{X: 3, Y: 4}) {
		t.Errorf("empty text bounds = %+v, want degenerate point box", got)
	}
}

func TestSetFontFace_BadData(t *testing.T) {
	tm := NewTextMeasurer()
	if err := tm.SetFontFace([]byte("not a font")); err == nil {
		t.Error("SetFontFace accepted junk data")
	}
	if err := tm.SetFontFace(nil); err != nil {
		t.Errorf("clearing the face failed: %v", err)
	}
}
