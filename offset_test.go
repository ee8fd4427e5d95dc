package pathkit

import "testing"

func TestOffsetPath_OutwardGrowsArea(t *testing.T) {
	sq := NewPathData(squareRing(0, 0, 1), 0)
	res := OffsetPath(sq, 1)

	got := ringArea(res.Points)
	if got <= 1 {
		t.Fatalf("offset area = %v, want > 1", got)
	}
	// Each corner moves out along its diagonal by the miter length
	// 1/sqrt(0.501), giving a square of side roughly 3.
	if got < 8.9 || got > 9.1 {
		t.Errorf("offset area = %v, want about 8.99", got)
	}
	if res.Smoothing != 0 {
		t.Errorf("Smoothing = %v, want 0", res.Smoothing)
	}
	if res.ID == sq.ID {
		t.Error("offset kept the source id")
	}
	if first, last := res.Points[0], res.Points[len(res.Points)-1]; first != last {
		t.Errorf("result ring not closed: %v .. %v", first, last)
	}
}

func TestOffsetPath_InwardShrinksArea(t *testing.T) {
	sq := NewPathData(squareRing(0, 0, 10), 0)
	res := OffsetPath(sq, -1)
	got := ringArea(res.Points)
	if got >= 100 || got <= 0 {
		t.Errorf("contracted area = %v, want inside (0, 100)", got)
	}
}

func TestOffsetPath_WindingIndependent(t *testing.T) {
	cw := NewPathData(reversePoints(squareRing(0, 0, 1)), 0)
	res := OffsetPath(cw, 1)
	if got := ringArea(res.Points); got <= 1 {
		t.Errorf("clockwise input: offset area = %v, want > 1", got)
	}
}

func TestOffsetPath_PassThrough(t *testing.T) {
	line := NewPathData([]Point{{0, 0}, {10, 0}}, 0)
	if got := OffsetPath(line, 5); got.ID != line.ID {
		t.Error("2-point path was offset")
	}

	sq := NewPathData(squareRing(0, 0, 1), 0)
	if got := OffsetPath(sq, 0); got.ID != sq.ID {
		t.Error("zero distance changed the path")
	}

	text := PathData{ID: "t", Kind: KindText, Text: "hi",
		Points: []Point{{0, 0}, {1, 0}, {1, 1}}}
	if got := OffsetPath(text, 5); got.ID != "t" {
		t.Error("text path was offset")
	}
}
