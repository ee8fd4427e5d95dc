package pathkit

import (
	"strconv"
	"strings"
)

// PathElement represents a single element in a curve description.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a renderable curve description: an ordered sequence of move,
// line, and Bezier elements. It is what the curve generators produce
// and what measurers consume; the concrete stroke entity is [PathData].
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	ctrl1 := Pt(c1x, c1y)
	ctrl2 := Pt(c2x, c2y)
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: ctrl1,
		Control2: ctrl2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// SVGString renders the path as an SVG path-data string, e.g.
// "M 0 0 L 10 0 Q 10 5 10 10".
func (p *Path) SVGString() string {
	var b strings.Builder
	for i, elem := range p.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			b.WriteString("M ")
			writeCoords(&b, e.Point)
		case LineTo:
			b.WriteString("L ")
			writeCoords(&b, e.Point)
		case QuadTo:
			b.WriteString("Q ")
			writeCoords(&b, e.Control)
			b.WriteByte(' ')
			writeCoords(&b, e.Point)
		case CubicTo:
			b.WriteString("C ")
			writeCoords(&b, e.Control1)
			b.WriteByte(' ')
			writeCoords(&b, e.Control2)
			b.WriteByte(' ')
			writeCoords(&b, e.Point)
		case Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func writeCoords(b *strings.Builder, p Point) {
	b.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
	b.WriteByte(' ')
	b.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
}
