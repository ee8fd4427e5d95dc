package pathkit

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/net/html/charset"

	"github.com/gogpu/pathkit/internal/svgpath"
)

// SVG import: parses external vector markup into the kernel's native
// path representation. Every geometry element is sampled through the
// same arc-length collaborator as baking, so imported outlines are
// baked polylines from the start.

// ImportOption configures a ParseSVG call.
type ImportOption func(*importOptions)

type importOptions struct {
	measurer Measurer
}

// WithImportMeasurer injects the arc-length sampling collaborator used
// to trace element outlines. Passing nil keeps the built-in
// [FlattenMeasure].
func WithImportMeasurer(m Measurer) ImportOption {
	return func(o *importOptions) {
		if m != nil {
			o.measurer = m
		}
	}
}

// svgStyle carries the resolved presentation attributes of an element.
type svgStyle struct {
	stroke      string
	fill        string
	strokeWidth float64
}

// defaultSVGStyle is black stroke, no fill, width 1.
func defaultSVGStyle() svgStyle {
	return svgStyle{stroke: "#000000", fill: "", strokeWidth: 1}
}

// svgFrame is one level of group nesting during the tree walk.
type svgFrame struct {
	transform Matrix
	style     svgStyle
}

// ParseSVG parses SVG markup into baked paths, one per geometry
// element, plus the document bounds. The bounds come from the viewBox,
// falling back to the width/height attributes, or nil when neither is
// declared. Unparseable markup yields an empty slice and nil bounds;
// individual malformed elements are skipped with a warning.
func ParseSVG(markup string, opts ...ImportOption) ([]PathData, *Rect) {
	o := importOptions{measurer: FlattenMeasure{}}
	for _, opt := range opts {
		opt(&o)
	}

	dec := xml.NewDecoder(strings.NewReader(markup))
	dec.CharsetReader = charset.NewReaderLabel

	var paths []PathData
	var bounds *Rect
	stack := []svgFrame{{transform: Identity(), style: defaultSVGStyle()}}

	for {
		tok, err := dec.Token()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger().Warn("svg: decode failed", "err", err)
				return nil, nil
			}
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			parent := stack[len(stack)-1]
			frame := svgFrame{
				transform: parent.transform.Multiply(parseTransform(attr(t, "transform"))),
				style:     parseStyle(t, parent.style),
			}
			stack = append(stack, frame)

			switch t.Name.Local {
			case "svg":
				bounds = parseSVGBounds(t)
			default:
				if curve := elementCurve(t); curve != nil && !curve.IsEmpty() {
					points := sampleAdaptive(curve, o.measurer)
					if len(points) >= 2 {
						pd := NewPathData(transformAll(points, frame.transform), 0)
						pd.Color = frame.style.stroke
						pd.FillColor = frame.style.fill
						pd.StrokeWidth = frame.style.strokeWidth
						paths = append(paths, pd)
					}
				}
			}
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return paths, bounds
}

// sampleAdaptive traces the curve at an arc-length step scaled to its
// total length: short outlines get dense sampling, long ones coarse.
// The exact end point is always included.
func sampleAdaptive(curve *Path, m Measurer) []Point {
	pm := m.Measure(curve)
	if pm == nil {
		return nil
	}
	total := pm.Length()
	if total <= 0 {
		return nil
	}
	step := 4.0
	switch {
	case total < 100:
		step = 2
	case total > 2000:
		step = 10
	}
	points := make([]Point, 0, int(total/step)+2)
	for dist := 0.0; dist < total; dist += step {
		points = append(points, pm.PointAtLength(dist))
	}
	return append(points, pm.PointAtLength(total))
}

// elementCurve builds the outline curve of a single geometry element,
// or nil for non-geometry elements.
func elementCurve(t xml.StartElement) *Path {
	switch t.Name.Local {
	case "path":
		p := NewPath()
		if err := svgpath.Parse(attr(t, "d"), p); err != nil {
			logger().Warn("svg: bad path data, element skipped", "err", err)
			return nil
		}
		return p
	case "rect":
		x := attrFloat(t, "x", 0)
		y := attrFloat(t, "y", 0)
		w := attrFloat(t, "width", 0)
		h := attrFloat(t, "height", 0)
		if w <= 0 || h <= 0 {
			return nil
		}
		p := NewPath()
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.Close()
		return p
	case "circle":
		r := attrFloat(t, "r", 0)
		return ellipseCurve(attrFloat(t, "cx", 0), attrFloat(t, "cy", 0), r, r)
	case "ellipse":
		return ellipseCurve(attrFloat(t, "cx", 0), attrFloat(t, "cy", 0),
			attrFloat(t, "rx", 0), attrFloat(t, "ry", 0))
	case "line":
		p := NewPath()
		p.MoveTo(attrFloat(t, "x1", 0), attrFloat(t, "y1", 0))
		p.LineTo(attrFloat(t, "x2", 0), attrFloat(t, "y2", 0))
		return p
	case "polyline", "polygon":
		pts := parsePointList(attr(t, "points"))
		if len(pts) < 2 {
			return nil
		}
		p := LinedPath(pts)
		if t.Name.Local == "polygon" {
			p.Close()
		}
		return p
	}
	return nil
}

// kappa is the cubic Bezier control point distance for circle
// approximation, 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// ellipseCurve approximates an axis-aligned ellipse with four cubics.
func ellipseCurve(cx, cy, rx, ry float64) *Path {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	kx, ky := kappa*rx, kappa*ry
	p := NewPath()
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
	return p
}

// parseSVGBounds extracts the declared view box, or synthesizes one
// from width/height, or returns nil.
func parseSVGBounds(t xml.StartElement) *Rect {
	if vb := attr(t, "viewBox"); vb != "" {
		fields := strings.FieldsFunc(vb, func(r rune) bool { return r == ' ' || r == ',' })
		if len(fields) == 4 {
			vals := make([]float64, 4)
			ok := true
			for i, f := range fields {
				v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
				if err != nil {
					ok = false
					break
				}
				vals[i] = v
			}
			if ok {
				return &Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}
			}
		}
	}
	w := attrFloat(t, "width", 0)
	h := attrFloat(t, "height", 0)
	if w > 0 && h > 0 {
		return &Rect{W: w, H: h}
	}
	return nil
}

// parseStyle resolves stroke, fill, and stroke-width for an element,
// inheriting from the parent where the element is silent. Presentation
// attributes are read first, then the inline style attribute on top.
func parseStyle(t xml.StartElement, parent svgStyle) svgStyle {
	s := parent
	apply := func(name, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		switch name {
		case "stroke":
			s.stroke = resolveColor(value)
		case "fill":
			s.fill = resolveColor(value)
		case "stroke-width":
			if w, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64); err == nil && w > 0 {
				s.strokeWidth = w
			}
		}
	}
	for _, name := range []string{"stroke", "fill", "stroke-width"} {
		if v := attr(t, name); v != "" {
			apply(name, v)
		}
	}
	for _, decl := range strings.Split(attr(t, "style"), ";") {
		name, value, found := strings.Cut(decl, ":")
		if found {
			apply(strings.TrimSpace(name), value)
		}
	}
	return s
}

// resolveColor normalizes an SVG color value: named colors become hex,
// "none" becomes empty, everything else passes through unchanged.
func resolveColor(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "none" || v == "transparent" {
		return ""
	}
	if c, ok := colornames.Map[v]; ok {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return value
}

// parseTransform parses an SVG transform list into a single matrix.
// Unknown functions are ignored.
func parseTransform(value string) Matrix {
	m := Identity()
	value = strings.TrimSpace(value)
	for value != "" {
		open := strings.IndexByte(value, '(')
		closeIdx := strings.IndexByte(value, ')')
		if open < 0 || closeIdx < open {
			break
		}
		name := strings.TrimSpace(value[:open])
		args := parseNumberList(value[open+1 : closeIdx])
		value = strings.TrimSpace(value[closeIdx+1:])
		value = strings.TrimPrefix(value, ",")

		switch {
		case name == "matrix" && len(args) == 6:
			// SVG order: a b c d e f, column-major.
			m = m.Multiply(Matrix{A: args[0], B: args[2], C: args[4], D: args[1], E: args[3], F: args[5]})
		case name == "translate" && len(args) >= 1:
			ty := 0.0
			if len(args) > 1 {
				ty = args[1]
			}
			m = m.Multiply(Translate(args[0], ty))
		case name == "scale" && len(args) >= 1:
			sy := args[0]
			if len(args) > 1 {
				sy = args[1]
			}
			m = m.Multiply(Scale(args[0], sy))
		case name == "rotate" && len(args) >= 1:
			rad := args[0] * math.Pi / 180
			if len(args) == 3 {
				m = m.Multiply(Translate(args[1], args[2])).
					Multiply(Rotate(rad)).
					Multiply(Translate(-args[1], -args[2]))
			} else {
				m = m.Multiply(Rotate(rad))
			}
		}
	}
	return m
}

// parsePointList parses a polyline/polygon points attribute.
func parsePointList(value string) []Point {
	nums := parseNumberList(value)
	pts := make([]Point, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		pts = append(pts, Point{X: nums[i], Y: nums[i+1]})
	}
	return pts
}

// parseNumberList splits on commas and whitespace and parses floats,
// dropping anything unparseable.
func parseNumberList(value string) []float64 {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// transformAll applies m to every point unless it is the identity.
func transformAll(points []Point, m Matrix) []Point {
	if m.IsIdentity() {
		return points
	}
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// attr returns the value of the named attribute, or "".
func attr(t xml.StartElement, name string) string {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// attrFloat returns the named attribute parsed as a float, stripping a
// px suffix, or def when absent or unparseable.
func attrFloat(t xml.StartElement, name string, def float64) float64 {
	v := attr(t, name)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"), 64)
	if err != nil {
		return def
	}
	return f
}
