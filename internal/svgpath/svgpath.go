// Package svgpath parses SVG path data ("d" attribute) strings into
// move/line/curve commands on a caller-supplied sink.
package svgpath

import (
	"fmt"
	"math"
	"strconv"
)

// Adder receives the parsed path commands. All coordinates are
// absolute; relative commands are resolved during parsing.
type Adder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// Parse reads an SVG path data string and replays it onto dst.
// Elliptical arcs are approximated by cubic Bezier spans of at most a
// quarter turn each. Returns an error on malformed input; commands
// before the error have already been emitted.
func Parse(data string, dst Adder) error {
	p := &parser{dst: dst, tokens: tokenize(data)}
	return p.run()
}

// token is either a command letter or a number.
type token struct {
	cmd rune // 0 for numbers
	num float64
}

// tokenize splits path data into command letters and numbers.
// Invalid numeric runs surface later as arity errors.
func tokenize(data string) []token {
	var tokens []token
	i := 0
	for i < len(data) {
		c := data[i]
		switch {
		case c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r':
			i++
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			tokens = append(tokens, token{cmd: rune(c)})
			i++
		default:
			j := i
			if data[j] == '+' || data[j] == '-' {
				j++
			}
			seenDot, seenExp := false, false
			for j < len(data) {
				ch := data[j]
				if ch >= '0' && ch <= '9' {
					j++
					continue
				}
				if ch == '.' && !seenDot && !seenExp {
					seenDot = true
					j++
					continue
				}
				if (ch == 'e' || ch == 'E') && !seenExp {
					seenExp = true
					j++
					if j < len(data) && (data[j] == '+' || data[j] == '-') {
						j++
					}
					continue
				}
				break
			}
			if j == i {
				// Unparseable byte: skip it.
				i++
				continue
			}
			v, err := strconv.ParseFloat(data[i:j], 64)
			if err == nil {
				tokens = append(tokens, token{num: v})
			}
			i = j
		}
	}
	return tokens
}

type parser struct {
	dst    Adder
	tokens []token
	pos    int

	current   point
	start     point
	lastCubic point // reflection reference for S
	lastQuad  point // reflection reference for T
	lastCmd   rune
}

type point struct{ x, y float64 }

func (p *parser) run() error {
	for p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		if t.cmd == 0 {
			// Implicit command repetition: M becomes L, m becomes l.
			switch p.lastCmd {
			case 'M':
				p.lastCmd = 'L'
			case 'm':
				p.lastCmd = 'l'
			case 0:
				return fmt.Errorf("svgpath: number before any command")
			}
		} else {
			p.lastCmd = t.cmd
			p.pos++
		}
		if err := p.exec(p.lastCmd); err != nil {
			return err
		}
	}
	return nil
}

// numbers pops n numeric tokens.
func (p *parser) numbers(n int) ([]float64, error) {
	out := make([]float64, 0, n)
	for len(out) < n {
		if p.pos >= len(p.tokens) || p.tokens[p.pos].cmd != 0 {
			return nil, fmt.Errorf("svgpath: command %q needs %d numbers, got %d", p.lastCmd, n, len(out))
		}
		out = append(out, p.tokens[p.pos].num)
		p.pos++
	}
	return out, nil
}

func (p *parser) abs(rel bool, x, y float64) (float64, float64) {
	if rel {
		return p.current.x + x, p.current.y + y
	}
	return x, y
}

func (p *parser) exec(cmd rune) error {
	rel := cmd >= 'a' && cmd <= 'z'
	switch cmd {
	case 'M', 'm':
		args, err := p.numbers(2)
		if err != nil {
			return err
		}
		x, y := p.abs(rel, args[0], args[1])
		p.dst.MoveTo(x, y)
		p.current = point{x, y}
		p.start = p.current
	case 'L', 'l':
		args, err := p.numbers(2)
		if err != nil {
			return err
		}
		x, y := p.abs(rel, args[0], args[1])
		p.lineTo(x, y)
	case 'H', 'h':
		args, err := p.numbers(1)
		if err != nil {
			return err
		}
		x := args[0]
		if rel {
			x += p.current.x
		}
		p.lineTo(x, p.current.y)
	case 'V', 'v':
		args, err := p.numbers(1)
		if err != nil {
			return err
		}
		y := args[0]
		if rel {
			y += p.current.y
		}
		p.lineTo(p.current.x, y)
	case 'C', 'c':
		args, err := p.numbers(6)
		if err != nil {
			return err
		}
		c1x, c1y := p.abs(rel, args[0], args[1])
		c2x, c2y := p.abs(rel, args[2], args[3])
		x, y := p.abs(rel, args[4], args[5])
		p.cubicTo(c1x, c1y, c2x, c2y, x, y)
	case 'S', 's':
		args, err := p.numbers(4)
		if err != nil {
			return err
		}
		c1x, c1y := p.reflect(p.lastCubic)
		c2x, c2y := p.abs(rel, args[0], args[1])
		x, y := p.abs(rel, args[2], args[3])
		p.cubicTo(c1x, c1y, c2x, c2y, x, y)
	case 'Q', 'q':
		args, err := p.numbers(4)
		if err != nil {
			return err
		}
		cx, cy := p.abs(rel, args[0], args[1])
		x, y := p.abs(rel, args[2], args[3])
		p.quadTo(cx, cy, x, y)
	case 'T', 't':
		args, err := p.numbers(2)
		if err != nil {
			return err
		}
		cx, cy := p.reflect(p.lastQuad)
		x, y := p.abs(rel, args[0], args[1])
		p.quadTo(cx, cy, x, y)
	case 'A', 'a':
		args, err := p.numbers(7)
		if err != nil {
			return err
		}
		x, y := p.abs(rel, args[5], args[6])
		p.arcTo(args[0], args[1], args[2], args[3] != 0, args[4] != 0, x, y)
	case 'Z', 'z':
		p.dst.Close()
		p.current = p.start
	default:
		return fmt.Errorf("svgpath: unknown command %q", cmd)
	}
	switch cmd {
	case 'C', 'c', 'S', 's':
	default:
		p.lastCubic = p.current
	}
	switch cmd {
	case 'Q', 'q', 'T', 't':
	default:
		p.lastQuad = p.current
	}
	return nil
}

func (p *parser) lineTo(x, y float64) {
	p.dst.LineTo(x, y)
	p.current = point{x, y}
}

func (p *parser) quadTo(cx, cy, x, y float64) {
	p.dst.QuadraticTo(cx, cy, x, y)
	p.lastQuad = point{cx, cy}
	p.current = point{x, y}
}

func (p *parser) cubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.dst.CubicTo(c1x, c1y, c2x, c2y, x, y)
	p.lastCubic = point{c2x, c2y}
	p.current = point{x, y}
}

// reflect mirrors the previous control point across the current point,
// per the S/T shorthand rules. When the preceding command was not of
// the same curve family, the history fields already hold the current
// point and the reflection degenerates to it, as the SVG spec requires.
func (p *parser) reflect(last point) (float64, float64) {
	return 2*p.current.x - last.x, 2*p.current.y - last.y
}

// arcTo converts an SVG elliptical arc to cubic Bezier spans, per the
// endpoint-to-center conversion of the SVG spec (appendix F.6.5).
func (p *parser) arcTo(rx, ry, rotDeg float64, largeArc, sweep bool, x, y float64) {
	x0, y0 := p.current.x, p.current.y
	if x0 == x && y0 == y {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		p.lineTo(x, y)
		return
	}

	phi := rotDeg * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	// Transform to the ellipse-aligned frame.
	dx2 := (x0 - x) / 2
	dy2 := (y0 - y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Scale radii up if the endpoints cannot be connected.
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// Center in the aligned frame.
	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den != 0 && num > 0 {
		co = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		co = -co
	}
	cxp := co * rx * y1p / ry
	cyp := -co * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (x0+x)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y0+y)/2

	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	dTheta := theta2 - theta1
	if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	} else if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	}

	// Split into spans of at most a quarter turn.
	segments := int(math.Ceil(math.Abs(dTheta) / (math.Pi / 2)))
	if segments == 0 {
		segments = 1
	}
	delta := dTheta / float64(segments)
	k := 4.0 / 3.0 * math.Tan(delta/4)

	pointAt := func(theta float64) (float64, float64, float64, float64) {
		ct, st := math.Cos(theta), math.Sin(theta)
		px := cx + rx*ct*cosPhi - ry*st*sinPhi
		py := cy + rx*ct*sinPhi + ry*st*cosPhi
		// Derivative direction for the handle.
		tx := -rx*st*cosPhi - ry*ct*sinPhi
		ty := -rx*st*sinPhi + ry*ct*cosPhi
		return px, py, tx, ty
	}

	theta := theta1
	for i := 0; i < segments; i++ {
		p1x, p1y, t1x, t1y := pointAt(theta)
		theta += delta
		p2x, p2y, t2x, t2y := pointAt(theta)
		if i == segments-1 {
			// Land exactly on the command endpoint.
			p2x, p2y = x, y
		}
		p.cubicTo(
			p1x+k*t1x, p1y+k*t1y,
			p2x-k*t2x, p2y-k*t2y,
			p2x, p2y,
		)
	}
}
