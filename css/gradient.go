package css

import (
	"strings"

	"github.com/tdewolff/parse/v2/css"

	"stylec/style"
)

// parseBackground accepts a linear-gradient() function.
func parseBackground(s *stream) (style.Color, error) {
	t, name, err := s.expectFunction()
	if err != nil {
		return style.Color{}, err
	}
	if name != "linear-gradient" {
		return style.Color{}, errExpected(t, "linear-gradient(...)")
	}
	g, err := block(s, t, parseLinear)
	if err != nil {
		return style.Color{}, err
	}
	return style.Gradient(g), nil
}

// image is either a url or a gradient, as accepted by background-image and
// mask-image.
type image struct {
	url      string
	gradient *style.LinearGradient
}

func parseImage(s *stream) (image, error) {
	const expected = "url(...) | <url> | linear-gradient(...)"
	t, err := s.next()
	if err != nil {
		return image{}, s.errEnd(expected)
	}
	switch t.tt {
	case css.URLToken:
		return image{url: urlValue(t.data)}, nil
	case css.FunctionToken:
		switch name := functionName(t); {
		case strings.EqualFold(name, "url"):
			u, err := block(s, t, func(s *stream) (string, error) { return s.expectString() })
			return image{url: u}, err
		case strings.EqualFold(name, "linear-gradient"):
			g, err := block(s, t, parseLinear)
			if err != nil {
				return image{}, err
			}
			return image{gradient: &g}, nil
		}
	}
	return image{}, errExpected(t, expected)
}

// parseLinear reads "[<angle>,] <stop>, <stop>...". The angle is rotated by
// -90 degrees so that 0 points right.
func parseLinear(s *stream) (style.LinearGradient, error) {
	var g style.LinearGradient
	if d, err := attempt(s, parseAngle); err == nil {
		if err := s.expectComma(); err != nil {
			return g, err
		}
		g.Direction = d - 90
	}

	stops := stopList{}
	for {
		// a broken stop is dropped, the rest of the list still counts
		_ = stops.item(s)
		if t, err := s.next(); err != nil || t.tt != css.CommaToken {
			break
		}
	}
	stops.flush(1, nil)

	if err := checkLen(stops.placed, style.MaxGradientStops); err != nil {
		return g, err
	}
	g.Stops = stops.placed
	return g, nil
}

// stopList places colour stops. Colours without a position wait in pending
// until the next positioned stop, or the end of the list, spreads them out.
type stopList struct {
	pending []style.RGBA
	placed  []style.ColorStop
	last    float32
}

// item reads "[<percentage>] <color> [<percentage>]".
func (l *stopList) item(s *stream) error {
	pos, posErr := attempt(s, parsePercentage)
	c, err := parseColor(s)
	if err != nil {
		return err
	}
	if posErr != nil {
		pos, posErr = attempt(s, parsePercentage)
	}
	if posErr != nil {
		l.pending = append(l.pending, c)
		return nil
	}
	l.flush(pos, &c)
	return nil
}

func (l *stopList) flush(at float32, c *style.RGBA) {
	if n := len(l.pending); n > 0 {
		if len(l.placed) != 0 {
			step := (at - l.last) / float32(n)
			for i, p := range l.pending {
				l.placed = append(l.placed, style.ColorStop{Position: l.last + step*float32(i+1), Color: p})
			}
		} else {
			var step float32
			if n > 1 {
				step = (at - l.last) / float32(n-1)
			}
			for i, p := range l.pending {
				l.placed = append(l.placed, style.ColorStop{Position: l.last + step*float32(i), Color: p})
			}
		}
		l.pending = l.pending[:0]
	}
	l.last = at
	if c != nil {
		l.placed = append(l.placed, style.ColorStop{Position: at, Color: *c})
	}
}
