package css

import (
	"stylec/style"
)

const degToRad = 3.1415926535 / 180

// parseShape reads a clip-path basic shape.
func parseShape(s *stream) (style.Shape, error) {
	t, name, err := s.expectFunction()
	if err != nil {
		return style.Shape{}, err
	}
	switch name {
	case "inset":
		return block(s, t, parseInset)
	case "circle":
		return block(s, t, func(s *stream) (style.Shape, error) {
			r, err := parseLengthUnit(s)
			if err != nil {
				return style.Shape{}, err
			}
			return style.Shape{Kind: style.ShapeCircle, Radius: r, Center: parseCenter(s)}, nil
		})
	case "ellipse":
		return block(s, t, func(s *stream) (style.Shape, error) {
			rx, err := parseLengthUnit(s)
			if err != nil {
				return style.Shape{}, err
			}
			ry, err := parseLengthUnit(s)
			if err != nil {
				return style.Shape{}, err
			}
			return style.Shape{Kind: style.ShapeEllipse, Radius: rx, RadiusY: ry, Center: parseCenter(s)}, nil
		})
	case "sector":
		return block(s, t, func(s *stream) (style.Shape, error) {
			rotate, err := parseAngle(s)
			if err != nil {
				return style.Shape{}, err
			}
			angle, err := parseAngle(s)
			if err != nil {
				return style.Shape{}, err
			}
			r, err := parseLengthUnit(s)
			if err != nil {
				return style.Shape{}, err
			}
			return style.Shape{
				Kind:   style.ShapeSector,
				Rotate: rotate * degToRad,
				Angle:  angle * degToRad,
				Radius: r,
				Center: parseCenter(s),
			}, nil
		})
	}
	return style.Shape{}, errExpected(t, "inset | circle | ellipse | sector")
}

// parseInset reads "<length>{1,4} [round <border-radius>]".
func parseInset(s *stream) (style.Shape, error) {
	first, err := parseLengthUnit(s)
	if err != nil {
		return style.Shape{}, err
	}
	rect := []style.LengthUnit{first}
	for {
		v, err := attempt(s, parseLengthUnit)
		if err != nil {
			break
		}
		rect = append(rect, v)
	}

	shape := style.Shape{Kind: style.ShapeInset, Inset: toFour(rect, style.LengthUnit{})}
	if r, err := attempt(s, func(s *stream) (style.BorderRadius, error) {
		if err := s.expectIdentMatching("round"); err != nil {
			return style.BorderRadius{}, err
		}
		return parseBorderRadius(s)
	}); err == nil {
		shape.BorderRadius = r
	}
	return shape, nil
}

// parseCenter reads an optional "at <x> [<y>]" clause. The center defaults to
// 50% 50% and y follows x when omitted.
func parseCenter(s *stream) style.Center {
	c, err := attempt(s, func(s *stream) (style.Center, error) {
		if err := s.expectIdentMatching("at"); err != nil {
			return style.Center{}, err
		}
		x, err := parseLengthUnit(s)
		if err != nil {
			return style.Center{}, err
		}
		y, err := attempt(s, parseLengthUnit)
		if err != nil {
			y = x
		}
		return style.Center{X: x, Y: y}, nil
	})
	if err != nil {
		return style.DefaultCenter
	}
	return c
}
