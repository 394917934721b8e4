package css

import (
	"stylec/style"
)

const transformExpected = "scale | scaleX | scaleY | translate | translateX | translateY | rotate | rotateX | rotateY | rotateZ | skewX | skewY"

// parseTransform reads a list of transform functions. Parsing stops at the
// first function that does not parse; that is only an error when nothing was
// read before it.
func parseTransform(s *stream) (style.Transform, error) {
	var (
		list style.Transform
		err  error
	)
	for {
		var f style.TransformFunc
		if f, err = attempt(s, transformFunc); err != nil {
			break
		}
		list = append(list, f)
	}
	if len(list) == 0 {
		return nil, err
	}
	if err := checkLen(list, style.MaxTransformFuncs); err != nil {
		return nil, err
	}
	return list, nil
}

func transformFunc(s *stream) (style.TransformFunc, error) {
	t, name, err := s.expectFunction()
	if err != nil {
		return style.TransformFunc{}, err
	}
	switch name {
	case "scale":
		return block(s, t, func(s *stream) (style.TransformFunc, error) {
			x, err := s.expectNumber()
			if err != nil {
				return style.TransformFunc{}, err
			}
			y := x
			if s.expectComma() == nil {
				if v, err := s.expectNumber(); err == nil {
					y = v
				}
			}
			return style.TransformFunc{Kind: style.FuncScale, A: x, B: y}, nil
		})
	case "scaleX", "scaleY":
		kind := style.FuncScaleX
		if name == "scaleY" {
			kind = style.FuncScaleY
		}
		return block(s, t, func(s *stream) (style.TransformFunc, error) {
			v, err := s.expectNumber()
			return style.TransformFunc{Kind: kind, A: v}, err
		})
	case "translate":
		return block(s, t, func(s *stream) (style.TransformFunc, error) {
			x, err := parseLengthUnit(s)
			if err != nil {
				return style.TransformFunc{}, err
			}
			if err := s.expectComma(); err != nil {
				return style.TransformFunc{}, err
			}
			y, err := parseLengthUnit(s)
			return style.TransformFunc{Kind: style.FuncTranslate, X: x, Y: y}, err
		})
	case "translateX":
		return block(s, t, func(s *stream) (style.TransformFunc, error) {
			x, err := parseLengthUnit(s)
			return style.TransformFunc{Kind: style.FuncTranslateX, X: x}, err
		})
	case "translateY":
		return block(s, t, func(s *stream) (style.TransformFunc, error) {
			y, err := parseLengthUnit(s)
			return style.TransformFunc{Kind: style.FuncTranslateY, Y: y}, err
		})
	}

	var kind style.TransformFuncKind
	switch name {
	case "rotate", "rotateZ":
		kind = style.FuncRotateZ
	case "rotateX":
		kind = style.FuncRotateX
	case "rotateY":
		kind = style.FuncRotateY
	case "skewX":
		kind = style.FuncSkewX
	case "skewY":
		kind = style.FuncSkewY
	default:
		return style.TransformFunc{}, errExpected(t, transformExpected)
	}
	return block(s, t, func(s *stream) (style.TransformFunc, error) {
		a, err := parseAngle(s)
		return style.TransformFunc{Kind: kind, A: a}, err
	})
}
