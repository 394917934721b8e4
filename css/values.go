package css

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/css"

	"stylec/notnan"
	"stylec/style"
)

var errTooMany = errors.New("too many values")

func checkLen[T any](list []T, limit int) error {
	if len(list) > limit {
		return fmt.Errorf("%w: %d, at most %d", errTooMany, len(list), limit)
	}
	return nil
}

// parseDimension accepts auto, px lengths, percentages and bare numbers.
func parseDimension(s *stream) (style.Dimension, error) {
	if _, err := attempt(s, func(s *stream) (struct{}, error) {
		return struct{}{}, s.expectIdentMatching("auto")
	}); err == nil {
		return style.Auto, nil
	}

	const expected = "<length> | <percentage>"
	t, err := s.next()
	if err != nil {
		return style.Dimension{}, s.errEnd(expected)
	}
	switch t.tt {
	case css.DimensionToken:
		if v, unit := dimension(t.data); unit == "px" {
			return style.Points(v), nil
		}
	case css.PercentageToken:
		v, _ := dimension(t.data)
		return style.Percent(v / 100), nil
	case css.NumberToken:
		return style.Points(number(t.data)), nil
	}
	return style.Dimension{}, errExpected(t, expected)
}

// parseLengthUnit accepts percentages and lengths of any unit, taken as pixels.
func parseLengthUnit(s *stream) (style.LengthUnit, error) {
	const expected = "<length> | <percentage>"
	t, err := s.next()
	if err != nil {
		return style.LengthUnit{}, s.errEnd(expected)
	}
	switch t.tt {
	case css.PercentageToken:
		v, _ := dimension(t.data)
		return style.Pct(v / 100), nil
	case css.DimensionToken:
		v, _ := dimension(t.data)
		return style.Px(v), nil
	case css.NumberToken:
		return style.Px(number(t.data)), nil
	}
	return style.LengthUnit{}, errExpected(t, expected)
}

// parseLen accepts px lengths and bare numbers.
func parseLen(s *stream) (float32, error) {
	t, err := s.next()
	if err != nil {
		return 0, s.errEnd("<length>")
	}
	switch t.tt {
	case css.DimensionToken:
		if v, unit := dimension(t.data); unit == "px" {
			return v, nil
		}
	case css.NumberToken:
		return number(t.data), nil
	}
	return 0, errExpected(t, "<length>")
}

// parseAngle accepts degrees only.
func parseAngle(s *stream) (float32, error) {
	t, err := s.next()
	if err != nil {
		return 0, s.errEnd("deg")
	}
	if t.tt == css.DimensionToken {
		if v, unit := dimension(t.data); unit == "deg" {
			return v, nil
		}
	}
	return 0, errExpected(t, "deg")
}

func parseNumber(s *stream) (float32, error) {
	return s.expectNumber()
}

func parsePercentage(s *stream) (float32, error) {
	return s.expectPercentage()
}

// edges parses up to four values with the usual top, right, bottom, left
// fallbacks. When nothing parses all four edges are def.
func edges[T any](s *stream, f func(*stream) (T, error), def T) [4]T {
	var vals []T
	for len(vals) < 4 {
		v, err := attempt(s, f)
		if err != nil {
			break
		}
		vals = append(vals, v)
	}
	return toFour(vals, def)
}

func toFour[T any](vals []T, def T) [4]T {
	switch len(vals) {
	case 0:
		return [4]T{def, def, def, def}
	case 1:
		return [4]T{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		return [4]T{vals[0], vals[1], vals[0], vals[1]}
	case 3:
		return [4]T{vals[0], vals[1], vals[2], vals[1]}
	}
	return [4]T{vals[0], vals[1], vals[2], vals[3]}
}

// mult fills arr with up to len(arr) values; missing ones copy earlier
// values the way two-value shorthands do.
func mult[T any](s *stream, arr []T, f func(*stream) (T, error)) []T {
	i := 0
	for i < len(arr) {
		v, err := attempt(s, f)
		if err != nil {
			break
		}
		arr[i] = v
		i++
	}
	if len(arr) > 1 && i <= 1 {
		arr[1] = arr[0]
	}
	if len(arr) > 2 && i <= 2 {
		arr[2] = arr[0]
	}
	if len(arr) > 3 && i <= 3 {
		arr[3] = arr[1]
	}
	return arr
}

func parseClipRect(s *stream) (style.ClipRect, error) {
	e := edges(s, parsePercentage, 0)
	return style.ClipRect{
		Top:    notnan.OrZero(e[0]),
		Right:  notnan.OrZero(e[1]),
		Bottom: notnan.OrZero(e[2]),
		Left:   notnan.OrZero(e[3]),
	}, nil
}

func parseBorderImageSlice(s *stream) (style.BorderImageSlice, error) {
	e := edges(s, parsePercentage, 0)
	_, err := attempt(s, func(s *stream) (struct{}, error) {
		return struct{}{}, s.expectIdentMatching("fill")
	})
	return style.BorderImageSlice{
		Top:    notnan.OrZero(e[0]),
		Right:  notnan.OrZero(e[1]),
		Bottom: notnan.OrZero(e[2]),
		Left:   notnan.OrZero(e[3]),
		Fill:   err == nil,
	}, nil
}

// parseBorderRadius reads the horizontal radii and, after a "/", the vertical
// ones. Without a slash both axes are equal.
func parseBorderRadius(s *stream) (style.BorderRadius, error) {
	x := edges(s, parseLengthUnit, style.LengthUnit{})
	y := x
	if _, err := attempt(s, func(s *stream) (struct{}, error) { return struct{}{}, s.expectDelim('/') }); err == nil {
		y = edges(s, parseLengthUnit, style.LengthUnit{})
	}
	return style.BorderRadius{X: x, Y: y}, nil
}

func parseImageRepeat(s *stream) (style.ImageRepeat, error) {
	t, err := s.expect(css.IdentToken, "<repeat>")
	if err != nil {
		return style.ImageRepeat{}, err
	}

	var r style.ImageRepeat
	switch string(t.data) {
	case "no-repeat":
		r = style.ImageRepeat{X: style.RepeatOptionStretch, Y: style.RepeatOptionStretch}
	case "repeat-x":
		return style.ImageRepeat{X: style.RepeatOptionRepeat, Y: style.RepeatOptionStretch}, nil
	case "repeat-y":
		return style.ImageRepeat{X: style.RepeatOptionStretch, Y: style.RepeatOptionRepeat}, nil
	case "space":
		r = style.ImageRepeat{X: style.RepeatOptionSpace, Y: style.RepeatOptionSpace}
	case "round":
		r = style.ImageRepeat{X: style.RepeatOptionRound, Y: style.RepeatOptionRound}
	case "repeat":
		r = style.ImageRepeat{X: style.RepeatOptionRepeat, Y: style.RepeatOptionRepeat}
	default:
		return r, errExpected(t, "no-repeat | repeat-x | repeat-y | space | round | repeat")
	}

	// optional second keyword for the vertical axis
	if y, err := attempt(s, func(s *stream) (style.RepeatOption, error) {
		t, err := s.expect(css.IdentToken, "<repeat>")
		if err != nil {
			return 0, err
		}
		switch string(t.data) {
		case "no-repeat":
			return style.RepeatOptionStretch, nil
		case "space":
			return style.RepeatOptionSpace, nil
		case "round":
			return style.RepeatOptionRound, nil
		case "repeat":
			return style.RepeatOptionRepeat, nil
		}
		return 0, errExpected(t, "no-repeat | space | round | repeat")
	}); err == nil {
		r.Y = y
	}
	return r, nil
}

// keyword builds a grammar for a single enum keyword.
func keyword[T any](lookup func(string) (T, bool), expected string) func(*stream) (T, error) {
	return func(s *stream) (T, error) {
		t, err := s.expect(css.IdentToken, expected)
		if err != nil {
			var zero T
			return zero, err
		}
		v, ok := lookup(string(t.data))
		if !ok {
			return v, errExpected(t, expected)
		}
		return v, nil
	}
}

// lenient is like keyword but unknown keywords fall back to def.
func lenient[T any](lookup func(string) (T, bool), def T) func(*stream) (T, error) {
	return func(s *stream) (T, error) {
		name, err := s.expectIdent()
		if err != nil {
			return def, err
		}
		if v, ok := lookup(name); ok {
			return v, nil
		}
		return def, nil
	}
}

// flag yields on for the given keyword and !on for any other one.
func flag(name string, on bool) func(*stream) (style.Bool, error) {
	return func(s *stream) (style.Bool, error) {
		v, err := s.expectIdent()
		if err != nil {
			return false, err
		}
		return style.Bool(v == name == on), nil
	}
}

func parseTransformOrigin(s *stream) (style.TransformOrigin, error) {
	x, err := originComponent(s)
	if err != nil {
		return style.TransformOrigin{}, err
	}
	y, err := attempt(s, originComponent)
	if err != nil {
		y = x
	}
	return style.TransformOrigin{Kind: style.OriginXY, X: x, Y: y}, nil
}

func originComponent(s *stream) (style.LengthUnit, error) {
	const expected = "center | <length> | <percentage>"
	t, err := s.next()
	if err != nil {
		return style.LengthUnit{}, s.errEnd(expected)
	}
	switch t.tt {
	case css.IdentToken:
		if string(t.data) == "center" {
			return style.Pct(0.5), nil
		}
	case css.PercentageToken:
		v, _ := dimension(t.data)
		return style.Pct(v / 100), nil
	case css.DimensionToken:
		v, _ := dimension(t.data)
		return style.Px(v), nil
	case css.NumberToken:
		return style.Px(number(t.data)), nil
	}
	return style.LengthUnit{}, errExpected(t, expected)
}

// toUint converts like a saturating float to integer cast.
func toUint(v float32) uint32 {
	switch {
	case math.IsNaN(float64(v)) || v <= 0:
		return 0
	case v >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}

func toInt(v float32) int32 {
	switch {
	case math.IsNaN(float64(v)):
		return 0
	case v <= math.MinInt32:
		return math.MinInt32
	case v >= math.MaxInt32:
		return math.MaxInt32
	}
	return int32(v)
}
