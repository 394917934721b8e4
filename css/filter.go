package css

import (
	"github.com/tdewolff/parse/v2/css"

	"stylec/style"
)

// parseFilter reads a list of filter functions. blur produces its own
// attribute; the colour functions all write channels of one Hsi value, later
// functions overwriting earlier ones.
func parseFilter(s *stream) ([]style.Attribute, error) {
	var (
		attrs  []style.Attribute
		hsi    style.Hsi
		hasHsi bool
	)
	for {
		t, err := s.next()
		if err != nil || t.tt != css.FunctionToken {
			break
		}

		switch name := functionName(t); name {
		case "blur":
			v, err := block(s, t, parseLen)
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, style.New(style.KindBlur, style.Float(v)))
		case "hue-rotate":
			r, err := block(s, t, parseAngle)
			if err != nil {
				return nil, err
			}
			if r > 180 {
				r -= 360
			}
			hsi.HueRotate, hasHsi = r, true
		case "saturate", "brightness", "grayscale":
			p, err := block(s, t, parsePercentage)
			if err != nil {
				return nil, err
			}
			switch name {
			case "saturate":
				hsi.Saturate = p*100 - 100
			case "brightness":
				hsi.Brightness = p*100 - 100
			default:
				hsi.Saturate = -p * 100
			}
			hasHsi = true
		case "hsi":
			v, err := block(s, t, parseHsi)
			if err != nil {
				return nil, err
			}
			hsi, hasHsi = v, true
		default:
			return nil, errExpected(t, "blur | hue-rotate | saturate | brightness | grayscale | hsi")
		}
	}

	if hasHsi {
		attrs = append(attrs, style.New(style.KindHsi, hsi))
	}
	return attrs, nil
}

// parseHsi reads "h, s, i" with an optional trailing comma. Hue is clamped to
// [-180, 180] degrees, the others to [-100, 100], and all are normalised.
func parseHsi(s *stream) (style.Hsi, error) {
	var vals [3]float32
	for i := range vals {
		v, err := until(s, parseNumber, css.CommaToken)
		if err != nil {
			return style.Hsi{}, err
		}
		vals[i] = v
		if err := s.expectComma(); err != nil && (i < 2 || !s.exhausted()) {
			return style.Hsi{}, err
		}
	}
	return style.Hsi{
		HueRotate:  clamp(vals[0], 180) / 360,
		Saturate:   clamp(vals[1], 100) / 100,
		Brightness: clamp(vals[2], 100) / 100,
	}, nil
}

func clamp(v, limit float32) float32 {
	return max(-limit, min(v, limit))
}
