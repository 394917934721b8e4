package css

import (
	"github.com/mazznoer/csscolorparser"
	"github.com/tdewolff/parse/v2/css"

	"stylec/style"
)

const colorExpected = "<color>"

// parseColor accepts hex colours, colour keywords and rgb()/rgba().
func parseColor(s *stream) (style.RGBA, error) {
	t, err := s.next()
	if err != nil {
		return style.RGBA{}, s.errEnd(colorExpected)
	}
	switch t.tt {
	case css.HashToken:
		if c, ok := hexColor(string(t.data)); ok {
			return c, nil
		}
	case css.IdentToken:
		if c, ok := namedColor(string(t.data)); ok {
			return c, nil
		}
	case css.FunctionToken:
		switch functionName(t) {
		case "rgb", "rgba":
			return block(s, t, parseRGB)
		}
		return style.RGBA{}, errExpected(t, "rgb(...) | rgba(...)")
	}
	return style.RGBA{}, errExpected(t, colorExpected)
}

func hexColor(hash string) (style.RGBA, bool) {
	switch len(hash) - 1 {
	case 3, 4, 6, 8:
	default:
		return style.RGBA{}, false
	}
	c, err := csscolorparser.Parse(hash)
	if err != nil {
		return style.RGBA{}, false
	}
	return fromParsed(c), true
}

// namedColor resolves CSS colour keywords. Bare hex digits are not keywords
// even though the colour library would accept them.
func namedColor(name string) (style.RGBA, bool) {
	if name == "transparent" {
		return style.RGBA{}, true
	}
	if isHexDigits(name) {
		return style.RGBA{}, false
	}
	c, err := csscolorparser.Parse(name)
	if err != nil {
		return style.RGBA{}, false
	}
	return fromParsed(c), true
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

func fromParsed(c csscolorparser.Color) style.RGBA {
	return style.RGBA{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A)}
}

// parseRGB reads the arguments of rgb()/rgba(). Channels are divided by 256,
// the alpha separator follows whichever style the channels used.
func parseRGB(s *stream) (style.RGBA, error) {
	var c style.RGBA
	r, err := s.expectNumber()
	if err != nil {
		return c, err
	}
	_, commaErr := attempt(s, func(s *stream) (struct{}, error) { return struct{}{}, s.expectComma() })
	commas := commaErr == nil

	g, err := s.expectNumber()
	if err != nil {
		return c, err
	}
	if commas {
		if err := s.expectComma(); err != nil {
			return c, err
		}
	}
	b, err := s.expectNumber()
	if err != nil {
		return c, err
	}

	c = style.RGBA{R: r / 256, G: g / 256, B: b / 256, A: 1}
	if !s.exhausted() {
		if commas {
			err = s.expectComma()
		} else {
			err = s.expectDelim('/')
		}
		if err != nil {
			return c, err
		}
		if c.A, err = s.expectNumber(); err != nil {
			return c, err
		}
	}
	return c, nil
}
