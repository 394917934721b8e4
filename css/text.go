package css

import (
	"github.com/tdewolff/parse/v2/css"

	"stylec/notnan"
	"stylec/style"
)

// parseTextShadow reads a comma separated list of
// "[<color>] <h> <v> [<blur>] [<color>]" items. Broken items are skipped; the
// list only fails when no item parsed.
func parseTextShadow(s *stream) (style.TextShadows, error) {
	var (
		list style.TextShadows
		err  error
	)
	for {
		var item style.TextShadow
		if item, err = textShadowItem(s); err == nil {
			list = append(list, item)
		}
		if t, err := s.next(); err != nil || t.tt != css.CommaToken {
			break
		}
	}
	if len(list) == 0 {
		return nil, err
	}
	if err := checkLen(list, style.MaxTextShadows); err != nil {
		return nil, err
	}
	return list, nil
}

func textShadowItem(s *stream) (style.TextShadow, error) {
	c, colorErr := attempt(s, parseColor)
	h, err := attempt(s, parseLen)
	if err != nil {
		return style.TextShadow{}, err
	}
	v, err := attempt(s, parseLen)
	if err != nil {
		return style.TextShadow{}, err
	}
	blur, _ := attempt(s, parseLen)
	if colorErr != nil {
		c, colorErr = attempt(s, parseColor)
	}
	if colorErr != nil {
		c = style.Black
	}
	return style.TextShadow{H: h, V: v, Blur: blur, Color: c}, nil
}

// parseBoxShadow reads "<h> <v> [<blur>] [<spread>] [<color>]" up to the next
// comma.
func parseBoxShadow(s *stream) (style.BoxShadow, error) {
	return until(s, func(s *stream) (style.BoxShadow, error) {
		h, err := parseLen(s)
		if err != nil {
			return style.BoxShadow{}, err
		}
		v, err := parseLen(s)
		if err != nil {
			return style.BoxShadow{}, err
		}
		shadow := style.BoxShadow{H: h, V: v, Color: style.Black}
		shadow.Blur, _ = attempt(s, parseLen)
		shadow.Spread, _ = attempt(s, parseLen)
		if c, err := attempt(s, parseColor); err == nil {
			shadow.Color = c
		}
		return shadow, nil
	}, css.CommaToken, css.SemicolonToken)
}

func parseTextStroke(s *stream) (style.Stroke, error) {
	off := s.offset()
	w, err := parseLen(s)
	if err != nil {
		return style.Stroke{}, err
	}
	width, err := notnan.New(w)
	if err != nil {
		return style.Stroke{}, &TokenError{Offset: off, Expected: "<length>", Msg: err.Error()}
	}
	c, err := parseColor(s)
	if err != nil {
		return style.Stroke{}, err
	}
	return style.Stroke{Width: width, Color: c}, nil
}

// parseOuterGlow reads a colour and up to two lengths in any order. The first
// length is the glow distance.
func parseOuterGlow(s *stream) (style.OuterGlow, error) {
	var (
		glow      style.OuterGlow
		haveColor bool
		lengths   int
	)
	for {
		parsed := false
		if !haveColor {
			if c, err := attempt(s, parseColor); err == nil {
				glow.Color, haveColor, parsed = c, true, true
			}
		}
		if lengths <= 2 {
			if v, err := attempt(s, parseLen); err == nil {
				if lengths == 0 {
					glow.Distance = v
				}
				lengths++
				parsed = true
			}
		}
		if !parsed || (lengths == 2 && haveColor) {
			break
		}
	}
	return glow, nil
}

func parseLineHeight(s *stream) (style.LineHeight, error) {
	const expected = "normal | <percentage> | <length>"
	t, err := s.next()
	if err != nil {
		return style.LineHeight{}, s.errEnd(expected)
	}
	switch t.tt {
	case css.IdentToken:
		if string(t.data) == "normal" {
			return style.LineHeight{Kind: style.LineHeightNormal}, nil
		}
	case css.PercentageToken:
		v, _ := dimension(t.data)
		return style.LineHeight{Kind: style.LineHeightPercent, Value: v / 100}, nil
	case css.DimensionToken:
		v, _ := dimension(t.data)
		return style.LineHeight{Kind: style.LineHeightLength, Value: v}, nil
	case css.NumberToken:
		return style.LineHeight{Kind: style.LineHeightLength, Value: number(t.data)}, nil
	}
	return style.LineHeight{}, errExpected(t, expected)
}

func parseFontSize(s *stream) (style.FontSize, error) {
	const expected = "<percentage> | <length>"
	t, err := s.next()
	if err != nil {
		return style.FontSize{}, s.errEnd(expected)
	}
	switch t.tt {
	case css.PercentageToken:
		v, _ := dimension(t.data)
		return style.FontSize{Kind: style.FontSizePercent, Percent: v / 100}, nil
	case css.DimensionToken:
		v, _ := dimension(t.data)
		return style.FontSize{Kind: style.FontSizeLength, Length: toUint(v)}, nil
	case css.NumberToken:
		return style.FontSize{Kind: style.FontSizeLength, Length: toUint(number(t.data))}, nil
	}
	return style.FontSize{}, errExpected(t, expected)
}

func parseFontWeight(s *stream) (style.Uint, error) {
	const expected = "bold | <number>"
	t, err := s.next()
	if err != nil {
		return 0, s.errEnd(expected)
	}
	switch {
	case t.tt == css.IdentToken && string(t.data) == "bold":
		return 700, nil
	case t.tt == css.NumberToken:
		return style.Uint(toUint(number(t.data))), nil
	}
	return 0, errExpected(t, expected)
}

func parseTextOverflow(s *stream) (style.TextOverflow, error) {
	const expected = "clip | ellipsis | <string>"
	if kind, err := attempt(s, func(s *stream) (style.TextOverflowKind, error) {
		t, err := s.expect(css.IdentToken, expected)
		if err != nil {
			return 0, err
		}
		switch string(t.data) {
		case "clip":
			return style.OverflowClip, nil
		case "ellipsis":
			return style.OverflowEllipsis, nil
		}
		return 0, errExpected(t, expected)
	}); err == nil {
		return style.TextOverflow{Kind: kind}, nil
	}

	t, err := s.expect(css.StringToken, expected)
	if err != nil {
		return style.TextOverflow{}, err
	}
	return style.TextOverflow{Kind: style.OverflowCustom, Custom: style.NewText(unquote(string(t.data)))}, nil
}
