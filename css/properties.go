package css

import (
	"stylec/style"
)

// property is the value grammar of one declaration. Bare properties take no
// colon and no value.
type property struct {
	bare  bool
	parse func(st *parseState, s *stream) ([]style.Attribute, error)
}

// single emits one attribute of kind k.
func single[T style.Value](k style.Kind, f func(*stream) (T, error)) property {
	return property{parse: func(_ *parseState, s *stream) ([]style.Attribute, error) {
		v, err := f(s)
		if err != nil {
			return nil, err
		}
		return []style.Attribute{style.New(k, v)}, nil
	}}
}

func multi(f func(*stream) ([]style.Attribute, error)) property {
	return property{parse: func(_ *parseState, s *stream) ([]style.Attribute, error) {
		return f(s)
	}}
}

// listOf emits one attribute holding a comma separated list.
func listOf[L interface {
	~[]T
	style.Value
}, T any](k style.Kind, f func(*stream) (T, error)) property {
	return property{parse: func(_ *parseState, s *stream) ([]style.Attribute, error) {
		vals, err := commaSeparated(s, f)
		if err != nil {
			return nil, err
		}
		return []style.Attribute{style.New(k, L(vals))}, nil
	}}
}

// box expands a top, right, bottom, left shorthand into four dimensions.
func box(top, right, bottom, left style.Kind) property {
	return multi(func(s *stream) ([]style.Attribute, error) {
		e := edges(s, parseDimension, style.Dimension{})
		return []style.Attribute{
			style.New(top, e[0]),
			style.New(right, e[1]),
			style.New(bottom, e[2]),
			style.New(left, e[3]),
		}, nil
	})
}

func asFloat(f func(*stream) (float32, error)) func(*stream) (style.Float, error) {
	return func(s *stream) (style.Float, error) {
		v, err := f(s)
		return style.Float(v), err
	}
}

func flat(s *stream) (style.Color, error) {
	c, err := parseColor(s)
	return style.Flat(c), err
}

func asText(f func(*stream) (string, error)) func(*stream) (style.Text, error) {
	return func(s *stream) (style.Text, error) {
		v, err := f(s)
		if err != nil {
			return 0, err
		}
		return style.NewText(v), nil
	}
}

func identText(s *stream) (string, error) { return s.expectIdent() }

func stringText(s *stream) (string, error) { return s.expectString() }

func urlText(s *stream) (string, error) { return s.expectURL() }

func integer(s *stream) (style.Int, error) {
	v, err := s.expectNumber()
	return style.Int(toInt(v)), err
}

func aspectRatio(s *stream) (style.Number, error) {
	v, err := s.expectNumber()
	return style.Number{Defined: err == nil, Value: v}, err
}

func translate(s *stream) (style.Translate, error) {
	v := mult(s, make([]style.LengthUnit, 2), parseLengthUnit)
	return style.Translate{X: v[0], Y: v[1]}, nil
}

func scale(s *stream) (style.Scale, error) {
	v := mult(s, []float32{1, 1}, parseNumber)
	return style.Scale{X: v[0], Y: v[1]}, nil
}

func backgroundImage(s *stream) ([]style.Attribute, error) {
	img, err := parseImage(s)
	if err != nil {
		return nil, err
	}
	if img.gradient != nil {
		return []style.Attribute{style.New(style.KindBackgroundColor, style.Gradient(*img.gradient))}, nil
	}
	return []style.Attribute{style.New(style.KindBackgroundImage, style.NewText(img.url))}, nil
}

func maskImage(s *stream) (style.MaskImage, error) {
	img, err := parseImage(s)
	if err != nil {
		return style.MaskImage{}, err
	}
	if img.gradient != nil {
		return style.MaskImage{Kind: style.MaskGradient, Gradient: *img.gradient}, nil
	}
	return style.MaskImage{Kind: style.MaskPath, Path: style.NewText(img.url)}, nil
}

var properties map[string]property

func init() {
	clip := single(style.KindBackgroundImageClip, parseClipRect)
	dim := func(k style.Kind) property { return single(k, parseDimension) }

	properties = map[string]property{
		// text
		"filter":          multi(parseFilter),
		"color":           single(style.KindColor, flat),
		"text-gradient":   single(style.KindColor, parseBackground),
		"letter-spacing":  single(style.KindLetterSpacing, asFloat(parseLen)),
		"word-spacing":    single(style.KindWordSpacing, asFloat(parseLen)),
		"line-height":     single(style.KindLineHeight, parseLineHeight),
		"text-indent":     single(style.KindTextIndent, asFloat(parseLen)),
		"text-align":      single(style.KindTextAlign, keyword(style.ParseTextAlign, "left | right | center | justify")),
		"vertical-align":  single(style.KindVerticalAlign, keyword(style.ParseVerticalAlign, "top | middle | bottom")),
		"text-shadow":     single(style.KindTextShadow, parseTextShadow),
		"text-stroke":     single(style.KindTextStroke, parseTextStroke),
		"text-outer-grow": single(style.KindTextOuterGlow, parseOuterGlow),
		"content":         single(style.KindTextContent, asText(stringText)),
		"white-space":     single(style.KindWhiteSpace, keyword(style.ParseWhiteSpace, "normal | pre | nowrap | pre-wrap | pre-line")),
		"font-style":      single(style.KindFontStyle, keyword(style.ParseFontStyle, "normal | italic | oblique")),
		"font-weight":     single(style.KindFontWeight, parseFontWeight),
		"font-size":       single(style.KindFontSize, parseFontSize),
		"font-family":     single(style.KindFontFamily, asText(identText)),
		"text-overflow":   single(style.KindTextOverflow, parseTextOverflow),
		"overflow-wrap":   single(style.KindOverflowWrap, keyword(style.ParseOverflowWrap, "normal | anywhere | break-word")),

		// background
		"background-color":      single(style.KindBackgroundColor, flat),
		"background":            single(style.KindBackgroundColor, parseBackground),
		"background-image":      multi(backgroundImage),
		"image-clip":            clip,
		"background-image-clip": clip,
		"object-fit":            single(style.KindObjectFit, keyword(style.ParseObjectFit, "contain | cover | fill | none | scale-down")),
		"background-repeat":     single(style.KindBackgroundRepeat, parseImageRepeat),

		// border
		"border-color":        single(style.KindBorderColor, parseColor),
		"box-shadow":          single(style.KindBoxShadow, parseBoxShadow),
		"border-image":        single(style.KindBorderImage, asText(urlText)),
		"border-image-clip":   single(style.KindBorderImageClip, parseClipRect),
		"border-image-slice":  single(style.KindBorderImageSlice, parseBorderImageSlice),
		"border-image-repeat": single(style.KindBorderImageRepeat, parseImageRepeat),
		"border-radius":       single(style.KindBorderRadius, parseBorderRadius),

		// mask
		"mask-image":      single(style.KindMaskImage, maskImage),
		"mask-image-clip": single(style.KindMaskImageClip, parseClipRect),
		"blend-mode":      single(style.KindBlendMode, keyword(style.ParseBlendMode, "normal | alpha-add | subtract | multiply | one-one")),

		// transform
		"opacity":          single(style.KindOpacity, asFloat(parseNumber)),
		"transform":        single(style.KindTransform, parseTransform),
		"translate":        single(style.KindTranslate, translate),
		"scale":            single(style.KindScale, scale),
		"rotate":           single(style.KindRotate, asFloat(parseAngle)),
		"transform-origin": single(style.KindTransformOrigin, parseTransformOrigin),
		"will-change-transform": {bare: true, parse: func(*parseState, *stream) ([]style.Attribute, error) {
			return []style.Attribute{style.New(style.KindTransformWillChange, style.Bool(true))}, nil
		}},

		// visibility
		"z-index":        single(style.KindZIndex, integer),
		"visibility":     single(style.KindVisibility, flag("hidden", false)),
		"pointer-events": single(style.KindEnable, lenient(style.ParseEnable, style.EnableAuto)),
		"display":        single(style.KindDisplay, lenient(style.ParseDisplay, style.DisplayFlex)),
		"overflow":       single(style.KindOverflow, flag("hidden", true)),
		"overflow-y":     single(style.KindOverflow, flag("hidden", true)),
		"as-image":       single(style.KindAsImage, keyword(style.ParseAsImage, "none | advise | force")),
		"clip-path":      single(style.KindClipPath, parseShape),

		// box model
		"width":          dim(style.KindWidth),
		"height":         dim(style.KindHeight),
		"left":           dim(style.KindPositionLeft),
		"right":          dim(style.KindPositionRight),
		"top":            dim(style.KindPositionTop),
		"bottom":         dim(style.KindPositionBottom),
		"margin-top":     dim(style.KindMarginTop),
		"margin-right":   dim(style.KindMarginRight),
		"margin-bottom":  dim(style.KindMarginBottom),
		"margin-left":    dim(style.KindMarginLeft),
		"margin":         box(style.KindMarginTop, style.KindMarginRight, style.KindMarginBottom, style.KindMarginLeft),
		"padding-top":    dim(style.KindPaddingTop),
		"padding-right":  dim(style.KindPaddingRight),
		"padding-bottom": dim(style.KindPaddingBottom),
		"padding-left":   dim(style.KindPaddingLeft),
		"padding":        box(style.KindPaddingTop, style.KindPaddingRight, style.KindPaddingBottom, style.KindPaddingLeft),
		"border-top":     dim(style.KindBorderTop),
		"border-right":   dim(style.KindBorderRight),
		"border-bottom":  dim(style.KindBorderBottom),
		"border-left":    dim(style.KindBorderLeft),
		"border":         box(style.KindBorderTop, style.KindBorderRight, style.KindBorderBottom, style.KindBorderLeft),
		"border-width":   box(style.KindBorderTop, style.KindBorderRight, style.KindBorderBottom, style.KindBorderLeft),
		"min-width":      dim(style.KindMinWidth),
		"min-height":     dim(style.KindMinHeight),
		"max-width":      dim(style.KindMaxWidth),
		"max-height":     dim(style.KindMaxHeight),

		// flex
		"direction":       single(style.KindDirection, keyword(style.ParseDirection, "inherit | ltr | rtl")),
		"flex-basis":      dim(style.KindFlexBasis),
		"flex-shrink":     single(style.KindFlexShrink, asFloat(parseNumber)),
		"flex-grow":       single(style.KindFlexGrow, asFloat(parseNumber)),
		"order":           single(style.KindOrder, integer),
		"aspect-ratio":    single(style.KindAspectRatio, aspectRatio),
		"position":        single(style.KindPositionType, keyword(style.ParsePositionType, "relative | absolute")),
		"flex-wrap":       single(style.KindFlexWrap, keyword(style.ParseFlexWrap, "nowrap | wrap | wrap-reverse")),
		"flex-direction":  single(style.KindFlexDirection, keyword(style.ParseFlexDirection, "row | column | row-reverse | column-reverse")),
		"row-gap":         single(style.KindRowGap, asFloat(parseLen)),
		"column-gap":      single(style.KindColumnGap, asFloat(parseLen)),
		"align-content":   single(style.KindAlignContent, keyword(style.ParseAlignContent, "flex-start | flex-end | center | stretch | space-between | space-around")),
		"align-items":     single(style.KindAlignItems, keyword(style.ParseAlignItems, "flex-start | flex-end | center | baseline | stretch")),
		"align-self":      single(style.KindAlignSelf, keyword(style.ParseAlignSelf, "auto | flex-start | flex-end | center | baseline | stretch")),
		"justify-content": single(style.KindJustifyContent, keyword(style.ParseJustifyContent, "flex-start | flex-end | center | space-between | space-around | space-evenly")),
		"auto-reduce":     single(style.KindAutoReduce, flag("true", true)),

		// animation
		"animation": {parse: func(st *parseState, s *stream) ([]style.Attribute, error) {
			return parseAnimation(s, st.scope)
		}},
		"animation-name": {parse: func(st *parseState, s *stream) ([]style.Attribute, error) {
			names, err := commaSeparated(s, asText(identText))
			if err != nil {
				return nil, err
			}
			return []style.Attribute{style.New(style.KindAnimationName, style.AnimationName{Names: names, Scope: st.scope})}, nil
		}},
		"animation-duration":        listOf[style.Times](style.KindAnimationDuration, parseTime),
		"animation-timing-function": listOf[style.TimingFunctions](style.KindAnimationTimingFunction, parseTimingFunction),
		"animation-delay":           listOf[style.Times](style.KindAnimationDelay, parseTime),
		"animation-iteration-count": listOf[style.IterationCounts](style.KindAnimationIterationCount, parseIterationCount),
		"animation-direction":       listOf[style.AnimationDirections](style.KindAnimationDirection, keyword(animationDirection, "normal | reverse | alternate | alternate-reverse")),
		"animation-fill-mode":       listOf[style.FillModes](style.KindAnimationFillMode, keyword(style.ParseFillMode, "none | forwards | backwards | both")),
		"animation-play-state":      listOf[style.PlayStates](style.KindAnimationPlayState, keyword(style.ParsePlayState, "paused | running")),

		// transition
		"transition":                 multi(parseTransition),
		"transition-property":        listOf[style.TransitionProperties](style.KindTransitionProperty, parseTransitionProperty),
		"transition-duration":        listOf[style.Times](style.KindTransitionDuration, parseTime),
		"transition-timing-function": listOf[style.TimingFunctions](style.KindTransitionTimingFunction, parseTimingFunction),
		"transition-delay":           listOf[style.Times](style.KindTransitionDelay, parseTime),
	}
}
