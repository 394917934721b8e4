package style

import "fmt"

// Attribute is one parsed declaration result. A reset attribute carries no
// value.
type Attribute struct {
	Kind  Kind
	Reset bool
	Value Value
}

func New(k Kind, v Value) Attribute {
	return Attribute{Kind: k, Value: v}
}

func ResetOf(k Kind) Attribute {
	return Attribute{Kind: k, Reset: true}
}

func (a Attribute) Tag() uint16 {
	return a.Kind.Tag(a.Reset)
}

func (a Attribute) String() string {
	if a.Reset {
		return a.Kind.String() + ": reset"
	}
	return fmt.Sprintf("%s: %+v", a.Kind, a.Value)
}

type kindSpec struct {
	size    int
	accepts func(Value) bool
	decode  decodeFunc
}

func is[T Value]() func(Value) bool {
	return func(v Value) bool {
		_, ok := v.(T)
		return ok
	}
}

func spec[T Value](size int, decode decodeFunc) kindSpec {
	return kindSpec{size: size, accepts: is[T](), decode: decode}
}

func enumSpec[T enumValue](limit T) kindSpec {
	return spec[T](enumSize, decodeEnum(limit))
}

var (
	floatSpec     = spec[Float](scalarSize, decodeFloat)
	textSpec      = spec[Text](textSize, decodeText)
	dimensionSpec = spec[Dimension](dimensionSize, decodeDimension)
	colorSpec     = spec[Color](colorSize, decodeColor)
	clipRectSpec  = spec[ClipRect](clipRectSize, decodeClipRect)
	boolSpec      = spec[Bool](boolSize, decodeBool)
	intSpec       = spec[Int](scalarSize, decodeInt)
	timesSpec     = spec[Times](timesSize, decodeTimes)
	timingsSpec   = spec[TimingFunctions](timingFunctionsSize, decodeTimingFunctions)
)

var kinds = [KindCount]kindSpec{
	KindBackgroundRepeat:        spec[ImageRepeat](imageRepeatSize, decodeImageRepeat),
	KindFontStyle:               enumSpec(fontStyleCount),
	KindFontWeight:              spec[Uint](scalarSize, decodeUint),
	KindFontSize:                spec[FontSize](fontSizeSize, decodeFontSize),
	KindFontFamily:              textSpec,
	KindLetterSpacing:           floatSpec,
	KindWordSpacing:             floatSpec,
	KindLineHeight:              spec[LineHeight](lineHeightSize, decodeLineHeight),
	KindTextIndent:              floatSpec,
	KindWhiteSpace:              enumSpec(whiteSpaceCount),
	KindTextAlign:               enumSpec(textAlignCount),
	KindVerticalAlign:           enumSpec(verticalAlignCount),
	KindColor:                   colorSpec,
	KindTextStroke:              spec[Stroke](strokeSize, decodeStroke),
	KindTextShadow:              spec[TextShadows](textShadowsSize, decodeTextShadows),
	KindBackgroundImage:         textSpec,
	KindBackgroundImageClip:     clipRectSpec,
	KindObjectFit:               enumSpec(objectFitCount),
	KindBackgroundColor:         colorSpec,
	KindBoxShadow:               spec[BoxShadow](boxShadowSize, decodeBoxShadow),
	KindBorderImage:             textSpec,
	KindBorderImageClip:         clipRectSpec,
	KindBorderImageSlice:        spec[BorderImageSlice](borderImageSliceSize, decodeBorderImageSlice),
	KindBorderImageRepeat:       spec[ImageRepeat](imageRepeatSize, decodeImageRepeat),
	KindBorderColor:             spec[RGBA](rgbaSize, decodeRGBA),
	KindHsi:                     spec[Hsi](hsiSize, decodeHsi),
	KindBlur:                    floatSpec,
	KindMaskImage:               spec[MaskImage](maskImageSize, decodeMaskImage),
	KindMaskImageClip:           clipRectSpec,
	KindTransform:               spec[Transform](transformSize, decodeTransform),
	KindTransformOrigin:         spec[TransformOrigin](transformOriginSize, decodeTransformOrigin),
	KindTransformWillChange:     boolSpec,
	KindBorderRadius:            spec[BorderRadius](borderRadiusSize, decodeBorderRadius),
	KindZIndex:                  intSpec,
	KindOverflow:                boolSpec,
	KindBlendMode:               enumSpec(blendModeCount),
	KindDisplay:                 enumSpec(displayCount),
	KindVisibility:              boolSpec,
	KindEnable:                  enumSpec(enableCount),
	KindWidth:                   dimensionSpec,
	KindHeight:                  dimensionSpec,
	KindMarginTop:               dimensionSpec,
	KindMarginRight:             dimensionSpec,
	KindMarginBottom:            dimensionSpec,
	KindMarginLeft:              dimensionSpec,
	KindPaddingTop:              dimensionSpec,
	KindPaddingRight:            dimensionSpec,
	KindPaddingBottom:           dimensionSpec,
	KindPaddingLeft:             dimensionSpec,
	KindBorderTop:               dimensionSpec,
	KindBorderRight:             dimensionSpec,
	KindBorderBottom:            dimensionSpec,
	KindBorderLeft:              dimensionSpec,
	KindPositionTop:             dimensionSpec,
	KindPositionRight:           dimensionSpec,
	KindPositionBottom:          dimensionSpec,
	KindPositionLeft:            dimensionSpec,
	KindMinWidth:                dimensionSpec,
	KindMinHeight:               dimensionSpec,
	KindMaxHeight:               dimensionSpec,
	KindMaxWidth:                dimensionSpec,
	KindDirection:               enumSpec(directionCount),
	KindFlexDirection:           enumSpec(flexDirectionCount),
	KindFlexWrap:                enumSpec(flexWrapCount),
	KindJustifyContent:          enumSpec(justifyContentCount),
	KindAlignContent:            enumSpec(alignContentCount),
	KindAlignItems:              enumSpec(alignItemsCount),
	KindPositionType:            enumSpec(positionTypeCount),
	KindAlignSelf:               enumSpec(alignSelfCount),
	KindFlexShrink:              floatSpec,
	KindFlexGrow:                floatSpec,
	KindAspectRatio:             spec[Number](numberSize, decodeNumber),
	KindOrder:                   intSpec,
	KindFlexBasis:               dimensionSpec,
	KindOpacity:                 floatSpec,
	KindTextContent:             textSpec,
	KindNodeState:               boolSpec,
	KindAnimationName:           spec[AnimationName](animationNameSize, decodeAnimationName),
	KindAnimationDuration:       timesSpec,
	KindAnimationTimingFunction: timingsSpec,
	KindAnimationDelay:          timesSpec,
	KindAnimationIterationCount: spec[IterationCounts](iterationsSize, decodeIterationCounts),
	KindAnimationDirection: spec[AnimationDirections](enumListSize, func(r *Reader) Value {
		return AnimationDirections(decodeDirections(r))
	}),
	KindAnimationFillMode: spec[FillModes](enumListSize, func(r *Reader) Value {
		return FillModes(decodeFillModes(r))
	}),
	KindAnimationPlayState: spec[PlayStates](enumListSize, func(r *Reader) Value {
		return PlayStates(decodePlayStates(r))
	}),
	KindClipPath:                 spec[Shape](shapeSize, decodeShape),
	KindTranslate:                spec[Translate](translateSize, decodeTranslate),
	KindScale:                    spec[Scale](scaleSize, decodeScale),
	KindRotate:                   floatSpec,
	KindAsImage:                  enumSpec(asImageCount),
	KindTextOverflow:             spec[TextOverflow](textOverflowSize, decodeTextOverflow),
	KindOverflowWrap:             enumSpec(overflowWrapCount),
	KindTransitionProperty:       spec[TransitionProperties](propertiesSize, decodeTransitionProperties),
	KindTransitionDuration:       timesSpec,
	KindTransitionTimingFunction: timingsSpec,
	KindTransitionDelay:          timesSpec,
	KindTextOuterGlow:            spec[OuterGlow](outerGlowSize, decodeOuterGlow),
	KindRowGap:                   floatSpec,
	KindColumnGap:                floatSpec,
	KindAutoReduce:               boolSpec,
}

// Accepts reports whether v is the value type of kind k.
func (k Kind) Accepts(v Value) bool {
	return k < KindCount && v != nil && kinds[k].accepts(v)
}

// EncodeAttribute appends one record. On error nothing is appended.
func EncodeAttribute(w *Writer, a Attribute) error {
	if a.Kind >= KindCount {
		return fmt.Errorf("%w: %d", ErrUnknownTag, uint16(a.Kind))
	}
	start := len(w.buf)
	w.u16(a.Tag())
	if a.Reset {
		return nil
	}
	if !a.Kind.Accepts(a.Value) {
		w.buf = w.buf[:start]
		return fmt.Errorf("%w: %s holds %T", ErrKindMismatch, a.Kind, a.Value)
	}
	a.Value.encode(w)
	if err := w.err; err != nil {
		w.buf, w.err = w.buf[:start], nil
		return fmt.Errorf("%s: %w", a.Kind, err)
	}
	if got, want := len(w.buf)-start-2, kinds[a.Kind].size; got != want {
		w.buf = w.buf[:start]
		panic(fmt.Sprintf("style: %s wrote %d payload bytes, layout says %d", a.Kind, got, want))
	}
	return nil
}

// DecodeAttribute reads one record.
func DecodeAttribute(r *Reader) (Attribute, error) {
	if r.Remaining() < 2 {
		return Attribute{}, ErrShortBuffer
	}
	k, reset, err := KindOfTag(r.u16())
	if err != nil {
		return Attribute{}, err
	}
	if reset {
		return ResetOf(k), nil
	}
	ks := kinds[k]
	if r.Remaining() < ks.size {
		return Attribute{}, fmt.Errorf("%s: %w", k, ErrShortBuffer)
	}
	v := ks.decode(r)
	if err := r.Err(); err != nil {
		return Attribute{}, fmt.Errorf("%s: %w", k, err)
	}
	return New(k, v), nil
}

// DecodeAll reads records until buf is exhausted.
func DecodeAll(buf []byte) ([]Attribute, error) {
	r := NewReader(buf)
	var out []Attribute
	for r.Remaining() > 0 {
		a, err := DecodeAttribute(r)
		if err != nil {
			return out, err
		}
		out = append(out, a)
	}
	return out, nil
}

// EncodeAll encodes attrs into a fresh buffer.
func EncodeAll(attrs []Attribute) ([]byte, error) {
	w := NewWriter(nil)
	for _, a := range attrs {
		if err := EncodeAttribute(w, a); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}
