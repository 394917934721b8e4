package style

// Keyword enums. The numeric values are part of the record format.

// RepeatOption says how an image fills a box edge.
type RepeatOption uint8

const (
	RepeatOptionStretch RepeatOption = iota
	RepeatOptionRepeat
	RepeatOptionRound
	RepeatOptionSpace
	repeatOptionCount
)

var repeatOptionNames = [...]string{"stretch", "repeat", "round", "space"}

func (v RepeatOption) String() string { return enumName(repeatOptionNames[:], uint8(v)) }

func (v RepeatOption) encode(w *Writer) { w.u8(uint8(v)) }

// ParseRepeatOption and its siblings map a CSS keyword to the enum value.
func ParseRepeatOption(s string) (RepeatOption, bool) {
	v, ok := enumByName(repeatOptionNames[:], s)
	return RepeatOption(v), ok
}

type FontStyle uint8

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
	fontStyleCount
)

var fontStyleNames = [...]string{"normal", "italic", "oblique"}

func (v FontStyle) String() string { return enumName(fontStyleNames[:], uint8(v)) }

func (v FontStyle) encode(w *Writer) { w.u8(uint8(v)) }

func ParseFontStyle(s string) (FontStyle, bool) {
	v, ok := enumByName(fontStyleNames[:], s)
	return FontStyle(v), ok
}

type WhiteSpace uint8

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpaceNowrap
	WhiteSpacePreWrap
	WhiteSpacePre
	WhiteSpacePreLine
	whiteSpaceCount
)

var whiteSpaceNames = [...]string{"normal", "nowrap", "pre-wrap", "pre", "pre-line"}

func (v WhiteSpace) String() string { return enumName(whiteSpaceNames[:], uint8(v)) }

func (v WhiteSpace) encode(w *Writer) { w.u8(uint8(v)) }

func ParseWhiteSpace(s string) (WhiteSpace, bool) {
	v, ok := enumByName(whiteSpaceNames[:], s)
	return WhiteSpace(v), ok
}

type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
	textAlignCount
)

var textAlignNames = [...]string{"left", "right", "center", "justify"}

func (v TextAlign) String() string { return enumName(textAlignNames[:], uint8(v)) }

func (v TextAlign) encode(w *Writer) { w.u8(uint8(v)) }

func ParseTextAlign(s string) (TextAlign, bool) {
	v, ok := enumByName(textAlignNames[:], s)
	return TextAlign(v), ok
}

type VerticalAlign uint8

const (
	VerticalAlignTop VerticalAlign = iota
	VerticalAlignMiddle
	VerticalAlignBottom
	verticalAlignCount
)

var verticalAlignNames = [...]string{"top", "middle", "bottom"}

func (v VerticalAlign) String() string { return enumName(verticalAlignNames[:], uint8(v)) }

func (v VerticalAlign) encode(w *Writer) { w.u8(uint8(v)) }

func ParseVerticalAlign(s string) (VerticalAlign, bool) {
	v, ok := enumByName(verticalAlignNames[:], s)
	return VerticalAlign(v), ok
}

type ObjectFit uint8

const (
	ObjectFitNone ObjectFit = iota
	ObjectFitFill
	ObjectFitContain
	ObjectFitCover
	ObjectFitScaleDown
	objectFitCount
)

var objectFitNames = [...]string{"none", "fill", "contain", "cover", "scale-down"}

func (v ObjectFit) String() string { return enumName(objectFitNames[:], uint8(v)) }

func (v ObjectFit) encode(w *Writer) { w.u8(uint8(v)) }

func ParseObjectFit(s string) (ObjectFit, bool) {
	v, ok := enumByName(objectFitNames[:], s)
	return ObjectFit(v), ok
}

type BlendMode uint8

const (
	BlendModeNormal BlendMode = iota
	BlendModeAlphaAdd
	BlendModeSubtract
	BlendModeMultiply
	BlendModeOneOne
	blendModeCount
)

var blendModeNames = [...]string{"normal", "alpha-add", "subtract", "multiply", "one-one"}

func (v BlendMode) String() string { return enumName(blendModeNames[:], uint8(v)) }

func (v BlendMode) encode(w *Writer) { w.u8(uint8(v)) }

func ParseBlendMode(s string) (BlendMode, bool) {
	v, ok := enumByName(blendModeNames[:], s)
	return BlendMode(v), ok
}

type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
	displayCount
)

var displayNames = [...]string{"flex", "none"}

func (v Display) String() string { return enumName(displayNames[:], uint8(v)) }

func (v Display) encode(w *Writer) { w.u8(uint8(v)) }

func ParseDisplay(s string) (Display, bool) {
	v, ok := enumByName(displayNames[:], s)
	return Display(v), ok
}

// Enable is the pointer-events mode.
type Enable uint8

const (
	EnableAuto Enable = iota
	EnableNone
	EnableVisible
	enableCount
)

var enableNames = [...]string{"auto", "none", "visible"}

func (v Enable) String() string { return enumName(enableNames[:], uint8(v)) }

func (v Enable) encode(w *Writer) { w.u8(uint8(v)) }

func ParseEnable(s string) (Enable, bool) {
	v, ok := enumByName(enableNames[:], s)
	return Enable(v), ok
}

type Direction uint8

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
	directionCount
)

var directionNames = [...]string{"inherit", "ltr", "rtl"}

func (v Direction) String() string { return enumName(directionNames[:], uint8(v)) }

func (v Direction) encode(w *Writer) { w.u8(uint8(v)) }

func ParseDirection(s string) (Direction, bool) {
	v, ok := enumByName(directionNames[:], s)
	return Direction(v), ok
}

type FlexDirection uint8

const (
	FlexDirectionRow FlexDirection = iota
	FlexDirectionColumn
	FlexDirectionRowReverse
	FlexDirectionColumnReverse
	flexDirectionCount
)

var flexDirectionNames = [...]string{"row", "column", "row-reverse", "column-reverse"}

func (v FlexDirection) String() string { return enumName(flexDirectionNames[:], uint8(v)) }

func (v FlexDirection) encode(w *Writer) { w.u8(uint8(v)) }

func ParseFlexDirection(s string) (FlexDirection, bool) {
	v, ok := enumByName(flexDirectionNames[:], s)
	return FlexDirection(v), ok
}

type FlexWrap uint8

const (
	FlexWrapNoWrap FlexWrap = iota
	FlexWrapWrap
	FlexWrapWrapReverse
	flexWrapCount
)

var flexWrapNames = [...]string{"nowrap", "wrap", "wrap-reverse"}

func (v FlexWrap) String() string { return enumName(flexWrapNames[:], uint8(v)) }

func (v FlexWrap) encode(w *Writer) { w.u8(uint8(v)) }

func ParseFlexWrap(s string) (FlexWrap, bool) {
	v, ok := enumByName(flexWrapNames[:], s)
	return FlexWrap(v), ok
}

type JustifyContent uint8

const (
	JustifyContentFlexStart JustifyContent = iota
	JustifyContentFlexEnd
	JustifyContentCenter
	JustifyContentSpaceBetween
	JustifyContentSpaceAround
	JustifyContentSpaceEvenly
	justifyContentCount
)

var justifyContentNames = [...]string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"}

func (v JustifyContent) String() string { return enumName(justifyContentNames[:], uint8(v)) }

func (v JustifyContent) encode(w *Writer) { w.u8(uint8(v)) }

func ParseJustifyContent(s string) (JustifyContent, bool) {
	v, ok := enumByName(justifyContentNames[:], s)
	return JustifyContent(v), ok
}

type AlignContent uint8

const (
	AlignContentFlexStart AlignContent = iota
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceAround
	alignContentCount
)

var alignContentNames = [...]string{"flex-start", "flex-end", "center", "stretch", "space-between", "space-around"}

func (v AlignContent) String() string { return enumName(alignContentNames[:], uint8(v)) }

func (v AlignContent) encode(w *Writer) { w.u8(uint8(v)) }

func ParseAlignContent(s string) (AlignContent, bool) {
	v, ok := enumByName(alignContentNames[:], s)
	return AlignContent(v), ok
}

type AlignItems uint8

const (
	AlignItemsFlexStart AlignItems = iota
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
	alignItemsCount
)

var alignItemsNames = [...]string{"flex-start", "flex-end", "center", "baseline", "stretch"}

func (v AlignItems) String() string { return enumName(alignItemsNames[:], uint8(v)) }

func (v AlignItems) encode(w *Writer) { w.u8(uint8(v)) }

func ParseAlignItems(s string) (AlignItems, bool) {
	v, ok := enumByName(alignItemsNames[:], s)
	return AlignItems(v), ok
}

type PositionType uint8

const (
	PositionTypeRelative PositionType = iota
	PositionTypeAbsolute
	positionTypeCount
)

var positionTypeNames = [...]string{"relative", "absolute"}

func (v PositionType) String() string { return enumName(positionTypeNames[:], uint8(v)) }

func (v PositionType) encode(w *Writer) { w.u8(uint8(v)) }

func ParsePositionType(s string) (PositionType, bool) {
	v, ok := enumByName(positionTypeNames[:], s)
	return PositionType(v), ok
}

type AlignSelf uint8

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
	AlignSelfStretch
	alignSelfCount
)

var alignSelfNames = [...]string{"auto", "flex-start", "flex-end", "center", "baseline", "stretch"}

func (v AlignSelf) String() string { return enumName(alignSelfNames[:], uint8(v)) }

func (v AlignSelf) encode(w *Writer) { w.u8(uint8(v)) }

func ParseAlignSelf(s string) (AlignSelf, bool) {
	v, ok := enumByName(alignSelfNames[:], s)
	return AlignSelf(v), ok
}

// AsImage controls caching a node subtree as a texture.
type AsImage uint8

const (
	AsImageNone AsImage = iota
	AsImageAdvise
	AsImageForce
	asImageCount
)

var asImageNames = [...]string{"none", "advise", "force"}

func (v AsImage) String() string { return enumName(asImageNames[:], uint8(v)) }

func (v AsImage) encode(w *Writer) { w.u8(uint8(v)) }

func ParseAsImage(s string) (AsImage, bool) {
	v, ok := enumByName(asImageNames[:], s)
	return AsImage(v), ok
}

type OverflowWrap uint8

const (
	OverflowWrapNormal OverflowWrap = iota
	OverflowWrapAnywhere
	OverflowWrapBreakWord
	overflowWrapCount
)

var overflowWrapNames = [...]string{"normal", "anywhere", "break-word"}

func (v OverflowWrap) String() string { return enumName(overflowWrapNames[:], uint8(v)) }

func (v OverflowWrap) encode(w *Writer) { w.u8(uint8(v)) }

func ParseOverflowWrap(s string) (OverflowWrap, bool) {
	v, ok := enumByName(overflowWrapNames[:], s)
	return OverflowWrap(v), ok
}

type AnimationDirection uint8

const (
	AnimationDirectionNormal AnimationDirection = iota
	AnimationDirectionReverse
	AnimationDirectionAlternate
	AnimationDirectionAlternateReverse
	animationDirectionCount
)

var animationDirectionNames = [...]string{"normal", "reverse", "alternate", "alternate-reverse"}

func (v AnimationDirection) String() string { return enumName(animationDirectionNames[:], uint8(v)) }

func (v AnimationDirection) encode(w *Writer) { w.u8(uint8(v)) }

func ParseAnimationDirection(s string) (AnimationDirection, bool) {
	v, ok := enumByName(animationDirectionNames[:], s)
	return AnimationDirection(v), ok
}

type FillMode uint8

const (
	FillModeNone FillMode = iota
	FillModeForwards
	FillModeBackwards
	FillModeBoth
	fillModeCount
)

var fillModeNames = [...]string{"none", "forwards", "backwards", "both"}

func (v FillMode) String() string { return enumName(fillModeNames[:], uint8(v)) }

func (v FillMode) encode(w *Writer) { w.u8(uint8(v)) }

func ParseFillMode(s string) (FillMode, bool) {
	v, ok := enumByName(fillModeNames[:], s)
	return FillMode(v), ok
}

type PlayState uint8

const (
	PlayStateRunning PlayState = iota
	PlayStatePaused
	playStateCount
)

var playStateNames = [...]string{"running", "paused"}

func (v PlayState) String() string { return enumName(playStateNames[:], uint8(v)) }

func (v PlayState) encode(w *Writer) { w.u8(uint8(v)) }

func ParsePlayState(s string) (PlayState, bool) {
	v, ok := enumByName(playStateNames[:], s)
	return PlayState(v), ok
}

type StepMode uint8

const (
	StepModeJumpStart StepMode = iota
	StepModeJumpEnd
	StepModeJumpNone
	stepModeCount
)

var stepModeNames = [...]string{"jump-start", "jump-end", "jump-none"}

func (v StepMode) String() string { return enumName(stepModeNames[:], uint8(v)) }

func (v StepMode) encode(w *Writer) { w.u8(uint8(v)) }

func ParseStepMode(s string) (StepMode, bool) {
	v, ok := enumByName(stepModeNames[:], s)
	return StepMode(v), ok
}

func enumName(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "invalid"
}

func enumByName(names []string, s string) (uint8, bool) {
	for i, n := range names {
		if n == s {
			return uint8(i), true
		}
	}
	return 0, false
}

type enumValue interface {
	~uint8
	Value
}

func decodeEnum[T enumValue](limit T) decodeFunc {
	return func(r *Reader) Value {
		return T(r.enum(uint8(limit)))
	}
}
