// Package style defines the closed set of style attribute kinds, their value
// types and the binary record format shared by every reader and writer of
// compiled sheets.
package style

import "fmt"

// Kind numbers an attribute. The numbering is the wire contract.
type Kind uint16

const (
	KindBackgroundRepeat Kind = iota // 0
	KindFontStyle
	KindFontWeight
	KindFontSize
	KindFontFamily
	KindLetterSpacing
	KindWordSpacing
	KindLineHeight
	KindTextIndent
	KindWhiteSpace
	KindTextAlign // 10
	KindVerticalAlign
	KindColor
	KindTextStroke
	KindTextShadow
	KindBackgroundImage
	KindBackgroundImageClip
	KindObjectFit
	KindBackgroundColor
	KindBoxShadow
	KindBorderImage // 20
	KindBorderImageClip
	KindBorderImageSlice
	KindBorderImageRepeat
	KindBorderColor
	KindHsi
	KindBlur
	KindMaskImage
	KindMaskImageClip
	KindTransform
	KindTransformOrigin // 30
	KindTransformWillChange
	KindBorderRadius
	KindZIndex
	KindOverflow
	KindBlendMode
	KindDisplay
	KindVisibility
	KindEnable
	KindWidth
	KindHeight // 40
	KindMarginTop
	KindMarginRight
	KindMarginBottom
	KindMarginLeft
	KindPaddingTop
	KindPaddingRight
	KindPaddingBottom
	KindPaddingLeft
	KindBorderTop
	KindBorderRight // 50
	KindBorderBottom
	KindBorderLeft
	KindPositionTop
	KindPositionRight
	KindPositionBottom
	KindPositionLeft
	KindMinWidth
	KindMinHeight
	KindMaxHeight
	KindMaxWidth // 60
	KindDirection
	KindFlexDirection
	KindFlexWrap
	KindJustifyContent
	KindAlignContent
	KindAlignItems
	KindPositionType
	KindAlignSelf
	KindFlexShrink
	KindFlexGrow // 70
	KindAspectRatio
	KindOrder
	KindFlexBasis
	KindOpacity
	KindTextContent
	KindNodeState
	KindAnimationName
	KindAnimationDuration
	KindAnimationTimingFunction
	KindAnimationDelay // 80
	KindAnimationIterationCount
	KindAnimationDirection
	KindAnimationFillMode
	KindAnimationPlayState
	KindClipPath
	KindTranslate
	KindScale
	KindRotate
	KindAsImage
	KindTextOverflow // 90
	KindOverflowWrap
	KindTransitionProperty
	KindTransitionDuration
	KindTransitionTimingFunction
	KindTransitionDelay
	KindTextOuterGlow
	KindRowGap
	KindColumnGap
	KindAutoReduce

	// KindCount is the number of attribute kinds.
	KindCount
)

// StyleCountMax offsets reset records: tag StyleCountMax+k clears kind k.
const StyleCountMax = 255

var kindNames = [KindCount]string{
	"BackgroundRepeat",
	"FontStyle",
	"FontWeight",
	"FontSize",
	"FontFamily",
	"LetterSpacing",
	"WordSpacing",
	"LineHeight",
	"TextIndent",
	"WhiteSpace",
	"TextAlign",
	"VerticalAlign",
	"Color",
	"TextStroke",
	"TextShadow",
	"BackgroundImage",
	"BackgroundImageClip",
	"ObjectFit",
	"BackgroundColor",
	"BoxShadow",
	"BorderImage",
	"BorderImageClip",
	"BorderImageSlice",
	"BorderImageRepeat",
	"BorderColor",
	"Hsi",
	"Blur",
	"MaskImage",
	"MaskImageClip",
	"Transform",
	"TransformOrigin",
	"TransformWillChange",
	"BorderRadius",
	"ZIndex",
	"Overflow",
	"BlendMode",
	"Display",
	"Visibility",
	"Enable",
	"Width",
	"Height",
	"MarginTop",
	"MarginRight",
	"MarginBottom",
	"MarginLeft",
	"PaddingTop",
	"PaddingRight",
	"PaddingBottom",
	"PaddingLeft",
	"BorderTop",
	"BorderRight",
	"BorderBottom",
	"BorderLeft",
	"PositionTop",
	"PositionRight",
	"PositionBottom",
	"PositionLeft",
	"MinWidth",
	"MinHeight",
	"MaxHeight",
	"MaxWidth",
	"Direction",
	"FlexDirection",
	"FlexWrap",
	"JustifyContent",
	"AlignContent",
	"AlignItems",
	"PositionType",
	"AlignSelf",
	"FlexShrink",
	"FlexGrow",
	"AspectRatio",
	"Order",
	"FlexBasis",
	"Opacity",
	"TextContent",
	"NodeState",
	"AnimationName",
	"AnimationDuration",
	"AnimationTimingFunction",
	"AnimationDelay",
	"AnimationIterationCount",
	"AnimationDirection",
	"AnimationFillMode",
	"AnimationPlayState",
	"ClipPath",
	"Translate",
	"Scale",
	"Rotate",
	"AsImage",
	"TextOverflow",
	"OverflowWrap",
	"TransitionProperty",
	"TransitionDuration",
	"TransitionTimingFunction",
	"TransitionDelay",
	"TextOuterGlow",
	"RowGap",
	"ColumnGap",
	"AutoReduce",
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

// KindByName resolves a kind from its String form.
func KindByName(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// PayloadSize is the fixed number of bytes following the tag of a value
// record of this kind.
func (k Kind) PayloadSize() int {
	if k >= KindCount {
		return -1
	}
	return kinds[k].size
}

// Tag returns the record tag for a value (reset false) or reset record.
func (k Kind) Tag(reset bool) uint16 {
	if reset {
		return uint16(k) + StyleCountMax
	}
	return uint16(k)
}

// KindOfTag splits a record tag into its kind and reset flag.
func KindOfTag(tag uint16) (Kind, bool, error) {
	reset := false
	if tag >= StyleCountMax {
		tag -= StyleCountMax
		reset = true
	}
	if tag >= uint16(KindCount) {
		return 0, false, fmt.Errorf("%w: %d", ErrUnknownTag, tag)
	}
	return Kind(tag), reset, nil
}
