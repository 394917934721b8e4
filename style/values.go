package style

import (
	"math"

	"stylec/atom"
	"stylec/notnan"
)

// Value is the payload of an attribute record. The set of implementations is
// closed: every value type lives in this package and knows its own layout.
type Value interface {
	encode(w *Writer)
}

type decodeFunc func(r *Reader) Value

// Inline list capacities. A list longer than its capacity cannot be encoded.
const (
	MaxGradientStops  = 16
	MaxTextShadows    = 4
	MaxTransformFuncs = 8
	MaxListLen        = 16
)

// Payload sizes in bytes.
const (
	scalarSize           = 4
	boolSize             = 1
	enumSize             = 1
	textSize             = 8
	lengthUnitSize       = 5
	dimensionSize        = 5
	numberSize           = 5
	rgbaSize             = 16
	colorStopSize        = 4 + rgbaSize
	gradientSize         = 4 + 1 + MaxGradientStops*colorStopSize
	colorSize            = 1 + gradientSize
	imageRepeatSize      = 2
	fontSizeSize         = 5
	lineHeightSize       = 5
	strokeSize           = 4 + rgbaSize
	textShadowSize       = 12 + rgbaSize
	textShadowsSize      = 1 + MaxTextShadows*textShadowSize
	clipRectSize         = 16
	boxShadowSize        = 16 + rgbaSize
	borderImageSliceSize = 17
	hsiSize              = 12
	maskImageSize        = 1 + gradientSize
	transformFuncSize    = 1 + 2*lengthUnitSize + 8
	transformSize        = 1 + MaxTransformFuncs*transformFuncSize
	transformOriginSize  = 1 + 2*lengthUnitSize
	borderRadiusSize     = 8 * lengthUnitSize
	centerSize           = 2 * lengthUnitSize
	shapeSize            = 1 + 2*lengthUnitSize + 8 + centerSize + 4*lengthUnitSize + borderRadiusSize
	translateSize        = 2 * lengthUnitSize
	scaleSize            = 8
	textOverflowSize     = 1 + textSize
	outerGlowSize        = rgbaSize + 8
	animationNameSize    = 1 + MaxListLen*textSize + 8
	timesSize            = 1 + MaxListLen*4
	timingFunctionSize   = 1 + 4 + 1 + 16
	timingFunctionsSize  = 1 + MaxListLen*timingFunctionSize
	iterationsSize       = 1 + MaxListLen*4
	enumListSize         = 1 + MaxListLen
	propertiesSize       = 1 + MaxListLen*8
)

// Float is a plain f32 payload.
type Float float32

func (v Float) encode(w *Writer) { w.f32(float32(v)) }

func decodeFloat(r *Reader) Value { return Float(r.f32()) }

// Int is a signed payload (z-index, order).
type Int int32

func (v Int) encode(w *Writer) { w.u32(uint32(v)) }

func decodeInt(r *Reader) Value { return Int(int32(r.u32())) }

// Uint is an unsigned payload (font-weight).
type Uint uint32

func (v Uint) encode(w *Writer) { w.u32(uint32(v)) }

func decodeUint(r *Reader) Value { return Uint(r.u32()) }

type Bool bool

func (v Bool) encode(w *Writer) { w.boolean(bool(v)) }

func decodeBool(r *Reader) Value { return Bool(r.boolean()) }

// Text references interned text (font family, urls, content).
type Text atom.Atom

func NewText(s string) Text {
	return Text(atom.Intern(s))
}

func (v Text) String() string { return atom.Atom(v).String() }

func (v Text) encode(w *Writer) { w.u64(uint64(v)) }

func readText(r *Reader) Text { return Text(r.u64()) }

func decodeText(r *Reader) Value { return readText(r) }

type LengthUnitKind uint8

const (
	LengthPixel LengthUnitKind = iota
	LengthPercent
)

// LengthUnit is a pixel length or a fraction of the reference size.
type LengthUnit struct {
	Unit  LengthUnitKind
	Value float32
}

func Px(v float32) LengthUnit  { return LengthUnit{Unit: LengthPixel, Value: v} }
func Pct(v float32) LengthUnit { return LengthUnit{Unit: LengthPercent, Value: v} }

func (v LengthUnit) write(w *Writer) {
	w.u8(uint8(v.Unit))
	w.f32(v.Value)
}

func readLengthUnit(r *Reader) LengthUnit {
	return LengthUnit{Unit: LengthUnitKind(r.enum(2)), Value: r.f32()}
}

type DimensionKind uint8

const (
	DimUndefined DimensionKind = iota
	DimAuto
	DimPoints
	DimPercent
)

// Dimension is a layout length.
type Dimension struct {
	Kind  DimensionKind
	Value float32
}

func Points(v float32) Dimension  { return Dimension{Kind: DimPoints, Value: v} }
func Percent(v float32) Dimension { return Dimension{Kind: DimPercent, Value: v} }

var Auto = Dimension{Kind: DimAuto}

func (v Dimension) encode(w *Writer) {
	w.u8(uint8(v.Kind))
	w.f32(v.Value)
}

func decodeDimension(r *Reader) Value {
	return Dimension{Kind: DimensionKind(r.enum(4)), Value: r.f32()}
}

// Number is an optional float (aspect-ratio).
type Number struct {
	Defined bool
	Value   float32
}

func (v Number) encode(w *Writer) {
	w.boolean(v.Defined)
	w.f32(v.Value)
}

func decodeNumber(r *Reader) Value {
	return Number{Defined: r.boolean(), Value: r.f32()}
}

// RGBA channels are normalised to [0, 1].
type RGBA struct {
	R, G, B, A float32
}

var Black = RGBA{A: 1}

func (v RGBA) encode(w *Writer) {
	w.f32(v.R)
	w.f32(v.G)
	w.f32(v.B)
	w.f32(v.A)
}

func readRGBA(r *Reader) RGBA {
	return RGBA{R: r.f32(), G: r.f32(), B: r.f32(), A: r.f32()}
}

func decodeRGBA(r *Reader) Value { return readRGBA(r) }

type ColorStop struct {
	Position float32
	Color    RGBA
}

// LinearGradient direction is in degrees, already rotated by -90.
type LinearGradient struct {
	Direction float32
	Stops     []ColorStop
}

func (v LinearGradient) write(w *Writer) {
	w.f32(v.Direction)
	encodeList(w, v.Stops, MaxGradientStops, colorStopSize, func(w *Writer, s ColorStop) {
		w.f32(s.Position)
		s.Color.encode(w)
	})
}

func readLinearGradient(r *Reader) LinearGradient {
	g := LinearGradient{Direction: r.f32()}
	g.Stops = decodeList(r, MaxGradientStops, func(r *Reader) ColorStop {
		return ColorStop{Position: r.f32(), Color: readRGBA(r)}
	})
	return g
}

type ColorKind uint8

const (
	ColorRGBA ColorKind = iota
	ColorGradient
)

// Color is either a flat colour or a linear gradient.
type Color struct {
	Kind     ColorKind
	RGBA     RGBA
	Gradient LinearGradient
}

func Flat(c RGBA) Color { return Color{Kind: ColorRGBA, RGBA: c} }

func Gradient(g LinearGradient) Color { return Color{Kind: ColorGradient, Gradient: g} }

func (v Color) encode(w *Writer) {
	w.u8(uint8(v.Kind))
	if v.Kind == ColorGradient {
		v.Gradient.write(w)
		return
	}
	v.RGBA.encode(w)
	w.zero(gradientSize - rgbaSize)
}

func decodeColor(r *Reader) Value {
	c := Color{Kind: ColorKind(r.enum(2))}
	if c.Kind == ColorGradient {
		c.Gradient = readLinearGradient(r)
		return c
	}
	c.RGBA = readRGBA(r)
	r.skip(gradientSize - rgbaSize)
	return c
}

type ImageRepeat struct {
	X, Y RepeatOption
}

func (v ImageRepeat) encode(w *Writer) {
	v.X.encode(w)
	v.Y.encode(w)
}

func decodeImageRepeat(r *Reader) Value {
	return ImageRepeat{X: RepeatOption(r.enum(uint8(repeatOptionCount))), Y: RepeatOption(r.enum(uint8(repeatOptionCount)))}
}

type FontSizeKind uint8

const (
	FontSizeNone FontSizeKind = iota
	FontSizeLength
	FontSizePercent
)

type FontSize struct {
	Kind    FontSizeKind
	Length  uint32
	Percent float32
}

func (v FontSize) encode(w *Writer) {
	w.u8(uint8(v.Kind))
	switch v.Kind {
	case FontSizeLength:
		w.u32(v.Length)
	case FontSizePercent:
		w.f32(v.Percent)
	default:
		w.u32(0)
	}
}

func decodeFontSize(r *Reader) Value {
	v := FontSize{Kind: FontSizeKind(r.enum(3))}
	bits := r.u32()
	switch v.Kind {
	case FontSizeLength:
		v.Length = bits
	case FontSizePercent:
		v.Percent = math.Float32frombits(bits)
	}
	return v
}

type LineHeightKind uint8

const (
	LineHeightNormal LineHeightKind = iota
	LineHeightLength
	LineHeightNumber
	LineHeightPercent
)

type LineHeight struct {
	Kind  LineHeightKind
	Value float32
}

func (v LineHeight) encode(w *Writer) {
	w.u8(uint8(v.Kind))
	w.f32(v.Value)
}

func decodeLineHeight(r *Reader) Value {
	return LineHeight{Kind: LineHeightKind(r.enum(4)), Value: r.f32()}
}

type Stroke struct {
	Width notnan.Float32
	Color RGBA
}

func (v Stroke) encode(w *Writer) {
	w.u32(v.Width.Bits())
	v.Color.encode(w)
}

func readNotNaN(r *Reader) notnan.Float32 {
	f, err := notnan.FromBits(r.u32())
	if err != nil {
		r.fail(ErrBadValue)
	}
	return f
}

func decodeStroke(r *Reader) Value {
	return Stroke{Width: readNotNaN(r), Color: readRGBA(r)}
}

type TextShadow struct {
	H, V, Blur float32
	Color      RGBA
}

type TextShadows []TextShadow

func (v TextShadows) encode(w *Writer) {
	encodeList(w, v, MaxTextShadows, textShadowSize, func(w *Writer, s TextShadow) {
		w.f32(s.H)
		w.f32(s.V)
		w.f32(s.Blur)
		s.Color.encode(w)
	})
}

func decodeTextShadows(r *Reader) Value {
	return TextShadows(decodeList(r, MaxTextShadows, func(r *Reader) TextShadow {
		return TextShadow{H: r.f32(), V: r.f32(), Blur: r.f32(), Color: readRGBA(r)}
	}))
}

// ClipRect holds fractions of an image, one per edge.
type ClipRect struct {
	Top, Right, Bottom, Left notnan.Float32
}

func (v ClipRect) encode(w *Writer) {
	w.u32(v.Top.Bits())
	w.u32(v.Right.Bits())
	w.u32(v.Bottom.Bits())
	w.u32(v.Left.Bits())
}

func decodeClipRect(r *Reader) Value {
	return ClipRect{Top: readNotNaN(r), Right: readNotNaN(r), Bottom: readNotNaN(r), Left: readNotNaN(r)}
}

type BoxShadow struct {
	H, V, Blur, Spread float32
	Color              RGBA
}

func (v BoxShadow) encode(w *Writer) {
	w.f32(v.H)
	w.f32(v.V)
	w.f32(v.Blur)
	w.f32(v.Spread)
	v.Color.encode(w)
}

func decodeBoxShadow(r *Reader) Value {
	return BoxShadow{H: r.f32(), V: r.f32(), Blur: r.f32(), Spread: r.f32(), Color: readRGBA(r)}
}

type BorderImageSlice struct {
	Top, Right, Bottom, Left notnan.Float32
	Fill                     bool
}

func (v BorderImageSlice) encode(w *Writer) {
	w.u32(v.Top.Bits())
	w.u32(v.Right.Bits())
	w.u32(v.Bottom.Bits())
	w.u32(v.Left.Bits())
	w.boolean(v.Fill)
}

func decodeBorderImageSlice(r *Reader) Value {
	return BorderImageSlice{Top: readNotNaN(r), Right: readNotNaN(r), Bottom: readNotNaN(r), Left: readNotNaN(r), Fill: r.boolean()}
}

// Hsi holds hue/saturation/intensity shifts. The hsi() filter stores
// normalised fractions; hue-rotate, saturate, brightness and grayscale store
// degrees and percentage points.
type Hsi struct {
	HueRotate, Saturate, Brightness float32
}

func (v Hsi) encode(w *Writer) {
	w.f32(v.HueRotate)
	w.f32(v.Saturate)
	w.f32(v.Brightness)
}

func decodeHsi(r *Reader) Value {
	return Hsi{HueRotate: r.f32(), Saturate: r.f32(), Brightness: r.f32()}
}

type MaskImageKind uint8

const (
	MaskPath MaskImageKind = iota
	MaskGradient
)

type MaskImage struct {
	Kind     MaskImageKind
	Path     Text
	Gradient LinearGradient
}

func (v MaskImage) encode(w *Writer) {
	w.u8(uint8(v.Kind))
	if v.Kind == MaskGradient {
		v.Gradient.write(w)
		return
	}
	v.Path.encode(w)
	w.zero(gradientSize - textSize)
}

func decodeMaskImage(r *Reader) Value {
	m := MaskImage{Kind: MaskImageKind(r.enum(2))}
	if m.Kind == MaskGradient {
		m.Gradient = readLinearGradient(r)
		return m
	}
	m.Path = readText(r)
	r.skip(gradientSize - textSize)
	return m
}

type TransformFuncKind uint8

const (
	FuncTranslateX TransformFuncKind = iota
	FuncTranslateY
	FuncTranslate
	FuncScaleX
	FuncScaleY
	FuncScale
	FuncRotateX
	FuncRotateY
	FuncRotateZ
	FuncSkewX
	FuncSkewY
	transformFuncCount
)

var transformFuncNames = [...]string{"translateX", "translateY", "translate", "scaleX", "scaleY", "scale", "rotateX", "rotateY", "rotateZ", "skewX", "skewY"}

func (k TransformFuncKind) String() string { return enumName(transformFuncNames[:], uint8(k)) }

// TransformFunc is one function of a transform list. Translations use X and
// Y, scales use A and B, rotations and skews use A (degrees).
type TransformFunc struct {
	Kind TransformFuncKind
	X, Y LengthUnit
	A, B float32
}

type Transform []TransformFunc

func (v Transform) encode(w *Writer) {
	encodeList(w, v, MaxTransformFuncs, transformFuncSize, func(w *Writer, f TransformFunc) {
		w.u8(uint8(f.Kind))
		f.X.write(w)
		f.Y.write(w)
		w.f32(f.A)
		w.f32(f.B)
	})
}

func decodeTransform(r *Reader) Value {
	return Transform(decodeList(r, MaxTransformFuncs, func(r *Reader) TransformFunc {
		return TransformFunc{
			Kind: TransformFuncKind(r.enum(uint8(transformFuncCount))),
			X:    readLengthUnit(r),
			Y:    readLengthUnit(r),
			A:    r.f32(),
			B:    r.f32(),
		}
	}))
}

type TransformOriginKind uint8

const (
	OriginCenter TransformOriginKind = iota
	OriginXY
)

type TransformOrigin struct {
	Kind TransformOriginKind
	X, Y LengthUnit
}

func (v TransformOrigin) encode(w *Writer) {
	w.u8(uint8(v.Kind))
	v.X.write(w)
	v.Y.write(w)
}

func decodeTransformOrigin(r *Reader) Value {
	return TransformOrigin{Kind: TransformOriginKind(r.enum(2)), X: readLengthUnit(r), Y: readLengthUnit(r)}
}

// BorderRadius corners in top-left, top-right, bottom-right, bottom-left
// order for each axis.
type BorderRadius struct {
	X, Y [4]LengthUnit
}

func (v BorderRadius) encode(w *Writer) {
	for _, l := range v.X {
		l.write(w)
	}
	for _, l := range v.Y {
		l.write(w)
	}
}

func readBorderRadius(r *Reader) BorderRadius {
	var v BorderRadius
	for i := range v.X {
		v.X[i] = readLengthUnit(r)
	}
	for i := range v.Y {
		v.Y[i] = readLengthUnit(r)
	}
	return v
}

func decodeBorderRadius(r *Reader) Value { return readBorderRadius(r) }

type Translate struct {
	X, Y LengthUnit
}

func (v Translate) encode(w *Writer) {
	v.X.write(w)
	v.Y.write(w)
}

func decodeTranslate(r *Reader) Value {
	return Translate{X: readLengthUnit(r), Y: readLengthUnit(r)}
}

type Scale struct {
	X, Y float32
}

func (v Scale) encode(w *Writer) {
	w.f32(v.X)
	w.f32(v.Y)
}

func decodeScale(r *Reader) Value {
	return Scale{X: r.f32(), Y: r.f32()}
}

type Center struct {
	X, Y LengthUnit
}

// DefaultCenter is 50% 50%.
var DefaultCenter = Center{X: Pct(0.5), Y: Pct(0.5)}

type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeEllipse
	ShapeInset
	ShapeSector
)

// Shape is a clip-path basic shape. Circle uses Radius and Center, Ellipse
// Radius, RadiusY and Center, Inset uses Inset and BorderRadius, Sector uses
// Rotate, Angle (radians), Radius and Center.
type Shape struct {
	Kind         ShapeKind
	Radius       LengthUnit
	RadiusY      LengthUnit
	Rotate       float32
	Angle        float32
	Center       Center
	Inset        [4]LengthUnit
	BorderRadius BorderRadius
}

func (v Shape) encode(w *Writer) {
	w.u8(uint8(v.Kind))
	v.Radius.write(w)
	v.RadiusY.write(w)
	w.f32(v.Rotate)
	w.f32(v.Angle)
	v.Center.X.write(w)
	v.Center.Y.write(w)
	for _, l := range v.Inset {
		l.write(w)
	}
	v.BorderRadius.encode(w)
}

func decodeShape(r *Reader) Value {
	v := Shape{
		Kind:    ShapeKind(r.enum(4)),
		Radius:  readLengthUnit(r),
		RadiusY: readLengthUnit(r),
		Rotate:  r.f32(),
		Angle:   r.f32(),
		Center:  Center{X: readLengthUnit(r), Y: readLengthUnit(r)},
	}
	for i := range v.Inset {
		v.Inset[i] = readLengthUnit(r)
	}
	v.BorderRadius = readBorderRadius(r)
	return v
}

type TextOverflowKind uint8

const (
	OverflowNone TextOverflowKind = iota
	OverflowClip
	OverflowEllipsis
	OverflowCustom
)

type TextOverflow struct {
	Kind   TextOverflowKind
	Custom Text
}

func (v TextOverflow) encode(w *Writer) {
	w.u8(uint8(v.Kind))
	v.Custom.encode(w)
}

func decodeTextOverflow(r *Reader) Value {
	return TextOverflow{Kind: TextOverflowKind(r.enum(4)), Custom: readText(r)}
}

type OuterGlow struct {
	Color     RGBA
	Distance  float32
	Intensity float32
}

func (v OuterGlow) encode(w *Writer) {
	v.Color.encode(w)
	w.f32(v.Distance)
	w.f32(v.Intensity)
}

func decodeOuterGlow(r *Reader) Value {
	return OuterGlow{Color: readRGBA(r), Distance: r.f32(), Intensity: r.f32()}
}

func encodeList[T any](w *Writer, items []T, capacity, elemSize int, enc func(*Writer, T)) {
	n := w.count(len(items), capacity)
	for _, it := range items[:n] {
		enc(w, it)
	}
	w.zero((capacity - n) * elemSize)
}

// decodeList always consumes capacity elements and keeps the counted ones.
func decodeList[T any](r *Reader, capacity int, dec func(*Reader) T) []T {
	n := r.count(capacity)
	var out []T
	if n > 0 {
		out = make([]T, 0, n)
	}
	for i := range capacity {
		v := dec(r)
		if i < n {
			out = append(out, v)
		}
	}
	return out
}
