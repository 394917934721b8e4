// Package interp blends attribute values between keyframes.
//
// Continuous kinds are blended as Add(Scale(a, 1-t), Scale(b, t)). Compound
// values blend component-wise and a variant mismatch (pixels against percent,
// flat colour against gradient) keeps the variant of the left operand. All
// other kinds step from a to b only when t reaches 1.
package interp

import (
	"fmt"
	"math"

	"stylec/style"
)

var continuous [style.KindCount]bool

func init() {
	for _, k := range []style.Kind{
		style.KindFontWeight, style.KindFontSize, style.KindLetterSpacing, style.KindWordSpacing,
		style.KindLineHeight, style.KindTextIndent, style.KindColor, style.KindTextStroke,
		style.KindBorderColor, style.KindBackgroundColor, style.KindBoxShadow, style.KindOpacity,
		style.KindBorderRadius, style.KindHsi, style.KindBlur, style.KindTransformOrigin,
		style.KindTransform, style.KindTranslate, style.KindScale, style.KindRotate,
		style.KindAspectRatio, style.KindOrder, style.KindFlexBasis, style.KindClipPath,
		style.KindZIndex, style.KindWidth, style.KindHeight,
		style.KindMarginTop, style.KindMarginRight, style.KindMarginBottom, style.KindMarginLeft,
		style.KindPaddingTop, style.KindPaddingRight, style.KindPaddingBottom, style.KindPaddingLeft,
		style.KindBorderTop, style.KindBorderRight, style.KindBorderBottom, style.KindBorderLeft,
		style.KindPositionTop, style.KindPositionRight, style.KindPositionBottom, style.KindPositionLeft,
		style.KindMinWidth, style.KindMinHeight, style.KindMaxHeight, style.KindMaxWidth,
		style.KindFlexShrink, style.KindFlexGrow, style.KindRowGap, style.KindColumnGap,
	} {
		continuous[k] = true
	}
}

// Continuous reports whether values of kind k blend numerically. Every other
// kind is discrete.
func Continuous(k style.Kind) bool {
	return k < style.KindCount && continuous[k]
}

func sameKind(a, b style.Attribute) error {
	if a.Kind != b.Kind {
		return fmt.Errorf("%w: cannot combine %s with %s", style.ErrKindMismatch, a.Kind, b.Kind)
	}
	return nil
}

// Add sums two values of the same kind. Discrete kinds and reset records
// yield a unchanged.
func Add(a, b style.Attribute) (style.Attribute, error) {
	if err := sameKind(a, b); err != nil {
		return a, err
	}
	if !Continuous(a.Kind) || a.Reset || b.Reset {
		return a, nil
	}
	return style.Attribute{Kind: a.Kind, Value: add(a.Value, b.Value)}, nil
}

// Scale multiplies every numeric component of a by f. Discrete kinds and
// reset records yield a unchanged.
func Scale(a style.Attribute, f float32) style.Attribute {
	if !Continuous(a.Kind) || a.Reset {
		return a
	}
	return style.Attribute{Kind: a.Kind, Value: scale(a.Value, f)}
}

// Blend returns the value at progress t between a (t = 0) and b (t = 1).
func Blend(a, b style.Attribute, t float32) (style.Attribute, error) {
	if err := sameKind(a, b); err != nil {
		return a, err
	}
	switch {
	case t == 1:
		return b, nil
	case t == 0, !Continuous(a.Kind), a.Reset, b.Reset:
		return a, nil
	}
	return Add(Scale(a, 1-t), Scale(b, t))
}

// add combines payloads of the same Go type. Anything unexpected keeps a.
func add(a, b style.Value) style.Value {
	switch x := a.(type) {
	case style.Float:
		if y, ok := b.(style.Float); ok {
			return x + y
		}
	case style.Int:
		if y, ok := b.(style.Int); ok {
			return x + y
		}
	case style.Uint:
		if y, ok := b.(style.Uint); ok {
			return x + y
		}
	case style.Dimension:
		if y, ok := b.(style.Dimension); ok {
			return addDimension(x, y)
		}
	case style.Number:
		if y, ok := b.(style.Number); ok && x.Defined && y.Defined {
			return style.Number{Defined: true, Value: x.Value + y.Value}
		}
	case style.RGBA:
		if y, ok := b.(style.RGBA); ok {
			return addRGBA(x, y)
		}
	case style.Color:
		if y, ok := b.(style.Color); ok && x.Kind == style.ColorRGBA && y.Kind == style.ColorRGBA {
			return style.Flat(addRGBA(x.RGBA, y.RGBA))
		}
	case style.Stroke:
		if y, ok := b.(style.Stroke); ok {
			return style.Stroke{Width: x.Width.Add(y.Width), Color: addRGBA(x.Color, y.Color)}
		}
	case style.FontSize:
		if y, ok := b.(style.FontSize); ok && x.Kind == y.Kind {
			x.Length += y.Length
			x.Percent += y.Percent
			return x
		}
	case style.LineHeight:
		if y, ok := b.(style.LineHeight); ok && x.Kind == y.Kind && x.Kind != style.LineHeightNormal {
			x.Value += y.Value
			return x
		}
	case style.BoxShadow:
		if y, ok := b.(style.BoxShadow); ok {
			return style.BoxShadow{
				H: x.H + y.H, V: x.V + y.V, Blur: x.Blur + y.Blur, Spread: x.Spread + y.Spread,
				Color: addRGBA(x.Color, y.Color),
			}
		}
	case style.BorderRadius:
		if y, ok := b.(style.BorderRadius); ok {
			return addBorderRadius(x, y)
		}
	case style.Hsi:
		if y, ok := b.(style.Hsi); ok {
			return style.Hsi{HueRotate: x.HueRotate + y.HueRotate, Saturate: x.Saturate + y.Saturate, Brightness: x.Brightness + y.Brightness}
		}
	case style.TransformOrigin:
		if y, ok := b.(style.TransformOrigin); ok && x.Kind == style.OriginXY && y.Kind == style.OriginXY {
			return style.TransformOrigin{Kind: style.OriginXY, X: addLength(x.X, y.X), Y: addLength(x.Y, y.Y)}
		}
	case style.Transform:
		if y, ok := b.(style.Transform); ok {
			return addTransform(x, y)
		}
	case style.Translate:
		if y, ok := b.(style.Translate); ok {
			return style.Translate{X: addLength(x.X, y.X), Y: addLength(x.Y, y.Y)}
		}
	case style.Scale:
		if y, ok := b.(style.Scale); ok {
			return style.Scale{X: x.X + y.X, Y: x.Y + y.Y}
		}
	case style.Shape:
		if y, ok := b.(style.Shape); ok && x.Kind == y.Kind {
			return addShape(x, y)
		}
	}
	return a
}

func scale(a style.Value, f float32) style.Value {
	switch x := a.(type) {
	case style.Float:
		return x * style.Float(f)
	case style.Int:
		return style.Int(math.Round(float64(x) * float64(f)))
	case style.Uint:
		return style.Uint(math.Round(float64(x) * float64(f)))
	case style.Dimension:
		return scaleDimension(x, f)
	case style.Number:
		if x.Defined {
			x.Value *= f
		}
		return x
	case style.RGBA:
		return scaleRGBA(x, f)
	case style.Color:
		if x.Kind == style.ColorRGBA {
			return style.Flat(scaleRGBA(x.RGBA, f))
		}
		return x
	case style.Stroke:
		return style.Stroke{Width: x.Width.Scale(f), Color: scaleRGBA(x.Color, f)}
	case style.FontSize:
		x.Length = uint32(math.Round(float64(x.Length) * float64(f)))
		x.Percent *= f
		return x
	case style.LineHeight:
		if x.Kind != style.LineHeightNormal {
			x.Value *= f
		}
		return x
	case style.BoxShadow:
		return style.BoxShadow{H: x.H * f, V: x.V * f, Blur: x.Blur * f, Spread: x.Spread * f, Color: scaleRGBA(x.Color, f)}
	case style.BorderRadius:
		return scaleBorderRadius(x, f)
	case style.Hsi:
		return style.Hsi{HueRotate: x.HueRotate * f, Saturate: x.Saturate * f, Brightness: x.Brightness * f}
	case style.TransformOrigin:
		if x.Kind == style.OriginXY {
			x.X, x.Y = scaleLength(x.X, f), scaleLength(x.Y, f)
		}
		return x
	case style.Transform:
		out := make(style.Transform, len(x))
		for i, fn := range x {
			out[i] = style.TransformFunc{Kind: fn.Kind, X: scaleLength(fn.X, f), Y: scaleLength(fn.Y, f), A: fn.A * f, B: fn.B * f}
		}
		return out
	case style.Translate:
		return style.Translate{X: scaleLength(x.X, f), Y: scaleLength(x.Y, f)}
	case style.Scale:
		return style.Scale{X: x.X * f, Y: x.Y * f}
	case style.Shape:
		return scaleShape(x, f)
	}
	return a
}

func addDimension(a, b style.Dimension) style.Dimension {
	if (a.Kind == style.DimPoints || a.Kind == style.DimPercent) && a.Kind == b.Kind {
		a.Value += b.Value
	}
	return a
}

func scaleDimension(a style.Dimension, f float32) style.Dimension {
	if a.Kind == style.DimPoints || a.Kind == style.DimPercent {
		a.Value *= f
	}
	return a
}

func addLength(a, b style.LengthUnit) style.LengthUnit {
	if a.Unit == b.Unit {
		a.Value += b.Value
	}
	return a
}

func scaleLength(a style.LengthUnit, f float32) style.LengthUnit {
	a.Value *= f
	return a
}

func addRGBA(a, b style.RGBA) style.RGBA {
	return style.RGBA{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B, A: a.A + b.A}
}

func scaleRGBA(a style.RGBA, f float32) style.RGBA {
	return style.RGBA{R: a.R * f, G: a.G * f, B: a.B * f, A: a.A * f}
}

func addBorderRadius(a, b style.BorderRadius) style.BorderRadius {
	for i := range a.X {
		a.X[i] = addLength(a.X[i], b.X[i])
		a.Y[i] = addLength(a.Y[i], b.Y[i])
	}
	return a
}

func scaleBorderRadius(a style.BorderRadius, f float32) style.BorderRadius {
	for i := range a.X {
		a.X[i] = scaleLength(a.X[i], f)
		a.Y[i] = scaleLength(a.Y[i], f)
	}
	return a
}

// addTransform pairs functions by position. Lists that differ in length or
// in any function kind are not blended.
func addTransform(a, b style.Transform) style.Transform {
	if len(a) != len(b) {
		return a
	}
	out := make(style.Transform, len(a))
	for i := range a {
		if a[i].Kind != b[i].Kind {
			return a
		}
		out[i] = style.TransformFunc{
			Kind: a[i].Kind,
			X:    addLength(a[i].X, b[i].X),
			Y:    addLength(a[i].Y, b[i].Y),
			A:    a[i].A + b[i].A,
			B:    a[i].B + b[i].B,
		}
	}
	return out
}

// Unused fields of a shape are zero, so adding all of them is harmless.
func addShape(a, b style.Shape) style.Shape {
	a.Radius = addLength(a.Radius, b.Radius)
	a.RadiusY = addLength(a.RadiusY, b.RadiusY)
	a.Rotate += b.Rotate
	a.Angle += b.Angle
	a.Center = style.Center{X: addLength(a.Center.X, b.Center.X), Y: addLength(a.Center.Y, b.Center.Y)}
	for i := range a.Inset {
		a.Inset[i] = addLength(a.Inset[i], b.Inset[i])
	}
	a.BorderRadius = addBorderRadius(a.BorderRadius, b.BorderRadius)
	return a
}

func scaleShape(a style.Shape, f float32) style.Shape {
	a.Radius = scaleLength(a.Radius, f)
	a.RadiusY = scaleLength(a.RadiusY, f)
	a.Rotate *= f
	a.Angle *= f
	a.Center = style.Center{X: scaleLength(a.Center.X, f), Y: scaleLength(a.Center.Y, f)}
	for i := range a.Inset {
		a.Inset[i] = scaleLength(a.Inset[i], f)
	}
	a.BorderRadius = scaleBorderRadius(a.BorderRadius, f)
	return a
}
