package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylec/notnan"
	"stylec/style"
)

func TestContinuousTable(t *testing.T) {
	for _, k := range []style.Kind{style.KindWidth, style.KindOpacity, style.KindTransform, style.KindBackgroundColor, style.KindClipPath} {
		assert.True(t, Continuous(k), k.String())
	}
	for _, k := range []style.Kind{style.KindTextAlign, style.KindDisplay, style.KindFontStyle, style.KindAnimationName, style.KindTextShadow} {
		assert.False(t, Continuous(k), k.String())
	}
	assert.False(t, Continuous(style.KindCount))
}

func TestBlendBoundaries(t *testing.T) {
	pairs := [][2]style.Attribute{
		{style.New(style.KindWidth, style.Points(10)), style.New(style.KindWidth, style.Points(30))},
		{style.New(style.KindOpacity, style.Float(0)), style.New(style.KindOpacity, style.Float(1))},
		{style.New(style.KindColor, style.Flat(style.RGBA{R: 1, A: 1})), style.New(style.KindColor, style.Flat(style.RGBA{B: 1, A: 0.5}))},
		{style.New(style.KindZIndex, style.Int(1)), style.New(style.KindZIndex, style.Int(9))},
		{style.New(style.KindHeight, style.Points(10)), style.New(style.KindHeight, style.Percent(0.5))},
		{style.New(style.KindTextAlign, style.TextAlignLeft), style.New(style.KindTextAlign, style.TextAlignRight)},
		{style.New(style.KindTransform, style.Transform{{Kind: style.FuncTranslateX, X: style.Px(0)}}),
			style.New(style.KindTransform, style.Transform{{Kind: style.FuncTranslateX, X: style.Px(100)}})},
	}
	for _, p := range pairs {
		got, err := Blend(p[0], p[1], 0)
		require.NoError(t, err)
		assert.Equal(t, p[0], got, "t=0 %s", p[0].Kind)

		got, err = Blend(p[0], p[1], 1)
		require.NoError(t, err)
		assert.Equal(t, p[1], got, "t=1 %s", p[0].Kind)
	}
}

func TestBlendMidpoint(t *testing.T) {
	got, err := Blend(style.New(style.KindWidth, style.Points(10)), style.New(style.KindWidth, style.Points(30)), 0.5)
	require.NoError(t, err)
	assert.Equal(t, style.New(style.KindWidth, style.Points(20)), got)

	got, err = Blend(
		style.New(style.KindColor, style.Flat(style.RGBA{R: 1, A: 1})),
		style.New(style.KindColor, style.Flat(style.RGBA{B: 1, A: 1})),
		0.5)
	require.NoError(t, err)
	assert.Equal(t, style.Flat(style.RGBA{R: 0.5, B: 0.5, A: 1}), got.Value)

	got, err = Blend(
		style.New(style.KindTransform, style.Transform{{Kind: style.FuncTranslateX, X: style.Px(0)}, {Kind: style.FuncRotateZ, A: 90}}),
		style.New(style.KindTransform, style.Transform{{Kind: style.FuncTranslateX, X: style.Px(100)}, {Kind: style.FuncRotateZ, A: 0}}),
		0.25)
	require.NoError(t, err)
	assert.Equal(t, style.Transform{{Kind: style.FuncTranslateX, X: style.Px(25)}, {Kind: style.FuncRotateZ, A: 67.5}}, got.Value)
}

func TestBlendVariantMismatchKeepsLeft(t *testing.T) {
	got, err := Blend(style.New(style.KindHeight, style.Points(10)), style.New(style.KindHeight, style.Percent(0.5)), 0.5)
	require.NoError(t, err)
	assert.Equal(t, style.Points(5), got.Value)

	g := style.Gradient(style.LinearGradient{Stops: []style.ColorStop{{Position: 0, Color: style.Black}}})
	flat := style.Flat(style.RGBA{R: 1, A: 1})
	got, err = Blend(style.New(style.KindBackgroundColor, flat), style.New(style.KindBackgroundColor, g), 0.5)
	require.NoError(t, err)
	assert.Equal(t, style.Flat(style.RGBA{R: 0.5, A: 0.5}), got.Value)

	got, err = Blend(style.New(style.KindBackgroundColor, g), style.New(style.KindBackgroundColor, flat), 0.5)
	require.NoError(t, err)
	assert.Equal(t, g, got.Value)

	a := style.Transform{{Kind: style.FuncScale, A: 1, B: 1}}
	b := style.Transform{{Kind: style.FuncScale, A: 2, B: 2}, {Kind: style.FuncRotateZ, A: 10}}
	sum, err := Add(style.New(style.KindTransform, a), style.New(style.KindTransform, b))
	require.NoError(t, err)
	assert.Equal(t, a, sum.Value)
}

func TestBlendDiscreteSteps(t *testing.T) {
	a := style.New(style.KindDisplay, style.DisplayFlex)
	b := style.New(style.KindDisplay, style.DisplayNone)
	for _, tt := range []float32{0, 0.25, 0.5, 0.999} {
		got, err := Blend(a, b, tt)
		require.NoError(t, err)
		assert.Equal(t, a, got, "t=%v", tt)
	}
	got, err := Blend(a, b, 1)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestBlendResetIsDiscrete(t *testing.T) {
	a := style.New(style.KindWidth, style.Points(10))
	b := style.ResetOf(style.KindWidth)
	got, err := Blend(a, b, 0.5)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestKindMismatch(t *testing.T) {
	_, err := Blend(style.New(style.KindWidth, style.Points(1)), style.New(style.KindHeight, style.Points(1)), 0.5)
	assert.ErrorIs(t, err, style.ErrKindMismatch)
	_, err = Add(style.New(style.KindWidth, style.Points(1)), style.New(style.KindHeight, style.Points(1)))
	assert.ErrorIs(t, err, style.ErrKindMismatch)
}

func TestCompoundValues(t *testing.T) {
	stroke := style.Stroke{Width: notnan.Must(2), Color: style.RGBA{R: 1, A: 1}}
	scaled := Scale(style.New(style.KindTextStroke, stroke), 0.5)
	assert.Equal(t, style.Stroke{Width: notnan.Must(1), Color: style.RGBA{R: 0.5, A: 0.5}}, scaled.Value)

	fs := Scale(style.New(style.KindFontSize, style.FontSize{Kind: style.FontSizeLength, Length: 15}), 0.5)
	assert.Equal(t, style.FontSize{Kind: style.FontSizeLength, Length: 8}, fs.Value)

	lh := Scale(style.New(style.KindLineHeight, style.LineHeight{Kind: style.LineHeightPercent, Value: 2}), 0.5)
	assert.Equal(t, style.LineHeight{Kind: style.LineHeightPercent, Value: 1}, lh.Value)

	circle := func(r float32) style.Attribute {
		return style.New(style.KindClipPath, style.Shape{Kind: style.ShapeCircle, Radius: style.Px(r), Center: style.DefaultCenter})
	}
	got, err := Blend(circle(10), circle(20), 0.5)
	require.NoError(t, err)
	assert.Equal(t, circle(15), got)

	na := style.New(style.KindAspectRatio, style.Number{})
	nb := style.New(style.KindAspectRatio, style.Number{Defined: true, Value: 2})
	got, err = Blend(na, nb, 0.5)
	require.NoError(t, err)
	assert.Equal(t, style.Number{}, got.Value)
}
