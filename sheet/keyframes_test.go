package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylec/atom"
	"stylec/notnan"
	"stylec/style"
)

func TestFramesAccumulate(t *testing.T) {
	f := Frames{}
	f.Add(notnan.Must(0.5), []style.Attribute{style.New(style.KindOpacity, style.Float(0))})
	f.Add(notnan.Must(0.5), []style.Attribute{style.New(style.KindWidth, style.Points(1))})
	f.Add(notnan.Must(1), nil)
	f.Add(notnan.Zero, []style.Attribute{style.New(style.KindOpacity, style.Float(1))})

	require.Len(t, f, 2)
	assert.Len(t, f[notnan.Must(0.5)], 2)
	assert.Equal(t, []notnan.Float32{notnan.Zero, notnan.Must(0.5)}, f.Progress())
}

func TestKeyframeTable(t *testing.T) {
	kt := NewKeyframeTable(9)
	kt.Set(atom.Intern("empty"), Frames{})
	assert.Equal(t, 0, kt.Len())

	fade := atom.Intern("fade")
	kt.Set(fade, Frames{notnan.Zero: {style.New(style.KindOpacity, style.Float(0))}})
	other := NewKeyframeTable(9)
	other.Set(atom.Intern("blink"), Frames{notnan.Must(1): {style.New(style.KindOpacity, style.Float(1))}})
	kt.Extend(other)

	assert.Equal(t, []atom.Atom{atom.Intern("blink"), fade}, kt.Names())
	f, ok := kt.Frames(fade)
	require.True(t, ok)
	assert.Len(t, f, 1)
}

func TestCompute(t *testing.T) {
	attrs := []style.Attribute{
		style.New(style.KindWidth, style.Points(1)),
		style.New(style.KindDisplay, style.DisplayNone),
		style.New(style.KindVisibility, style.Bool(false)),
		style.New(style.KindEnable, style.EnableNone),
		style.New(style.KindWidth, style.Points(2)),
		style.New(style.KindColor, style.Flat(style.Black)),
		style.ResetOf(style.KindColor),
		style.New(style.KindAnimationName, style.AnimationName{Names: []style.Text{style.NewText("fade")}}),
		style.New(style.KindAnimationDuration, style.Times{500}),
		style.New(style.KindTransitionDuration, style.Times{100}),
		style.New(style.KindTransitionProperty, style.TransitionProperties{uint64(style.KindWidth)}),
	}
	s := NewClassSheet()
	_, err := s.AddClass(3, attrs)
	require.NoError(t, err)

	c, ok, err := s.Computed(3)
	require.NoError(t, err)
	require.True(t, ok)

	w, _ := c.Get(style.KindWidth)
	assert.Equal(t, style.Points(2), w)
	_, has := c.Get(style.KindColor)
	assert.False(t, has)
	assert.True(t, c.Resets.Has(style.KindColor))

	assert.Equal(t, style.DisplayNone, c.Show.Display())
	assert.False(t, c.Show.Visibility())
	assert.Equal(t, style.EnableNone, c.Show.Enable())

	slots := c.Animation.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, style.Time(500), slots[0].Duration)
	tslots := c.Transition.Slots()
	require.Len(t, tslots, 1)
	assert.Equal(t, style.Time(100), tslots[0].Duration)
}
