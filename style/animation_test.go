package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimationSlotsCycleShorterLists(t *testing.T) {
	a := Animation{
		Name:           AnimationName{Names: []Text{NewText("a"), NewText("b"), NewText("c")}, Scope: 7},
		Duration:       Times{100, 200},
		IterationCount: IterationCounts{2},
		Direction:      AnimationDirections{AnimationDirectionReverse, AnimationDirectionAlternate},
	}
	slots := a.Slots()
	require.Len(t, slots, 3)
	assert.Equal(t, []Time{100, 200, 100}, []Time{slots[0].Duration, slots[1].Duration, slots[2].Duration})
	assert.Equal(t, AnimationDirectionReverse, slots[2].Direction)
	assert.Equal(t, float32(2), slots[1].IterationCount)
	assert.Equal(t, Linear, slots[0].TimingFunction)
	assert.Equal(t, PlayStateRunning, slots[2].PlayState)
	assert.Equal(t, uint64(7), slots[2].Scope)
	assert.Equal(t, "c", slots[2].Name.String())
}

func TestTransitionSlots(t *testing.T) {
	tr := Transition{
		Property:       TransitionProperties{uint64(KindWidth), uint64(KindOpacity)},
		Duration:       Times{300},
		TimingFunction: TimingFunctions{EaseIn, EaseOut},
	}
	slots := tr.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, Time(300), slots[1].Duration)
	assert.Equal(t, EaseOut, slots[1].TimingFunction)
	assert.Equal(t, Time(0), slots[0].Delay)
}
