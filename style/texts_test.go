package style

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stylec/atom"
)

func TestCollectAtoms(t *testing.T) {
	set := atom.Set{}
	CollectAtoms(set,
		New(KindFontFamily, NewText("serif")),
		New(KindAnimationName, AnimationName{Names: []Text{NewText("fade"), NewText("spin")}}),
		New(KindMaskImage, MaskImage{Kind: MaskPath, Path: NewText("mask.png")}),
		New(KindTextOverflow, TextOverflow{Kind: OverflowEllipsis}),
		ResetOf(KindBackgroundImage),
		New(KindWidth, Points(1)),
	)

	var got []string
	for _, a := range set.Sorted() {
		got = append(got, a.String())
	}
	assert.ElementsMatch(t, []string{"serif", "fade", "spin", "mask.png"}, got)
}
