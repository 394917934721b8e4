package style

// Show packs display, visibility and pointer-events into one word.
type Show uint32

const (
	showDisplay    Show = 1 // set: display none
	showVisibility Show = 2
	showEnable     Show = 12
	showEnableBit       = 2
)

// DefaultShow is display flex, visible, pointer-events auto.
const DefaultShow = showVisibility

func (s Show) Display() Display {
	if s&showDisplay != 0 {
		return DisplayNone
	}
	return DisplayFlex
}

func (s *Show) SetDisplay(d Display) {
	if d == DisplayNone {
		*s |= showDisplay
	} else {
		*s &^= showDisplay
	}
}

func (s Show) Visibility() bool {
	return s&showVisibility != 0
}

func (s *Show) SetVisibility(v bool) {
	if v {
		*s |= showVisibility
	} else {
		*s &^= showVisibility
	}
}

func (s Show) Enable() Enable {
	return Enable((s & showEnable) >> showEnableBit)
}

func (s *Show) SetEnable(e Enable) {
	*s = *s&^showEnable | (Show(e)<<showEnableBit)&showEnable
}
