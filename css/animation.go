package css

import (
	"math"

	"github.com/tdewolff/parse/v2/css"

	"stylec/style"
)

const (
	timeExpected   = "<time>"
	timingExpected = "ease | ease-in | ease-out | ease-in-out | linear | step-start | step-end | cubic-bezier(...) | steps(...)"
)

// commaSeparated parses a comma separated list, each item running up to the
// next comma or semicolon. A semicolon ends the list and is consumed.
func commaSeparated[T any](s *stream, f func(*stream) (T, error)) ([]T, error) {
	var list []T
	for {
		v, err := until(s, f, css.CommaToken, css.SemicolonToken)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
		if t, err := s.next(); err != nil || t.tt == css.SemicolonToken {
			break
		}
	}
	if err := checkLen(list, style.MaxListLen); err != nil {
		return nil, err
	}
	return list, nil
}

// timeOf converts a dimension token with an s or ms unit.
func timeOf(t token) (style.Time, bool) {
	if t.tt != css.DimensionToken {
		return 0, false
	}
	switch v, unit := dimension(t.data); unit {
	case "s":
		return style.Time(toUint(v * 1000)), true
	case "ms":
		return style.Time(toUint(v)), true
	}
	return 0, false
}

func parseTime(s *stream) (style.Time, error) {
	t, err := s.next()
	if err != nil {
		return 0, s.errEnd(timeExpected)
	}
	if v, ok := timeOf(t); ok {
		return v, nil
	}
	return 0, errExpected(t, timeExpected)
}

// easeKeyword resolves the timing keywords shared by the longhands and the
// shorthands.
func easeKeyword(name string) (style.TimingFunction, bool) {
	switch name {
	case "ease":
		return style.Ease, true
	case "ease-in":
		return style.EaseIn, true
	case "ease-out":
		return style.EaseOut, true
	case "ease-in-out":
		return style.EaseInOut, true
	case "linear":
		return style.Linear, true
	case "step-start":
		return style.Steps(1, style.StepModeJumpStart), true
	case "step-end":
		return style.Steps(1, style.StepModeJumpEnd), true
	}
	return style.TimingFunction{}, false
}

// shorthandEase also knows the legacy "step" keyword.
func shorthandEase(name string) (style.TimingFunction, bool) {
	if name == "step" {
		return style.Steps(1, style.StepModeJumpEnd), true
	}
	return easeKeyword(name)
}

func parseTimingFunction(s *stream) (style.TimingFunction, error) {
	t, err := s.next()
	if err != nil {
		return style.TimingFunction{}, s.errEnd(timingExpected)
	}
	switch t.tt {
	case css.IdentToken:
		if f, ok := easeKeyword(string(t.data)); ok {
			return f, nil
		}
	case css.FunctionToken:
		switch functionName(t) {
		case "cubic-bezier":
			return block(s, t, cubicBezier)
		case "linear":
			return block(s, t, func(*stream) (style.TimingFunction, error) { return style.Linear, nil })
		case "steps":
			return block(s, t, steps)
		}
	}
	return style.TimingFunction{}, errExpected(t, timingExpected)
}

// timingCall evaluates a timing function met inside a shorthand. Unknown
// functions and the arguments of linear() are ignored.
func timingCall(s *stream, t token) (style.TimingFunction, error) {
	switch functionName(t) {
	case "cubic-bezier":
		return block(s, t, cubicBezier)
	case "steps":
		return block(s, t, steps)
	}
	return style.Linear, nil
}

func cubicBezier(s *stream) (style.TimingFunction, error) {
	var p [4]float32
	for i := range p {
		if i > 0 {
			if err := s.expectComma(); err != nil {
				return style.TimingFunction{}, err
			}
		}
		v, err := s.expectNumber()
		if err != nil {
			return style.TimingFunction{}, err
		}
		p[i] = v
	}
	return style.CubicBezier(p[0], p[1], p[2], p[3]), nil
}

// steps reads "n[, <mode>]"; the mode defaults to jump-start.
func steps(s *stream) (style.TimingFunction, error) {
	const expected = "jump-start | start | jump-end | end | jump-none | jump-both"
	n, err := s.expectNumber()
	if err != nil {
		return style.TimingFunction{}, err
	}
	mode := style.StepModeJumpStart
	if s.expectComma() == nil {
		t, err := s.expect(css.IdentToken, expected)
		if err != nil {
			return style.TimingFunction{}, err
		}
		switch string(t.data) {
		case "jump-start", "start":
			mode = style.StepModeJumpStart
		case "jump-end", "end", "jump-both":
			mode = style.StepModeJumpEnd
		case "jump-none":
			mode = style.StepModeJumpNone
		default:
			return style.TimingFunction{}, errExpected(t, expected)
		}
	}
	return style.Steps(toUint(n), mode), nil
}

func parseIterationCount(s *stream) (float32, error) {
	const expected = "infinite | <number>"
	t, err := s.next()
	if err != nil {
		return 0, s.errEnd(expected)
	}
	switch {
	case t.tt == css.IdentToken && string(t.data) == "infinite":
		return float32(math.Inf(1)), nil
	case t.tt == css.NumberToken:
		return iterations(number(t.data)), nil
	}
	return 0, errExpected(t, expected)
}

// iterations maps negative counts to infinity, as older sheets wrote them.
func iterations(v float32) float32 {
	if v < 0 {
		return float32(math.Inf(1))
	}
	return v
}

// animationDirection accepts "direction" as a misspelt "normal".
func animationDirection(name string) (style.AnimationDirection, bool) {
	if name == "direction" {
		return style.AnimationDirectionNormal, true
	}
	return style.ParseAnimationDirection(name)
}

// parseAnimation reads the animation shorthand. Every comma separated entry
// yields one slot in each of the eight parallel lists.
func parseAnimation(s *stream, scope uint64) ([]style.Attribute, error) {
	entries, err := commaSeparated(s, animationEntry)
	if err != nil {
		return nil, err
	}

	var a style.Animation
	a.Name.Scope = scope
	for _, e := range entries {
		a.Name.Names = append(a.Name.Names, e.Name)
		a.Duration = append(a.Duration, e.Duration)
		a.TimingFunction = append(a.TimingFunction, e.TimingFunction)
		a.IterationCount = append(a.IterationCount, e.IterationCount)
		a.Delay = append(a.Delay, e.Delay)
		a.Direction = append(a.Direction, e.Direction)
		a.FillMode = append(a.FillMode, e.FillMode)
		a.PlayState = append(a.PlayState, e.PlayState)
	}
	return []style.Attribute{
		style.New(style.KindAnimationName, a.Name),
		style.New(style.KindAnimationDuration, a.Duration),
		style.New(style.KindAnimationTimingFunction, a.TimingFunction),
		style.New(style.KindAnimationIterationCount, a.IterationCount),
		style.New(style.KindAnimationDelay, a.Delay),
		style.New(style.KindAnimationDirection, a.Direction),
		style.New(style.KindAnimationFillMode, a.FillMode),
		style.New(style.KindAnimationPlayState, a.PlayState),
	}, nil
}

func animationEntry(s *stream) (style.AnimationSlot, error) {
	slot := style.AnimationSlot{
		TimingFunction: style.Linear,
		IterationCount: 1,
	}
	var named, timed bool
	for !s.exhausted() {
		t, _ := s.next()
		switch t.tt {
		case css.IdentToken:
			name := string(t.data)
			if d, ok := animationDirection(name); ok {
				slot.Direction = d
			} else if f, ok := shorthandEase(name); ok {
				slot.TimingFunction = f
			} else if m, ok := style.ParseFillMode(name); ok {
				slot.FillMode = m
			} else if p, ok := style.ParsePlayState(name); ok {
				slot.PlayState = p
			} else if name == "infinite" {
				slot.IterationCount = float32(math.Inf(1))
			} else if !named {
				// only the first name of an entry counts
				slot.Name, named = style.NewText(name), true
			}
		case css.DimensionToken:
			v, ok := timeOf(t)
			if !ok {
				return slot, errExpected(t, timeExpected)
			}
			if timed {
				slot.Delay = v
			} else {
				slot.Duration, timed = v, true
			}
		case css.FunctionToken:
			f, err := timingCall(s, t)
			if err != nil {
				return slot, err
			}
			slot.TimingFunction = f
		case css.NumberToken:
			slot.IterationCount = iterations(number(t.data))
		default:
			return slot, nil
		}
	}
	return slot, nil
}

// parseTransition reads the transition shorthand, one slot per entry.
func parseTransition(s *stream) ([]style.Attribute, error) {
	entries, err := commaSeparated(s, transitionEntry)
	if err != nil {
		return nil, err
	}

	var tr style.Transition
	for _, e := range entries {
		tr.Property = append(tr.Property, e.Property)
		tr.Duration = append(tr.Duration, e.Duration)
		tr.Delay = append(tr.Delay, e.Delay)
		tr.TimingFunction = append(tr.TimingFunction, e.TimingFunction)
	}
	return []style.Attribute{
		style.New(style.KindTransitionProperty, tr.Property),
		style.New(style.KindTransitionDuration, tr.Duration),
		style.New(style.KindTransitionDelay, tr.Delay),
		style.New(style.KindTransitionTimingFunction, tr.TimingFunction),
	}, nil
}

func transitionEntry(s *stream) (style.TransitionSlot, error) {
	slot := style.TransitionSlot{TimingFunction: style.Linear}
	var timed bool
	for !s.exhausted() {
		t, _ := s.next()
		switch t.tt {
		case css.IdentToken:
			name := string(t.data)
			if p, ok := transitionProperties[name]; ok {
				slot.Property = p
			} else if f, ok := shorthandEase(name); ok {
				slot.TimingFunction = f
			}
		case css.DimensionToken:
			v, ok := timeOf(t)
			if !ok {
				return slot, errExpected(t, timeExpected)
			}
			if timed {
				slot.Delay = v
			} else {
				slot.Duration, timed = v, true
			}
		case css.FunctionToken:
			f, err := timingCall(s, t)
			if err != nil {
				return slot, err
			}
			slot.TimingFunction = f
		default:
			return slot, nil
		}
	}
	return slot, nil
}

func parseTransitionProperty(s *stream) (uint64, error) {
	t, err := s.expect(css.IdentToken, "<transition-property>")
	if err != nil {
		return 0, err
	}
	if p, ok := transitionProperties[string(t.data)]; ok {
		return p, nil
	}
	return 0, errExpected(t, "<transition-property>")
}

func kindOr(kinds ...style.Kind) uint64 {
	var v uint64
	for _, k := range kinds {
		v |= uint64(k)
	}
	return v
}

// transitionProperties maps the names a transition may target to kind
// numbers. The shorthands combine their edge kinds with a bitwise or, which
// is what the animation runtime matches against.
var transitionProperties = map[string]uint64{
	"all":                   style.TransitionAll,
	"background-repeat":     uint64(style.KindBackgroundRepeat),
	"color":                 uint64(style.KindColor),
	"background-image-clip": uint64(style.KindBackgroundImageClip),
	"background-color":      uint64(style.KindBackgroundColor),
	"border-color":          uint64(style.KindBorderColor),
	"hsi":                   uint64(style.KindHsi),
	"blur":                  uint64(style.KindBlur),
	"transform":             uint64(style.KindTransform),
	"border-radius":         uint64(style.KindBorderRadius),
	"width":                 uint64(style.KindWidth),
	"height":                uint64(style.KindHeight),
	"margin":                kindOr(style.KindMarginTop, style.KindMarginRight, style.KindMarginBottom, style.KindMarginLeft),
	"margin-top":            uint64(style.KindMarginTop),
	"margin-right":          uint64(style.KindMarginRight),
	"margin-bottom":         uint64(style.KindMarginBottom),
	"margin-left":           uint64(style.KindMarginLeft),
	"padding":               kindOr(style.KindPaddingTop, style.KindPaddingRight, style.KindPaddingBottom, style.KindPaddingLeft),
	"padding-top":           uint64(style.KindPaddingTop),
	"padding-right":         uint64(style.KindPaddingRight),
	"padding-bottom":        uint64(style.KindPaddingBottom),
	"padding-left":          uint64(style.KindPaddingLeft),
	"border-width":          kindOr(style.KindBorderTop, style.KindBorderRight, style.KindBorderBottom, style.KindBorderLeft),
	"border-top":            uint64(style.KindBorderTop),
	"border-right":          uint64(style.KindBorderRight),
	"border-bottom":         uint64(style.KindBorderBottom),
	"border-left":           uint64(style.KindBorderLeft),
	"top":                   uint64(style.KindPositionTop),
	"right":                 uint64(style.KindPositionRight),
	"bottom":                uint64(style.KindPositionBottom),
	"left":                  uint64(style.KindPositionLeft),
	"min-width":             uint64(style.KindMinWidth),
	"min-height":            uint64(style.KindMinHeight),
	"max-width":             uint64(style.KindMaxWidth),
	"max-height":            uint64(style.KindMaxHeight),
	"opacity":               uint64(style.KindOpacity),
	"tanslate":              uint64(style.KindTranslate),
	"scale":                 uint64(style.KindScale),
	"rotate":                uint64(style.KindRotate),
}
