package style

import "math"

// Time is a duration in milliseconds.
type Time uint32

type TimingKind uint8

const (
	TimingLinear TimingKind = iota
	TimingStep
	TimingCubicBezier
)

// TimingFunction describes an easing curve. The curve itself is evaluated by
// the animation runtime.
type TimingFunction struct {
	Kind  TimingKind
	Steps uint32
	Mode  StepMode
	P     [4]float32
}

func CubicBezier(x1, y1, x2, y2 float32) TimingFunction {
	return TimingFunction{Kind: TimingCubicBezier, P: [4]float32{x1, y1, x2, y2}}
}

func Steps(n uint32, mode StepMode) TimingFunction {
	return TimingFunction{Kind: TimingStep, Steps: n, Mode: mode}
}

var Linear = TimingFunction{Kind: TimingLinear}

// Named easing keywords.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1)
	EaseIn    = CubicBezier(0.42, 0, 1, 1)
	EaseOut   = CubicBezier(0, 0, 0.58, 1)
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
)

func (v TimingFunction) write(w *Writer) {
	w.u8(uint8(v.Kind))
	w.u32(v.Steps)
	v.Mode.encode(w)
	for _, p := range v.P {
		w.f32(p)
	}
}

func readTimingFunction(r *Reader) TimingFunction {
	v := TimingFunction{
		Kind:  TimingKind(r.enum(3)),
		Steps: r.u32(),
		Mode:  StepMode(r.enum(uint8(stepModeCount))),
	}
	for i := range v.P {
		v.P[i] = r.f32()
	}
	return v
}

// AnimationName lists keyframe names and the scope they were declared in.
type AnimationName struct {
	Names []Text
	Scope uint64
}

func (v AnimationName) encode(w *Writer) {
	encodeList(w, v.Names, MaxListLen, textSize, func(w *Writer, t Text) { t.encode(w) })
	w.u64(v.Scope)
}

func decodeAnimationName(r *Reader) Value {
	v := AnimationName{Names: decodeList(r, MaxListLen, readText)}
	v.Scope = r.u64()
	return v
}

type Times []Time

func (v Times) encode(w *Writer) {
	encodeList(w, v, MaxListLen, 4, func(w *Writer, t Time) { w.u32(uint32(t)) })
}

func decodeTimes(r *Reader) Value {
	return Times(decodeList(r, MaxListLen, func(r *Reader) Time { return Time(r.u32()) }))
}

type TimingFunctions []TimingFunction

func (v TimingFunctions) encode(w *Writer) {
	encodeList(w, v, MaxListLen, timingFunctionSize, func(w *Writer, t TimingFunction) { t.write(w) })
}

func decodeTimingFunctions(r *Reader) Value {
	return TimingFunctions(decodeList(r, MaxListLen, readTimingFunction))
}

// IterationCounts holds repeat counts, +Inf for infinite.
type IterationCounts []float32

func (v IterationCounts) encode(w *Writer) {
	encodeList(w, v, MaxListLen, 4, (*Writer).f32)
}

func decodeIterationCounts(r *Reader) Value {
	return IterationCounts(decodeList(r, MaxListLen, (*Reader).f32))
}

type AnimationDirections []AnimationDirection

func (v AnimationDirections) encode(w *Writer) {
	encodeList(w, v, MaxListLen, enumSize, func(w *Writer, e AnimationDirection) { e.encode(w) })
}

type FillModes []FillMode

func (v FillModes) encode(w *Writer) {
	encodeList(w, v, MaxListLen, enumSize, func(w *Writer, e FillMode) { e.encode(w) })
}

type PlayStates []PlayState

func (v PlayStates) encode(w *Writer) {
	encodeList(w, v, MaxListLen, enumSize, func(w *Writer, e PlayState) { e.encode(w) })
}

func decodeEnumList[T ~uint8](limit T) func(r *Reader) []T {
	return func(r *Reader) []T {
		return decodeList(r, MaxListLen, func(r *Reader) T { return T(r.enum(uint8(limit))) })
	}
}

var (
	decodeDirections = decodeEnumList(animationDirectionCount)
	decodeFillModes  = decodeEnumList(fillModeCount)
	decodePlayStates = decodeEnumList(playStateCount)
)

// TransitionAll is the transition-property value for "all".
const TransitionAll = math.MaxUint64

// TransitionProperties holds kind numbers (or unions of them) a transition
// applies to.
type TransitionProperties []uint64

func (v TransitionProperties) encode(w *Writer) {
	encodeList(w, v, MaxListLen, 8, (*Writer).u64)
}

func decodeTransitionProperties(r *Reader) Value {
	return TransitionProperties(decodeList(r, MaxListLen, (*Reader).u64))
}

// Animation gathers the parallel animation lists of one class.
type Animation struct {
	Name           AnimationName
	Duration       Times
	TimingFunction TimingFunctions
	IterationCount IterationCounts
	Delay          Times
	Direction      AnimationDirections
	FillMode       FillModes
	PlayState      PlayStates
}

// AnimationSlot is one resolved animation.
type AnimationSlot struct {
	Name           Text
	Scope          uint64
	Duration       Time
	TimingFunction TimingFunction
	IterationCount float32
	Delay          Time
	Direction      AnimationDirection
	FillMode       FillMode
	PlayState      PlayState
}

// cycle picks index i of list, wrapping around shorter lists. An empty list
// yields def.
func cycle[T any](list []T, i int, def T) T {
	if len(list) == 0 {
		return def
	}
	return list[i%len(list)]
}

// Slots resolves one slot per animation name.
func (a Animation) Slots() []AnimationSlot {
	out := make([]AnimationSlot, 0, len(a.Name.Names))
	for i, name := range a.Name.Names {
		out = append(out, AnimationSlot{
			Name:           name,
			Scope:          a.Name.Scope,
			Duration:       cycle(a.Duration, i, 0),
			TimingFunction: cycle(a.TimingFunction, i, Linear),
			IterationCount: cycle(a.IterationCount, i, 1),
			Delay:          cycle(a.Delay, i, 0),
			Direction:      cycle(a.Direction, i, AnimationDirectionNormal),
			FillMode:       cycle(a.FillMode, i, FillModeNone),
			PlayState:      cycle(a.PlayState, i, PlayStateRunning),
		})
	}
	return out
}

type Transition struct {
	Property       TransitionProperties
	Duration       Times
	Delay          Times
	TimingFunction TimingFunctions
}

type TransitionSlot struct {
	Property       uint64
	Duration       Time
	Delay          Time
	TimingFunction TimingFunction
}

// Slots resolves one slot per transitioned property.
func (t Transition) Slots() []TransitionSlot {
	out := make([]TransitionSlot, 0, len(t.Property))
	for i, p := range t.Property {
		out = append(out, TransitionSlot{
			Property:       p,
			Duration:       cycle(t.Duration, i, 0),
			Delay:          cycle(t.Delay, i, 0),
			TimingFunction: cycle(t.TimingFunction, i, Linear),
		})
	}
	return out
}
