package sheet

import (
	"sort"

	"stylec/atom"
	"stylec/notnan"
	"stylec/style"
)

// Frames maps keyframe progress in [0, 1] to the attributes set there.
type Frames map[notnan.Float32][]style.Attribute

// Progress returns the frame keys in ascending order.
func (f Frames) Progress() []notnan.Float32 {
	keys := make([]notnan.Float32, 0, len(f))
	for p := range f {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Add appends attrs to the frame at p. Empty lists are ignored.
func (f Frames) Add(p notnan.Float32, attrs []style.Attribute) {
	if len(attrs) == 0 {
		return
	}
	f[p] = append(f[p], attrs...)
}

// KeyframeTable holds named animations declared within one scope.
type KeyframeTable struct {
	Scope      uint64
	Animations map[atom.Atom]Frames
}

func NewKeyframeTable(scope uint64) *KeyframeTable {
	return &KeyframeTable{Scope: scope, Animations: make(map[atom.Atom]Frames)}
}

// Set registers frames under name, replacing a previous declaration. Empty
// frame sets are not registered.
func (t *KeyframeTable) Set(name atom.Atom, frames Frames) {
	if len(frames) == 0 {
		return
	}
	if t.Animations == nil {
		t.Animations = make(map[atom.Atom]Frames)
	}
	t.Animations[name] = frames
}

func (t *KeyframeTable) Frames(name atom.Atom) (Frames, bool) {
	f, ok := t.Animations[name]
	return f, ok
}

// Names returns animation names sorted by text.
func (t *KeyframeTable) Names() []atom.Atom {
	names := make([]atom.Atom, 0, len(t.Animations))
	for n := range t.Animations {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].String() < names[j].String() })
	return names
}

// Extend copies animations of other into t; same names are replaced.
func (t *KeyframeTable) Extend(other *KeyframeTable) {
	for name, frames := range other.Animations {
		t.Set(name, frames)
	}
}

func (t *KeyframeTable) Len() int {
	return len(t.Animations)
}
