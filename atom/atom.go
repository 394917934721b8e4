// Package atom interns strings behind fixed size handles so records that
// reference text stay constant width and can be moved between buffers
// without rewriting.
package atom

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Atom is the xxhash64 of the interned text. The zero Atom is the empty
// string.
type Atom uint64

var table = struct {
	sync.RWMutex
	text map[Atom]string
}{text: map[Atom]string{}}

// Intern registers s and returns its handle.
func Intern(s string) Atom {
	if s == "" {
		return 0
	}
	a := Atom(xxhash.Sum64String(s))
	table.RLock()
	old, ok := table.text[a]
	table.RUnlock()
	if ok {
		if old != s {
			panic(fmt.Sprintf("atom collision between %q and %q", old, s))
		}
		return a
	}
	table.Lock()
	table.text[a] = s
	table.Unlock()
	return a
}

// Lookup returns the text behind a, false if a was never interned in this
// process.
func Lookup(a Atom) (string, bool) {
	if a == 0 {
		return "", true
	}
	table.RLock()
	defer table.RUnlock()
	s, ok := table.text[a]
	return s, ok
}

// Restore registers text loaded from a persisted table and verifies that it
// hashes to the recorded handle.
func Restore(a Atom, s string) error {
	if got := Intern(s); got != a {
		return fmt.Errorf("atom %016x does not match text %q (%016x)", uint64(a), s, uint64(got))
	}
	return nil
}

func (a Atom) String() string {
	if s, ok := Lookup(a); ok {
		return s
	}
	return fmt.Sprintf("#%016x", uint64(a))
}

// Set collects distinct atoms.
type Set map[Atom]struct{}

func (s Set) Add(a Atom) {
	if a != 0 {
		s[a] = struct{}{}
	}
}

// Sorted returns the members ordered by handle.
func (s Set) Sorted() []Atom {
	out := make([]Atom, 0, len(s))
	for a := range s {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
