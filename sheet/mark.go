package sheet

import (
	"math/bits"

	"stylec/style"
)

// Mark has one bit per attribute kind.
type Mark [4]uint32

func (m *Mark) Set(k style.Kind) {
	m[k/32] |= 1 << (k % 32)
}

func (m Mark) Has(k style.Kind) bool {
	if k >= style.KindCount {
		return false
	}
	return m[k/32]&(1<<(k%32)) != 0
}

func (m Mark) Count() int {
	n := 0
	for _, w := range m {
		n += bits.OnesCount32(w)
	}
	return n
}

// Kinds lists the set kinds in ascending order.
func (m Mark) Kinds() []style.Kind {
	var out []style.Kind
	for k := style.Kind(0); k < style.KindCount; k++ {
		if m.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

func (m Mark) Or(o Mark) Mark {
	for i := range m {
		m[i] |= o[i]
	}
	return m
}
