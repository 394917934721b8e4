// Package notnan provides a float32 that can never hold NaN, so it may be
// used as a map key and compared by bit pattern.
package notnan

import (
	"errors"
	"math"
)

var ErrNaN = errors.New("value is NaN")

// Float32 stores the bit pattern of a non-NaN float32. Negative zero is
// normalised to positive zero so equal values always share one key.
type Float32 struct {
	bits uint32
}

// Zero is the additive identity.
var Zero = Float32{}

// New validates v.
func New(v float32) (Float32, error) {
	if v != v {
		return Zero, ErrNaN
	}
	if v == 0 {
		v = 0
	}
	return Float32{bits: math.Float32bits(v)}, nil
}

// Must is New for values known at compile time. It panics on NaN.
func Must(v float32) Float32 {
	f, err := New(v)
	if err != nil {
		panic(err)
	}
	return f
}

// OrZero is New with NaN collapsed to zero. Used where arithmetic on valid
// operands can still overflow into NaN (inf - inf).
func OrZero(v float32) Float32 {
	f, err := New(v)
	if err != nil {
		return Zero
	}
	return f
}

// FromBits restores a value written with Bits.
func FromBits(bits uint32) (Float32, error) {
	return New(math.Float32frombits(bits))
}

func (f Float32) Value() float32 {
	return math.Float32frombits(f.bits)
}

func (f Float32) Bits() uint32 {
	return f.bits
}

func (f Float32) Less(o Float32) bool {
	return f.Value() < o.Value()
}

func (f Float32) Add(o Float32) Float32 {
	return OrZero(f.Value() + o.Value())
}

func (f Float32) Scale(k float32) Float32 {
	return OrZero(f.Value() * k)
}
