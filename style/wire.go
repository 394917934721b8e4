package style

import (
	"encoding/binary"
	"errors"
	"math"
)

// All multi-byte fields are little-endian. Floats are IEEE 754 bit patterns,
// booleans and enums one byte, counts one byte.

var (
	ErrUnknownTag   = errors.New("unknown attribute tag")
	ErrShortBuffer  = errors.New("record truncated")
	ErrListTooLong  = errors.New("list exceeds inline capacity")
	ErrKindMismatch = errors.New("value does not belong to attribute kind")
	ErrBadValue     = errors.New("invalid encoded value")
)

// Writer appends records to a byte slice. The first error sticks and
// subsequent writes are still performed so payload sizes stay constant.
type Writer struct {
	buf []byte
	err error
}

func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) Len() int {
	return len(w.buf)
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) u8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) boolean(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func (w *Writer) u16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) u32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) u64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *Writer) f32(v float32) {
	w.u32(math.Float32bits(v))
}

func (w *Writer) zero(n int) {
	for range n {
		w.buf = append(w.buf, 0)
	}
}

// count writes the element count of an inline list and reports how many
// elements fit.
func (w *Writer) count(n, capacity int) int {
	if n > capacity {
		w.fail(ErrListTooLong)
		n = capacity
	}
	w.u8(uint8(n))
	return n
}

// Reader consumes records written by Writer.
type Reader struct {
	buf []byte
	pos int
	err error
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return make([]byte, n)
	}
	if r.Remaining() < n {
		r.fail(ErrShortBuffer)
		r.pos = len(r.buf)
		return make([]byte, n)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *Reader) u8() uint8 {
	return r.take(1)[0]
}

func (r *Reader) boolean() bool {
	switch r.u8() {
	case 0:
		return false
	case 1:
		return true
	default:
		r.fail(ErrBadValue)
		return false
	}
}

func (r *Reader) u16() uint16 {
	return binary.LittleEndian.Uint16(r.take(2))
}

func (r *Reader) u32() uint32 {
	return binary.LittleEndian.Uint32(r.take(4))
}

func (r *Reader) u64() uint64 {
	return binary.LittleEndian.Uint64(r.take(8))
}

func (r *Reader) f32() float32 {
	return math.Float32frombits(r.u32())
}

func (r *Reader) skip(n int) {
	r.take(n)
}

// count reads an inline list length and validates it against capacity.
func (r *Reader) count(capacity int) int {
	n := int(r.u8())
	if n > capacity {
		r.fail(ErrBadValue)
		return 0
	}
	return n
}

// enum reads a one byte discriminant that must be below limit.
func (r *Reader) enum(limit uint8) uint8 {
	v := r.u8()
	if v >= limit {
		r.fail(ErrBadValue)
		return 0
	}
	return v
}
