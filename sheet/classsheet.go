// Package sheet holds compiled class sheets and keyframe tables.
package sheet

import (
	"fmt"
	"sort"

	"stylec/style"
)

// ClassMeta locates the records of one class inside a sheet buffer.
type ClassMeta struct {
	Start int
	End   int
	Mark  Mark
}

// ClassSheet is an append-only record buffer plus a per-class index. A sheet
// must not be mutated once published to readers.
type ClassSheet struct {
	Buffer  []byte
	Classes map[uint64]ClassMeta
}

func NewClassSheet() *ClassSheet {
	return &ClassSheet{Classes: make(map[uint64]ClassMeta)}
}

// AddClass encodes attrs at the end of the buffer and registers them under
// id, replacing any previous record for id. On error the buffer is left
// unchanged.
func (s *ClassSheet) AddClass(id uint64, attrs []style.Attribute) (ClassMeta, error) {
	if s.Classes == nil {
		s.Classes = make(map[uint64]ClassMeta)
	}
	w := style.NewWriter(s.Buffer)
	meta := ClassMeta{Start: len(s.Buffer)}
	for _, a := range attrs {
		if err := style.EncodeAttribute(w, a); err != nil {
			s.Buffer = s.Buffer[:meta.Start]
			return ClassMeta{}, fmt.Errorf("class %d: %w", id, err)
		}
		meta.Mark.Set(a.Kind)
	}
	s.Buffer = w.Bytes()
	meta.End = len(s.Buffer)
	s.Classes[id] = meta
	return meta, nil
}

// Extend appends src after s and rebases its records. Ids present in both
// take the record from src.
func (s *ClassSheet) Extend(src *ClassSheet) {
	if s.Classes == nil {
		s.Classes = make(map[uint64]ClassMeta, len(src.Classes))
	}
	offset := len(s.Buffer)
	s.Buffer = append(s.Buffer, src.Buffer...)
	for id, meta := range src.Classes {
		meta.Start += offset
		meta.End += offset
		s.Classes[id] = meta
	}
}

// Decode reads the records of meta.
func (s *ClassSheet) Decode(meta ClassMeta) ([]style.Attribute, error) {
	if meta.Start < 0 || meta.Start > meta.End || meta.End > len(s.Buffer) {
		return nil, fmt.Errorf("range [%d,%d) outside buffer of %d bytes", meta.Start, meta.End, len(s.Buffer))
	}
	return style.DecodeAll(s.Buffer[meta.Start:meta.End])
}

// Class decodes the records of class id. ok is false when the class is not
// registered.
func (s *ClassSheet) Class(id uint64) (attrs []style.Attribute, ok bool, err error) {
	meta, ok := s.Classes[id]
	if !ok {
		return nil, false, nil
	}
	attrs, err = s.Decode(meta)
	return attrs, true, err
}

// IDs returns registered class ids in ascending order.
func (s *ClassSheet) IDs() []uint64 {
	ids := make([]uint64, 0, len(s.Classes))
	for id := range s.Classes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Verify checks every class range decodes completely and that its mark
// matches the kinds found.
func (s *ClassSheet) Verify() error {
	for _, id := range s.IDs() {
		meta := s.Classes[id]
		attrs, err := s.Decode(meta)
		if err != nil {
			return fmt.Errorf("class %d: %w", id, err)
		}
		var m Mark
		for _, a := range attrs {
			m.Set(a.Kind)
		}
		if m != meta.Mark {
			return fmt.Errorf("class %d: mark %v does not match records %v", id, meta.Mark.Kinds(), m.Kinds())
		}
	}
	return nil
}
