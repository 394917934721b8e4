package sheet

import "stylec/style"

// ClassItem records how many attributes in ClassMap.Attrs belong to class ID.
type ClassItem struct {
	Count int
	ID    uint64
}

// ClassMap is the parser output: attributes of all registered classes in
// declaration order, the class list partitioning them, and keyframes.
type ClassMap struct {
	Attrs     []style.Attribute
	Classes   []ClassItem
	Keyframes *KeyframeTable
}

func NewClassMap(scope uint64) *ClassMap {
	return &ClassMap{Keyframes: NewKeyframeTable(scope)}
}

// AddClass appends one class worth of attributes.
func (m *ClassMap) AddClass(id uint64, attrs []style.Attribute) {
	m.Attrs = append(m.Attrs, attrs...)
	m.Classes = append(m.Classes, ClassItem{Count: len(attrs), ID: id})
}

// ToClassSheet encodes every class into dst in declaration order.
func (m *ClassMap) ToClassSheet(dst *ClassSheet) error {
	pos := 0
	for _, c := range m.Classes {
		if _, err := dst.AddClass(c.ID, m.Attrs[pos:pos+c.Count]); err != nil {
			return err
		}
		pos += c.Count
	}
	return nil
}
