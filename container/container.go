// Package container persists compiled class sheets and keyframe tables as
// Amazon Ion documents.
package container

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/amazon-ion/ion-go/ion"
	"github.com/google/uuid"

	"stylec/atom"
	"stylec/misc"
	"stylec/notnan"
	"stylec/sheet"
	"stylec/style"
)

const (
	signature = "stylec-container"
	version   = 1
)

var ionBVM = []byte{0xE0, 0x01, 0x00, 0xEA}

// Format selects the Ion encoding used by Save.
type Format int

const (
	FormatBinary Format = iota
	FormatText
)

// Source describes one stylesheet merged into a container, in merge order.
type Source struct {
	Name  string
	Scope uint64
	Hash  uint64
}

// Container is a compiled set of stylesheets. Sheet holds all classes merged
// in source order; Keyframes keeps one table per scope.
type Container struct {
	ID        uuid.UUID
	Generator string
	Created   time.Time
	Sources   []Source
	Sheet     *sheet.ClassSheet
	Keyframes []*sheet.KeyframeTable
}

// New creates an empty container with a fresh time ordered identifier.
func New() (*Container, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to generate container id: %w", err)
	}
	return &Container{
		ID:        id,
		Generator: fmt.Sprintf("%s %s (%s)", misc.GetAppName(), misc.GetVersion(), misc.GetGitHash()),
		Created:   time.Now().UTC(),
		Sheet:     sheet.NewClassSheet(),
	}, nil
}

// Add merges a parsed stylesheet. Classes already present are replaced.
func (c *Container) Add(src Source, classes *sheet.ClassMap) error {
	part := sheet.NewClassSheet()
	if err := classes.ToClassSheet(part); err != nil {
		return fmt.Errorf("%s: %w", src.Name, err)
	}
	c.Sheet.Extend(part)
	if classes.Keyframes != nil && classes.Keyframes.Len() > 0 {
		c.keyframes(classes.Keyframes.Scope).Extend(classes.Keyframes)
	}
	c.Sources = append(c.Sources, src)
	return nil
}

// Merge appends everything compiled into other after c's own content, as if
// other's sources had been added to c one by one.
func (c *Container) Merge(other *Container) {
	c.Sheet.Extend(other.Sheet)
	for _, t := range other.Keyframes {
		if t.Len() > 0 {
			c.keyframes(t.Scope).Extend(t)
		}
	}
	c.Sources = append(c.Sources, other.Sources...)
}

// Frames looks up an animation declared in scope.
func (c *Container) Frames(scope uint64, name atom.Atom) (sheet.Frames, bool) {
	for _, t := range c.Keyframes {
		if t.Scope == scope {
			return t.Frames(name)
		}
	}
	return nil, false
}

func (c *Container) keyframes(scope uint64) *sheet.KeyframeTable {
	for _, t := range c.Keyframes {
		if t.Scope == scope {
			return t
		}
	}
	t := sheet.NewKeyframeTable(scope)
	c.Keyframes = append(c.Keyframes, t)
	return t
}

// IsBinary reports whether head starts with the Ion binary version marker.
func IsBinary(head []byte) bool {
	return bytes.HasPrefix(head, ionBVM)
}

// Ion document layout. Unsigned 64 bit values are stored as their int64 bit
// pattern since class ids and scopes use the full range.
type document struct {
	Signature string          `ion:"signature"`
	Version   int64           `ion:"version"`
	ID        string          `ion:"id"`
	Generator string          `ion:"generator"`
	Created   string          `ion:"created"`
	Sources   []sourceDoc     `ion:"sources"`
	Atoms     []atomDoc       `ion:"atoms"`
	Buffer    []byte          `ion:"buffer"`
	Classes   []classDoc      `ion:"classes"`
	Keyframes []keyframeTable `ion:"keyframes"`
}

type sourceDoc struct {
	Name  string `ion:"name"`
	Scope int64  `ion:"scope"`
	Hash  int64  `ion:"hash"`
}

type atomDoc struct {
	Handle int64  `ion:"handle"`
	Text   string `ion:"text"`
}

type classDoc struct {
	ID    int64 `ion:"id"`
	Start int64 `ion:"start"`
	End   int64 `ion:"end"`
}

type keyframeTable struct {
	Scope      int64          `ion:"scope"`
	Animations []animationDoc `ion:"animations"`
}

type animationDoc struct {
	Name   string     `ion:"name"`
	Frames []frameDoc `ion:"frames"`
}

type frameDoc struct {
	Progress float64 `ion:"progress"`
	Records  []byte  `ion:"records"`
}

func (c *Container) document() (*document, error) {
	doc := &document{
		Signature: signature,
		Version:   version,
		ID:        c.ID.String(),
		Generator: c.Generator,
		Created:   c.Created.Format(time.RFC3339),
		Buffer:    c.Sheet.Buffer,
	}
	for _, s := range c.Sources {
		doc.Sources = append(doc.Sources, sourceDoc{Name: s.Name, Scope: int64(s.Scope), Hash: int64(s.Hash)})
	}

	atoms := atom.Set{}
	for _, id := range c.Sheet.IDs() {
		meta := c.Sheet.Classes[id]
		attrs, err := c.Sheet.Decode(meta)
		if err != nil {
			return nil, fmt.Errorf("class %d: %w", id, err)
		}
		style.CollectAtoms(atoms, attrs...)
		doc.Classes = append(doc.Classes, classDoc{ID: int64(id), Start: int64(meta.Start), End: int64(meta.End)})
	}

	for _, t := range c.Keyframes {
		kt := keyframeTable{Scope: int64(t.Scope)}
		for _, name := range t.Names() {
			frames, _ := t.Frames(name)
			ad := animationDoc{Name: name.String()}
			for _, p := range frames.Progress() {
				attrs := frames[p]
				style.CollectAtoms(atoms, attrs...)
				records, err := style.EncodeAll(attrs)
				if err != nil {
					return nil, fmt.Errorf("keyframes %s at %v: %w", name, p.Value(), err)
				}
				ad.Frames = append(ad.Frames, frameDoc{Progress: float64(p.Value()), Records: records})
			}
			kt.Animations = append(kt.Animations, ad)
		}
		doc.Keyframes = append(doc.Keyframes, kt)
	}

	for _, a := range atoms.Sorted() {
		text, ok := atom.Lookup(a)
		if !ok {
			return nil, fmt.Errorf("atom %016x has no text", uint64(a))
		}
		doc.Atoms = append(doc.Atoms, atomDoc{Handle: int64(a), Text: text})
	}
	return doc, nil
}

// Save writes c to w as a single Ion value.
func Save(w io.Writer, c *Container, format Format) error {
	doc, err := c.document()
	if err != nil {
		return err
	}

	var iw ion.Writer
	switch format {
	case FormatBinary:
		iw = ion.NewBinaryWriter(w)
	case FormatText:
		iw = ion.NewTextWriter(w)
	default:
		return fmt.Errorf("unknown container format %d", format)
	}
	if err := ion.MarshalTo(iw, doc); err != nil {
		return fmt.Errorf("unable to marshal container: %w", err)
	}
	if err := iw.Finish(); err != nil {
		return fmt.Errorf("unable to finish container: %w", err)
	}
	return nil
}

// Load reads a container written by Save in either encoding. Interned text is
// restored and every class range is checked.
func Load(r io.Reader) (*Container, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read container: %w", err)
	}
	var doc document
	if err := ion.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unable to unmarshal container: %w", err)
	}
	if doc.Signature != signature {
		return nil, fmt.Errorf("not a stylesheet container (signature %q)", doc.Signature)
	}
	if doc.Version != version {
		return nil, fmt.Errorf("unsupported container version %d", doc.Version)
	}

	c := &Container{Generator: doc.Generator, Sheet: sheet.NewClassSheet()}
	if c.ID, err = uuid.Parse(doc.ID); err != nil {
		return nil, fmt.Errorf("bad container id: %w", err)
	}
	if c.Created, err = time.Parse(time.RFC3339, doc.Created); err != nil {
		return nil, fmt.Errorf("bad creation time: %w", err)
	}
	for _, a := range doc.Atoms {
		if err := atom.Restore(atom.Atom(a.Handle), a.Text); err != nil {
			return nil, err
		}
	}
	for _, s := range doc.Sources {
		c.Sources = append(c.Sources, Source{Name: s.Name, Scope: uint64(s.Scope), Hash: uint64(s.Hash)})
	}

	c.Sheet.Buffer = doc.Buffer
	for _, cd := range doc.Classes {
		meta := sheet.ClassMeta{Start: int(cd.Start), End: int(cd.End)}
		attrs, err := c.Sheet.Decode(meta)
		if err != nil {
			return nil, fmt.Errorf("class %d: %w", uint64(cd.ID), err)
		}
		for _, a := range attrs {
			meta.Mark.Set(a.Kind)
		}
		c.Sheet.Classes[uint64(cd.ID)] = meta
	}

	for _, kt := range doc.Keyframes {
		t := sheet.NewKeyframeTable(uint64(kt.Scope))
		for _, ad := range kt.Animations {
			frames := sheet.Frames{}
			for _, fd := range ad.Frames {
				p, err := notnan.New(float32(fd.Progress))
				if err != nil {
					return nil, fmt.Errorf("keyframes %s: %w", ad.Name, err)
				}
				attrs, err := style.DecodeAll(fd.Records)
				if err != nil {
					return nil, fmt.Errorf("keyframes %s at %v: %w", ad.Name, fd.Progress, err)
				}
				frames.Add(p, attrs)
			}
			t.Set(atom.Intern(ad.Name), frames)
		}
		c.Keyframes = append(c.Keyframes, t)
	}
	return c, nil
}
