package compile

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/beevik/etree"
	yaml "gopkg.in/yaml.v3"

	"stylec/config"
	"stylec/container"
	"stylec/style"
)

// Readable form of a container shared by the yaml and xml dumps.
type (
	dumpDoc struct {
		ID        string         `yaml:"id"`
		Generator string         `yaml:"generator"`
		Created   string         `yaml:"created"`
		Sources   []dumpSource   `yaml:"sources"`
		Classes   []dumpClass    `yaml:"classes"`
		Keyframes []dumpKeyframe `yaml:"keyframes,omitempty"`
	}

	dumpSource struct {
		Name  string `yaml:"name"`
		Scope string `yaml:"scope"`
		Hash  string `yaml:"hash"`
	}

	dumpAttr struct {
		Kind  string `yaml:"kind"`
		Value string `yaml:"value"`
	}

	dumpClass struct {
		ID         uint64     `yaml:"id"`
		Bytes      int        `yaml:"bytes"`
		Attributes []dumpAttr `yaml:"attributes"`
	}

	dumpFrame struct {
		Progress   float32    `yaml:"progress"`
		Attributes []dumpAttr `yaml:"attributes"`
	}

	dumpAnimation struct {
		Name   string      `yaml:"name"`
		Frames []dumpFrame `yaml:"frames"`
	}

	dumpKeyframe struct {
		Scope      string          `yaml:"scope"`
		Animations []dumpAnimation `yaml:"animations"`
	}
)

func hex(v uint64) string {
	return fmt.Sprintf("%016x", v)
}

func dumpAttrs(attrs []style.Attribute) []dumpAttr {
	out := make([]dumpAttr, 0, len(attrs))
	for _, a := range attrs {
		v := "reset"
		if !a.Reset {
			v = fmt.Sprintf("%+v", a.Value)
		}
		out = append(out, dumpAttr{Kind: a.Kind.String(), Value: v})
	}
	return out
}

func newDumpDoc(c *container.Container) (*dumpDoc, error) {
	doc := &dumpDoc{
		ID:        c.ID.String(),
		Generator: c.Generator,
		Created:   c.Created.Format(time.RFC3339),
	}
	for _, s := range c.Sources {
		doc.Sources = append(doc.Sources, dumpSource{Name: s.Name, Scope: hex(s.Scope), Hash: hex(s.Hash)})
	}
	for _, id := range c.Sheet.IDs() {
		meta := c.Sheet.Classes[id]
		attrs, err := c.Sheet.Decode(meta)
		if err != nil {
			return nil, fmt.Errorf("class %d: %w", id, err)
		}
		doc.Classes = append(doc.Classes, dumpClass{ID: id, Bytes: meta.End - meta.Start, Attributes: dumpAttrs(attrs)})
	}
	for _, t := range c.Keyframes {
		kt := dumpKeyframe{Scope: hex(t.Scope)}
		for _, name := range t.Names() {
			frames, _ := t.Frames(name)
			da := dumpAnimation{Name: name.String()}
			for _, p := range frames.Progress() {
				da.Frames = append(da.Frames, dumpFrame{Progress: p.Value(), Attributes: dumpAttrs(frames[p])})
			}
			kt.Animations = append(kt.Animations, da)
		}
		doc.Keyframes = append(doc.Keyframes, kt)
	}
	return doc, nil
}

// WriteDump writes a human readable representation of c.
func WriteDump(w io.Writer, c *container.Container, format config.DumpFormat) error {
	if format == config.DumpFormatIon {
		return container.Save(w, c, container.FormatText)
	}

	doc, err := newDumpDoc(c)
	if err != nil {
		return err
	}
	switch format {
	case config.DumpFormatYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("unable to encode yaml dump: %w", err)
		}
		return enc.Close()
	case config.DumpFormatXml:
		_, err := doc.xml().WriteTo(w)
		return err
	}
	return fmt.Errorf("unsupported dump format %s", format)
}

func xmlAttrs(parent *etree.Element, attrs []dumpAttr) {
	for _, a := range attrs {
		el := parent.CreateElement("attr")
		el.CreateAttr("kind", a.Kind)
		el.SetText(a.Value)
	}
}

func (d *dumpDoc) xml() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("container")
	root.CreateAttr("id", d.ID)
	root.CreateAttr("generator", d.Generator)
	root.CreateAttr("created", d.Created)

	sources := root.CreateElement("sources")
	for _, s := range d.Sources {
		el := sources.CreateElement("source")
		el.CreateAttr("name", s.Name)
		el.CreateAttr("scope", s.Scope)
		el.CreateAttr("hash", s.Hash)
	}

	classes := root.CreateElement("classes")
	for _, c := range d.Classes {
		el := classes.CreateElement("class")
		el.CreateAttr("id", strconv.FormatUint(c.ID, 10))
		el.CreateAttr("bytes", strconv.Itoa(c.Bytes))
		xmlAttrs(el, c.Attributes)
	}

	for _, t := range d.Keyframes {
		kt := root.CreateElement("keyframes")
		kt.CreateAttr("scope", t.Scope)
		for _, a := range t.Animations {
			ae := kt.CreateElement("animation")
			ae.CreateAttr("name", a.Name)
			for _, f := range a.Frames {
				fe := ae.CreateElement("frame")
				fe.CreateAttr("progress", strconv.FormatFloat(float64(f.Progress), 'g', -1, 32))
				xmlAttrs(fe, f.Attributes)
			}
		}
	}

	doc.Indent(2)
	return doc
}
