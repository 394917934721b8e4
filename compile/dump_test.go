package compile

import (
	"bytes"
	"context"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"stylec/config"
	"stylec/container"
)

func sampleContainer(t *testing.T) *container.Container {
	t.Helper()
	c, _, err := NewCompiler(defaultCompilerConfig(), zap.NewNop()).Compile(context.Background(), []Input{
		memInput("dump.css", ".c1{width:10px; opacity:0.5} .c7{height:5px} @keyframes spin{from{opacity:0}50%{opacity:1}}"),
	})
	require.NoError(t, err)
	return c
}

func TestWriteDumpYaml(t *testing.T) {
	c := sampleContainer(t)
	var buf bytes.Buffer
	require.NoError(t, WriteDump(&buf, c, config.DumpFormatYaml))

	var doc dumpDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, c.ID.String(), doc.ID)
	require.Len(t, doc.Sources, 1)
	assert.Equal(t, "dump.css", doc.Sources[0].Name)
	assert.Len(t, doc.Sources[0].Scope, 16)

	require.Len(t, doc.Classes, 2)
	assert.Equal(t, uint64(1), doc.Classes[0].ID)
	assert.Equal(t, "Width", doc.Classes[0].Attributes[0].Kind)
	assert.Equal(t, "Height", doc.Classes[1].Attributes[0].Kind)

	require.Len(t, doc.Keyframes, 1)
	require.Len(t, doc.Keyframes[0].Animations, 1)
	anim := doc.Keyframes[0].Animations[0]
	assert.Equal(t, "spin", anim.Name)
	require.Len(t, anim.Frames, 2)
	assert.Equal(t, float32(0.5), anim.Frames[1].Progress)
}

func TestWriteDumpXml(t *testing.T) {
	c := sampleContainer(t)
	var buf bytes.Buffer
	require.NoError(t, WriteDump(&buf, c, config.DumpFormatXml))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	root := doc.SelectElement("container")
	require.NotNil(t, root)
	assert.Equal(t, c.ID.String(), root.SelectAttrValue("id", ""))

	classes := root.FindElements("./classes/class")
	require.Len(t, classes, 2)
	assert.Equal(t, "7", classes[1].SelectAttrValue("id", ""))
	attr := classes[0].SelectElement("attr")
	require.NotNil(t, attr)
	assert.Equal(t, "Width", attr.SelectAttrValue("kind", ""))

	frames := root.FindElements("./keyframes/animation[@name='spin']/frame")
	assert.Len(t, frames, 2)
}

func TestWriteDumpIon(t *testing.T) {
	c := sampleContainer(t)
	var buf bytes.Buffer
	require.NoError(t, WriteDump(&buf, c, config.DumpFormatIon))
	assert.False(t, container.IsBinary(buf.Bytes()))

	got, err := container.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, c.Sheet.IDs(), got.Sheet.IDs())
}

func TestWriteDumpUnknownFormat(t *testing.T) {
	assert.Error(t, WriteDump(&bytes.Buffer{}, sampleContainer(t), config.DumpFormat(42)))
}
