package compile

import (
	stdzip "archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"stylec/container"
)

func writeFile(t *testing.T, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, os.WriteFile(name, data, 0644))
}

func writeZip(t *testing.T, name string, entries map[string]string) {
	t.Helper()
	var buf bytes.Buffer
	w := stdzip.NewWriter(&buf)
	for n, content := range entries {
		fw, err := w.Create(n)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	writeFile(t, name, buf.Bytes())
}

func names(inputs []Input) []string {
	var out []string
	for _, in := range inputs {
		out = append(out, in.Name)
	}
	return out
}

func TestIncludePattern(t *testing.T) {
	p, err := IncludePattern([]string{"**/*.css"})
	require.NoError(t, err)
	assert.Equal(t, "**/*.css", p)

	p, err = IncludePattern([]string{"**/*.css", "*.style"})
	require.NoError(t, err)
	assert.Equal(t, "{**/*.css,*.style}", p)

	_, err = IncludePattern(nil)
	assert.Error(t, err)
	_, err = IncludePattern([]string{"[bad"})
	assert.Error(t, err)
}

func TestCollectDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"sheet10.css", "sheet2.css", "sub/sheet1.css", "notes.txt", "sub/deeper/x.css"} {
		writeFile(t, filepath.Join(dir, filepath.FromSlash(n)), []byte(".c1{width:1px}"))
	}

	inputs, err := Collect(context.Background(), []string{dir}, "**/*.css", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"sheet2.css", "sheet10.css", "sub/deeper/x.css", "sub/sheet1.css"}, names(inputs))

	inputs, err = Collect(context.Background(), []string{dir}, "*.css", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"sheet2.css", "sheet10.css"}, names(inputs))

	data, err := inputs[0].Read(nil)
	require.NoError(t, err)
	assert.Equal(t, ".c1{width:1px}", string(data))
}

func TestCollectArchiveAndFiles(t *testing.T) {
	dir := t.TempDir()
	arc := filepath.Join(dir, "themes.zip")
	writeZip(t, arc, map[string]string{
		"b.css":      ".c2{width:2px}",
		"a/a.css":    ".c1{width:1px}",
		"readme.txt": "x",
	})
	single := filepath.Join(dir, "single.style")
	writeFile(t, single, []byte(".c3{width:3px}"))

	// sources keep command line order, names are sorted within a source
	inputs, err := Collect(context.Background(), []string{single, arc}, "**/*.css", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"single.style", "a/a.css", "b.css"}, names(inputs))
	assert.Equal(t, arc+":a/a.css", inputs[1].Origin)

	data, err := inputs[2].Read(nil)
	require.NoError(t, err)
	assert.Equal(t, ".c2{width:2px}", string(data))

	_, err = Collect(context.Background(), []string{filepath.Join(dir, "missing.css")}, "**/*.css", zap.NewNop())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Collect(ctx, []string{single}, "**/*.css", zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollectRecognizesContainers(t *testing.T) {
	c, err := container.New()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, container.Save(&buf, c, container.FormatBinary))

	dir := t.TempDir()
	file := filepath.Join(dir, "base.ion")
	writeFile(t, file, buf.Bytes())

	inputs, err := Collect(context.Background(), []string{file}, "**/*.css", zap.NewNop())
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.True(t, inputs[0].Container)

	inputs, err = Collect(context.Background(), []string{dir}, "**/*.ion", zap.NewNop())
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.True(t, inputs[0].Container)
}

func TestInputCharset(t *testing.T) {
	src := ".c1{font-family:\"Шрифт\"}"
	encoded, err := charmap.Windows1251.NewEncoder().String(src)
	require.NoError(t, err)

	in := Input{Name: "a.css", read: func() ([]byte, error) { return []byte(encoded), nil }}
	data, err := in.Read(charmap.Windows1251)
	require.NoError(t, err)
	assert.Equal(t, src, string(data))

	// valid UTF-8 is never re-decoded
	in = Input{Name: "a.css", read: func() ([]byte, error) { return []byte(src), nil }}
	data, err = in.Read(charmap.Windows1251)
	require.NoError(t, err)
	assert.Equal(t, src, string(data))
}
