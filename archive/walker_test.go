package archive

import (
	stdzip "archive/zip"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/hidez8891/zip"
)

// makeZip writes entries in order; a name ending with "/" becomes a
// directory entry.
func makeZip(t *testing.T, entries ...[2]string) string {
	t.Helper()

	zipPath := filepath.Join(t.TempDir(), "test.zip")
	out, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer out.Close()

	w := stdzip.NewWriter(out)
	for _, e := range entries {
		if strings.HasSuffix(e[0], "/") {
			h := &stdzip.FileHeader{Name: e[0]}
			h.SetMode(os.ModeDir | 0755)
			if _, err := w.CreateHeader(h); err != nil {
				t.Fatalf("Failed to create directory %s: %v", e[0], err)
			}
			continue
		}
		fw, err := w.Create(e[0])
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", e[0], err)
		}
		if _, err := fw.Write([]byte(e[1])); err != nil {
			t.Fatalf("Failed to write content for %s: %v", e[0], err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish zip: %v", err)
	}
	return zipPath
}

func collect(t *testing.T, zipPath, pattern string) []string {
	t.Helper()

	var visited []string
	err := Walk(zipPath, pattern, func(archive string, file *zip.File) error {
		if archive != zipPath {
			t.Errorf("archive = %s, want %s", archive, zipPath)
		}
		visited = append(visited, file.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk(%q) error = %v", pattern, err)
	}
	return visited
}

func TestWalkPatterns(t *testing.T) {
	zipPath := makeZip(t,
		[2]string{"themes/", ""},
		[2]string{"themes/dark.css", ".c1{color:black}"},
		[2]string{"themes/light/base.css", ".c1{color:white}"},
		[2]string{"themes/light/readme.txt", "notes"},
		[2]string{"main.css", ".c2{width:1px}"},
		[2]string{"Upper.CSS", ".c3{width:1px}"},
	)

	tests := []struct {
		pattern string
		want    []string
	}{
		{"", []string{"themes/dark.css", "themes/light/base.css", "themes/light/readme.txt", "main.css", "Upper.CSS"}},
		{"**/*.css", []string{"themes/dark.css", "themes/light/base.css", "main.css"}},
		{"*.css", []string{"main.css"}},
		{"themes/*.css", []string{"themes/dark.css"}},
		{"themes/**", []string{"themes/dark.css", "themes/light/base.css", "themes/light/readme.txt"}},
		{"**/*.{css,CSS}", []string{"themes/dark.css", "themes/light/base.css", "main.css", "Upper.CSS"}},
		{"nothing/**", nil},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := collect(t, zipPath, tt.pattern)
			if !slices.Equal(got, tt.want) {
				t.Errorf("visited %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWalkBadPattern(t *testing.T) {
	zipPath := makeZip(t, [2]string{"a.css", ""})
	err := Walk(zipPath, "[", func(string, *zip.File) error { return nil })
	if err == nil {
		t.Error("Expected error for malformed pattern")
	}
}

func TestWalkInvalidArchive(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		err := Walk("/nonexistent/file.zip", "", func(string, *zip.File) error { return nil })
		if err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})

	t.Run("invalid zip file", func(t *testing.T) {
		invalidZip := filepath.Join(t.TempDir(), "invalid.zip")
		if err := os.WriteFile(invalidZip, []byte("not a zip file"), 0644); err != nil {
			t.Fatalf("Failed to create invalid zip: %v", err)
		}
		err := Walk(invalidZip, "", func(string, *zip.File) error { return nil })
		if err == nil {
			t.Error("Expected error for invalid zip file")
		}
	})
}

func TestWalkUnsafeEntry(t *testing.T) {
	zipPath := makeZip(t,
		[2]string{"ok.css", ".c1{width:1px}"},
		[2]string{"../escape.css", ".c1{width:2px}"},
	)
	err := Walk(zipPath, "**/*.css", func(string, *zip.File) error { return nil })
	if err == nil {
		t.Error("Expected error for archive with unsafe entry")
	}
}

func TestWalkEarlyTermination(t *testing.T) {
	var entries [][2]string
	for i := range 5 {
		entries = append(entries, [2]string{"files/file" + string(rune('0'+i)) + ".css", "x"})
	}
	zipPath := makeZip(t, entries...)

	var visited int
	stopErr := errors.New("stop walking")
	err := Walk(zipPath, "files/*", func(string, *zip.File) error {
		visited++
		if visited == 2 {
			return stopErr
		}
		return nil
	})
	if err != stopErr {
		t.Errorf("Walk() error = %v, want %v", err, stopErr)
	}
	if visited != 2 {
		t.Errorf("visited %d files, want 2 (early termination)", visited)
	}
}

func TestReadFile(t *testing.T) {
	content := ".c1{width:10px;height:20px;}"
	zipPath := makeZip(t, [2]string{"sheet.css", content})

	var got []byte
	err := Walk(zipPath, "", func(_ string, file *zip.File) error {
		var err error
		got, err = ReadFile(file)
		return err
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if string(got) != content {
		t.Errorf("content = %q, want %q", got, content)
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"a.css", true},
		{"dir/sub/a.css", true},
		{"dir/..a.css", true},
		{"/abs.css", false},
		{`\abs.css`, false},
		{"../a.css", false},
		{"dir/../../a.css", false},
		{`dir\..\a.css`, false},
	}
	for _, tt := range tests {
		if got := isSafePath(tt.name); got != tt.want {
			t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
