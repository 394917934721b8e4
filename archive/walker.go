// Package archive walks stylesheets packed into zip archives.
package archive

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hidez8891/zip"
)

// maxEntrySize bounds a single stylesheet read out of an archive.
const maxEntrySize = 64 << 20

// WalkFunc is called for each regular file in the archive whose name matches
// the pattern given to Walk. archive is the path passed to Walk. Returning an
// error stops the walk and Walk returns that error unchanged.
type WalkFunc func(archive string, file *zip.File) error

// Walk visits files of archive in stored order. pattern is a doublestar glob
// matched against the slash separated entry name; an empty pattern matches
// everything. Absolute entries and entries with ".." components make the
// whole archive unacceptable.
func Walk(archive, pattern string, walkFn WalkFunc) error {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("bad archive pattern %q", pattern)
	}

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() {
			continue
		}
		if pattern != "" {
			if ok, _ := doublestar.Match(pattern, name); !ok {
				continue
			}
		}
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

// ReadFile returns the uncompressed content of an archive entry.
func ReadFile(file *zip.File) ([]byte, error) {
	if file.UncompressedSize64 > maxEntrySize {
		return nil, fmt.Errorf("zip entry %q is too large (%d bytes)", file.Name, file.UncompressedSize64)
	}
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("unable to open zip entry %q: %w", file.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxEntrySize+1))
	if err != nil {
		return nil, fmt.Errorf("unable to read zip entry %q: %w", file.Name, err)
	}
	if len(data) > maxEntrySize {
		return nil, fmt.Errorf("zip entry %q is too large", file.Name)
	}
	return data, nil
}

// isSafePath returns false for absolute names and names containing ".."
// components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
