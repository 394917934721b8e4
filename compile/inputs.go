package compile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/h2non/filetype"
	"github.com/hidez8891/zip"
	"github.com/maruel/natural"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"stylec/archive"
	"stylec/container"
)

// ionType is registered with filetype so compiled containers given as input
// are recognized by content.
var ionType = filetype.NewType("ion", "application/x-amazon-ion")

func init() {
	filetype.AddMatcher(ionType, container.IsBinary)
}

// Input is one source found on the command line: a stylesheet or a
// previously compiled binary container.
type Input struct {
	// Name is a slash separated path relative to the command line argument
	// it was found under. It orders inputs and derives path scopes.
	Name string
	// Origin is what to show in logs.
	Origin    string
	Container bool

	read func() ([]byte, error)
}

// Read returns input content. Stylesheets which are not valid UTF-8 are
// decoded with charset when one is given.
func (in *Input) Read(charset encoding.Encoding) ([]byte, error) {
	data, err := in.read()
	if err != nil {
		return nil, err
	}
	if in.Container || charset == nil || utf8.Valid(data) {
		return data, nil
	}
	if data, err = charset.NewDecoder().Bytes(data); err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", in.Origin, err)
	}
	return data, nil
}

// IncludePattern folds include globs into a single doublestar pattern.
func IncludePattern(include []string) (string, error) {
	for _, p := range include {
		if !doublestar.ValidatePattern(p) {
			return "", fmt.Errorf("bad include pattern %q", p)
		}
	}
	switch len(include) {
	case 0:
		return "", errors.New("no include patterns")
	case 1:
		return include[0], nil
	}
	return "{" + strings.Join(include, ",") + "}", nil
}

// Collect resolves command line sources into inputs. A source is a
// stylesheet or container file, a directory or a zip archive; the last two
// are searched with the include pattern. Inputs are returned in natural order
// of their names within each source, sources keep command line order.
func Collect(ctx context.Context, sources []string, pattern string, log *zap.Logger) ([]Input, error) {
	var inputs []Input
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fi, err := os.Stat(src)
		if err != nil {
			return nil, fmt.Errorf("input source was not found: %w", err)
		}

		var found []Input
		switch {
		case fi.IsDir():
			found, err = collectDir(src, pattern)
		case fi.Mode().IsRegular():
			found, err = collectFile(src, pattern)
		default:
			err = fmt.Errorf("unexpected path mode for %s", src)
		}
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			log.Warn("Nothing to compile", zap.String("source", src), zap.String("include", pattern))
		}

		slices.SortStableFunc(found, func(a, b Input) int {
			switch {
			case natural.Less(a.Name, b.Name):
				return -1
			case natural.Less(b.Name, a.Name):
				return 1
			}
			return 0
		})
		inputs = append(inputs, found...)
	}
	return inputs, nil
}

func collectDir(dir, pattern string) ([]Input, error) {
	names, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("unable to search %s: %w", dir, err)
	}
	inputs := make([]Input, 0, len(names))
	for _, name := range names {
		full := filepath.Join(dir, filepath.FromSlash(name))
		isContainer, err := sniffContainer(full)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, Input{
			Name:      name,
			Origin:    full,
			Container: isContainer,
			read:      func() ([]byte, error) { return os.ReadFile(full) },
		})
	}
	return inputs, nil
}

func collectFile(file, pattern string) ([]Input, error) {
	head, err := readHead(file)
	if err != nil {
		return nil, err
	}
	kind, _ := filetype.Match(head)
	switch {
	case kind == ionType:
		return []Input{{Name: filepath.Base(file), Origin: file, Container: true,
			read: func() ([]byte, error) { return os.ReadFile(file) }}}, nil
	case filetype.Is(head, "zip"):
		return collectArchive(file, pattern)
	}
	return []Input{{Name: filepath.Base(file), Origin: file,
		read: func() ([]byte, error) { return os.ReadFile(file) }}}, nil
}

func collectArchive(file, pattern string) ([]Input, error) {
	var inputs []Input
	err := archive.Walk(file, pattern, func(arc string, f *zip.File) error {
		// entries are small, reading them now saves reopening the archive
		data, err := archive.ReadFile(f)
		if err != nil {
			return err
		}
		name := path.Clean(f.Name)
		inputs = append(inputs, Input{
			Name:      name,
			Origin:    arc + ":" + name,
			Container: container.IsBinary(data),
			read:      func() ([]byte, error) { return data, nil },
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to process archive %s: %w", file, err)
	}
	return inputs, nil
}

func sniffContainer(file string) (bool, error) {
	head, err := readHead(file)
	if err != nil {
		return false, err
	}
	kind, _ := filetype.Match(head)
	return kind == ionType, nil
}

func readHead(file string) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to read %s: %w", file, err)
	}
	return head[:n], nil
}
