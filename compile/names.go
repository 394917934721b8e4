package compile

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"text/template"

	"github.com/cespare/xxhash/v2"
	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"

	"stylec/config"
)

// ScopeFor derives the scope stamped on animation names of one source.
// Path scopes are stable while a file keeps its place, content scopes while
// it keeps its text.
func ScopeFor(mode config.ScopeMode, name string, content []byte, fixed uint64) uint64 {
	switch mode {
	case config.ScopeModeContent:
		return xxhash.Sum64(content)
	case config.ScopeModeFixed:
		return fixed
	default:
		return xxhash.Sum64String(path.Clean(name))
	}
}

// Values are available to output name templates.
type Values struct {
	// Name is the source base name without extensions.
	Name string
	// Dir is the slash separated source directory, "." when there is none.
	Dir string
	// Source is the full source name.
	Source string
}

// OutputName expands tmpl for the source called name and returns a relative
// slash separated path without extension. Every path segment is cleaned and,
// when requested, transliterated. An empty template yields the base name.
func OutputName(tmpl, name string, transliterate bool) (string, error) {
	name = strings.ReplaceAll(name, `\`, "/")
	base := path.Base(name)
	if i := strings.IndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	values := Values{Name: base, Dir: path.Dir(name), Source: name}

	expanded := values.Name
	if len(strings.TrimSpace(tmpl)) > 0 {
		t, err := template.New(string(config.OutputTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(tmpl)
		if err != nil {
			return "", fmt.Errorf("unable to parse template field %s: %w", config.OutputTemplateFieldName, err)
		}
		buf := new(bytes.Buffer)
		if err := t.Execute(buf, values); err != nil {
			return "", fmt.Errorf("unable to expand template field %s: %w", config.OutputTemplateFieldName, err)
		}
		expanded = buf.String()
	}

	var segments []string
	for seg := range strings.SplitSeq(strings.ReplaceAll(expanded, `\`, "/"), "/") {
		seg = strings.TrimSpace(seg)
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		if transliterate {
			seg = slug.Make(seg)
		}
		segments = append(segments, config.CleanFileName(seg))
	}
	if len(segments) == 0 {
		return "", fmt.Errorf("output name for %s is empty", name)
	}
	return path.Join(segments...), nil
}
