package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stylec/config"
)

func TestScopeFor(t *testing.T) {
	a := []byte(".c1{width:1px}")
	b := []byte(".c1{width:2px}")

	assert.Equal(t, ScopeFor(config.ScopeModePath, "x/a.css", a, 0), ScopeFor(config.ScopeModePath, "x/./a.css", b, 0))
	assert.NotEqual(t, ScopeFor(config.ScopeModePath, "x/a.css", a, 0), ScopeFor(config.ScopeModePath, "y/a.css", a, 0))

	assert.Equal(t, ScopeFor(config.ScopeModeContent, "x/a.css", a, 0), ScopeFor(config.ScopeModeContent, "y/b.css", a, 0))
	assert.NotEqual(t, ScopeFor(config.ScopeModeContent, "x/a.css", a, 0), ScopeFor(config.ScopeModeContent, "x/a.css", b, 0))

	assert.Equal(t, uint64(77), ScopeFor(config.ScopeModeFixed, "x/a.css", a, 77))
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		tmpl, name    string
		transliterate bool
		want          string
	}{
		{"", "themes/dark.css", false, "dark"},
		{"", "dark.min.css", false, "dark"},
		{"", `themes\dark.css`, false, "dark"},
		{"{{ .Dir }}/{{ .Name }}", "themes/dark.css", false, "themes/dark"},
		{"{{ .Name | upper }}-compiled", "dark.css", false, "DARK-compiled"},
		{"out/{{ .Source | base }}", "a/b.css", false, "out/b.css"},
		{"../{{ .Name }}", "a.css", false, "a"},
		{"{{ .Name }}", "Тема.css", true, "tema"},
		{"{{ .Dir }}/{{ .Name }}", "Север/База.css", true, "sever/baza"},
	}
	for _, tt := range tests {
		got, err := OutputName(tt.tmpl, tt.name, tt.transliterate)
		require.NoError(t, err, tt.tmpl)
		assert.Equal(t, tt.want, got, "%q %q", tt.tmpl, tt.name)
	}

	_, err := OutputName("{{ .Name", "a.css", false)
	assert.Error(t, err)
	_, err = OutputName("{{ .Missing }}", "a.css", false)
	assert.Error(t, err)
	_, err = OutputName("{{ if false }}x{{ end }}", "a.css", false)
	assert.Error(t, err)
}
