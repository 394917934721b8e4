package debug

import (
	"testing"
)

func TestTreeWriterLine(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{name: "no depth", depth: 0, format: "class", want: "class\n"},
		{name: "depth 2", depth: 2, format: "attr", want: "    attr\n"},
		{name: "with formatting", depth: 1, format: "classes: %d", args: []any{42}, want: "  classes: 42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriterField(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{name: "empty value", depth: 0, label: "source", value: "", want: "source:\n"},
		{name: "plain", depth: 1, label: "source", value: "a.css", want: "  source: \"a.css\"\n"},
		{name: "control characters", depth: 0, label: "name", value: "a\tb\n", want: "name: \"a\\tb\\n\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Field(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("Field() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriterAccumulates(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "entry")
	tw.Hex(1, "key", 0xff)
	tw.Field(1, "source", "x.css")

	want := "entry\n  key: 0x00000000000000ff\n  source: \"x.css\"\n"
	if got := tw.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
