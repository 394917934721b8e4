package css

import (
	"bytes"
	"fmt"

	parse "github.com/tdewolff/parse/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// TokenError is a grammar failure at a byte offset of the source. An empty
// Found means the input ended.
type TokenError struct {
	Offset   int
	Expected string
	Found    string
	Msg      string
}

func (e *TokenError) Error() string {
	switch {
	case e.Msg != "" && e.Found != "":
		return fmt.Sprintf("%s %q", e.Msg, e.Found)
	case e.Msg != "":
		return e.Msg
	case e.Found == "":
		return fmt.Sprintf("expected %s, but input ended", e.Expected)
	default:
		return fmt.Sprintf("expected %s, found %q", e.Expected, e.Found)
	}
}

// KeyError reports a declaration that does not start with a known property
// name. Name holds the offending token.
type KeyError struct {
	Name   string
	Offset int
}

func (e *KeyError) Error() string {
	if e.Name == "" {
		return "expected property name, but input ended"
	}
	return fmt.Sprintf("unknown property %q", e.Name)
}

// ValueError reports a known property whose value could not be parsed, or
// input the tokenizer could not read.
type ValueError struct {
	Property string
	Offset   int
	Err      error
}

func (e *ValueError) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("unreadable stylesheet: %v", e.Err)
	}
	return fmt.Sprintf("bad value for %s: %v", e.Property, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// lexError wraps a tokenizer failure. Property is empty since the failure
// is not tied to a declaration.
func lexError(err error, offset int) error {
	return &ValueError{Offset: offset, Err: &TokenError{Offset: offset, Msg: err.Error()}}
}

// Diagnostic is one recovered parse failure with its source location.
type Diagnostic struct {
	Line   int
	Column int
	Err    error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %v", d.Line, d.Column, d.Err)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Diagnostics collects everything the parser skipped over.
type Diagnostics []Diagnostic

// Err combines all diagnostics into a single error, nil when there are none.
func (d Diagnostics) Err() error {
	var err error
	for _, diag := range d {
		err = multierr.Append(err, diag)
	}
	return err
}

// Values counts value errors, which are the ones reported as warnings.
func (d Diagnostics) Values() int {
	n := 0
	for _, diag := range d {
		if _, ok := diag.Err.(*ValueError); ok {
			n++
		}
	}
	return n
}

func errorOffset(err error) int {
	switch e := err.(type) {
	case *TokenError:
		return e.Offset
	case *KeyError:
		return e.Offset
	case *ValueError:
		return e.Offset
	}
	return 0
}

// report records err as a diagnostic and logs it. Unknown properties are
// only logged at debug level.
func (st *parseState) report(err error) {
	line, col, _ := parse.Position(bytes.NewReader(st.src), errorOffset(err))
	st.diags = append(st.diags, Diagnostic{Line: line, Column: col, Err: err})

	fields := []zap.Field{zap.Int("line", line), zap.Int("column", col), zap.Error(err)}
	if st.source != "" {
		fields = append(fields, zap.String("source", st.source))
	}
	if _, ok := err.(*KeyError); ok {
		st.log.Debug("Skipping declaration", fields...)
		return
	}
	st.log.Warn("Skipping invalid CSS", fields...)
}
