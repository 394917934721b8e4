package css

import (
	"bytes"

	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/strconv"
	"go.uber.org/zap"

	"stylec/atom"
	"stylec/notnan"
	"stylec/sheet"
	"stylec/style"
)

// Parser turns class and keyframes stylesheets into attribute lists.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new stylesheet parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// parseState carries one parse run.
type parseState struct {
	log    *zap.Logger
	src    []byte
	source string
	scope  uint64
	diags  Diagnostics
}

func (p *Parser) begin(data []byte, scope uint64, source []string) (*parseState, *stream) {
	st := &parseState{log: p.log, src: data, scope: scope}
	if len(source) > 0 && source[0] != "" {
		st.source = source[0]
		p.log.Debug("Parsing CSS", zap.String("source", st.source), zap.Int("bytes", len(data)))
	}
	toks, err := tokenize(bytes.NewReader(data))
	if err != nil {
		st.report(lexError(err, len(data)))
	}
	return st, newStream(toks, len(data))
}

// ParseClassMap parses a stylesheet made of ".c<id> { ... }" class blocks and
// "@keyframes name { ... }" blocks. Animation names declared by the sheet are
// tagged with scope. Invalid parts are skipped and returned as diagnostics.
// The optional source parameter identifies what's being parsed (for logging).
func (p *Parser) ParseClassMap(data []byte, scope uint64, source ...string) (*sheet.ClassMap, Diagnostics) {
	st, s := p.begin(data, scope, source)

	classes := sheet.NewClassMap(scope)
	for !s.exhausted() {
		if err := st.item(classes, s); err != nil {
			st.report(err)
		}
	}

	p.log.Debug("Parsed CSS",
		zap.Int("classes", len(classes.Classes)),
		zap.Int("attributes", len(classes.Attrs)),
		zap.Int("keyframes", classes.Keyframes.Len()),
		zap.Int("diagnostics", len(st.diags)))
	return classes, st.diags
}

// ParseStyleList parses a bare declaration list, as found in inline styles.
func (p *Parser) ParseStyleList(data []byte, scope uint64, source ...string) ([]style.Attribute, Diagnostics) {
	st, s := p.begin(data, scope, source)
	return st.declarations(s), st.diags
}

// item parses one top level class or keyframes block.
func (st *parseState) item(classes *sheet.ClassMap, s *stream) error {
	t, err := s.next()
	if err != nil {
		return err
	}

	switch {
	case t.tt == css.DelimToken && string(t.data) == ".":
		name, err := s.expectIdent()
		if err != nil {
			return err
		}
		b, err := s.expectBlock()
		if err != nil {
			return err
		}
		attrs := st.declarations(s.inner(b))

		// class names are a one letter prefix followed by the numeric id
		digits := []byte(name[1:])
		id, n := strconv.ParseUint(digits)
		if n == 0 || n != len(digits) {
			st.log.Debug("Dropping class with non-numeric name", zap.String("class", name), zap.Int("attributes", len(attrs)))
			return nil
		}
		classes.AddClass(id, attrs)

	case t.tt == css.AtKeywordToken && string(t.data) == "@keyframes":
		name, err := s.expectIdent()
		if err != nil {
			return err
		}
		frames, err := st.keyframes(s)
		if err != nil {
			return err
		}
		classes.Keyframes.Set(atom.Intern(name), frames)

	default:
		st.log.Warn("Unexpected CSS, skipping to the next block", zap.String("token", t.String()))
		for !s.exhausted() {
			if t, _ := s.next(); t.tt == css.LeftBraceToken {
				break
			}
		}
	}
	return nil
}

// keyframes parses the "{ <progress> { ... } ... }" body of a keyframes rule.
func (st *parseState) keyframes(s *stream) (sheet.Frames, error) {
	b, err := s.expectBlock()
	if err != nil {
		return nil, err
	}
	in := s.inner(b)

	frames := sheet.Frames{}
	for !in.exhausted() {
		progress, attrs, err := st.keyframe(in)
		if err != nil {
			st.report(err)
			continue
		}
		frames.Add(progress, attrs)
	}
	return frames, nil
}

func (st *parseState) keyframe(s *stream) (notnan.Float32, []style.Attribute, error) {
	progress, err := keyframeProgress(s)
	if err != nil {
		return notnan.Zero, nil, err
	}
	b, err := s.expectBlock()
	if err != nil {
		return notnan.Zero, nil, err
	}
	return progress, st.declarations(s.inner(b)), nil
}

func keyframeProgress(s *stream) (notnan.Float32, error) {
	const expected = "from | to | <percentage>"
	t, err := s.next()
	if err != nil {
		return notnan.Zero, s.errEnd(expected)
	}
	switch {
	case t.tt == css.IdentToken && string(t.data) == "from":
		return notnan.Zero, nil
	case t.tt == css.IdentToken && string(t.data) == "to":
		return notnan.Must(1), nil
	case t.tt == css.PercentageToken:
		v, _ := dimension(t.data)
		return notnan.New(v / 100)
	}
	return notnan.Zero, errExpected(t, expected)
}

// declarations parses "property: value;" items until s is exhausted. A bad
// declaration is reported and skipped up to the next semicolon.
func (st *parseState) declarations(s *stream) []style.Attribute {
	var attrs []style.Attribute
	for !s.exhausted() {
		parsed, err := st.declaration(s)
		if err != nil {
			st.report(err)
			s.skipPast(css.SemicolonToken)
			continue
		}
		attrs = append(attrs, parsed...)
		if t, ok := s.peek(); ok && t.tt == css.SemicolonToken {
			s.pos++
		}
	}
	return attrs
}

func (st *parseState) declaration(s *stream) ([]style.Attribute, error) {
	t, err := s.next()
	if err != nil {
		return nil, &KeyError{Offset: s.endOff}
	}
	switch t.tt {
	case css.SemicolonToken:
		return nil, nil
	case css.IdentToken:
	default:
		return nil, &KeyError{Name: t.String(), Offset: t.off}
	}

	name := string(t.data)
	prop, ok := properties[name]
	if !ok {
		return nil, &KeyError{Name: name, Offset: t.off}
	}
	if !prop.bare {
		if err := s.expectColon(); err != nil {
			return nil, &ValueError{Property: name, Offset: errorOffset(err), Err: err}
		}
	}
	attrs, err := prop.parse(st, s)
	if err != nil {
		return nil, &ValueError{Property: name, Offset: errorOffset(err), Err: err}
	}
	if ce := st.log.Check(zap.DebugLevel, "Parsed declaration"); ce != nil {
		ce.Write(zap.String("property", name), zap.Stringers("attributes", attrs))
	}
	return attrs, nil
}
