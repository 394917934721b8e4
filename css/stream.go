package css

import (
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/strconv"
)

// token is one significant lexer token. For block openers (functions,
// parentheses, brackets and braces) end is the index of the matching closer,
// or len(tokens) when the block is never closed.
type token struct {
	tt   css.TokenType
	data []byte
	off  int
	idx  int
	end  int
}

func (t token) opener() bool {
	switch t.tt {
	case css.FunctionToken, css.LeftParenthesisToken, css.LeftBracketToken, css.LeftBraceToken:
		return true
	}
	return false
}

func closerOf(tt css.TokenType) css.TokenType {
	switch tt {
	case css.FunctionToken, css.LeftParenthesisToken:
		return css.RightParenthesisToken
	case css.LeftBracketToken:
		return css.RightBracketToken
	case css.LeftBraceToken:
		return css.RightBraceToken
	}
	return css.ErrorToken
}

func (t token) String() string {
	return string(t.data)
}

// tokenize runs the lexer over r, dropping whitespace and comments and
// pairing block openers with their closers.
func tokenize(r io.Reader) ([]token, error) {
	lexer := css.NewLexer(parse.NewInput(r))

	var (
		toks  []token
		stack []int
		off   int
	)
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return toks, err
			}
			break
		}
		start := off
		off += len(text)
		if tt == css.WhitespaceToken || tt == css.CommentToken {
			continue
		}

		t := token{tt: tt, data: text, off: start, idx: len(toks), end: -1}
		if n := len(stack); n > 0 && toks[stack[n-1]].closes(tt) {
			toks[stack[n-1]].end = t.idx
			stack = stack[:n-1]
		}
		if t.opener() {
			stack = append(stack, t.idx)
		}
		toks = append(toks, t)
	}
	for _, i := range stack {
		toks[i].end = len(toks)
	}
	return toks, nil
}

func (t token) closes(tt css.TokenType) bool {
	return closerOf(t.tt) == tt
}

// stream is a cursor over a range of tokens. Nested blocks are skipped as a
// unit by next and entered explicitly with block.
type stream struct {
	toks []token
	pos  int
	end  int
	// offset reported for errors at the end of the range
	endOff int
}

func newStream(toks []token, size int) *stream {
	return &stream{toks: toks, end: len(toks), endOff: size}
}

func (s *stream) exhausted() bool {
	return s.pos >= s.end
}

func (s *stream) offset() int {
	if s.pos < s.end {
		return s.toks[s.pos].off
	}
	return s.endOff
}

func (s *stream) peek() (token, bool) {
	if s.exhausted() {
		return token{}, false
	}
	return s.toks[s.pos], true
}

// next returns the next token. When it opens a block the cursor moves past
// the whole block.
func (s *stream) next() (token, error) {
	if s.exhausted() {
		return token{}, s.errEnd("token")
	}
	t := s.toks[s.pos]
	s.pos++
	if t.opener() {
		s.pos = min(t.end+1, s.end)
	}
	return t, nil
}

// sub returns a stream over tokens [from, to) of the same source.
func (s *stream) sub(from, to int) *stream {
	to = min(to, s.end)
	endOff := s.endOff
	if to < len(s.toks) {
		endOff = s.toks[to].off
	}
	return &stream{toks: s.toks, pos: from, end: to, endOff: endOff}
}

// inner returns the content of the block opened by t.
func (s *stream) inner(t token) *stream {
	return s.sub(t.idx+1, t.end)
}

// block parses the content of the block opened by t with f, which has to
// consume all of it.
func block[T any](s *stream, t token, f func(*stream) (T, error)) (T, error) {
	in := s.inner(t)
	v, err := f(in)
	if err == nil && !in.exhausted() {
		var zero T
		return zero, in.errUnexpected()
	}
	return v, err
}

// attempt runs f and rewinds the cursor when it fails.
func attempt[T any](s *stream, f func(*stream) (T, error)) (T, error) {
	save := s.pos
	v, err := f(s)
	if err != nil {
		s.pos = save
	}
	return v, err
}

// delimited returns a stream reaching up to the next top level token of one of
// the given types, or to the end of the range.
func (s *stream) delimited(stop ...css.TokenType) *stream {
	i := s.pos
	for i < s.end {
		t := s.toks[i]
		if t.opener() {
			i = t.end + 1
			continue
		}
		for _, tt := range stop {
			if t.tt == tt {
				return s.sub(s.pos, i)
			}
		}
		i++
	}
	return s.sub(s.pos, s.end)
}

// until parses the segment before the next top level delimiter with f, which
// has to consume all of it. The cursor is left on the delimiter.
func until[T any](s *stream, f func(*stream) (T, error), stop ...css.TokenType) (T, error) {
	seg := s.delimited(stop...)
	v, err := f(seg)
	if err == nil && !seg.exhausted() {
		err = seg.errUnexpected()
	}
	s.pos = seg.end
	return v, err
}

// skipPast consumes tokens up to and including the next top level token of
// type tt.
func (s *stream) skipPast(tt css.TokenType) {
	for !s.exhausted() {
		t, _ := s.next()
		if t.tt == tt {
			return
		}
	}
}

func (s *stream) errEnd(expected string) error {
	return &TokenError{Offset: s.endOff, Expected: expected}
}

func (s *stream) errUnexpected() error {
	t, _ := s.peek()
	return &TokenError{Offset: t.off, Found: t.String(), Msg: "unexpected token"}
}

func errExpected(t token, expected string) error {
	return &TokenError{Offset: t.off, Expected: expected, Found: t.String()}
}

func (s *stream) expect(tt css.TokenType, expected string) (token, error) {
	t, err := s.next()
	if err != nil {
		return t, s.errEnd(expected)
	}
	if t.tt != tt {
		return t, errExpected(t, expected)
	}
	return t, nil
}

func (s *stream) expectIdent() (string, error) {
	t, err := s.expect(css.IdentToken, "<ident>")
	if err != nil {
		return "", err
	}
	return string(t.data), nil
}

// expectIdentMatching compares ASCII case-insensitively.
func (s *stream) expectIdentMatching(name string) error {
	t, err := s.expect(css.IdentToken, name)
	if err != nil {
		return err
	}
	if !strings.EqualFold(string(t.data), name) {
		return errExpected(t, name)
	}
	return nil
}

func (s *stream) expectColon() error {
	_, err := s.expect(css.ColonToken, ":")
	return err
}

func (s *stream) expectComma() error {
	_, err := s.expect(css.CommaToken, ",")
	return err
}

func (s *stream) expectSemicolon() error {
	_, err := s.expect(css.SemicolonToken, ";")
	return err
}

func (s *stream) expectDelim(c byte) error {
	t, err := s.expect(css.DelimToken, string(c))
	if err != nil {
		return err
	}
	if len(t.data) != 1 || t.data[0] != c {
		return errExpected(t, string(c))
	}
	return nil
}

func (s *stream) expectNumber() (float32, error) {
	t, err := s.expect(css.NumberToken, "<number>")
	if err != nil {
		return 0, err
	}
	return number(t.data), nil
}

// expectPercentage returns the percentage as a fraction.
func (s *stream) expectPercentage() (float32, error) {
	t, err := s.expect(css.PercentageToken, "<percentage>")
	if err != nil {
		return 0, err
	}
	v, _ := dimension(t.data)
	return v / 100, nil
}

func (s *stream) expectFunction() (token, string, error) {
	t, err := s.expect(css.FunctionToken, "<function>")
	if err != nil {
		return t, "", err
	}
	return t, functionName(t), nil
}

func (s *stream) expectBlock() (token, error) {
	return s.expect(css.LeftBraceToken, "{")
}

func (s *stream) expectString() (string, error) {
	t, err := s.expect(css.StringToken, "<string>")
	if err != nil {
		return "", err
	}
	return unquote(string(t.data)), nil
}

func (s *stream) expectURL() (string, error) {
	t, err := s.expect(css.URLToken, "<url>")
	if err != nil {
		return "", err
	}
	return urlValue(t.data), nil
}

func functionName(t token) string {
	return strings.TrimSuffix(string(t.data), "(")
}

// number parses a number token; the lexer guarantees the syntax.
func number(b []byte) float32 {
	f, _ := strconv.ParseFloat(b)
	return float32(f)
}

// dimension splits a dimension or percentage token into its value and its
// lower-cased unit.
func dimension(b []byte) (float32, string) {
	num, unit := parse.Dimension(b)
	return number(b[:num]), strings.ToLower(string(b[num : num+unit]))
}

// unquote strips matching quotes from a string token.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	if len(s) >= 1 && (s[0] == '"' || s[0] == '\'') {
		return s[1:]
	}
	return s
}

// urlValue extracts the address from url(...) with or without quotes.
func urlValue(b []byte) string {
	s := string(b)
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), ")")
	return unquote(s)
}
