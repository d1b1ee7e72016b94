package decl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanner is a cursor over declaration source text. It hands the parser
// identifiers, punctuation, raw type expressions and balanced brace
// captures, tracking the current line for error reporting.
type scanner struct {
	src  string
	pos  int
	line int
}

func newScanner(src string) *scanner {
	return &scanner{src: src, line: 1}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// advance moves the cursor n bytes forward, counting newlines.
func (s *scanner) advance(n int) {
	end := min(s.pos+n, len(s.src))
	s.line += strings.Count(s.src[s.pos:end], "\n")
	s.pos = end
}

// skipSpace skips whitespace only.
func (s *scanner) skipSpace() {
	for !s.eof() {
		c := s.src[s.pos]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return
		}

		s.advance(1)
	}
}

// collectComments skips whitespace and consecutive line comments,
// returning the comment lines verbatim (with the // prefix). The parser
// attaches them as attributes when a view keyword follows directly.
func (s *scanner) collectComments() []string {
	var comments []string

	for {
		s.skipSpace()

		if !strings.HasPrefix(s.src[s.pos:], "//") {
			return comments
		}

		end := strings.IndexByte(s.src[s.pos:], '\n')
		if end < 0 {
			end = len(s.src) - s.pos
		}

		comments = append(comments, strings.TrimRight(s.src[s.pos:s.pos+end], " \t\r"))
		s.advance(end)
	}
}

// peekIs reports whether the next non-space input starts with lit,
// without consuming it.
func (s *scanner) peekIs(lit string) bool {
	s.skipSpace()
	return strings.HasPrefix(s.src[s.pos:], lit)
}

// tryConsume consumes lit if it is next, returning true on success.
func (s *scanner) tryConsume(lit string) bool {
	if !s.peekIs(lit) {
		return false
	}

	s.advance(len(lit))

	return true
}

// expect consumes lit or returns a syntax error.
func (s *scanner) expect(lit string) *DeclError {
	if s.tryConsume(lit) {
		return nil
	}

	return syntaxErr(s.line, "expected %q, found %q", lit, s.rest(12))
}

// readIdent reads a Go identifier. Returns false if none is present.
func (s *scanner) readIdent() (string, bool) {
	s.skipSpace()

	start := s.pos
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !isIdentRune(r, s.pos > start) {
			break
		}

		s.pos += size
	}

	if s.pos == start {
		return "", false
	}

	return s.src[start:s.pos], true
}

// readQuoted reads a double-quoted literal and returns its contents.
func (s *scanner) readQuoted() (string, *DeclError) {
	if err := s.expect(`"`); err != nil {
		return "", err
	}

	end := strings.IndexByte(s.src[s.pos:], '"')
	if end < 0 {
		return "", syntaxErr(s.line, "unterminated string literal")
	}

	out := s.src[s.pos : s.pos+end]
	s.advance(end + 1)

	return out, nil
}

// readTypeExpr captures a type expression up to (not including) any of
// the stop bytes at bracket depth zero, returning it in normalized form.
func (s *scanner) readTypeExpr(stops string) (string, *DeclError) {
	s.skipSpace()

	start := s.pos
	depth := 0

	for !s.eof() {
		c := s.src[s.pos]

		if depth == 0 && strings.IndexByte(stops, c) >= 0 {
			break
		}

		switch c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '\n':
			// Type expressions are single-line.
			return "", syntaxErr(s.line, "unterminated type expression %q", s.src[start:s.pos])
		}

		s.advance(1)
	}

	typ := normalizeType(s.src[start:s.pos])
	if typ == "" {
		return "", syntaxErr(s.line, "missing type expression")
	}

	return typ, nil
}

// readBalancedBraces consumes a {...} block and returns the contents
// between the outer braces verbatim. String, rune and comment contexts
// are honored so braces inside them do not affect nesting.
func (s *scanner) readBalancedBraces() (string, *DeclError) {
	if err := s.expect("{"); err != nil {
		return "", err
	}

	startLine := s.line
	start := s.pos
	depth := 1

	for !s.eof() {
		c := s.src[s.pos]

		switch c {
		case '{':
			depth++
			s.advance(1)

		case '}':
			depth--
			if depth == 0 {
				body := s.src[start:s.pos]
				s.advance(1)

				return body, nil
			}

			s.advance(1)

		case '"', '\'', '`':
			if err := s.skipLiteral(c); err != nil {
				return "", err
			}

		case '/':
			if strings.HasPrefix(s.src[s.pos:], "//") {
				if nl := strings.IndexByte(s.src[s.pos:], '\n'); nl >= 0 {
					s.advance(nl)
				} else {
					s.advance(len(s.src) - s.pos)
				}
			} else {
				s.advance(1)
			}

		default:
			s.advance(1)
		}
	}

	return "", syntaxErr(startLine, "unterminated transform body")
}

// skipLiteral consumes a string or rune literal starting at quote.
func (s *scanner) skipLiteral(quote byte) *DeclError {
	startLine := s.line
	s.advance(1)

	for !s.eof() {
		c := s.src[s.pos]

		if c == '\\' && quote != '`' {
			s.advance(2)
			continue
		}

		s.advance(1)

		if c == quote {
			return nil
		}
	}

	return syntaxErr(startLine, "unterminated literal in transform body")
}

// rest returns up to n bytes of remaining input for error messages.
func (s *scanner) rest(n int) string {
	end := min(s.pos+n, len(s.src))

	out := s.src[s.pos:end]
	if nl := strings.IndexByte(out, '\n'); nl >= 0 {
		out = out[:nl]
	}

	return out
}

func isIdentRune(r rune, notFirst bool) bool {
	if r == '_' || unicode.IsLetter(r) {
		return true
	}

	return notFirst && unicode.IsDigit(r)
}

// normalizeType collapses whitespace in a type expression so that
// declared types compare structurally against resolved type strings.
// Spaces survive only between adjacent identifier characters
// (e.g. "chan int"), so "map [string] int" becomes "map[string]int".
func normalizeType(typ string) string {
	fields := strings.Fields(typ)
	if len(fields) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fields[0])

	for _, f := range fields[1:] {
		prev, _ := utf8.DecodeLastRuneInString(sb.String())
		next, _ := utf8.DecodeRuneInString(f)

		if isIdentRune(prev, true) && isIdentRune(next, true) {
			sb.WriteByte(' ')
		}

		sb.WriteString(f)
	}

	return sb.String()
}
