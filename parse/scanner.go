package parse

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// scanner walks a single record left to right.
type scanner struct {
	line int
	text string
	pos  int
}

// fail builds a ParseError at the current position. Columns count runes.
func (s *scanner) fail(reason string) *ParseError {
	col := utf8.RuneCountInString(s.text[:s.pos]) + 1

	return &ParseError{Line: s.line, Column: col, Text: s.text, Reason: reason}
}

// skipSpace advances over blanks.
func (s *scanner) skipSpace() {
	for s.pos < len(s.text) && (s.text[s.pos] == ' ' || s.text[s.pos] == '\t') {
		s.pos++
	}
}

// done reports whether only blanks remain.
func (s *scanner) done() bool {
	s.skipSpace()

	return s.pos >= len(s.text)
}

// peek returns the next non-blank byte, or 0 at the end.
func (s *scanner) peek() byte {
	s.skipSpace()
	if s.pos >= len(s.text) {
		return 0
	}

	return s.text[s.pos]
}

// run advances over the longest prefix of whole runes accepted by keep.
// Invalid UTF-8 stops the run.
func (s *scanner) run(keep func(rune) bool) string {
	s.skipSpace()
	start := s.pos
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if r == utf8.RuneError || !keep(r) {
			break
		}
		s.pos += size
	}

	return s.text[start:s.pos]
}

// word reads a run of letters.
func (s *scanner) word() string {
	return s.run(unicode.IsLetter)
}

// ident reads a run of letters and digits.
func (s *scanner) ident() (string, error) {
	id := s.run(func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })
	if id == "" {
		return "", s.fail("expected node identifier")
	}

	return id, nil
}

// number reads a non-negative decimal integer.
func (s *scanner) number() (int, error) {
	s.skipSpace()
	start := s.pos
	for s.pos < len(s.text) && s.text[s.pos] >= '0' && s.text[s.pos] <= '9' {
		s.pos++
	}
	if start == s.pos {
		return 0, s.fail("expected non-negative integer")
	}
	n, err := strconv.Atoi(s.text[start:s.pos])
	if err != nil {
		s.pos = start
		return 0, s.fail("integer out of range")
	}

	return n, nil
}

// expect consumes the given punctuation byte.
func (s *scanner) expect(c byte) error {
	if s.peek() != c {
		return s.fail("expected " + strconv.QuoteRune(rune(c)))
	}
	s.pos++

	return nil
}

// keyword consumes a specific word.
func (s *scanner) keyword(want string) error {
	save := s.pos
	if got := s.word(); got != want {
		s.pos = save
		s.skipSpace()
		return s.fail("expected " + strconv.Quote(want))
	}

	return nil
}

// label consumes one or more words up to (not including) the stop byte or
// the stop word, returning how many words were read.
func (s *scanner) label(stopByte byte, stopWord string) (int, error) {
	n := 0
	for {
		if stopByte != 0 && s.peek() == stopByte {
			break
		}
		save := s.pos
		w := s.word()
		if w == "" {
			break
		}
		if stopWord != "" && w == stopWord {
			s.pos = save
			break
		}
		n++
	}
	if n == 0 {
		return 0, s.fail("expected label")
	}

	return n, nil
}
