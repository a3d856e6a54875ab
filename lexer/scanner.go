package lexer

import (
	"github.com/ava12/ebnf/source"
)

// Scanner is a byte cursor over source content.
// Scan methods return false and leave cursor unchanged if lexeme cannot be scanned.
type Scanner struct {
	src     *source.Source
	content []byte
	pos     int
}

func NewScanner(s *source.Source) *Scanner {
	return &Scanner{src: s, content: s.Content()}
}

func (s *Scanner) Source() *source.Source {
	return s.src
}

// Index returns current byte position.
func (s *Scanner) Index() int {
	return s.pos
}

// Seek moves cursor to pos clamped to content bounds.
func (s *Scanner) Seek(pos int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}
	s.pos = pos
}

func (s *Scanner) AtEOF() bool {
	return s.pos >= len(s.content)
}

// Peek returns current byte without consuming it, false at end of content.
func (s *Scanner) Peek() (byte, bool) {
	if s.pos >= len(s.content) {
		return 0, false
	}
	return s.content[s.pos], true
}

// PeekAt returns byte at offset from current position.
func (s *Scanner) PeekAt(offset int) (byte, bool) {
	i := s.pos + offset
	if i < 0 || i >= len(s.content) {
		return 0, false
	}
	return s.content[i], true
}

// Advance consumes and returns current byte, false at end of content.
func (s *Scanner) Advance() (byte, bool) {
	c, ok := s.Peek()
	if ok {
		s.pos++
	}
	return c, ok
}

// Rewind moves cursor one byte back.
func (s *Scanner) Rewind() {
	if s.pos > 0 {
		s.pos--
	}
}

// Match consumes lit if content at cursor starts with it.
func (s *Scanner) Match(lit string) bool {
	if len(s.content)-s.pos < len(lit) || string(s.content[s.pos:s.pos+len(lit)]) != lit {
		return false
	}
	s.pos += len(lit)
	return true
}

// Line returns 1-based line of byte index.
func (s *Scanner) Line(index int) int {
	return s.src.Line(index)
}

// LineStart returns byte index of the first character of 1-based line.
func (s *Scanner) LineStart(line int) int {
	return s.src.LineStart(line)
}

func (s *Scanner) scanWhile(first, rest func(byte) bool) (string, bool) {
	c, ok := s.Peek()
	if !ok || !first(c) {
		return "", false
	}

	start := s.pos
	s.pos++
	for s.pos < len(s.content) && rest(s.content[s.pos]) {
		s.pos++
	}
	return string(s.content[start:s.pos]), true
}

// ScanSpaces skips whitespace and reports whether anything was skipped.
func (s *Scanner) ScanSpaces() bool {
	_, ok := s.scanWhile(IsSpace, IsSpace)
	return ok
}

// ScanInteger scans maximal run of decimal digits.
func (s *Scanner) ScanInteger() (string, bool) {
	return s.scanWhile(IsDigit, IsDigit)
}

// ScanMetaIdentifier scans a letter followed by letters and digits.
// If hyphens is set, a hyphen followed by a letter or a digit is a part of identifier too.
func (s *Scanner) ScanMetaIdentifier(hyphens bool) (string, bool) {
	c, ok := s.Peek()
	if !ok || !IsAlpha(c) {
		return "", false
	}

	start := s.pos
	s.pos++
	for s.pos < len(s.content) {
		c = s.content[s.pos]
		if IsAlnum(c) {
			s.pos++
			continue
		}
		if hyphens && c == '-' && s.pos+1 < len(s.content) && IsAlnum(s.content[s.pos+1]) {
			s.pos += 2
			continue
		}
		break
	}
	return string(s.content[start:s.pos]), true
}

// ScanTerminalString scans text enclosed in matching single or double quotes and returns unquoted text.
// Empty strings are rejected if iso is set.
func (s *Scanner) ScanTerminalString(iso bool) (string, bool) {
	quote, ok := s.Peek()
	if !ok || (quote != '"' && quote != '\'') {
		return "", false
	}

	start := s.pos + 1
	end := start
	for end < len(s.content) && s.content[end] != quote {
		end++
	}
	if end >= len(s.content) || (iso && end == start) {
		return "", false
	}

	s.pos = end + 1
	return string(s.content[start:end]), true
}

// ScanDelimited scans text enclosed in open and close delimiters and returns text between them.
func (s *Scanner) ScanDelimited(open, close string) (string, bool) {
	start := s.pos
	if !s.Match(open) {
		return "", false
	}

	textStart := s.pos
	for s.pos < len(s.content) {
		if s.Match(close) {
			return string(s.content[textStart : s.pos-len(close)]), true
		}
		s.pos++
	}

	s.pos = start
	return "", false
}

// ScanComment scans "(*" ... "*)" and returns text between delimiters. Comments do not nest.
func (s *Scanner) ScanComment() (string, bool) {
	return s.ScanDelimited("(*", "*)")
}

// ScanSpecial scans "?" ... "?" and returns text between delimiters.
func (s *Scanner) ScanSpecial() (string, bool) {
	return s.ScanDelimited("?", "?")
}
