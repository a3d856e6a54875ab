// Package source defines immutable grammar source with precomputed line index.
package source

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, 1, lineCnt)
	for i, c := range content {
		if c == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}

	return s
}

func FromString(name, content string) *Source {
	return New(name, []byte(content))
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCount returns the number of lines, an empty source has one line.
func (s *Source) LineCount() int {
	return len(s.lineStarts)
}

// Line returns 1-based line number containing byte at pos.
// Positions out of range are clamped to the first or the last line.
func (s *Source) Line(pos int) int {
	return s.lineIndex(pos) + 1
}

// LineStart returns byte offset of the first character of 1-based line.
// Returns 0 for line < 1 and source length for lines past the end.
func (s *Source) LineStart(line int) int {
	if line < 1 {
		return 0
	}
	if line > len(s.lineStarts) {
		return len(s.content)
	}
	return s.lineStarts[line-1]
}

// LineCol returns 1-based line and column (in runes) for byte position.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := s.lineIndex(pos)
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// Pos converts 1-based line and column back to byte position.
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.content)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1] + col - 1
	if res > l {
		return l
	}
	return res
}

func (s *Source) lineIndex(pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(s.content) {
		return len(s.lineStarts) - 1
	}
	return sort.SearchInts(s.lineStarts, pos+1) - 1
}
