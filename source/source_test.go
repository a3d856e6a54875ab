package source

import (
	"testing"
)

type result struct {
	pos, line, col int
}

func TestSourceLineCol(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 1, 1},
			{100, 1, 1},
			{-5, 1, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 2, 1},
			{100, 2, 1},
		},
		"0\n2\n4\n6789abcde\ng\ni\n": {
			{4, 3, 1},
			{5, 3, 2},
			{6, 4, 1},
			{7, 4, 2},
			{14, 4, 9},
			{19, 6, 2},
			{20, 7, 1},
			{9, 4, 4},
		},
		"a = 'é';\nb": {
			{7, 1, 7},
			{9, 1, 9},
			{10, 2, 1},
		},
	}

	for text, results := range samples {
		source := New("", []byte(text))
		for _, res := range results {
			l, c := source.LineCol(res.pos)
			if l != res.line || c != res.col {
				t.Errorf("sample %q: expected %v, got line: %d, col: %d", text, res, l, c)
			}
		}
	}
}

func TestSourcePos(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 0, 1},
			{0, 1, 0},
			{0, 1, 1},
			{0, 2, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 1, 2},
			{1, 2, 1},
			{1, 3, 1},
		},
		"hello\nworld\n": {
			{0, 1, 1},
			{1, 1, 2},
			{6, 2, 1},
			{12, 2, 10},
			{12, 3, 1},
			{12, 4, 1},
		},
	}

	for text, results := range samples {
		source := New("", []byte(text))
		for _, res := range results {
			p := source.Pos(res.line, res.col)
			if p != res.pos {
				t.Errorf("sample %q: expected %v, got pos: %d", text, res, p)
			}
		}
	}
}

func TestLineAndLineStart(t *testing.T) {
	s := FromString("g", "a = b;\n\nc = d;\n")
	if s.LineCount() != 4 {
		t.Fatalf("expecting 4 lines, got %d", s.LineCount())
	}

	lines := []struct{ pos, line int }{
		{0, 1}, {6, 1}, {7, 2}, {8, 3}, {14, 3}, {15, 4}, {99, 4}, {-1, 1},
	}
	for i, sample := range lines {
		if got := s.Line(sample.pos); got != sample.line {
			t.Errorf("sample #%d: expecting line %d for pos %d, got %d", i, sample.line, sample.pos, got)
		}
	}

	starts := []struct{ line, pos int }{
		{0, 0}, {1, 0}, {2, 7}, {3, 8}, {4, 15}, {5, 15},
	}
	for i, sample := range starts {
		if got := s.LineStart(sample.line); got != sample.pos {
			t.Errorf("sample #%d: expecting pos %d for line %d, got %d", i, sample.pos, sample.line, got)
		}
	}

	for line := 1; line <= s.LineCount(); line++ {
		start := s.LineStart(line)
		if start < s.Len() && s.Line(start) != line {
			t.Errorf("line %d starts at %d which maps to line %d", line, start, s.Line(start))
		}
	}
}
