// Package corpora runs table-driven tests whose table lives in the file system:
// every input file of a corpus is a test case, expected outputs are stored next to it.
package corpora

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a directory of test cases.
type Corpus struct {
	// Root is test data directory relative to the directory of the test file calling Run.
	Root string

	// Refresh names environment variable containing a glob of test cases (relative to Root)
	// whose outputs must be rewritten instead of compared, e.g. EBNF_REFRESH='**'.
	Refresh string

	// Extension of input files without leading dot, e.g. "ebnf".
	Extension string

	// Outputs lists expected outputs of each test case.
	// Output of "foo.ebnf" with extension "bnf" is stored in "foo.ebnf.bnf".
	// Missing output file means empty output.
	Outputs []Output

	// Test runs a single test case and returns one string per element of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output describes one expected output of a test case.
type Output struct {
	Extension string

	// Compare returns empty string if outputs match or a message otherwise.
	// Nil means DiffCompare.
	Compare func(got, want string) string
}

// DiffCompare compares strings byte by byte and reports mismatch as a unified diff.
func DiffCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, e := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if e != nil {
		return e.Error()
	}
	return diff
}

// Run executes a subtest for each input file found under Root.
func (c Corpus) Run(t *testing.T) {
	t.Helper()
	root := filepath.Join(callerDir(), c.Root)
	cases, e := doublestar.Glob(os.DirFS(root), "**/*."+c.Extension)
	if e != nil {
		t.Fatalf("corpora: cannot list %s: %s", root, e)
	}
	if len(cases) == 0 {
		t.Fatalf("corpora: no *.%s files in %s", c.Extension, root)
	}

	refresh := ""
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: %s contains invalid glob %q", c.Refresh, refresh)
		}
	}

	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(root, filepath.FromSlash(name))
			input, e := os.ReadFile(path)
			if e != nil {
				t.Fatalf("corpora: cannot read %s: %s", path, e)
			}

			results := c.Test(t, name, string(input))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: got %d outputs, expecting %d", len(results), len(c.Outputs))
			}

			rewrite := refresh != "" && doublestar.MatchUnvalidated(refresh, name)
			for i, output := range c.Outputs {
				outPath := path + "." + output.Extension
				if rewrite {
					if e := writeOutput(outPath, results[i]); e != nil {
						t.Errorf("corpora: cannot refresh %s: %s", outPath, e)
					}
					continue
				}

				want, e := os.ReadFile(outPath)
				if e != nil && !errors.Is(e, os.ErrNotExist) {
					t.Errorf("corpora: cannot read %s: %s", outPath, e)
					continue
				}
				compare := output.Compare
				if compare == nil {
					compare = DiffCompare
				}
				if msg := compare(results[i], string(want)); msg != "" {
					t.Errorf("output mismatch for %s:\n%s", outPath, msg)
				}
			}
		})
	}
}

func writeOutput(path, content string) error {
	if content == "" {
		e := os.Remove(path)
		if errors.Is(e, os.ErrNotExist) {
			return nil
		}
		return e
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

func callerDir() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		panic("corpora: cannot determine caller directory")
	}
	return filepath.Dir(file)
}
