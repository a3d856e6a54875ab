package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/ebnf"
	"github.com/ava12/ebnf/goebnf"
	"github.com/ava12/ebnf/lexer"
	"github.com/ava12/ebnf/parser"
)

func run(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	code = Execute(context.Background(), args, out, errOut)
	return out.String(), errOut.String(), code
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFormats(t *testing.T) {
	path := writeFile(t, "g.ebnf", "a = c | b; a = x;")
	samples := map[string]string{
		"ebnf":  "a = c | b;\na = x;\n",
		"bnf":   "<a> ::= <c> | <b>\n<a> ::= <x>\n",
		"debug": "[SEQ rules: [BINARY rule: [IDENT: a], [SEQ expr: [SEQ terms: [IDENT: c]], [SEQ terms: [IDENT: b]]]], [BINARY rule: [IDENT: a], [SEQ expr: [SEQ terms: [IDENT: x]]]]]",
	}
	for format, expected := range samples {
		out, errOut, code := run(t, "parse", "--format", format, path)
		assert.Equal(t, ExitOK, code, errOut)
		assert.Equal(t, expected, out, format)
	}
}

func TestParseTokens(t *testing.T) {
	path := writeFile(t, "g.ebnf", "a = 'x';")
	out, _, code := run(t, "parse", "-f", "tokens", path)
	require.Equal(t, ExitOK, code)
	expected := "1:1\tidentifier \"a\"\n1:3\tsymbol \"=\"\n1:5\tstring \"x\"\n1:8\tsymbol \";\"\n1:9\tend of file\n"
	assert.Equal(t, expected, out)
}

func TestExitCodes(t *testing.T) {
	samples := []struct {
		name    string
		args    func(dir string) []string
		code    int
		message string
	}{
		{"scan error", func(dir string) []string {
			return []string{"parse", writeFile(t, "g.ebnf", "a = 'x;")}
		}, ExitScan, "terminal string is invalid"},
		{"parse error", func(dir string) []string {
			return []string{"parse", writeFile(t, "g.ebnf", "a = b")}
		}, ExitParse, "expected ';' or ','"},
		{"missing file", func(dir string) []string {
			return []string{"parse", filepath.Join(dir, "missing.ebnf")}
		}, ExitUsage, "missing.ebnf"},
		{"bad format", func(dir string) []string {
			return []string{"parse", "-f", "yaml", writeFile(t, "g.ebnf", "a = b;")}
		}, ExitUsage, "unknown format"},
		{"no arguments", func(dir string) []string {
			return []string{"parse"}
		}, ExitUsage, "arg"},
		{"bad log level", func(dir string) []string {
			return []string{"--log-level", "loud", "parse", writeFile(t, "g.ebnf", "a = b;")}
		}, ExitUsage, "log.level"},
	}

	for _, s := range samples {
		_, errOut, code := run(t, s.args(t.TempDir())...)
		assert.Equal(t, s.code, code, s.name)
		assert.Contains(t, errOut, s.message, s.name)
	}
}

func TestParseWarningsAndFlags(t *testing.T) {
	path := writeFile(t, "g.ebnf", "a = 0 * 'x', '';")
	_, errOut, code := run(t, "parse", path)
	assert.Equal(t, ExitScan, code)
	assert.Contains(t, errOut, "empty string")

	out, errOut, code := run(t, "--iso=false", "parse", path)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "a = 0 * \"x\", ;\n", out)
	assert.Contains(t, errOut, "warning: zero repetition")
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "ebnf.yaml", "output:\n  format: bnf\nparser:\n  hyphenated_names: true\n")
	path := writeFile(t, "g.ebnf", "long-name = x;")
	out, errOut, code := run(t, "-c", cfg, "parse", path)
	require.Equal(t, ExitOK, code, errOut)
	assert.Equal(t, "<long-name> ::= <x>\n", out)

	_, _, code = run(t, "-c", cfg, "--hyphens=false", "parse", path)
	assert.Equal(t, ExitParse, code)
}

func TestFmt(t *testing.T) {
	path := writeFile(t, "g.ebnf", "b = y | x; a = z; b = x;")
	out, _, code := run(t, "fmt", path)
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "b = x | y;\na = z;\n", out)

	out, _, code = run(t, "fmt", "-w", path)
	require.Equal(t, ExitOK, code)
	assert.Empty(t, out)
	data, e := os.ReadFile(path)
	require.NoError(t, e)
	assert.Equal(t, "b = x | y;\na = z;\n", string(data))
}

func TestCompare(t *testing.T) {
	a := writeFile(t, "a.ebnf", "a = x | y;")
	b := writeFile(t, "b.ebnf", "a = y; a = x | x;")
	c := writeFile(t, "c.ebnf", "a = z;")

	out, _, code := run(t, "compare", a, b)
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "equal\n", out)

	out, _, _ = run(t, "compare", c, a)
	assert.Equal(t, "greater\n", out)

	out, _, _ = run(t, "compare", "--diff", a, c)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "less", lines[0])
	assert.Contains(t, out, "-a = x | y;")
	assert.Contains(t, out, "+a = z;")
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.ebnf", "a = b; b = 'x';")
	warn := writeFile(t, "warn.ebnf", "a = 0 * b;")
	bad := writeFile(t, "bad.ebnf", "a = [b;")

	out, errOut, code := run(t, "check", good, warn, bad)
	assert.Equal(t, ExitParse, code)
	assert.Contains(t, errOut, "1 of 3 files failed")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4, out)
	assert.Equal(t, good+": ok, 2 rules", lines[0])
	assert.Equal(t, warn+": ok, 1 rules", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "warning: zero repetition"), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "error: ']' unmatched"), lines[3])

	out, _, code = run(t, "check", good, filepath.Join(t.TempDir(), "missing.ebnf"))
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, out, "missing.ebnf: open")
}

func TestNames(t *testing.T) {
	path := writeFile(t, "g.ebnf", "b = x; a = b, c; b = a; long name = b;")

	_, _, code := run(t, "names", path)
	assert.Equal(t, ExitParse, code)

	out, _, code := run(t, "-j", "names", path)
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "b\na\nlong name\n", out)

	out, _, _ = run(t, "--join-words", "names", "--sorted", path)
	assert.Equal(t, "a\t1\nb\t2\nlong name\t1\n", out)

	cfg := writeFile(t, "ebnf.yaml", "parser:\n  join_words: true\n")
	out, _, _ = run(t, "-c", cfg, "names", "--refs", path)
	assert.Equal(t, "b\na\nlong name\nundefined x\nundefined c\n", out)
}

func TestImport(t *testing.T) {
	goPath := writeFile(t, "g.ebnf", `A = B | "c" . B = "b" { "b" } .`)
	out, errOut, code := run(t, "import", goPath)
	require.Equal(t, ExitOK, code, errOut)
	assert.Equal(t, "A = B | \"c\";\nB = \"b\", {\"b\"};\n", out)

	_, _, code = run(t, "import", "--start", "A", goPath)
	assert.Equal(t, ExitOK, code)
	_, errOut, code = run(t, "import", "--start", "B", goPath)
	assert.Equal(t, ExitParse, code)
	assert.Contains(t, errOut, "grammar is invalid")

	bnfPath := writeFile(t, "g.bnf", "<a> ::= <b>+ \"c\"\n<b> ::= [<a>]\n")
	out, _, code = run(t, "import", "--bnf", bnfPath)
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "a = (b), {b}, \"c\";\nb = [a];\n", out)

	out, _, _ = run(t, "import", "--bnf", "-f", "bnf", bnfPath)
	assert.Equal(t, "<a> ::= <b>+ \"c\"\n<b> ::= [<a>]\n", out)
}

func TestVersion(t *testing.T) {
	out, _, code := run(t, "version")
	require.Equal(t, ExitOK, code)
	assert.True(t, strings.HasPrefix(out, "ebnf "+Version+"\n"), out)

	out, _, _ = run(t, "--version")
	assert.Contains(t, out, Version)
}

func TestExitCodeOf(t *testing.T) {
	samples := []struct {
		e    error
		code int
	}{
		{nil, ExitOK},
		{ebnf.FormatError(lexer.ErrInvalidChar, "x"), ExitScan},
		{ebnf.FormatError(parser.ErrExpectedEquals, "x"), ExitParse},
		{ebnf.FormatError(goebnf.ErrSyntax, "x"), ExitParse},
		{ebnf.FormatError(ebnf.ConfigErrors, "x"), ExitUsage},
		{errors.New("x"), ExitUsage},
		{&CommandError{Command: "c", Code: 7, Err: errors.New("x")}, 7},
	}
	for i, s := range samples {
		assert.Equal(t, s.code, exitCodeOf(s.e), "sample #%d", i)
	}
}

func TestWatchFile(t *testing.T) {
	path := writeFile(t, "g.ebnf", "a = b;")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, 10*time.Millisecond, slog.New(slog.DiscardHandler), func() {
			changed <- struct{}{}
		})
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for notified := false; !notified; {
		select {
		case <-changed:
			notified = true
		case <-tick.C:
			require.NoError(t, os.WriteFile(path, []byte("a = c;"), 0o644))
		case <-deadline:
			t.Fatal("no change notification")
		}
	}

	cancel()
	select {
	case e := <-done:
		assert.NoError(t, e)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
