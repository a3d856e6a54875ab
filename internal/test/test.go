// Package test contains small assertion helpers for checking values and coded errors.
// Every helper stops the test on failure.
package test

import (
	"errors"
	"testing"

	"github.com/ava12/ebnf"
)

func Assert(t *testing.T, cond bool, message string, params ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(message, params...)
	}
}

func Expect[T comparable](t *testing.T, expected, got T) {
	t.Helper()
	if expected != got {
		t.Fatalf("expecting %v, got %v", expected, got)
	}
}

// ErrorCode returns the code of the first ebnf.Error in e chain or 0.
func ErrorCode(e error) int {
	var ee *ebnf.Error
	if errors.As(e, &ee) {
		return ee.Code
	}
	return 0
}

func ExpectErrorCode(t *testing.T, expected int, e error) {
	t.Helper()
	if e == nil || ErrorCode(e) != expected {
		t.Fatalf("expecting error code %d, got %v", expected, e)
	}
}

// ExpectErrorAt checks both error code and position.
func ExpectErrorAt(t *testing.T, code, line, col int, e error) {
	t.Helper()
	ExpectErrorCode(t, code, e)
	var ee *ebnf.Error
	errors.As(e, &ee)
	if ee.Line != line || ee.Col != col {
		t.Fatalf("expecting error at %d:%d, got %d:%d (%s)", line, col, ee.Line, ee.Col, ee.Message)
	}
}
