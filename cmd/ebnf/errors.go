package main

import (
	"errors"

	"github.com/ava12/ebnf"
)

// Exit codes:
const (
	ExitOK    = 0
	ExitScan  = 1
	ExitParse = 2
	ExitUsage = 3
)

// CommandError is a command failure with process exit code.
type CommandError struct {
	Command string
	Code    int
	Err     error
}

func (e *CommandError) Error() string {
	return e.Command + ": " + e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func newCommandError(command string, e error) *CommandError {
	return &CommandError{Command: command, Code: exitCodeOf(e), Err: e}
}

// exitCodeOf maps error class of ebnf.Error to exit code, other errors are usage or I/O errors.
func exitCodeOf(e error) int {
	if e == nil {
		return ExitOK
	}

	var ce *CommandError
	if errors.As(e, &ce) {
		return ce.Code
	}

	var ee *ebnf.Error
	if errors.As(e, &ee) {
		switch {
		case ee.Code >= ebnf.LexicalErrors && ee.Code < ebnf.SyntaxErrors:
			return ExitScan
		case ee.Code >= ebnf.SyntaxErrors && ee.Code < ebnf.ConfigErrors:
			return ExitParse
		}
	}
	return ExitUsage
}
