/*
Package ebnf reads ISO/IEC 14977 EBNF grammars and canonicalizes them.

Consists of subpackages:
  - cmd/ebnf: console utility that parses, formats, compares, and checks grammar files;
  - source: defines source file with line index;
  - lexer: scanner and tokenizer for ISO EBNF text;
  - parser: recursive-descent parser producing syntax trees;
  - ast: syntax tree nodes, ordering, canonical forms, rule operations, and printers;
  - bnf: reader for the BNF display form produced by ast.BNF;
  - goebnf: importer for Go-style EBNF grammars.

Typical usage is:

1. Parse grammar text with parser.ParseString (or parser.ParseGrammar to get all diagnostics).

2. Merge repeated definitions with ast.JoinRules, compare grammars with ast.Equal and ast.Less.

3. Print the result with ast.EBNF, ast.BNF, or ast.Debug.
*/
package ebnf

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	LexicalErrors = 101 // used by lexer
	SyntaxErrors  = 201 // used by parser and bnf
	ImportErrors  = 301 // used by goebnf
	ConfigErrors  = 401 // used by command line utility configuration
)

// Error is the error type used by ebnf subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// lexer.Token implements this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// line and col will be added to error message if provided (non-zero), name is added if not empty.
func NewError(code int, msg, name string, line, col int) *Error {
	if line != 0 && col != 0 {
		if name == "" {
			msg += fmt.Sprintf(" at line %d col %d", line, col)
		} else {
			msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
		}
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
