package ebnf

import (
	"strings"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is an error or a warning reported by tokenizer or parser.
type Diagnostic struct {
	Severity Severity
	*Error
}

func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Message
}

// Diagnostics is a list of diagnostics in the order they were reported.
type Diagnostics []Diagnostic

func (ds *Diagnostics) AddError(e *Error) {
	*ds = append(*ds, Diagnostic{SeverityError, e})
}

func (ds *Diagnostics) AddWarning(e *Error) {
	*ds = append(*ds, Diagnostic{SeverityWarning, e})
}

func (ds Diagnostics) filter(s Severity) Diagnostics {
	var res Diagnostics
	for _, d := range ds {
		if d.Severity == s {
			res = append(res, d)
		}
	}
	return res
}

// Errors returns error diagnostics only.
func (ds Diagnostics) Errors() Diagnostics {
	return ds.filter(SeverityError)
}

// Warnings returns warning diagnostics only.
func (ds Diagnostics) Warnings() Diagnostics {
	return ds.filter(SeverityWarning)
}

// Sorted returns errors followed by warnings, keeping the reporting order within each group.
func (ds Diagnostics) Sorted() Diagnostics {
	return append(ds.Errors(), ds.Warnings()...)
}

func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Err returns the first error diagnostic or nil if there are none.
func (ds Diagnostics) Err() error {
	for _, d := range ds {
		if d.Severity == SeverityError {
			return d.Error
		}
	}
	return nil
}

// String returns one diagnostic per line, errors first.
func (ds Diagnostics) String() string {
	lines := make([]string, 0, len(ds))
	for _, d := range ds.Sorted() {
		lines = append(lines, d.String())
	}
	return strings.Join(lines, "\n")
}
