package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	OutputFormats = []string{"debug", "bnf", "ebnf", "tokens"}
	LogLevels     = []string{"debug", "info", "warn", "error"}
	LogFormats    = []string{"text", "json"}
)

// FieldError is a validation error of a single field.
type FieldError struct {
	// Field is a dotted path, e.g. "log.level".
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationError contains every field error found.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "configuration is invalid: " + e.Errors[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "configuration is invalid, %d errors:", len(e.Errors))
	for _, fe := range e.Errors {
		sb.WriteString("\n  - " + fe.Error())
	}
	return sb.String()
}

// Validate returns ValidationError listing all invalid fields or nil.
func Validate(cfg *Config) error {
	var errs []FieldError
	oneOf := func(field, value string, allowed []string) {
		if !slices.Contains(allowed, value) {
			errs = append(errs, FieldError{field, fmt.Sprintf("%q is not one of %s", value, strings.Join(allowed, ", "))})
		}
	}

	oneOf("output.format", cfg.Output.Format, OutputFormats)
	oneOf("log.level", cfg.Log.Level, LogLevels)
	oneOf("log.format", cfg.Log.Format, LogFormats)
	if cfg.Check.Parallelism < 0 {
		errs = append(errs, FieldError{"check.parallelism", "must not be negative"})
	}

	if len(errs) > 0 {
		return ValidationError{errs}
	}
	return nil
}
