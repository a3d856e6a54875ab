// Package config loads configuration of the ebnf command line utility.
//
// Configuration is read from an optional YAML file:
//
//	parser:
//	  iso: true              # reject empty terminal strings
//	  join_words: false      # merge adjacent identifiers into multi-word names
//	  hyphenated_names: false
//	output:
//	  format: ebnf           # debug, bnf, ebnf, or tokens
//	log:
//	  level: warn            # debug, info, warn, or error
//	  format: text           # text or json
//	check:
//	  parallelism: 0         # 0 means number of CPUs
//
// Every field can be overridden with an environment variable named EBNF_SECTION_FIELD,
// e.g. EBNF_PARSER_ISO=false or EBNF_LOG_LEVEL=debug.
package config

import (
	"github.com/ava12/ebnf"
	"github.com/ava12/ebnf/parser"
)

// Error codes used by config:
const (
	// ErrReadFile indicates configuration file that exists but cannot be read.
	ErrReadFile = ebnf.ConfigErrors + iota

	// ErrParseFile indicates malformed YAML.
	ErrParseFile

	// ErrInvalid indicates configuration that fails validation.
	ErrInvalid
)

type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	Check  CheckConfig  `yaml:"check"`
}

type ParserConfig struct {
	ISO             bool `yaml:"iso"`
	JoinWords       bool `yaml:"join_words"`
	HyphenatedNames bool `yaml:"hyphenated_names"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type CheckConfig struct {
	// Parallelism limits number of files checked simultaneously.
	Parallelism int `yaml:"parallelism"`
}

// ParserOptions converts parser section to parser options.
func (c *Config) ParserOptions() parser.Options {
	return parser.Options{
		ISO:             c.Parser.ISO,
		JoinWords:       c.Parser.JoinWords,
		HyphenatedNames: c.Parser.HyphenatedNames,
	}
}
