package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ava12/ebnf"
)

// Load reads configuration from YAML file at path, applies defaults and environment overrides,
// and validates the result. Empty path or missing file means default configuration.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, e := os.ReadFile(path)
		switch {
		case errors.Is(e, fs.ErrNotExist):
		case e != nil:
			return nil, ebnf.FormatError(ErrReadFile, "cannot read configuration file %q: %s", path, e)
		default:
			if e = yaml.Unmarshal(data, cfg); e != nil {
				return nil, ebnf.FormatError(ErrParseFile, "cannot parse configuration file %q: %s", path, e)
			}
		}
	}

	applyEnvOverrides(cfg)
	ApplyDefaults(cfg)

	if e := Validate(cfg); e != nil {
		return nil, ebnf.FormatError(ErrInvalid, "%s", e)
	}
	return cfg, nil
}

// applyEnvOverrides applies EBNF_SECTION_FIELD environment variables.
// Values that cannot be parsed are ignored.
func applyEnvOverrides(cfg *Config) {
	envBool("EBNF_PARSER_ISO", &cfg.Parser.ISO)
	envBool("EBNF_PARSER_JOIN_WORDS", &cfg.Parser.JoinWords)
	envBool("EBNF_PARSER_HYPHENATED_NAMES", &cfg.Parser.HyphenatedNames)
	envString("EBNF_OUTPUT_FORMAT", &cfg.Output.Format)
	envString("EBNF_LOG_LEVEL", &cfg.Log.Level)
	envString("EBNF_LOG_FORMAT", &cfg.Log.Format)
	if val := os.Getenv("EBNF_CHECK_PARALLELISM"); val != "" {
		if i, e := strconv.Atoi(val); e == nil {
			cfg.Check.Parallelism = i
		}
	}
}

func envString(name string, field *string) {
	if val := os.Getenv(name); val != "" {
		*field = val
	}
}

func envBool(name string, field *bool) {
	if val := os.Getenv(name); val != "" {
		if b, e := strconv.ParseBool(val); e == nil {
			*field = b
		}
	}
}
