package config

import "runtime"

// Default values for configuration fields.
const (
	DefaultISO             = true
	DefaultJoinWords       = false
	DefaultHyphenatedNames = false
	DefaultOutputFormat    = "ebnf"
	DefaultLogLevel        = "warn"
	DefaultLogFormat       = "text"
)

// Default returns configuration used when no file is given.
func Default() *Config {
	cfg := &Config{
		Parser: ParserConfig{
			ISO:             DefaultISO,
			JoinWords:       DefaultJoinWords,
			HyphenatedNames: DefaultHyphenatedNames,
		},
	}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills empty string fields and non-positive parallelism.
// Boolean fields are left as is, Load starts from Default so that missing keys keep default values.
func ApplyDefaults(cfg *Config) {
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Check.Parallelism == 0 {
		cfg.Check.Parallelism = runtime.NumCPU()
	}
}
