package app

import "fmt"

// Config holds everything a single invocation needs.
type Config struct {
	// InputPath is the file holding one [xxxxx,yyyyy] range per line.
	InputPath string
	// SelfTest runs the built in scenarios before any input file.
	SelfTest bool
	// Debug enables the verbose per line and per merge step output.
	Debug     bool
	LogFormat string
	// TempDir is where the self test writes its scratch file. Empty means
	// the system default.
	TempDir string
}

// NewConfig applies defaults to c and validates the result.
func NewConfig(c Config) (*Config, error) {
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return &c, nil
}
