package config

import (
	"errors"
	"os"
)

const IgnoreCaseEnv = "IGNORE_CASE"

var ErrMissingQuery = errors.New("missing query string")
var ErrMissingFilePath = errors.New("missing file path")

// ArgumentError reports a missing positional argument.
type ArgumentError struct {
	Err error
}

func (e *ArgumentError) Error() string { return e.Err.Error() }

func (e *ArgumentError) Unwrap() error { return e.Err }

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Config is the parsed invocation. It is not modified after Build.
type Config struct {
	query      string
	filePath   string
	ignoreCase bool
}

func (c Config) Query() string    { return c.query }
func (c Config) FilePath() string { return c.filePath }
func (c Config) IgnoreCase() bool { return c.ignoreCase }

// New is for callers that already hold the parsed values.
func New(query, filePath string, ignoreCase bool) Config {
	return Config{query: query, filePath: filePath, ignoreCase: ignoreCase}
}

// Build parses args, where args[0] is the program name, and reads
// IGNORE_CASE through lookup. Only presence of the variable matters.
func Build(args []string, lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if len(args) < 2 {
		return Config{}, &ArgumentError{Err: ErrMissingQuery}
	}
	if len(args) < 3 {
		return Config{}, &ArgumentError{Err: ErrMissingFilePath}
	}

	_, ignoreCase := lookup(IgnoreCaseEnv)

	return Config{
		query:      args[1],
		filePath:   args[2],
		ignoreCase: ignoreCase,
	}, nil
}
