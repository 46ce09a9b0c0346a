package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Grammar.Start == "" {
		return errors.New("grammar.start must not be empty")
	}
	if c.Parser.MaxTrees < 0 {
		return fmt.Errorf("parser.max_trees must be >= 0, is %d", c.Parser.MaxTrees)
	}
	if c.Mining.MinN < 1 {
		return fmt.Errorf("mining.min_n must be >= 1, is %d", c.Mining.MinN)
	}
	if c.Mining.MaxN < c.Mining.MinN {
		return fmt.Errorf("mining.max_n (%d) must be >= mining.min_n (%d)", c.Mining.MaxN, c.Mining.MinN)
	}
	if c.Mining.Top < 0 {
		return fmt.Errorf("mining.top must be >= 0, is %d", c.Mining.Top)
	}
	if c.Mining.Unknown == "" {
		return errors.New("mining.unknown must not be empty")
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if c.Server.MaxNgram < 1 {
		return fmt.Errorf("server.max_ngram must be >= 1, is %d", c.Server.MaxNgram)
	}
	if _, err := ParseTraceLevel(c.Trace.Level); err != nil {
		return err
	}
	return nil
}

// ParseTraceLevel checks a trace level name and converts it to a trace level.
func ParseTraceLevel(name string) (tracing.TraceLevel, error) {
	switch strings.ToLower(name) {
	case "debug", "info", "error":
		return tracing.TraceLevelFromString(name), nil
	}
	return tracing.LevelError, fmt.Errorf("trace.level must be one of Debug, Info, Error, is %q", name)
}
