package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// loadYAML is a [kong.ConfigurationLoader] for YAML files mapping flag names
// to values, e.g.
//
//	output: json
//	jobs: 4
//	log_level: debug
//
// Keys may use hyphens or underscores. Command-line flags override the file.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	var values map[string]any
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file.
			return config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return config(values), nil
}

// config implements [kong.Resolver] for flat YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	v, ok := c[flag.Name]
	if !ok {
		v, ok = c[strings.ReplaceAll(flag.Name, "-", "_")]
	}
	if !ok {
		return nil, nil
	}
	switch v := v.(type) {
	case string, bool, []any:
		return v, nil
	default:
		// Kong parses numbers from strings.
		return fmt.Sprint(v), nil
	}
}
