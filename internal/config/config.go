// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config reads stage configuration and manuscript descriptors from
// YAML files. Stage options are decoded with the YAML node API rather than
// through viper so their order survives.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/book-pipeline/pkg/types"
)

// Sentinel errors for configuration loading.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("config file parse error")
	ErrInvalidOption  = errors.New("invalid option")
)

// pipelineFile is the subset of the pipeline config file this package reads.
//
//	stages:
//	  pdf:
//	    config:
//	      media: A4
//	      landscape: true
type pipelineFile struct {
	Stages map[string]*types.StageConfig `yaml:"stages"`
}

// LoadStageConfig reads the config section for stage from the YAML file at
// path. A file without that section yields an empty StageConfig.
func LoadStageConfig(path, stage string) (*types.StageConfig, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var f pipelineFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	sc, ok := f.Stages[stage]
	if !ok || sc == nil {
		return &types.StageConfig{}, nil
	}
	return sc, nil
}

// LoadManuscript reads a manuscript descriptor from the YAML file at path.
func LoadManuscript(path string) (*types.Manuscript, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var m types.Manuscript
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	return &m, nil
}

// LoadGlobalConfig wraps already-merged settings (typically viper's
// AllSettings) as a GlobalConfig.
func LoadGlobalConfig(settings map[string]any) *types.GlobalConfig {
	if settings == nil {
		settings = map[string]any{}
	}
	return &types.GlobalConfig{Values: settings}
}

// ParseOption parses a "key=value" command-line option. The value is typed
// the way YAML types a plain scalar, so "true" is a bool, "12" an int, and
// "A4" a string. "key" alone is shorthand for "key=true".
func ParseOption(s string) (types.Option, error) {
	key, raw, hasValue := strings.Cut(s, "=")
	key = strings.TrimSpace(strings.TrimPrefix(key, "--"))
	if key == "" {
		return types.Option{}, fmt.Errorf("%w %q: missing key", ErrInvalidOption, s)
	}
	if !hasValue {
		return types.Option{Key: key, Value: true}, nil
	}
	return types.Option{Key: key, Value: scalarValue(raw)}, nil
}

// scalarValue resolves raw as a YAML plain scalar, falling back to the raw
// string for anything that is not a bool, number, or plain string.
func scalarValue(raw string) any {
	node := yaml.Node{Kind: yaml.ScalarNode, Value: raw}
	switch node.ShortTag() {
	case "!!bool", "!!int", "!!float":
		var v any
		if err := node.Decode(&v); err == nil {
			return v
		}
	}
	return raw
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
