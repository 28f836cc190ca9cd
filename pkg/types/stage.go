// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Option is a single tool option. Value holds a string, bool, or number.
type Option struct {
	Key   string
	Value any
}

// Options is an ordered list of tool options. Order is significant: it is
// the order in which flags reach the external tool.
type Options []Option

// Add appends an option, keeping any earlier option with the same key.
func (o *Options) Add(key string, value any) {
	*o = append(*o, Option{Key: key, Value: value})
}

// Get returns the value of the first option named key.
func (o Options) Get(key string) (any, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return nil, false
}

// UnmarshalYAML decodes a YAML mapping into Options in document order.
func (o *Options) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*o = nil
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: options must be a mapping", node.Line)
	}

	opts := make(Options, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode || v.ShortTag() == "!!null" {
			return fmt.Errorf("line %d: option %q must have a string, boolean, or number value", v.Line, k.Value)
		}
		var value any
		if err := v.Decode(&value); err != nil {
			return fmt.Errorf("line %d: decoding option %q: %w", v.Line, k.Value, err)
		}
		opts = append(opts, Option{Key: k.Value, Value: value})
	}
	*o = opts
	return nil
}

// StageConfig holds the per-stage configuration handed to a stage by the
// pipeline driver.
type StageConfig struct {
	// Config maps tool option names to values, in command-line order.
	Config Options `json:"config,omitempty" yaml:"config,omitempty"`
}

// GlobalConfig holds pipeline-wide settings. Stages accept it for
// interface symmetry; the PDF stage does not read it.
type GlobalConfig struct {
	Values map[string]any `json:"values,omitempty" yaml:"values,omitempty"`
}

// StageContext is the second argument every stage receives.
type StageContext struct {
	StageConfig  *StageConfig
	GlobalConfig *GlobalConfig
}
