// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects one partial [StructuredConfig] per source and merges
// them in the order they were added. mergo only fills fields still at their
// zero value, so an earlier layer always wins over a later one for the same
// field. Source errors are accumulated and surfaced once, at merge time.
type configBuilder struct {
	layers []*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]*StructuredConfig, 0, 4),
	}
}

// merge folds the collected layers into a single validated config.
func (b *configBuilder) merge() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("assemble config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("merge config layer: %w", err)
		}
	}

	return merged, merged.validate()
}

func (b *configBuilder) fromEnv() *configBuilder {
	layer := &StructuredConfig{}
	if err := loadEnv(layer); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, layer)
	return b
}

func (b *configBuilder) fromFlags() *configBuilder {
	b.layers = append(b.layers, ParseFlags())
	return b
}

// fromJSONFile adds the JSON file layer when one of the earlier layers named
// a file. Called last, so both CONFIG and -c/-config can point to it.
func (b *configBuilder) fromJSONFile() *configBuilder {
	var jsonPath string
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			jsonPath = layer.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	layer, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, layer)
	return b
}
