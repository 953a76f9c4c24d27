// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config decodes JSON or YAML config files on top of defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

var ErrInvalidFormat = errors.New("config is neither JSON nor YAML")

// Verifiable is a pointer to a config struct that can check itself.
type Verifiable[C any] interface {
	*C
	Verify() error
}

// Parse decodes [bytes] over [defaults] and verifies the result. Omitted
// fields keep their defaults and empty input returns [defaults] unchanged.
// YAML decoding is strict, so unknown keys are errors.
func Parse[C any, P Verifiable[C]](bytes []byte, defaults C) (C, error) {
	c := defaults
	switch {
	case len(bytes) == 0:
		return c, nil
	case isJSON(bytes):
		if err := json.Unmarshal(bytes, &c); err != nil {
			return *new(C), err
		}
	case isYAML(bytes):
		if err := yaml.UnmarshalStrict(bytes, &c); err != nil {
			return *new(C), err
		}
	default:
		return *new(C), ErrInvalidFormat
	}
	if err := P(&c).Verify(); err != nil {
		return *new(C), err
	}
	return c, nil
}

// Load reads the file at [path] and parses it with [Parse].
func Load[C any, P Verifiable[C]](path string, defaults C) (C, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return *new(C), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse[C, P](bytes, defaults)
}

func isJSON(bytes []byte) bool {
	var js map[string]interface{}
	return json.Unmarshal(bytes, &js) == nil
}

func isYAML(bytes []byte) bool {
	var y map[string]interface{}
	return yaml.Unmarshal(bytes, &y) == nil
}
