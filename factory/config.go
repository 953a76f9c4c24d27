// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package factory

import (
	"fmt"

	"github.com/ava-labs/eventqueue/internal/config"
	"github.com/ava-labs/eventqueue/queue"
)

const (
	defaultKind      = Heap
	defaultThreshold = 64
)

type Config struct {
	Kind      Kind           `json:"kind" yaml:"kind"`
	// Threshold is the number of distinct near times for twotier and the
	// initial bucket count for bucket and rebucket. Other kinds ignore it.
	Threshold int            `json:"threshold" yaml:"threshold"`
	SizeHint  int            `json:"sizeHint" yaml:"size_hint"` // expected number of pending events
	Identity  queue.Identity `json:"identity" yaml:"identity"`
}

func NewConfig() Config {
	return Config{
		Kind:      defaultKind,
		Threshold: defaultThreshold,
		SizeHint:  0,
		Identity:  queue.IdentityMatch,
	}
}

// Verify checks the fields every kind shares. Kind specific checks happen
// in the kind's factory.
func (c Config) Verify() error {
	if _, err := ParseKind(string(c.Kind)); err != nil {
		return err
	}
	if c.SizeHint < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSizeHint, c.SizeHint)
	}
	return nil
}

// ParseConfig decodes [bytes] as JSON or YAML on top of [NewConfig], so
// omitted fields keep their defaults.
func ParseConfig(bytes []byte) (Config, error) {
	return config.Parse(bytes, NewConfig())
}

func LoadConfig(path string) (Config, error) {
	return config.Load(path, NewConfig())
}
