// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hold

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ava-labs/eventqueue/internal/config"
)

var (
	ErrUnknownDistribution = errors.New("unknown increment distribution")
	ErrInvalidMean         = errors.New("mean increment must be positive")
	ErrInvalidRequeueRatio = errors.New("requeue ratio must be in [0, 1]")
	ErrInvalidCount        = errors.New("event and hold counts must not be negative")
	ErrNoEvents            = errors.New("holds require at least one initial event")
)

// Distribution names the law of the time increment added on every hold.
type Distribution string

const (
	Exponential Distribution = "exponential"
	Uniform     Distribution = "uniform"
	Bimodal     Distribution = "bimodal"
	// Constant makes every increment equal, which produces long runs of
	// ties.
	Constant Distribution = "constant"
)

func (d Distribution) String() string { return string(d) }

func ParseDistribution(s string) (Distribution, error) {
	d := Distribution(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Exponential, Uniform, Bimodal, Constant:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDistribution, s)
	}
}

type Config struct {
	Initial      int          `json:"initial" yaml:"initial"` // events seeded before the first hold
	Holds        int          `json:"holds" yaml:"holds"`
	Distribution Distribution `json:"distribution" yaml:"distribution"`
	Mean         float64      `json:"mean" yaml:"mean"`
	RequeueRatio float64      `json:"requeueRatio" yaml:"requeue_ratio"` // chance of a requeue after each hold
	Seed         uint64       `json:"seed" yaml:"seed"`
}

func NewConfig() Config {
	return Config{
		Initial:      1_024,
		Holds:        100_000,
		Distribution: Exponential,
		Mean:         1,
		RequeueRatio: 0,
		Seed:         1,
	}
}

func (c Config) Verify() error {
	if _, err := ParseDistribution(string(c.Distribution)); err != nil {
		return err
	}
	if c.Initial < 0 || c.Holds < 0 {
		return fmt.Errorf("%w: initial=%d holds=%d", ErrInvalidCount, c.Initial, c.Holds)
	}
	if c.Holds > 0 && c.Initial == 0 {
		return ErrNoEvents
	}
	if !(c.Mean > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidMean, c.Mean)
	}
	if !(c.RequeueRatio >= 0 && c.RequeueRatio <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidRequeueRatio, c.RequeueRatio)
	}
	return nil
}

// ParseConfig decodes [bytes] as JSON or YAML on top of [NewConfig].
func ParseConfig(bytes []byte) (Config, error) {
	return config.Parse(bytes, NewConfig())
}

func LoadConfig(path string) (Config, error) {
	return config.Load(path, NewConfig())
}
