// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"errors"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/convertervm/pebble"
)

var ErrMissingNamespace = errors.New("metrics namespace is empty")

type Config struct {
	// Logging
	LogLevel     logging.Level `json:"logLevel"`
	LogDirectory string        `json:"logDirectory"` // logs to stderr only when empty

	// Storage
	DatabasePath string        `json:"databasePath"` // in-memory when empty
	Pebble       pebble.Config `json:"pebble"`

	// Metrics
	MetricsEnabled   bool   `json:"metricsEnabled"`
	MetricsNamespace string `json:"metricsNamespace"`
}

func New(b []byte) (*Config, error) {
	c := &Config{
		LogLevel:         logging.Info,
		Pebble:           pebble.NewDefaultConfig(),
		MetricsEnabled:   true,
		MetricsNamespace: "convertervm",
	}

	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, err
		}
	}
	if c.MetricsEnabled && len(c.MetricsNamespace) == 0 {
		return nil, ErrMissingNamespace
	}
	return c, nil
}
