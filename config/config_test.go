// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/convertervm/pebble"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(*require.Assertions, *Config)
		err   error
	}{
		{
			name:  "defaults",
			input: "",
			check: func(require *require.Assertions, c *Config) {
				require.Equal(logging.Info, c.LogLevel)
				require.Equal(pebble.NewDefaultConfig(), c.Pebble)
				require.True(c.MetricsEnabled)
				require.Equal("convertervm", c.MetricsNamespace)
				require.Empty(c.DatabasePath)
			},
		},
		{
			name:  "overrides",
			input: `{"logLevel":"debug","databasePath":"/tmp/db","pebble":{"sync":false}}`,
			check: func(require *require.Assertions, c *Config) {
				require.Equal(logging.Debug, c.LogLevel)
				require.Equal("/tmp/db", c.DatabasePath)
				require.False(c.Pebble.Sync)
				// Unset pebble fields keep their defaults.
				require.Equal(pebble.NewDefaultConfig().CacheSize, c.Pebble.CacheSize)
			},
		},
		{
			name:  "metrics disabled without namespace",
			input: `{"metricsEnabled":false,"metricsNamespace":""}`,
			check: func(require *require.Assertions, c *Config) {
				require.False(c.MetricsEnabled)
			},
		},
		{
			name:  "metrics without namespace",
			input: `{"metricsNamespace":""}`,
			err:   ErrMissingNamespace,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			c, err := New([]byte(tt.input))
			require.ErrorIs(err, tt.err)
			if tt.err != nil {
				return
			}
			tt.check(require, c)
		})
	}
}

func TestNewMalformed(t *testing.T) {
	_, err := New([]byte("{"))
	require.Error(t, err)
}
