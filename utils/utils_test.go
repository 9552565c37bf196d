// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "0", want: "0"},
		{in: "1_000_000", want: "1000000"},
		{in: " 42 ", want: "42"},
		{in: "115792089237316195423570985008687907853269984665640564039457584007913129639935", want: "115792089237316195423570985008687907853269984665640564039457584007913129639935"},
		{in: "115792089237316195423570985008687907853269984665640564039457584007913129639936", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require := require.New(t)
			v, err := ParseAmount(tt.in)
			if tt.wantErr {
				require.ErrorIs(err, ErrInvalidAmount)
				return
			}
			require.NoError(err)
			require.Equal(tt.want, FormatAmount(v))
		})
	}
}

func TestFormatAmountNil(t *testing.T) {
	require.Equal(t, "0", FormatAmount(nil))
	require.Equal(t, "7", FormatAmount(uint256.NewInt(7)))
}

func TestToID(t *testing.T) {
	require := require.New(t)
	require.Equal(ToID([]byte("converter")), ToID([]byte("converter")))
	require.NotEqual(ToID([]byte("converter")), ToID([]byte("registry")))
}

func TestInitSubDirectory(t *testing.T) {
	require := require.New(t)

	root := t.TempDir()
	p, err := InitSubDirectory(root, "db")
	require.NoError(err)
	require.Equal(filepath.Join(root, "db"), p)

	info, err := os.Stat(p)
	require.NoError(err)
	require.True(info.IsDir())
}
