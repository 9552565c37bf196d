// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formula

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/convertervm/consts"
)

func TestFinalAmount(t *testing.T) {
	tests := []struct {
		name       string
		amount     uint64
		fee        uint32
		resolution uint32
		magnitude  uint8
		net        uint64
		deducted   uint64
	}{
		{"no fee", 1_000, 0, consts.FeeResolution, SingleHopFeeMagnitude, 1_000, 0},
		{"no fee cross", 1_000, 0, consts.FeeResolution, CrossConnectorFeeMagnitude, 1_000, 0},
		{"no fee without resolution", 1_000, 0, 0, SingleHopFeeMagnitude, 1_000, 0},
		{"one percent", 1_000, 10_000, consts.FeeResolution, SingleHopFeeMagnitude, 990, 10},
		{"one percent cross", 1_000, 10_000, consts.FeeResolution, CrossConnectorFeeMagnitude, 980, 20},
		{"full fee", 1_000, 1_000_000, consts.FeeResolution, SingleHopFeeMagnitude, 0, 1_000},
		{"fee is floored", 999, 10_000, consts.FeeResolution, SingleHopFeeMagnitude, 990, 9},
		{"fee below one unit", 99, 10_000, consts.FeeResolution, SingleHopFeeMagnitude, 99, 0},
		{"cross net is floored", 999, 10_000, consts.FeeResolution, CrossConnectorFeeMagnitude, 979, 20},
		{"capped resolution", 1_000, 1_000, 100_000, SingleHopFeeMagnitude, 990, 10},
		{"capped resolution cross", 1_000, 1_000, 100_000, CrossConnectorFeeMagnitude, 980, 20},
		{"zero amount", 0, 10_000, consts.FeeResolution, CrossConnectorFeeMagnitude, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			net, fee, err := FinalAmount(uint256.NewInt(tt.amount), tt.fee, tt.resolution, tt.magnitude)
			require.NoError(err)
			require.Equal(tt.net, net.Uint64())
			require.Equal(tt.deducted, fee.Uint64())
		})
	}
}

func TestFinalAmountErrors(t *testing.T) {
	require := require.New(t)

	_, _, err := FinalAmount(uint256.NewInt(1_000), 1_000_001, consts.FeeResolution, SingleHopFeeMagnitude)
	require.ErrorIs(err, ErrInvalidFee)
	_, _, err = FinalAmount(uint256.NewInt(1_000), 10_001, 10_000, SingleHopFeeMagnitude)
	require.ErrorIs(err, ErrInvalidFee)
	_, _, err = FinalAmount(uint256.NewInt(1_000), 0, consts.FeeResolution+1, SingleHopFeeMagnitude)
	require.ErrorIs(err, ErrInvalidFee)

	huge := new(uint256.Int).Lsh(one, 250)
	_, _, err = FinalAmount(huge, 10_000, consts.FeeResolution, SingleHopFeeMagnitude)
	require.ErrorIs(err, ErrArithmeticRange)
	_, _, err = FinalAmount(huge, 10_000, consts.FeeResolution, CrossConnectorFeeMagnitude)
	require.ErrorIs(err, ErrArithmeticRange)
}
