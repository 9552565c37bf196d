// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formula

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/ava-labs/convertervm/consts"
)

// Fee magnitudes. A cross connector conversion spans two economic legs and
// pays the fee factor twice, applied once to the combined return.
const (
	SingleHopFeeMagnitude      uint8 = 1
	CrossConnectorFeeMagnitude uint8 = 2
)

// FinalAmount deducts a conversion fee of [fee] out of [resolution] from
// [amount] and returns the net amount together with the fee.
//
// A single hop floors the fee:
//
//	fee = amount * fee / resolution
//	net = amount - fee
//
// Higher magnitudes floor the net amount of the compounded factor:
//
//	net = amount * (resolution - fee)^magnitude / resolution^magnitude
//	fee = amount - net
func FinalAmount(amount *uint256.Int, fee uint32, resolution uint32, magnitude uint8) (*uint256.Int, *uint256.Int, error) {
	if resolution > consts.FeeResolution || fee > resolution {
		return nil, nil, ErrInvalidFee
	}
	if fee == 0 {
		return amount.Clone(), new(uint256.Int), nil
	}

	if magnitude <= SingleHopFeeMagnitude {
		deducted, err := mul(amount, uint256.NewInt(uint64(fee)))
		if err != nil {
			return nil, nil, err
		}
		deducted.Div(deducted, uint256.NewInt(uint64(resolution)))
		return new(uint256.Int).Sub(amount, deducted), deducted, nil
	}

	var (
		numerator   = uint256.NewInt(1)
		denominator = uint256.NewInt(1)
		remaining   = uint256.NewInt(uint64(resolution - fee))
		scale       = uint256.NewInt(uint64(resolution))
	)
	for i := uint8(0); i < magnitude; i++ {
		if _, overflow := numerator.MulOverflow(numerator, remaining); overflow {
			return nil, nil, fmt.Errorf("%w: fee magnitude %d", ErrArithmeticRange, magnitude)
		}
		if _, overflow := denominator.MulOverflow(denominator, scale); overflow {
			return nil, nil, fmt.Errorf("%w: fee magnitude %d", ErrArithmeticRange, magnitude)
		}
	}

	net, err := mul(amount, numerator)
	if err != nil {
		return nil, nil, err
	}
	net.Div(net, denominator)
	return net, new(uint256.Int).Sub(amount, net), nil
}
