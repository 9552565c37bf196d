// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formula

import (
	"github.com/holiman/uint256"

	"github.com/ava-labs/convertervm/consts"
)

const (
	// MinPrecision and MaxPrecision bound the active levels of maxExpArray.
	MinPrecision = 32
	MaxPrecision = 127

	// NumOfCoefficients is the number of Taylor terms used by fixedExp.
	NumOfCoefficients = 34

	// ln2Mantissa / 2^ln2Exponent approximates ln(2).
	ln2Exponent = 122

	// MaxWeight is the weight resolution (parts per million).
	MaxWeight = consts.MaxWeight
)

var (
	one = uint256.NewInt(1)

	// fixed1 is 1.0 in the working fixed point format (2^MaxPrecision).
	fixed1 = new(uint256.Int).Lsh(one, MaxPrecision)
	fixed2 = new(uint256.Int).Lsh(one, MaxPrecision+1)

	// maxNum is the largest numerator accepted by ln (2^129 - 1).
	maxNum = new(uint256.Int).Sub(new(uint256.Int).Lsh(one, MaxPrecision+2), one)

	// 0x2c5c85fdf473de6af278ece600fcbda
	ln2Mantissa = &uint256.Int{0xaf278ece600fcbda, 0x02c5c85fdf473de6, 0, 0}

	maxWeight = uint256.NewInt(uint64(MaxWeight))
)
