// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formula

import (
	"fmt"

	"github.com/holiman/uint256"
)

//go:generate go run github.com/ava-labs/convertervm/cmd/maxexpgen --output max_exp.go

// Power approximates (baseN / baseD)^(expN / expD) as result / 2^precision.
//
// The approximation is integer only: the generalized logarithm of the base
// is scaled by the exponent, the most precise table level that can hold the
// scaled value is selected, and the exponential is evaluated with a fixed
// point Taylor expansion at that precision. Any value that does not fit
// returns [ErrArithmeticRange].
func Power(baseN, baseD *uint256.Int, expN, expD uint32) (*uint256.Int, uint8, error) {
	if baseD.IsZero() || expD == 0 {
		return nil, 0, ErrZeroDenominator
	}
	base, err := ln(baseN, baseD)
	if err != nil {
		return nil, 0, err
	}
	lnBaseTimesExp, overflow := new(uint256.Int).MulOverflow(base, uint256.NewInt(uint64(expN)))
	if overflow {
		return nil, 0, fmt.Errorf("%w: scaled exponent overflows", ErrArithmeticRange)
	}
	lnBaseTimesExp.Div(lnBaseTimesExp, uint256.NewInt(uint64(expD)))

	precision, err := findPositionInMaxExpArray(lnBaseTimesExp)
	if err != nil {
		return nil, 0, err
	}
	x := new(uint256.Int).Rsh(lnBaseTimesExp, uint(MaxPrecision-precision))
	result, err := fixedExp(x, precision)
	if err != nil {
		return nil, 0, err
	}
	return result, precision, nil
}

// ln returns log(numerator / denominator) * 2^MaxPrecision. The result is
// 0 when the ratio is at most 1.
func ln(numerator, denominator *uint256.Int) (*uint256.Int, error) {
	if numerator.Gt(maxNum) {
		return nil, fmt.Errorf("%w: numerator exceeds 2^129-1", ErrArithmeticRange)
	}

	res := new(uint256.Int)
	x := new(uint256.Int).Mul(numerator, fixed1)
	x.Div(x, denominator)

	// The integer part of log2(x) is taken out first so the remaining
	// fraction lies in [1, 2).
	if !x.Lt(fixed2) {
		count := floorLog2(new(uint256.Int).Div(x, fixed1))
		x.Rsh(x, count)
		res.Mul(uint256.NewInt(uint64(count)), fixed1)
	}

	// Each squaring yields one more bit of the fraction.
	if x.Gt(fixed1) {
		for i := uint(MaxPrecision); i > 0; i-- {
			x.Mul(x, x)
			x.Div(x, fixed1)
			if !x.Lt(fixed2) {
				x.Rsh(x, 1)
				res.Add(res, new(uint256.Int).Lsh(one, i-1))
			}
		}
	}

	if _, overflow := res.MulOverflow(res, ln2Mantissa); overflow {
		return nil, fmt.Errorf("%w: log2 to ln conversion overflows", ErrArithmeticRange)
	}
	return res.Rsh(res, ln2Exponent), nil
}

// floorLog2 returns the largest k with 2^k <= n, for n >= 1.
func floorLog2(n *uint256.Int) uint {
	if n.IsZero() {
		return 0
	}
	return uint(n.BitLen() - 1)
}

// findPositionInMaxExpArray returns the highest precision whose bound is at
// least x. Bounds shrink as precision grows, so this is the tightest level
// that still accommodates x.
func findPositionInMaxExpArray(x *uint256.Int) (uint8, error) {
	lo := uint8(MinPrecision)
	hi := uint8(MaxPrecision)
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if !maxExpArray[mid].Lt(x) {
			lo = mid
		} else {
			hi = mid
		}
	}
	if !maxExpArray[hi].Lt(x) {
		return hi, nil
	}
	if !maxExpArray[lo].Lt(x) {
		return lo, nil
	}
	return 0, fmt.Errorf("%w: exponent exceeds every precision level", ErrArithmeticRange)
}

// fixedExp returns e^(x / 2^precision) * 2^precision using the first
// NumOfCoefficients terms of the Taylor series. Every term is accumulated
// with the common denominator (NumOfCoefficients-1)! and divided once.
func fixedExp(x *uint256.Int, precision uint8) (*uint256.Int, error) {
	var (
		xi   = x.Clone()
		res  = new(uint256.Int)
		term = new(uint256.Int)
	)
	for i := 2; i < NumOfCoefficients; i++ {
		if _, overflow := xi.MulOverflow(xi, x); overflow {
			return nil, fmt.Errorf("%w: taylor term %d overflows", ErrArithmeticRange, i)
		}
		xi.Rsh(xi, uint(precision))
		if _, overflow := term.MulOverflow(xi, &expCoefficients[i]); overflow {
			return nil, fmt.Errorf("%w: taylor term %d overflows", ErrArithmeticRange, i)
		}
		if _, overflow := res.AddOverflow(res, term); overflow {
			return nil, fmt.Errorf("%w: taylor sum overflows", ErrArithmeticRange)
		}
	}
	res.Div(res, &expCoefficients[0])
	res.Add(res, x)
	return res.Add(res, new(uint256.Int).Lsh(one, uint(precision))), nil
}
