// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formula

import (
	"math/big"

	"github.com/holiman/uint256"
)

// The functions below reproduce the tables in max_exp.go. They run at build
// time only (cmd/maxexpgen and tests); the runtime path never touches
// math/big.

var bigMaxVal = new(big.Int).Lsh(big.NewInt(1), 256)

// Coefficients returns (n-1)!/i! for every i in [0, n).
func Coefficients(n int) []*big.Int {
	factorials := make([]*big.Int, n)
	factorials[0] = big.NewInt(1)
	for i := 1; i < n; i++ {
		factorials[i] = new(big.Int).Mul(factorials[i-1], big.NewInt(int64(i)))
	}
	coefficients := make([]*big.Int, n)
	for i := range coefficients {
		coefficients[i] = new(big.Int).Div(factorials[n-1], factorials[i])
	}
	return coefficients
}

// MaxExpArray returns, for every precision in [0, levels), the largest x in
// [1, 2^256] for which the Taylor evaluation with [coefficients] keeps every
// product below 2^256.
func MaxExpArray(coefficients []*big.Int, levels int) []*big.Int {
	maxExp := make([]*big.Int, levels)
	for precision := range maxExp {
		maxExp[precision] = maxExpAtPrecision(coefficients, uint(precision))
	}
	return maxExp
}

// ShiftedMaxExpArray scales every entry to [maxPrecision]:
// ((maxExp[p] + 1) << (maxPrecision - p)) - 1.
func ShiftedMaxExpArray(maxExp []*big.Int, maxPrecision int) []*big.Int {
	shifted := make([]*big.Int, len(maxExp))
	for precision, v := range maxExp {
		s := new(big.Int).Add(v, big.NewInt(1))
		s.Lsh(s, uint(maxPrecision-precision))
		shifted[precision] = s.Sub(s, big.NewInt(1))
	}
	return shifted
}

// GenerateTables returns the shifted bound of every level and the Taylor
// coefficients, as embedded in max_exp.go.
func GenerateTables() ([]*big.Int, []*big.Int) {
	coefficients := Coefficients(NumOfCoefficients)
	maxExp := MaxExpArray(coefficients, MaxPrecision+1)
	return ShiftedMaxExpArray(maxExp, MaxPrecision), coefficients
}

// MaxExpBound returns the embedded bound for [precision].
func MaxExpBound(precision uint8) *uint256.Int {
	return maxExpArray[precision].Clone()
}

// ExpCoefficient returns the embedded coefficient at index [i].
func ExpCoefficient(i int) *uint256.Int {
	return expCoefficients[i].Clone()
}

func maxExpAtPrecision(coefficients []*big.Int, precision uint) *big.Int {
	lo := big.NewInt(1)
	hi := new(big.Int).Set(bigMaxVal)
	mid := new(big.Int)
	for new(big.Int).Add(lo, big.NewInt(1)).Cmp(hi) < 0 {
		mid.Add(lo, hi)
		mid.Rsh(mid, 1)
		if safeFixedExp(mid, coefficients, precision) {
			lo.Set(mid)
		} else {
			hi.Set(mid)
		}
	}
	if safeFixedExp(hi, coefficients, precision) {
		return hi
	}
	return lo
}

// safeFixedExp reports whether evaluating the series at x keeps every
// product below 2^256.
func safeFixedExp(x *big.Int, coefficients []*big.Int, precision uint) bool {
	xi := new(big.Int).Set(x)
	product := new(big.Int)
	if product.Mul(xi, coefficients[0]).Cmp(bigMaxVal) >= 0 {
		return false
	}
	for _, c := range coefficients[1 : len(coefficients)-1] {
		if xi.Mul(xi, x).Cmp(bigMaxVal) >= 0 {
			return false
		}
		xi.Rsh(xi, precision)
		if product.Mul(xi, c).Cmp(bigMaxVal) >= 0 {
			return false
		}
	}
	return true
}
