// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formula

import (
	"fmt"

	"github.com/holiman/uint256"
)

// CalculatePurchaseReturn returns the amount of primary tokens issued for
// depositing [amount] of a connector token:
//
//	supply * ((1 + amount / reserveBalance) ^ (reserveWeight / MaxWeight) - 1)
func CalculatePurchaseReturn(
	supply *uint256.Int,
	reserveBalance *uint256.Int,
	reserveWeight uint32,
	amount *uint256.Int,
) (*uint256.Int, error) {
	if err := validateReserve(supply, reserveBalance, reserveWeight); err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return new(uint256.Int), nil
	}

	if reserveWeight == MaxWeight {
		out, err := mul(supply, amount)
		if err != nil {
			return nil, err
		}
		return out.Div(out, reserveBalance), nil
	}

	baseN, overflow := new(uint256.Int).AddOverflow(amount, reserveBalance)
	if overflow {
		return nil, fmt.Errorf("%w: reserve balance plus amount", ErrArithmeticRange)
	}
	result, precision, err := Power(baseN, reserveBalance, reserveWeight, MaxWeight)
	if err != nil {
		return nil, err
	}
	temp, err := mul(supply, result)
	if err != nil {
		return nil, err
	}
	temp.Rsh(temp, uint(precision))
	if _, underflow := temp.SubOverflow(temp, supply); underflow {
		return nil, fmt.Errorf("%w: purchase return underflows", ErrArithmeticRange)
	}
	return temp, nil
}

// CalculateSaleReturn returns the amount of connector tokens paid out for
// selling [amount] primary tokens:
//
//	reserveBalance * (1 - (1 - amount / supply) ^ (MaxWeight / reserveWeight))
func CalculateSaleReturn(
	supply *uint256.Int,
	reserveBalance *uint256.Int,
	reserveWeight uint32,
	amount *uint256.Int,
) (*uint256.Int, error) {
	if err := validateReserve(supply, reserveBalance, reserveWeight); err != nil {
		return nil, err
	}
	if amount.Gt(supply) {
		return nil, ErrAmountExceedsSupply
	}
	if amount.IsZero() {
		return new(uint256.Int), nil
	}

	// Selling the entire supply returns the entire reserve.
	if amount.Eq(supply) {
		return reserveBalance.Clone(), nil
	}

	if reserveWeight == MaxWeight {
		out, err := mul(reserveBalance, amount)
		if err != nil {
			return nil, err
		}
		return out.Div(out, supply), nil
	}

	baseD := new(uint256.Int).Sub(supply, amount)
	result, precision, err := Power(supply, baseD, MaxWeight, reserveWeight)
	if err != nil {
		return nil, err
	}
	return inverseReturn(reserveBalance, result, precision)
}

// CalculateCrossConnectorReturn returns the amount of the second connector
// paid out for depositing [amount] of the first one. Both legs are folded
// into one power with exponent fromWeight / toWeight:
//
//	toBalance * (1 - (fromBalance / (fromBalance + amount)) ^ (fromWeight / toWeight))
func CalculateCrossConnectorReturn(
	fromBalance *uint256.Int,
	fromWeight uint32,
	toBalance *uint256.Int,
	toWeight uint32,
	amount *uint256.Int,
) (*uint256.Int, error) {
	if err := validateConnector(fromBalance, fromWeight); err != nil {
		return nil, err
	}
	if err := validateConnector(toBalance, toWeight); err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return new(uint256.Int), nil
	}

	baseN, overflow := new(uint256.Int).AddOverflow(fromBalance, amount)
	if overflow {
		return nil, fmt.Errorf("%w: connector balance plus amount", ErrArithmeticRange)
	}

	if fromWeight == toWeight {
		out, err := mul(toBalance, amount)
		if err != nil {
			return nil, err
		}
		return out.Div(out, baseN), nil
	}

	result, precision, err := Power(baseN, fromBalance, fromWeight, toWeight)
	if err != nil {
		return nil, err
	}
	return inverseReturn(toBalance, result, precision)
}

// inverseReturn computes balance * (result - 2^precision) / result.
func inverseReturn(balance, result *uint256.Int, precision uint8) (*uint256.Int, error) {
	temp1, err := mul(balance, result)
	if err != nil {
		return nil, err
	}
	if balance.BitLen()+int(precision) > 256 {
		return nil, fmt.Errorf("%w: balance shifted by precision", ErrArithmeticRange)
	}
	temp2 := new(uint256.Int).Lsh(balance, uint(precision))
	if _, underflow := temp1.SubOverflow(temp1, temp2); underflow {
		return nil, fmt.Errorf("%w: return underflows", ErrArithmeticRange)
	}
	return temp1.Div(temp1, result), nil
}

func mul(x, y *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).MulOverflow(x, y)
	if overflow {
		return nil, fmt.Errorf("%w: multiplication overflows", ErrArithmeticRange)
	}
	return z, nil
}

func validateReserve(supply, reserveBalance *uint256.Int, reserveWeight uint32) error {
	if supply.IsZero() {
		return ErrInvalidSupply
	}
	return validateConnector(reserveBalance, reserveWeight)
}

func validateConnector(balance *uint256.Int, weight uint32) error {
	if balance.IsZero() {
		return ErrInvalidReserveBalance
	}
	if weight == 0 || weight > MaxWeight {
		return ErrInvalidWeight
	}
	return nil
}
