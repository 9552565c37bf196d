// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package converter

import (
	"errors"
	"fmt"

	"github.com/ava-labs/convertervm/consts"
	"github.com/ava-labs/convertervm/formula"
)

// Error kinds. Every error returned by the converter wraps exactly one of
// them, so callers can classify failures with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrAuthorization = errors.New("authorization error")
	ErrSlippage      = errors.New("slippage error")
	ErrState         = errors.New("state error")

	ErrArithmeticRange = formula.ErrArithmeticRange
)

// Validation
var (
	ErrInvalidAmount           = fmt.Errorf("%w: amount must be positive", ErrValidation)
	ErrInvalidMinReturn        = fmt.Errorf("%w: minimum return must be positive", ErrValidation)
	ErrInvalidWeight           = fmt.Errorf("%w: weight must be in (0, %d]", ErrValidation, consts.MaxWeight)
	ErrTotalWeightExceeded     = fmt.Errorf("%w: total connector weight exceeds %d", ErrValidation, consts.MaxWeight)
	ErrInvalidFee              = fmt.Errorf("%w: conversion fee exceeds maximum", ErrValidation)
	ErrInvalidMaxConversionFee = fmt.Errorf("%w: maximum conversion fee exceeds %d", ErrValidation, consts.MaxConversionFee)
	ErrInvalidAddress          = fmt.Errorf("%w: invalid address", ErrValidation)
	ErrConnectorNotSet         = fmt.Errorf("%w: connector not registered", ErrValidation)
	ErrConnectorAlreadySet     = fmt.Errorf("%w: connector already registered", ErrValidation)
	ErrPrimaryTokenConnector   = fmt.Errorf("%w: primary token cannot be a connector", ErrValidation)
	ErrSameToken               = fmt.Errorf("%w: source and target token are the same", ErrValidation)
	ErrInvalidPayload          = fmt.Errorf("%w: invalid transfer payload", ErrValidation)
)

// Authorization
var (
	ErrNotOwner          = fmt.Errorf("%w: caller is not the owner", ErrAuthorization)
	ErrNotOwnerOrManager = fmt.Errorf("%w: caller is neither owner nor manager", ErrAuthorization)
	ErrNotPendingOwner   = fmt.Errorf("%w: caller is not the pending owner", ErrAuthorization)
	ErrNotPendingManager = fmt.Errorf("%w: caller is not the pending manager", ErrAuthorization)
	ErrNotNetwork        = fmt.Errorf("%w: sender is not the converter network", ErrAuthorization)
)

// State
var (
	ErrNotInstalled           = fmt.Errorf("%w: converter not installed", ErrState)
	ErrAlreadyInstalled       = fmt.Errorf("%w: converter already installed", ErrState)
	ErrInactive               = fmt.Errorf("%w: converter is not active", ErrState)
	ErrActive                 = fmt.Errorf("%w: converter is active", ErrState)
	ErrConversionsDisabled    = fmt.Errorf("%w: conversions are disabled", ErrState)
	ErrPurchasesDisabled      = fmt.Errorf("%w: connector purchases are disabled", ErrState)
	ErrRegistryUpdateDisabled = fmt.Errorf("%w: registry update is disabled", ErrState)
	ErrRegistryUnchanged      = fmt.Errorf("%w: registry is already up to date", ErrState)
	ErrConnectorReserveLocked = fmt.Errorf("%w: connector reserve is locked while inactive", ErrState)
	ErrInsufficientReserve    = fmt.Errorf("%w: insufficient connector reserve", ErrState)
	ErrDepositMissing         = fmt.Errorf("%w: deposited amount not held by converter", ErrState)
)

// formulaError classifies an error returned by the formula package.
func formulaError(err error) error {
	if errors.Is(err, formula.ErrInvalidInput) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return err
}
