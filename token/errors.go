// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import "errors"

var (
	ErrNotInstalled        = errors.New("token not installed")
	ErrAlreadyInstalled    = errors.New("token already installed")
	ErrNameEmpty           = errors.New("token name is empty")
	ErrSymbolEmpty         = errors.New("token symbol is empty")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInsufficientBalance = errors.New("insufficient token balance")
	ErrSupplyOverflow      = errors.New("total supply overflows")
	ErrNotOwner            = errors.New("actor is not token owner")
	ErrNotPendingOwner     = errors.New("actor is not pending token owner")
)
