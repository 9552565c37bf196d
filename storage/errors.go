// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrNotInstalled      = errors.New("contract not installed")
	ErrCorruptRecord     = errors.New("corrupt record")
	ErrTooManyConnectors = errors.New("too many connectors")
	ErrConnectorIndex    = errors.New("connector index out of range")
	ErrStringTooLong     = errors.New("string too long")
	ErrContractExists    = errors.New("contract already exists")
	ErrUnknownContract   = errors.New("unknown contract")
)
