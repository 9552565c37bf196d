// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrInsufficientLength = errors.New("insufficient length")
	ErrInvalidSize        = errors.New("invalid size")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrTrailingBytes      = errors.New("trailing bytes")
	ErrAmountTooLarge     = errors.New("amount exceeds 256 bits")
)
