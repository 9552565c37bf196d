// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formula

import (
	"errors"
	"fmt"
)

var (
	// ErrArithmeticRange is returned whenever an intermediate value does not
	// fit the working width or the precision table. Results are never clamped.
	ErrArithmeticRange = errors.New("arithmetic range exceeded")

	// ErrInvalidInput is wrapped by every input validation failure.
	ErrInvalidInput = errors.New("invalid formula input")

	ErrInvalidSupply         = fmt.Errorf("%w: supply must be positive", ErrInvalidInput)
	ErrInvalidReserveBalance = fmt.Errorf("%w: reserve balance must be positive", ErrInvalidInput)
	ErrInvalidWeight         = fmt.Errorf("%w: weight must be in (0, %d]", ErrInvalidInput, MaxWeight)
	ErrAmountExceedsSupply   = fmt.Errorf("%w: amount exceeds supply", ErrInvalidInput)
	ErrInvalidFee            = fmt.Errorf("%w: fee exceeds resolution", ErrInvalidInput)
	ErrZeroDenominator       = fmt.Errorf("%w: zero denominator", ErrArithmeticRange)
)
