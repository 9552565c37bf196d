// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrInvalidConfigFormat = errors.New("invalid config format")
	ErrInvalidPlan         = errors.New("invalid plan")
	ErrInvalidStep         = errors.New("invalid step")
	ErrInvalidAction       = errors.New("invalid action")
	ErrMissingParam        = errors.New("missing param")
	ErrInvalidParam        = errors.New("invalid param")
	ErrInvalidOperator     = errors.New("invalid operator")
	ErrAssertionFailed     = errors.New("assertion failed")
	ErrStepFailed          = errors.New("step failed")
	ErrDuplicateAlias      = errors.New("duplicate alias")
)
