// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE} -destination=mock_dependencies.go . Token,SmartToken,Registry,Backend,Emitter

package converter

import (
	"context"

	"github.com/holiman/uint256"

	"github.com/ava-labs/convertervm/codec"
)

// Token is a fungible token as seen by the converter. Every call is made
// with the converter as the caller.
type Token interface {
	BalanceOf(ctx context.Context, owner codec.Address) (*uint256.Int, error)
	Transfer(ctx context.Context, to codec.Address, amount *uint256.Int, data []byte) error
}

// SmartToken is the primary token. The converter is Active once it owns
// the token and can therefore issue and destroy it.
type SmartToken interface {
	Token

	TotalSupply(ctx context.Context) (*uint256.Int, error)
	Issue(ctx context.Context, to codec.Address, amount *uint256.Int) error
	Destroy(ctx context.Context, from codec.Address, amount *uint256.Int) error
	Owner(ctx context.Context) (codec.Address, error)
	TransferOwnership(ctx context.Context, newOwner codec.Address) error
	AcceptOwnership(ctx context.Context) error
}

// Registry resolves well-known names to addresses. Unknown names resolve
// to the empty address.
type Registry interface {
	GetAddress(ctx context.Context, name string) (codec.Address, error)
}

// Backend hands out collaborator handles bound to the converter.
type Backend interface {
	Token(addr codec.Address) Token
	SmartToken(addr codec.Address) SmartToken
	Registry(addr codec.Address) Registry
}

// Emitter receives every event the converter produces, in order.
type Emitter interface {
	Emit(ctx context.Context, e Event) error
}
