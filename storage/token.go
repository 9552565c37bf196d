// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/holiman/uint256"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/consts"
	"github.com/ava-labs/convertervm/state"
)

const maxTokenInfoSize = consts.Uint16Len + MaxTokenNameSize +
	consts.Uint16Len + MaxTokenSymbolSize +
	consts.ByteLen + consts.Uint256Len + 2*codec.AddressLen

type TokenInfo struct {
	Name        string
	Symbol      string
	Decimals    uint8
	TotalSupply *uint256.Int
	Owner       codec.Address
	NewOwner    codec.Address
}

func TokenInfoKey() []byte {
	return []byte{tokenInfoPrefix}
}

func SetTokenInfo(ctx context.Context, mu state.Mutable, t *TokenInfo) error {
	if len(t.Name) > MaxTokenNameSize || len(t.Symbol) > MaxTokenSymbolSize {
		return ErrStringTooLong
	}
	p := codec.NewWriter(maxTokenInfoSize, maxTokenInfoSize)
	p.PackString(t.Name)
	p.PackString(t.Symbol)
	p.PackByte(t.Decimals)
	p.PackUint256(t.TotalSupply)
	p.PackAddress(t.Owner)
	p.PackAddress(t.NewOwner)
	if err := p.Err(); err != nil {
		return err
	}
	return mu.Insert(ctx, TokenInfoKey(), p.Bytes())
}

func GetTokenInfo(ctx context.Context, im state.Immutable) (*TokenInfo, error) {
	v, err := im.GetValue(ctx, TokenInfoKey())
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNotInstalled
	}
	if err != nil {
		return nil, err
	}
	p := codec.NewReader(v, maxTokenInfoSize)
	t := &TokenInfo{}
	t.Name = p.UnpackString()
	t.Symbol = p.UnpackString()
	t.Decimals = p.UnpackByte()
	t.TotalSupply = p.UnpackUint256()
	p.UnpackAddress(&t.Owner)
	p.UnpackAddress(&t.NewOwner)
	if err := p.Done(); err != nil {
		return nil, fmt.Errorf("%w: token info: %w", ErrCorruptRecord, err)
	}
	return t, nil
}

func BalanceKey(owner codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen)
	k[0] = balancePrefix
	copy(k[1:], owner[:])
	return k
}

// GetBalance returns zero for accounts that never held the token.
func GetBalance(ctx context.Context, im state.Immutable, owner codec.Address) (*uint256.Int, error) {
	v, err := im.GetValue(ctx, BalanceKey(owner))
	if errors.Is(err, database.ErrNotFound) {
		return new(uint256.Int), nil
	}
	if err != nil {
		return nil, err
	}
	if len(v) != consts.Uint256Len {
		return nil, fmt.Errorf("%w: balance of %s", ErrCorruptRecord, owner)
	}
	return new(uint256.Int).SetBytes(v), nil
}

// SetBalance removes the key for a zero balance.
func SetBalance(ctx context.Context, mu state.Mutable, owner codec.Address, balance *uint256.Int) error {
	if balance.IsZero() {
		return mu.Remove(ctx, BalanceKey(owner))
	}
	v := balance.Bytes32()
	return mu.Insert(ctx, BalanceKey(owner), v[:])
}
