// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/consts"
	"github.com/ava-labs/convertervm/state"
)

func ContractKey(addr codec.Address) []byte {
	k := make([]byte, 2+codec.AddressLen)
	k[0] = HostPrefix
	k[1] = hostContractPrefix
	copy(k[2:], addr[:])
	return k
}

// ContractState returns the state of the contract at [addr]. Every key the
// contract writes is stored under its address.
func ContractState(mu state.Mutable, addr codec.Address) state.Mutable {
	return state.NewPrefixed(addr[:], mu)
}

// RegisterContract records that a contract exists at [addr].
func RegisterContract(ctx context.Context, mu state.Mutable, addr codec.Address) error {
	exists, err := ContractExists(ctx, mu, addr)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrContractExists, addr)
	}
	return mu.Insert(ctx, ContractKey(addr), []byte{addr.TypeID()})
}

func ContractExists(ctx context.Context, im state.Immutable, addr codec.Address) (bool, error) {
	_, err := im.GetValue(ctx, ContractKey(addr))
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func NonceKey() []byte {
	return []byte{HostPrefix, hostNoncePrefix}
}

// NextNonce returns the current deployment nonce and increments it.
func NextNonce(ctx context.Context, mu state.Mutable) (uint64, error) {
	var nonce uint64
	v, err := mu.GetValue(ctx, NonceKey())
	switch {
	case errors.Is(err, database.ErrNotFound):
	case err != nil:
		return 0, err
	case len(v) != consts.Uint64Len:
		return 0, fmt.Errorf("%w: nonce", ErrCorruptRecord)
	default:
		nonce = binary.BigEndian.Uint64(v)
	}
	next := make([]byte, consts.Uint64Len)
	binary.BigEndian.PutUint64(next, nonce+1)
	return nonce, mu.Insert(ctx, NonceKey(), next)
}
