// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/state"
)

func RegistryEntryKey(name string) []byte {
	k := make([]byte, 1+len(name))
	k[0] = registryEntryPrefix
	copy(k[1:], name)
	return k
}

func SetRegistryEntry(ctx context.Context, mu state.Mutable, name string, addr codec.Address) error {
	if len(name) > MaxRegistryKeySize {
		return ErrStringTooLong
	}
	return mu.Insert(ctx, RegistryEntryKey(name), addr[:])
}

func RemoveRegistryEntry(ctx context.Context, mu state.Mutable, name string) error {
	return mu.Remove(ctx, RegistryEntryKey(name))
}

// GetRegistryEntry returns the empty address for unknown names.
func GetRegistryEntry(ctx context.Context, im state.Immutable, name string) (codec.Address, error) {
	v, err := im.GetValue(ctx, RegistryEntryKey(name))
	if errors.Is(err, database.ErrNotFound) {
		return codec.EmptyAddress, nil
	}
	if err != nil {
		return codec.EmptyAddress, err
	}
	if len(v) != codec.AddressLen {
		return codec.EmptyAddress, fmt.Errorf("%w: registry entry %q", ErrCorruptRecord, name)
	}
	return codec.Address(v), nil
}
