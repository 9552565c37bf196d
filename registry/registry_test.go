// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/consts"
	"github.com/ava-labs/convertervm/state"
	"github.com/ava-labs/convertervm/storage"
)

type testEmitter struct {
	events []Event
}

func (e *testEmitter) Emit(_ context.Context, ev Event) error {
	e.events = append(e.events, ev)
	return nil
}

func newAddress(typeID uint8) codec.Address {
	return codec.CreateAddress(typeID, ids.GenerateTestID())
}

func TestRegistry(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	owner := newAddress(consts.AccountID)
	network := newAddress(consts.AccountID)
	emitter := &testEmitter{}
	r := New(newAddress(consts.RegistryID), state.NewSimpleMutable(memdb.New()), emitter, logging.NoLog{})

	_, err := r.GetAddress(ctx, consts.NetworkKey)
	require.ErrorIs(err, ErrNotInstalled)
	require.NoError(r.Install(ctx, owner))
	require.ErrorIs(r.Install(ctx, owner), ErrAlreadyInstalled)

	addr, err := r.GetAddress(ctx, consts.NetworkKey)
	require.NoError(err)
	require.True(addr.IsEmpty())

	require.ErrorIs(r.RegisterAddress(ctx, network, consts.NetworkKey, network), ErrNotOwner)
	require.NoError(r.RegisterAddress(ctx, owner, consts.NetworkKey, network))
	addr, err = r.GetAddress(ctx, consts.NetworkKey)
	require.NoError(err)
	require.Equal(network, addr)

	require.ErrorIs(r.UnregisterAddress(ctx, owner, consts.RegistryKey), ErrInvalidName)
	require.NoError(r.UnregisterAddress(ctx, owner, consts.NetworkKey))
	addr, err = r.GetAddress(ctx, consts.NetworkKey)
	require.NoError(err)
	require.True(addr.IsEmpty())

	require.Equal([]Event{
		&AddressUpdate{Name: consts.NetworkKey, Address: network},
		&AddressRemoval{Name: consts.NetworkKey},
	}, emitter.events)
}

func TestRegisterAddressValidation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		address codec.Address
		err     error
	}{
		{
			name:    "empty name",
			key:     "",
			address: newAddress(consts.AccountID),
			err:     ErrInvalidName,
		},
		{
			name:    "name too long",
			key:     strings.Repeat("a", storage.MaxRegistryKeySize+1),
			address: newAddress(consts.AccountID),
			err:     ErrInvalidName,
		},
		{
			name:    "empty address",
			key:     consts.NetworkKey,
			address: codec.EmptyAddress,
			err:     ErrInvalidAddress,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctx := context.Background()
			owner := newAddress(consts.AccountID)
			r := New(newAddress(consts.RegistryID), state.NewSimpleMutable(memdb.New()), &testEmitter{}, logging.NoLog{})
			require.NoError(r.Install(ctx, owner))

			require.ErrorIs(r.RegisterAddress(ctx, owner, tt.key, tt.address), tt.err)
		})
	}
}

func TestEventName(t *testing.T) {
	require := require.New(t)

	require.Equal("AddressUpdate", EventName(AddressUpdateID))
	require.Equal("Unknown", EventName(7))
}
