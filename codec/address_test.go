// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

func TestAddress(t *testing.T) {
	require := require.New(t)
	typeID := byte(3)
	addrID := ids.GenerateTestID()

	addr := CreateAddress(typeID, addrID)
	require.Equal(typeID, addr.TypeID())
	require.False(addr.IsEmpty())
	addrStr, err := addr.MarshalText()
	require.NoError(err)

	var parsedAddr Address
	require.NoError(parsedAddr.UnmarshalText(addrStr))
	require.Equal(addr, parsedAddr)
}

func TestAddressJSON(t *testing.T) {
	require := require.New(t)
	addr := CreateAddress(0, ids.GenerateTestID())

	addrJSONBytes, err := json.Marshal(addr)
	require.NoError(err)

	var parsedAddr Address
	require.NoError(json.Unmarshal(addrJSONBytes, &parsedAddr))
	require.Equal(addr, parsedAddr)
}

func TestParseAddress(t *testing.T) {
	require := require.New(t)
	addr := CreateAddress(1, ids.GenerateTestID())

	parsed, err := ParseAddress(addr.String())
	require.NoError(err)
	require.Equal(addr, parsed)

	parsed, err = ParseAddress(addr.String()[2:])
	require.NoError(err)
	require.Equal(addr, parsed)

	_, err = ParseAddress("0x1234")
	require.ErrorIs(err, ErrInvalidAddress)

	_, err = ParseAddress("not hex")
	require.ErrorIs(err, ErrInvalidAddress)

	require.True(EmptyAddress.IsEmpty())
}
