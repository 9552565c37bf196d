// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/holiman/uint256"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/consts"
	"github.com/ava-labs/convertervm/state"
)

const connectorSize = consts.Uint256Len + consts.Uint32Len + 3*consts.BoolLen

// Connector is the stored configuration of one reserve token. The zero
// value is what an unregistered token reads as.
type Connector struct {
	VirtualBalance          *uint256.Int
	Weight                  uint32
	IsVirtualBalanceEnabled bool
	IsPurchaseEnabled       bool
	IsSet                   bool
}

func ConnectorKey(token codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen)
	k[0] = connectorPrefix
	copy(k[1:], token[:])
	return k
}

func SetConnector(ctx context.Context, mu state.Mutable, token codec.Address, c *Connector) error {
	p := codec.NewWriter(connectorSize, connectorSize)
	p.PackUint256(c.VirtualBalance)
	p.PackUint32(c.Weight)
	p.PackBool(c.IsVirtualBalanceEnabled)
	p.PackBool(c.IsPurchaseEnabled)
	p.PackBool(c.IsSet)
	if err := p.Err(); err != nil {
		return err
	}
	return mu.Insert(ctx, ConnectorKey(token), p.Bytes())
}

// GetConnector never reports a missing connector: an unregistered token
// returns the zero record with IsSet false.
func GetConnector(ctx context.Context, im state.Immutable, token codec.Address) (*Connector, error) {
	v, err := im.GetValue(ctx, ConnectorKey(token))
	if errors.Is(err, database.ErrNotFound) {
		return &Connector{VirtualBalance: new(uint256.Int)}, nil
	}
	if err != nil {
		return nil, err
	}
	p := codec.NewReader(v, connectorSize)
	c := &Connector{}
	c.VirtualBalance = p.UnpackUint256()
	c.Weight = p.UnpackUint32()
	c.IsVirtualBalanceEnabled = p.UnpackBool()
	c.IsPurchaseEnabled = p.UnpackBool()
	c.IsSet = p.UnpackBool()
	if err := p.Done(); err != nil {
		return nil, fmt.Errorf("%w: connector %s: %w", ErrCorruptRecord, token, err)
	}
	return c, nil
}

func ConnectorCountKey() []byte {
	return []byte{connectorCountPrefix}
}

func ConnectorIndexKey(i uint16) []byte {
	k := make([]byte, 1+consts.Uint16Len)
	k[0] = connectorIndexPrefix
	binary.BigEndian.PutUint16(k[1:], i)
	return k
}

func GetConnectorTokenCount(ctx context.Context, im state.Immutable) (uint16, error) {
	v, err := im.GetValue(ctx, ConnectorCountKey())
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(v) != consts.Uint16Len {
		return 0, fmt.Errorf("%w: connector count", ErrCorruptRecord)
	}
	return binary.BigEndian.Uint16(v), nil
}

func GetConnectorToken(ctx context.Context, im state.Immutable, i uint16) (codec.Address, error) {
	count, err := GetConnectorTokenCount(ctx, im)
	if err != nil {
		return codec.EmptyAddress, err
	}
	if i >= count {
		return codec.EmptyAddress, fmt.Errorf("%w: %d >= %d", ErrConnectorIndex, i, count)
	}
	v, err := im.GetValue(ctx, ConnectorIndexKey(i))
	if err != nil {
		return codec.EmptyAddress, err
	}
	if len(v) != codec.AddressLen {
		return codec.EmptyAddress, fmt.Errorf("%w: connector index %d", ErrCorruptRecord, i)
	}
	return codec.Address(v), nil
}

// GetConnectorTokens returns the connector tokens in registration order.
func GetConnectorTokens(ctx context.Context, im state.Immutable) ([]codec.Address, error) {
	count, err := GetConnectorTokenCount(ctx, im)
	if err != nil {
		return nil, err
	}
	tokens := make([]codec.Address, 0, count)
	for i := uint16(0); i < count; i++ {
		token, err := GetConnectorToken(ctx, im, i)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// AppendConnectorToken adds [token] to the end of the index.
func AppendConnectorToken(ctx context.Context, mu state.Mutable, token codec.Address) error {
	count, err := GetConnectorTokenCount(ctx, mu)
	if err != nil {
		return err
	}
	if count >= MaxConnectors {
		return ErrTooManyConnectors
	}
	if err := mu.Insert(ctx, ConnectorIndexKey(count), token[:]); err != nil {
		return err
	}
	v := make([]byte, consts.Uint16Len)
	binary.BigEndian.PutUint16(v, count+1)
	return mu.Insert(ctx, ConnectorCountKey(), v)
}
