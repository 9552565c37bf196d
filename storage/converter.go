// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/consts"
	"github.com/ava-labs/convertervm/state"
)

const (
	configSize    = 3*codec.AddressLen + 2*consts.Uint32Len + 2*consts.BoolLen
	ownershipSize = 4 * codec.AddressLen
)

// Config is the converter singleton.
type Config struct {
	Token               codec.Address
	Registry            codec.Address
	PrevRegistry        codec.Address
	MaxConversionFee    uint32
	ConversionFee       uint32
	ConversionsEnabled  bool
	AllowRegistryUpdate bool
}

func ConfigKey() []byte {
	return []byte{configPrefix}
}

func SetConfig(ctx context.Context, mu state.Mutable, c *Config) error {
	p := codec.NewWriter(configSize, configSize)
	p.PackAddress(c.Token)
	p.PackAddress(c.Registry)
	p.PackAddress(c.PrevRegistry)
	p.PackUint32(c.MaxConversionFee)
	p.PackUint32(c.ConversionFee)
	p.PackBool(c.ConversionsEnabled)
	p.PackBool(c.AllowRegistryUpdate)
	if err := p.Err(); err != nil {
		return err
	}
	return mu.Insert(ctx, ConfigKey(), p.Bytes())
}

// GetConfig returns [ErrNotInstalled] if the converter was never installed.
func GetConfig(ctx context.Context, im state.Immutable) (*Config, error) {
	v, err := im.GetValue(ctx, ConfigKey())
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNotInstalled
	}
	if err != nil {
		return nil, err
	}
	p := codec.NewReader(v, configSize)
	c := &Config{}
	p.UnpackAddress(&c.Token)
	p.UnpackAddress(&c.Registry)
	p.UnpackAddress(&c.PrevRegistry)
	c.MaxConversionFee = p.UnpackUint32()
	c.ConversionFee = p.UnpackUint32()
	c.ConversionsEnabled = p.UnpackBool()
	c.AllowRegistryUpdate = p.UnpackBool()
	if err := p.Done(); err != nil {
		return nil, fmt.Errorf("%w: config: %w", ErrCorruptRecord, err)
	}
	return c, nil
}

// Ownership tracks a contract's owner and manager together with the
// pending parties of two-step transfers. Empty addresses mean "none".
type Ownership struct {
	Owner      codec.Address
	NewOwner   codec.Address
	Manager    codec.Address
	NewManager codec.Address
}

func OwnershipKey() []byte {
	return []byte{ownershipPrefix}
}

func SetOwnership(ctx context.Context, mu state.Mutable, o *Ownership) error {
	p := codec.NewWriter(ownershipSize, ownershipSize)
	p.PackAddress(o.Owner)
	p.PackAddress(o.NewOwner)
	p.PackAddress(o.Manager)
	p.PackAddress(o.NewManager)
	if err := p.Err(); err != nil {
		return err
	}
	return mu.Insert(ctx, OwnershipKey(), p.Bytes())
}

func GetOwnership(ctx context.Context, im state.Immutable) (*Ownership, error) {
	v, err := im.GetValue(ctx, OwnershipKey())
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNotInstalled
	}
	if err != nil {
		return nil, err
	}
	p := codec.NewReader(v, ownershipSize)
	o := &Ownership{}
	p.UnpackAddress(&o.Owner)
	p.UnpackAddress(&o.NewOwner)
	p.UnpackAddress(&o.Manager)
	p.UnpackAddress(&o.NewManager)
	if err := p.Done(); err != nil {
		return nil, fmt.Errorf("%w: ownership: %w", ErrCorruptRecord, err)
	}
	return o, nil
}
