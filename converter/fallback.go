// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package converter

import (
	"context"
	"fmt"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/consts"
	"github.com/ava-labs/convertervm/storage"
)

// TokenFallback is invoked by [token] after [from] transferred [value] of
// it to the converter. Empty [data] deposits into a connector reserve;
// otherwise [data] must request a conversion.
func (c *Converter) TokenFallback(
	ctx context.Context,
	token codec.Address,
	from codec.Address,
	value *uint256.Int,
	data []byte,
) error {
	if value == nil || value.IsZero() {
		return ErrInvalidAmount
	}
	payload, err := ParsePayload(data)
	if err != nil {
		return err
	}
	switch p := payload.(type) {
	case DepositPayload:
		return c.deposit(ctx, token, from, value)
	case *ConvertPayload:
		cfg, err := c.Config(ctx)
		if err != nil {
			return err
		}
		network, err := c.backend.Registry(cfg.Registry).GetAddress(ctx, consts.NetworkKey)
		if err != nil {
			return fmt.Errorf("unable to resolve %s: %w", consts.NetworkKey, err)
		}
		if network.IsEmpty() || from != network {
			return ErrNotNetwork
		}
		_, err = c.convert(ctx, from, token, p.ToToken, value, p.MinReturn)
		return err
	default:
		return ErrInvalidPayload
	}
}

// deposit funds the reserve of [token]. Only the owner may deposit, and
// only before the converter is activated.
func (c *Converter) deposit(ctx context.Context, token codec.Address, from codec.Address, value *uint256.Int) error {
	if _, err := c.requireOwner(ctx, from); err != nil {
		return err
	}
	connector, err := c.requireConnector(ctx, token)
	if err != nil {
		return err
	}
	cfg, err := c.Config(ctx)
	if err != nil {
		return err
	}
	active, err := c.isActive(ctx, cfg)
	if err != nil {
		return err
	}
	if active {
		return ErrActive
	}
	if connector.IsVirtualBalanceEnabled {
		if err := creditVirtualBalance(connector, value); err != nil {
			return err
		}
		if err := storage.SetConnector(ctx, c.mu, token, connector); err != nil {
			return err
		}
	}
	c.log.Debug("deposit",
		zap.Stringer("connector", token),
		zap.Stringer("amount", value),
	)
	return nil
}
