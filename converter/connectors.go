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

func validWeight(weight uint32) bool {
	return weight > 0 && weight <= consts.MaxWeight
}

// totalWeight sums the weights of every registered connector except
// [skip].
func (c *Converter) totalWeight(ctx context.Context, skip codec.Address) (uint64, error) {
	tokens, err := storage.GetConnectorTokens(ctx, c.mu)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, token := range tokens {
		if token == skip {
			continue
		}
		connector, err := storage.GetConnector(ctx, c.mu, token)
		if err != nil {
			return 0, err
		}
		total += uint64(connector.Weight)
	}
	return total, nil
}

// AddConnector registers [token] as a reserve with [weight] parts per
// million. A token can only ever be registered once.
func (c *Converter) AddConnector(
	ctx context.Context,
	caller codec.Address,
	token codec.Address,
	weight uint32,
	enableVirtualBalance bool,
) error {
	if _, err := c.requireOwner(ctx, caller); err != nil {
		return err
	}
	cfg, err := c.Config(ctx)
	if err != nil {
		return err
	}
	return c.addConnector(ctx, cfg, token, weight, enableVirtualBalance)
}

func (c *Converter) addConnector(
	ctx context.Context,
	cfg *storage.Config,
	token codec.Address,
	weight uint32,
	enableVirtualBalance bool,
) error {
	if token.IsEmpty() || token == c.address {
		return ErrInvalidAddress
	}
	if token == cfg.Token {
		return ErrPrimaryTokenConnector
	}
	if !validWeight(weight) {
		return ErrInvalidWeight
	}
	connector, err := storage.GetConnector(ctx, c.mu, token)
	if err != nil {
		return err
	}
	if connector.IsSet {
		return ErrConnectorAlreadySet
	}
	total, err := c.totalWeight(ctx, codec.EmptyAddress)
	if err != nil {
		return err
	}
	if total+uint64(weight) > uint64(consts.MaxWeight) {
		return ErrTotalWeightExceeded
	}

	connector = &storage.Connector{
		VirtualBalance:          new(uint256.Int),
		Weight:                  weight,
		IsVirtualBalanceEnabled: enableVirtualBalance,
		IsPurchaseEnabled:       true,
		IsSet:                   true,
	}
	if err := storage.SetConnector(ctx, c.mu, token, connector); err != nil {
		return err
	}
	if err := storage.AppendConnectorToken(ctx, c.mu, token); err != nil {
		return err
	}
	c.log.Debug("added connector",
		zap.Stringer("converter", c.address),
		zap.Stringer("token", token),
		zap.Uint32("weight", weight),
	)
	return c.emitConnectorUpdate(ctx, token, connector)
}

// UpdateConnector changes the weight and virtual balance settings of a
// registered connector.
func (c *Converter) UpdateConnector(
	ctx context.Context,
	caller codec.Address,
	token codec.Address,
	weight uint32,
	enableVirtualBalance bool,
	virtualBalance *uint256.Int,
) error {
	if _, err := c.requireOwner(ctx, caller); err != nil {
		return err
	}
	if !validWeight(weight) {
		return ErrInvalidWeight
	}
	connector, err := c.requireConnector(ctx, token)
	if err != nil {
		return err
	}
	total, err := c.totalWeight(ctx, token)
	if err != nil {
		return err
	}
	if total+uint64(weight) > uint64(consts.MaxWeight) {
		return ErrTotalWeightExceeded
	}

	connector.Weight = weight
	connector.IsVirtualBalanceEnabled = enableVirtualBalance
	connector.VirtualBalance = new(uint256.Int)
	if virtualBalance != nil {
		connector.VirtualBalance.Set(virtualBalance)
	}
	if err := storage.SetConnector(ctx, c.mu, token, connector); err != nil {
		return err
	}
	return c.emitConnectorUpdate(ctx, token, connector)
}

// DisableConnectorPurchases stops (or resumes) buying the primary token
// with [token]. Sales into the connector are unaffected.
func (c *Converter) DisableConnectorPurchases(ctx context.Context, caller codec.Address, token codec.Address, disable bool) error {
	if _, err := c.requireOwner(ctx, caller); err != nil {
		return err
	}
	connector, err := c.requireConnector(ctx, token)
	if err != nil {
		return err
	}
	connector.IsPurchaseEnabled = !disable
	if err := storage.SetConnector(ctx, c.mu, token, connector); err != nil {
		return err
	}
	return c.emitConnectorUpdate(ctx, token, connector)
}

func (c *Converter) emitConnectorUpdate(ctx context.Context, token codec.Address, connector *storage.Connector) error {
	return c.emit(ctx, &ConnectorUpdate{
		Token:                   token,
		Weight:                  connector.Weight,
		IsVirtualBalanceEnabled: connector.IsVirtualBalanceEnabled,
		VirtualBalance:          connector.VirtualBalance.Clone(),
		IsPurchaseEnabled:       connector.IsPurchaseEnabled,
	})
}

// GetConnector returns the stored configuration of [token]. Unregistered
// tokens return a zero record with IsSet false.
func (c *Converter) GetConnector(ctx context.Context, token codec.Address) (*storage.Connector, error) {
	return storage.GetConnector(ctx, c.mu, token)
}

func (c *Converter) requireConnector(ctx context.Context, token codec.Address) (*storage.Connector, error) {
	connector, err := storage.GetConnector(ctx, c.mu, token)
	if err != nil {
		return nil, err
	}
	if !connector.IsSet {
		return nil, fmt.Errorf("%w: %s", ErrConnectorNotSet, token)
	}
	return connector, nil
}

// GetConnectorBalance returns the virtual balance of [token] if enabled
// and otherwise the amount of [token] held by the converter.
func (c *Converter) GetConnectorBalance(ctx context.Context, token codec.Address) (*uint256.Int, error) {
	connector, err := c.requireConnector(ctx, token)
	if err != nil {
		return nil, err
	}
	return c.connectorBalance(ctx, token, connector)
}

func (c *Converter) connectorBalance(ctx context.Context, token codec.Address, connector *storage.Connector) (*uint256.Int, error) {
	if connector.IsVirtualBalanceEnabled {
		return connector.VirtualBalance.Clone(), nil
	}
	balance, err := c.backend.Token(token).BalanceOf(ctx, c.address)
	if err != nil {
		return nil, fmt.Errorf("unable to read balance of %s: %w", token, err)
	}
	return balance, nil
}

// ConnectorTokens returns the connector tokens in registration order.
func (c *Converter) ConnectorTokens(ctx context.Context) ([]codec.Address, error) {
	return storage.GetConnectorTokens(ctx, c.mu)
}

func (c *Converter) ConnectorTokenCount(ctx context.Context) (uint16, error) {
	return storage.GetConnectorTokenCount(ctx, c.mu)
}
