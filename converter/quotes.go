// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package converter

import (
	"context"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/formula"
	"github.com/ava-labs/convertervm/storage"
)

// Quote is the result of a conversion: the net amount paid out and the fee
// already deducted from it.
type Quote struct {
	Amount *uint256.Int `json:"amount"`
	Fee    *uint256.Int `json:"fee"`
}

// newQuote deducts the conversion fee, scaled by the maximum fee fixed at
// install.
func newQuote(raw *uint256.Int, cfg *storage.Config, magnitude uint8) (*Quote, error) {
	net, deducted, err := formula.FinalAmount(raw, cfg.ConversionFee, cfg.MaxConversionFee, magnitude)
	if err != nil {
		return nil, formulaError(err)
	}
	return &Quote{Amount: net, Fee: deducted}, nil
}

// GetPurchaseReturn quotes buying the primary token with [amount] of
// [connectorToken].
func (c *Converter) GetPurchaseReturn(ctx context.Context, connectorToken codec.Address, amount *uint256.Int) (*Quote, error) {
	cfg, err := c.Config(ctx)
	if err != nil {
		return nil, err
	}
	connector, err := c.requireConnector(ctx, connectorToken)
	if err != nil {
		return nil, err
	}
	if !connector.IsPurchaseEnabled {
		return nil, ErrPurchasesDisabled
	}
	balance, err := c.connectorBalance(ctx, connectorToken, connector)
	if err != nil {
		return nil, err
	}
	return c.purchaseQuote(ctx, cfg, connector, balance, amount)
}

func (c *Converter) purchaseQuote(
	ctx context.Context,
	cfg *storage.Config,
	connector *storage.Connector,
	balance *uint256.Int,
	amount *uint256.Int,
) (*Quote, error) {
	supply, err := c.totalSupply(ctx, cfg)
	if err != nil {
		return nil, err
	}
	raw, err := formula.CalculatePurchaseReturn(supply, balance, connector.Weight, amount)
	if err != nil {
		return nil, formulaError(err)
	}
	return newQuote(raw, cfg, formula.SingleHopFeeMagnitude)
}

// GetSaleReturn quotes selling [amount] of the primary token for
// [connectorToken].
func (c *Converter) GetSaleReturn(ctx context.Context, connectorToken codec.Address, amount *uint256.Int) (*Quote, error) {
	cfg, err := c.Config(ctx)
	if err != nil {
		return nil, err
	}
	connector, err := c.requireConnector(ctx, connectorToken)
	if err != nil {
		return nil, err
	}
	balance, err := c.connectorBalance(ctx, connectorToken, connector)
	if err != nil {
		return nil, err
	}
	supply, err := c.totalSupply(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return saleQuote(cfg, connector, supply, balance, amount)
}

func saleQuote(
	cfg *storage.Config,
	connector *storage.Connector,
	supply *uint256.Int,
	balance *uint256.Int,
	amount *uint256.Int,
) (*Quote, error) {
	raw, err := formula.CalculateSaleReturn(supply, balance, connector.Weight, amount)
	if err != nil {
		return nil, formulaError(err)
	}
	return newQuote(raw, cfg, formula.SingleHopFeeMagnitude)
}

// GetCrossConnectorReturn quotes converting [amount] of [fromToken] into
// [toToken] directly.
func (c *Converter) GetCrossConnectorReturn(
	ctx context.Context,
	fromToken codec.Address,
	toToken codec.Address,
	amount *uint256.Int,
) (*Quote, error) {
	if fromToken == toToken {
		return nil, ErrSameToken
	}
	cfg, err := c.Config(ctx)
	if err != nil {
		return nil, err
	}
	from, err := c.requireConnector(ctx, fromToken)
	if err != nil {
		return nil, err
	}
	to, err := c.requireConnector(ctx, toToken)
	if err != nil {
		return nil, err
	}
	if !to.IsPurchaseEnabled {
		return nil, ErrPurchasesDisabled
	}
	fromBalance, err := c.connectorBalance(ctx, fromToken, from)
	if err != nil {
		return nil, err
	}
	toBalance, err := c.connectorBalance(ctx, toToken, to)
	if err != nil {
		return nil, err
	}
	return crossQuote(cfg, from, fromBalance, to, toBalance, amount)
}

func crossQuote(
	cfg *storage.Config,
	from *storage.Connector,
	fromBalance *uint256.Int,
	to *storage.Connector,
	toBalance *uint256.Int,
	amount *uint256.Int,
) (*Quote, error) {
	raw, err := formula.CalculateCrossConnectorReturn(fromBalance, from.Weight, toBalance, to.Weight, amount)
	if err != nil {
		return nil, formulaError(err)
	}
	return newQuote(raw, cfg, formula.CrossConnectorFeeMagnitude)
}

// GetReturn quotes any supported conversion, selecting the purchase, sale
// or cross connector formula from the token pair.
func (c *Converter) GetReturn(
	ctx context.Context,
	fromToken codec.Address,
	toToken codec.Address,
	amount *uint256.Int,
) (*Quote, error) {
	if fromToken == toToken {
		return nil, ErrSameToken
	}
	cfg, err := c.Config(ctx)
	if err != nil {
		return nil, err
	}
	switch {
	case toToken == cfg.Token:
		return c.GetPurchaseReturn(ctx, fromToken, amount)
	case fromToken == cfg.Token:
		return c.GetSaleReturn(ctx, toToken, amount)
	default:
		return c.GetCrossConnectorReturn(ctx, fromToken, toToken, amount)
	}
}

func (c *Converter) totalSupply(ctx context.Context, cfg *storage.Config) (*uint256.Int, error) {
	supply, err := c.backend.SmartToken(cfg.Token).TotalSupply(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to read supply of %s: %w", cfg.Token, err)
	}
	return supply, nil
}
