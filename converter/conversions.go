// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package converter

import (
	"context"
	"fmt"

	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/storage"
)

// convert routes a conversion of [amount] [fromToken], already transferred
// to the converter, into [toToken] for [trader].
func (c *Converter) convert(
	ctx context.Context,
	trader codec.Address,
	fromToken codec.Address,
	toToken codec.Address,
	amount *uint256.Int,
	minReturn *uint256.Int,
) (*Quote, error) {
	if fromToken == toToken {
		return nil, ErrSameToken
	}
	cfg, err := c.Config(ctx)
	if err != nil {
		return nil, err
	}
	switch {
	case fromToken == cfg.Token:
		return c.sell(ctx, cfg, trader, toToken, amount, minReturn)
	case toToken == cfg.Token:
		return c.buy(ctx, cfg, trader, fromToken, amount, minReturn)
	default:
		return c.convertCrossConnector(ctx, cfg, trader, fromToken, toToken, amount, minReturn)
	}
}

func checkAmounts(amount, minReturn *uint256.Int) error {
	if amount == nil || amount.IsZero() {
		return ErrInvalidAmount
	}
	if minReturn == nil || minReturn.IsZero() {
		return ErrInvalidMinReturn
	}
	return nil
}

func (c *Converter) checkConvertible(ctx context.Context, cfg *storage.Config) error {
	if !cfg.ConversionsEnabled {
		return ErrConversionsDisabled
	}
	return c.requireActive(ctx, cfg)
}

func checkSlippage(q *Quote, minReturn *uint256.Int) error {
	if q.Amount.IsZero() || q.Amount.Lt(minReturn) {
		return fmt.Errorf("%w: return %s below minimum %s", ErrSlippage, q.Amount, minReturn)
	}
	return nil
}

// creditVirtualBalance adds [amount] to the virtual balance of [connector].
func creditVirtualBalance(connector *storage.Connector, amount *uint256.Int) error {
	sum, overflow := new(uint256.Int).AddOverflow(connector.VirtualBalance, amount)
	if overflow {
		return fmt.Errorf("%w: virtual balance %s plus %s", ErrArithmeticRange, connector.VirtualBalance, amount)
	}
	connector.VirtualBalance = sum
	return nil
}

// depositedBalance returns the connector balance as it was before the
// trader's deposit of [amount] arrived.
func (c *Converter) depositedBalance(
	ctx context.Context,
	token codec.Address,
	connector *storage.Connector,
	amount *uint256.Int,
) (*uint256.Int, error) {
	balance, err := c.connectorBalance(ctx, token, connector)
	if err != nil {
		return nil, err
	}
	if connector.IsVirtualBalanceEnabled {
		return balance, nil
	}
	if balance.Lt(amount) {
		return nil, ErrDepositMissing
	}
	return new(uint256.Int).Sub(balance, amount), nil
}

// buy issues primary tokens to [trader] for [amount] of [connectorToken].
func (c *Converter) buy(
	ctx context.Context,
	cfg *storage.Config,
	trader codec.Address,
	connectorToken codec.Address,
	amount *uint256.Int,
	minReturn *uint256.Int,
) (*Quote, error) {
	if err := checkAmounts(amount, minReturn); err != nil {
		return nil, err
	}
	connector, err := c.requireConnector(ctx, connectorToken)
	if err != nil {
		return nil, err
	}
	if !connector.IsPurchaseEnabled {
		return nil, ErrPurchasesDisabled
	}
	if err := c.checkConvertible(ctx, cfg); err != nil {
		return nil, err
	}

	balance, err := c.depositedBalance(ctx, connectorToken, connector, amount)
	if err != nil {
		return nil, err
	}
	q, err := c.purchaseQuote(ctx, cfg, connector, balance, amount)
	if err != nil {
		return nil, err
	}
	if err := checkSlippage(q, minReturn); err != nil {
		return nil, err
	}

	if connector.IsVirtualBalanceEnabled {
		if err := creditVirtualBalance(connector, amount); err != nil {
			return nil, err
		}
		if err := storage.SetConnector(ctx, c.mu, connectorToken, connector); err != nil {
			return nil, err
		}
	}
	if err := c.backend.SmartToken(cfg.Token).Issue(ctx, trader, q.Amount); err != nil {
		return nil, fmt.Errorf("unable to issue %s: %w", cfg.Token, err)
	}
	c.log.Debug("buy",
		zap.Stringer("trader", trader),
		zap.Stringer("connector", connectorToken),
		zap.Stringer("amountIn", amount),
		zap.Stringer("amountOut", q.Amount),
	)
	if err := c.emit(ctx, &Conversion{
		FromToken: connectorToken,
		ToToken:   cfg.Token,
		Trader:    trader,
		AmountIn:  amount.Clone(),
		AmountOut: q.Amount.Clone(),
		Fee:       q.Fee.Clone(),
	}); err != nil {
		return nil, err
	}
	return q, c.emitPriceData(ctx, cfg, connectorToken, connector)
}

// sell destroys [amount] primary tokens held by the converter and pays
// [trader] in [connectorToken].
func (c *Converter) sell(
	ctx context.Context,
	cfg *storage.Config,
	trader codec.Address,
	connectorToken codec.Address,
	amount *uint256.Int,
	minReturn *uint256.Int,
) (*Quote, error) {
	if err := checkAmounts(amount, minReturn); err != nil {
		return nil, err
	}
	connector, err := c.requireConnector(ctx, connectorToken)
	if err != nil {
		return nil, err
	}
	if err := c.checkConvertible(ctx, cfg); err != nil {
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
	q, err := saleQuote(cfg, connector, supply, balance, amount)
	if err != nil {
		return nil, err
	}
	if err := checkSlippage(q, minReturn); err != nil {
		return nil, err
	}
	// Only selling the whole supply may drain the reserve.
	if q.Amount.Gt(balance) || (q.Amount.Eq(balance) && !amount.Eq(supply)) {
		return nil, ErrInsufficientReserve
	}

	if connector.IsVirtualBalanceEnabled {
		connector.VirtualBalance.Sub(connector.VirtualBalance, q.Amount)
		if err := storage.SetConnector(ctx, c.mu, connectorToken, connector); err != nil {
			return nil, err
		}
	}
	if err := c.backend.SmartToken(cfg.Token).Destroy(ctx, c.address, amount); err != nil {
		return nil, fmt.Errorf("unable to destroy %s: %w", cfg.Token, err)
	}
	if err := c.backend.Token(connectorToken).Transfer(ctx, trader, q.Amount, nil); err != nil {
		return nil, fmt.Errorf("unable to transfer %s: %w", connectorToken, err)
	}
	c.log.Debug("sell",
		zap.Stringer("trader", trader),
		zap.Stringer("connector", connectorToken),
		zap.Stringer("amountIn", amount),
		zap.Stringer("amountOut", q.Amount),
	)
	if err := c.emit(ctx, &Conversion{
		FromToken: cfg.Token,
		ToToken:   connectorToken,
		Trader:    trader,
		AmountIn:  amount.Clone(),
		AmountOut: q.Amount.Clone(),
		Fee:       q.Fee.Clone(),
	}); err != nil {
		return nil, err
	}
	return q, c.emitPriceData(ctx, cfg, connectorToken, connector)
}

// convertCrossConnector pays [trader] in [toToken] for [amount] of
// [fromToken] using one combined formula. Price updates are reported for
// the source connector first.
func (c *Converter) convertCrossConnector(
	ctx context.Context,
	cfg *storage.Config,
	trader codec.Address,
	fromToken codec.Address,
	toToken codec.Address,
	amount *uint256.Int,
	minReturn *uint256.Int,
) (*Quote, error) {
	if err := checkAmounts(amount, minReturn); err != nil {
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
	if err := c.checkConvertible(ctx, cfg); err != nil {
		return nil, err
	}

	fromBalance, err := c.depositedBalance(ctx, fromToken, from, amount)
	if err != nil {
		return nil, err
	}
	toBalance, err := c.connectorBalance(ctx, toToken, to)
	if err != nil {
		return nil, err
	}
	q, err := crossQuote(cfg, from, fromBalance, to, toBalance, amount)
	if err != nil {
		return nil, err
	}
	if err := checkSlippage(q, minReturn); err != nil {
		return nil, err
	}
	if !q.Amount.Lt(toBalance) {
		return nil, ErrInsufficientReserve
	}

	if from.IsVirtualBalanceEnabled {
		if err := creditVirtualBalance(from, amount); err != nil {
			return nil, err
		}
		if err := storage.SetConnector(ctx, c.mu, fromToken, from); err != nil {
			return nil, err
		}
	}
	if to.IsVirtualBalanceEnabled {
		to.VirtualBalance.Sub(to.VirtualBalance, q.Amount)
		if err := storage.SetConnector(ctx, c.mu, toToken, to); err != nil {
			return nil, err
		}
	}
	if err := c.backend.Token(toToken).Transfer(ctx, trader, q.Amount, nil); err != nil {
		return nil, fmt.Errorf("unable to transfer %s: %w", toToken, err)
	}
	c.log.Debug("cross connector conversion",
		zap.Stringer("trader", trader),
		zap.Stringer("from", fromToken),
		zap.Stringer("to", toToken),
		zap.Stringer("amountIn", amount),
		zap.Stringer("amountOut", q.Amount),
	)
	if err := c.emit(ctx, &Conversion{
		FromToken: fromToken,
		ToToken:   toToken,
		Trader:    trader,
		AmountIn:  amount.Clone(),
		AmountOut: q.Amount.Clone(),
		Fee:       q.Fee.Clone(),
	}); err != nil {
		return nil, err
	}
	if err := c.emitPriceData(ctx, cfg, fromToken, from); err != nil {
		return nil, err
	}
	return q, c.emitPriceData(ctx, cfg, toToken, to)
}

func (c *Converter) emitPriceData(
	ctx context.Context,
	cfg *storage.Config,
	token codec.Address,
	connector *storage.Connector,
) error {
	balance, err := c.connectorBalance(ctx, token, connector)
	if err != nil {
		return err
	}
	supply, err := c.totalSupply(ctx, cfg)
	if err != nil {
		return err
	}
	return c.emit(ctx, &PriceDataUpdate{
		ConnectorToken:   token,
		ConnectorBalance: balance,
		TokenSupply:      supply,
		ConnectorWeight:  connector.Weight,
	})
}
