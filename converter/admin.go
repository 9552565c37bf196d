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

// UpdateRegistry switches to the registry that the current registry
// advertises under [consts.RegistryKey], keeping the current one as the
// previous registry.
func (c *Converter) UpdateRegistry(ctx context.Context, caller codec.Address) error {
	if _, err := c.requireOwner(ctx, caller); err != nil {
		return err
	}
	cfg, err := c.Config(ctx)
	if err != nil {
		return err
	}
	if !cfg.AllowRegistryUpdate {
		return ErrRegistryUpdateDisabled
	}
	latest, err := c.backend.Registry(cfg.Registry).GetAddress(ctx, consts.RegistryKey)
	if err != nil {
		return fmt.Errorf("unable to resolve %s: %w", consts.RegistryKey, err)
	}
	if latest.IsEmpty() {
		return ErrInvalidAddress
	}
	if latest == cfg.Registry {
		return ErrRegistryUnchanged
	}

	prev := cfg.Registry
	cfg.PrevRegistry, cfg.Registry = prev, latest
	if err := storage.SetConfig(ctx, c.mu, cfg); err != nil {
		return err
	}
	c.log.Info("registry updated",
		zap.Stringer("converter", c.address),
		zap.Stringer("prev", prev),
		zap.Stringer("registry", latest),
	)
	return c.emit(ctx, &RegistryUpdate{PrevRegistry: prev, NewRegistry: latest})
}

// RestoreRegistry rolls back the last registry update. The previous
// registry is kept, so a second call is a no-op.
func (c *Converter) RestoreRegistry(ctx context.Context, caller codec.Address) error {
	if _, err := c.requireOwnerOrManager(ctx, caller); err != nil {
		return err
	}
	cfg, err := c.Config(ctx)
	if err != nil {
		return err
	}
	current := cfg.Registry
	cfg.Registry = cfg.PrevRegistry
	if err := storage.SetConfig(ctx, c.mu, cfg); err != nil {
		return err
	}
	return c.emit(ctx, &RegistryUpdate{PrevRegistry: current, NewRegistry: cfg.Registry})
}

func (c *Converter) DisableRegistryUpdate(ctx context.Context, caller codec.Address, disable bool) error {
	if _, err := c.requireOwnerOrManager(ctx, caller); err != nil {
		return err
	}
	cfg, err := c.Config(ctx)
	if err != nil {
		return err
	}
	cfg.AllowRegistryUpdate = !disable
	if err := storage.SetConfig(ctx, c.mu, cfg); err != nil {
		return err
	}
	return c.emit(ctx, &RegistryUpdateEnable{Enabled: !disable})
}

// DisableConversions emits [ConversionsEnable] only when the flag changes.
func (c *Converter) DisableConversions(ctx context.Context, caller codec.Address, disable bool) error {
	if _, err := c.requireOwnerOrManager(ctx, caller); err != nil {
		return err
	}
	cfg, err := c.Config(ctx)
	if err != nil {
		return err
	}
	if cfg.ConversionsEnabled != disable {
		return nil
	}
	cfg.ConversionsEnabled = !disable
	if err := storage.SetConfig(ctx, c.mu, cfg); err != nil {
		return err
	}
	return c.emit(ctx, &ConversionsEnable{Enabled: !disable})
}

func (c *Converter) SetConversionFee(ctx context.Context, caller codec.Address, fee uint32) error {
	if _, err := c.requireOwnerOrManager(ctx, caller); err != nil {
		return err
	}
	cfg, err := c.Config(ctx)
	if err != nil {
		return err
	}
	if fee > cfg.MaxConversionFee {
		return fmt.Errorf("%w: %d > %d", ErrInvalidFee, fee, cfg.MaxConversionFee)
	}
	prev := cfg.ConversionFee
	cfg.ConversionFee = fee
	if err := storage.SetConfig(ctx, c.mu, cfg); err != nil {
		return err
	}
	return c.emit(ctx, &ConversionFeeUpdate{PrevFee: prev, NewFee: fee})
}

// withdrawAllowed is the reserve protection policy: a registered
// connector's reserve can only leave the converter while it is active.
func withdrawAllowed(isSet bool, active bool) bool {
	return !isSet || active
}

// WithdrawTokens sends [amount] of [token] held by the converter to [to].
func (c *Converter) WithdrawTokens(
	ctx context.Context,
	caller codec.Address,
	token codec.Address,
	to codec.Address,
	amount *uint256.Int,
) error {
	if _, err := c.requireOwner(ctx, caller); err != nil {
		return err
	}
	if token.IsEmpty() || to.IsEmpty() || to == c.address {
		return ErrInvalidAddress
	}
	if amount == nil || amount.IsZero() {
		return ErrInvalidAmount
	}
	cfg, err := c.Config(ctx)
	if err != nil {
		return err
	}
	connector, err := storage.GetConnector(ctx, c.mu, token)
	if err != nil {
		return err
	}
	active := false
	if connector.IsSet {
		active, err = c.isActive(ctx, cfg)
		if err != nil {
			return err
		}
	}
	if !withdrawAllowed(connector.IsSet, active) {
		return ErrConnectorReserveLocked
	}

	// Keep a virtual reserve from claiming tokens that are gone.
	if connector.IsSet && connector.IsVirtualBalanceEnabled {
		if connector.VirtualBalance.Lt(amount) {
			connector.VirtualBalance.Clear()
		} else {
			connector.VirtualBalance.Sub(connector.VirtualBalance, amount)
		}
		if err := storage.SetConnector(ctx, c.mu, token, connector); err != nil {
			return err
		}
	}
	if err := c.backend.Token(token).Transfer(ctx, to, amount, nil); err != nil {
		return fmt.Errorf("unable to transfer %s: %w", token, err)
	}
	c.log.Info("withdrew tokens",
		zap.Stringer("converter", c.address),
		zap.Stringer("token", token),
		zap.Stringer("to", to),
		zap.Stringer("amount", amount),
	)
	return c.emit(ctx, &TokensWithdrawal{Token: token, To: to, Amount: amount.Clone()})
}
