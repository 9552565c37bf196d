// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package converter

import (
	"context"

	"go.uber.org/zap"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/storage"
)

func (c *Converter) requireOwner(ctx context.Context, caller codec.Address) (*storage.Ownership, error) {
	o, err := c.Ownership(ctx)
	if err != nil {
		return nil, err
	}
	if caller != o.Owner {
		return nil, ErrNotOwner
	}
	return o, nil
}

func (c *Converter) requireOwnerOrManager(ctx context.Context, caller codec.Address) (*storage.Ownership, error) {
	o, err := c.Ownership(ctx)
	if err != nil {
		return nil, err
	}
	if caller != o.Owner && (o.Manager.IsEmpty() || caller != o.Manager) {
		return nil, ErrNotOwnerOrManager
	}
	return o, nil
}

// TransferOwnership nominates [newOwner]. Ownership only moves once the
// nominee calls AcceptOwnership.
func (c *Converter) TransferOwnership(ctx context.Context, caller codec.Address, newOwner codec.Address) error {
	o, err := c.requireOwner(ctx, caller)
	if err != nil {
		return err
	}
	if newOwner.IsEmpty() || newOwner == o.Owner {
		return ErrInvalidAddress
	}
	o.NewOwner = newOwner
	return storage.SetOwnership(ctx, c.mu, o)
}

func (c *Converter) AcceptOwnership(ctx context.Context, caller codec.Address) error {
	o, err := c.Ownership(ctx)
	if err != nil {
		return err
	}
	if o.NewOwner.IsEmpty() || caller != o.NewOwner {
		return ErrNotPendingOwner
	}
	prev := o.Owner
	o.Owner, o.NewOwner = caller, codec.EmptyAddress
	if err := storage.SetOwnership(ctx, c.mu, o); err != nil {
		return err
	}
	c.log.Info("converter ownership transferred",
		zap.Stringer("converter", c.address),
		zap.Stringer("prev", prev),
		zap.Stringer("owner", caller),
	)
	return c.emit(ctx, &OwnerUpdate{PrevOwner: prev, NewOwner: caller})
}

// TransferManagement nominates [newManager]. An empty address nominates
// nobody, which lets the owner cancel a pending transfer.
func (c *Converter) TransferManagement(ctx context.Context, caller codec.Address, newManager codec.Address) error {
	o, err := c.requireOwner(ctx, caller)
	if err != nil {
		return err
	}
	if !newManager.IsEmpty() && newManager == o.Manager {
		return ErrInvalidAddress
	}
	o.NewManager = newManager
	return storage.SetOwnership(ctx, c.mu, o)
}

func (c *Converter) AcceptManagement(ctx context.Context, caller codec.Address) error {
	o, err := c.Ownership(ctx)
	if err != nil {
		return err
	}
	if o.NewManager.IsEmpty() || caller != o.NewManager {
		return ErrNotPendingManager
	}
	prev := o.Manager
	o.Manager, o.NewManager = caller, codec.EmptyAddress
	if err := storage.SetOwnership(ctx, c.mu, o); err != nil {
		return err
	}
	return c.emit(ctx, &ManagerUpdate{PrevManager: prev, NewManager: caller})
}

// TransferTokenOwnership hands the primary token to [newOwner]. The
// converter becomes inactive once the nominee accepts.
func (c *Converter) TransferTokenOwnership(ctx context.Context, caller codec.Address, newOwner codec.Address) error {
	if _, err := c.requireOwner(ctx, caller); err != nil {
		return err
	}
	if newOwner.IsEmpty() {
		return ErrInvalidAddress
	}
	cfg, err := c.Config(ctx)
	if err != nil {
		return err
	}
	return c.backend.SmartToken(cfg.Token).TransferOwnership(ctx, newOwner)
}

// AcceptTokenOwnership takes over the primary token, which activates the
// converter.
func (c *Converter) AcceptTokenOwnership(ctx context.Context, caller codec.Address) error {
	if _, err := c.requireOwner(ctx, caller); err != nil {
		return err
	}
	cfg, err := c.Config(ctx)
	if err != nil {
		return err
	}
	if err := c.backend.SmartToken(cfg.Token).AcceptOwnership(ctx); err != nil {
		return err
	}
	c.log.Info("converter activated",
		zap.Stringer("converter", c.address),
		zap.Stringer("token", cfg.Token),
	)
	return c.emit(ctx, &TokenOwnershipUpdate{Token: cfg.Token, NewOwner: c.address})
}
