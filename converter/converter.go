// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package converter

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/consts"
	"github.com/ava-labs/convertervm/state"
	"github.com/ava-labs/convertervm/storage"
)

// Converter is a weighted-reserve market maker between a primary token and
// its connector tokens. A Converter only lives for one invocation: it reads
// and writes [mu] directly and relies on the host to commit or discard the
// invocation as a whole.
type Converter struct {
	address codec.Address
	mu      state.Mutable
	backend Backend
	emitter Emitter
	log     logging.Logger
}

func New(
	address codec.Address,
	mu state.Mutable,
	backend Backend,
	emitter Emitter,
	log logging.Logger,
) *Converter {
	return &Converter{
		address: address,
		mu:      mu,
		backend: backend,
		emitter: emitter,
		log:     log,
	}
}

func (c *Converter) Address() codec.Address {
	return c.address
}

// InstallParams configures a new converter. The connector is optional.
type InstallParams struct {
	Token            codec.Address
	Registry         codec.Address
	MaxConversionFee uint32
	ConnectorToken   codec.Address
	ConnectorWeight  uint32
}

// Install initializes the converter with [caller] as owner. Conversions
// start enabled and registry updates start allowed.
func (c *Converter) Install(ctx context.Context, caller codec.Address, params *InstallParams) error {
	if params.Token.IsEmpty() || params.Registry.IsEmpty() {
		return ErrInvalidAddress
	}
	if params.MaxConversionFee > consts.MaxConversionFee {
		return ErrInvalidMaxConversionFee
	}
	_, err := storage.GetConfig(ctx, c.mu)
	switch {
	case err == nil:
		return ErrAlreadyInstalled
	case !errors.Is(err, storage.ErrNotInstalled):
		return err
	}

	cfg := &storage.Config{
		Token:               params.Token,
		Registry:            params.Registry,
		PrevRegistry:        params.Registry,
		MaxConversionFee:    params.MaxConversionFee,
		ConversionsEnabled:  true,
		AllowRegistryUpdate: true,
	}
	if err := storage.SetConfig(ctx, c.mu, cfg); err != nil {
		return err
	}
	if err := storage.SetOwnership(ctx, c.mu, &storage.Ownership{Owner: caller}); err != nil {
		return err
	}
	if !params.ConnectorToken.IsEmpty() {
		if err := c.addConnector(ctx, cfg, params.ConnectorToken, params.ConnectorWeight, false); err != nil {
			return err
		}
	}
	c.log.Info("installed converter",
		zap.Stringer("converter", c.address),
		zap.Stringer("token", params.Token),
		zap.Stringer("owner", caller),
	)
	return nil
}

// Config returns the converter singleton.
func (c *Converter) Config(ctx context.Context) (*storage.Config, error) {
	cfg, err := storage.GetConfig(ctx, c.mu)
	if errors.Is(err, storage.ErrNotInstalled) {
		return nil, ErrNotInstalled
	}
	return cfg, err
}

func (c *Converter) Ownership(ctx context.Context) (*storage.Ownership, error) {
	o, err := storage.GetOwnership(ctx, c.mu)
	if errors.Is(err, storage.ErrNotInstalled) {
		return nil, ErrNotInstalled
	}
	return o, err
}

// IsActive reports whether the converter owns its primary token.
func (c *Converter) IsActive(ctx context.Context) (bool, error) {
	cfg, err := c.Config(ctx)
	if err != nil {
		return false, err
	}
	return c.isActive(ctx, cfg)
}

func (c *Converter) isActive(ctx context.Context, cfg *storage.Config) (bool, error) {
	owner, err := c.backend.SmartToken(cfg.Token).Owner(ctx)
	if err != nil {
		return false, fmt.Errorf("unable to read owner of %s: %w", cfg.Token, err)
	}
	return owner == c.address, nil
}

func (c *Converter) requireActive(ctx context.Context, cfg *storage.Config) error {
	active, err := c.isActive(ctx, cfg)
	if err != nil {
		return err
	}
	if !active {
		return ErrInactive
	}
	return nil
}

func (c *Converter) emit(ctx context.Context, e Event) error {
	return c.emitter.Emit(ctx, e)
}
