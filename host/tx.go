// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package host

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.uber.org/zap"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/consts"
	"github.com/ava-labs/convertervm/converter"
	"github.com/ava-labs/convertervm/event"
	"github.com/ava-labs/convertervm/registry"
	"github.com/ava-labs/convertervm/state"
	"github.com/ava-labs/convertervm/storage"
	"github.com/ava-labs/convertervm/token"
	"github.com/ava-labs/convertervm/utils"
)

var _ token.Receivers = (*Tx)(nil)

// Tx is the view of the ledger inside one invocation. Contracts obtained
// from a Tx must not outlive it.
type Tx struct {
	ledger *Ledger
	mu     *state.SimpleMutable
	events event.Buffer[Log]
}

func newTx(l *Ledger, mu *state.SimpleMutable) *Tx {
	return &Tx{ledger: l, mu: mu}
}

func (tx *Tx) abort() {
	tx.mu.Discard()
	tx.events.Reset()
}

func (tx *Tx) emit(contract codec.Address, name string, e Event) {
	tx.events.Add(Log{Contract: contract, Name: name, Event: e})
}

// deploy reserves a fresh address of [typeID]. Addresses are derived from
// a ledger-wide nonce, so they never repeat.
func (tx *Tx) deploy(ctx context.Context, typeID uint8) (codec.Address, error) {
	nonce, err := storage.NextNonce(ctx, tx.mu)
	if err != nil {
		return codec.EmptyAddress, err
	}
	seed := make([]byte, consts.ByteLen+consts.Uint64Len)
	seed[0] = typeID
	binary.BigEndian.PutUint64(seed[consts.ByteLen:], nonce)
	addr := codec.CreateAddress(typeID, utils.ToID(seed))
	if err := storage.RegisterContract(ctx, tx.mu, addr); err != nil {
		return codec.EmptyAddress, err
	}
	return addr, nil
}

func (tx *Tx) requireContract(ctx context.Context, addr codec.Address, typeID uint8) error {
	if addr.TypeID() != typeID {
		return fmt.Errorf("%w: %s", storage.ErrUnknownContract, addr)
	}
	exists, err := storage.ContractExists(ctx, tx.mu, addr)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", storage.ErrUnknownContract, addr)
	}
	return nil
}

// CreateToken deploys a token owned by [caller].
func (tx *Tx) CreateToken(ctx context.Context, caller codec.Address, params *token.CreateParams) (codec.Address, error) {
	addr, err := tx.deploy(ctx, consts.TokenID)
	if err != nil {
		return codec.EmptyAddress, err
	}
	if err := tx.token(addr).Create(ctx, caller, params); err != nil {
		return codec.EmptyAddress, err
	}
	return addr, nil
}

// CreateRegistry deploys an empty registry owned by [caller].
func (tx *Tx) CreateRegistry(ctx context.Context, caller codec.Address) (codec.Address, error) {
	addr, err := tx.deploy(ctx, consts.RegistryID)
	if err != nil {
		return codec.EmptyAddress, err
	}
	if err := tx.registry(addr).Install(ctx, caller); err != nil {
		return codec.EmptyAddress, err
	}
	return addr, nil
}

// CreateConverter deploys a converter owned by [caller]. It stays inactive
// until it accepts ownership of its primary token.
func (tx *Tx) CreateConverter(ctx context.Context, caller codec.Address, params *converter.InstallParams) (codec.Address, error) {
	if err := tx.requireContract(ctx, params.Token, consts.TokenID); err != nil {
		return codec.EmptyAddress, err
	}
	if err := tx.requireContract(ctx, params.Registry, consts.RegistryID); err != nil {
		return codec.EmptyAddress, err
	}
	addr, err := tx.deploy(ctx, consts.ConverterID)
	if err != nil {
		return codec.EmptyAddress, err
	}
	if err := tx.converter(addr).Install(ctx, caller, params); err != nil {
		return codec.EmptyAddress, err
	}
	tx.ledger.log.Info("deployed converter",
		zap.Stringer("converter", addr),
		zap.Stringer("token", params.Token),
	)
	return addr, nil
}

func (tx *Tx) Token(ctx context.Context, addr codec.Address) (*token.Token, error) {
	if err := tx.requireContract(ctx, addr, consts.TokenID); err != nil {
		return nil, err
	}
	return tx.token(addr), nil
}

func (tx *Tx) Registry(ctx context.Context, addr codec.Address) (*registry.Registry, error) {
	if err := tx.requireContract(ctx, addr, consts.RegistryID); err != nil {
		return nil, err
	}
	return tx.registry(addr), nil
}

func (tx *Tx) Converter(ctx context.Context, addr codec.Address) (*converter.Converter, error) {
	if err := tx.requireContract(ctx, addr, consts.ConverterID); err != nil {
		return nil, err
	}
	return tx.converter(addr), nil
}

// Receiver implements [token.Receivers]. Converters are the only contracts
// that accept transfers.
func (tx *Tx) Receiver(ctx context.Context, addr codec.Address) (token.Receiver, error) {
	if addr.TypeID() != consts.ConverterID {
		return nil, nil
	}
	exists, err := storage.ContractExists(ctx, tx.mu, addr)
	if err != nil || !exists {
		return nil, err
	}
	return tx.converter(addr), nil
}

func (tx *Tx) token(addr codec.Address) *token.Token {
	return token.New(
		addr,
		storage.ContractState(tx.mu, addr),
		tx,
		&tokenEmitter{tx: tx, contract: addr},
		tx.ledger.log,
	)
}

func (tx *Tx) registry(addr codec.Address) *registry.Registry {
	return registry.New(
		addr,
		storage.ContractState(tx.mu, addr),
		&registryEmitter{tx: tx, contract: addr},
		tx.ledger.log,
	)
}

func (tx *Tx) converter(addr codec.Address) *converter.Converter {
	return converter.New(
		addr,
		storage.ContractState(tx.mu, addr),
		&backend{tx: tx, caller: addr},
		&converterEmitter{tx: tx, contract: addr},
		tx.ledger.log,
	)
}
