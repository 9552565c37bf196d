// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/holiman/uint256"
	"go.uber.org/zap"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/state"
	"github.com/ava-labs/convertervm/storage"
)

// Receiver is a contract that reacts to incoming transfers.
type Receiver interface {
	TokenFallback(ctx context.Context, token codec.Address, from codec.Address, value *uint256.Int, data []byte) error
}

// Receivers resolves the contract deployed at an address. It returns nil
// if [addr] is not a contract.
type Receivers interface {
	Receiver(ctx context.Context, addr codec.Address) (Receiver, error)
}

type Emitter interface {
	Emit(ctx context.Context, e Event) error
}

// Token is a mintable token whose owner controls issuance and destruction.
// Transfers into a contract invoke its TokenFallback.
type Token struct {
	address   codec.Address
	mu        state.Mutable
	receivers Receivers
	emitter   Emitter
	log       logging.Logger
}

func New(
	address codec.Address,
	mu state.Mutable,
	receivers Receivers,
	emitter Emitter,
	log logging.Logger,
) *Token {
	return &Token{
		address:   address,
		mu:        mu,
		receivers: receivers,
		emitter:   emitter,
		log:       log,
	}
}

func (t *Token) Address() codec.Address {
	return t.address
}

type CreateParams struct {
	Name          string
	Symbol        string
	Decimals      uint8
	InitialSupply *uint256.Int
}

// Create installs the token with [caller] as owner and holder of the
// initial supply.
func (t *Token) Create(ctx context.Context, caller codec.Address, params *CreateParams) error {
	if _, err := storage.GetTokenInfo(ctx, t.mu); err == nil {
		return ErrAlreadyInstalled
	} else if !errors.Is(err, storage.ErrNotInstalled) {
		return err
	}
	if len(params.Name) == 0 {
		return ErrNameEmpty
	}
	if len(params.Symbol) == 0 {
		return ErrSymbolEmpty
	}
	supply := new(uint256.Int)
	if params.InitialSupply != nil {
		supply.Set(params.InitialSupply)
	}
	if err := storage.SetTokenInfo(ctx, t.mu, &storage.TokenInfo{
		Name:        params.Name,
		Symbol:      params.Symbol,
		Decimals:    params.Decimals,
		TotalSupply: supply,
		Owner:       caller,
	}); err != nil {
		return err
	}
	if err := storage.SetBalance(ctx, t.mu, caller, supply); err != nil {
		return err
	}
	t.log.Info("created token",
		zap.Stringer("token", t.address),
		zap.String("symbol", params.Symbol),
		zap.Stringer("supply", supply),
	)
	if supply.IsZero() {
		return nil
	}
	return t.emitter.Emit(ctx, &Transfer{To: caller, Amount: supply.Clone()})
}

func (t *Token) Info(ctx context.Context) (*storage.TokenInfo, error) {
	info, err := storage.GetTokenInfo(ctx, t.mu)
	if errors.Is(err, storage.ErrNotInstalled) {
		return nil, ErrNotInstalled
	}
	return info, err
}

func (t *Token) BalanceOf(ctx context.Context, owner codec.Address) (*uint256.Int, error) {
	if _, err := t.Info(ctx); err != nil {
		return nil, err
	}
	return storage.GetBalance(ctx, t.mu, owner)
}

func (t *Token) TotalSupply(ctx context.Context) (*uint256.Int, error) {
	info, err := t.Info(ctx)
	if err != nil {
		return nil, err
	}
	return info.TotalSupply, nil
}

func (t *Token) Owner(ctx context.Context) (codec.Address, error) {
	info, err := t.Info(ctx)
	if err != nil {
		return codec.EmptyAddress, err
	}
	return info.Owner, nil
}

func (t *Token) requireOwner(ctx context.Context, caller codec.Address) (*storage.TokenInfo, error) {
	info, err := t.Info(ctx)
	if err != nil {
		return nil, err
	}
	if caller != info.Owner {
		return nil, ErrNotOwner
	}
	return info, nil
}

func (t *Token) debit(ctx context.Context, from codec.Address, amount *uint256.Int) error {
	balance, err := storage.GetBalance(ctx, t.mu, from)
	if err != nil {
		return err
	}
	if balance.Lt(amount) {
		return fmt.Errorf("%w: %s holds %s, needs %s", ErrInsufficientBalance, from, balance, amount)
	}
	return storage.SetBalance(ctx, t.mu, from, balance.Sub(balance, amount))
}

func (t *Token) credit(ctx context.Context, to codec.Address, amount *uint256.Int) error {
	balance, err := storage.GetBalance(ctx, t.mu, to)
	if err != nil {
		return err
	}
	// Bounded by the total supply, so this never overflows.
	return storage.SetBalance(ctx, t.mu, to, balance.Add(balance, amount))
}

// Transfer moves [amount] from [caller] to [to]. If [to] is a contract, its
// TokenFallback runs afterwards with [data] and its failure aborts the
// transfer.
func (t *Token) Transfer(
	ctx context.Context,
	caller codec.Address,
	to codec.Address,
	amount *uint256.Int,
	data []byte,
) error {
	if to.IsEmpty() {
		return ErrInvalidAddress
	}
	if amount == nil {
		return ErrInvalidAmount
	}
	if _, err := t.Info(ctx); err != nil {
		return err
	}
	if err := t.debit(ctx, caller, amount); err != nil {
		return err
	}
	if err := t.credit(ctx, to, amount); err != nil {
		return err
	}
	if err := t.emitter.Emit(ctx, &Transfer{From: caller, To: to, Amount: amount.Clone(), Data: data}); err != nil {
		return err
	}
	receiver, err := t.receivers.Receiver(ctx, to)
	if err != nil {
		return err
	}
	if receiver == nil {
		return nil
	}
	return receiver.TokenFallback(ctx, t.address, caller, amount.Clone(), data)
}

// Issue mints [amount] to [to]. Receivers are not notified of issuance.
func (t *Token) Issue(ctx context.Context, caller codec.Address, to codec.Address, amount *uint256.Int) error {
	info, err := t.requireOwner(ctx, caller)
	if err != nil {
		return err
	}
	if to.IsEmpty() || to == t.address {
		return ErrInvalidAddress
	}
	if amount == nil || amount.IsZero() {
		return ErrInvalidAmount
	}
	if _, overflow := info.TotalSupply.AddOverflow(info.TotalSupply, amount); overflow {
		return ErrSupplyOverflow
	}
	if err := storage.SetTokenInfo(ctx, t.mu, info); err != nil {
		return err
	}
	if err := t.credit(ctx, to, amount); err != nil {
		return err
	}
	if err := t.emitter.Emit(ctx, &Issuance{Amount: amount.Clone()}); err != nil {
		return err
	}
	return t.emitter.Emit(ctx, &Transfer{To: to, Amount: amount.Clone()})
}

// Destroy burns [amount] held by [from].
func (t *Token) Destroy(ctx context.Context, caller codec.Address, from codec.Address, amount *uint256.Int) error {
	info, err := t.requireOwner(ctx, caller)
	if err != nil {
		return err
	}
	if amount == nil || amount.IsZero() {
		return ErrInvalidAmount
	}
	if err := t.debit(ctx, from, amount); err != nil {
		return err
	}
	info.TotalSupply.Sub(info.TotalSupply, amount)
	if err := storage.SetTokenInfo(ctx, t.mu, info); err != nil {
		return err
	}
	if err := t.emitter.Emit(ctx, &Transfer{From: from, Amount: amount.Clone()}); err != nil {
		return err
	}
	return t.emitter.Emit(ctx, &Destruction{Amount: amount.Clone()})
}

// TransferOwnership nominates [newOwner], who takes over once they call
// AcceptOwnership.
func (t *Token) TransferOwnership(ctx context.Context, caller codec.Address, newOwner codec.Address) error {
	info, err := t.requireOwner(ctx, caller)
	if err != nil {
		return err
	}
	if newOwner.IsEmpty() || newOwner == info.Owner {
		return ErrInvalidAddress
	}
	info.NewOwner = newOwner
	return storage.SetTokenInfo(ctx, t.mu, info)
}

func (t *Token) AcceptOwnership(ctx context.Context, caller codec.Address) error {
	info, err := t.Info(ctx)
	if err != nil {
		return err
	}
	if info.NewOwner.IsEmpty() || caller != info.NewOwner {
		return ErrNotPendingOwner
	}
	prev := info.Owner
	info.Owner, info.NewOwner = caller, codec.EmptyAddress
	if err := storage.SetTokenInfo(ctx, t.mu, info); err != nil {
		return err
	}
	t.log.Info("token ownership transferred",
		zap.Stringer("token", t.address),
		zap.Stringer("prev", prev),
		zap.Stringer("owner", caller),
	)
	return t.emitter.Emit(ctx, &OwnerUpdate{PrevOwner: prev, NewOwner: caller})
}
