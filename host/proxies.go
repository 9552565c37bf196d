// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package host

import (
	"context"

	"github.com/holiman/uint256"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/converter"
	"github.com/ava-labs/convertervm/registry"
	"github.com/ava-labs/convertervm/token"
)

var (
	_ converter.Backend    = (*backend)(nil)
	_ converter.SmartToken = (*tokenProxy)(nil)
	_ converter.Registry   = (*registryProxy)(nil)
	_ converter.Emitter    = (*converterEmitter)(nil)
	_ token.Emitter        = (*tokenEmitter)(nil)
	_ registry.Emitter     = (*registryEmitter)(nil)
)

// backend resolves collaborators for the converter at [caller]. Every call
// made through it is made by [caller].
type backend struct {
	tx     *Tx
	caller codec.Address
}

func (b *backend) Token(addr codec.Address) converter.Token {
	return &tokenProxy{tx: b.tx, addr: addr, caller: b.caller}
}

func (b *backend) SmartToken(addr codec.Address) converter.SmartToken {
	return &tokenProxy{tx: b.tx, addr: addr, caller: b.caller}
}

func (b *backend) Registry(addr codec.Address) converter.Registry {
	return &registryProxy{tx: b.tx, addr: addr}
}

type tokenProxy struct {
	tx     *Tx
	addr   codec.Address
	caller codec.Address
}

func (p *tokenProxy) BalanceOf(ctx context.Context, owner codec.Address) (*uint256.Int, error) {
	t, err := p.tx.Token(ctx, p.addr)
	if err != nil {
		return nil, err
	}
	return t.BalanceOf(ctx, owner)
}

func (p *tokenProxy) Transfer(ctx context.Context, to codec.Address, amount *uint256.Int, data []byte) error {
	t, err := p.tx.Token(ctx, p.addr)
	if err != nil {
		return err
	}
	return t.Transfer(ctx, p.caller, to, amount, data)
}

func (p *tokenProxy) TotalSupply(ctx context.Context) (*uint256.Int, error) {
	t, err := p.tx.Token(ctx, p.addr)
	if err != nil {
		return nil, err
	}
	return t.TotalSupply(ctx)
}

func (p *tokenProxy) Issue(ctx context.Context, to codec.Address, amount *uint256.Int) error {
	t, err := p.tx.Token(ctx, p.addr)
	if err != nil {
		return err
	}
	return t.Issue(ctx, p.caller, to, amount)
}

func (p *tokenProxy) Destroy(ctx context.Context, from codec.Address, amount *uint256.Int) error {
	t, err := p.tx.Token(ctx, p.addr)
	if err != nil {
		return err
	}
	return t.Destroy(ctx, p.caller, from, amount)
}

func (p *tokenProxy) Owner(ctx context.Context) (codec.Address, error) {
	t, err := p.tx.Token(ctx, p.addr)
	if err != nil {
		return codec.EmptyAddress, err
	}
	return t.Owner(ctx)
}

func (p *tokenProxy) TransferOwnership(ctx context.Context, newOwner codec.Address) error {
	t, err := p.tx.Token(ctx, p.addr)
	if err != nil {
		return err
	}
	return t.TransferOwnership(ctx, p.caller, newOwner)
}

func (p *tokenProxy) AcceptOwnership(ctx context.Context) error {
	t, err := p.tx.Token(ctx, p.addr)
	if err != nil {
		return err
	}
	return t.AcceptOwnership(ctx, p.caller)
}

type registryProxy struct {
	tx   *Tx
	addr codec.Address
}

func (p *registryProxy) GetAddress(ctx context.Context, name string) (codec.Address, error) {
	r, err := p.tx.Registry(ctx, p.addr)
	if err != nil {
		return codec.EmptyAddress, err
	}
	return r.GetAddress(ctx, name)
}

type converterEmitter struct {
	tx       *Tx
	contract codec.Address
}

func (e *converterEmitter) Emit(_ context.Context, ev converter.Event) error {
	e.tx.emit(e.contract, converter.EventName(ev.GetTypeID()), ev)
	return nil
}

type tokenEmitter struct {
	tx       *Tx
	contract codec.Address
}

func (e *tokenEmitter) Emit(_ context.Context, ev token.Event) error {
	e.tx.emit(e.contract, token.EventName(ev.GetTypeID()), ev)
	return nil
}

type registryEmitter struct {
	tx       *Tx
	contract codec.Address
}

func (e *registryEmitter) Emit(_ context.Context, ev registry.Event) error {
	e.tx.emit(e.contract, registry.EventName(ev.GetTypeID()), ev)
	return nil
}
