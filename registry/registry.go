// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/convertervm/codec"
	"github.com/ava-labs/convertervm/state"
	"github.com/ava-labs/convertervm/storage"
)

var (
	ErrNotInstalled     = errors.New("registry not installed")
	ErrAlreadyInstalled = errors.New("registry already installed")
	ErrNotOwner         = errors.New("actor is not registry owner")
	ErrInvalidName      = errors.New("invalid contract name")
	ErrInvalidAddress   = errors.New("invalid address")
)

const (
	AddressUpdateID uint8 = iota
	AddressRemovalID
)

func EventName(typeID uint8) string {
	switch typeID {
	case AddressUpdateID:
		return "AddressUpdate"
	case AddressRemovalID:
		return "AddressRemoval"
	default:
		return "Unknown"
	}
}

type Event interface {
	GetTypeID() uint8
}

type AddressUpdate struct {
	Name    string        `json:"name"`
	Address codec.Address `json:"address"`
}

func (*AddressUpdate) GetTypeID() uint8 {
	return AddressUpdateID
}

type AddressRemoval struct {
	Name string `json:"name"`
}

func (*AddressRemoval) GetTypeID() uint8 {
	return AddressRemovalID
}

type Emitter interface {
	Emit(ctx context.Context, e Event) error
}

// Registry maps well-known names to contract addresses. Only its owner can
// change the mapping.
type Registry struct {
	address codec.Address
	mu      state.Mutable
	emitter Emitter
	log     logging.Logger
}

func New(address codec.Address, mu state.Mutable, emitter Emitter, log logging.Logger) *Registry {
	return &Registry{
		address: address,
		mu:      mu,
		emitter: emitter,
		log:     log,
	}
}

func (r *Registry) Address() codec.Address {
	return r.address
}

func (r *Registry) Install(ctx context.Context, caller codec.Address) error {
	if _, err := storage.GetOwnership(ctx, r.mu); err == nil {
		return ErrAlreadyInstalled
	} else if !errors.Is(err, storage.ErrNotInstalled) {
		return err
	}
	return storage.SetOwnership(ctx, r.mu, &storage.Ownership{Owner: caller})
}

func (r *Registry) Owner(ctx context.Context) (codec.Address, error) {
	o, err := storage.GetOwnership(ctx, r.mu)
	if errors.Is(err, storage.ErrNotInstalled) {
		return codec.EmptyAddress, ErrNotInstalled
	}
	if err != nil {
		return codec.EmptyAddress, err
	}
	return o.Owner, nil
}

func (r *Registry) requireOwner(ctx context.Context, caller codec.Address) error {
	owner, err := r.Owner(ctx)
	if err != nil {
		return err
	}
	if caller != owner {
		return ErrNotOwner
	}
	return nil
}

func validName(name string) bool {
	return len(name) > 0 && len(name) <= storage.MaxRegistryKeySize
}

// RegisterAddress points [name] at [addr], replacing any previous entry.
func (r *Registry) RegisterAddress(ctx context.Context, caller codec.Address, name string, addr codec.Address) error {
	if err := r.requireOwner(ctx, caller); err != nil {
		return err
	}
	if !validName(name) {
		return ErrInvalidName
	}
	if addr.IsEmpty() {
		return ErrInvalidAddress
	}
	if err := storage.SetRegistryEntry(ctx, r.mu, name, addr); err != nil {
		return err
	}
	r.log.Info("registered address",
		zap.Stringer("registry", r.address),
		zap.String("name", name),
		zap.Stringer("address", addr),
	)
	return r.emitter.Emit(ctx, &AddressUpdate{Name: name, Address: addr})
}

func (r *Registry) UnregisterAddress(ctx context.Context, caller codec.Address, name string) error {
	if err := r.requireOwner(ctx, caller); err != nil {
		return err
	}
	current, err := storage.GetRegistryEntry(ctx, r.mu, name)
	if err != nil {
		return err
	}
	if current.IsEmpty() {
		return ErrInvalidName
	}
	if err := storage.RemoveRegistryEntry(ctx, r.mu, name); err != nil {
		return err
	}
	return r.emitter.Emit(ctx, &AddressRemoval{Name: name})
}

// GetAddress returns the empty address for unknown names.
func (r *Registry) GetAddress(ctx context.Context, name string) (codec.Address, error) {
	if _, err := r.Owner(ctx); err != nil {
		return codec.EmptyAddress, err
	}
	return storage.GetRegistryEntry(ctx, r.mu, name)
}
