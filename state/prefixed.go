// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "context"

var _ Mutable = (*prefixedMutable)(nil)

// prefixedMutable confines a caller to the keys under [prefix].
type prefixedMutable struct {
	inner  Mutable
	prefix []byte
}

// NewPrefixed returns a view of [inner] in which every key is stored under
// [prefix].
func NewPrefixed(prefix []byte, inner Mutable) Mutable {
	return &prefixedMutable{inner: inner, prefix: prefix}
}

func (s *prefixedMutable) prefixKey(key []byte) (k []byte) {
	k = make([]byte, len(s.prefix)+len(key))
	copy(k, s.prefix)
	copy(k[len(s.prefix):], key)
	return
}

func (s *prefixedMutable) GetValue(ctx context.Context, key []byte) ([]byte, error) {
	return s.inner.GetValue(ctx, s.prefixKey(key))
}

func (s *prefixedMutable) Insert(ctx context.Context, key []byte, value []byte) error {
	return s.inner.Insert(ctx, s.prefixKey(key), value)
}

func (s *prefixedMutable) Remove(ctx context.Context, key []byte) error {
	return s.inner.Remove(ctx, s.prefixKey(key))
}
