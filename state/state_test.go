// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/stretchr/testify/require"
)

func TestSimpleMutableCommit(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := memdb.New()
	require.NoError(db.Put([]byte("existing"), []byte{1}))

	mu := NewSimpleMutable(db)
	require.NoError(mu.Insert(ctx, []byte("new"), []byte{2}))
	require.NoError(mu.Remove(ctx, []byte("existing")))
	require.Equal(2, mu.Len())

	// Buffered changes are visible through the overlay only.
	v, err := mu.GetValue(ctx, []byte("new"))
	require.NoError(err)
	require.Equal([]byte{2}, v)
	_, err = mu.GetValue(ctx, []byte("existing"))
	require.ErrorIs(err, database.ErrNotFound)
	has, err := db.Has([]byte("new"))
	require.NoError(err)
	require.False(has)

	require.NoError(mu.Commit(ctx))
	require.Zero(mu.Len())

	v, err = db.Get([]byte("new"))
	require.NoError(err)
	require.Equal([]byte{2}, v)
	has, err = db.Has([]byte("existing"))
	require.NoError(err)
	require.False(has)
}

func TestSimpleMutableDiscard(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := memdb.New()

	mu := NewSimpleMutable(db)
	require.NoError(mu.Insert(ctx, []byte("k"), []byte("v")))
	mu.Discard()

	_, err := mu.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)
	require.NoError(mu.Commit(ctx))
	has, err := db.Has([]byte("k"))
	require.NoError(err)
	require.False(has)
}

func TestSimpleMutableCopiesValues(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	mu := NewSimpleMutable(memdb.New())
	value := []byte{1, 2, 3}
	require.NoError(mu.Insert(ctx, []byte("k"), value))
	value[0] = 9

	v, err := mu.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte{1, 2, 3}, v)
}

func TestPrefixed(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	db := memdb.New()

	mu := NewSimpleMutable(db)
	a := NewPrefixed([]byte{0xa}, mu)
	b := NewPrefixed([]byte{0xb}, mu)

	require.NoError(a.Insert(ctx, []byte("k"), []byte("a")))
	require.NoError(b.Insert(ctx, []byte("k"), []byte("b")))

	v, err := a.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte("a"), v)
	v, err = b.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte("b"), v)

	require.NoError(mu.Commit(ctx))
	v, err = db.Get([]byte{0xa, 'k'})
	require.NoError(err)
	require.Equal([]byte("a"), v)

	require.NoError(a.Remove(ctx, []byte("k")))
	_, err = a.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)
	_, err = b.GetValue(ctx, []byte("k"))
	require.NoError(err)
}
