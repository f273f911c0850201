// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*PrefStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "state.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestVisitedFlag_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store, path := openTemp(t)

	assert.False(t, store.HasVisited(ctx), "fresh store shows landing")
	require.NoError(t, store.MarkVisited(ctx))
	assert.True(t, store.HasVisited(ctx))

	value, ok, err := store.Get(ctx, KeyVisited)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", value)

	// Survives reopen.
	require.NoError(t, store.Close())
	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()
	assert.True(t, reopened.HasVisited(ctx))

	require.NoError(t, reopened.ResetVisited(ctx))
	assert.False(t, reopened.HasVisited(ctx))
}

func TestHasVisited_AnyValueCounts(t *testing.T) {
	ctx := context.Background()
	store, _ := openTemp(t)

	require.NoError(t, store.Set(ctx, KeyVisited, "yes"))
	assert.True(t, store.HasVisited(ctx))
}

func TestSetOverwrites(t *testing.T) {
	ctx := context.Background()
	store, _ := openTemp(t)

	require.NoError(t, store.Set(ctx, "theme", "dark"))
	require.NoError(t, store.Set(ctx, "theme", "light"))
	value, ok, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)

	at, ok, err := store.UpdatedAt(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, at.IsZero())
}

func TestGet_Missing(t *testing.T) {
	store, _ := openTemp(t)
	_, ok, err := store.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Delete(context.Background(), "missing"))
}

func TestClosedStore(t *testing.T) {
	ctx := context.Background()
	store, _ := openTemp(t)
	require.NoError(t, store.Close())

	assert.ErrorIs(t, store.MarkVisited(ctx), ErrClosed)
	assert.False(t, store.HasVisited(ctx))
	assert.NoError(t, store.Close(), "double close is harmless")

	var nilStore *PrefStore
	assert.False(t, nilStore.HasVisited(ctx))
}

func TestSchemaVersionRecorded(t *testing.T) {
	store, _ := openTemp(t)
	value, ok, err := store.Get(context.Background(), "schema_version")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", value)
}
