package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	payload := []byte(`{"plan":"orders service"}`)
	ref, err := store.Put(ctx, "default", payload)
	require.NoError(t, err)
	assert.Equal(t, Ref(payload), ref)

	got, err := store.Get(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	exists, err := store.Exists(ctx, ref)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryStorePutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	ref1, err := store.Put(ctx, "default", []byte("same bytes"))
	require.NoError(t, err)
	ref2, err := store.Put(ctx, "default", []byte("same bytes"))
	require.NoError(t, err)

	assert.Equal(t, ref1, ref2)
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStoreMissingRef(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, Ref([]byte("never stored")))
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing ref is not an error.
	assert.NoError(t, store.Delete(ctx, "nope"))
}

func TestRefIsStableAndDistinct(t *testing.T) {
	assert.Equal(t, Ref([]byte("a")), Ref([]byte("a")))
	assert.NotEqual(t, Ref([]byte("a")), Ref([]byte("b")))
	assert.Len(t, Ref([]byte("a")), 64)
}
