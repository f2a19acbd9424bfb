package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "customer.profile")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "customer.profile", []byte(`{"phone":"5551234567"}`)))

	got, err := store.Get(ctx, "customer.profile")
	require.NoError(t, err)
	assert.Equal(t, `{"phone":"5551234567"}`, string(got))

	require.NoError(t, store.Delete(ctx, "customer.profile"))
	_, err = store.Get(ctx, "customer.profile")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "admin.token", []byte("old")))
	require.NoError(t, store.Set(ctx, "admin.token", []byte("new")))

	got, err := store.Get(ctx, "admin.token")
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	in := []byte("snapshot")
	require.NoError(t, store.Set(ctx, "k", in))
	in[0] = 'X'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "snapshot", string(got), "callers cannot mutate stored data")

	got[0] = 'Y'
	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "snapshot", string(again))
}

func TestDeleteMissingKeyIsNoop(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Delete(context.Background(), "never.set"))
}
