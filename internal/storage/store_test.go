package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStoreRoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	ctx := context.Background()
	key, err := store.Put(ctx, "jobs/abc/rent_roll.csv", []byte("unit,rent\n101,1200\n"))
	require.NoError(t, err)
	assert.Equal(t, "jobs/abc/rent_roll.csv", key)

	data, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("unit,rent\n101,1200\n"), data)
}

func TestFSStoreMissingKey(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "jobs/nope")
	assert.Error(t, err)
}

func TestFSStoreConfinesTraversalToRoot(t *testing.T) {
	store, err := NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = store.Put(ctx, "../../secret", []byte("x"))
	require.NoError(t, err)

	// the parent references are stripped: the blob lands under the root
	data, err := store.Get(ctx, "secret")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), data)
}
