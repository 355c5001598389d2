package infra

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalBlobStoreRoundTrip(t *testing.T) {
	store, err := NewLocalBlobStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	path, err := store.Put(ctx, "audio", "wav", []byte("RIFFdata"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "audio/") || strings.HasPrefix(path, "audio\\"))
	assert.True(t, strings.HasSuffix(path, ".wav"))

	data, err := store.Get(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFFdata"), data)

	require.NoError(t, store.Remove(ctx, path))
	_, err = store.Get(ctx, path)
	assert.Error(t, err)
}

func TestLocalBlobStoreRemoveMissingIsNoop(t *testing.T) {
	store, err := NewLocalBlobStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove(context.Background(), "audio/gone.wav"))
}

func TestLocalBlobStoreRejectsEscapes(t *testing.T) {
	store, err := NewLocalBlobStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "../etc/passwd")
	assert.Error(t, err)

	_, err = store.Get(context.Background(), "/etc/passwd")
	assert.Error(t, err)
}
