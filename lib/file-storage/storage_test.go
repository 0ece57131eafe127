package filestorage

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNotConfigured(t *testing.T) {
	storage := New(nil, "fntp-documents")
	ctx := context.Background()
	require.True(t, errors.Is(storage.PutObject(ctx, "k", []byte("x"), ""), ErrNotConfigured))
	_, err := storage.GetObject(ctx, "k")
	require.True(t, errors.Is(err, ErrNotConfigured))
	require.True(t, errors.Is(storage.RemoveObject(ctx, "k"), ErrNotConfigured))
	require.True(t, errors.Is(storage.MakeBucket(ctx), ErrNotConfigured))
}
