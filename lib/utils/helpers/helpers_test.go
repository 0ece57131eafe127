package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeFileName(t *testing.T) {
	require.Equal(t, "lab_results_2024.txt", SafeFileName("lab results 2024.txt"))
	require.Equal(t, "passwd", SafeFileName("../../etc/passwd"))
	require.Equal(t, "file", SafeFileName(" .. "))
}

func TestIsContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	require.False(t, IsContextDone(ctx))
	cancel()
	require.True(t, IsContextDone(ctx))
}
