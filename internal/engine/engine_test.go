package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"taxengine/internal/rates"
)

func newTestEngine(t *testing.T, opts ...Option) Engine {
	t.Helper()
	table, err := rates.Load()
	require.NoError(t, err)
	return New(table, opts...)
}
