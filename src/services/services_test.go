package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tallydb/src/engine"
	"tallydb/src/entities"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store, err := engine.Open(engine.Options{
		DataDir:       t.TempDir(),
		SchemaVersion: entities.SchemaVersion,
	}, entities.Collections())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewManager(store, zap.NewNop().Sugar())
}
