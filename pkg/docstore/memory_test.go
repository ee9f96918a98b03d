package docstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	m := NewMemory()

	_, err := m.Get(ctx, "travaux", "w1")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set(ctx, "travaux", "w1", map[string]any{"avancement": 50.0}))
	require.NoError(t, m.Set(ctx, "travaux", "w1", map[string]any{"budget": 10.0}))

	doc, err := m.Get(ctx, "travaux", "w1")
	require.NoError(t, err)
	// Set overwrites, it does not merge.
	require.Equal(t, map[string]any{"budget": 10.0}, doc.Fields)
	require.Len(t, m.Sets(), 2)

	m.Put("travaux", "w0", map[string]any{})
	docs, err := m.List(ctx, "travaux")
	require.NoError(t, err)
	require.Equal(t, "w0", docs[0].ID)
	require.Len(t, docs, 2)

	boom := errors.New("unavailable")
	m.FailOn("travaux", boom)
	require.ErrorIs(t, m.Set(ctx, "travaux", "w2", nil), boom)
	m.FailOn("travaux", nil)
	require.NoError(t, m.Set(ctx, "travaux", "w2", nil))
}
