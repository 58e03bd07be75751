package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardle/solver/internal/game"
	"github.com/wardle/solver/internal/words"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := NewMemoryStore()

	dict := words.Dictionary{words.MustWord("ready"), words.MustWord("speed")}
	sess := NewSession(game.New(dict))
	require.NotEmpty(t, sess.ID)
	require.False(t, sess.CreatedAt.IsZero())

	_, err := st.Get(ctx, sess.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Save(ctx, sess))
	got, err := st.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	// IDs are unique across sessions
	other := NewSession(game.New(dict))
	assert.NotEqual(t, sess.ID, other.ID)
}
