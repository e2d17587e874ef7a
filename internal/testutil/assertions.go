package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/spellbee/internal/game"
	"github.com/thruflo/spellbee/internal/puzzle"
)

// AssertRoundInvariants asserts the pool has PoolSize letters, the anchor is
// one of them, the seed word solves the round and every solution is sound.
func AssertRoundInvariants(t *testing.T, st *game.State) {
	t.Helper()
	require.NotNil(t, st, "state is nil")

	p := st.Puzzle
	assert.Len(t, p.Letters, puzzle.PoolSize, "pool size")
	assert.Contains(t, p.Letters, p.Anchor, "anchor not in pool")
	if p.Word != "" {
		assert.Contains(t, st.Solutions, p.Word, "seed word missing from solutions")
	}
	for _, w := range st.Solutions {
		assert.True(t, p.Matches(w), "solution %q breaks the pool rule", w)
	}
}

// AssertGuessedSubset asserts every guessed word is a solution and appears once.
func AssertGuessedSubset(t *testing.T, st *game.State) {
	t.Helper()

	seen := make(map[string]bool)
	for _, g := range st.Guessed() {
		assert.Contains(t, st.Solutions, g, "guessed word is not a solution")
		assert.False(t, seen[g], "%q guessed twice", g)
		seen[g] = true
	}
}
