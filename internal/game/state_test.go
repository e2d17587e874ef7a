package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/spellbee/internal/puzzle"
)

var words = []string{"cats", "slap", "dogs", "placets", "scalp", "pact", "lest", "cap"}

func scenarioState(t *testing.T) *State {
	t.Helper()
	p, err := puzzle.FromLetters("caelpst")
	require.NoError(t, err)
	return NewState(p, puzzle.Solutions(words, p.Pool(), p.Anchor))
}

func TestEvaluate_Scenario(t *testing.T) {
	t.Parallel()

	s := scenarioState(t)
	require.Equal(t, []string{"cats", "placets", "scalp", "pact", "cap"}, s.Solutions)

	assert.Equal(t, OutcomeAccepted, s.Evaluate("cats"))
	assert.Equal(t, OutcomeDuplicate, s.Evaluate("cats"))
	assert.Equal(t, OutcomeRejected, s.Evaluate("dogs"))
	assert.Equal(t, OutcomeRejected, s.Evaluate("slap"))
	assert.Equal(t, []string{"cats"}, s.Guessed())

	assert.Equal(t, OutcomeExit, s.Evaluate(CommandExit))
	assert.Equal(t, []string{"cats"}, s.Guessed())
}

func TestEvaluate_RejectionIsIdempotent(t *testing.T) {
	t.Parallel()

	s := scenarioState(t)
	for i := 0; i < 3; i++ {
		assert.Equal(t, OutcomeRejected, s.Evaluate("zebra"))
	}
	assert.Empty(t, s.Guessed())
	assert.Equal(t, 0, s.Found())
}

func TestEvaluate_AcceptsOnce(t *testing.T) {
	t.Parallel()

	s := scenarioState(t)
	assert.Equal(t, OutcomeAccepted, s.Evaluate("pact"))
	assert.Equal(t, OutcomeAccepted, s.Evaluate("cap"))
	assert.Equal(t, OutcomeDuplicate, s.Evaluate("pact"))

	assert.Equal(t, []string{"pact", "cap"}, s.Guessed())
	assert.Equal(t, 2, s.Found())
	assert.Equal(t, 5, s.Total())
}

func TestEvaluate_GiveUpDoesNotMutate(t *testing.T) {
	t.Parallel()

	s := scenarioState(t)
	s.Evaluate("cats")
	assert.Equal(t, OutcomeGiveUp, s.Evaluate(CommandGiveUp))
	assert.Equal(t, []string{"cats"}, s.Guessed())
}

func TestEvaluate_GuessedSubsetOfSolutions(t *testing.T) {
	t.Parallel()

	s := scenarioState(t)
	for _, w := range append(words, "placets", "xyz", "") {
		s.Evaluate(w)
	}
	for _, g := range s.Guessed() {
		assert.Contains(t, s.Solutions, g)
	}
	assert.Equal(t, s.Total(), s.Found())
}

func TestGuessed_ReturnsCopy(t *testing.T) {
	s := scenarioState(t)
	s.Evaluate("cats")
	g := s.Guessed()
	g[0] = "dogs"
	assert.Equal(t, []string{"cats"}, s.Guessed())
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		name     string
		terminal bool
	}{
		{OutcomeRejected, "rejected", false},
		{OutcomeDuplicate, "duplicate", false},
		{OutcomeAccepted, "accepted", false},
		{OutcomeExit, "exit", true},
		{OutcomeGiveUp, "give up", true},
		{Outcome(99), "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.outcome.String())
			assert.Equal(t, tt.terminal, tt.outcome.Terminal())
		})
	}
}

func TestNewRound(t *testing.T) {
	t.Parallel()

	for seed := uint64(0); seed < 20; seed++ {
		s, err := NewRound(words, rand.New(rand.NewPCG(seed, 1)))
		require.NoError(t, err)

		assert.Equal(t, "placets", s.Puzzle.Word)
		assert.Len(t, s.Puzzle.Letters, puzzle.PoolSize)
		assert.Contains(t, s.Puzzle.Letters, s.Puzzle.Anchor)
		assert.Contains(t, s.Solutions, "placets")
		assert.True(t, s.IsPangram("placets"))
		assert.Empty(t, s.Guessed())
	}
}

func TestNewRound_NoQualifyingWords(t *testing.T) {
	t.Parallel()

	_, err := NewRound([]string{"cats", "dogs"}, rand.New(rand.NewPCG(1, 1)))
	assert.ErrorIs(t, err, puzzle.ErrNoQualifyingWords)
}
