package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thruflo/spellbee/internal/game"
	"github.com/thruflo/spellbee/internal/puzzle"
)

// SampleWords returns a small dictionary. "placets" is its only word with
// seven distinct letters. Returns a new slice each time to prevent test
// interference.
func SampleWords() []string {
	return []string{"cats", "slap", "dogs", "placets", "scalp", "pact", "lest", "cap"}
}

// SampleDictionary is SampleWords as a word file, with the mixed case and
// short lines a real word list contains.
var SampleDictionary = "Cats\nslap\nDOGS\nplacets\n  scalp\npact\nlest\ncap\nab\n"

// ScenarioSolutions are the solutions of ScenarioPuzzle over SampleWords.
func ScenarioSolutions() []string {
	return []string{"cats", "placets", "scalp", "pact", "cap"}
}

// ScenarioPuzzle returns the puzzle with pool a, c, e, l, p, s, t and anchor c.
func ScenarioPuzzle(t *testing.T) puzzle.Puzzle {
	t.Helper()
	p, err := puzzle.FromLetters("caelpst")
	require.NoError(t, err)
	p.Word = "placets"
	return p
}

// ScenarioState returns a fresh round for ScenarioPuzzle over SampleWords.
func ScenarioState(t *testing.T) *game.State {
	t.Helper()
	p := ScenarioPuzzle(t)
	return game.NewState(p, puzzle.Solutions(SampleWords(), p.Pool(), p.Anchor))
}

// Lines joins input lines the way a player would type them.
func Lines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
