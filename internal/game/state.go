// Package game holds the state of one round and applies guesses to it.
package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/thruflo/spellbee/internal/puzzle"
	"github.com/zyedidia/generic/mapset"
)

// Commands typed at the guess prompt.
const (
	CommandExit   = "exit()"
	CommandGiveUp = "give_up()"
)

// Outcome is the result of evaluating one line of input.
type Outcome int

const (
	OutcomeRejected  Outcome = iota // not a solution
	OutcomeDuplicate                // a solution already found
	OutcomeAccepted                 // a newly found solution
	OutcomeExit                     // exit() typed
	OutcomeGiveUp                   // give_up() typed
)

// String returns a human-readable description of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeExit:
		return "exit"
	case OutcomeGiveUp:
		return "give up"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the round.
func (o Outcome) Terminal() bool {
	return o == OutcomeExit || o == OutcomeGiveUp
}

// State is one round of play. Only Evaluate mutates it, and only by
// appending to the guessed words.
type State struct {
	Puzzle    puzzle.Puzzle
	Solutions []string

	guessed     []string
	solutionSet mapset.Set[string]
	guessedSet  mapset.Set[string]
}

// NewState creates a round for p with the given solution set.
func NewState(p puzzle.Puzzle, solutions []string) *State {
	s := &State{
		Puzzle:      p,
		Solutions:   solutions,
		solutionSet: mapset.New[string](),
		guessedSet:  mapset.New[string](),
	}
	for _, w := range solutions {
		s.solutionSet.Put(w)
	}
	return s
}

// NewRound selects a seed word from words, derives its puzzle and solutions,
// and returns the starting state.
func NewRound(words []string, rng *rand.Rand) (*State, error) {
	word, err := puzzle.Select(words, rng)
	if err != nil {
		return nil, err
	}
	p, err := puzzle.New(word, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to build puzzle: %w", err)
	}
	return NewState(p, puzzle.Solutions(words, p.Pool(), p.Anchor)), nil
}

// Evaluate applies one normalized line of input.
func (s *State) Evaluate(guess string) Outcome {
	switch guess {
	case CommandExit:
		return OutcomeExit
	case CommandGiveUp:
		return OutcomeGiveUp
	}
	if !s.solutionSet.Has(guess) {
		return OutcomeRejected
	}
	if s.guessedSet.Has(guess) {
		return OutcomeDuplicate
	}
	s.guessedSet.Put(guess)
	s.guessed = append(s.guessed, guess)
	return OutcomeAccepted
}

// Guessed returns the accepted guesses in the order they were made.
func (s *State) Guessed() []string {
	return append([]string(nil), s.guessed...)
}

// Found returns the number of accepted guesses.
func (s *State) Found() int {
	return len(s.guessed)
}

// Total returns the size of the solution set.
func (s *State) Total() int {
	return len(s.Solutions)
}

// IsPangram reports whether word uses every letter of the round's pool.
func (s *State) IsPangram(word string) bool {
	return puzzle.IsPangram(word, s.Puzzle.Pool())
}
