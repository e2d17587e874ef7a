// Package puzzle picks a seed word from a dictionary, derives its letter pool
// and anchor letter, and computes the words that solve it.
package puzzle

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"unicode"
)

// ErrNoQualifyingWords is returned when a dictionary holds no word with
// exactly PoolSize distinct letters.
var ErrNoQualifyingWords = errors.New("dictionary contains no word with 7 distinct letters")

// ErrNotQualifying is returned when a puzzle is seeded with a word that does
// not have exactly PoolSize distinct letters.
var ErrNotQualifying = errors.New("word does not have 7 distinct letters")

// Puzzle is the letter pool for one round.
type Puzzle struct {
	// Word is the seed word. Empty when the puzzle was built from letters.
	Word string
	// Letters is the pool in alphabetical order.
	Letters []rune
	// Anchor is the letter every solution must contain.
	Anchor rune
	// Outer holds the six non-anchor letters in display order.
	Outer []rune

	pool LetterSet
}

// Pool returns the letter pool as a set.
func (p Puzzle) Pool() LetterSet {
	return p.pool
}

// Matches reports whether word uses only pool letters and contains the anchor.
func (p Puzzle) Matches(word string) bool {
	set := MakeLetterSet(word)
	return set.SubsetOf(p.pool) && set.Has(p.Anchor)
}

// Candidates returns the qualifying words of words, in order.
func Candidates(words []string) []string {
	var out []string
	for _, w := range words {
		if IsQualifying(w) {
			out = append(out, w)
		}
	}
	return out
}

// Select picks a qualifying word uniformly at random.
func Select(words []string, rng *rand.Rand) (string, error) {
	candidates := Candidates(words)
	if len(candidates) == 0 {
		return "", ErrNoQualifyingWords
	}
	return candidates[rng.IntN(len(candidates))], nil
}

// New derives the letter pool of word and draws the anchor uniformly from it.
// The outer letters are shuffled once here, so re-rendering a round never
// moves them.
func New(word string, rng *rand.Rand) (Puzzle, error) {
	if !IsQualifying(word) {
		return Puzzle{}, fmt.Errorf("%w: %q", ErrNotQualifying, word)
	}
	pool := MakeLetterSet(word)
	letters := pool.Letters()
	anchor := letters[rng.IntN(len(letters))]
	p := newPuzzle(pool, anchor)
	p.Word = word
	rng.Shuffle(len(p.Outer), func(i, j int) {
		p.Outer[i], p.Outer[j] = p.Outer[j], p.Outer[i]
	})
	return p, nil
}

// FromLetters builds a puzzle from exactly PoolSize distinct letters.
// The first letter is the anchor. Whitespace is ignored and case is folded.
func FromLetters(input string) (Puzzle, error) {
	var letters []rune
	for _, r := range input {
		switch {
		case unicode.IsSpace(r):
		case r >= 'a' && r <= 'z':
			letters = append(letters, r)
		case r >= 'A' && r <= 'Z':
			letters = append(letters, unicode.ToLower(r))
		default:
			return Puzzle{}, fmt.Errorf("input contains disallowed letter %q", r)
		}
	}
	if len(letters) != PoolSize {
		return Puzzle{}, fmt.Errorf("got %d letters; expected %d", len(letters), PoolSize)
	}
	var pool LetterSet
	for _, r := range letters {
		if pool.Has(r) {
			return Puzzle{}, fmt.Errorf("input contains duplicate letter %q", r)
		}
		pool |= bitFor(r)
	}
	return newPuzzle(pool, letters[0]), nil
}

func newPuzzle(pool LetterSet, anchor rune) Puzzle {
	letters := pool.Letters()
	outer := make([]rune, 0, len(letters)-1)
	for _, r := range letters {
		if r != anchor {
			outer = append(outer, r)
		}
	}
	return Puzzle{
		Letters: letters,
		Anchor:  anchor,
		Outer:   outer,
		pool:    pool,
	}
}
