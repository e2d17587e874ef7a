package puzzle

import (
	"math/bits"
	"sort"
	"strings"
)

// PoolSize is the number of distinct letters in every puzzle.
const PoolSize = 7

// LetterSet is a bitmask over the letters a-z.
// Any character outside that range sets otherBit, so a word containing one
// can never be a subset of a pool built from letters.
type LetterSet uint32

const otherBit LetterSet = 1 << 26

// Normalize trims surrounding whitespace and lowercases s. Dictionary words
// and guesses are both compared in this form.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MakeLetterSet returns the set of distinct characters in word.
// The word is expected to be lowercase already.
func MakeLetterSet(word string) LetterSet {
	var set LetterSet
	for _, r := range word {
		set |= bitFor(r)
	}
	return set
}

func bitFor(r rune) LetterSet {
	if r >= 'a' && r <= 'z' {
		return 1 << (r - 'a')
	}
	return otherBit
}

// Has reports whether r is in the set.
func (s LetterSet) Has(r rune) bool {
	b := bitFor(r)
	return b != otherBit && s&b != 0
}

// SubsetOf reports whether every member of s is also a member of pool.
func (s LetterSet) SubsetOf(pool LetterSet) bool {
	return s&pool == s
}

// Len returns the number of letters in the set, not counting otherBit.
func (s LetterSet) Len() int {
	return bits.OnesCount32(uint32(s &^ otherBit))
}

// Letters returns the members of the set in alphabetical order.
func (s LetterSet) Letters() []rune {
	var letters []rune
	for i := 0; i < 26; i++ {
		if s&(1<<i) != 0 {
			letters = append(letters, rune('a'+i))
		}
	}
	return letters
}

func (s LetterSet) String() string {
	return string(s.Letters())
}

// Distinct returns the distinct characters of word, sorted.
func Distinct(word string) []rune {
	seen := make(map[rune]struct{}, len(word))
	var chars []rune
	for _, r := range word {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// IsQualifying reports whether word can seed a puzzle: it is made only of
// the letters a-z and has exactly PoolSize distinct letters.
func IsQualifying(word string) bool {
	set := MakeLetterSet(word)
	return set&otherBit == 0 && set.Len() == PoolSize
}

// IsPangram reports whether word uses every letter of pool.
func IsPangram(word string, pool LetterSet) bool {
	return MakeLetterSet(word) == pool
}
