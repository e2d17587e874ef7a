package puzzle

import "sort"

// Solutions returns every word of words whose letters are a subset of pool
// and which contains anchor. Dictionary order is preserved.
func Solutions(words []string, pool LetterSet, anchor rune) []string {
	var out []string
	for _, w := range words {
		set := MakeLetterSet(w)
		if set.SubsetOf(pool) && set.Has(anchor) {
			out = append(out, w)
		}
	}
	return out
}

type entry struct {
	pos  int
	word string
}

// Index groups a word list by letter signature so a puzzle can be solved by
// looking up the 64 anchored subsets of its pool instead of scanning every word.
type Index struct {
	groups map[LetterSet][]entry
	size   int
}

// NewIndex builds an Index over words. Words containing characters outside
// a-z, or more than PoolSize distinct letters, can never solve a puzzle and
// are left out.
func NewIndex(words []string) *Index {
	idx := &Index{groups: make(map[LetterSet][]entry)}
	for i, w := range words {
		set := MakeLetterSet(w)
		if set&otherBit != 0 || set.Len() > PoolSize {
			continue
		}
		idx.groups[set] = append(idx.groups[set], entry{pos: i, word: w})
		idx.size++
	}
	return idx
}

// Len returns the number of indexed words.
func (idx *Index) Len() int {
	return idx.size
}

// Solutions returns the same words, in the same order, as Solutions on the
// indexed word list.
func (idx *Index) Solutions(pool LetterSet, anchor rune) []string {
	if !pool.Has(anchor) {
		return nil
	}
	bit := bitFor(anchor)
	var found []entry
	for sub := pool; sub != 0; sub = (sub - 1) & pool {
		if sub&bit == 0 {
			continue
		}
		found = append(found, idx.groups[sub]...)
	}
	if len(found) == 0 {
		return nil
	}
	sort.Slice(found, func(i, j int) bool { return found[i].pos < found[j].pos })
	out := make([]string, len(found))
	for i, e := range found {
		out[i] = e.word
	}
	return out
}
