// Package dictionary loads and normalizes newline-delimited word lists.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/thruflo/spellbee/internal/puzzle"
)

// DefaultMinLength is the shortest word kept by Parse.
const DefaultMinLength = 3

// LoadError reports a word source that could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load dictionary %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError checks if an error is a LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// Dictionary is an immutable list of normalized words in source order.
type Dictionary struct {
	words []string
	bytes int64
}

// Load reads the word list at path.
func Load(path string, minLen int) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	d, err := Parse(f, minLen)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if info, err := f.Stat(); err == nil {
		d.bytes = info.Size()
	}
	return d, nil
}

// Parse reads one word per line from r. Lines may be of any length. Each line
// is trimmed and lowercased; lines shorter than minLen characters are
// dropped. Duplicates are kept.
func Parse(r io.Reader, minLen int) (*Dictionary, error) {
	d := &Dictionary{}
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		d.bytes += int64(len(line))
		if word := puzzle.Normalize(line); utf8.RuneCountInString(word) >= minLen {
			d.words = append(d.words, word)
		}
		if errors.Is(err, io.EOF) {
			return d, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read word list: %w", err)
		}
	}
}

// New builds a Dictionary from already normalized words.
func New(words []string) *Dictionary {
	return &Dictionary{words: append([]string(nil), words...)}
}

// Words returns the word list. Callers must not modify it.
func (d *Dictionary) Words() []string {
	return d.words
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Stats summarizes a dictionary.
type Stats struct {
	Words      int
	Qualifying int
	Bytes      int64
}

// Stats counts the words and qualifying words in the dictionary.
func (d *Dictionary) Stats() Stats {
	return Stats{
		Words:      len(d.words),
		Qualifying: len(puzzle.Candidates(d.words)),
		Bytes:      d.bytes,
	}
}
