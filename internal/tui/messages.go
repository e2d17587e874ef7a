package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/thruflo/spellbee/internal/game"
	"github.com/thruflo/spellbee/internal/puzzle"
)

// MaxEcho is the longest guess repeated back in a rejection.
const MaxEcho = 40

// Farewell is printed when a round ends.
const Farewell = "Thank you for playing the game! Hope to see you soon!"

// OutcomeMessage describes the result of a non-terminal guess.
func OutcomeMessage(s *game.State, guess string, outcome game.Outcome, opts BoardOptions) string {
	switch outcome {
	case game.OutcomeAccepted:
		msg := fmt.Sprintf("Good job! %s was one of the words!", guess)
		if s.IsPangram(guess) {
			msg += " That's a pangram!"
		}
		return opts.style(opts.Theme.Good, msg)
	case game.OutcomeDuplicate:
		return fmt.Sprintf("%s was already guessed. Try again.", guess)
	default:
		return opts.style(opts.Theme.Bad, fmt.Sprintf("I'm sorry. %s was not one of the words! (%s)", Truncate(guess, MaxEcho), rejectReason(s, guess)))
	}
}

func rejectReason(s *game.State, guess string) string {
	set := puzzle.MakeLetterSet(guess)
	switch {
	case !set.SubsetOf(s.Puzzle.Pool()):
		return "uses letters outside the pool"
	case !set.Has(s.Puzzle.Anchor):
		return fmt.Sprintf("missing the center letter %c", s.Puzzle.Anchor)
	default:
		return "not in the word list"
	}
}

// GiveUpMessage summarizes the round and lists every solution, marking
// pangrams with an asterisk.
func GiveUpMessage(s *game.State, opts BoardOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Not bad. You got %s out of %s.\n\nThe complete list of words was:\n",
		humanize.Comma(int64(s.Found())), humanize.Comma(int64(s.Total())))

	words := make([]string, len(s.Solutions))
	for i, w := range s.Solutions {
		if s.IsPangram(w) {
			w += "*"
		}
		words[i] = w
	}
	for _, line := range WrapList(words, opts.width()) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// FarewellMessage is printed after exit() or give_up().
func FarewellMessage() string {
	return "\n" + Farewell + "\n"
}
