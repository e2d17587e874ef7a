package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/thruflo/spellbee/internal/game"
)

// HelpLine reminds the player of the two commands.
const HelpLine = "Please enter your guess, " + game.CommandExit + " to exit or " + game.CommandGiveUp + " to end the game."

// Theme holds the styles used when color is enabled.
type Theme struct {
	Anchor lipgloss.Style
	Letter lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style
	Help   lipgloss.Style
}

// DefaultTheme returns the color theme.
func DefaultTheme() Theme {
	return Theme{
		Anchor: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Letter: lipgloss.NewStyle().Bold(true),
		Good:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:   lipgloss.NewStyle().Faint(true),
	}
}

// BoardOptions controls rendering.
type BoardOptions struct {
	// Width wraps the guessed-word list. Zero means DefaultWidth.
	Width int
	// Sorted lays the outer letters out alphabetically instead of in the
	// round's shuffled order.
	Sorted bool
	// Color enables Theme styling. Without it output is plain text.
	Color bool
	Theme Theme
}

func (o BoardOptions) width() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

func (o BoardOptions) style(st lipgloss.Style, s string) string {
	if !o.Color {
		return s
	}
	return st.Render(s)
}

// RenderBoard renders the round: the honeycomb of letters with the anchor in
// the middle, the found/total counts, the found words and the help line.
// It does not modify s.
func RenderBoard(s *game.State, opts BoardOptions) string {
	outer := append([]rune(nil), s.Puzzle.Outer...)
	if opts.Sorted {
		sort.Slice(outer, func(i, j int) bool { return outer[i] < outer[j] })
	}
	cells := make([]string, len(outer))
	for i, r := range outer {
		cells[i] = opts.style(opts.Theme.Letter, string(r))
	}
	for len(cells) < 6 {
		cells = append(cells, " ")
	}
	anchor := opts.style(opts.Theme.Anchor, strings.ToUpper(string(s.Puzzle.Anchor)))

	var b strings.Builder
	b.WriteString("Your letters are:\n\n")
	fmt.Fprintf(&b, " %s %s\n%s %s %s\n %s %s\n\n",
		cells[0], cells[1], cells[2], anchor, cells[3], cells[4], cells[5])

	fmt.Fprintf(&b, "So far you have guessed %s of %s possible words:\n",
		humanize.Comma(int64(s.Found())), humanize.Comma(int64(s.Total())))
	guessed := s.Guessed()
	if len(guessed) == 0 {
		b.WriteString("(none yet)\n")
	}
	for _, line := range WrapList(guessed, opts.width()) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(opts.style(opts.Theme.Help, HelpLine))
	b.WriteString("\n")
	return b.String()
}
