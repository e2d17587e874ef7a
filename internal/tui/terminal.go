// Package tui draws the spellbee board on a line-oriented terminal and reads
// guesses from it.
package tui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// Terminal writes to the player's screen.
type Terminal struct {
	out   io.Writer
	fd    int
	isTTY bool
}

// NewTerminal creates a Terminal writing to out. Terminal detection and size
// queries only work when out is an *os.File.
func NewTerminal(out io.Writer) *Terminal {
	t := &Terminal{out: out, fd: -1}
	if f, ok := out.(*os.File); ok {
		t.fd = int(f.Fd())
		t.isTTY = term.IsTerminal(t.fd)
	}
	return t
}

// IsTerminal reports whether the output is an interactive terminal.
func (t *Terminal) IsTerminal() bool {
	return t.isTTY
}

// Width returns the terminal width, or DefaultWidth when unknown.
func (t *Terminal) Width() int {
	if !t.isTTY {
		return DefaultWidth
	}
	width, _, err := term.GetSize(t.fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// ANSI escape sequences
const (
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"
)

// Clear clears the screen and moves the cursor to the top left.
func (t *Terminal) Clear() {
	fmt.Fprint(t.out, ClearScreen+CursorHome)
}

// Write writes s as is.
func (t *Terminal) Write(s string) {
	fmt.Fprint(t.out, s)
}
