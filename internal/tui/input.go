package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/thruflo/spellbee/internal/puzzle"
)

// ErrInterrupted is returned when the player presses Ctrl+C at the prompt.
var ErrInterrupted = errors.New("input interrupted")

// Prompt is shown before each guess on interactive terminals.
const Prompt = "> "

// LineReader reads one normalized line of player input at a time.
// ReadLine blocks until a line is available and returns io.EOF at the end
// of input.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// ScanReader reads lines from any io.Reader, such as piped stdin. Lines may
// be of any length.
type ScanReader struct {
	r *bufio.Reader
}

// NewScanReader creates a ScanReader over r.
func NewScanReader(r io.Reader) *ScanReader {
	return &ScanReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next trimmed, lowercased line. A final line without
// a newline is returned before io.EOF.
func (r *ScanReader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return puzzle.Normalize(line), nil
}

// Close is a no-op.
func (r *ScanReader) Close() error {
	return nil
}

// ReadlineReader reads lines with line editing and in-session history.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader creates a ReadlineReader on the process terminal.
func NewReadlineReader() (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          Prompt,
		HistoryLimit:    200,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal input: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadLine returns the next trimmed, lowercased line. Ctrl+C yields
// ErrInterrupted and Ctrl+D yields io.EOF.
func (r *ReadlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	switch {
	case err == nil:
		return puzzle.Normalize(line), nil
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", io.EOF
	default:
		return "", fmt.Errorf("failed to read input: %w", err)
	}
}

// Close restores the terminal.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}
