package testutil

import (
	"io"
	"strings"
	"time"
)

// ScriptedInput replays lines and then returns Err, or io.EOF if Err is nil.
type ScriptedInput struct {
	lines  []string
	Err    error
	Reads  int
	Closed bool
}

// NewScriptedInput creates a ScriptedInput for lines.
func NewScriptedInput(lines ...string) *ScriptedInput {
	return &ScriptedInput{lines: lines}
}

// ReadLine returns the next scripted line.
func (s *ScriptedInput) ReadLine() (string, error) {
	s.Reads++
	if len(s.lines) == 0 {
		if s.Err != nil {
			return "", s.Err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// Close marks the input closed.
func (s *ScriptedInput) Close() error {
	s.Closed = true
	return nil
}

// RecordingDisplay captures everything written to it.
type RecordingDisplay struct {
	Writes []string
	Clears int
}

// Clear records a screen clear.
func (d *RecordingDisplay) Clear() {
	d.Clears++
	d.Writes = append(d.Writes, "<clear>")
}

// Write records s.
func (d *RecordingDisplay) Write(s string) {
	d.Writes = append(d.Writes, s)
}

// Output returns all writes joined, with clears shown as "<clear>".
func (d *RecordingDisplay) Output() string {
	return strings.Join(d.Writes, "")
}

// RecordingSleeper records pause requests instead of sleeping.
type RecordingSleeper struct {
	Pauses []time.Duration
}

// Sleep records d.
func (s *RecordingSleeper) Sleep(d time.Duration) {
	s.Pauses = append(s.Pauses, d)
}
