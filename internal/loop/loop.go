package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/thruflo/spellbee/internal/game"
	"github.com/thruflo/spellbee/internal/logging"
	"github.com/thruflo/spellbee/internal/tui"
)

// ExitReason indicates why the loop stopped.
type ExitReason int

const (
	ExitReasonUnknown    ExitReason = iota
	ExitReasonQuit                  // exit() typed
	ExitReasonGaveUp                // give_up() typed
	ExitReasonEndOfInput            // input closed or interrupted
)

// String returns a human-readable description of the exit reason.
func (r ExitReason) String() string {
	switch r {
	case ExitReasonQuit:
		return "quit"
	case ExitReasonGaveUp:
		return "gave up"
	case ExitReasonEndOfInput:
		return "end of input"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a round.
type Result struct {
	Reason  ExitReason
	Guesses int // lines evaluated, commands excluded
	Found   int
	Total   int
}

// Display is where the loop draws.
type Display interface {
	Clear()
	Write(s string)
}

// Sleeper pauses between a guess and the next render.
type Sleeper func(time.Duration)

// Options holds the collaborators for a Loop.
type Options struct {
	State   *game.State
	Display Display
	Input   tui.LineReader
	Board   tui.BoardOptions
	// ClearScreen clears the display before every render.
	ClearScreen bool
	// Dwell is how long an outcome message stays up. Zero skips the pause.
	Dwell time.Duration
	// Sleep defaults to time.Sleep.
	Sleep  Sleeper
	Logger *logging.Logger
}

// Loop drives one round.
type Loop struct {
	state   *game.State
	display Display
	input   tui.LineReader
	board   tui.BoardOptions
	clear   bool
	dwell   time.Duration
	sleep   Sleeper
	log     *logging.Logger
}

// New creates a Loop from opts.
func New(opts Options) *Loop {
	l := &Loop{
		state:   opts.State,
		display: opts.Display,
		input:   opts.Input,
		board:   opts.Board,
		clear:   opts.ClearScreen,
		dwell:   opts.Dwell,
		sleep:   opts.Sleep,
		log:     opts.Logger,
	}
	if l.sleep == nil {
		l.sleep = time.Sleep
	}
	if l.log == nil {
		l.log = logging.Default()
	}
	return l
}

// Run plays until a terminal command or the end of input. The context is
// checked between turns; a blocked read is not interrupted by it.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	res := Result{Total: l.state.Total()}

	for {
		if err := ctx.Err(); err != nil {
			res.Found = l.state.Found()
			return res, err
		}

		l.render()

		guess, err := l.input.ReadLine()
		if err != nil {
			res.Found = l.state.Found()
			if errors.Is(err, io.EOF) || errors.Is(err, tui.ErrInterrupted) {
				l.log.Debug("input ended", "reason", err)
				l.display.Write(tui.FarewellMessage())
				res.Reason = ExitReasonEndOfInput
				return res, nil
			}
			return res, fmt.Errorf("failed to read guess: %w", err)
		}

		outcome := l.state.Evaluate(guess)
		l.log.Debug("guess evaluated", "guess", guess, "outcome", outcome.String())

		switch outcome {
		case game.OutcomeExit:
			l.display.Write(tui.FarewellMessage())
			res.Reason = ExitReasonQuit
			res.Found = l.state.Found()
			return res, nil
		case game.OutcomeGiveUp:
			l.display.Write("\n" + tui.GiveUpMessage(l.state, l.board))
			l.display.Write(tui.FarewellMessage())
			res.Reason = ExitReasonGaveUp
			res.Found = l.state.Found()
			return res, nil
		}

		res.Guesses++
		if l.clear {
			l.display.Clear()
		}
		l.display.Write(tui.OutcomeMessage(l.state, guess, outcome, l.board) + "\n")
		if l.dwell > 0 {
			l.sleep(l.dwell)
		}
	}
}

func (l *Loop) render() {
	if l.clear {
		l.display.Clear()
	}
	l.display.Write("\n" + tui.RenderBoard(l.state, l.board))
}
