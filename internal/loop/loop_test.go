package loop

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/spellbee/internal/game"
	"github.com/thruflo/spellbee/internal/testutil"
	"github.com/thruflo/spellbee/internal/tui"
)

type harness struct {
	state   *game.State
	display *testutil.RecordingDisplay
	input   *testutil.ScriptedInput
	sleeper *testutil.RecordingSleeper
	loop    *Loop
}

func newHarness(t *testing.T, clear bool, lines ...string) *harness {
	t.Helper()
	h := &harness{
		state:   testutil.ScenarioState(t),
		display: &testutil.RecordingDisplay{},
		input:   testutil.NewScriptedInput(lines...),
		sleeper: &testutil.RecordingSleeper{},
	}
	h.loop = New(Options{
		State:       h.state,
		Display:     h.display,
		Input:       h.input,
		ClearScreen: clear,
		Dwell:       1500 * time.Millisecond,
		Sleep:       h.sleeper.Sleep,
	})
	return h
}

func (h *harness) run(t *testing.T) Result {
	t.Helper()
	ctx, cancel := testutil.RoundContext(t)
	defer cancel()
	res, err := h.loop.Run(ctx)
	require.NoError(t, err)
	return res
}

func TestRun_Scenario(t *testing.T) {
	t.Parallel()

	h := newHarness(t, true, "cats", "cats", "dogs", "slap", game.CommandExit)
	res := h.run(t)

	assert.Equal(t, ExitReasonQuit, res.Reason)
	assert.Equal(t, 4, res.Guesses)
	assert.Equal(t, 1, res.Found)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, []string{"cats"}, h.state.Guessed())

	out := h.display.Output()
	assert.Contains(t, out, "Good job! cats was one of the words!")
	assert.Contains(t, out, "cats was already guessed. Try again.")
	assert.Contains(t, out, "I'm sorry. dogs was not one of the words!")
	assert.Contains(t, out, "I'm sorry. slap was not one of the words!")
	assert.True(t, strings.HasSuffix(out, tui.FarewellMessage()))

	// one pause per non-terminal guess
	assert.Len(t, h.sleeper.Pauses, 4)
	for _, p := range h.sleeper.Pauses {
		assert.Equal(t, 1500*time.Millisecond, p)
	}

	// initial render plus one render after every non-terminal guess
	assert.Equal(t, 5, strings.Count(out, "Your letters are:"))
	// render clears plus message clears
	assert.Equal(t, 9, h.display.Clears)
}

func TestRun_ExitImmediately(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false, game.CommandExit, "cats")
	res := h.run(t)

	assert.Equal(t, ExitReasonQuit, res.Reason)
	assert.Equal(t, 0, res.Guesses)
	assert.Empty(t, h.state.Guessed())
	assert.Empty(t, h.sleeper.Pauses)
	assert.Equal(t, 0, h.display.Clears)
	assert.Equal(t, 1, h.input.Reads, "nothing is read after exit()")
}

func TestRun_GiveUp(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false, "pact", game.CommandGiveUp)
	res := h.run(t)

	assert.Equal(t, ExitReasonGaveUp, res.Reason)
	assert.Equal(t, 1, res.Found)

	out := h.display.Output()
	assert.Contains(t, out, "Not bad. You got 1 out of 5.")
	assert.Contains(t, out, "cats, placets*, scalp, pact, cap")
	assert.True(t, strings.HasSuffix(out, tui.FarewellMessage()))
}

func TestRun_EndOfInput(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false, "cap")
	res := h.run(t)

	assert.Equal(t, ExitReasonEndOfInput, res.Reason)
	assert.Equal(t, 1, res.Found)
	assert.True(t, strings.HasSuffix(h.display.Output(), tui.FarewellMessage()))
}

func TestRun_Interrupted(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false)
	h.input.Err = tui.ErrInterrupted
	res := h.run(t)
	assert.Equal(t, ExitReasonEndOfInput, res.Reason)
}

func TestRun_InputError(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false, "cats")
	h.input.Err = errors.New("device gone")

	res, err := h.loop.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device gone")
	assert.Equal(t, 1, res.Found)
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false, "cats")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.loop.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, h.input.Reads)
}

func TestRun_ZeroDwellSkipsSleep(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false, "cats", game.CommandExit)
	h.loop.dwell = 0
	h.run(t)
	assert.Empty(t, h.sleeper.Pauses)
}

func TestRun_RepeatedRejectionLeavesStateAlone(t *testing.T) {
	t.Parallel()

	h := newHarness(t, false, "zebra", "zebra", game.CommandExit)
	h.run(t)

	out := h.display.Output()
	assert.Equal(t, 2, strings.Count(out, "I'm sorry. zebra was not one of the words!"))
	assert.Empty(t, h.state.Guessed())
}

func TestRun_LongLineIsRejected(t *testing.T) {
	t.Parallel()

	state := testutil.ScenarioState(t)
	display := &testutil.RecordingDisplay{}
	long := strings.Repeat("x", 70*1024)
	l := New(Options{
		State:   state,
		Display: display,
		Input:   tui.NewScanReader(strings.NewReader(testutil.Lines(long, "cats", game.CommandExit))),
		Sleep:   (&testutil.RecordingSleeper{}).Sleep,
	})

	ctx, cancel := testutil.RoundContext(t)
	defer cancel()
	res, err := l.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, ExitReasonQuit, res.Reason)
	assert.Equal(t, 2, res.Guesses)
	assert.Equal(t, 1, res.Found)
	out := display.Output()
	assert.Contains(t, out, "I'm sorry. xxx")
	assert.Contains(t, out, "Good job! cats was one of the words!")
	assert.NotContains(t, out, long)
}

func TestExitReasonString(t *testing.T) {
	assert.Equal(t, "quit", ExitReasonQuit.String())
	assert.Equal(t, "gave up", ExitReasonGaveUp.String())
	assert.Equal(t, "end of input", ExitReasonEndOfInput.String())
	assert.Equal(t, "unknown", ExitReasonUnknown.String())
}
