// Package testutil provides shared test utilities for spellbee.
//
// # Fixtures
//
// The fixtures.go file provides sample data for testing:
//
//   - SampleWords() - a small dictionary whose only qualifying word is "placets"
//   - SampleDictionary - the same words as newline-delimited text
//   - ScenarioPuzzle(t) - pool a, c, e, l, p, s, t with anchor c
//   - ScenarioState(t) - a game.State for ScenarioPuzzle over SampleWords
//
// # Fakes
//
// The fakes.go file provides collaborators for the interaction loop:
//
//   - ScriptedInput - a tui.LineReader replaying fixed lines, then io.EOF
//   - RecordingDisplay - a loop.Display capturing writes and clears
//   - RecordingSleeper - records requested dwell pauses without sleeping
//
// # Environment Helpers
//
// The env.go file provides test environment setup:
//
//   - SetupTestDir(t) - creates a temp directory with a .spellbee config and word list
//   - WriteTestFile(t, base, path, content) - writes a file in test dir
//
// # Assertions
//
//   - AssertRoundInvariants(t, st) - pool size, anchor membership, solution soundness
//   - AssertGuessedSubset(t, st) - every guessed word is a solution, none repeated
package testutil
