// Package loop runs one interactive round of spellbee.
//
// Each turn the loop clears the screen, renders the board, blocks for one
// line of input and applies it to the game state. Non-terminal guesses print
// an outcome message and pause for the dwell time before the next render.
// The round ends on exit(), give_up() or the end of input.
package loop
