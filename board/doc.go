// Package board defines the immutable snapshot model for the move-decision
// core: coordinates, agents, the board snapshot itself, legal-move
// generation, and the simulation primitives search branches use to advance
// the game one agent, or one full round, at a time.
package board
