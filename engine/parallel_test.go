package engine

import (
	"testing"
	"time"

	"coil/board"
	"coil/config"

	"github.com/stretchr/testify/assert"
)

func TestParallelChooseMove_ReturnsLegalMoveOnOpenBoard(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{
		Width: 11, Height: 11,
		Food: []board.Coordinate{{6, 5}},
		Agents: []board.Agent{
			{ID: "us", Health: 80, Length: 3, Body: []board.Coordinate{{5, 5}, {4, 5}, {3, 5}}},
			{ID: "them", Health: 80, Length: 3, Body: []board.Coordinate{{0, 0}, {0, 1}, {0, 2}}},
		},
	}

	dir, err := ParallelChooseMove(s, 0, cfg, time.Now().Add(200*time.Millisecond), 4, nil)

	assert.NoError(t, err)
	legal := board.LegalMoves(s, 0)
	assert.Contains(t, legal, dir)
}

func TestParallelChooseMove_SingleWorkerDelegatesToChooseMove(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{
		Width: 11, Height: 11,
		Agents: []board.Agent{
			{ID: "us", Health: 80, Length: 1, Body: []board.Coordinate{{5, 5}}},
		},
	}

	dir, err := ParallelChooseMove(s, 0, cfg, time.Now().Add(100*time.Millisecond), 1, nil)

	assert.NoError(t, err)
	legal := board.LegalMoves(s, 0)
	assert.Contains(t, legal, dir)
}

func TestParallelChooseMove_RejectsExpiredDeadline(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{
		Width: 11, Height: 11,
		Agents: []board.Agent{
			{ID: "us", Health: 80, Length: 1, Body: []board.Coordinate{{5, 5}}},
		},
	}

	_, err := ParallelChooseMove(s, 0, cfg, time.Now().Add(-time.Second), 4, nil)

	assert.ErrorIs(t, err, ErrDeadlineExpired)
}

func TestEvaluateRootMove_PrefersFoodAdjacentMove(t *testing.T) {
	// Right lands one step from food (bandMax); Left lands three steps
	// away (at best a modest band) — the 1000x gap between those bands
	// dwarfs every other scoring term, so this doesn't depend on the
	// exact interplay between them.
	cfg := config.Default()
	s := board.Snapshot{
		Width: 11, Height: 11,
		Food: []board.Coordinate{{7, 5}},
		Agents: []board.Agent{
			{ID: "us", Health: 80, Length: 1, Body: []board.Coordinate{{5, 5}}},
		},
	}
	tt := NewTranspositionTable(256)
	ctx := freshContext(time.Second)

	towardFood, _ := evaluateRootMove(s, 0, board.Right, 1, -infinityScore, infinityScore, ctx, tt, NewMoveOrderer(cfg), cfg)
	awayFromFood, _ := evaluateRootMove(s, 0, board.Left, 1, -infinityScore, infinityScore, ctx, tt, NewMoveOrderer(cfg), cfg)

	assert.Greater(t, towardFood, awayFromFood)
}
