package engine

import (
	"testing"
	"time"

	"coil/board"
	"coil/config"

	"github.com/stretchr/testify/assert"
)

func TestChooseMove_RejectsOutOfRangeAgent(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{Width: 11, Height: 11, Agents: []board.Agent{
		{ID: "us", Health: 80, Length: 1, Body: []board.Coordinate{{5, 5}}},
	}}

	dir, err := ChooseMove(s, 5, cfg, time.Now().Add(time.Second), nil)

	assert.ErrorIs(t, err, ErrInvalidSnapshot)
	assert.Equal(t, board.Up, dir)
}

func TestChooseMove_RejectsDeadAgent(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{Width: 11, Height: 11, Agents: []board.Agent{
		{ID: "us", Health: 0, Eliminated: true, Body: []board.Coordinate{{5, 5}}},
	}}

	_, err := ChooseMove(s, 0, cfg, time.Now().Add(time.Second), nil)

	assert.ErrorIs(t, err, ErrInternalConsistency)
}

func TestChooseMove_ReportsExpiredDeadline(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{Width: 11, Height: 11, Agents: []board.Agent{
		{ID: "us", Health: 80, Length: 1, Body: []board.Coordinate{{5, 5}}},
	}}

	dir, err := ChooseMove(s, 0, cfg, time.Now().Add(-time.Second), nil)

	assert.ErrorIs(t, err, ErrDeadlineExpired)
	legal := board.LegalMoves(s, 0)
	assert.Contains(t, legal, dir)
}

func TestChooseMove_ReportsNoLegalMoveWhenTrapped(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{Width: 3, Height: 3, Agents: []board.Agent{
		{ID: "us", Health: 80, Length: 6, Body: []board.Coordinate{
			{1, 1}, {1, 0}, {0, 1}, {1, 2}, {2, 1}, {0, 0},
		}},
	}}

	_, err := ChooseMove(s, 0, cfg, time.Now().Add(time.Second), nil)

	assert.ErrorIs(t, err, ErrNoLegalMove)
}

func TestChooseMove_ReturnsLegalMoveOnOpenBoard(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{
		Width: 11, Height: 11,
		Food: []board.Coordinate{{6, 5}},
		Agents: []board.Agent{
			{ID: "us", Health: 80, Length: 3, Body: []board.Coordinate{{5, 5}, {4, 5}, {3, 5}}},
			{ID: "them", Health: 80, Length: 3, Body: []board.Coordinate{{0, 0}, {0, 1}, {0, 2}}},
		},
	}

	dir, err := ChooseMove(s, 0, cfg, time.Now().Add(200*time.Millisecond), nil)

	assert.NoError(t, err)
	legal := board.LegalMoves(s, 0)
	assert.Contains(t, legal, dir)
}

func TestContainsDirection(t *testing.T) {
	moves := []board.Direction{board.Up, board.Left}
	assert.True(t, containsDirection(moves, board.Left))
	assert.False(t, containsDirection(moves, board.Right))
}

func TestEstimateIterationCost_GrowsWithDepthAndActiveCount(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{
		Width: 19, Height: 19,
		Agents: []board.Agent{
			{ID: "us", Health: 80, Length: 1, Body: []board.Coordinate{{9, 9}}},
			{ID: "near", Health: 80, Length: 1, Body: []board.Coordinate{{9, 10}}},
		},
	}

	shallow := estimateIterationCost(s, 0, 1, cfg)
	deep := estimateIterationCost(s, 0, 4, cfg)

	assert.Less(t, shallow, deep)
}
