package eval

import (
	"testing"

	"coil/board"
	"coil/config"
	"coil/floodfill"

	"github.com/stretchr/testify/assert"
)

func TestAttackScore_HeadToHeadBonusWhenStrictlyLonger(t *testing.T) {
	s := board.Snapshot{
		Width: 11, Height: 11,
		Agents: []board.Agent{
			{ID: "us", Health: 100, Length: 4, Body: []board.Coordinate{{5, 5}, {5, 4}, {5, 3}, {5, 2}}},
			{ID: "them", Health: 100, Length: 2, Body: []board.Coordinate{{5, 6}, {5, 7}}},
		},
	}
	cache := floodfill.NewCache(s, 20)
	cfg := config.Default()

	assert.Greater(t, attackScore(s, 0, cache, cfg), 0)
}

func TestAttackScore_NoBonusWhenShorter(t *testing.T) {
	s := board.Snapshot{
		Width: 11, Height: 11,
		Agents: []board.Agent{
			{ID: "us", Health: 100, Length: 2, Body: []board.Coordinate{{5, 5}, {5, 4}}},
			{ID: "them", Health: 100, Length: 4, Body: []board.Coordinate{{5, 6}, {5, 7}, {5, 8}, {5, 9}}},
		},
	}
	cache := floodfill.NewCache(s, 20)
	cfg := config.Default()

	assert.Equal(t, 0, attackScore(s, 0, cache, cfg))
}

func TestEscapeRoutePenalty_SuppressedOnJustAte(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{
		Width: 5, Height: 5,
		Agents: []board.Agent{
			{ID: "boxed", Health: 100, Length: 3, Body: []board.Coordinate{{0, 0}, {1, 0}, {1, 1}}},
		},
	}

	assert.Equal(t, 0, escapeRoutePenalty(s, 0, true, cfg))
}

func TestEscapeRoutePenalty_PenalizesBelowMinimum(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{
		Width: 5, Height: 5,
		Agents: []board.Agent{
			{ID: "boxed", Health: 100, Length: 3, Body: []board.Coordinate{{0, 0}, {1, 0}, {1, 1}}},
		},
	}

	assert.Less(t, escapeRoutePenalty(s, 0, false, cfg), 0)
}
