package eval

import (
	"testing"

	"coil/board"
	"coil/config"
	"coil/floodfill"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_DeadAgentGetsSentinelInTuple(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{
		Width: 11, Height: 11,
		Agents: []board.Agent{
			{ID: "dead", Health: 0, Eliminated: true, Body: []board.Coordinate{{1, 1}}},
			{ID: "alive", Health: 100, Length: 1, Body: []board.Coordinate{{5, 5}}},
		},
	}
	cache := floodfill.NewCache(s, cfg.IDAPOSMaxLocalityDistance*2)

	tuple := Evaluate(s, cache, cfg, NodeContext{})

	assert.Equal(t, ScoreDead, tuple[0])
	assert.NotEqual(t, ScoreDead, tuple[1])
}

func TestEvaluate_TemporalDiscountShrinksDistantScores(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{
		Width: 11, Height: 11,
		Food: []board.Coordinate{{6, 5}},
		Agents: []board.Agent{
			{ID: "us", Health: 100, Length: 1, Body: []board.Coordinate{{5, 5}}},
		},
	}
	cache := floodfill.NewCache(s, cfg.IDAPOSMaxLocalityDistance*2)

	shallow := Evaluate(s, cache, cfg, NodeContext{Depth: 0})
	deep := Evaluate(s, cache, cfg, NodeContext{Depth: 10})

	assert.Less(t, deep[0], shallow[0])
}

func TestEvaluate_StarvationOverrideFavorsAdjacentFood(t *testing.T) {
	// Scenario D's shape: a starving agent should score a distance-1 food
	// far above a healthier positional consideration like corner risk.
	cfg := config.Default()
	nearFood := board.Snapshot{
		Width: 11, Height: 11,
		Food: []board.Coordinate{{8, 0}},
		Agents: []board.Agent{
			{ID: "us", Health: 8, Length: 1, Body: []board.Coordinate{{9, 0}}},
		},
	}
	farFood := board.Snapshot{
		Width: 11, Height: 11,
		Food: []board.Coordinate{{9, 3}},
		Agents: []board.Agent{
			{ID: "us", Health: 8, Length: 1, Body: []board.Coordinate{{9, 0}}},
		},
	}
	cacheNear := floodfill.NewCache(nearFood, 20)
	cacheFar := floodfill.NewCache(farFood, 20)

	scoreNear := Evaluate(nearFood, cacheNear, cfg, NodeContext{})
	scoreFar := Evaluate(farFood, cacheFar, cfg, NodeContext{})

	assert.Greater(t, scoreNear[0], scoreFar[0])
}
