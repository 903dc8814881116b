package eval

import (
	"testing"

	"coil/board"
	"coil/config"

	"github.com/stretchr/testify/assert"
)

func TestFoodUrgencyScore_JustAteAtFullHealthGetsMaxMultiplier(t *testing.T) {
	// Property #10 / Scenario D's underlying rule: distance-1 food at
	// HEALTH_MAX still receives the maximum multiplier via the just-ate arm.
	cfg := config.Default()
	s := board.Snapshot{
		Width: 11, Height: 11,
		Agents: []board.Agent{
			{ID: "us", Health: cfg.HealthMax, Length: 3, Body: []board.Coordinate{{5, 6}, {5, 5}, {5, 4}}},
		},
	}

	got := foodUrgencyScore(s, 0, NodeContext{JustAte: true}, cfg)

	assert.Equal(t, cfg.ImmediateFoodBonus*bandMax, got)
}

func TestFoodUrgencyScore_Distance1AlwaysMax(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{
		Width: 11, Height: 11,
		Food: []board.Coordinate{{9, 1}},
		Agents: []board.Agent{
			{ID: "us", Health: 90, Length: 1, Body: []board.Coordinate{{9, 0}}},
		},
	}

	got := foodUrgencyScore(s, 0, NodeContext{}, cfg)

	assert.Equal(t, cfg.ImmediateFoodBonus*bandMax, got)
}

func TestFoodUrgencyScore_StarvationImminentIsNegative(t *testing.T) {
	// Scenario D: health 8, distance-1 food dominates, but a distant food
	// the agent can't reach should score as an imminent-starvation penalty
	// when it's the only option.
	cfg := config.Default()
	s := board.Snapshot{
		Width: 11, Height: 11,
		Food: []board.Coordinate{{9, 5}}, // distance 5, health 3 can't make it
		Agents: []board.Agent{
			{ID: "us", Health: 3, Length: 1, Body: []board.Coordinate{{9, 0}}},
		},
	}

	got := foodUrgencyScore(s, 0, NodeContext{}, cfg)

	assert.Less(t, got, 0.0)
}

func TestFoodUrgencyScore_DeadAgentScoresZero(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{
		Width: 11, Height: 11,
		Agents: []board.Agent{
			{ID: "dead", Health: 0, Eliminated: true, Body: []board.Coordinate{{1, 1}}},
		},
	}

	assert.Equal(t, 0.0, foodUrgencyScore(s, 0, NodeContext{}, cfg))
}

func TestFoodIsSafe_LongerOpponentRaceDoesNotBlock(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{
		Width: 11, Height: 11,
		Food: []board.Coordinate{{5, 6}},
		Agents: []board.Agent{
			{ID: "us", Health: 60, Length: 3, Body: []board.Coordinate{{5, 5}, {5, 4}, {5, 3}}},
			{ID: "longer", Health: 100, Length: 6, Body: []board.Coordinate{
				{5, 8}, {5, 9}, {5, 10}, {4, 10}, {3, 10}, {2, 10},
			}},
		},
	}

	assert.True(t, foodIsSafe(s, 0, 1, cfg))
}
