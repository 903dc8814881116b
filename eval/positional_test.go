package eval

import (
	"testing"

	"coil/board"
	"coil/config"

	"github.com/stretchr/testify/assert"
)

func TestWallPenalty_ZeroAwayFromWall(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{Width: 11, Height: 11}

	assert.Equal(t, 0.0, wallPenalty(s, board.Coordinate{5, 5}, cfg))
}

func TestWallPenalty_CornerIncursConfiguredPenalty(t *testing.T) {
	// Property #9: distance-to-nearest-wall = 0 incurs the configured penalty.
	cfg := config.Default()
	s := board.Snapshot{Width: 11, Height: 11}

	got := wallPenalty(s, board.Coordinate{0, 0}, cfg)

	assert.Equal(t, -cfg.WallPenaltyBase, got)
}

func TestCornerPenalty_ScaledDownAtCriticalHealth(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{Width: 11, Height: 11}
	healthy := board.Agent{Health: cfg.HealthMax, Body: []board.Coordinate{{0, 0}}}
	starving := board.Agent{Health: cfg.CriticalHealthThreshold - 1, Body: []board.Coordinate{{0, 0}}}

	healthyPenalty := cornerPenalty(s, healthy, cfg)
	starvingPenalty := cornerPenalty(s, starving, cfg)

	assert.Less(t, healthyPenalty, 0.0)
	assert.Greater(t, starvingPenalty, healthyPenalty, "a starving agent is penalized less for corner risk")
}

func TestCenterBias_HighestAtExactCenter(t *testing.T) {
	cfg := config.Default()
	s := board.Snapshot{Width: 11, Height: 11}

	center := centerBias(s, board.Coordinate{5, 5}, cfg)
	edge := centerBias(s, board.Coordinate{0, 5}, cfg)

	assert.Greater(t, center, edge)
}
