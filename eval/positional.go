package eval

import (
	"coil/board"
	"coil/config"
)

// wallPenalty applies a graded penalty as the distance to the nearest wall
// drops below the configured safe distance: -base/(dist+1), so the penalty
// grows sharply only once the agent is actually hugging an edge.
func wallPenalty(s board.Snapshot, head board.Coordinate, cfg config.Config) float64 {
	d := distanceToWall(s, head)
	if d >= cfg.SafeDistanceFromWall {
		return 0
	}
	return -cfg.WallPenaltyBase / float64(d+1)
}

// centerBias rewards proximity to the board's center cell, inversely
// proportional to distance so it never produces a negative contribution.
func centerBias(s board.Snapshot, head board.Coordinate, cfg config.Config) float64 {
	d := distanceToCenter(s, head)
	return cfg.CenterBiasMultiplier / float64(d+1)
}

// cornerPenalty discourages lingering near corners, but scales down at
// critical health so a starving agent will accept corner risk when that's
// where the food is.
func cornerPenalty(s board.Snapshot, a board.Agent, cfg config.Config) float64 {
	d := distanceToNearestCorner(s, a.Head())
	if d > cfg.CornerDangerThreshold {
		return 0
	}
	penalty := -cfg.CornerDangerBase / float64(d+1)
	if a.Health < cfg.CriticalHealthThreshold {
		penalty *= 0.25
	}
	return penalty
}
