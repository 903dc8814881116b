package eval

import (
	"coil/board"
	"coil/config"
)

// foodMultiplier bands, from weakest to strongest. The actual numeric
// multiplier is derived from cfg.ImmediateFoodBonus so deployments can retune
// the whole schedule by a single weight.
const (
	bandModest = 1
	bandHigh   = 4
	bandMax    = 1000
)

// foodUrgencyScore implements spec §4.3.1's piecewise multiplier schedule.
// It is keyed off the *post-move* state (ctx.JustAte, the evaluated agent's
// current health and distance to the nearest remaining food) rather than a
// static pre-move distance. The just-ate arm fires only when the caller
// sets ctx.JustAte; the search engines in this module build NodeContext
// with Depth alone, so within a search that arm does not fire.
func foodUrgencyScore(s board.Snapshot, agentIdx int, ctx NodeContext, cfg config.Config) float64 {
	a := s.Agents[agentIdx]
	if !a.Alive() {
		return 0
	}

	if a.Health == cfg.HealthMax && ctx.JustAte {
		return cfg.ImmediateFoodBonus * bandMax
	}

	dist, hasFood := nearestFoodDistance(s, a.Head())
	if !hasFood {
		return 0
	}

	if a.Health <= dist {
		// starvation imminent regardless of band: this agent will not
		// reach any food in time on its current course.
		return -cfg.ImmediateFoodBonus * bandMax
	}

	band := foodBand(s, agentIdx, dist, cfg)
	if !foodIsSafe(s, agentIdx, dist, cfg) && band > bandModest {
		band = downgradeBand(band)
	}
	return cfg.ImmediateFoodBonus * float64(band) * survivalUrgencyMultiplier(a.Health, cfg)
}

// survivalUrgencyMultiplier scales food urgency by how close the agent is
// to starving: it's 1.0 at or above cfg.SurvivalHealthThreshold, and ramps
// up linearly to cfg.SurvivalMaxMultiplier as health falls to zero, so the
// same food band is worth chasing harder the hungrier the agent already is.
func survivalUrgencyMultiplier(health int, cfg config.Config) float64 {
	if cfg.SurvivalHealthThreshold <= 0 || health >= cfg.SurvivalHealthThreshold {
		return 1.0
	}
	if health <= 0 {
		return cfg.SurvivalMaxMultiplier
	}
	deficit := float64(cfg.SurvivalHealthThreshold-health) / float64(cfg.SurvivalHealthThreshold)
	return 1.0 + deficit*(cfg.SurvivalMaxMultiplier-1.0)
}

func foodBand(s board.Snapshot, agentIdx, dist int, cfg config.Config) int {
	a := s.Agents[agentIdx]

	switch {
	case dist == 1:
		return bandMax
	case dist == 2:
		if a.Health < cfg.CriticalHealthThreshold {
			return bandMax
		}
		if foodDistanceAdvantage(s, agentIdx, dist) >= 3 {
			return bandHigh
		}
		return bandModest
	default: // dist >= 3
		if a.Health < cfg.CriticalHealthThreshold && dist <= 4 {
			return bandHigh
		}
		return bandModest
	}
}

func downgradeBand(band int) int {
	switch band {
	case bandMax:
		return bandHigh
	case bandHigh:
		return bandModest
	default:
		return bandModest
	}
}

// foodDistanceAdvantage returns agentIdx's distance advantage over the
// live opponent nearest to any food (an opponent closer to food is a
// smaller or negative advantage). Every live opponent counts; an
// opponent's health is not considered.
func foodDistanceAdvantage(s board.Snapshot, agentIdx, ourDist int) int {
	best := -1
	for i, o := range s.Agents {
		if i == agentIdx || !o.Alive() {
			continue
		}
		d, ok := nearestFoodDistance(s, o.Head())
		if !ok {
			continue
		}
		if best == -1 || d < best {
			best = d
		}
	}
	if best == -1 {
		return 0
	}
	return best - ourDist
}

// foodIsSafe implements the post-eating trap check: the agent must reach
// food no later than any opponent of equal or shorter length, and must
// retain at least two escape routes after the simulated eat. Strictly
// longer opponents are skipped whatever their health.
func foodIsSafe(s board.Snapshot, agentIdx, ourDist int, cfg config.Config) bool {
	a := s.Agents[agentIdx]
	for i, o := range s.Agents {
		if i == agentIdx || !o.Alive() {
			continue
		}
		if len(o.Body) > len(a.Body) {
			continue // strictly longer opponents don't threaten the race
		}
		d, ok := nearestFoodDistance(s, o.Head())
		if !ok {
			continue
		}
		if d < ourDist {
			return false
		}
	}

	next, ate := board.ApplySingleMove(s, agentIdx, headingTowardNearestFood(s, agentIdx), cfg.Rules())
	if !ate {
		return true // couldn't simulate the pickup; don't penalize speculatively
	}
	return len(board.LegalMoves(next, agentIdx)) >= 2
}

// headingTowardNearestFood returns whichever legal direction most reduces
// the Manhattan distance to the nearest food cell, used only to simulate
// the one-step-ahead trap check in foodIsSafe.
func headingTowardNearestFood(s board.Snapshot, agentIdx int) board.Direction {
	candidates := board.LegalMoves(s, agentIdx)
	if len(candidates) == 0 {
		return board.Up
	}
	a := s.Agents[agentIdx]
	best := candidates[0]
	bestDist := -1
	for _, d := range candidates {
		nd, ok := nearestFoodDistance(s, a.Head().Step(d))
		if !ok {
			continue
		}
		if bestDist == -1 || nd < bestDist {
			bestDist = nd
			best = d
		}
	}
	return best
}
