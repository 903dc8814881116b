package eval

import (
	"coil/board"
	"coil/config"
	"coil/floodfill"
)

const (
	attackH2HBonus  = 50
	attackTrapBonus = 75
)

// attackScore rewards positions that threaten opponents: being strictly
// longer with a head within cfg.AdversarialEntrapmentDistance (a potential
// head-on-head kill), or cornering an opponent into a pocket smaller than
// its body plus cfg.AdversarialBodyThreatBuffer. Reuses the shared
// flood-fill cache so scoring every opponent costs no extra BFS passes.
func attackScore(s board.Snapshot, agentIdx int, cache *floodfill.Cache, cfg config.Config) int {
	a := s.Agents[agentIdx]
	if !a.Alive() {
		return 0
	}

	total := 0
	for i, o := range s.Agents {
		if i == agentIdx || !o.Alive() {
			continue
		}
		if len(a.Body) > len(o.Body) && manhattan(a.Head(), o.Head()) <= cfg.AdversarialEntrapmentDistance {
			total += attackH2HBonus
		}
		if cache.ReachableFor(i) < len(o.Body)+cfg.AdversarialBodyThreatBuffer {
			total += attackTrapBonus
		}
	}
	return total
}

// escapeRoutePenalty penalizes a position with too few legal continuations,
// the trap-avoidance threshold from spec §6. Suppressed on the turn the
// agent just ate: the food cache used to build this snapshot is stale for
// escape-route purposes immediately after a pickup.
func escapeRoutePenalty(s board.Snapshot, agentIdx int, justAte bool, cfg config.Config) int {
	if justAte {
		return 0
	}
	routes := len(board.LegalMoves(s, agentIdx))
	if routes >= cfg.EscapeRouteMin {
		return 0
	}
	return (routes - cfg.EscapeRouteMin) * 100
}
