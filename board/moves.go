package board

// occupied returns the set of cells blocked for move-legality purposes: the
// body of every live agent excluding that agent's own tail cell (a tail
// vacates on the next step, so it is never an obstacle to a single-step
// legal-move check) plus every hazard cell.
func occupied(s Snapshot) map[Coordinate]bool {
	blocked := make(map[Coordinate]bool, s.Width*s.Height/4+1)
	for _, a := range s.Agents {
		if !a.Alive() {
			continue
		}
		for i := 0; i < len(a.Body)-1; i++ {
			blocked[a.Body[i]] = true
		}
	}
	for _, h := range s.Hazards {
		blocked[h] = true
	}
	return blocked
}

// LegalMoves returns the directions available to agentIdx in canonical
// order (Up, Down, Left, Right). A direction is legal iff the resulting
// head cell is in-bounds, is not the agent's own neck, and is not occupied
// by any live agent's body (excluding tails, which vacate this step).
func LegalMoves(s Snapshot, agentIdx int) []Direction {
	if agentIdx < 0 || agentIdx >= len(s.Agents) {
		return nil
	}
	agent := s.Agents[agentIdx]
	if !agent.Alive() {
		return nil
	}
	head := agent.Head()
	neck, hasNeck := agent.Neck()
	blocked := occupied(s)

	var legal []Direction
	for _, d := range AllDirections {
		next := head.Step(d)
		if !s.InBounds(next) {
			continue
		}
		if hasNeck && next == neck {
			continue
		}
		if blocked[next] {
			continue
		}
		legal = append(legal, d)
	}
	return legal
}
