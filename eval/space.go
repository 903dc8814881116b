package eval

import "coil/floodfill"

// spaceSafetyMargin is the cushion above an agent's own length its reachable
// space must clear before Space stops penalizing it.
const spaceSafetyMargin = 2

// missingCellPenalty scales the linear penalty applied per cell an agent's
// reachable space falls short of length+margin.
const missingCellPenalty = 20

// spaceScore rewards open room to maneuver: once reachable space clears
// length+margin the raw count is used (more room is strictly better, with
// diminishing relevance left to the mixer weight); short of that threshold
// every missing cell costs a flat penalty so a nearly-trapped agent scores
// sharply worse than a merely-tight one.
func spaceScore(cache *floodfill.Cache, agentIdx, length int) int {
	reachable := cache.ReachableFor(agentIdx)
	headroom := reachable - (length + spaceSafetyMargin)
	if headroom >= 0 {
		return reachable
	}
	return headroom * missingCellPenalty
}
