package eval

import "coil/floodfill"

// territoryScale is the fixed-point scale the floor(own/free * SCALE)
// contract in spec §4.3 is expressed against.
const territoryScale = 100

// territoryScore returns floor(own_cells / claimed_cells * territoryScale)
// from the cache's simultaneous-BFS partition. claimed_cells is every cell
// the partition assigns to some agent, body cells included; the denominator
// is not the board's free-cell count, so cells no agent reaches within the
// cache's depth bound do not lower the score.
func territoryScore(cache *floodfill.Cache, agentIdx int) int {
	total := len(cache.Territory())
	if total == 0 {
		return 0
	}
	own := cache.TerritoryCount(agentIdx)
	return (own * territoryScale) / total
}
