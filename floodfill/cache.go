package floodfill

import "coil/board"

// Cache amortizes flood-fill work across a single evaluator invocation: the
// obstacle table is built once per snapshot, and each agent's reachable-cell
// count and the territory partition are computed at most once no matter how
// many evaluator sub-scores ask for them.
type Cache struct {
	snapshot  board.Snapshot
	obstacles *ObstacleTable
	maxDepth  int

	reachable map[int]int
	territory map[board.Coordinate]int
	haveTerr  bool
}

// NewCache builds the obstacle table for s and prepares a cache that answers
// flood-fill queries bounded to maxDepth rounds.
func NewCache(s board.Snapshot, maxDepth int) *Cache {
	return &Cache{
		snapshot:  s,
		obstacles: BuildObstacleTable(s),
		maxDepth:  maxDepth,
		reachable: make(map[int]int),
	}
}

// ReachableFor returns the number of cells agent agentIdx can reach within
// the cache's depth bound, computing and memoizing it on first use.
func (c *Cache) ReachableFor(agentIdx int) int {
	if n, ok := c.reachable[agentIdx]; ok {
		return n
	}
	a := c.snapshot.Agents[agentIdx]
	n := 0
	if a.Alive() {
		n = ReachableCells(c.obstacles, a.Head(), c.maxDepth)
	}
	c.reachable[agentIdx] = n
	return n
}

// Territory returns the simultaneous multi-source partition of the board
// among all live agents, computing it once per cache.
func (c *Cache) Territory() map[board.Coordinate]int {
	if !c.haveTerr {
		c.territory = TerritoryPartition(c.snapshot, c.obstacles, c.maxDepth)
		c.haveTerr = true
	}
	return c.territory
}

// TerritoryCount returns how many cells the partition assigns to agentIdx.
func (c *Cache) TerritoryCount(agentIdx int) int {
	n := 0
	for _, owner := range c.Territory() {
		if owner == agentIdx {
			n++
		}
	}
	return n
}

// Obstacles exposes the underlying obstacle table for callers that need
// direct BlockedAt queries rather than an aggregate count.
func (c *Cache) Obstacles() *ObstacleTable {
	return c.obstacles
}
