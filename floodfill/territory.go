package floodfill

import "coil/board"

// claimant identifies which agent is contesting ownership of a cell during
// a territory partition, carrying just enough state (length, canonical
// index) to resolve same-round ties.
type claimant struct {
	agentIdx int
	length   int
}

// TerritoryPartition runs a simultaneous multi-source BFS from every live
// agent's head, assigning each reachable cell to whichever agent's frontier
// claims it first. Ties within the same round are broken in favor of the
// longer snake, then the lower agent index, matching the spec's
// length-then-canonical-index tie-break (spec §4.2, property #5).
//
// The result maps board cell -> owning agent index; a cell never reached by
// any agent within maxDepth is absent from the map.
func TerritoryPartition(s board.Snapshot, t *ObstacleTable, maxDepth int) map[board.Coordinate]int {
	owner := make(map[board.Coordinate]int, t.width*t.height)
	ownerDepth := make(map[board.Coordinate]int, t.width*t.height)
	ownerClaimant := make(map[board.Coordinate]claimant, t.width*t.height)

	heads := make(map[board.Coordinate]bool)
	for i, a := range s.Agents {
		if !a.Alive() {
			continue
		}
		cl := claimant{agentIdx: i, length: len(a.Body)}
		for _, cell := range a.Body {
			settle(owner, ownerDepth, ownerClaimant, cell, cl, 0)
		}
		heads[a.Head()] = true
	}
	frontier := make(map[board.Coordinate]claimant, len(heads))
	for c := range heads {
		if ownerDepth[c] == 0 {
			frontier[c] = ownerClaimant[c]
		}
	}

	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		candidates := make(map[board.Coordinate]bool)
		for cell, cl := range frontier {
			if owner[cell] != cl.agentIdx {
				continue // lost this cell's tie earlier; doesn't expand from it
			}
			for _, d := range board.AllDirections {
				nc := cell.Step(d)
				if nc.X < 0 || nc.Y < 0 || nc.X >= t.width || nc.Y >= t.height {
					continue
				}
				if t.BlockedAt(nc, depth+1) {
					continue
				}
				settle(owner, ownerDepth, ownerClaimant, nc, cl, depth+1)
				candidates[nc] = true
			}
		}
		next := make(map[board.Coordinate]claimant, len(candidates))
		for cell := range candidates {
			if ownerDepth[cell] == depth+1 {
				next[cell] = ownerClaimant[cell]
			}
		}
		frontier = next
	}

	return owner
}

// settle records a claim on cell by cl arriving at round depth, resolving
// contested claims against whatever currently holds the cell.
func settle(owner map[board.Coordinate]int, ownerDepth map[board.Coordinate]int, ownerClaimant map[board.Coordinate]claimant, cell board.Coordinate, cl claimant, depth int) {
	existingDepth, seen := ownerDepth[cell]
	if !seen || depth < existingDepth {
		owner[cell] = cl.agentIdx
		ownerDepth[cell] = depth
		ownerClaimant[cell] = cl
		return
	}
	if depth > existingDepth {
		return
	}

	cur := ownerClaimant[cell]
	if cl.agentIdx == cur.agentIdx {
		return
	}
	if cl.length > cur.length || (cl.length == cur.length && cl.agentIdx < cur.agentIdx) {
		owner[cell] = cl.agentIdx
		ownerClaimant[cell] = cl
	}
}
