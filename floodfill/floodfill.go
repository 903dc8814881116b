package floodfill

import "coil/board"

// ReachableCells runs a single-source BFS from start against an obstacle
// table, counting every cell reachable within maxDepth rounds. The
// vacate-time model means a cell unreachable at round t may open up at
// round t+1, so the frontier is expanded depth by depth rather than with
// a plain visited-set flood fill.
func ReachableCells(t *ObstacleTable, start board.Coordinate, maxDepth int) int {
	visited := make([]bool, t.width*t.height)
	visited[t.index(start)] = true
	count := 1

	type queued struct {
		c     board.Coordinate
		depth int
	}
	queue := make([]queued, 0, t.width*t.height)
	queue = append(queue, queued{start, 0})

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth >= maxDepth {
			continue
		}
		next := cur.depth + 1
		for _, d := range board.AllDirections {
			nc := cur.c.Step(d)
			if nc.X < 0 || nc.Y < 0 || nc.X >= t.width || nc.Y >= t.height {
				continue
			}
			idx := t.index(nc)
			if visited[idx] {
				continue
			}
			// Earliest arrival wins: if a cell is still occupied at the
			// depth its shortest path would reach it, it's treated as
			// unreachable for this source rather than retried via a
			// longer, waiting path.
			if t.BlockedAt(nc, next) {
				continue
			}
			visited[idx] = true
			count++
			queue = append(queue, queued{nc, next})
		}
	}
	return count
}
