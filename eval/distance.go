package eval

import "coil/board"

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func manhattan(a, b board.Coordinate) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// nearestFoodDistance returns the Manhattan distance from c to the closest
// food cell, and false if no food exists on the board.
func nearestFoodDistance(s board.Snapshot, c board.Coordinate) (int, bool) {
	best := -1
	for _, f := range s.Food {
		d := manhattan(c, f)
		if best == -1 || d < best {
			best = d
		}
	}
	return best, best != -1
}

// distanceToWall returns the Chebyshev-style minimum distance from c to the
// nearest board edge.
func distanceToWall(s board.Snapshot, c board.Coordinate) int {
	d := c.X
	if v := s.Width - 1 - c.X; v < d {
		d = v
	}
	if v := c.Y; v < d {
		d = v
	}
	if v := s.Height - 1 - c.Y; v < d {
		d = v
	}
	return d
}

// distanceToCenter returns the Manhattan distance from c to the board's
// center cell.
func distanceToCenter(s board.Snapshot, c board.Coordinate) int {
	cx, cy := (s.Width-1)/2, (s.Height-1)/2
	return abs(c.X-cx) + abs(c.Y-cy)
}

// distanceToNearestCorner returns the Manhattan distance from c to whichever
// of the board's four corners is closest.
func distanceToNearestCorner(s board.Snapshot, c board.Coordinate) int {
	corners := [4]board.Coordinate{
		{X: 0, Y: 0},
		{X: s.Width - 1, Y: 0},
		{X: 0, Y: s.Height - 1},
		{X: s.Width - 1, Y: s.Height - 1},
	}
	best := manhattan(c, corners[0])
	for _, corner := range corners[1:] {
		if d := manhattan(c, corner); d < best {
			best = d
		}
	}
	return best
}
