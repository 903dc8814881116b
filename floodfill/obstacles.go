package floodfill

import "coil/board"

// permanentBlock marks a cell that never vacates (hazards).
const permanentBlock = 1 << 30

// ObstacleTable precomputes, for every cell, how many BFS rounds must pass
// before it's free to enter. A body segment at index i (0 = head) of an
// agent with body length L vacates after L-i rounds — the tail (i = L-1)
// frees up after a single round, the head cell itself only after L rounds,
// once the whole body has passed through it. Building this table once per
// evaluation turns every per-step BFS check into an O(1) array lookup
// instead of re-scanning every agent's body at every cell.
type ObstacleTable struct {
	width, height int
	vacateAt      []int
}

// BuildObstacleTable scans every live agent's body and every hazard cell
// once, recording the maximum vacate time seen per cell.
func BuildObstacleTable(s board.Snapshot) *ObstacleTable {
	t := &ObstacleTable{
		width:    s.Width,
		height:   s.Height,
		vacateAt: make([]int, s.Width*s.Height),
	}
	for _, a := range s.Agents {
		if !a.Alive() {
			continue
		}
		l := len(a.Body)
		for i, c := range a.Body {
			if !s.InBounds(c) {
				continue
			}
			v := l - i
			idx := t.index(c)
			if v > t.vacateAt[idx] {
				t.vacateAt[idx] = v
			}
		}
	}
	for _, h := range s.Hazards {
		if s.InBounds(h) {
			t.vacateAt[t.index(h)] = permanentBlock
		}
	}
	return t
}

func (t *ObstacleTable) index(c board.Coordinate) int {
	return c.Y*t.width + c.X
}

// BlockedAt reports whether c is still occupied at BFS depth (round) t.
// The check is strict '>' per spec §4.2: a cell frees up the round its
// vacate time is reached, not the round before.
func (t *ObstacleTable) BlockedAt(c board.Coordinate, t2 int) bool {
	return t.vacateAt[t.index(c)] > t2
}
