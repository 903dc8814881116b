package engine

import (
	"coil/board"
	"coil/config"
)

// quiescenceMaxPlies bounds the horizon extension from spec §4.6.1 so a
// persistently noisy line can't stall iterative deepening.
const quiescenceMaxPlies = 4

// quiescenceHeadRadius is the opponent-head proximity, in Manhattan
// distance, that counts as "noisy" on its own.
const quiescenceHeadRadius = 2

// quiescenceTightMoves is the legal-move count at or below which a
// position is noisy regardless of food or opponent proximity.
const quiescenceTightMoves = 2

// quiescence extends search past the nominal horizon when the position is
// noisy, per spec §4.6.1: a food-eating move is on offer, an opponent head
// is within quiescenceHeadRadius cells, or our agent is down to a couple
// of legal moves. Grounded on the teacher's quiescence-free but
// check-extending searchRootDepth (blunext-chess/engine/search.go), which
// refuses to trust a static evaluation at a tactically unstable node.
func (ts *twoAgentSearch) quiescence(s board.Snapshot, depth, ply, alpha, beta int) int {
	return ts.quiesce(s, ply, 0, alpha, beta, true)
}

func (ts *twoAgentSearch) quiesce(s board.Snapshot, ply, qPly, alpha, beta int, ourTurn bool) int {
	if ts.ctx.Stopped() || !s.Agents[ts.ourIdx].Alive() || !s.Agents[ts.oppIdx].Alive() {
		return ts.leafValue(s, ply)
	}

	standPat := ts.leafValue(s, ply)
	if qPly >= quiescenceMaxPlies || !isNoisy(s, ts.ourIdx, ts.oppIdx, ts.cfg) {
		return standPat
	}

	if ourTurn {
		moves := tacticalMoves(s, ts.ourIdx, ts.cfg)
		if len(moves) == 0 {
			return standPat
		}
		best := -infinityScore
		for _, dir := range moves {
			next, _ := board.ApplySingleMove(s, ts.ourIdx, dir, ts.cfg.Rules())
			val := ts.quiesce(next, ply+1, qPly+1, alpha, beta, false)
			if val > best {
				best = val
			}
			if val > alpha {
				alpha = val
			}
			if alpha >= beta {
				break
			}
		}
		return best
	}

	moves := tacticalMoves(s, ts.oppIdx, ts.cfg)
	if len(moves) == 0 {
		moves = []board.Direction{board.Up}
	}
	worst := infinityScore
	for _, dir := range moves {
		next, _ := board.ApplySingleMove(s, ts.oppIdx, dir, ts.cfg.Rules())
		resolved := board.AdvanceRound(next)
		val := ts.quiesce(resolved, ply+1, qPly+1, alpha, beta, true)
		if val < worst {
			worst = val
		}
		if val < beta {
			beta = val
		}
		if alpha >= beta {
			break
		}
	}
	return worst
}

// isNoisy reports whether s is tactically unstable for ourIdx: a food move
// is on offer, the opponent's head is close enough to threaten a head-to-
// head or a trap next round, or we're already down to very few outs.
func isNoisy(s board.Snapshot, ourIdx, oppIdx int, cfg config.Config) bool {
	moves := board.LegalMoves(s, ourIdx)
	if len(moves) <= quiescenceTightMoves {
		return true
	}
	for _, d := range moves {
		if _, ate := board.ApplySingleMove(s, ourIdx, d, cfg.Rules()); ate {
			return true
		}
	}
	if s.Agents[oppIdx].Alive() {
		ourHead := s.Agents[ourIdx].Head()
		oppHead := s.Agents[oppIdx].Head()
		if headDistance(ourHead, oppHead) <= quiescenceHeadRadius {
			return true
		}
	}
	return false
}

func headDistance(a, b board.Coordinate) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// tacticalMoves restricts agentIdx's legal moves to food-eating ones when
// any exist; otherwise every legal move is in play, mirroring how a
// capture-only quiescence search falls back to the full move list once
// there are no captures left to consider.
func tacticalMoves(s board.Snapshot, agentIdx int, cfg config.Config) []board.Direction {
	moves := board.LegalMoves(s, agentIdx)
	eating := make([]board.Direction, 0, len(moves))
	for _, d := range moves {
		if _, ate := board.ApplySingleMove(s, agentIdx, d, cfg.Rules()); ate {
			eating = append(eating, d)
		}
	}
	if len(eating) > 0 {
		return eating
	}
	return moves
}
