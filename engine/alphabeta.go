package engine

import (
	"coil/board"
	"coil/config"
	"coil/eval"
	"coil/floodfill"
)

// twoAgentSearch holds the read-only context one two-agent alpha-beta
// search shares across its recursion: the TT (shared across workers), the
// per-worker move orderer, and tuning. Grounded on the teacher's negamax-shaped alphaBeta
// (blunext-chess/engine/search.go), generalized from chess's single-mover-
// per-ply turn structure to this domain's two-movers-then-resolve round
// structure (spec §4.6).
type twoAgentSearch struct {
	ourIdx, oppIdx int
	tt             *TranspositionTable
	mo             *MoveOrderer
	cfg            config.Config
	ctx            *SearchContext
	cacheDepth     int
}

// AlphaBeta runs the two-agent negamax-shaped search described in spec
// §4.6 with a full window and returns the best direction for ourIdx along
// with its score from ourIdx's perspective. depth counts full rounds
// remaining to search.
func AlphaBeta(s board.Snapshot, ourIdx, oppIdx, depth int, ctx *SearchContext, tt *TranspositionTable, mo *MoveOrderer, cfg config.Config) (score int, bestDir board.Direction) {
	return AlphaBetaWindow(s, ourIdx, oppIdx, depth, -infinityScore, infinityScore, ctx, tt, mo, cfg)
}

// AlphaBetaWindow runs the same search with caller-supplied alpha/beta
// bounds, so an iterative-deepening driver can re-enter the root with a
// narrow aspiration window (spec §4.6) and widen it itself on fail-high or
// fail-low without this function knowing about iterations at all.
func AlphaBetaWindow(s board.Snapshot, ourIdx, oppIdx, depth, alpha, beta int, ctx *SearchContext, tt *TranspositionTable, mo *MoveOrderer, cfg config.Config) (score int, bestDir board.Direction) {
	search := &twoAgentSearch{
		ourIdx: ourIdx, oppIdx: oppIdx,
		tt: tt, mo: mo, cfg: cfg, ctx: ctx,
		cacheDepth: cfg.IDAPOSMaxLocalityDistance * 2,
	}
	return search.searchOurMove(s, depth, 0, alpha, beta)
}

func (ts *twoAgentSearch) isTwoAgentTerminal(s board.Snapshot, depth int) bool {
	return depth <= 0 || !s.Agents[ts.ourIdx].Alive() || !s.Agents[ts.oppIdx].Alive()
}

func (ts *twoAgentSearch) leafValue(s board.Snapshot, ply int) int {
	cache := floodfill.NewCache(s, ts.cacheDepth)
	tuple := eval.Evaluate(s, cache, ts.cfg, eval.NodeContext{Depth: ply})
	return tuple[ts.ourIdx]
}

// searchOurMove is the maximizing half of one round: our agent picks the
// direction that maximizes the value after the opponent replies.
func (ts *twoAgentSearch) searchOurMove(s board.Snapshot, depth, ply, alpha, beta int) (int, board.Direction) {
	if ts.ctx.Tick() || ts.isTwoAgentTerminal(s, depth) {
		return ts.quiescence(s, depth, ply, alpha, beta), board.Up
	}

	fp := s.Fingerprint()
	probe := ts.tt.Probe(fp, depth, alpha, beta)
	if probe.Kind == Hit {
		return probe.Score, probe.Move
	}
	hintMove, hasHint := board.Direction(0), false
	if probe.Kind == Hint {
		hintMove, hasHint = probe.Move, true
	}

	moves := board.LegalMoves(s, ts.ourIdx)
	if len(moves) == 0 {
		return ts.leafValue(s, ply), board.Up
	}
	ordered := ts.mo.Order(moves, ply, s.Agents[ts.ourIdx].Head(), hintMove, hasHint)

	origAlpha := alpha
	best := -infinityScore
	var bestDir board.Direction

	origin := s.Agents[ts.ourIdx].Head()
	for _, dir := range ordered {
		next, _ := board.ApplySingleMove(s, ts.ourIdx, dir, ts.cfg.Rules())
		val := ts.searchOppMove(next, depth, ply+1, alpha, beta)
		if val > best {
			best = val
			bestDir = dir
		}
		if val > alpha {
			alpha = val
		}
		if alpha >= beta {
			ts.mo.StoreKiller(ply, dir)
			ts.mo.UpdateHistory(origin, dir, depth)
			break
		}
		ts.mo.PenalizeHistory(origin, dir)
	}

	bound := BoundExact
	switch {
	case best <= origAlpha:
		bound = BoundUpper
	case best >= beta:
		bound = BoundLower
	}
	ts.tt.Store(fp, best, depth, bound, bestDir, true)

	return best, bestDir
}

// searchOppMove is the minimizing half: the opponent picks the direction
// that minimizes our value, after which the round resolves and depth
// decrements.
func (ts *twoAgentSearch) searchOppMove(s board.Snapshot, depth, ply, alpha, beta int) int {
	if ts.ctx.Tick() || ts.isTwoAgentTerminal(s, depth) {
		return ts.quiescence(s, depth, ply, alpha, beta)
	}

	moves := board.LegalMoves(s, ts.oppIdx)
	if len(moves) == 0 {
		moves = []board.Direction{board.Up}
	}
	ordered := ts.mo.Order(moves, ply, s.Agents[ts.oppIdx].Head(), board.Direction(0), false)

	origin := s.Agents[ts.oppIdx].Head()
	worst := infinityScore
	for _, dir := range ordered {
		next, _ := board.ApplySingleMove(s, ts.oppIdx, dir, ts.cfg.Rules())
		resolved := board.AdvanceRound(next)
		val, _ := ts.searchOurMove(resolved, depth-1, ply+1, alpha, beta)
		if val < worst {
			worst = val
		}
		if val < beta {
			beta = val
		}
		if alpha >= beta {
			ts.mo.StoreKiller(ply, dir)
			ts.mo.UpdateHistory(origin, dir, depth)
			break
		}
		ts.mo.PenalizeHistory(origin, dir)
	}
	return worst
}

const infinityScore = 1 << 30
