package engine

import (
	"sort"

	"coil/board"
	"coil/config"
	"coil/eval"
	"coil/floodfill"
)

// activeAgents returns the agents MaxN actually searches over: ourIdx plus
// any live opponent whose head is within a depth-scaled radius, per spec
// §4.7's IDAPOS locality masking. The radius grows with remaining search
// depth (a deeper look-ahead gives a distant agent more rounds to close
// in) and is capped by cfg.IDAPOSMaxLocalityDistance so it never searches
// the whole board. Agents outside the radius are not modeled as movers
// this round — they're left exactly where they are, a deliberate
// approximation documented in DESIGN.md.
//
// The result is rotated so ourIdx is always first: rotation order is an
// arbitrary-but-fixed tree-construction convention (spec §4.7's "agent 0"
// is whichever agent's perspective the search is run for), and keeping
// our own agent first lets the root-move parallel dispatch in
// parallel.go fix our move and hand the remainder straight to the normal
// rotation logic.
func activeAgents(s board.Snapshot, ourIdx, depth int, cfg config.Config) []int {
	radius := int(cfg.IDAPOSHeadDistanceMultiplier * float64(depth))
	if radius > cfg.IDAPOSMaxLocalityDistance {
		radius = cfg.IDAPOSMaxLocalityDistance
	}
	ourHead := s.Agents[ourIdx].Head()

	var active []int
	for _, idx := range s.LiveAgents() {
		if idx == ourIdx || headDistance(ourHead, s.Agents[idx].Head()) <= radius {
			active = append(active, idx)
		}
	}
	sort.Ints(active)

	pos := indexOfAgent(active, ourIdx)
	if pos <= 0 {
		return active
	}
	rotated := make([]int, 0, len(active))
	rotated = append(rotated, active[pos:]...)
	rotated = append(rotated, active[:pos]...)
	return rotated
}

func indexOfAgent(agents []int, idx int) int {
	for i, a := range agents {
		if a == idx {
			return i
		}
	}
	return -1
}

// MaxN chooses ourIdx's move by searching the N-agent game tree described
// in spec §4.7 with a full window and a fresh, throwaway set of per-agent
// move orderers. Most callers want searches to persist killer/history
// learning across iterative-deepening depths instead (spec §4.5); those
// callers should use MaxNWindow directly with their own movers map.
func MaxN(s board.Snapshot, ourIdx, depth int, ctx *SearchContext, tt *TranspositionTable, cfg config.Config) (score int, bestDir board.Direction) {
	score, bestDir, _ = MaxNWindow(s, ourIdx, depth, -infinityScore, infinityScore, ctx, tt, cfg, make(map[int]*MoveOrderer))
	return score, bestDir
}

// MaxNWindow is MaxN's window- and orderer-aware counterpart. alpha/beta
// let a caller re-enter the search with a narrow aspiration window (spec
// §4.6); movers is a persisted set of per-agent MoveOrderers the caller
// keeps across iterative-deepening depths and ages with NextIteration
// between them (spec §4.5), rather than rebuilding from scratch every
// depth. pruned reports whether the result came from the two-agent
// alpha-beta delegate, the only path that actually narrows on alpha/beta —
// the N-agent rounds below always search exhaustively, so a caller's
// aspiration retry only makes sense when pruned is true.
func MaxNWindow(s board.Snapshot, ourIdx, depth, alpha, beta int, ctx *SearchContext, tt *TranspositionTable, cfg config.Config, movers map[int]*MoveOrderer) (score int, bestDir board.Direction, pruned bool) {
	if !s.Agents[ourIdx].Alive() {
		cache := floodfill.NewCache(s, cfg.IDAPOSMaxLocalityDistance*2)
		tuple := eval.Evaluate(s, cache, cfg, eval.NodeContext{})
		return tuple[ourIdx], board.Up, false
	}

	active := activeAgents(s, ourIdx, depth, cfg)
	if len(active) == 2 {
		oppIdx := active[0]
		if oppIdx == ourIdx {
			oppIdx = active[1]
		}
		mo, ok := movers[ourIdx]
		if !ok {
			mo = NewMoveOrderer(cfg)
			movers[ourIdx] = mo
		}
		score, bestDir = AlphaBetaWindow(s, ourIdx, oppIdx, depth, alpha, beta, ctx, tt, mo, cfg)
		return score, bestDir, true
	}

	ms := &maxNSearch{
		cfg: cfg, ctx: ctx, tt: tt,
		movers:     movers,
		cacheDepth: cfg.IDAPOSMaxLocalityDistance * 2,
		rootOurIdx: ourIdx,
	}
	tuple := ms.searchRound(s, active, depth, 0, 0, true)
	if !ms.rootDirSet {
		return tuple[ourIdx], firstLegalOrUp(s, ourIdx), false
	}
	return tuple[ourIdx], ms.rootDir, false
}

func firstLegalOrUp(s board.Snapshot, agentIdx int) board.Direction {
	moves := board.LegalMoves(s, agentIdx)
	if len(moves) == 0 {
		return board.Up
	}
	return moves[0]
}

// maxNSearch holds the per-turn state one MaxN call threads through its
// recursion: every active mover gets its own killer/history table (spec
// §5 requires no cross-mover sharing), and the root's chosen direction for
// our own agent is latched the first time it moves in round one.
type maxNSearch struct {
	cfg        config.Config
	ctx        *SearchContext
	tt         *TranspositionTable
	movers     map[int]*MoveOrderer
	cacheDepth int

	rootOurIdx int
	rootDir    board.Direction
	rootDirSet bool
}

func (ms *maxNSearch) mover(idx int) *MoveOrderer {
	mo, ok := ms.movers[idx]
	if !ok {
		mo = NewMoveOrderer(ms.cfg)
		ms.movers[idx] = mo
	}
	return mo
}

func (ms *maxNSearch) leafTuple(s board.Snapshot, ply int) eval.ScoreTuple {
	cache := floodfill.NewCache(s, ms.cacheDepth)
	return eval.Evaluate(s, cache, ms.cfg, eval.NodeContext{Depth: ply})
}

// searchRound walks the rotation of active movers for the current round,
// applying each chosen move in turn; once the rotation is exhausted the
// round resolves via board.AdvanceRound and depth decrements (spec §4.7's
// "return to agent 0" boundary, generalized to "return to the rotation's
// first active mover").
func (ms *maxNSearch) searchRound(s board.Snapshot, active []int, roundsRemaining, pos, ply int, firstRound bool) eval.ScoreTuple {
	if ms.ctx.Tick() || roundsRemaining <= 0 || s.IsTerminal() {
		return ms.leafTuple(s, ply)
	}
	if pos >= len(active) {
		resolved := board.AdvanceRound(s)
		if resolved.IsTerminal() {
			return ms.leafTuple(resolved, ply+1)
		}
		nextActive := activeAgents(resolved, ms.rootOurIdx, roundsRemaining-1, ms.cfg)
		return ms.searchRound(resolved, nextActive, roundsRemaining-1, 0, ply+1, false)
	}

	moverIdx := active[pos]
	if !s.Agents[moverIdx].Alive() {
		return ms.searchRound(s, active, roundsRemaining, pos+1, ply, firstRound)
	}

	moves := board.LegalMoves(s, moverIdx)
	if len(moves) == 0 {
		moves = []board.Direction{board.Up}
	}
	mo := ms.mover(moverIdx)
	ordered := mo.Order(moves, pos, s.Agents[moverIdx].Head(), board.Direction(0), false)

	var best eval.ScoreTuple
	var bestDir board.Direction
	haveBest := false
	for _, dir := range ordered {
		next, _ := board.ApplySingleMove(s, moverIdx, dir, ms.cfg.Rules())
		childTuple := ms.searchRound(next, active, roundsRemaining, pos+1, ply+1, firstRound)
		if !haveBest || maxNPrefers(childTuple, best, moverIdx) {
			best = childTuple
			bestDir = dir
			haveBest = true
		}
	}

	if firstRound && moverIdx == ms.rootOurIdx && !ms.rootDirSet {
		ms.rootDir = bestDir
		ms.rootDirSet = true
	}
	return best
}

// maxNPrefers reports whether candidate is better for moverIdx than
// current: a strictly higher own-score wins outright; on a tie, spec
// §4.7's pessimistic rule prefers the child that minimizes the sum of
// every other agent's score, assuming the least favorable continuation
// rather than the most.
func maxNPrefers(candidate, current eval.ScoreTuple, moverIdx int) bool {
	if candidate[moverIdx] != current[moverIdx] {
		return candidate[moverIdx] > current[moverIdx]
	}
	return sumExcluding(candidate, moverIdx) < sumExcluding(current, moverIdx)
}

func sumExcluding(t eval.ScoreTuple, excludeIdx int) int {
	sum := 0
	for i, v := range t {
		if i != excludeIdx {
			sum += v
		}
	}
	return sum
}
