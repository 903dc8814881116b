package engine

import (
	"context"
	"sync"
	"time"

	"coil/board"
	"coil/config"
	"coil/eval"
	"coil/floodfill"

	"golang.org/x/sync/errgroup"
)

// ParallelChooseMove is the same iterative-deepening driver as ChooseMove,
// but splits each depth's work across workers root-move-by-root-move —
// the one parallel axis spec §5 allows, since every worker then searches
// an independent subtree and needs no synchronization beyond the shared,
// sharded-lock transposition table and the lock-free SharedResult. Each
// root move gets its own persisted MoveOrderer, carried across depths the
// same way ChooseMove's does (spec §4.5): killer moves and history
// learned exploring one root move have no bearing on a sibling root
// move's subtree, so orderers are keyed by direction, not shared, but
// each direction's own orderer still ages across iterations instead of
// being rebuilt every depth. logger may be nil; when set, one DecisionLog
// is emitted per completed depth plus one on the legality-mismatch
// fallback path.
func ParallelChooseMove(s board.Snapshot, ourIdx int, cfg config.Config, deadline time.Time, workers int, logger *Logger) (board.Direction, error) {
	if ourIdx < 0 || ourIdx >= len(s.Agents) || s.Width <= 0 || s.Height <= 0 {
		return board.Up, ErrInvalidSnapshot
	}
	if !s.Agents[ourIdx].Alive() {
		return board.Up, ErrInternalConsistency
	}
	if !time.Now().Before(deadline) {
		return firstLegalOrUp(s, ourIdx), ErrDeadlineExpired
	}

	legal := board.LegalMoves(s, ourIdx)
	if len(legal) == 0 {
		return board.Up, ErrNoLegalMove
	}
	if workers <= 1 || len(legal) == 1 {
		return ChooseMove(s, ourIdx, cfg, deadline, logger)
	}

	result := NewSharedResult(legal[0])
	tt := NewTranspositionTable(cfg.TTMaxEntries)
	tt.SetAgeThreshold(cfg.TTAgeThreshold)
	ctx := NewSearchContext(deadline)

	workerMovers := make(map[board.Direction]*MoveOrderer, len(legal))
	for _, dir := range legal {
		workerMovers[dir] = NewMoveOrderer(cfg)
	}
	bestScores := make(map[board.Direction]int, len(legal))
	hasPrevScore := false

	for depth := cfg.InitialDepth; depth <= cfg.MaxSearchDepth; depth++ {
		if ctx.Stopped() {
			break
		}
		if depth > cfg.InitialDepth && ctx.Remaining() < estimateIterationCost(s, ourIdx, depth, cfg) {
			break
		}
		if ctx.Remaining() < time.Duration(cfg.MinTimeRemainingMS)*time.Millisecond {
			break
		}

		start := time.Now()
		g, _ := errgroup.WithContext(context.Background())
		g.SetLimit(workers)
		var mu sync.Mutex
		scores := make(map[board.Direction]int, len(legal))
		for _, dir := range legal {
			dir := dir
			mo := workerMovers[dir]
			prevScore, havePrev := bestScores[dir]
			g.Go(func() error {
				score := evaluateRootMoveWithAspiration(s, ourIdx, dir, depth, prevScore, havePrev && hasPrevScore, ctx, tt, mo, cfg)
				result.TryImprove(dir, score)
				mu.Lock()
				scores[dir] = score
				mu.Unlock()
				return nil
			})
		}
		g.Wait()

		if ctx.Stopped() && depth > cfg.InitialDepth {
			break
		}
		bestScores = scores
		hasPrevScore = true

		for _, mo := range workerMovers {
			mo.NextIteration()
		}

		bestDir, bestScore := result.Load()
		logger.Log(DecisionLog{
			Timestamp: time.Now(),
			Turn:      s.Turn,
			Move:      bestDir,
			Source:    "Search",
			Score:     bestScore,
			Depth:     depth,
			Nodes:     ctx.Nodes(),
			Duration:  time.Since(start),
		})
		if float64(bestScore) >= cfg.CertainWinThreshold || float64(bestScore) <= cfg.CertainLossThreshold {
			break
		}
	}

	move, _ := result.Load()
	if !containsDirection(legal, move) {
		move = legal[0]
		logger.Log(DecisionLog{
			Timestamp: time.Now(),
			Turn:      s.Turn,
			Move:      move,
			Source:    "Fallback",
			Nodes:     ctx.Nodes(),
		})
	}
	return move, nil
}

// evaluateRootMoveWithAspiration fixes ourIdx's move to dir and searches
// the remainder of the round under an aspiration window centered on
// prevScore, widening by cfg.AspirationWidenStep and re-searching on a
// fail-high or fail-low from the two-agent delegate (spec §4.6) — the
// same retry shape runIterativeDeepening uses, just scoped to one root
// move's subtree instead of the whole MaxN call.
func evaluateRootMoveWithAspiration(s board.Snapshot, ourIdx int, dir board.Direction, depth, prevScore int, hasPrevScore bool, ctx *SearchContext, tt *TranspositionTable, mo *MoveOrderer, cfg config.Config) int {
	if !hasPrevScore || cfg.AspirationInitialWindow <= 0 {
		score, _ := evaluateRootMove(s, ourIdx, dir, depth, -infinityScore, infinityScore, ctx, tt, mo, cfg)
		return score
	}

	window := cfg.AspirationInitialWindow
	for {
		alpha, beta := prevScore-window, prevScore+window
		if alpha < -infinityScore {
			alpha = -infinityScore
		}
		if beta > infinityScore {
			beta = infinityScore
		}

		score, pruned := evaluateRootMove(s, ourIdx, dir, depth, alpha, beta, ctx, tt, mo, cfg)
		full := alpha <= -infinityScore && beta >= infinityScore
		failed := pruned && (score <= alpha || score >= beta)
		if !failed || full || ctx.Stopped() {
			return score
		}

		if cfg.AspirationWidenStep <= 0 {
			window = infinityScore
		} else {
			window += cfg.AspirationWidenStep
		}
	}
}

// evaluateRootMove fixes ourIdx's move to dir and searches the remainder
// of the round (and beyond, to depth) under the caller-supplied window
// with the ordinary two-agent or MaxN machinery, reusing the worker's own
// MoveOrderer for our agent's subsequent rounds of search. pruned reports
// whether the two-agent delegate actually narrowed on alpha/beta, the same
// convention MaxNWindow uses.
func evaluateRootMove(s board.Snapshot, ourIdx int, dir board.Direction, depth, alpha, beta int, ctx *SearchContext, tt *TranspositionTable, mo *MoveOrderer, cfg config.Config) (score int, pruned bool) {
	next, _ := board.ApplySingleMove(s, ourIdx, dir, cfg.Rules())
	active := activeAgents(next, ourIdx, depth, cfg)

	if len(active) <= 1 {
		cache := floodfill.NewCache(next, cfg.IDAPOSMaxLocalityDistance*2)
		tuple := eval.Evaluate(next, cache, cfg, eval.NodeContext{Depth: 1})
		return tuple[ourIdx], false
	}
	if len(active) == 2 {
		oppIdx := active[0]
		if oppIdx == ourIdx {
			oppIdx = active[1]
		}
		search := &twoAgentSearch{
			ourIdx: ourIdx, oppIdx: oppIdx,
			tt: tt, mo: mo, cfg: cfg, ctx: ctx,
			cacheDepth: cfg.IDAPOSMaxLocalityDistance * 2,
		}
		return search.searchOppMove(next, depth, 1, alpha, beta), true
	}

	ms := &maxNSearch{
		cfg: cfg, ctx: ctx, tt: tt,
		movers:     map[int]*MoveOrderer{ourIdx: mo},
		cacheDepth: cfg.IDAPOSMaxLocalityDistance * 2,
		rootOurIdx: ourIdx,
	}
	pos := indexOfAgent(active, ourIdx) + 1
	tuple := ms.searchRound(next, active, depth, pos, 1, false)
	return tuple[ourIdx], false
}
