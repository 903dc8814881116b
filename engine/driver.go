package engine

import (
	"errors"
	"math"
	"time"

	"coil/board"
	"coil/config"
)

// Errors ChooseMove can return alongside its best-effort direction. The
// direction is always a legal move when one exists, even on error, so a
// caller that only checks the direction still behaves safely.
var (
	ErrInvalidSnapshot     = errors.New("engine: invalid snapshot")
	ErrDeadlineExpired     = errors.New("engine: deadline already expired")
	ErrNoLegalMove         = errors.New("engine: no legal move available")
	ErrInternalConsistency = errors.New("engine: internal consistency failure")
)

// ChooseMove is the public entry point: given the current board state and
// which agent we are, it returns the direction to play before deadline.
// It runs iterative deepening from cfg.InitialDepth, stopping early on a
// certain win/loss, a deadline-driven time estimate, or a run of
// iterations that stopped improving (spec §4.8). The returned direction
// is always checked against the legal move list before it's handed back,
// falling back to the first legal move on any internal mismatch (spec
// §7's propagation policy) — this function never returns a direction that
// isn't legal when at least one legal move exists. logger may be nil; when
// set, one DecisionLog is emitted per completed iteration plus one on the
// legality-mismatch fallback path.
func ChooseMove(s board.Snapshot, ourIdx int, cfg config.Config, deadline time.Time, logger *Logger) (board.Direction, error) {
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

	result := NewSharedResult(legal[0])
	tt := NewTranspositionTable(cfg.TTMaxEntries)
	tt.SetAgeThreshold(cfg.TTAgeThreshold)
	ctx := NewSearchContext(deadline)

	runIterativeDeepening(s, ourIdx, cfg, ctx, tt, result, logger)

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

// runIterativeDeepening drives one ChooseMove call's depth loop. It keeps
// one persisted MoveOrderer per agent across the whole loop — ageing it
// with NextIteration between depths instead of rebuilding it each time —
// so killer moves and history learned at depth d are still there, just
// decayed, at depth d+1 (spec §4.5). Each depth after the first re-enters
// the search through an aspiration window centered on the previous
// depth's score (spec §4.6), widening and re-searching on a fail-high or
// fail-low.
func runIterativeDeepening(s board.Snapshot, ourIdx int, cfg config.Config, ctx *SearchContext, tt *TranspositionTable, result *SharedResult, logger *Logger) {
	bestScore := math.MinInt32
	noImprovement := 0
	hasPrevScore := false
	movers := make(map[int]*MoveOrderer)

	for depth := cfg.InitialDepth; depth <= cfg.MaxSearchDepth; depth++ {
		if ctx.Stopped() {
			return
		}
		if depth > cfg.InitialDepth && ctx.Remaining() < estimateIterationCost(s, ourIdx, depth, cfg) {
			return
		}
		if ctx.Remaining() < time.Duration(cfg.MinTimeRemainingMS)*time.Millisecond {
			return
		}

		start := time.Now()
		score, dir := searchWithAspiration(s, ourIdx, depth, bestScore, hasPrevScore, ctx, tt, cfg, movers)
		if ctx.Stopped() && depth > cfg.InitialDepth {
			// An aborted deeper iteration's result is unreliable; the
			// last fully completed iteration's result stands.
			return
		}

		improved := !hasPrevScore || score > bestScore
		result.TryImprove(dir, score)
		if improved {
			bestScore = score
			noImprovement = 0
		} else {
			noImprovement++
		}
		hasPrevScore = true

		logger.Log(DecisionLog{
			Timestamp: time.Now(),
			Turn:      s.Turn,
			Move:      dir,
			Source:    "Search",
			Score:     score,
			Depth:     depth,
			Nodes:     ctx.Nodes(),
			Duration:  time.Since(start),
		})

		for _, mo := range movers {
			mo.NextIteration()
		}

		if float64(score) >= cfg.CertainWinThreshold || float64(score) <= cfg.CertainLossThreshold {
			return
		}
		if noImprovement >= cfg.NoImprovementTolerance && ctx.Remaining() < cfg.EffectiveBudget()/3 {
			return
		}
	}
}

// searchWithAspiration runs a single iterative-deepening depth through
// MaxNWindow, narrowing the window around prevScore once a prior depth's
// score exists (spec §4.6). A fail-high or fail-low from the two-agent
// delegate — the only path alpha/beta can actually narrow — widens the
// window by cfg.AspirationWidenStep and re-searches; an N-agent round
// never reports pruned, so it's trusted on the first pass regardless of
// the window it was nominally given.
func searchWithAspiration(s board.Snapshot, ourIdx, depth, prevScore int, hasPrevScore bool, ctx *SearchContext, tt *TranspositionTable, cfg config.Config, movers map[int]*MoveOrderer) (int, board.Direction) {
	if !hasPrevScore || cfg.AspirationInitialWindow <= 0 {
		score, dir, _ := MaxNWindow(s, ourIdx, depth, -infinityScore, infinityScore, ctx, tt, cfg, movers)
		return score, dir
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

		score, dir, pruned := MaxNWindow(s, ourIdx, depth, alpha, beta, ctx, tt, cfg, movers)
		full := alpha <= -infinityScore && beta >= infinityScore
		failed := pruned && (score <= alpha || score >= beta)
		if !failed || full || ctx.Stopped() {
			return score, dir
		}

		if cfg.AspirationWidenStep <= 0 {
			window = infinityScore
		} else {
			window += cfg.AspirationWidenStep
		}
	}
}

// estimateIterationCost is the adaptive time estimator from spec §4.8: the
// next iteration's cost grows by the branching factor raised to the
// IDAPOS-filtered active-agent count, so a crowded local neighborhood is
// assumed to cost more per ply than an open one.
func estimateIterationCost(s board.Snapshot, ourIdx, depth int, cfg config.Config) time.Duration {
	activeCount := len(activeAgents(s, ourIdx, depth, cfg))
	branching := cfg.BranchingFactorMulti
	if activeCount <= 2 {
		branching = cfg.BranchingFactor1v1
	}
	exponent := float64(depth * activeCount)
	estimateMS := float64(cfg.BaseIterationTimeMS) * math.Pow(branching, exponent)
	return time.Duration(estimateMS) * time.Millisecond
}

func containsDirection(moves []board.Direction, dir board.Direction) bool {
	for _, m := range moves {
		if m == dir {
			return true
		}
	}
	return false
}
