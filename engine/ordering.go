package engine

import (
	"sort"

	"coil/board"
	"coil/config"
)

// defaultKillerSlots is the fallback slot count when cfg.KillerMovesPerDepth
// isn't set, matching the teacher's two-slot scheme
// (blunext-chess/engine/session.go).
const defaultKillerSlots = 2

type killerEntry struct {
	dir board.Direction
	set bool
	age int
}

type historyKey struct {
	origin board.Coordinate
	dir    board.Direction
}

// MoveOrderer tracks killer moves and the history heuristic across one
// search (spec §4.5). Killers are keyed by ply depth only, as in classic
// alpha-beta move ordering; history is keyed by (origin cell, direction)
// since there's no from/to square pair in this domain the way chess has.
//
// Unlike the teacher's Session, which keeps one global killer/history table
// shared by every Lazy-SMP worker, spec §5 calls for per-worker tables in
// the parallel-per-root-move dispatch (no sharing needed since these are
// heuristics, not correctness-critical state) — so each search worker owns
// its own MoveOrderer.
type MoveOrderer struct {
	killers map[int][]killerEntry
	history map[historyKey]float64
	cfg     config.Config
	iter    int
	slots   int
}

// NewMoveOrderer creates an empty move orderer tuned by cfg. The killer
// table's slot count per depth comes from cfg.KillerMovesPerDepth, falling
// back to the teacher's two-slot scheme when unset.
func NewMoveOrderer(cfg config.Config) *MoveOrderer {
	slots := cfg.KillerMovesPerDepth
	if slots <= 0 {
		slots = defaultKillerSlots
	}
	return &MoveOrderer{
		killers: make(map[int][]killerEntry),
		history: make(map[historyKey]float64),
		cfg:     cfg,
		slots:   slots,
	}
}

// StoreKiller registers dir as a killer at depth after a beta cutoff,
// shifting every existing killer down a slot and dropping the oldest.
func (mo *MoveOrderer) StoreKiller(depth int, dir board.Direction) {
	slots := mo.killerSlots(depth)
	for _, k := range slots {
		if k.set && k.dir == dir {
			return
		}
	}
	copy(slots[1:], slots[:len(slots)-1])
	slots[0] = killerEntry{dir: dir, set: true, age: mo.iter}
	mo.killers[depth] = slots
}

// IsKiller reports whether dir is a registered killer at depth.
func (mo *MoveOrderer) IsKiller(depth int, dir board.Direction) bool {
	for _, k := range mo.killers[depth] {
		if k.set && k.dir == dir {
			return true
		}
	}
	return false
}

func (mo *MoveOrderer) killerSlots(depth int) []killerEntry {
	slots, ok := mo.killers[depth]
	if !ok {
		slots = make([]killerEntry, mo.slots)
	}
	return slots
}

// historyIncrement is spec §4.5's cutoff reward: 1<<depth, clamped to a
// safe shift range so a root-level depth (up to cfg.MaxSearchDepth, which
// can be large) never overflows.
func historyIncrement(depth int) float64 {
	if depth < 0 {
		depth = 0
	}
	if depth > 30 {
		depth = 30
	}
	return float64(int64(1) << uint(depth))
}

// UpdateHistory rewards a quiet (non-capture-equivalent — here, any) move
// that caused a cutoff, incrementing its accumulator by 1<<depth per spec
// §4.5.
func (mo *MoveOrderer) UpdateHistory(origin board.Coordinate, dir board.Direction, depth int) {
	key := historyKey{origin, dir}
	mo.history[key] += historyIncrement(depth)
}

// historyPenalty is the modest per-try decrement applied to a quiet move
// that didn't cause a cutoff: small next to historyIncrement's exponential
// reward, so one lucky cutoff still outweighs many ordinary tries.
const historyPenalty = 1

// PenalizeHistory modestly decrements a quiet move's history accumulator
// when it was tried but didn't cause a cutoff, per spec §4.5, so the
// heuristic punishes moves that keep losing the ordering race as well as
// rewarding ones that win it. The accumulator is floored at zero.
func (mo *MoveOrderer) PenalizeHistory(origin board.Coordinate, dir board.Direction) {
	key := historyKey{origin, dir}
	v := mo.history[key] - historyPenalty
	if v < 0 {
		v = 0
	}
	mo.history[key] = v
}

// NextIteration ages killers (dropping entries beyond KillerMaxAge
// iterations old) and decays history by the configured factor — persisted
// learning across iterative-deepening iterations, not wiped clean, per
// spec §4.5.
func (mo *MoveOrderer) NextIteration() {
	mo.iter++
	for depth, slots := range mo.killers {
		for i := range slots {
			if slots[i].set && mo.iter-slots[i].age > mo.cfg.KillerMaxAge {
				slots[i] = killerEntry{}
			}
		}
		mo.killers[depth] = slots
	}
	for key, v := range mo.history {
		decayed := v * mo.cfg.HistoryDecayFactor
		if decayed < 1 {
			delete(mo.history, key)
			continue
		}
		mo.history[key] = decayed
	}
}

// Order ranks candidate directions for a node at the given depth and
// origin cell, per spec §4.5's priority list: PV hint, killers, history,
// then canonical direction order as the final tie-break.
func (mo *MoveOrderer) Order(moves []board.Direction, depth int, origin board.Coordinate, ttHint board.Direction, hasHint bool) []board.Direction {
	ordered := make([]board.Direction, len(moves))
	copy(ordered, moves)

	rank := func(d board.Direction) (int, float64) {
		if hasHint && d == ttHint {
			return 3, 0
		}
		if mo.IsKiller(depth, d) {
			return 2, 0
		}
		if h, ok := mo.history[historyKey{origin, d}]; ok && h > 0 {
			return 1, h
		}
		return 0, 0
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		ti, hi := rank(ordered[i])
		tj, hj := rank(ordered[j])
		if ti != tj {
			return ti > tj
		}
		if ti == 1 && hi != hj {
			return hi > hj
		}
		return ordered[i] < ordered[j] // canonical order tie-break
	})

	return ordered
}
