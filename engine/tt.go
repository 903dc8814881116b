package engine

import (
	"sort"
	"sync"
	"sync/atomic"

	"coil/board"
)

// Bound records what kind of score a transposition-table entry holds: an
// exact value, or a bound reached when the search cut off early.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

type ttEntry struct {
	hash     uint64
	score    int32
	depth    int32
	bound    Bound
	bestMove board.Direction
	hasMove  bool
	age      uint32
}

// ProbeKind is the outcome of a transposition-table Probe.
type ProbeKind uint8

const (
	Miss ProbeKind = iota
	Hint
	Hit
)

// ProbeResult is what Probe returns: a usable score (Hit), a move-ordering
// hint with no usable score (Hint), or nothing (Miss).
type ProbeResult struct {
	Kind  ProbeKind
	Score int
	Move  board.Direction
}

const ttShardCount = 64

// TranspositionTable is a fixed-size, thread-safe hash table keyed by board
// fingerprint (spec §4.4). It shards its locking the way spec §5 allows
// ("sharded lock acceptable") instead of one global mutex, so concurrent
// per-root-move workers don't serialize on every probe — the teacher's own
// TT (blunext-chess/engine/tt.go) skips locking entirely since it only ever
// runs Lazy-SMP workers against a table built for single-writer-at-a-time
// tolerance; ours needs real synchronization since stores race genuinely.
type TranspositionTable struct {
	entries []ttEntry
	mask    uint64
	locks   [ttShardCount]sync.Mutex

	maxEntries   int
	ageCounter   uint32
	liveEntries  int64 // atomic
	ageThreshold uint32
}

// NewTranspositionTable allocates a table sized to hold up to maxEntries
// entries, rounded down to a power of two for fast index masking — the
// teacher's sizing approach, adapted from a megabyte budget to an
// entry-count budget since config.Config externalizes tt_max_entries
// directly.
func NewTranspositionTable(maxEntries int) *TranspositionTable {
	if maxEntries < 1 {
		maxEntries = 1
	}
	size := uint64(1)
	for size*2 <= uint64(maxEntries) {
		size *= 2
	}
	return &TranspositionTable{
		entries:    make([]ttEntry, size),
		mask:       size - 1,
		maxEntries: maxEntries,
	}
}

// SetAgeThreshold bounds how many Store calls an entry may survive
// unrefreshed before maybeEvict drops it regardless of fill ratio (0
// disables the check). It's meant to be called once, right after
// construction, before the table sees concurrent use.
func (tt *TranspositionTable) SetAgeThreshold(threshold int) {
	if threshold < 0 {
		threshold = 0
	}
	tt.ageThreshold = uint32(threshold)
}

func (tt *TranspositionTable) shard(idx uint64) *sync.Mutex {
	return &tt.locks[idx%ttShardCount]
}

func (tt *TranspositionTable) index(hash uint64) uint64 {
	return hash & tt.mask
}

// Probe implements spec §4.4's probe contract.
func (tt *TranspositionTable) Probe(hash uint64, requiredDepth, alpha, beta int) ProbeResult {
	idx := tt.index(hash)
	lock := tt.shard(idx)
	lock.Lock()
	e := tt.entries[idx]
	lock.Unlock()

	if e.bound == BoundNone || e.hash != hash {
		return ProbeResult{Kind: Miss}
	}

	if int(e.depth) >= requiredDepth {
		score := int(e.score)
		switch {
		case e.bound == BoundExact:
			return ProbeResult{Kind: Hit, Score: score, Move: e.bestMove}
		case e.bound == BoundLower && score >= beta:
			return ProbeResult{Kind: Hit, Score: score, Move: e.bestMove}
		case e.bound == BoundUpper && score <= alpha:
			return ProbeResult{Kind: Hit, Score: score, Move: e.bestMove}
		}
	}

	if e.hasMove {
		return ProbeResult{Kind: Hint, Move: e.bestMove}
	}
	return ProbeResult{Kind: Miss}
}

// Store implements spec §4.4's store contract: replace iff the new depth is
// at least the old depth, or the new bound is Exact and the old one wasn't.
func (tt *TranspositionTable) Store(hash uint64, score, depth int, bound Bound, bestMove board.Direction, hasMove bool) {
	idx := tt.index(hash)
	lock := tt.shard(idx)
	age := atomic.AddUint32(&tt.ageCounter, 1)

	lock.Lock()
	old := tt.entries[idx]
	sameKey := old.bound != BoundNone && old.hash == hash
	if sameKey {
		improves := int32(depth) >= old.depth || (bound == BoundExact && old.bound != BoundExact)
		if !improves {
			lock.Unlock()
			return
		}
	} else if old.bound == BoundNone {
		atomic.AddInt64(&tt.liveEntries, 1)
	}
	tt.entries[idx] = ttEntry{
		hash:     hash,
		score:    int32(score),
		depth:    int32(depth),
		bound:    bound,
		bestMove: bestMove,
		hasMove:  hasMove,
		age:      age,
	}
	lock.Unlock()

	tt.maybeEvict()
}

// FillRatio returns the fraction of slots currently holding an entry.
func (tt *TranspositionTable) FillRatio() float64 {
	live := atomic.LoadInt64(&tt.liveEntries)
	return float64(live) / float64(len(tt.entries))
}

// maybeEvict implements spec §4.4's eviction rule — once fill exceeds 90%,
// drop the oldest 10% of entries by age — plus an absolute-age backstop:
// when ageThreshold is set, any entry older than that many Store calls is
// dropped too, even while fill is comfortably below 90%, so a long search
// can't let entries from an early, unrelated position linger forever.
func (tt *TranspositionTable) maybeEvict() {
	full := tt.FillRatio() > 0.9
	if !full && tt.ageThreshold == 0 {
		return
	}

	for i := range tt.locks {
		tt.locks[i].Lock()
		defer tt.locks[i].Unlock()
	}

	current := atomic.LoadUint32(&tt.ageCounter)
	var cutoff uint32
	haveCutoff := false
	if full {
		ages := make([]uint32, 0, len(tt.entries))
		for _, e := range tt.entries {
			if e.bound != BoundNone {
				ages = append(ages, e.age)
			}
		}
		if len(ages) > 0 {
			sort.Slice(ages, func(i, j int) bool { return ages[i] < ages[j] })
			cutoff = ages[len(ages)/10]
			haveCutoff = true
		}
	}

	var dropped int64
	for i := range tt.entries {
		e := tt.entries[i]
		if e.bound == BoundNone {
			continue
		}
		stale := tt.ageThreshold > 0 && current-e.age > tt.ageThreshold
		if (haveCutoff && e.age <= cutoff) || stale {
			tt.entries[i] = ttEntry{}
			dropped++
		}
	}
	atomic.AddInt64(&tt.liveEntries, -dropped)
}
