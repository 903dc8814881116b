package engine

import (
	"math"
	"sync/atomic"

	"coil/board"
)

// resultInitialScore is the sentinel pre-seeded into a SharedResult before
// any concurrent search branch has reported in, matching spec §4.8 step
// 2's INT32_MIN+1 (reserving INT32_MIN itself avoids the lone
// unrepresentable value when negating bounds elsewhere in the engine).
const resultInitialScore = math.MinInt32 + 1

// SharedResult is the atomic, monotone best-move-so-far slot the search
// driver pre-seeds with the first legal move before launching any
// concurrent branch, so a branch that finishes early (or a deadline that
// expires before any branch improves on the seed) always has a legal move
// to hand back rather than a zero value (spec §4.8's race-avoidance
// requirement). Packing (move, score) into one uint64 lets every update
// go through a single CompareAndSwap instead of a mutex.
type SharedResult struct {
	packed atomic.Uint64
}

// NewSharedResult pre-seeds the result with firstLegalMove at the
// sentinel score, before any worker has run.
func NewSharedResult(firstLegalMove board.Direction) *SharedResult {
	sr := &SharedResult{}
	sr.packed.Store(packResult(firstLegalMove, resultInitialScore))
	return sr
}

// TryImprove replaces the stored result with (move, score) iff score is
// strictly greater than whatever is currently stored, retrying the CAS
// against concurrent updates. It reports whether this call's value won.
func (sr *SharedResult) TryImprove(move board.Direction, score int) bool {
	next := packResult(move, int32(score))
	for {
		old := sr.packed.Load()
		_, oldScore := unpackResult(old)
		if int32(score) <= oldScore {
			return false
		}
		if sr.packed.CompareAndSwap(old, next) {
			return true
		}
	}
}

// Load returns the best (move, score) pair stored so far.
func (sr *SharedResult) Load() (board.Direction, int) {
	move, score := unpackResult(sr.packed.Load())
	return move, int(score)
}

// packResult packs a direction and a score into one uint64. The score is
// offset-binary encoded (sign bit flipped) so that unsigned numeric order
// of the packed word matches signed numeric order of the score, which
// isn't load-bearing for correctness here (TryImprove always decodes
// before comparing) but keeps the encoding the conventional one.
func packResult(move board.Direction, score int32) uint64 {
	u := uint32(score) ^ 0x80000000
	return uint64(move)<<32 | uint64(u)
}

func unpackResult(packed uint64) (board.Direction, int32) {
	move := board.Direction(packed >> 32)
	u := uint32(packed)
	score := int32(u ^ 0x80000000)
	return move, score
}
