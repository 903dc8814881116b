package engine

import (
	"sync/atomic"
	"time"
)

// SearchContext tracks wall-clock budget for one turn's iterative-deepening
// run, the same node-counted polling shape the teacher uses
// (blunext-chess/engine/search_time.go) adapted from a fixed time.Duration
// limit to an absolute deadline, since spec §4.8 works in terms of "the
// effective budget" computed once per turn rather than a per-call limit.
type SearchContext struct {
	deadline time.Time
	nodes    int64
	stopped  atomic.Bool
}

// NewSearchContext starts a context that expires at deadline.
func NewSearchContext(deadline time.Time) *SearchContext {
	return &SearchContext{deadline: deadline}
}

const nodeCheckMask = 2047

// Tick increments the node counter and checks the deadline every 2048 nodes,
// the teacher's cadence for amortizing the cost of a time.Now() call.
func (ctx *SearchContext) Tick() bool {
	n := atomic.AddInt64(&ctx.nodes, 1)
	if n&nodeCheckMask != 0 {
		return ctx.stopped.Load()
	}
	return ctx.checkDeadline()
}

func (ctx *SearchContext) checkDeadline() bool {
	if ctx.stopped.Load() {
		return true
	}
	if time.Now().After(ctx.deadline) {
		ctx.stopped.Store(true)
		return true
	}
	return false
}

// Stopped reports whether the context has been stopped, without incrementing
// the node counter.
func (ctx *SearchContext) Stopped() bool {
	return ctx.stopped.Load() || time.Now().After(ctx.deadline)
}

// Stop signals the search to halt immediately.
func (ctx *SearchContext) Stop() {
	ctx.stopped.Store(true)
}

// Remaining returns the time left until the deadline (zero or negative once
// expired).
func (ctx *SearchContext) Remaining() time.Duration {
	return time.Until(ctx.deadline)
}

// Nodes returns the number of Tick calls so far.
func (ctx *SearchContext) Nodes() int64 {
	return atomic.LoadInt64(&ctx.nodes)
}
