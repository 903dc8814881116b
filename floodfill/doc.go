// Package floodfill computes the spatial metrics the evaluator and the
// attack heuristic depend on: per-agent reachable-cell counts via BFS that
// accounts for bodies vacating over time, and a simultaneous multi-source
// BFS territory partition. A Cache amortizes both across a single
// evaluator invocation so no sub-score ever re-floods the same snapshot.
package floodfill
