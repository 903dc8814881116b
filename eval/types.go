package eval

// ScoreDead is the sentinel survival score for an eliminated agent: far
// outside the range any live-agent combination of sub-scores can reach, so
// death strictly dominates every other consideration in a comparison.
const ScoreDead = -1_000_000

// ScoreTuple holds one score per agent, indexed the same way as the
// snapshot's Agents slice. Each entry is evaluated from that agent's own
// perspective.
type ScoreTuple []int

// NodeContext carries the search-tree context the evaluator needs but the
// snapshot itself doesn't record: how far from the root this node is (for
// temporal discounting) and whether the move that produced this snapshot
// was a food pickup (the food-urgency schedule's "just ate" rule, and the
// escape-route suppression that goes with it). The engine package fills in
// Depth only and leaves JustAte false.
type NodeContext struct {
	Depth   int
	JustAte bool
}
