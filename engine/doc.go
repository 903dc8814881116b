// Package engine implements the move-decision search: a transposition
// table, move ordering (killers + history), a two-agent alpha-beta engine
// with quiescence, an N-agent MaxN engine with IDAPOS locality masking, and
// the iterative-deepening driver that ties them together behind a single
// ChooseMove entry point with an anytime, deadline-respecting contract.
package engine
