// Package eval scores a board snapshot from every live agent's perspective.
// A single ScoreTuple entry is built from a handful of orthogonal sub-scores
// (survival, open space, food urgency, territory, length, attack threat,
// positional penalties) mixed by the weights in config.Config, then
// discounted by search depth so near-term outcomes dominate distant ones.
package eval
