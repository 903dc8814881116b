package eval

import (
	"math"

	"coil/board"
	"coil/config"
	"coil/floodfill"
)

// Evaluate scores every live agent in s from its own perspective, mixing
// the sub-scores of spec §4.3 by cfg's weights and discounting the whole
// tuple by how far ctx.Depth is from the search root.
func Evaluate(s board.Snapshot, cache *floodfill.Cache, cfg config.Config, ctx NodeContext) ScoreTuple {
	tuple := make(ScoreTuple, len(s.Agents))
	discount := math.Pow(cfg.TemporalDiscountFactor, float64(ctx.Depth))

	for i, a := range s.Agents {
		if !a.Alive() {
			tuple[i] = ScoreDead
			continue
		}

		raw := 0.0
		raw += cfg.WeightSpace * float64(spaceScore(cache, i, len(a.Body)))
		raw += foodUrgencyScore(s, i, ctx, cfg)
		raw += cfg.WeightControl * float64(territoryScore(cache, i))
		raw += cfg.WeightLength * float64(len(a.Body))
		raw += cfg.WeightAttack * float64(attackScore(s, i, cache, cfg))
		raw += wallPenalty(s, a.Head(), cfg)
		raw += centerBias(s, a.Head(), cfg)
		raw += cornerPenalty(s, a, cfg)
		raw += float64(escapeRoutePenalty(s, i, ctx.JustAte, cfg))
		raw += cfg.WeightHealth * float64(a.Health)

		tuple[i] = int(raw * discount)
	}

	return tuple
}
