package engine

import (
	"testing"
	"time"

	"coil/board"
	"coil/config"
)

// benchFixture is a 1v1 mid-game position: close enough for quiescence
// extensions to trigger, open enough that iterative deepening can actually
// reach the deeper benchmark levels before time runs out.
func benchFixture() board.Snapshot {
	return board.Snapshot{
		Width:  11,
		Height: 11,
		Food:   []board.Coordinate{{5, 5}, {9, 9}},
		Agents: []board.Agent{
			{ID: "us", Health: 80, Length: 4, Body: []board.Coordinate{{3, 3}, {3, 2}, {3, 1}, {3, 0}}},
			{ID: "them", Health: 80, Length: 4, Body: []board.Coordinate{{7, 7}, {7, 6}, {7, 5}, {7, 4}}},
		},
	}
}

func BenchmarkAlphaBeta_Depth4(b *testing.B) {
	s := benchFixture()
	cfg := config.Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tt := NewTranspositionTable(cfg.TTMaxEntries)
		mo := NewMoveOrderer(cfg)
		ctx := NewSearchContext(time.Now().Add(time.Minute))
		AlphaBeta(s, 0, 1, 4, ctx, tt, mo, cfg)
	}
}

func BenchmarkAlphaBeta_Depth6(b *testing.B) {
	s := benchFixture()
	cfg := config.Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tt := NewTranspositionTable(cfg.TTMaxEntries)
		mo := NewMoveOrderer(cfg)
		ctx := NewSearchContext(time.Now().Add(time.Minute))
		AlphaBeta(s, 0, 1, 6, ctx, tt, mo, cfg)
	}
}

func BenchmarkChooseMove_DefaultBudget(b *testing.B) {
	s := benchFixture()
	cfg := config.Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ChooseMove(s, 0, cfg, time.Now().Add(cfg.EffectiveBudget()), nil)
	}
}

func BenchmarkParallelChooseMove_FourWorkers(b *testing.B) {
	s := benchFixture()
	cfg := config.Default()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParallelChooseMove(s, 0, cfg, time.Now().Add(cfg.EffectiveBudget()), 4, nil)
	}
}
