package board

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit content hash of the snapshot, keying the
// per-turn transposition table (spec §4.4). It combines every agent's
// positions, health, and length with the food set and turn parity; the food
// set is sorted first so insertion order never affects the hash, matching
// the "sorted combination" contract.
//
// The teacher engine (blunext-chess) builds a Zobrist table of random keys
// per piece/square/color and XORs incrementally on MakeMove. That shape
// doesn't fit here: there is no fixed piece vocabulary to key, bodies
// change length every turn, and branches are cloned rather than
// mutated-in-place, so there is nothing to XOR incrementally against.
// A straight content hash over a canonical encoding is the teacher's
// approach adapted to a domain without incremental updates.
func (s Snapshot) Fingerprint() uint64 {
	buf := make([]byte, 0, 32+20*bodyLen(s)+16*len(s.Food))
	var tmp [8]byte

	putInt := func(v int) {
		binary.LittleEndian.PutUint64(tmp[:], uint64(int64(v)))
		buf = append(buf, tmp[:]...)
	}

	putInt(s.Turn & 1)

	for _, a := range s.Agents {
		putInt(a.Health)
		putInt(a.Length)
		if a.Eliminated {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
		for _, c := range a.Body {
			putInt(c.X)
			putInt(c.Y)
		}
		buf = append(buf, 0xff) // agent separator
	}

	food := make([]Coordinate, len(s.Food))
	copy(food, s.Food)
	sort.Slice(food, func(i, j int) bool {
		if food[i].X != food[j].X {
			return food[i].X < food[j].X
		}
		return food[i].Y < food[j].Y
	})
	for _, f := range food {
		putInt(f.X)
		putInt(f.Y)
	}

	return xxhash.Sum64(buf)
}

func bodyLen(s Snapshot) int {
	n := 0
	for _, a := range s.Agents {
		n += len(a.Body)
	}
	return n
}
