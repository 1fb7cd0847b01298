/*
Package tables holds the read-only byte to integer lookup tables used by the gear, FastCDC and
buzhash chunkers.

The built-in tables are plain package level arrays and may be shared by any number of chunkers
at once. Callers that want a different family of edges can generate another gear table from a
different Mersenne twister seed, or pass a table of their own.
*/
package tables

import (
	"github.com/seehuhn/mt19937"
	"github.com/silvasur/buzhash"
)

// GenerateGear64 returns the first 256 outputs of MT19937-64 seeded with seed.
// GenerateGear64(0) equals Gear64.
func GenerateGear64(seed int64) *[256]uint64 {
	twister := mt19937.New()
	twister.Seed(seed)

	var table [256]uint64
	for i := range table {
		table[i] = twister.Uint64()
	}
	return &table
}

// GenerateGear32 keeps the upper half of each GenerateGear64 value.
// GenerateGear32(0) equals Gear32.
func GenerateGear32(seed int64) *[256]uint32 {
	wide := GenerateGear64(seed)

	var table [256]uint32
	for i, v := range wide {
		table[i] = uint32(v >> 32)
	}
	return &table
}

// GoBuzhash is the byte hash table of silvasur/buzhash, as used by attic and noms.
var GoBuzhash = goBuzhashTable()

func goBuzhashTable() [256]uint32 {
	var table [256]uint32

	// the first byte into an empty hash is exactly its table entry
	for i := range table {
		table[i] = buzhash.NewBuzHash(1).HashByte(byte(i))
	}
	return table
}
