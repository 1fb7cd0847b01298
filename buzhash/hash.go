package buzhash

// Hasher maps each byte entering or leaving the window to a 32 bit value
type Hasher interface {
	Hash(b byte) uint32
}

// TableHash looks values up in a table it shares with other hashers
type TableHash struct {
	table *[256]uint32
}

func NewTableHash(table *[256]uint32) TableHash {
	return TableHash{table: table}
}

func (t TableHash) Hash(b byte) uint32 {
	return t.table[b]
}

// OwnedTableHash holds a private copy of its table
type OwnedTableHash struct {
	table [256]uint32
}

func NewOwnedTableHash(table [256]uint32) *OwnedTableHash {
	return &OwnedTableHash{table: table}
}

func (t *OwnedTableHash) Hash(b byte) uint32 {
	return t.table[b]
}

// SaltedTableHash xors each byte with a salt before the lookup, permuting the table
type SaltedTableHash struct {
	table *[256]uint32
	salt  byte
}

func NewSaltedTableHash(salt byte, table *[256]uint32) SaltedTableHash {
	return SaltedTableHash{table: table, salt: salt}
}

func (t SaltedTableHash) Hash(b byte) uint32 {
	return t.table[b^t.salt]
}
