package rollsum

// sums holds the two running sums of bup's checksum, decoupled from the storage of
// the window so the search and incremental states can keep their look-back differently.
//
// Both sums only need 16 bits, but wrap as 32 bit values as they do in bupsplit.c
type sums struct {
	s1, s2 uint32
}

// seed is bup's initial value, as though the window were already full of charOffset
func seed(windowLen int) sums {
	w := uint32(windowLen)
	return sums{
		s1: w * charOffset,
		s2: w * (w - 1) * charOffset,
	}
}

// add rolls add into the window and drop out of it. drop is 0 until the window has filled.
func (s *sums) add(windowLen int, drop, add byte) {
	d := uint32(drop)
	s.s1 += uint32(add) - d
	s.s2 += s.s1 - uint32(windowLen)*(d+charOffset)
}

func (s *sums) digest() uint32 {
	return (s.s1 << 16) | (s.s2 & 0xffff)
}

func (s *sums) atSplit() bool {
	return s.digest()&(blobSize-1) == blobSize-1
}
