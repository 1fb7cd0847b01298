/*
Package sizerange expresses inclusive and exclusive limits on chunk sizes.

A Range is a pair of Bounds. Chunkers with a minimum or maximum size (zpaq, and callers
describing a FastCDC configuration) test the length of the chunk being built against it.
*/
package sizerange

import "fmt"

type BoundKind int

const (
	Unbounded BoundKind = iota
	Included
	Excluded
)

// Bound is one end of a Range
type Bound struct {
	Kind  BoundKind
	Value uint64
}

func Inclusive(v uint64) Bound { return Bound{Kind: Included, Value: v} }
func Exclusive(v uint64) Bound { return Bound{Kind: Excluded, Value: v} }
func NoBound() Bound           { return Bound{Kind: Unbounded} }

type Range struct {
	Start, End Bound
}

// HalfOpen is [start, end)
func HalfOpen(start, end uint64) Range {
	return Range{Start: Inclusive(start), End: Exclusive(end)}
}

// Closed is [start, end]
func Closed(start, end uint64) Range {
	return Range{Start: Inclusive(start), End: Inclusive(end)}
}

// AtLeast is [start, ∞)
func AtLeast(start uint64) Range {
	return Range{Start: Inclusive(start), End: NoBound()}
}

// Below is [0, end)
func Below(end uint64) Range {
	return Range{Start: NoBound(), End: Exclusive(end)}
}

// Full has no limits in either direction
func Full() Range {
	return Range{}
}

// ExceedsMax is true if n lies beyond the end bound
func (r Range) ExceedsMax(n uint64) bool {
	switch r.End.Kind {
	case Included:
		return n > r.End.Value
	case Excluded:
		return n >= r.End.Value
	}
	return false
}

// UnderMin is true if n lies before the start bound
func (r Range) UnderMin(n uint64) bool {
	switch r.Start.Kind {
	case Included:
		return n < r.Start.Value
	case Excluded:
		return n <= r.Start.Value
	}
	return false
}

func (r Range) Contains(n uint64) bool {
	return !r.UnderMin(n) && !r.ExceedsMax(n)
}

// String formats the range in the usual interval notation
func (r Range) String() string {
	open, close := "(", ")"
	if r.Start.Kind == Included {
		open = "["
	}
	if r.End.Kind == Included {
		close = "]"
	}

	lo, hi := "0", "∞"
	if r.Start.Kind != Unbounded {
		lo = fmt.Sprint(r.Start.Value)
	}
	if r.End.Kind != Unbounded {
		hi = fmt.Sprint(r.End.Value)
	}
	return open + lo + ", " + hi + close
}
