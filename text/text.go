// Package text provides the offset primitives shared by the lexer, parser,
// syntax tree, and diagnostics: an opaque text measure (Size) and a
// half-open range over it (Range).
package text

import "fmt"

// Size is an opaque measure of text length, or an index into text.
type Size int

// Zero is the zero Size.
const Zero Size = 0

// Of returns the Size of a string's length.
func Of(s string) Size {
	return Size(len(s))
}

// FromInt converts a plain int offset/length into a Size.
func FromInt(i int) Size {
	return Size(i)
}

// ToInt converts a Size back into a plain int.
func (a Size) ToInt() int {
	return int(a)
}

// Add returns a+b.
func (a Size) Add(b Size) Size {
	return a + b
}

// Sub returns a-b. It panics if the result would be negative, mirroring the
// reference implementation's invariant that a Size is never negative.
func (a Size) Sub(b Size) Size {
	result := a - b
	if result < 0 {
		panic("text: Size cannot be negative")
	}
	return result
}

func (a Size) String() string {
	return fmt.Sprintf("Size(%d)", int(a))
}

// Range is a half-open range [Start, End) over text, in Size units.
//
// Invariant: 0 <= start <= end.
type Range struct {
	start Size
	end   Size
}

// NewRange builds a Range from start and end offsets.
func NewRange(start, end Size) Range {
	if start < 0 || end < 0 {
		panic("text: Range offsets cannot be negative")
	}
	if start > end {
		panic("text: Range invariant violated: start > end")
	}
	return Range{start: start, end: end}
}

// RangeAt builds a Range of the given length starting at offset.
func RangeAt(offset, length Size) Range {
	return NewRange(offset, offset+length)
}

// EmptyRange builds a zero-length Range at offset.
func EmptyRange(offset Size) Range {
	return Range{start: offset, end: offset}
}

// RangeUpTo builds a Range from zero up to end.
func RangeUpTo(end Size) Range {
	return NewRange(0, end)
}

// Start returns the range's start offset.
func (r Range) Start() Size { return r.start }

// End returns the range's end offset.
func (r Range) End() Size { return r.end }

// Len returns the range's length.
func (r Range) Len() Size { return r.end - r.start }

// IsEmpty reports whether the range has zero length.
func (r Range) IsEmpty() bool { return r.start == r.end }

// AsTuple returns the range as a pair of plain ints, handy for test tables
// and diagnostic formatting.
func (r Range) AsTuple() (int, int) { return int(r.start), int(r.end) }

// Contains reports whether offset falls within [start, end).
func (r Range) Contains(offset Size) bool {
	return r.start <= offset && offset < r.end
}

// ContainsInclusive reports whether offset falls within [start, end].
func (r Range) ContainsInclusive(offset Size) bool {
	return r.start <= offset && offset <= r.end
}

// ContainsRange reports whether r fully contains other.
func (r Range) ContainsRange(other Range) bool {
	return r.start <= other.start && other.end <= r.end
}

// Intersect returns the overlap of r and other, and whether they overlap at
// all (an empty intersection at a shared boundary still counts as overlap,
// matching the half-open convention used elsewhere in this package).
func (r Range) Intersect(other Range) (Range, bool) {
	start := max(r.start, other.start)
	end := min(r.end, other.end)
	if end < start {
		return Range{}, false
	}
	return Range{start: start, end: end}, true
}

// Cover returns the minimal range covering both r and other.
func (r Range) Cover(other Range) Range {
	return Range{start: min(r.start, other.start), end: max(r.end, other.end)}
}

// CoverOffset returns the minimal range covering r and offset.
func (r Range) CoverOffset(offset Size) Range {
	return r.Cover(Range{start: offset, end: offset})
}

// Ordering compares r to other: -1 if r ends before other starts, 1 if r
// starts after other ends, 0 if they overlap.
func (r Range) Ordering(other Range) int {
	switch {
	case r.end <= other.start:
		return -1
	case other.end <= r.start:
		return 1
	default:
		return 0
	}
}

// Shift returns r shifted forward by delta.
func (r Range) Shift(delta Size) Range {
	return Range{start: r.start + delta, end: r.end + delta}
}

// Unshift returns r shifted backward by delta. It panics if the result would
// go negative.
func (r Range) Unshift(delta Size) Range {
	start := r.start - delta
	end := r.end - delta
	if start < 0 || end < 0 {
		panic("text: Range offsets cannot be negative")
	}
	return Range{start: start, end: end}
}

func (r Range) String() string {
	return fmt.Sprintf("Range(%d, %d)", int(r.start), int(r.end))
}

// Slice returns the substring of source covered by r.
func Slice(source string, r Range) string {
	return source[r.start:r.end]
}
