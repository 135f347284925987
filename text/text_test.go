package text

import "testing"

func TestRangeInvariants(t *testing.T) {
	r := NewRange(3, 7)
	if r.Start() != 3 || r.End() != 7 || r.Len() != 4 {
		t.Fatalf("unexpected range fields: %+v", r)
	}
	if r.IsEmpty() {
		t.Fatalf("expected non-empty range")
	}
	if EmptyRange(5).Len() != 0 {
		t.Fatalf("expected empty range to have zero length")
	}
}

func TestRangePanicsOnInvertedBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for start > end")
		}
	}()
	NewRange(5, 2)
}

func TestRangeContains(t *testing.T) {
	r := NewRange(10, 20)
	cases := []struct {
		offset    Size
		contains  bool
		inclusive bool
	}{
		{9, false, false},
		{10, true, true},
		{19, true, true},
		{20, false, true},
		{21, false, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.offset); got != c.contains {
			t.Errorf("Contains(%d) = %v, want %v", c.offset, got, c.contains)
		}
		if got := r.ContainsInclusive(c.offset); got != c.inclusive {
			t.Errorf("ContainsInclusive(%d) = %v, want %v", c.offset, got, c.inclusive)
		}
	}
}

func TestRangeIntersectAndCover(t *testing.T) {
	a := NewRange(0, 10)
	b := NewRange(5, 15)
	inter, ok := a.Intersect(b)
	if !ok || inter != NewRange(5, 10) {
		t.Fatalf("unexpected intersection: %+v ok=%v", inter, ok)
	}

	c := NewRange(20, 30)
	if _, ok := a.Intersect(c); ok {
		t.Fatalf("expected no intersection between disjoint ranges")
	}

	covered := a.Cover(c)
	if covered != NewRange(0, 30) {
		t.Fatalf("unexpected cover: %+v", covered)
	}
}

func TestRangeOrdering(t *testing.T) {
	a := NewRange(0, 5)
	b := NewRange(10, 15)
	if a.Ordering(b) != -1 {
		t.Fatalf("expected a before b")
	}
	if b.Ordering(a) != 1 {
		t.Fatalf("expected b after a")
	}
	overlapping := NewRange(3, 12)
	if a.Ordering(overlapping) != 0 {
		t.Fatalf("expected overlap")
	}
}

func TestRangeShiftUnshift(t *testing.T) {
	r := NewRange(5, 10)
	shifted := r.Shift(3)
	if shifted != NewRange(8, 13) {
		t.Fatalf("unexpected shift: %+v", shifted)
	}
	if back := shifted.Unshift(3); back != r {
		t.Fatalf("unshift did not invert shift: %+v", back)
	}
}

func TestSlice(t *testing.T) {
	source := "hello world"
	r := RangeAt(6, Of("world"))
	if got := Slice(source, r); got != "world" {
		t.Fatalf("Slice() = %q, want %q", got, "world")
	}
}
