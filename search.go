package segtree

// The functions below scan the element sequence from the front and run
// in O(n) time. They never look at the tree.
//
// LowerBound, UpperBound and EqualRange are only meaningful when the
// elements are in ascending order. Nothing checks that; on an unsorted
// tree they report the first element that breaks the scan.

// Count returns the number of elements equal to key.
func (t *Tree[T]) Count(key T) int {
	n := 0
	for _, v := range t.elems {
		if v == key {
			n++
		}
	}
	return n
}

// Find returns a cursor to the first element equal to key, or End() if
// there is none.
func (t *Tree[T]) Find(key T) Cursor[T] {
	return t.scan(func(v T) bool { return v != key })
}

// LowerBound returns a cursor to the first element not less than key,
// or End() if there is none.
func (t *Tree[T]) LowerBound(key T) Cursor[T] {
	return t.scan(func(v T) bool { return v < key })
}

// UpperBound returns a cursor to the first element greater than key, or
// End() if there is none.
func (t *Tree[T]) UpperBound(key T) Cursor[T] {
	return t.scan(func(v T) bool { return v <= key })
}

// EqualRange returns the cursors delimiting the run of elements equal to
// key: LowerBound(key) and UpperBound(key).
func (t *Tree[T]) EqualRange(key T) (first, last Cursor[T]) {
	return t.LowerBound(key), t.UpperBound(key)
}

// scan advances from Begin() while skip holds.
func (t *Tree[T]) scan(skip func(T) bool) Cursor[T] {
	c, end := t.Begin(), t.End()
	for !c.Equal(end) && skip(c.Value()) {
		c = c.Next()
	}
	return c
}
