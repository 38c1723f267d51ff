package segtree

import (
	"cmp"
	"fmt"
)

// A Cursor is a position in the element sequence of a Tree, moving from
// the first element towards the last. Cursors are values: Next, Prev,
// Add and Sub return a new cursor and leave the receiver unchanged.
//
// A cursor does not own any data. It stays usable for as long as its
// tree is, because a tree never reallocates its elements after
// construction.
type Cursor[T cmp.Ordered] struct {
	t   *Tree[T]
	pos int
}

// Begin returns a cursor to the first element, or End() if t is empty.
func (t *Tree[T]) Begin() Cursor[T] {
	return Cursor[T]{t: t, pos: 0}
}

// End returns the cursor one past the last element.
func (t *Tree[T]) End() Cursor[T] {
	return Cursor[T]{t: t, pos: len(t.elems)}
}

// Index returns the element index c points to.
func (c Cursor[T]) Index() int { return c.pos }

// Valid reports whether c points to an element, that is whether Value
// may be called.
func (c Cursor[T]) Valid() bool {
	return c.t != nil && c.pos >= 0 && c.pos < len(c.t.elems)
}

// Value returns the element c points to. It panics if c is not Valid.
func (c Cursor[T]) Value() T {
	if !c.Valid() {
		panic(fmt.Sprintf("segtree: cursor position %d out of range", c.pos))
	}
	return c.t.elems[c.pos]
}

// Equal reports whether c and o point to the same position of the same
// tree.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.t == o.t && c.pos == o.pos
}

// Next returns the cursor to the following element.
func (c Cursor[T]) Next() Cursor[T] { return c.Add(1) }

// Prev returns the cursor to the preceding element.
func (c Cursor[T]) Prev() Cursor[T] { return c.Sub(1) }

// Add returns the cursor k elements ahead of c.
func (c Cursor[T]) Add(k int) Cursor[T] {
	c.pos += k
	return c
}

// Sub returns the cursor k elements behind c.
func (c Cursor[T]) Sub(k int) Cursor[T] {
	c.pos -= k
	return c
}

// Distance returns the number of steps from c to o. Both cursors must
// belong to the same tree.
func (c Cursor[T]) Distance(o Cursor[T]) int {
	return o.pos - c.pos
}

func (c Cursor[T]) String() string {
	return fmt.Sprintf("Cursor<%d>", c.pos)
}

// A ReverseCursor walks the element sequence of a Tree from the last
// element towards the first. Next moves to a lower index and Add(k)
// moves k elements towards the front.
type ReverseCursor[T cmp.Ordered] struct {
	t   *Tree[T]
	pos int
}

// RBegin returns a reverse cursor to the last element, or REnd() if t
// is empty.
func (t *Tree[T]) RBegin() ReverseCursor[T] {
	return ReverseCursor[T]{t: t, pos: len(t.elems) - 1}
}

// REnd returns the reverse cursor one before the first element.
func (t *Tree[T]) REnd() ReverseCursor[T] {
	return ReverseCursor[T]{t: t, pos: -1}
}

// Index returns the element index r points to; REnd() is at -1.
func (r ReverseCursor[T]) Index() int { return r.pos }

// Valid reports whether r points to an element.
func (r ReverseCursor[T]) Valid() bool {
	return r.t != nil && r.pos >= 0 && r.pos < len(r.t.elems)
}

// Value returns the element r points to. It panics if r is not Valid.
func (r ReverseCursor[T]) Value() T {
	if !r.Valid() {
		panic(fmt.Sprintf("segtree: reverse cursor position %d out of range", r.pos))
	}
	return r.t.elems[r.pos]
}

// Equal reports whether r and o point to the same position of the same
// tree.
func (r ReverseCursor[T]) Equal(o ReverseCursor[T]) bool {
	return r.t == o.t && r.pos == o.pos
}

// Next returns the reverse cursor to the preceding element.
func (r ReverseCursor[T]) Next() ReverseCursor[T] { return r.Add(1) }

// Prev returns the reverse cursor to the following element.
func (r ReverseCursor[T]) Prev() ReverseCursor[T] { return r.Sub(1) }

// Add returns the reverse cursor k elements closer to the front.
func (r ReverseCursor[T]) Add(k int) ReverseCursor[T] {
	r.pos -= k
	return r
}

// Sub returns the reverse cursor k elements closer to the back.
func (r ReverseCursor[T]) Sub(k int) ReverseCursor[T] {
	r.pos += k
	return r
}

// Base returns the forward cursor to the element following the one r
// points to, so that RBegin().Base() equals End() and REnd().Base()
// equals Begin().
func (r ReverseCursor[T]) Base() Cursor[T] {
	return Cursor[T]{t: r.t, pos: r.pos + 1}
}

func (r ReverseCursor[T]) String() string {
	return fmt.Sprintf("ReverseCursor<%d>", r.pos)
}
