// Package segtree provides a fixed-size sequence with fast range sums.
//
// A segment tree keeps, next to the sequence itself, an implicit binary
// tree in which every node caches the sum of the elements in the range
// it spans. The root spans the whole sequence and each internal node
// splits its range in two halves, one per child. Both point updates and
// sums over arbitrary ranges run in O(log n) time, and building the tree
// is linear in the number of elements whatever their order.
//
// The sequence also behaves like a plain container: cursors walk it in
// either direction and the usual linear algorithms (count, find, lower
// and upper bound) are provided. Those never consult the tree.
package segtree

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned when an element index falls outside
// [0, Size()).
var ErrIndexOutOfRange = errors.New("segtree: index out of range")

// Tree is a sequence of elements of type T supporting point updates and
// range sums. Every ordered Go type supports addition, so the sum of
// strings is their concatenation. The identity of the sum is the zero
// value of T.
//
// The zero value is an empty Tree ready to use. A Tree must not be
// copied by value; use Clone.
type Tree[T cmp.Ordered] struct {
	// elems is the logical sequence, in index order.
	elems []T

	// tree holds the implicit binary tree. Node 0 is the root and spans
	// [0, n-1]; the children of node i are 2i+1 and 2i+2. A node
	// spanning [l, r] with l < r hands [l, mid] to its left child and
	// [mid+1, r] to its right one, where mid = l + (r-l)/2.
	//
	// The recursive split of n elements never needs more than 4n nodes.
	tree []T
}

// New creates a tree holding a copy of elems.
func New[T cmp.Ordered](elems ...T) *Tree[T] {
	t := &Tree[T]{}
	if len(elems) == 0 {
		return t
	}
	t.elems = make([]T, len(elems))
	copy(t.elems, elems)
	t.init()
	return t
}

// FromSeq creates a tree holding the values yielded by seq, in order.
// The sequence is walked exactly once.
func FromSeq[T cmp.Ordered](seq iter.Seq[T]) *Tree[T] {
	t := &Tree[T]{}
	for v := range seq {
		t.elems = append(t.elems, v)
	}
	if len(t.elems) == 0 {
		t.elems = nil
		return t
	}
	t.init()
	return t
}

// FromCursors creates a tree holding a copy of the elements in
// [first, last) of the tree both cursors point into. It returns an
// empty tree when the cursors belong to different trees or when last
// comes before first.
func FromCursors[T cmp.Ordered](first, last Cursor[T]) *Tree[T] {
	if first.t != last.t || first.t == nil || last.pos < first.pos {
		return &Tree[T]{}
	}
	lo, hi := max(first.pos, 0), min(last.pos, first.t.Size())
	if lo >= hi {
		return &Tree[T]{}
	}
	return New(first.t.elems[lo:hi]...)
}

// init allocates the node slice and builds the tree over t.elems,
// which must not be empty.
func (t *Tree[T]) init() {
	t.tree = make([]T, 4*len(t.elems))
	t.build(0, 0, len(t.elems)-1)
}

// Clone returns a deep copy of t. Updates to either tree are not
// visible in the other.
func (t *Tree[T]) Clone() *Tree[T] {
	if t.Empty() {
		return &Tree[T]{}
	}
	return &Tree[T]{
		elems: append([]T(nil), t.elems...),
		tree:  append([]T(nil), t.tree...),
	}
}

// Size returns the number of elements.
func (t *Tree[T]) Size() int {
	return len(t.elems)
}

// Empty reports whether the tree holds no elements.
func (t *Tree[T]) Empty() bool {
	return len(t.elems) == 0
}

// At returns the element at index i.
func (t *Tree[T]) At(i int) (T, error) {
	if err := t.check(i); err != nil {
		var zero T
		return zero, err
	}
	return t.elems[i], nil
}

// Values returns a copy of the elements in index order.
func (t *Tree[T]) Values() []T {
	return append([]T(nil), t.elems...)
}

// Sum returns the sum of the elements with indices in [left, right).
//
// Bounds are clamped to [0, Size()], so the result is the sum over the
// part of the range that overlaps the tree. An empty tree and an empty
// range (left >= right) both yield the zero value.
//
// Takes O(log n) time.
func (t *Tree[T]) Sum(left, right int) T {
	var zero T
	n := len(t.elems)
	left, right = max(left, 0), min(right, n)
	if n == 0 || left >= right {
		return zero
	}
	return t.query(left, right-1, 0, 0, n-1)
}

// Total returns the sum of all elements.
func (t *Tree[T]) Total() T {
	if t.Empty() {
		var zero T
		return zero
	}
	return t.tree[0]
}

// Update sets the element at index i to v and refreshes the sums that
// cover it. It returns an error wrapping ErrIndexOutOfRange, and leaves
// the tree untouched, when i is not in [0, Size()).
//
// Takes O(log n) time.
func (t *Tree[T]) Update(i int, v T) error {
	if err := t.check(i); err != nil {
		return err
	}
	t.elems[i] = v
	t.update(i, v, 0, 0, len(t.elems)-1)
	return nil
}

// All returns an iterator over the index-element pairs of t, in order.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range t.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the index-element pairs of t, from
// the last element to the first.
func (t *Tree[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(t.elems) - 1; i >= 0; i-- {
			if !yield(i, t.elems[i]) {
				return
			}
		}
	}
}

func (t *Tree[T]) String() string {
	return fmt.Sprintf("ST<size=%d, total=%v>", t.Size(), t.Total())
}

func (t *Tree[T]) check(i int) error {
	if i < 0 || i >= len(t.elems) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", i, len(t.elems))
	}
	return nil
}

func (t *Tree[T]) build(node, left, right int) {
	if left == right {
		t.tree[node] = t.elems[left]
		return
	}
	mid := left + (right-left)/2
	t.build(2*node+1, left, mid)
	t.build(2*node+2, mid+1, right)
	t.tree[node] = t.tree[2*node+1] + t.tree[2*node+2]
}

// query returns the sum over the inclusive range [ql, qr], which must lie
// within [left, right], the range spanned by node.
func (t *Tree[T]) query(ql, qr, node, left, right int) T {
	if ql > qr {
		var zero T
		return zero
	}
	if ql == left && qr == right {
		return t.tree[node]
	}
	mid := left + (right-left)/2
	return t.query(ql, min(qr, mid), 2*node+1, left, mid) +
		t.query(max(ql, mid+1), qr, 2*node+2, mid+1, right)
}

func (t *Tree[T]) update(i int, v T, node, left, right int) {
	if left == right {
		t.tree[node] = v
		return
	}
	mid := left + (right-left)/2
	if i <= mid {
		t.update(i, v, 2*node+1, left, mid)
	} else {
		t.update(i, v, 2*node+2, mid+1, right)
	}
	t.tree[node] = t.tree[2*node+1] + t.tree[2*node+2]
}
