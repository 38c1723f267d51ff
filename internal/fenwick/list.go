// Package fenwick provides a list of numbers supporting prefix sums.
//
// A Fenwick tree, or binary indexed tree, stores the list as an
// implicit tree in a slice of the same length, where each slot holds
// the sum of a power-of-two sized block of elements ending there.
// Updates and prefix sums both run in O(log n) time.
//
// It serves as an independent reference for segment tree range sums:
// the two structures share no code, so agreement between them is
// meaningful.
package fenwick

// Number is the set of types a List can hold. Elements are combined
// with addition and subtraction, so strings are excluded.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// List represents a list of numbers with support for efficient
// prefix sum computation. The zero value is an empty list.
type List[T Number] struct {
	// To compute the prefix sum t[0] + … + t[k-1], add the slots
	// which correspond to each 1 bit in the binary expansion of k.
	// For k = 13 = 1101₂ these are the slots 1100₂, 1011₂ and 0111₂,
	// holding t[12], t[8] + … + t[11] and t[0] + … + t[7].
	tree []T
}

// New creates a new list with the given elements.
func New[T Number](n ...T) *List[T] {
	size := len(n)
	t := make([]T, size)
	copy(t, n)
	for i := range t {
		if j := i | (i + 1); j < size {
			t[j] += t[i]
		}
	}
	return &List[T]{tree: t}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return len(l.tree)
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) T {
	return l.SumRange(i, i+1)
}

// Set sets the element at index i to n.
func (l *List[T]) Set(i int, n T) {
	l.Add(i, n-l.Get(i))
}

// Add adds n to the element at index i.
func (l *List[T]) Add(i int, n T) {
	for size := len(l.tree); i < size; i |= i + 1 {
		l.tree[i] += n
	}
}

// Sum returns the sum of the elements from index 0 to index i-1.
func (l *List[T]) Sum(i int) T {
	var sum T
	for i > 0 {
		sum += l.tree[i-1]
		i &= i - 1
	}
	return sum
}

// SumRange returns the sum of the elements from index i to index j-1.
func (l *List[T]) SumRange(i, j int) T {
	var sum T
	for j > i {
		sum += l.tree[j-1]
		j &= j - 1
	}
	for i > j {
		sum -= l.tree[i-1]
		i &= i - 1
	}
	return sum
}
