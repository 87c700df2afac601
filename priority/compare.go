package priority

import "iter"

// Compare orders q and other lexicographically, walking both key indices in
// ascending order. The first differing key decides. For equal keys their value
// multisets are compared as ascending sequences, a strict prefix being smaller.
// When all shared keys tie, the queue with fewer keys is smaller. The result is
// -1, 0 or +1. The orderings of q are used for both queues.
func (q *Queue[K, V]) Compare(other *Queue[K, V]) int {
	if other == q {
		return 0
	}
	byValue := func(a, b *valueEntry[K, V]) int {
		return compareBy(q.valueLess, a.value, b.value)
	}
	return compareSeq(q.keys.all(), other.keys.all(), func(a, b *keyEntry[K, V]) int {
		if c := compareBy(q.keyLess, a.key, b.key); c != 0 {
			return c
		}
		return compareSeq(a.values.Items(), b.values.Items(), byValue)
	})
}

// Equal reports whether q and other hold the same records.
func (q *Queue[K, V]) Equal(other *Queue[K, V]) bool {
	if q.size != other.size {
		return false
	}
	return q.Compare(other) == 0
}

// NotEqual is the negation of Equal.
func (q *Queue[K, V]) NotEqual(other *Queue[K, V]) bool {
	return !q.Equal(other)
}

// Less reports whether q orders before other.
func (q *Queue[K, V]) Less(other *Queue[K, V]) bool {
	return q.Compare(other) < 0
}

// LessEqual reports whether q does not order after other.
func (q *Queue[K, V]) LessEqual(other *Queue[K, V]) bool {
	return q.Compare(other) <= 0
}

// Greater reports whether q orders after other.
func (q *Queue[K, V]) Greater(other *Queue[K, V]) bool {
	return q.Compare(other) > 0
}

// GreaterEqual reports whether q does not order before other.
func (q *Queue[K, V]) GreaterEqual(other *Queue[K, V]) bool {
	return q.Compare(other) >= 0
}

func compareBy[T any](less func(a, b T) bool, a, b T) int {
	switch {
	case less(a, b):
		return -1
	case less(b, a):
		return 1
	default:
		return 0
	}
}

// compareSeq compares two sequences element by element; a sequence that is a
// prefix of the other is smaller.
func compareSeq[T any](a, b iter.Seq[T], compare func(x, y T) int) int {
	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	for {
		x, okA := nextA()
		y, okB := nextB()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}
		if c := compare(x, y); c != 0 {
			return c
		}
	}
}
