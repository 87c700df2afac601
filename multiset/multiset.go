package multiset

import (
	"iter"

	"github.com/google/btree"
)

// bucket holds one distinct item and the number of times it occurs.
type bucket[T any] struct {
	item  T
	count int
}

// Multiset is an ordered multiset backed by a B-tree of buckets.
type Multiset[T any] struct {
	tree *btree.BTreeG[bucket[T]]
	size int
}

// New creates an empty multiset ordered by less. degree is the B-tree degree.
func New[T any](degree int, less func(a, b T) bool) *Multiset[T] {
	return &Multiset[T]{
		tree: btree.NewG[bucket[T]](degree, func(a, b bucket[T]) bool {
			return less(a.item, b.item)
		}),
	}
}

// Insert adds one occurrence of item.
func (m *Multiset[T]) Insert(item T) {
	m.InsertN(item, 1)
}

// InsertN adds n occurrences of item. Non-positive n is a no-op.
func (m *Multiset[T]) InsertN(item T, n int) {
	if n <= 0 {
		return
	}
	b, ok := m.tree.Get(bucket[T]{item: item})
	if !ok {
		b = bucket[T]{item: item}
	}
	b.count += n
	// Buckets are stored by value, so the updated count has to be written back.
	m.tree.ReplaceOrInsert(b)
	m.size += n
}

// Delete removes a single occurrence of item and reports whether one was present.
func (m *Multiset[T]) Delete(item T) bool {
	b, ok := m.tree.Get(bucket[T]{item: item})
	if !ok {
		return false
	}
	if b.count > 1 {
		b.count--
		m.tree.ReplaceOrInsert(b)
	} else {
		m.tree = deleteFrom(m.tree, b)
	}
	m.size--
	return true
}

// deleteFrom removes item from a lazy copy of tree and returns the copy. Removal
// may merge nodes before less is called on the lower levels; should less panic
// there, only the copy is left half-rebalanced.
func deleteFrom[T any](tree *btree.BTreeG[T], item T) *btree.BTreeG[T] {
	c := tree.Clone()
	c.Delete(item)
	return c
}

// Count returns the number of occurrences of item.
func (m *Multiset[T]) Count(item T) int {
	b, ok := m.tree.Get(bucket[T]{item: item})
	if !ok {
		return 0
	}
	return b.count
}

// Len returns the total number of occurrences.
func (m *Multiset[T]) Len() int {
	return m.size
}

// Distinct returns the number of distinct items.
func (m *Multiset[T]) Distinct() int {
	return m.tree.Len()
}

// Empty reports whether the multiset holds no items.
func (m *Multiset[T]) Empty() bool {
	return m.size == 0
}

// Min returns the smallest item.
func (m *Multiset[T]) Min() (T, bool) {
	b, ok := m.tree.Min()
	return b.item, ok
}

// Max returns the largest item.
func (m *Multiset[T]) Max() (T, bool) {
	b, ok := m.tree.Max()
	return b.item, ok
}

// All returns the distinct items in ascending order together with their counts.
func (m *Multiset[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		m.tree.Ascend(func(b bucket[T]) bool {
			return yield(b.item, b.count)
		})
	}
}

// Items returns every occurrence in ascending order. Equivalent items are
// yielded once per occurrence.
func (m *Multiset[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		m.tree.Ascend(func(b bucket[T]) bool {
			for range b.count {
				if !yield(b.item) {
					return false
				}
			}
			return true
		})
	}
}

// Clear removes every item.
func (m *Multiset[T]) Clear() {
	m.tree.Clear(false)
	m.size = 0
}
