package priority

import (
	"iter"

	"github.com/davidvella/dpq/multiset"
	"github.com/google/btree"
)

// keyEntry is one distinct key and the multiset of values it is paired with.
type keyEntry[K, V any] struct {
	key    K
	values *multiset.Multiset[*valueEntry[K, V]]
}

// valueEntry is one distinct value and the multiset of keys it is paired with.
type valueEntry[K, V any] struct {
	value V
	keys  *multiset.Multiset[*keyEntry[K, V]]
}

func (e *keyEntry[K, V]) item() K   { return e.key }
func (e *valueEntry[K, V]) item() V { return e.value }

// linked returns the number of records that go through the entry.
func (e *keyEntry[K, V]) linked() int   { return e.values.Len() }
func (e *valueEntry[K, V]) linked() int { return e.keys.Len() }

type entry[T any] interface {
	item() T
	linked() int
}

// index is an ordered set of entries keyed by their item. No two entries hold
// equivalent items.
type index[T any, E entry[T]] struct {
	tree  *btree.BTreeG[E]
	probe func(T) E // builds a lookup-only entry
	fresh func(T) E // builds an entry with an empty multiset
}

func newIndex[T any, E entry[T]](degree int, less func(a, b T) bool, probe, fresh func(T) E) *index[T, E] {
	return &index[T, E]{
		tree: btree.NewG[E](degree, func(a, b E) bool {
			return less(a.item(), b.item())
		}),
		probe: probe,
		fresh: fresh,
	}
}

// find returns the entry holding an item equivalent to t.
func (ix *index[T, E]) find(t T) (E, bool) {
	return ix.tree.Get(ix.probe(t))
}

// obtain returns the entry for t, creating it from a copy of t when absent.
// created reports whether a new entry was inserted.
func (ix *index[T, E]) obtain(t T, copyItem func(T) (T, error)) (e E, created bool, err error) {
	if e, ok := ix.find(t); ok {
		return e, false, nil
	}
	c, err := copyItem(t)
	if err != nil {
		return e, false, err
	}
	e = ix.fresh(c)
	ix.tree.ReplaceOrInsert(e)
	return e, true, nil
}

func (ix *index[T, E]) insert(e E) {
	ix.tree.ReplaceOrInsert(e)
}

// remove deletes e. The deletion runs on a lazy copy of the tree that replaces
// it only once done, so a panicking less leaves the index as it was.
func (ix *index[T, E]) remove(e E) {
	c := ix.tree.Clone()
	c.Delete(e)
	ix.tree = c
}

// release removes e once no record goes through it, and reports whether it did.
func (ix *index[T, E]) release(e E) bool {
	if e.linked() != 0 {
		return false
	}
	ix.remove(e)
	return true
}

func (ix *index[T, E]) min() (E, bool) {
	return ix.tree.Min()
}

func (ix *index[T, E]) max() (E, bool) {
	return ix.tree.Max()
}

func (ix *index[T, E]) len() int {
	return ix.tree.Len()
}

// all returns the entries in ascending order of their items.
func (ix *index[T, E]) all() iter.Seq[E] {
	return func(yield func(E) bool) {
		ix.tree.Ascend(func(e E) bool {
			return yield(e)
		})
	}
}

func newKeyIndex[K, V any](o options[K, V], keyLess func(a, b K) bool, valueLess func(a, b V) bool) *index[K, *keyEntry[K, V]] {
	byValue := func(a, b *valueEntry[K, V]) bool { return valueLess(a.value, b.value) }
	return newIndex[K, *keyEntry[K, V]](o.degree, keyLess,
		func(k K) *keyEntry[K, V] { return &keyEntry[K, V]{key: k} },
		func(k K) *keyEntry[K, V] {
			return &keyEntry[K, V]{key: k, values: multiset.New(o.degree, byValue)}
		},
	)
}

func newValueIndex[K, V any](o options[K, V], keyLess func(a, b K) bool, valueLess func(a, b V) bool) *index[V, *valueEntry[K, V]] {
	byKey := func(a, b *keyEntry[K, V]) bool { return keyLess(a.key, b.key) }
	return newIndex[V, *valueEntry[K, V]](o.degree, valueLess,
		func(v V) *valueEntry[K, V] { return &valueEntry[K, V]{value: v} },
		func(v V) *valueEntry[K, V] {
			return &valueEntry[K, V]{value: v, keys: multiset.New(o.degree, byKey)}
		},
	)
}
