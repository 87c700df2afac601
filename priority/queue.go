package priority

import (
	"cmp"

	"github.com/pkg/errors"
)

// Queue is a priority queue of (key, value) records indexed both by key and by
// value. The zero value is not usable; create queues with New or NewFunc.
type Queue[K, V any] struct {
	keys      *index[K, *keyEntry[K, V]]
	values    *index[V, *valueEntry[K, V]]
	size      int
	keyLess   func(a, b K) bool
	valueLess func(a, b V) bool
	opts      options[K, V]
}

// New creates an empty queue ordering keys and values by their natural order.
func New[K, V cmp.Ordered](opts ...Option[K, V]) *Queue[K, V] {
	return NewFunc(cmp.Less[K], cmp.Less[V], opts...)
}

// NewFunc creates an empty queue with the given orderings. Both functions must
// define a strict weak ordering and must not depend on anything but their arguments.
func NewFunc[K, V any](keyLess func(a, b K) bool, valueLess func(a, b V) bool, opts ...Option[K, V]) *Queue[K, V] {
	o := defaultOptions[K, V]()
	for _, opt := range opts {
		opt(&o)
	}

	q := &Queue[K, V]{
		keyLess:   keyLess,
		valueLess: valueLess,
		opts:      o,
	}
	q.reset()
	return q
}

func (q *Queue[K, V]) reset() {
	q.keys = newKeyIndex(q.opts, q.keyLess, q.valueLess)
	q.values = newValueIndex(q.opts, q.keyLess, q.valueLess)
	q.size = 0
}

// Len returns the number of records in the queue.
func (q *Queue[K, V]) Len() int {
	return q.size
}

// Empty reports whether the queue holds no records.
func (q *Queue[K, V]) Empty() bool {
	return q.size == 0
}

// Contains reports whether any record has the given key.
func (q *Queue[K, V]) Contains(key K) bool {
	_, ok := q.keys.find(key)
	return ok
}

// Insert adds the record (key, value). Inserting a pair that is already present
// adds another record. On failure the queue is left unchanged.
func (q *Queue[K, V]) Insert(key K, value V) error {
	var tx txn
	defer tx.finish()

	ke, created, err := q.keys.obtain(key, q.opts.copyKey)
	if err != nil {
		return errors.Wrap(err, "priority: copy key")
	}
	if created {
		tx.onRollback(func() { q.keys.remove(ke) })
	}

	ve, created, err := q.values.obtain(value, q.opts.copyValue)
	if err != nil {
		return errors.Wrap(err, "priority: copy value")
	}
	if created {
		tx.onRollback(func() { q.values.remove(ve) })
	}

	ke.values.Insert(ve)
	tx.onRollback(func() { ke.values.Delete(ve) })
	ve.keys.Insert(ke)

	tx.commit()
	q.size++
	return nil
}

// MinValue returns the smallest value in the queue.
func (q *Queue[K, V]) MinValue() (V, error) {
	ve, ok := q.values.min()
	if !ok {
		var zero V
		return zero, ErrEmptyQueue
	}
	return ve.value, nil
}

// MaxValue returns the largest value in the queue.
func (q *Queue[K, V]) MaxValue() (V, error) {
	ve, ok := q.values.max()
	if !ok {
		var zero V
		return zero, ErrEmptyQueue
	}
	return ve.value, nil
}

// MinKey returns a key paired with the smallest value. When several keys hold it,
// the smallest of them is returned.
func (q *Queue[K, V]) MinKey() (K, error) {
	ve, ok := q.values.min()
	if !ok {
		var zero K
		return zero, ErrEmptyQueue
	}
	return ve.firstKey().key, nil
}

// MaxKey returns a key paired with the largest value. When several keys hold it,
// the smallest of them is returned.
func (q *Queue[K, V]) MaxKey() (K, error) {
	ve, ok := q.values.max()
	if !ok {
		var zero K
		return zero, ErrEmptyQueue
	}
	return ve.firstKey().key, nil
}

// DeleteMin removes one record holding the smallest value, the one that MinKey
// reports. It does nothing on an empty queue.
func (q *Queue[K, V]) DeleteMin() {
	if ve, ok := q.values.min(); ok {
		q.deleteRecord(ve.firstKey(), ve)
	}
}

// DeleteMax removes one record holding the largest value, the one that MaxKey
// reports. It does nothing on an empty queue.
func (q *Queue[K, V]) DeleteMax() {
	if ve, ok := q.values.max(); ok {
		q.deleteRecord(ve.firstKey(), ve)
	}
}

func (e *valueEntry[K, V]) firstKey() *keyEntry[K, V] {
	ke, _ := e.keys.Min()
	return ke
}

// deleteRecord removes one (ke, ve) record.
func (q *Queue[K, V]) deleteRecord(ke *keyEntry[K, V], ve *valueEntry[K, V]) {
	var tx txn
	defer tx.finish()

	q.unlink(&tx, ke, ve)

	tx.commit()
	q.size--
}

// unlink removes one (ke, ve) record from both indices, dropping entries left
// without records. Each step is registered with tx.
func (q *Queue[K, V]) unlink(tx *txn, ke *keyEntry[K, V], ve *valueEntry[K, V]) {
	ke.values.Delete(ve)
	tx.onRollback(func() { ke.values.Insert(ve) })
	if q.keys.release(ke) {
		tx.onRollback(func() { q.keys.insert(ke) })
	}

	ve.keys.Delete(ke)
	tx.onRollback(func() { ve.keys.Insert(ke) })
	if q.values.release(ve) {
		tx.onRollback(func() { q.values.insert(ve) })
	}
}

// ChangeValue moves one record with the given key to a new value. When the key
// has several values, the record holding the smallest one is moved. It returns
// ErrKeyNotFound when no record has the key. On failure the queue is left
// unchanged.
func (q *Queue[K, V]) ChangeValue(key K, value V) error {
	ke, ok := q.keys.find(key)
	if !ok {
		return ErrKeyNotFound
	}
	old, _ := ke.values.Min()

	var tx txn
	defer tx.finish()

	ve, created, err := q.values.obtain(value, q.opts.copyValue)
	if err != nil {
		return errors.Wrap(err, "priority: copy value")
	}
	if created {
		tx.onRollback(func() { q.values.remove(ve) })
	}

	ve.keys.Insert(ke)
	tx.onRollback(func() { ve.keys.Delete(ke) })
	ke.values.Insert(ve)
	tx.onRollback(func() { ke.values.Delete(ve) })

	// The new record is linked, so ke keeps at least one value. When the value
	// did not change, ve is old and this only drops the extra links.
	q.unlink(&tx, ke, old)

	tx.commit()
	return nil
}

// Merge moves every record of other into q and leaves other empty. The work is
// done on a copy of q that replaces q only once every record was inserted, so on
// failure both queues keep their contents. Merging a queue with itself does
// nothing.
func (q *Queue[K, V]) Merge(other *Queue[K, V]) error {
	if other == q || other.Empty() {
		return nil
	}

	tmp, err := q.Clone()
	if err != nil {
		return errors.Wrap(err, "priority: merge")
	}
	for ve := range other.values.all() {
		for ke, n := range ve.keys.All() {
			for range n {
				if err := tmp.Insert(ke.key, ve.value); err != nil {
					return errors.Wrap(err, "priority: merge")
				}
			}
		}
	}

	q.Swap(tmp)
	other.Clear()
	return nil
}

// Clone returns a deep copy of q. Keys and values are copied with the configured
// copiers; q is not modified, whether or not copying succeeds.
func (q *Queue[K, V]) Clone() (*Queue[K, V], error) {
	c := &Queue[K, V]{
		keyLess:   q.keyLess,
		valueLess: q.valueLess,
		opts:      q.opts,
	}
	c.reset()

	copied := make(map[*valueEntry[K, V]]*valueEntry[K, V], q.values.len())
	for ve := range q.values.all() {
		v, err := q.opts.copyValue(ve.value)
		if err != nil {
			return nil, errors.Wrap(err, "priority: copy value")
		}
		nve := c.values.fresh(v)
		c.values.insert(nve)
		copied[ve] = nve
	}

	for ke := range q.keys.all() {
		k, err := q.opts.copyKey(ke.key)
		if err != nil {
			return nil, errors.Wrap(err, "priority: copy key")
		}
		nke := c.keys.fresh(k)
		c.keys.insert(nke)
		for ve, n := range ke.values.All() {
			nve := copied[ve]
			nke.values.InsertN(nve, n)
			nve.keys.InsertN(nke, n)
		}
	}

	c.size = q.size
	return c, nil
}

// CopyFrom replaces the contents of q with a deep copy of src. On failure q is
// left unchanged.
func (q *Queue[K, V]) CopyFrom(src *Queue[K, V]) error {
	if src == q {
		return nil
	}
	c, err := src.Clone()
	if err != nil {
		return err
	}
	*q = *c
	return nil
}

// MoveFrom transfers the contents of src to q in constant time. The previous
// contents of q are discarded and src is left empty.
func (q *Queue[K, V]) MoveFrom(src *Queue[K, V]) {
	if src == q {
		return
	}
	*q = *src
	src.reset()
}

// Swap exchanges the contents of q and other in constant time.
func (q *Queue[K, V]) Swap(other *Queue[K, V]) {
	if other == q {
		return
	}
	*q, *other = *other, *q
}

// Swap exchanges the contents of a and b.
func Swap[K, V any](a, b *Queue[K, V]) {
	a.Swap(b)
}

// Clear removes every record.
func (q *Queue[K, V]) Clear() {
	q.reset()
}
