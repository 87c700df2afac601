package priority

import "github.com/pkg/errors"

// Validate checks that both indices describe the same set of records: every
// record counted once in each index, every cross-link present on both sides, no
// entry without records and no two entries for equivalent items. It returns an
// error describing the first violation found.
func (q *Queue[K, V]) Validate() error {
	if err := q.validateKeys(); err != nil {
		return err
	}
	return q.validateValues()
}

func (q *Queue[K, V]) validateKeys() error {
	var (
		total int
		prev  *keyEntry[K, V]
	)
	for ke := range q.keys.all() {
		if prev != nil && !q.keyLess(prev.key, ke.key) {
			return errors.Errorf("priority: key index out of order at %v", ke.key)
		}
		prev = ke
		if ke.values.Empty() {
			return errors.Errorf("priority: key %v has no values", ke.key)
		}
		for ve, n := range ke.values.All() {
			if found, ok := q.values.find(ve.value); !ok || found != ve {
				return errors.Errorf("priority: value %v of key %v is not in the value index", ve.value, ke.key)
			}
			if m := ve.keys.Count(ke); m != n {
				return errors.Errorf("priority: key %v holds value %v %d times, value index says %d", ke.key, ve.value, n, m)
			}
		}
		total += ke.values.Len()
	}
	if total != q.size {
		return errors.Errorf("priority: key index holds %d records, want %d", total, q.size)
	}
	return nil
}

func (q *Queue[K, V]) validateValues() error {
	var (
		total int
		prev  *valueEntry[K, V]
	)
	for ve := range q.values.all() {
		if prev != nil && !q.valueLess(prev.value, ve.value) {
			return errors.Errorf("priority: value index out of order at %v", ve.value)
		}
		prev = ve
		if ve.keys.Empty() {
			return errors.Errorf("priority: value %v has no keys", ve.value)
		}
		for ke, n := range ve.keys.All() {
			if found, ok := q.keys.find(ke.key); !ok || found != ke {
				return errors.Errorf("priority: key %v of value %v is not in the key index", ke.key, ve.value)
			}
			if m := ke.values.Count(ve); m != n {
				return errors.Errorf("priority: value %v holds key %v %d times, key index says %d", ve.value, ke.key, n, m)
			}
		}
		total += ve.keys.Len()
	}
	if total != q.size {
		return errors.Errorf("priority: value index holds %d records, want %d", total, q.size)
	}
	return nil
}
