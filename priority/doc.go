// Package priority implements a generic dual-indexed priority queue: an associative
// container that is at the same time a priority queue ordered by value and a
// dictionary ordered by key.
//
// The queue stores (key, value) records. Keys and values may repeat independently,
// and the same (key, value) pair may be inserted several times; every insert is
// counted as its own record. Two ordered indices describe the same set of records:
//
//   - the key index maps every distinct key to the multiset of its values
//   - the value index maps every distinct value to the multiset of its keys
//
// Each distinct key and each distinct value is copied into the queue exactly once and
// shared by both indices.
//
// Key features:
//   - Generic implementation over any key and value types with a strict weak ordering
//   - O(log n) insertion, extremal deletion and value changes
//   - O(log n) access to the smallest and largest values and one of their keys
//   - Strong failure guarantee: a failed Insert, ChangeValue, Merge or CopyFrom leaves
//     the queue exactly as it was
//   - Value semantics: Clone, CopyFrom, MoveFrom, Swap and lexicographic comparison
//
// Basic usage:
//
//	pq := priority.New[string, int]()
//
//	_ = pq.Insert("task1", 5)
//	_ = pq.Insert("task2", 3)
//	_ = pq.Insert("task3", 7)
//
//	value, _ := pq.MinValue() // 3
//	key, _ := pq.MinKey()     // "task2"
//
//	pq.DeleteMin()
//
//	// Move task3 to the front
//	if err := pq.ChangeValue("task3", 1); err != nil {
//	    // errors.Is(err, priority.ErrKeyNotFound)
//	}
//
// Failures:
//
// Copying a key or value into the queue goes through the copiers configured with
// WithKeyCopier and WithValueCopier. When a copier returns an error, or a comparison
// function panics, the operation undoes every step it had already applied before
// returning the error or letting the panic continue. Comparison functions must be
// deterministic: undoing a step repeats comparisons that have already succeeded.
//
// A Queue is not safe for concurrent use. Callers sharing an instance between
// goroutines must serialize access themselves.
package priority
