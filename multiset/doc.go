// Package multiset implements a generic ordered multiset: a collection of items kept
// in the order defined by a user-provided less function, where an item may occur
// more than once.
//
// Each distinct item is stored once in a B-tree bucket together with the number of
// times it occurs, so repeated inserts of an equivalent item do not grow the tree.
// Two items a and b are equivalent when neither less(a, b) nor less(b, a) holds.
//
// Key features:
//   - Generic implementation supporting any item type with a strict weak ordering
//   - O(log n) insertion and deletion of a single occurrence
//   - O(log n) access to the smallest and largest items
//   - Ordered iteration over distinct items with their counts, or over every occurrence
//
// Basic usage:
//
//	ms := multiset.New[int](8, func(a, b int) bool {
//	    return a < b
//	})
//
//	ms.Insert(3)
//	ms.Insert(1)
//	ms.Insert(3)
//
//	first, _ := ms.Min() // 1
//	ms.Count(3)          // 2
//	ms.Len()             // 3
//
//	ms.Delete(3) // removes a single occurrence
//
// A panic raised by the less function during Insert or Delete leaves the multiset
// unchanged. Deleting the last occurrence of an item works on a lazy copy of the
// B-tree, which is published only once the removal has finished. The multiset is
// not safe for concurrent use.
package multiset
