package priority

import "github.com/pkg/errors"

var (
	// ErrEmptyQueue is returned by extremal queries on a queue without records.
	ErrEmptyQueue = errors.New("priority: queue is empty")
	// ErrKeyNotFound is returned by ChangeValue when the key is not in the queue.
	ErrKeyNotFound = errors.New("priority: key not found")
)
