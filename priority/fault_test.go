package priority_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/davidvella/dpq/priority"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected failure")

// injector fails the n-th fallible call made after it is armed, then disarms.
type injector struct {
	armed     bool
	countdown int
	fired     bool
	copies    int
}

func (in *injector) arm(n int) {
	in.armed, in.countdown, in.fired = true, n, false
}

func (in *injector) disarm() {
	in.armed = false
}

func (in *injector) tick() bool {
	if !in.armed {
		return false
	}
	in.countdown--
	if in.countdown == 0 {
		in.armed, in.fired = false, true
		return true
	}
	return false
}

// newFaultyQueue returns a queue whose comparisons panic and whose copiers fail
// when the injector fires.
func newFaultyQueue(in *injector, records ...record) *priority.Queue[int, int] {
	less := func(a, b int) bool {
		if in.tick() {
			panic(errInjected)
		}
		return a < b
	}
	copier := func(x int) (int, error) {
		in.copies++
		if in.tick() {
			return 0, errInjected
		}
		return x, nil
	}
	q := priority.NewFunc(less, less,
		priority.WithDegree[int, int](2),
		priority.WithKeyCopier[int, int](copier),
		priority.WithValueCopier[int, int](copier),
	)
	for _, r := range records {
		if err := q.Insert(r.key, r.value); err != nil {
			panic(err)
		}
	}
	return q
}

// run calls f and turns a panic into an error.
func run(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return f()
}

var seed = []record{{1, 10}, {2, 20}, {2, 30}, {3, 10}, {5, 50}}

func TestQueue_StrongGuarantee(t *testing.T) {
	other := []record{{7, 70}, {1, 10}, {8, 5}, {8, 5}}

	tests := []struct {
		name string
		op   func(q, o *priority.Queue[int, int]) error
	}{
		{
			name: "insert new key and value",
			op:   func(q, _ *priority.Queue[int, int]) error { return q.Insert(4, 40) },
		},
		{
			name: "insert existing key",
			op:   func(q, _ *priority.Queue[int, int]) error { return q.Insert(2, 15) },
		},
		{
			name: "insert existing value",
			op:   func(q, _ *priority.Queue[int, int]) error { return q.Insert(6, 20) },
		},
		{
			name: "insert existing pair",
			op:   func(q, _ *priority.Queue[int, int]) error { return q.Insert(2, 20) },
		},
		{
			name: "change to new value",
			op:   func(q, _ *priority.Queue[int, int]) error { return q.ChangeValue(2, 25) },
		},
		{
			name: "change to existing value",
			op:   func(q, _ *priority.Queue[int, int]) error { return q.ChangeValue(3, 50) },
		},
		{
			name: "change last record of a value",
			op:   func(q, _ *priority.Queue[int, int]) error { return q.ChangeValue(5, 1) },
		},
		{
			name: "merge",
			op:   func(q, o *priority.Queue[int, int]) error { return q.Merge(o) },
		},
		{
			name: "copy from",
			op:   func(q, o *priority.Queue[int, int]) error { return q.CopyFrom(o) },
		},
		{
			name: "clone",
			op: func(q, _ *priority.Queue[int, int]) error {
				_, err := q.Clone()
				return err
			},
		},
		{
			name: "compare",
			op: func(q, o *priority.Queue[int, int]) error {
				_ = q.Less(o)
				return nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completed := false
			for n := 1; n <= 500 && !completed; n++ {
				in := &injector{}
				q := newFaultyQueue(in, seed...)
				o := newFaultyQueue(in, other...)
				qSnapshot := newQueue(t, seed...)
				oSnapshot := newQueue(t, other...)

				in.arm(n)
				err := run(func() error { return tt.op(q, o) })
				in.disarm()

				require.NoError(t, q.Validate())
				require.NoError(t, o.Validate())
				if !in.fired {
					require.NoError(t, err)
					completed = true
					continue
				}

				require.Error(t, err, "fault %d was swallowed", n)
				assert.True(t, sameRecords(q, qSnapshot), "fault %d changed the queue", n)
				assert.True(t, sameRecords(o, oSnapshot), "fault %d changed the other queue", n)
			}
			assert.True(t, completed, "operation never completed")
		})
	}
}

func TestQueue_CopierErrorIsWrapped(t *testing.T) {
	failing := func(int) (int, error) { return 0, errInjected }

	q := priority.New[int, int](priority.WithKeyCopier[int, int](failing))
	err := q.Insert(1, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errInjected)
	assert.Equal(t, "priority: copy key: injected failure", err.Error())
	assert.True(t, q.Empty())

	q = priority.New[int, int](priority.WithValueCopier[int, int](failing))
	err = q.Insert(1, 1)
	assert.ErrorIs(t, err, errInjected)
	assert.False(t, q.Contains(1))
	require.NoError(t, q.Validate())
}

func TestQueue_DeleteRollsBack(t *testing.T) {
	for n := 1; n <= 200; n++ {
		in := &injector{}
		q := newFaultyQueue(in, seed...)
		snapshot := newQueue(t, seed...)

		in.arm(n)
		err := run(func() error {
			q.DeleteMin()
			q.DeleteMax()
			return nil
		})
		fired := in.fired
		in.disarm()

		require.NoError(t, q.Validate())
		if !fired {
			assert.Equal(t, len(seed)-2, q.Len())
			return
		}
		require.Error(t, err)
		// The first delete may have completed before the fault.
		if q.Len() == len(seed) {
			assert.True(t, sameRecords(q, snapshot))
		} else {
			snapshot.DeleteMin()
			assert.True(t, sameRecords(q, snapshot))
		}
	}
	t.Fatal("deletes never completed")
}

func TestQueue_KeysAreCopiedOnce(t *testing.T) {
	in := &injector{}
	q := newFaultyQueue(in)

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Insert(1, 5))
	}
	assert.Equal(t, 2, in.copies, "one copy of the key and one of the value")
	assert.Equal(t, 5, q.Len())

	require.NoError(t, q.ChangeValue(1, 5))
	assert.Equal(t, 2, in.copies)

	_, err := q.Clone()
	require.NoError(t, err)
	assert.Equal(t, 4, in.copies)
}

// sameRecords compares a queue against its snapshot with injection off.
func sameRecords(q, want *priority.Queue[int, int]) bool {
	if q.Len() != want.Len() {
		return false
	}
	return want.Equal(q)
}
