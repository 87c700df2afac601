package priority

// txn is an undo log for a multi-step mutation. Steps that can fail register
// the action that reverts them; unless commit is reached, finish replays those
// actions in reverse order. finish is meant to be deferred so that the log is
// also replayed while a panic unwinds.
type txn struct {
	undo      []func()
	committed bool
}

// onRollback registers the action that reverts the step just applied.
func (t *txn) onRollback(f func()) {
	t.undo = append(t.undo, f)
}

func (t *txn) commit() {
	t.committed = true
}

func (t *txn) finish() {
	if t.committed {
		return
	}
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
}
