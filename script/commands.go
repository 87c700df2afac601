package script

import (
	"strconv"
)

type command struct {
	params []param
	run    func(r *Runner, args []arg) (string, error)
}

var commands = map[string]command{
	"insert": {
		params: []param{number, number},
		run: func(r *Runner, args []arg) (string, error) {
			return "", r.queue.Insert(args[0].n, args[1].n)
		},
	},
	"change-value": {
		params: []param{number, number},
		run: func(r *Runner, args []arg) (string, error) {
			return "", r.queue.ChangeValue(args[0].n, args[1].n)
		},
	},
	"delete-min": {
		run: func(r *Runner, _ []arg) (string, error) {
			r.queue.DeleteMin()
			return "", nil
		},
	},
	"delete-max": {
		run: func(r *Runner, _ []arg) (string, error) {
			r.queue.DeleteMax()
			return "", nil
		},
	},
	"min-value": {run: query((*queue).MinValue)},
	"max-value": {run: query((*queue).MaxValue)},
	"min-key":   {run: query((*queue).MinKey)},
	"max-key":   {run: query((*queue).MaxKey)},
	"size": {
		run: func(r *Runner, _ []arg) (string, error) {
			return strconv.Itoa(r.queue.Len()), nil
		},
	},
	"empty": {
		run: func(r *Runner, _ []arg) (string, error) {
			return strconv.FormatBool(r.queue.Empty()), nil
		},
	},
	"contains": {
		params: []param{number},
		run: func(r *Runner, args []arg) (string, error) {
			return strconv.FormatBool(r.queue.Contains(args[0].n)), nil
		},
	},
	"save": {
		params: []param{newSlot},
		run: func(r *Runner, args []arg) (string, error) {
			c, err := r.queue.Clone()
			if err != nil {
				return "", err
			}
			r.slots[args[0].name] = c
			return "", nil
		},
	},
	"load": {
		params: []param{slot},
		run: func(r *Runner, args []arg) (string, error) {
			return "", r.queue.CopyFrom(args[0].slot)
		},
	},
	"merge": {
		params: []param{slot},
		run: func(r *Runner, args []arg) (string, error) {
			return "", r.queue.Merge(args[0].slot)
		},
	},
	"swap": {
		params: []param{slot},
		run: func(r *Runner, args []arg) (string, error) {
			r.queue.Swap(args[0].slot)
			return "", nil
		},
	},
	"compare": {
		params: []param{slot},
		run: func(r *Runner, args []arg) (string, error) {
			switch c := r.queue.Compare(args[0].slot); {
			case c < 0:
				return "<", nil
			case c > 0:
				return ">", nil
			default:
				return "==", nil
			}
		},
	},
	"clear": {
		run: func(r *Runner, _ []arg) (string, error) {
			r.queue.Clear()
			return "", nil
		},
	},
	"validate": {
		run: func(r *Runner, _ []arg) (string, error) {
			if err := r.queue.Validate(); err != nil {
				return "", err
			}
			return "ok", nil
		},
	},
}

// query adapts an extremal query of the queue to a command.
func query(f func(*queue) (int64, error)) func(*Runner, []arg) (string, error) {
	return func(r *Runner, _ []arg) (string, error) {
		n, err := f(r.queue)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	}
}
