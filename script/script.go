package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davidvella/dpq/monitoring"
	"github.com/davidvella/dpq/priority"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArity          = errors.New("wrong number of arguments")
	ErrUnknownSlot    = errors.New("unknown slot")
)

// Metric names maintained by a Runner.
const (
	MetricCommands = "commands_total"
	MetricErrors   = "errors_total"
	MetricQueueLen = "queue_len"
)

// SyntaxError reports a line that could not be executed as written.
type SyntaxError struct {
	Line int
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("script: line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Options configures a Runner.
type Options struct {
	Strict bool              // stop at the first queue error
	Logger zerolog.Logger    // receives a debug entry per command; the zero value discards
	Stats  *monitoring.Stats // created when nil
}

type queue = priority.Queue[int64, int64]

// Runner executes scripts against one queue and a set of named slots. The state
// is kept between calls to Run.
type Runner struct {
	queue  *queue
	slots  map[string]*queue
	out    io.Writer
	strict bool
	logger zerolog.Logger
	stats  *monitoring.Stats
}

// New creates a runner with an empty queue that prints results to out.
func New(out io.Writer, opts Options) *Runner {
	stats := opts.Stats
	if stats == nil {
		stats = monitoring.NewStats()
	}
	stats.Register(monitoring.Metric{
		Name:        MetricCommands,
		Type:        monitoring.Counter,
		Description: "Total number of commands executed",
	})
	stats.Register(monitoring.Metric{
		Name:        MetricErrors,
		Type:        monitoring.Counter,
		Description: "Total number of commands that failed",
	})
	stats.Register(monitoring.Metric{
		Name:        MetricQueueLen,
		Type:        monitoring.Gauge,
		Description: "Number of records in the queue",
	})
	for name := range commands {
		stats.Register(monitoring.Metric{
			Name:        commandMetric(name),
			Type:        monitoring.Counter,
			Description: fmt.Sprintf("Number of %s commands executed", name),
		})
	}

	return &Runner{
		queue:  priority.New[int64, int64](),
		slots:  make(map[string]*queue),
		out:    out,
		strict: opts.Strict,
		logger: opts.Logger,
		stats:  stats,
	}
}

func commandMetric(name string) string {
	return "command_" + strings.ReplaceAll(name, "-", "_") + "_total"
}

// Stats returns the statistics collected so far.
func (r *Runner) Stats() *monitoring.Stats {
	return r.stats
}

// Queue returns the queue the runner operates on.
func (r *Runner) Queue() *priority.Queue[int64, int64] {
	return r.queue
}

// Run executes every line read from in. It stops at the first syntax error, at
// the first queue error when strict, or when ctx is done.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.exec(line, scanner.Text()); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "script: read")
}

func (r *Runner) exec(line int, text string) error {
	fields := strings.Fields(text)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	name, args := fields[0], fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return &SyntaxError{Line: line, Text: text, Err: ErrUnknownCommand}
	}
	if len(args) != len(cmd.params) {
		return &SyntaxError{Line: line, Text: text, Err: ErrArity}
	}

	parsed := make([]arg, len(args))
	for i, p := range cmd.params {
		a, err := p.parse(r, args[i])
		if err != nil {
			return &SyntaxError{Line: line, Text: text, Err: err}
		}
		parsed[i] = a
	}

	r.stats.Inc(MetricCommands, 1)
	r.stats.Inc(commandMetric(name), 1)

	out, err := cmd.run(r, parsed)
	r.stats.Set(MetricQueueLen, float64(r.queue.Len()))
	if err != nil {
		r.stats.Inc(MetricErrors, 1)
		r.logger.Warn().Err(err).Int("line", line).Str("command", name).Msg("command failed")
		if r.strict || !recoverable(err) {
			return errors.Wrapf(err, "script: line %d", line)
		}
		_, werr := fmt.Fprintf(r.out, "error: %v\n", err)
		return werr
	}

	r.logger.Debug().Int("line", line).Str("command", name).Int("len", r.queue.Len()).Msg("executed")
	if out == "" {
		return nil
	}
	_, err = fmt.Fprintln(r.out, out)
	return err
}

func recoverable(err error) bool {
	return errors.Is(err, priority.ErrEmptyQueue) || errors.Is(err, priority.ErrKeyNotFound)
}

// arg is a parsed command argument.
type arg struct {
	n    int64
	slot *queue
	name string
}

type param int

const (
	number param = iota // an int64
	slot                // an existing slot
	newSlot             // a slot name, existing or not
)

func (p param) parse(r *Runner, s string) (arg, error) {
	switch p {
	case number:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return arg{}, errors.Wrapf(err, "invalid number %q", s)
		}
		return arg{n: n}, nil
	case slot:
		q, ok := r.slots[s]
		if !ok {
			return arg{}, errors.Wrapf(ErrUnknownSlot, "%q", s)
		}
		return arg{slot: q, name: s}, nil
	default:
		return arg{name: s}, nil
	}
}
