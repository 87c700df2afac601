// Command pqctl runs queue scripts from a file or standard input.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/davidvella/dpq/monitoring"
	"github.com/davidvella/dpq/script"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type runConfig struct {
	logLevel string
	strict   bool
	stats    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "pqctl",
		Short:         "Drive a dual-indexed priority queue from scripts",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newRunCommand())
	return root
}

func newRunCommand() *cobra.Command {
	var cfg runConfig

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Execute a script; reads standard input when no file or - is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "pqctl: open script")
				}
				defer f.Close()
				in = f
			}
			return run(cmd.Context(), cfg, in, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&cfg.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&cfg.strict, "strict", false, "stop at the first queue error")
	cmd.Flags().BoolVar(&cfg.stats, "stats", false, "print command statistics to stderr when done")
	return cmd
}

func run(ctx context.Context, cfg runConfig, in io.Reader, stdout, stderr io.Writer) error {
	level, err := monitoring.ParseLevel(cfg.logLevel)
	if err != nil {
		return err
	}
	logger := monitoring.NewLogger(stderr, "pqctl").Level(level)

	r := script.New(stdout, script.Options{
		Strict: cfg.strict,
		Logger: logger,
	})
	runErr := r.Run(ctx, in)
	if runErr != nil {
		logger.Error().Err(runErr).Msg("script failed")
	}

	if cfg.stats {
		for _, s := range r.Stats().Snapshot() {
			if _, err := fmt.Fprintf(stderr, "%s %g\n", s.Name, s.Value); err != nil {
				return err
			}
		}
	}
	return runErr
}
