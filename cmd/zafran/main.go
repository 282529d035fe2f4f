package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// usageError marks a malformed command line; main exits with code 2 for it.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "zafran",
		Short: "Single-line terminal progress bars",
		Long: `zafran draws a progress bar that redraws itself in place on one terminal line.

Use "zafran demo" to watch the built-in sessions, or "zafran run" to drive a
bar from a config file, ZAFRAN_* environment variables and flags.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("zafran {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.AddCommand(newDemoCmd(), newRunCmd(), newVersionCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	// The bar may have been left mid-line.
	fmt.Fprintf(os.Stderr, "\nerror: %v\n", err)
	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(os.Stderr, "Run 'zafran --help' for usage.")
		os.Exit(2)
	}
	os.Exit(1)
}
