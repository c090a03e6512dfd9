// ABOUTME: raw subcommand: enters raw mode, holds it, restores, and reports each transition
// ABOUTME: Exercises the enable/disable cycle against the real terminal

package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/mauromedda/termctl/pkg/term/terminal"
)

func runRaw(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("raw", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	hold := fs.Duration("hold", time.Second, "How long to stay in raw mode")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := a.openTerminal()
	if err != nil {
		return err
	}
	defer t.Close()
	defer terminal.RestoreOnPanic(t)

	return rawCycle(ctx, t, *hold)
}

// rawCycle enables raw mode, waits, disables it, and writes a line per
// step. Enabling twice is reported to show it is a no-op.
func rawCycle(ctx context.Context, t terminal.Terminal, hold time.Duration) error {
	report := func(step string) {
		fmt.Fprintf(t, "%-8s raw=%v\r\n", step, t.IsRawMode())
	}

	report("before")
	if err := t.EnterRawMode(); err != nil {
		return err
	}
	report("enabled")
	if err := t.EnterRawMode(); err != nil {
		return err
	}
	report("again")

	select {
	case <-time.After(hold):
	case <-ctx.Done():
	}

	if err := t.ExitRawMode(); err != nil {
		return err
	}
	report("restored")
	return nil
}
