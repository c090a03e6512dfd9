// ABOUTME: keys subcommand: raw mode plus a poll loop printing each input chunk
// ABOUTME: A poller and a printer run under one errgroup; Ctrl+C in the input or a signal stops both

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/termctl/internal/keyfmt"
	"github.com/mauromedda/termctl/pkg/term/terminal"
)

const keysLabelWidth = 24

// errStop ends the keys loop without reporting an error.
var errStop = errors.New("stop")

func runKeys(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	count := fs.Int("count", 0, "Stop after N chunks (0 = until Ctrl+C)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := a.openTerminal()
	if err != nil {
		return err
	}
	defer t.Close()
	defer terminal.RestoreOnPanic(t)

	if err := t.EnterRawMode(); err != nil {
		return err
	}
	fmt.Fprint(t, "press keys, Ctrl+C to quit\r\n")

	return echoKeys(ctx, t, a.settings.PollInterval, *count)
}

// echoKeys prints one line per input chunk until Ctrl+C arrives, the
// input ends, ctx is done, or limit chunks were printed (limit > 0).
func echoKeys(ctx context.Context, t terminal.Terminal, every time.Duration, limit int) error {
	chunks := make(chan []byte)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer terminal.RecoverGoroutine(t)
		defer close(chunks)
		return pollInput(gctx, t, every, chunks)
	})

	g.Go(func() error {
		n := 0
		for chunk := range chunks {
			if _, err := fmt.Fprintf(t, "%s\r\n", keyfmt.Line(chunk, keysLabelWidth)); err != nil {
				return err
			}
			n++
			if bytes.IndexByte(chunk, 0x03) >= 0 || (limit > 0 && n >= limit) {
				return errStop
			}
		}
		return nil
	})

	err := g.Wait()
	if errors.Is(err, errStop) || (err != nil && ctx.Err() != nil) {
		return nil
	}
	return err
}

func pollInput(ctx context.Context, t terminal.Terminal, every time.Duration, out chan<- []byte) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		chunk, err := t.ReadInput()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if chunk != nil {
			select {
			case out <- chunk:
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
