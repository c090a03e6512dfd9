// ABOUTME: size subcommand: asks the terminal facade for its size, falling back to the bare provider chain
// ABOUTME: -all also asks every strategy on its own; -json switches to machine-readable output

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	pilog "github.com/mauromedda/termctl/internal/log"
	"github.com/mauromedda/termctl/pkg/term/info"
)

func runSize(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("size", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	asJSON := fs.Bool("json", false, "Print JSON")
	all := fs.Bool("all", false, "Also report each strategy on its own")
	if err := fs.Parse(args); err != nil {
		return err
	}

	report, err := a.sizeReport(ctx, *all)
	if err != nil {
		return err
	}

	if *asJSON {
		data, err := report.json()
		if err != nil {
			return fmt.Errorf("encoding size report: %w", err)
		}
		_, err = fmt.Fprintf(a.stdout, "%s\n", data)
		return err
	}
	_, err = fmt.Fprint(a.stdout, report.text())
	return err
}

func (a *app) sizeReport(ctx context.Context, perProvider bool) (sizeReport, error) {
	names := a.providerNames()
	runner := a.runner()
	fd := int(os.Stdout.Fd())

	var r sizeReport
	if t, err := a.openTerminal(); err == nil {
		r.Size, r.Known = t.Size(ctx)
		if err := t.Close(); err != nil {
			pilog.Warn("size: closing terminal: %v", err)
		}
	} else {
		// Not attached to a console (piped, redirected): the chain alone
		// still answers from stdout, env, or the mode command.
		pilog.Debug("size: no terminal (%v), using provider chain", err)
		chain, err := info.ChainFromNames(names, runner, fd)
		if err != nil {
			return sizeReport{}, err
		}
		r.Size, r.Known = info.SizeOf(ctx, chain)
	}

	if !perProvider {
		return r, nil
	}
	r.Providers = make([]providerResult, 0, len(names))
	for _, name := range names {
		single, err := info.ChainFromNames([]string{name}, runner, fd)
		if err != nil {
			return sizeReport{}, err
		}
		size, ok := info.SizeOf(ctx, single)
		r.Providers = append(r.Providers, providerResult{Name: name, Size: size, Known: ok})
	}
	return r, nil
}
