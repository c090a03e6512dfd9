// ABOUTME: CLI entry point for termctl, a probe tool for the terminal control layer
// ABOUTME: Parses flags, loads config, sets the log level, dispatches to a subcommand

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	// termfix must be initialised before anything renders with lipgloss so
	// no background-colour query is sent while the terminal is raw.
	_ "github.com/mauromedda/termctl/internal/termfix"

	"github.com/mauromedda/termctl/internal/config"
	pilog "github.com/mauromedda/termctl/internal/log"
	"github.com/mauromedda/termctl/pkg/term/info"
	"github.com/mauromedda/termctl/pkg/term/process"
	"github.com/mauromedda/termctl/pkg/term/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		printVersion(os.Stdout)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app carries the resolved settings and output streams into subcommands.
type app struct {
	settings config.Settings
	stdout   io.Writer
	stderr   io.Writer
	// open builds the terminal for a subcommand; nil means the process's
	// own console.
	open func(terminal.Options) (terminal.Terminal, error)
}

func run(args cliArgs) error {
	if args.command == "" {
		return errors.New("no command given (try: termctl size)")
	}
	cmd, err := resolveCommand(args.command)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	loaded, err := config.Load(cwd)
	if err != nil {
		return err
	}
	settings := applyOverrides(*loaded, args).WithDefaults()
	if err := settings.Validate(); err != nil {
		return err
	}

	if level, ok := pilog.ParseLevel(settings.LogLevel); ok {
		pilog.SetLevel(level)
	}
	if err := settings.ApplyEnv(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{settings: settings, stdout: os.Stdout, stderr: os.Stderr}
	pilog.Debug("termctl: running %s with providers %v", cmd.name, a.providerNames())
	return cmd.run(ctx, a, args.rest)
}

// applyOverrides lets command-line flags win over config files.
func applyOverrides(s config.Settings, args cliArgs) config.Settings {
	if len(args.providers) > 0 {
		s.Providers = args.providers
	}
	if args.timeout > 0 {
		s.ProbeTimeout = args.timeout
	}
	if args.poll > 0 {
		s.PollInterval = args.poll
	}
	if args.logLevel != "" {
		s.LogLevel = args.logLevel
	}
	return s
}

func (a *app) providerNames() []string {
	if len(a.settings.Providers) > 0 {
		return a.settings.Providers
	}
	return info.DefaultOrder(terminal.IsWindows())
}

func (a *app) runner() process.Runner {
	return &process.ExecRunner{Timeout: a.settings.ProbeTimeout, Stdin: os.Stdin}
}

func (a *app) terminalOptions() terminal.Options {
	return terminal.Options{
		Runner:    a.runner(),
		Providers: a.providerNames(),
	}
}

func (a *app) openTerminal() (terminal.Terminal, error) {
	if a.open != nil {
		return a.open(a.terminalOptions())
	}
	t, err := terminal.NewProcessTerminal(a.terminalOptions())
	if err != nil {
		return nil, err
	}
	return t, nil
}

func runVersion(_ context.Context, a *app, _ []string) error {
	printVersion(a.stdout)
	return nil
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "termctl %s (%s) built %s\n", version, commit, date)
}
