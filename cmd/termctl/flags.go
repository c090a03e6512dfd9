// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Global flags precede the subcommand; each subcommand parses its own flag set

package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

type cliArgs struct {
	version   bool
	logLevel  string
	providers []string
	timeout   time.Duration
	poll      time.Duration
	command   string
	rest      []string
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var (
		args      cliArgs
		providers string
	)

	fs := flag.NewFlagSet("termctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.StringVar(&args.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&providers, "providers", "", "Comma-separated size strategies in priority order (fd,mode,stty,env)")
	fs.DurationVar(&args.timeout, "timeout", 0, "Timeout for each size probe command")
	fs.DurationVar(&args.poll, "poll", 0, "Input poll interval for keys")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: termctl [flags] <command> [args]\n\ncommands:\n")
		for _, c := range commands {
			fmt.Fprintf(stderr, "  %-10s %s\n", c.name, c.summary)
		}
		fmt.Fprintf(stderr, "\nflags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	if providers != "" {
		for _, p := range strings.Split(providers, ",") {
			if p = strings.TrimSpace(p); p != "" {
				args.providers = append(args.providers, p)
			}
		}
	}
	if rest := fs.Args(); len(rest) > 0 {
		args.command = rest[0]
		args.rest = rest[1:]
	}
	return args, nil
}
