// ABOUTME: Subcommand table and resolution by unique prefix with fuzzy "did you mean" hints
// ABOUTME: "termctl s" runs size; "termctl sz" suggests size

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/prefixtree/v2"
	"github.com/sahilm/fuzzy"
)

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{name: "size", summary: "Report the terminal size and which strategies can see it", run: runSize},
		{name: "keys", summary: "Echo raw input chunks until Ctrl+C", run: runKeys},
		{name: "raw", summary: "Enter raw mode, hold, and verify the restore", run: runRaw},
		{name: "version", summary: "Show version", run: runVersion},
	}
}

// errUnknownCommand is wrapped by resolveCommand for unknown names.
var errUnknownCommand = errors.New("unknown command")

func resolveCommand(name string) (*command, error) {
	tree := prefixtree.New[*command]()
	names := make([]string, len(commands))
	for i := range commands {
		tree.Add(commands[i].name, &commands[i])
		names[i] = commands[i].name
	}

	key := strings.ToLower(name)
	c, err := tree.FindValue(key)
	switch {
	case err == nil:
		return c, nil
	case errors.Is(err, prefixtree.ErrPrefixAmbiguous):
		return nil, fmt.Errorf("%w %q: ambiguous prefix", errUnknownCommand, name)
	}

	if hints := suggest(key, names); len(hints) > 0 {
		return nil, fmt.Errorf("%w %q (did you mean %s?)", errUnknownCommand, name, strings.Join(hints, ", "))
	}
	return nil, fmt.Errorf("%w %q", errUnknownCommand, name)
}

// suggest returns the command names that fuzzy-match pattern, best first.
func suggest(pattern string, names []string) []string {
	if pattern == "" {
		return nil
	}
	matches := fuzzy.Find(pattern, names)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Str)
	}
	return out
}
