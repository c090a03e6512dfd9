// ABOUTME: Default provider order and name-based chain construction for config
// ABOUTME: Syscall first, then the platform's probe command, then environment variables

package info

import (
	"fmt"

	"github.com/mauromedda/termctl/pkg/term/process"
)

// Provider names accepted by ChainFromNames.
const (
	ProviderFd   = "fd"
	ProviderMode = "mode"
	ProviderStty = "stty"
	ProviderEnv  = "env"
)

// DefaultOrder returns the provider names in priority order for the
// platform family.
func DefaultOrder(windows bool) []string {
	if windows {
		return []string{ProviderFd, ProviderMode, ProviderEnv}
	}
	return []string{ProviderFd, ProviderStty, ProviderEnv}
}

// DefaultChain builds the default chain for the platform family. fd is the
// output descriptor queried by the syscall strategy.
func DefaultChain(runner process.Runner, windows bool, fd int) Chain {
	c, _ := ChainFromNames(DefaultOrder(windows), runner, fd)
	return c
}

// ChainFromNames builds a chain from provider names in the given order.
func ChainFromNames(names []string, runner process.Runner, fd int) (Chain, error) {
	if runner == nil {
		runner = process.NewExecRunner(process.DefaultTimeout)
	}
	c := make(Chain, 0, len(names))
	for _, name := range names {
		switch name {
		case ProviderFd:
			c = append(c, NewSizeFromFdProvider(fd))
		case ProviderMode:
			c = append(c, NewSizeFromWinProvider(runner))
		case ProviderStty:
			c = append(c, NewSizeFromSttyProvider(runner))
		case ProviderEnv:
			c = append(c, NewSizeFromEnvProvider(nil))
		default:
			return nil, fmt.Errorf("unknown size provider %q", name)
		}
	}
	return c, nil
}
