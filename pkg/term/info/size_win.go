// ABOUTME: SizeFromWinProvider scrapes "Lines:"/"Columns:" from the Windows mode command
// ABOUTME: Best effort: non-zero exit, runner errors, or unexpected output all yield nil

package info

import (
	"context"
	"regexp"
	"strconv"

	"github.com/mauromedda/termctl/pkg/term/process"
)

// winModeArgv is the console status command.
var winModeArgv = []string{"cmd", "/c", "mode"}

// winModePattern is the wire format of `mode` console status output, e.g.
//
//	Status for device CON:
//	----------------------
//	    Lines:          30
//	    Columns:        120
//
// Labels are matched case-insensitively, in this order, with any
// whitespace around the numbers. Localized Windows builds that translate
// the labels do not match and the provider returns nil.
var winModePattern = regexp.MustCompile(`(?i)Lines:\s*(\d+)\s*Columns:\s*(\d+)`)

// SizeFromWinProvider answers KindSize on the Windows family by running the
// console mode command.
type SizeFromWinProvider struct {
	runner process.Runner
}

// NewSizeFromWinProvider returns a provider using runner, or an ExecRunner
// with the default timeout when runner is nil.
func NewSizeFromWinProvider(runner process.Runner) *SizeFromWinProvider {
	if runner == nil {
		runner = process.NewExecRunner(process.DefaultTimeout)
	}
	return &SizeFromWinProvider{runner: runner}
}

// For implements Provider.
func (p *SizeFromWinProvider) For(ctx context.Context, kind Kind) Information {
	if kind != KindSize {
		return nil
	}
	res, err := p.runner.Run(ctx, winModeArgv...)
	if err != nil || res.ExitCode != 0 {
		return nil
	}
	size, ok := parseWinMode(res.Stdout)
	if !ok {
		return nil
	}
	return size
}

func parseWinMode(out string) (Size, bool) {
	m := winModePattern.FindStringSubmatch(out)
	if m == nil {
		return Size{}, false
	}
	rows, err := strconv.Atoi(m[1])
	if err != nil {
		return Size{}, false
	}
	cols, err := strconv.Atoi(m[2])
	if err != nil {
		return Size{}, false
	}
	return newClampedSize(rows, cols), true
}
