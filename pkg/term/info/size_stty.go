// ABOUTME: SizeFromSttyProvider asks `stty size` for "<rows> <cols>" on Unix terminals
// ABOUTME: Needs the runner to attach the terminal as the child's stdin

package info

import (
	"context"
	"strconv"
	"strings"

	"github.com/mauromedda/termctl/pkg/term/process"
)

var sttyArgv = []string{"stty", "size"}

// SizeFromSttyProvider answers KindSize by running `stty size`.
type SizeFromSttyProvider struct {
	runner process.Runner
}

// NewSizeFromSttyProvider returns a provider using runner, or an ExecRunner
// with the default timeout when runner is nil.
func NewSizeFromSttyProvider(runner process.Runner) *SizeFromSttyProvider {
	if runner == nil {
		runner = process.NewExecRunner(process.DefaultTimeout)
	}
	return &SizeFromSttyProvider{runner: runner}
}

// For implements Provider.
func (p *SizeFromSttyProvider) For(ctx context.Context, kind Kind) Information {
	if kind != KindSize {
		return nil
	}
	res, err := p.runner.Run(ctx, sttyArgv...)
	if err != nil || res.ExitCode != 0 {
		return nil
	}
	size, ok := parseSttySize(res.Stdout)
	if !ok {
		return nil
	}
	return size
}

func parseSttySize(out string) (Size, bool) {
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return Size{}, false
	}
	rows, err := strconv.Atoi(fields[0])
	if err != nil {
		return Size{}, false
	}
	cols, err := strconv.Atoi(fields[1])
	if err != nil {
		return Size{}, false
	}
	size := newClampedSize(rows, cols)
	// stty reports 0 0 when the tty has no size set.
	if size.Rows == 0 || size.Cols == 0 {
		return Size{}, false
	}
	return size, true
}
