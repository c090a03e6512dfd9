// ABOUTME: SizeFromEnvProvider reads LINES and COLUMNS from the environment
// ABOUTME: Both variables must be present and positive integers

package info

import (
	"context"
	"os"
	"strconv"
	"strings"
)

// SizeFromEnvProvider answers KindSize from LINES/COLUMNS.
type SizeFromEnvProvider struct {
	lookup func(string) (string, bool)
}

// NewSizeFromEnvProvider returns a provider reading the process environment
// through lookup, or os.LookupEnv when lookup is nil.
func NewSizeFromEnvProvider(lookup func(string) (string, bool)) *SizeFromEnvProvider {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &SizeFromEnvProvider{lookup: lookup}
}

// For implements Provider.
func (p *SizeFromEnvProvider) For(_ context.Context, kind Kind) Information {
	if kind != KindSize {
		return nil
	}
	rows, ok := p.positive("LINES")
	if !ok {
		return nil
	}
	cols, ok := p.positive("COLUMNS")
	if !ok {
		return nil
	}
	return Size{Rows: rows, Cols: cols}
}

func (p *SizeFromEnvProvider) positive(name string) (int, bool) {
	v, ok := p.lookup(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
