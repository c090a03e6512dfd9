// ABOUTME: Tests for the LINES/COLUMNS environment size provider
// ABOUTME: Covers lookup funcs, unknown kinds, and the real process environment

package info

import (
	"context"
	"testing"
)

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestSizeFromEnvProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		want Information
	}{
		{"both set", map[string]string{"LINES": "40", "COLUMNS": "132"}, Size{Rows: 40, Cols: 132}},
		{"trimmed", map[string]string{"LINES": " 40\n", "COLUMNS": "132 "}, Size{Rows: 40, Cols: 132}},
		{"missing columns", map[string]string{"LINES": "40"}, nil},
		{"missing lines", map[string]string{"COLUMNS": "80"}, nil},
		{"zero", map[string]string{"LINES": "0", "COLUMNS": "80"}, nil},
		{"negative", map[string]string{"LINES": "24", "COLUMNS": "-80"}, nil},
		{"not a number", map[string]string{"LINES": "lots", "COLUMNS": "80"}, nil},
		{"empty", map[string]string{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewSizeFromEnvProvider(envLookup(tt.env))
			if got := p.For(context.Background(), KindSize); got != tt.want {
				t.Errorf("For(KindSize) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSizeFromEnvProvider_UnknownKind(t *testing.T) {
	t.Parallel()

	p := NewSizeFromEnvProvider(envLookup(map[string]string{"LINES": "1", "COLUMNS": "1"}))
	if got := p.For(context.Background(), Kind(7)); got != nil {
		t.Errorf("For(unknown) = %v, want nil", got)
	}
}

func TestSizeFromEnvProvider_ProcessEnvironment(t *testing.T) {
	t.Setenv("LINES", "33")
	t.Setenv("COLUMNS", "99")

	got := NewSizeFromEnvProvider(nil).For(context.Background(), KindSize)
	if want := (Size{Rows: 33, Cols: 99}); got != want {
		t.Errorf("For(KindSize) = %v, want %v", got, want)
	}
}
