// ABOUTME: Tests for input chunk rendering: control names, graphemes, invalid bytes, padding
// ABOUTME: Table-driven over representative keystrokes

package keyfmt

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		chunk []byte
		want  string
	}{
		{name: "empty", chunk: nil, want: ""},
		{name: "letter", chunk: []byte("a"), want: "a"},
		{name: "word", chunk: []byte("hi"), want: "h i"},
		{name: "enter", chunk: []byte("\r"), want: "<Enter>"},
		{name: "ctrl c", chunk: []byte{0x03}, want: "<Ctrl+C>"},
		{name: "ctrl z", chunk: []byte{0x1a}, want: "<Ctrl+Z>"},
		{name: "escape sequence", chunk: []byte("\x1b[A"), want: "<Esc> [ A"},
		{name: "delete", chunk: []byte{0x7f}, want: "<Del>"},
		{name: "crlf stays two keys", chunk: []byte("\r\n"), want: "<Enter> <LF>"},
		{name: "accented", chunk: []byte("é"), want: "é"},
		{name: "combining mark", chunk: []byte("e\u0301"), want: "e\u0301"},
		{name: "wide", chunk: []byte("日本"), want: "日 本"},
		{name: "invalid utf8", chunk: []byte{0xff, 'x'}, want: `<\xff> x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Format(tt.chunk); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.chunk, got, tt.want)
			}
		})
	}
}

func TestTokens_Widths(t *testing.T) {
	t.Parallel()

	toks := Tokens([]byte("a日\x1b"))
	if len(toks) != 3 {
		t.Fatalf("len(Tokens) = %d, want 3", len(toks))
	}
	if toks[0].Width != 1 || toks[1].Width != 2 || toks[2].Width != 3 {
		t.Errorf("widths = %d %d %d, want 1 2 3", toks[0].Width, toks[1].Width, toks[2].Width)
	}
	if toks[0].Control || toks[1].Control || !toks[2].Control {
		t.Errorf("control flags = %v %v %v", toks[0].Control, toks[1].Control, toks[2].Control)
	}
}

func TestWidth_MatchesFormat(t *testing.T) {
	t.Parallel()

	for _, chunk := range [][]byte{[]byte("abc"), []byte("\x1b[A"), []byte("日本"), {0x03}} {
		if got, want := Width(chunk), runewidth.StringWidth(Format(chunk)); got != want {
			t.Errorf("Width(%q) = %d, want %d", chunk, got, want)
		}
	}
}

func TestHex(t *testing.T) {
	t.Parallel()

	if got := Hex([]byte("\x1b[A")); got != "1b 5b 41" {
		t.Errorf("Hex = %q, want %q", got, "1b 5b 41")
	}
	if got := Hex(nil); got != "" {
		t.Errorf("Hex(nil) = %q, want empty", got)
	}
}

func TestLine(t *testing.T) {
	t.Parallel()

	got := Line([]byte("q"), 6)
	if want := "q       71"; got != want {
		t.Errorf("Line = %q, want %q", got, want)
	}

	long := Line([]byte("abcdefghij"), 6)
	label, _, ok := strings.Cut(long, "  ")
	if !ok {
		t.Fatalf("Line(long) = %q, missing separator", long)
	}
	if w := runewidth.StringWidth(label); w != 6 {
		t.Errorf("truncated label width = %d, want 6", w)
	}
}
