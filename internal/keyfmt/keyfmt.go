// ABOUTME: Human-readable rendering of raw input chunks for the keys probe
// ABOUTME: Control bytes get key names, printable text is kept as grapheme clusters

package keyfmt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/mauromedda/termctl/internal/pool"
)

// Token is one rendered unit of an input chunk.
type Token struct {
	Label string
	// Width is the display width of Label in terminal cells.
	Width int
	// Control is true for named control bytes and undecodable bytes.
	Control bool
}

var controlNames = map[byte]string{
	0x00: "Ctrl+@",
	0x08: "Backspace",
	0x09: "Tab",
	0x0a: "LF",
	0x0d: "Enter",
	0x1b: "Esc",
	0x1c: "Ctrl+\\",
	0x1d: "Ctrl+]",
	0x1e: "Ctrl+^",
	0x1f: "Ctrl+_",
	0x7f: "Del",
}

// Tokens splits chunk into printable grapheme clusters and named control
// bytes. Bytes that are not valid UTF-8 render as \xNN.
func Tokens(chunk []byte) []Token {
	var out []Token
	state := -1
	for len(chunk) > 0 {
		b := chunk[0]
		if b < 0x20 || b == 0x7f {
			out = append(out, control(controlLabel(b)))
			chunk = chunk[1:]
			state = -1
			continue
		}
		if r, size := utf8.DecodeRune(chunk); r == utf8.RuneError && size <= 1 {
			out = append(out, control(fmt.Sprintf(`\x%02x`, b)))
			chunk = chunk[1:]
			state = -1
			continue
		}

		var cluster []byte
		cluster, chunk, _, state = uniseg.FirstGraphemeCluster(chunk, state)
		out = append(out, Token{Label: string(cluster), Width: clusterWidth(cluster)})
	}
	return out
}

func controlLabel(b byte) string {
	if name, ok := controlNames[b]; ok {
		return name
	}
	return "Ctrl+" + string(rune('A'+b-1))
}

func control(label string) Token {
	return Token{Label: label, Width: runewidth.StringWidth(label), Control: true}
}

// clusterWidth is the width of the cluster's first rune; the rest are
// combining marks or joiners.
func clusterWidth(cluster []byte) int {
	r, _ := utf8.DecodeRune(cluster)
	return runewidth.RuneWidth(r)
}

// Format renders chunk as space-separated tokens, control names in angle
// brackets: "a <Esc> [ A".
func Format(chunk []byte) string {
	sb := pool.GetStringBuilder()
	defer pool.PutStringBuilder(sb)

	for i, tok := range Tokens(chunk) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if tok.Control {
			sb.WriteByte('<')
			sb.WriteString(tok.Label)
			sb.WriteByte('>')
			continue
		}
		sb.WriteString(tok.Label)
	}
	return sb.String()
}

// Hex renders chunk as space-separated lowercase hex bytes.
func Hex(chunk []byte) string {
	parts := make([]string, len(chunk))
	for i, b := range chunk {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, " ")
}

// Line renders one report line: the formatted chunk padded to labelWidth
// display cells, then the hex bytes.
func Line(chunk []byte, labelWidth int) string {
	label := Format(chunk)
	if runewidth.StringWidth(label) > labelWidth {
		label = runewidth.Truncate(label, labelWidth, "…")
	}
	return runewidth.FillRight(label, labelWidth) + "  " + Hex(chunk)
}

// Width returns the total display width of Format(chunk).
func Width(chunk []byte) int {
	toks := Tokens(chunk)
	w := max(0, len(toks)-1)
	for _, tok := range toks {
		w += tok.Width
		if tok.Control {
			w += 2
		}
	}
	return w
}
