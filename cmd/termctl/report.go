// ABOUTME: Size report model with lipgloss text rendering and easyjson JSON encoding
// ABOUTME: One row per size strategy plus the resolved result of the whole chain

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/termctl/pkg/term/info"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(8)
	hitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	missStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type providerResult struct {
	Name  string
	Size  info.Size
	Known bool
}

type sizeReport struct {
	Size      info.Size
	Known     bool
	Providers []providerResult
}

// MarshalEasyJSON writes {"rows":R,"cols":C,"known":K,"providers":[...]}.
// The providers key is omitted when the per-strategy breakdown was not
// requested.
func (r sizeReport) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	writeSizeFields(w, r.Size, r.Known)
	if r.Providers != nil {
		w.RawString(`,"providers":[`)
		for i, p := range r.Providers {
			if i > 0 {
				w.RawByte(',')
			}
			w.RawString(`{"name":`)
			w.String(p.Name)
			w.RawByte(',')
			writeSizeFields(w, p.Size, p.Known)
			w.RawByte('}')
		}
		w.RawByte(']')
	}
	w.RawByte('}')
}

func writeSizeFields(w *jwriter.Writer, s info.Size, known bool) {
	w.RawString(`"rows":`)
	w.Int(s.Rows)
	w.RawString(`,"cols":`)
	w.Int(s.Cols)
	w.RawString(`,"known":`)
	w.Bool(known)
}

func (r sizeReport) json() ([]byte, error) {
	return easyjson.Marshal(r)
}

func (r sizeReport) text() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("size"))
	b.WriteString(renderSize(r.Size, r.Known))
	b.WriteByte('\n')
	for _, p := range r.Providers {
		b.WriteString(labelStyle.Render(p.Name))
		b.WriteString(renderSize(p.Size, p.Known))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderSize(s info.Size, known bool) string {
	if !known {
		return missStyle.Render("unknown")
	}
	return hitStyle.Render(fmt.Sprintf("%d cols x %d rows", s.Cols, s.Rows))
}
