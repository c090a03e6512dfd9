// ABOUTME: Tests for the lipgloss dark-background preset
// ABOUTME: Verifies the preset reports a dark background without asking the terminal

package termfix

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDarkBackgroundPreset(t *testing.T) {
	t.Parallel()

	if !lipgloss.HasDarkBackground() {
		t.Error("HasDarkBackground() = false, want preset true")
	}
}
