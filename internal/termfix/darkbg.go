// ABOUTME: Pre-sets the lipgloss background so styling never sends OSC 10/11 queries
// ABOUTME: A query reply would land in the raw input stream and be read as keystrokes

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// With an explicit background, lipgloss.HasDarkBackground skips the
	// terminal query. Importers must be initialised after this package.
	lipgloss.SetHasDarkBackground(true)
}
