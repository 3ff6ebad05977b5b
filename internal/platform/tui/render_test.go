package tui

import (
	"testing"

	"github.com/vovakirdan/blockhop/internal/core"
)

// Test output is not a terminal, so lipgloss renders without colour codes.
func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "@@", core.ColorCyan)
	s.DrawTextColored(2, 0, "oo", core.ColorBrightYellow)
	s.SetColored(5, 1, '^', core.ColorRed)

	got := RenderScreen(s)
	want := "@@oo  \n     ^"
	if got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
	if got != s.String() {
		t.Error("RenderScreen differs from String without colours")
	}
}
