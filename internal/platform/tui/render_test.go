package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/rush-arcade/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hi")

	got := RenderScreen(s)
	want := "hi   \n     "
	if got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenColoredRuns(t *testing.T) {
	s := core.NewScreen(10, 1)
	s.DrawTextColor(0, 0, "ok", core.ColorGreen)
	s.DrawTextColor(3, 0, "no", core.ColorRed)

	got := RenderScreen(s)
	for _, text := range []string{"ok", "no"} {
		if !strings.Contains(got, text) {
			t.Errorf("RenderScreen() = %q, missing %q", got, text)
		}
	}
	if strings.Count(got, "\n") != 0 {
		t.Errorf("single-row screen rendered %d newlines", strings.Count(got, "\n"))
	}
}

func TestStyleForCoversPalette(t *testing.T) {
	for c := range palette {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
	// Unknown colors fall back to the default style.
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("fallback style rendered %q", got)
	}
}
