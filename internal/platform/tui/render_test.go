package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-skyfall/internal/config"
	"github.com/vovakirdan/tui-skyfall/internal/core"
	"github.com/vovakirdan/tui-skyfall/internal/game"
)

func TestDrawSessionHUD(t *testing.T) {
	cfg := config.Default()
	s := game.NewSession(&cfg)
	s.Score = 120
	screen := core.NewScreen(80, 24)

	drawSession(screen, s, cfg)

	top := screen.Row(0)
	if !strings.Contains(top, "Score: 120") {
		t.Errorf("HUD missing score, got %q", top)
	}
	if !strings.Contains(top, "Time: 30s") {
		t.Errorf("HUD missing countdown, got %q", top)
	}
}

func TestDrawSessionEffectBadges(t *testing.T) {
	cfg := config.Default()
	s := game.NewSession(&cfg)
	s.Player.DoublePoints = true
	s.Player.Invincible = true
	screen := core.NewScreen(80, 24)

	drawSession(screen, s, cfg)

	top := screen.Row(0)
	if !strings.Contains(top, "[x2]") || !strings.Contains(top, "[SHIELD]") {
		t.Errorf("HUD missing effect badges, got %q", top)
	}
}

func TestDrawSessionPlayerVisible(t *testing.T) {
	cfg := config.Default()
	s := game.NewSession(&cfg)
	screen := core.NewScreen(80, 24)

	drawSession(screen, s, cfg)

	if !strings.Contains(screen.String(), string(playerChar)) {
		t.Error("player glyph not drawn")
	}
}

func TestDrawSessionOverlays(t *testing.T) {
	cfg := config.Default()
	screen := core.NewScreen(80, 24)

	s := game.NewSession(&cfg)
	s.Paused = true
	drawSession(screen, s, cfg)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay not drawn")
	}

	s = game.NewSession(&cfg)
	s.Over = true
	s.Score = 55
	drawSession(screen, s, cfg)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over overlay not drawn")
	}
	if !strings.Contains(out, "Score: 55") {
		t.Error("game over overlay missing final score")
	}
}

func TestDrawSessionTinyScreen(t *testing.T) {
	cfg := config.Default()
	s := game.NewSession(&cfg)
	screen := core.NewScreen(3, 2)

	// Must not panic when there is no room for a playfield
	drawSession(screen, s, cfg)
}

func TestRenderScreenLineCount(t *testing.T) {
	screen := core.NewScreen(10, 5)
	screen.DrawTextColored(0, 2, "hi", core.ColorBrightYellow)

	out := RenderScreen(screen)
	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("expected 4 newlines for 5 rows, got %d", got)
	}
}
