package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-skyfall/internal/config"
	"github.com/vovakirdan/tui-skyfall/internal/core"
	"github.com/vovakirdan/tui-skyfall/internal/game"
)

// Visual characters for game elements.
const (
	playerChar = '█'
	groundChar = '═'
)

// collectibleGlyph returns the glyph and color for a pickup kind.
func collectibleGlyph(k game.CollectibleKind) (rune, core.Color) {
	switch k {
	case game.KindDoublePoints:
		return '◆', core.ColorBrightMagenta
	case game.KindShield:
		return '✚', core.ColorBrightCyan
	default:
		return '●', core.ColorBrightYellow
	}
}

// obstacleGlyph returns the glyph and color for an obstacle kind.
// Kinds differ only visually; contact behavior is identical.
func obstacleGlyph(k game.ObstacleKind) (rune, core.Color) {
	switch k {
	case game.ObstacleDrone:
		return '◼', core.ColorBrightRed
	case game.ObstacleSaw:
		return '✸', core.ColorOrange
	default:
		return '▲', core.ColorRed
	}
}

// drawSession renders a session snapshot into the screen buffer.
// The logical playfield is scaled to the cell grid below the HUD row;
// entity rotation is cosmetic and cannot be expressed in cells, so the
// glyph varies by kind instead.
func drawSession(dst *core.Screen, snap game.Session, cfg config.Config) {
	dst.Clear()

	fieldTop := 1
	fieldH := dst.Height() - fieldTop - 1
	fieldW := dst.Width()
	if fieldH < 1 || fieldW < 1 {
		return
	}

	scaleX := float64(fieldW) / cfg.Playfield.Width
	scaleY := float64(fieldH) / cfg.Playfield.Height

	// Ground line below the playfield
	dst.DrawHLine(0, fieldTop+fieldH, fieldW, groundChar)

	for _, c := range snap.Collectibles {
		glyph, color := collectibleGlyph(c.Kind)
		drawEntity(dst, c.Entity, glyph, color, scaleX, scaleY, fieldTop)
	}

	for _, o := range snap.Obstacles {
		glyph, color := obstacleGlyph(o.Kind)
		drawEntity(dst, o.Entity, glyph, color, scaleX, scaleY, fieldTop)
	}

	playerColor := core.ColorBrightGreen
	if snap.Player.Invincible {
		playerColor = core.ColorBrightCyan
	} else if snap.Player.DoublePoints {
		playerColor = core.ColorBrightMagenta
	}
	drawEntity(dst, snap.Player.Entity, playerChar, playerColor, scaleX, scaleY, fieldTop)

	drawHUD(dst, snap)

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.Over {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawEntity maps a logical-unit entity box to cells and fills it.
func drawEntity(dst *core.Screen, e game.Entity, glyph rune, color core.Color, scaleX, scaleY float64, top int) {
	x0 := int(e.X * scaleX)
	y0 := top + int(e.Y*scaleY)
	w := core.Max(1, int(e.W*scaleX+0.5))
	h := core.Max(1, int(e.H*scaleY+0.5))

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetColored(x0+dx, y0+dy, glyph, color)
		}
	}
}

// drawHUD renders the score, countdown, and active effect badges.
func drawHUD(dst *core.Screen, snap game.Session) {
	hud := fmt.Sprintf(" Score: %d   Time: %ds ", snap.Score, snap.TimeDisplay())
	dst.DrawText(2, 0, hud)

	timeColor := core.ColorDefault
	if snap.TimeDisplay() <= 5 && !snap.Over {
		timeColor = core.ColorBrightRed
	}
	// Recolor the countdown segment so low time stands out
	timeStart := 2 + strings.Index(hud, "Time:")
	dst.DrawTextColored(timeStart, 0, fmt.Sprintf("Time: %ds", snap.TimeDisplay()), timeColor)

	x := 2 + len(hud) + 1
	if snap.Player.DoublePoints {
		dst.DrawTextColored(x, 0, "[x2]", core.ColorBrightMagenta)
		x += 5
	}
	if snap.Player.Invincible {
		dst.DrawTextColored(x, 0, "[SHIELD]", core.ColorBrightCyan)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
