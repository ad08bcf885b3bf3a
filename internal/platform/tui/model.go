package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-skyfall/internal/core"
	"github.com/vovakirdan/tui-skyfall/internal/game"
)

// Model is the Bubble Tea model running the game.
type Model struct {
	engine   *game.Engine
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	rt       core.RuntimeConfig
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given engine.
func NewModel(engine *game.Engine, rt core.RuntimeConfig) Model {
	// The bottom terminal row is reserved for the help bar.
	return Model{
		engine: engine,
		screen: core.NewScreen(rt.ScreenW, core.Max(1, rt.ScreenH-1)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		rt:     rt,
	}
}

// Init starts the frame loop. The simulation already runs in the engine's
// own drivers; the UI only polls snapshots.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.rt.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.rt.ScreenW = msg.Width
		m.rt.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m, frameCmd(m.rt.TickRate)
	}

	return m, nil
}

// handleKey translates key presses to semantic actions and feeds them to
// the engine. Quit never reaches the simulation.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Jump):
		m.engine.Apply(core.ActionJump)

	case key.Matches(msg, m.keys.Pause):
		m.engine.Apply(core.ActionPause)

	case key.Matches(msg, m.keys.Restart):
		m.engine.Apply(core.ActionRestart)
	}

	return m, nil
}

// View renders the latest session snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot()
	cfg := m.engine.Config()

	drawSession(m.screen, snap, cfg)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the engine and the Bubble Tea program, and tears both down
// when the player quits.
func Run(engine *game.Engine, rt core.RuntimeConfig) error {
	engine.Start(context.Background())
	defer engine.Stop()

	p := tea.NewProgram(
		NewModel(engine, rt),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
