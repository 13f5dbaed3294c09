package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// footerHeight is the number of rows reserved below the playfield for help.
const footerHeight = 1

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	fixedSeed bool // Restart replays the same seed instead of drawing a new one
	input     core.InputFrame
	state     core.GameState
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	quitting  bool
}

// NewModel creates a model for the given game. A zero seed is replaced by a
// time-based one. A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-footerHeight)),
		config:    cfg,
		fixedSeed: fixed,
		input:     core.NewInputFrame(),
		keys:      DefaultKeyMap(),
		help:      h,
		logger:    logger,
	}
}

// Init resets the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.FrameDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the mapped action for the next frame.
// Repeated presses within one frame are all kept.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score)
		return m, tea.Quit
	}
	m.input.Push(action)
	return m, nil
}

// handleResize only changes the terminal projection; the world is
// independent of terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-footerHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one platform frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionRestart) {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.state = m.game.State()
		m.input.Clear()
		m.logger.Info("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.FrameDuration())
	}

	result := m.game.Step(m.input)
	m.state = result.State
	for _, ev := range result.Events {
		m.logger.Debug(ev)
	}

	m.input.Clear()
	return m, tickCmd(m.config.FrameDuration())
}

// View renders the playfield and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
