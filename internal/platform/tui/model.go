package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crystal-cavern/internal/core"
)

// Game is what the terminal loop drives. The simulation contains pure logic
// with no Bubble Tea dependency; this package handles input mapping, timing
// and painting.
type Game interface {
	// ID returns a short identifier, used for screenshot names.
	ID() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Options tunes the terminal front end.
type Options struct {
	Logger        *log.Logger
	HoldTicks     int    // How long a direction press stays held
	ScreenshotDir string // Defaults to ~/.cavern/screenshots
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	held       *heldKeys
	gameState  core.GameState
	keys       KeyMap
	keyMapper  *KeyMapper
	help       help.Model
	log        *log.Logger
	shotDir    string
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".cavern", "screenshots")
	}

	keys := DefaultKeyMap()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH, false)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		held:       newHeldKeys(opts.HoldTicks),
		keys:       keys,
		keyMapper:  NewKeyMapper(keys),
		help:       help.New(),
		log:        logger,
		shotDir:    shotDir,
	}
}

// gameRows leaves room below the playfield for the help view.
func gameRows(h int, fullHelp bool) int {
	helpRows := 1
	if fullHelp {
		helpRows = 5 // Longest FullHelp column
	}
	return max(1, h-helpRows)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, gameRows(m.config.ScreenH, m.help.ShowAll))
		return m, nil
	}

	for _, action := range m.keyMapper.MapKey(msg) {
		switch action {
		case core.ActionQuit:
			m.quitting = true
			m.log.Info("quit", "score", m.gameState.Score)
			return m, tea.Quit
		case core.ActionLeft, core.ActionRight:
			m.held.press(action)
		case core.ActionPause:
			// Directions pressed before a pause must not leak past it.
			m.held.release()
			m.inputFrame.Set(action)
		default:
			m.inputFrame.Set(action)
		}
	}
	return m, nil
}

// handleResize processes window resize events. The simulation works in
// playfield units, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height, m.help.ShowAll))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.apply(&m.inputFrame)

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !prev.GameOver {
		m.log.Info("run finished", "score", m.gameState.Score, "won", m.gameState.Won)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.log.Warn("screenshot directory", "dir", m.shotDir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot not saved", "path", path, "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
