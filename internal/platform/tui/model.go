package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/catcher/internal/config"
	"github.com/vovakirdan/catcher/internal/core"
	"github.com/vovakirdan/catcher/internal/registry"
	"github.com/vovakirdan/catcher/internal/storage"
)

const controlsHelp = "←/→ move  SPACE start/restart  P pause  Q quit"

// Reloader is implemented by games that can pick up a changed config file.
type Reloader interface {
	ReloadConfig() error
}

// HighScoreSeeder is implemented by games that show a session high score.
type HighScoreSeeder interface {
	SeedHighScore(score int)
}

// ConfigChangedMsg reports that a watched config file was written.
type ConfigChangedMsg struct {
	Path string
}

// configErrMsg reports a watcher failure.
type configErrMsg struct {
	err error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	watcher    *config.Watcher
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// store and watcher may be nil.
func NewModel(game registry.Game, store *storage.Store, watcher *config.Watcher, cfg core.RuntimeConfig) Model {
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		store:      store,
		watcher:    watcher,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		status:     controlsHelp,
	}
}

// gameRows leaves the last row for the status line.
func gameRows(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	if seeder, ok := m.game.(HighScoreSeeder); ok && m.store != nil {
		if best, err := m.store.HighScore(m.game.ID()); err == nil {
			seeder.SeedHighScore(best)
		}
	}

	return tea.Batch(tickCmd(m.config.TickRate), m.watchCmd())
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

	case ConfigChangedMsg:
		return m.handleConfigChanged(msg)

	case configErrMsg:
		log.Warn("config watcher", "err", msg.err)
		return m, m.watchCmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The world is projected
// onto whatever grid is available, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once per run)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil {
			if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				log.Warn("score not saved", "game", m.game.ID(), "err", err)
			}
		}
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleConfigChanged reloads the game's config and keeps watching.
func (m Model) handleConfigChanged(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	if r, ok := m.game.(Reloader); ok {
		if err := r.ReloadConfig(); err != nil {
			log.Warn("config reload failed", "path", msg.Path, "err", err)
			m.status = "config error: " + err.Error()
		} else {
			m.status = "config reloaded, applies on restart"
		}
	}
	return m, m.watchCmd()
}

// watchCmd waits for the next watcher event.
func (m Model) watchCmd() tea.Cmd {
	w := m.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	status := m.status
	if m.gameState.Paused {
		status = "paused  " + controlsHelp
	}
	return RenderFrame(m.screen, fmt.Sprintf("%s  │  %s", m.game.Title(), status))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, watcher *config.Watcher, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, watcher, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
