package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pdudko/runcat/internal/audio"
	"github.com/pdudko/runcat/internal/core"
	"github.com/pdudko/runcat/internal/storage"
)

// Settings holds the per-session feature toggles.
type Settings struct {
	Audio   bool
	Haptics bool
}

// Model is the Bubble Tea model driving one game session.
//
// The simulation ticks only while the phase is Running (plus a few frames
// while the crash flash decays). In every other phase the game is fed
// key-driven zero-dt steps, so an idle Home or Paused screen schedules no
// wakeups at all.
type Model struct {
	game   core.Game
	screen *core.Screen
	store  *storage.Store
	player *audio.Player
	flash  *Flash
	keys   *KeyMapper
	clock  core.Clock

	config   core.RuntimeConfig
	settings Settings
	pending  core.InputFrame
	state    core.GameState

	epoch      int
	lastTick   time.Time
	quitting   bool
	scoreSaved bool
}

// NewModel creates a session model. A nil clock falls back to the system
// clock; player and flash may be nil for sessions without audio or haptics.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, clock core.Clock, player *audio.Player, flash *Flash) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if clock == nil {
		clock = core.SystemClock{}
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		player:  player,
		flash:   flash,
		keys:    NewKeyMapper(),
		clock:   clock,
		config:  cfg,
		pending: core.NewInputFrame(),
		settings: Settings{
			Audio:   player != nil && player.Enabled(),
			Haptics: flash.Enabled(),
		},
	}

	m.game.Reset(cfg)
	m.state = m.game.State()
	return m
}

// Init implements tea.Model. The game starts on the home screen, which does
// not tick; the loop starts on the first transition into Running.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionMute:
		m.settings.Audio = !m.settings.Audio
		if m.player != nil {
			m.player.SetEnabled(m.settings.Audio)
		}
		return m, nil

	case core.ActionHaptics:
		m.settings.Haptics = !m.settings.Haptics
		m.flash.SetEnabled(m.settings.Haptics)
		return m, nil

	case core.ActionBack:
		// Back on the title screen leaves the program.
		if m.state.Phase == core.PhaseHome {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.state.Phase == core.PhaseRunning {
		// Queue for the next simulation tick.
		m.pending.Set(action)
		return m, nil
	}

	// Outside Running the game only reacts to phase transitions, so feed
	// the key through as a zero-dt step right away.
	in := core.NewInputFrame()
	in.Set(action)
	m.state = m.game.Step(in, 0).State

	if m.state.Phase == core.PhaseRunning {
		return m, m.startTicking()
	}
	return m, nil
}

// handleResize processes window resize events. The simulation runs in world
// units, so a resize only touches the cell buffer; the run keeps going.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	// Ticks scheduled before a pause or restart carry an old epoch; drop
	// them so the game is not double-stepped.
	if msg.Epoch != m.epoch {
		return m, nil
	}

	now := m.clock.Now()
	dt := now.Sub(m.lastTick)
	m.lastTick = now

	if m.state.Phase == core.PhaseRunning {
		m.state = m.game.Step(m.pending, dt).State
		m.pending.Clear()

		if m.state.Phase == core.PhaseGameOver {
			m.saveFinalScore()
		}
	}

	m.flash.Tick()

	// Keep ticking while the run is live or the crash flash still decays.
	if m.state.Phase == core.PhaseRunning || m.flash.Active() {
		return m, tickCmd(m.config.TickRate, m.epoch)
	}
	return m, nil
}

// startTicking opens a fresh tick epoch anchored at the current time, so
// the first measured dt never includes time spent paused or on overlays.
func (m *Model) startTicking() tea.Cmd {
	m.epoch++
	m.lastTick = m.clock.Now()
	m.scoreSaved = false
	return tickCmd(m.config.TickRate, m.epoch)
}

// saveFinalScore persists the finished run's score, once per game over.
func (m *Model) saveFinalScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.state.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, the session continues regardless
	m.store.SaveScore(m.state.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".runcat", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("run_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, the session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.flash.Active() {
		return FlashScreen(m.screen)
	}
	return RenderScreen(m.screen)
}

// Run starts a local terminal session with the given game.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, clock core.Clock, player *audio.Player, flash *Flash) error {
	model := NewModel(game, store, cfg, clock, player, flash)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
