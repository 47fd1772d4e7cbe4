package tui

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/killer-emoji/internal/config"
	"github.com/vovakirdan/killer-emoji/internal/core"
	"github.com/vovakirdan/killer-emoji/internal/game"
)

// shareTimeout bounds a share command.
const shareTimeout = 5 * time.Second

// Options configures a game model.
type Options struct {
	Runtime core.RuntimeConfig
	Game    config.GameConfig
	Scores  game.ScoreStore
	Sounds  game.Sounds
	Sharer  game.Sharer
	Logger  *log.Logger
	Name    string           // Pre-filled player name
	Clock   func() time.Time // nil means time.Now
}

// Model is the Bubble Tea model for a Killer Emoji session.
// The frame loop only runs while a round is being played; leaving the
// playing phase bumps gen so frames already scheduled are dropped.
type Model struct {
	session  *game.Session
	tracker  *core.Tracker
	held     *heldKeys
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	name     textinput.Model
	ranking  table.Model
	config   core.RuntimeConfig
	scores   config.ScoresConfig
	logger   *log.Logger
	clock    func() time.Time
	epoch    time.Time
	gen      int
	status   string
	quitting bool
}

// NewModel creates a new Bubble Tea model on the start screen.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	session := game.NewSession(opts.Game, game.Deps{
		Scores: opts.Scores,
		Sounds: opts.Sounds,
		Sharer: opts.Sharer,
		Rand:   rand.New(rand.NewSource(cfg.Seed)),
		Logger: opts.Logger,
	})
	session.SetName(opts.Name)

	name := textinput.New()
	name.Prompt = "Name: "
	name.Placeholder = opts.Game.Scores.PlaceholderName
	name.CharLimit = opts.Game.Scores.MaxNameLength
	name.Width = opts.Game.Scores.MaxNameLength + 1
	name.SetValue(opts.Name)
	name.Focus()

	tracker := core.NewTracker()
	m := Model{
		session: session,
		tracker: tracker,
		held:    newHeldKeys(tracker, opts.Game.Input),
		screen:  core.NewScreen(cfg.ScreenW, fieldHeight(cfg.ScreenH)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		name:    name,
		config:  cfg,
		scores:  opts.Game.Scores,
		logger:  opts.Logger,
		clock:   opts.Clock,
		epoch:   opts.Clock(),
	}
	m.help.Width = cfg.ScreenW
	m.ranking = m.newRankingTable()
	m.refreshRanking()
	return m
}

// fieldHeight leaves the bottom row for the help line.
func fieldHeight(screenH int) int {
	return max(screenH-1, 0)
}

// Init starts the cursor blink of the name field.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(msg)
	}

	if m.naming() {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// naming reports whether the name field takes typed keys: on the start
// screen and on a game over with an unsaved high score.
func (m Model) naming() bool {
	return m.session.Phase() == game.PhaseStart || m.session.CanSubmit()
}

// now returns the session clock.
func (m Model) now() time.Duration {
	return m.clock().Sub(m.epoch)
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.ShowingRanking() {
		switch {
		case key.Matches(msg, m.keys.ForceQuit):
			return m.quit()
		case key.Matches(msg, m.keys.Ranking), key.Matches(msg, m.keys.Back):
			m.session.ToggleRanking()
			return m, nil
		}
		var cmd tea.Cmd
		m.ranking, cmd = m.ranking.Update(msg)
		return m, cmd
	}

	phase := m.session.Phase()
	if phase == game.PhaseStart {
		switch {
		case key.Matches(msg, m.keys.PrevChar):
			m.session.SetCharacter(m.session.Character().Prev())
			return m, nil
		case key.Matches(msg, m.keys.NextChar):
			m.session.SetCharacter(m.session.Character().Next())
			return m, nil
		}
	}

	action := m.keys.MapKey(msg, phase, m.session.CanSubmit())
	switch action {
	case core.ActionQuit:
		return m.quit()

	case core.ActionConfirm:
		if phase == game.PhaseStart {
			m.session.SetName(m.name.Value())
			return m.startRound(m.session.Start)
		}
		m.saveScore()

	case core.ActionRetry:
		return m.startRound(m.session.Retry)

	case core.ActionShare:
		m.share()

	case core.ActionRanking:
		m.session.ToggleRanking()
		m.refreshRanking()

	case core.ActionBack:
		m.session.Menu()
		m.stopLoop()
		m.status = ""
		m.refreshRanking()
		cmd := m.name.Focus()
		return m, cmd

	case core.ActionLeft, core.ActionRight:
		m.held.Press(action, m.now())

	case core.ActionHalt:
		m.held.Halt()

	case core.ActionVolumeUp:
		m.session.VolumeUp()

	case core.ActionVolumeDown:
		m.session.VolumeDown()

	case core.ActionNone:
		if m.naming() {
			var cmd tea.Cmd
			m.name, cmd = m.name.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// handleMouse maps presses on the left and right half of the screen to
// movement. The direction is held until the button is released.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.session.Phase() != game.PhasePlaying {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Action == tea.MouseActionMotion && m.held.Mouse() == core.ActionNone {
			return m, nil
		}
		dir := core.ActionLeft
		if msg.X >= m.screen.Width()/2 {
			dir = core.ActionRight
		}
		m.held.PressMouse(dir)

	case tea.MouseActionRelease:
		m.held.ReleaseMouse()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldHeight(msg.Height))
	m.help.Width = msg.Width
	m.ranking = m.newRankingTable()
	m.refreshRanking()
	return m, nil
}

// handleFrame runs one simulation step. Frames from a stopped loop, or
// arriving outside the playing phase, end the chain.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.session.Phase() != game.PhasePlaying {
		return m, nil
	}

	now := msg.At.Sub(m.epoch)
	m.held.Expire(now)
	ev := m.session.Frame(m.tracker.Snapshot(), now)

	if ev.Collided {
		m.stopLoop()
		m.refreshRanking()
		if m.session.CanSubmit() {
			cmd := m.name.Focus()
			m.name.CursorEnd()
			return m, cmd
		}
		return m, nil
	}

	// Continue ticking
	return m, frameCmd(m.config.TickRate, m.gen)
}

// startRound begins a round through begin and starts its frame loop.
func (m Model) startRound(begin func(now time.Duration)) (tea.Model, tea.Cmd) {
	begin(m.now())
	if m.session.Phase() != game.PhasePlaying {
		return m, nil
	}
	m.held.Halt()
	m.status = ""
	m.name.Blur()
	m.gen++
	return m, frameCmd(m.config.TickRate, m.gen)
}

// stopLoop cancels the frame loop and drops any held direction.
func (m *Model) stopLoop() {
	m.gen++
	m.held.Halt()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.stopLoop()
	m.quitting = true
	return m, tea.Quit
}

// saveScore submits a qualifying score. Failures are logged and shown.
func (m *Model) saveScore() {
	if !m.session.CanSubmit() {
		return
	}
	m.session.SetName(m.name.Value())
	if err := m.session.SubmitScore(); err != nil {
		m.logger.Error("cannot save score", "err", err)
		m.status = "Could not save your score"
		return
	}
	m.status = "Score saved!"
	m.name.Blur()
	m.refreshRanking()
}

// share publishes the finished score and shows the outcome.
func (m *Model) share() {
	ctx, cancel := context.WithTimeout(context.Background(), shareTimeout)
	defer cancel()
	m.status = m.session.Share(ctx).String()
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.session.ShowingRanking() {
		return m.rankingView()
	}

	switch m.session.Phase() {
	case game.PhaseStart:
		return m.menuView()
	case game.PhaseGameOver:
		m.session.Render(m.screen)
		m.drawGameOver(m.screen)
	default:
		m.session.Render(m.screen)
	}
	return RenderScreen(m.screen) + "\n" + m.helpView()
}

// helpView renders the key help for the current screen.
func (m Model) helpView() string {
	keys := m.keys.helpFor(m.session.Phase(), m.session.ShowingRanking(), m.session.CanSubmit())
	return helpStyle.Render(m.help.View(keys))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Touch zones: press and drag on either half
	)

	_, err := p.Run()
	return err
}
