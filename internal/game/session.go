package game

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/killer-emoji/internal/config"
	"github.com/vovakirdan/killer-emoji/internal/core"
	"github.com/vovakirdan/killer-emoji/internal/storage"
)

// ScoreStore persists the leaderboard. Load never fails: missing or corrupt
// data reads as an empty board.
type ScoreStore interface {
	Load() []core.HighScore
	Save(entry core.HighScore) error
}

// Sounds receives fire-and-forget audio triggers. Init is called before the
// first sound of every round and must be idempotent.
type Sounds interface {
	Init()
	OnSpawn()
	OnCollision()
	OnSessionStart()
	SetVolume(level int)
}

// Sharer publishes a finished score.
type Sharer interface {
	Share(ctx context.Context, score int) core.ShareResult
}

// Deps are the collaborators of a session. Nil fields get no-op defaults.
type Deps struct {
	Scores ScoreStore
	Sounds Sounds
	Sharer Sharer
	Rand   RandSource
	Logger *log.Logger
}

// Session is the game state machine: start -> playing -> gameOver ->
// playing/start. It owns the round state and is driven by a single loop;
// it is not safe for concurrent use.
type Session struct {
	cfg    config.GameConfig
	sim    *Simulator
	scores ScoreStore
	sounds Sounds
	sharer Sharer
	logger *log.Logger

	state     State
	name      string
	character Character
	volume    int
	ranking   bool
	board     []core.HighScore
	qualifies bool
	submitted bool
}

// NewSession creates a session in the start phase and loads the leaderboard.
func NewSession(cfg config.GameConfig, deps Deps) *Session {
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Sounds == nil {
		deps.Sounds = nopSounds{}
	}
	if deps.Scores == nil {
		deps.Scores = storage.NewMemory(cfg.Scores.Limit)
	}

	s := &Session{
		cfg:    cfg,
		sim:    NewSimulator(cfg, deps.Rand),
		scores: deps.Scores,
		sounds: deps.Sounds,
		sharer: deps.Sharer,
		logger: deps.Logger,
		volume: cfg.Audio.Volume,
		state:  State{Phase: PhaseStart},
	}
	s.reloadBoard()
	return s
}

// State returns the current round snapshot.
func (s *Session) State() State {
	return s.state
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.state.Phase
}

// Name returns the player name as typed.
func (s *Session) Name() string {
	return s.name
}

// SetName sets the player name. It is kept across rounds.
func (s *Session) SetName(name string) {
	s.name = name
}

// DisplayName returns the normalized name used on the leaderboard.
func (s *Session) DisplayName() string {
	return core.NormalizeName(s.name, s.cfg.Scores.PlaceholderName, s.cfg.Scores.MaxNameLength)
}

// Character returns the chosen character.
func (s *Session) Character() Character {
	return s.character
}

// SetCharacter chooses the character. It can only change on the start screen.
func (s *Session) SetCharacter(c Character) {
	if s.state.Phase != PhaseStart || c < 0 || c >= characterCount {
		return
	}
	s.character = c
}

// Start begins a round from the start screen or after a game over.
// Score, position, emoji, difficulty and the spawn timer are reset; the
// name and character are kept.
func (s *Session) Start(now time.Duration) {
	if s.state.Phase == PhasePlaying {
		return
	}

	s.sounds.Init()
	s.sounds.SetVolume(s.volume)
	s.sounds.OnSessionStart()

	s.reloadBoard()
	s.ranking = false
	s.qualifies = false
	s.submitted = false
	s.state = s.sim.NewRound(s.character, now)
	s.logger.Debug("round started", "name", s.DisplayName(), "character", s.character)
}

// Retry starts a new round after a game over.
func (s *Session) Retry(now time.Duration) {
	if s.state.Phase != PhaseGameOver {
		return
	}
	s.Start(now)
}

// Menu returns to the start screen, abandoning any round in progress.
func (s *Session) Menu() {
	if s.state.Phase == PhaseStart {
		return
	}
	s.state = State{Phase: PhaseStart}
	s.ranking = false
	s.reloadBoard()
}

// Frame runs one simulation step with the given intent.
func (s *Session) Frame(in core.Intent, now time.Duration) Events {
	next, ev := s.sim.Step(s.state, in, now)
	s.state = next

	if ev.Spawned {
		s.sounds.OnSpawn()
	}
	if ev.LevelUp {
		s.logger.Debug("difficulty raised",
			"level", next.Difficulty.Level,
			"speed", next.Difficulty.Speed,
			"interval", next.Difficulty.SpawnInterval)
	}
	if ev.Collided {
		s.sounds.OnCollision()
		// Other sessions may have saved since the round started
		s.reloadBoard()
		s.qualifies = core.Qualifies(s.board, next.Score(), s.cfg.Scores.Limit)
		s.logger.Info("round over", "score", next.Score(), "glyph", next.Collision.Glyph, "qualifies", s.qualifies)
	}
	return ev
}

// ShowingRanking reports whether the ranking view is open.
func (s *Session) ShowingRanking() bool {
	return s.ranking
}

// ToggleRanking opens or closes the ranking view. It is not available
// while playing.
func (s *Session) ToggleRanking() {
	if s.state.Phase == PhasePlaying {
		return
	}
	s.ranking = !s.ranking
	if s.ranking {
		s.reloadBoard()
	}
}

// HighScores returns the leaderboard as last loaded.
func (s *Session) HighScores() []core.HighScore {
	return s.board
}

// CanSubmit reports whether the finished round earned an unsaved place on
// the leaderboard.
func (s *Session) CanSubmit() bool {
	return s.state.Phase == PhaseGameOver && s.qualifies && !s.submitted
}

// SubmitScore saves the finished round under the display name.
func (s *Session) SubmitScore() error {
	if !s.CanSubmit() {
		return nil
	}
	entry := core.HighScore{Name: s.DisplayName(), Score: s.state.Score()}
	if err := s.scores.Save(entry); err != nil {
		return err
	}
	s.submitted = true
	s.reloadBoard()
	return nil
}

// Submitted reports whether the finished round was saved.
func (s *Session) Submitted() bool {
	return s.submitted
}

// Share publishes the finished score. Without a sharer nothing happens.
func (s *Session) Share(ctx context.Context) core.ShareResult {
	if s.sharer == nil {
		return core.ShareFailed
	}
	return s.sharer.Share(ctx, s.state.Score())
}

// Volume returns the volume level, 0..config.MaxVolume.
func (s *Session) Volume() int {
	return s.volume
}

// VolumeUp raises the volume by one level.
func (s *Session) VolumeUp() {
	s.setVolume(s.volume + 1)
}

// VolumeDown lowers the volume by one level.
func (s *Session) VolumeDown() {
	s.setVolume(s.volume - 1)
}

func (s *Session) setVolume(level int) {
	level = core.Clamp(level, 0, config.MaxVolume)
	if level == s.volume {
		return
	}
	s.volume = level
	s.sounds.SetVolume(level)
}

func (s *Session) reloadBoard() {
	s.board = core.RankScores(s.scores.Load(), s.cfg.Scores.Limit)
}

type nopSounds struct{}

func (nopSounds) Init()           {}
func (nopSounds) OnSpawn()        {}
func (nopSounds) OnCollision()    {}
func (nopSounds) OnSessionStart() {}
func (nopSounds) SetVolume(int)   {}

