package game

import (
	"time"

	"github.com/vovakirdan/killer-emoji/internal/config"
	"github.com/vovakirdan/killer-emoji/internal/core"
)

// Simulator runs the per-frame update. It holds only configuration and the
// random source; all round state lives in State.
type Simulator struct {
	player     config.PlayerConfig
	emoji      config.EmojiConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
}

// NewSimulator creates a simulator for cfg drawing from rng.
func NewSimulator(cfg config.GameConfig, rng RandSource) *Simulator {
	return &Simulator{
		player:     cfg.Player,
		emoji:      cfg.Emoji,
		difficulty: config.NewDifficultyManager(cfg.Difficulty, cfg.Emoji),
		spawner:    NewSpawner(cfg.Emoji, rng),
	}
}

// NewRound returns the initial playing state for a round starting at now.
func (s *Simulator) NewRound(character Character, now time.Duration) State {
	return State{
		Phase: PhasePlaying,
		Player: Player{
			X:         s.clampX(s.player.StartX),
			Direction: DirectionIdle,
			Character: character,
		},
		Difficulty: s.difficulty.Initial(),
		LastSpawn:  now,
		Now:        now,
	}
}

// Step advances a playing state by one frame. Outside PhasePlaying the
// state is returned unchanged.
//
// Order: move the player, count the frame, maybe spawn, maybe raise the
// tier, then advance every emoji and test it against the player's new box.
// The first hit empties the field and ends the round; later emoji in the
// same frame are not evaluated.
func (s *Simulator) Step(prev State, in core.Intent, now time.Duration) (State, Events) {
	var ev Events
	if prev.Phase != PhasePlaying {
		return prev, ev
	}

	next := prev
	next.Now = now
	next.Player = s.movePlayer(prev.Player, in)
	next.RawScore = prev.RawScore + 1

	active := prev.Emojis
	if s.spawner.Due(now, prev.LastSpawn, prev.Difficulty.SpawnInterval) {
		next.LastSpawn = now
		spawned := s.spawner.Spawn(now, prev.Difficulty.Speed)
		active = append(active[:len(active):len(active)], spawned)
		ev.Spawned = true
	}

	next.Difficulty, ev.LevelUp = s.difficulty.Advance(prev.Difficulty, next.Score())

	playerBox := s.PlayerHitbox(next.Player.X)
	kept := make([]Emoji, 0, len(active))
	for _, e := range active {
		e.Y += e.Speed
		if Collides(playerBox, s.EmojiHitbox(e)) {
			next.Emojis = nil
			next.Phase = PhaseGameOver
			next.Collision = &Collision{Glyph: e.Glyph, X: next.Player.X, Y: CollisionY}
			next.Player.Direction = DirectionIdle
			ev.Collided = true
			return next, ev
		}
		if e.Y < 100 {
			kept = append(kept, e)
		}
	}
	next.Emojis = kept

	return next, ev
}

// movePlayer applies both direction flags additively and clamps the result.
func (s *Simulator) movePlayer(p Player, in core.Intent) Player {
	x := p.X
	if in.Left {
		x -= s.player.Speed
	}
	if in.Right {
		x += s.player.Speed
	}
	p.X = s.clampX(x)

	switch {
	case in.Left && !in.Right:
		p.Direction = DirectionLeft
	case in.Right && !in.Left:
		p.Direction = DirectionRight
	default:
		p.Direction = DirectionIdle
	}
	return p
}

// clampX keeps the whole character inside the field.
func (s *Simulator) clampX(x float64) float64 {
	half := s.player.Width / 2
	return core.ClampF(x, half, 100-half)
}

// Bounds returns the allowed range of the player's x.
func (s *Simulator) Bounds() (float64, float64) {
	half := s.player.Width / 2
	return half, 100 - half
}
