// Package game implements Killer Emoji: the player moves a character along
// the bottom of the field and dodges emoji falling from the top.
//
// The field is measured in percent: x in [0, 100] of the width, y in
// [0, 100] of the height. Speeds are percent per frame.
package game

import (
	"time"

	"github.com/vovakirdan/killer-emoji/internal/config"
)

// Phase is the top-level mode of a session.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Direction is the facing of the player, derived from the movement intent.
type Direction int

const (
	DirectionIdle Direction = iota
	DirectionLeft
	DirectionRight
)

// Character is the player's chosen variant.
type Character int

const (
	CharacterBoy Character = iota
	CharacterGirl
	characterCount
)

var characterSprites = [characterCount]struct {
	name string
	idle string
	walk [2]string
}{
	CharacterBoy:  {"Boy", "🧍‍♂️", [2]string{"🏃‍♂️", "🚶‍♂️"}},
	CharacterGirl: {"Girl", "🧍‍♀️", [2]string{"🏃‍♀️", "🚶‍♀️"}},
}

// WalkFrameDuration is how long each walking frame is shown.
const WalkFrameDuration = 200 * time.Millisecond

// String returns the display name of the character.
func (c Character) String() string {
	if c < 0 || c >= characterCount {
		return "Unknown"
	}
	return characterSprites[c].name
}

// Next returns the following character, wrapping around.
func (c Character) Next() Character {
	return (c + 1) % characterCount
}

// Prev returns the preceding character, wrapping around.
func (c Character) Prev() Character {
	return (c + characterCount - 1) % characterCount
}

// Sprite returns the glyph for the character facing dir at time now.
func (c Character) Sprite(dir Direction, now time.Duration) string {
	if c < 0 || c >= characterCount {
		c = CharacterBoy
	}
	s := characterSprites[c]
	if dir == DirectionIdle {
		return s.idle
	}
	return s.walk[int(now/WalkFrameDuration)%len(s.walk)]
}

// CollisionGlyph marks where the player was hit.
const CollisionGlyph = "💥"

// CollisionY is the vertical position of the collision marker.
const CollisionY = 95

// Player is the player's state. X is the centre of the character.
type Player struct {
	X         float64
	Direction Direction
	Character Character
}

// Emoji is a falling hazard. Everything but Y is fixed at spawn.
type Emoji struct {
	ID       int64
	X        float64 // Left edge
	Y        float64 // Top edge
	Glyph    string
	Speed    float64
	Rotation float64 // Degrees, cosmetic
}

// Collision records the hit that ended a round.
type Collision struct {
	Glyph string
	X     float64
	Y     float64
}

// State is a snapshot of a round. A step never mutates its input state;
// it returns a replacement.
type State struct {
	Phase      Phase
	Player     Player
	Emojis     []Emoji
	RawScore   int // +1 per simulated frame
	Difficulty config.Difficulty
	LastSpawn  time.Duration
	Now        time.Duration // Timestamp of the last step
	Collision  *Collision
}

// Score returns the displayed score.
func (s State) Score() int {
	return s.RawScore / 10
}

// Events reports what happened during a step, for the presentation and
// audio collaborators.
type Events struct {
	Spawned  bool
	LevelUp  bool
	Collided bool
}
