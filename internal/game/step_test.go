package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/killer-emoji/internal/config"
	"github.com/vovakirdan/killer-emoji/internal/core"
)

// fixedRand returns the same draws every time.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(int) int     { return r.n }

const frame = 16 * time.Millisecond

func newTestSimulator(rng RandSource) *Simulator {
	return NewSimulator(config.DefaultGameConfig(), rng)
}

func TestStepDeterminism(t *testing.T) {
	run := func() State {
		sim := newTestSimulator(rand.New(rand.NewSource(12345)))
		st := sim.NewRound(CharacterBoy, 0)
		for i := 1; i <= 3000 && st.Phase == PhasePlaying; i++ {
			in := core.Intent{Left: i%90 < 30, Right: i%90 >= 60}
			st, _ = sim.Step(st, in, time.Duration(i)*frame)
		}
		return st
	}

	a, b := run(), run()
	if a.RawScore != b.RawScore || a.Player.X != b.Player.X || a.Phase != b.Phase {
		t.Fatalf("runs differ: %+v vs %+v", a, b)
	}
	if len(a.Emojis) != len(b.Emojis) {
		t.Fatalf("emoji counts differ: %d vs %d", len(a.Emojis), len(b.Emojis))
	}
	for i := range a.Emojis {
		if a.Emojis[i] != b.Emojis[i] {
			t.Errorf("emoji %d differs: %+v vs %+v", i, a.Emojis[i], b.Emojis[i])
		}
	}
}

func TestStepClampsPlayer(t *testing.T) {
	sim := newTestSimulator(fixedRand{})
	lo, hi := sim.Bounds()

	tests := []struct {
		name     string
		in       core.Intent
		expected float64
		dir      Direction
	}{
		{"left wall", core.Intent{Left: true}, lo, DirectionLeft},
		{"right wall", core.Intent{Right: true}, hi, DirectionRight},
		{"both cancel", core.Intent{Left: true, Right: true}, 50, DirectionIdle},
		{"idle", core.Intent{}, 50, DirectionIdle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// A constant timestamp never lets the spawn interval elapse
			st := sim.NewRound(CharacterBoy, 0)
			for range 200 {
				st, _ = sim.Step(st, tc.in, 0)
				if st.Player.X < lo || st.Player.X > hi {
					t.Fatalf("player at %v escaped [%v, %v]", st.Player.X, lo, hi)
				}
			}
			if st.Player.X != tc.expected {
				t.Errorf("X = %v, expected %v", st.Player.X, tc.expected)
			}
			if st.Player.Direction != tc.dir {
				t.Errorf("direction = %v, expected %v", st.Player.Direction, tc.dir)
			}
		})
	}
}

func TestStepScoreCountsFrames(t *testing.T) {
	sim := newTestSimulator(fixedRand{})
	st := sim.NewRound(CharacterGirl, 0)

	lastDisplayed, lastChange := 0, 0
	for i := 1; i <= 250; i++ {
		prevRaw := st.RawScore
		st, _ = sim.Step(st, core.Intent{}, 0)
		if st.RawScore != prevRaw+1 {
			t.Fatalf("raw score went %d -> %d", prevRaw, st.RawScore)
		}
		if d := st.Score(); d != lastDisplayed {
			if d < lastDisplayed {
				t.Fatalf("displayed score decreased at frame %d", i)
			}
			if lastChange != 0 && i-lastChange < 10 {
				t.Fatalf("displayed score changed after %d frames", i-lastChange)
			}
			lastDisplayed, lastChange = d, i
		}
	}
	if st.Score() != 25 {
		t.Errorf("Score() = %d, expected 25", st.Score())
	}
}

func TestStepSpawnsAfterInterval(t *testing.T) {
	sim := newTestSimulator(fixedRand{f: 0.5, n: 3})
	st := sim.NewRound(CharacterBoy, 0)

	st, ev := sim.Step(st, core.Intent{}, 600*time.Millisecond)
	if ev.Spawned || len(st.Emojis) != 0 {
		t.Fatal("spawned at exactly the interval, expected strictly greater")
	}

	now := 601 * time.Millisecond
	st, ev = sim.Step(st, core.Intent{}, now)
	if !ev.Spawned || len(st.Emojis) != 1 {
		t.Fatalf("expected one spawn, got %d (event %v)", len(st.Emojis), ev.Spawned)
	}
	if st.LastSpawn != now {
		t.Errorf("LastSpawn = %v, expected %v", st.LastSpawn, now)
	}

	e := st.Emojis[0]
	cfg := config.DefaultGameConfig()
	// jitter = 0.8 + 0.5*0.4 = 1.0, and the new emoji already moved this frame
	if e.X != 0.5*(100-cfg.Emoji.Size) {
		t.Errorf("X = %v", e.X)
	}
	if e.Glyph != cfg.Emoji.Glyphs[3] {
		t.Errorf("glyph = %q, expected %q", e.Glyph, cfg.Emoji.Glyphs[3])
	}
	if diff := e.Speed - cfg.Emoji.SpeedStart; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("speed = %v, expected %v", e.Speed, cfg.Emoji.SpeedStart)
	}
	if e.Y != cfg.Emoji.SpawnY+e.Speed {
		t.Errorf("Y = %v, expected %v", e.Y, cfg.Emoji.SpawnY+e.Speed)
	}
	if e.ID != int64(now) {
		t.Errorf("ID = %d, expected %d", e.ID, int64(now))
	}
}

func TestStepCollisionEndsRound(t *testing.T) {
	sim := newTestSimulator(fixedRand{})
	st := sim.NewRound(CharacterBoy, 0)
	st.Emojis = []Emoji{
		{ID: 1, X: 10, Y: 20, Glyph: "🍕", Speed: 1},
		{ID: 2, X: 49, Y: 86, Glyph: "💣", Speed: 1},
		{ID: 3, X: 80, Y: 30, Glyph: "👻", Speed: 1},
	}

	next, ev := sim.Step(st, core.Intent{}, 0)
	if !ev.Collided {
		t.Fatal("expected a collision")
	}
	if next.Phase != PhaseGameOver {
		t.Errorf("phase = %v, expected gameOver", next.Phase)
	}
	if len(next.Emojis) != 0 {
		t.Errorf("field holds %d emoji after a collision", len(next.Emojis))
	}
	if next.Collision == nil || next.Collision.Glyph != "💣" {
		t.Fatalf("collision = %+v, expected 💣", next.Collision)
	}
	if next.Collision.X != next.Player.X || next.Collision.Y != CollisionY {
		t.Errorf("collision at (%v, %v)", next.Collision.X, next.Collision.Y)
	}

	// Input state is untouched
	if len(st.Emojis) != 3 || st.Emojis[1].Y != 86 || st.Phase != PhasePlaying {
		t.Error("Step mutated its input state")
	}

	// Game over is frozen
	frozen, ev := sim.Step(next, core.Intent{Left: true}, time.Second)
	if ev != (Events{}) || frozen.RawScore != next.RawScore || frozen.Player.X != next.Player.X {
		t.Error("a finished round should not advance")
	}
}

func TestStepCollisionUsesMovedPlayer(t *testing.T) {
	sim := newTestSimulator(fixedRand{})
	st := sim.NewRound(CharacterBoy, 0)
	// Player box [47.5, 52.5] moves to [48.5, 53.5] and meets [52.6, 56.6]
	st.Emojis = []Emoji{{ID: 1, X: 52.6, Y: 89, Glyph: "🔥", Speed: 1}}

	_, ev := sim.Step(st, core.Intent{}, 0)
	if ev.Collided {
		t.Fatal("standing still should miss")
	}
	_, ev = sim.Step(st, core.Intent{Right: true}, 0)
	if !ev.Collided {
		t.Fatal("moving right should hit")
	}
}

func TestStepDropsOffscreen(t *testing.T) {
	sim := newTestSimulator(fixedRand{})
	st := sim.NewRound(CharacterBoy, 0)
	st.Emojis = []Emoji{
		{ID: 1, X: 5, Y: 99.5, Glyph: "⭐", Speed: 1},
		{ID: 2, X: 5, Y: 50, Glyph: "🚀", Speed: 1},
	}

	next, _ := sim.Step(st, core.Intent{}, 0)
	if len(next.Emojis) != 1 || next.Emojis[0].ID != 2 {
		t.Fatalf("expected only emoji 2 to remain, got %+v", next.Emojis)
	}
	if next.Emojis[0].Y != 51 {
		t.Errorf("Y = %v, expected 51", next.Emojis[0].Y)
	}
}

func TestStepDifficultyProgression(t *testing.T) {
	cfg := config.DefaultGameConfig()
	sim := newTestSimulator(fixedRand{})
	st := sim.NewRound(CharacterBoy, 0)

	minInterval := time.Duration(cfg.Emoji.SpawnIntervalMinMs) * time.Millisecond
	prev := st.Difficulty
	levelUps := 0
	for range 6000 {
		var ev Events
		st, ev = sim.Step(st, core.Intent{}, 0)
		d := st.Difficulty
		if d.Level < prev.Level || d.Level < 1 || d.Level > cfg.Difficulty.MaxLevel {
			t.Fatalf("level %d after %d", d.Level, prev.Level)
		}
		if d.SpawnInterval > prev.SpawnInterval || d.SpawnInterval < minInterval {
			t.Fatalf("interval %v after %v", d.SpawnInterval, prev.SpawnInterval)
		}
		if ev.LevelUp {
			levelUps++
		}
		prev = d
	}

	if st.Difficulty.Level != cfg.Difficulty.MaxLevel {
		t.Errorf("level = %d, expected %d", st.Difficulty.Level, cfg.Difficulty.MaxLevel)
	}
	if levelUps != cfg.Difficulty.MaxLevel-1 {
		t.Errorf("level ups = %d, expected %d", levelUps, cfg.Difficulty.MaxLevel-1)
	}
}

func TestCollidesExamples(t *testing.T) {
	player := core.RectFromBounds(10, 90, 15, 100)

	tests := []struct {
		name     string
		emoji    core.Rect
		expected bool
	}{
		{"inside", core.RectFromBounds(12, 95, 13, 99), true},
		{"disjoint on x", core.RectFromBounds(20, 95, 24, 99), false},
		{"touching edge", core.RectFromBounds(15, 95, 19, 99), false},
		{"above band", core.RectFromBounds(11, 80, 15, 90), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(player, tc.emoji); got != tc.expected {
				t.Errorf("Collides = %v, expected %v", got, tc.expected)
			}
			if got := Collides(tc.emoji, player); got != tc.expected {
				t.Errorf("Collides is not symmetric")
			}
		})
	}
}

func TestCharacterSprites(t *testing.T) {
	if CharacterBoy.Next() != CharacterGirl || CharacterBoy.Prev() != CharacterGirl {
		t.Error("character selection should wrap")
	}
	idle := CharacterGirl.Sprite(DirectionIdle, 0)
	walk0 := CharacterGirl.Sprite(DirectionLeft, 0)
	walk1 := CharacterGirl.Sprite(DirectionLeft, WalkFrameDuration)
	if idle == walk0 || walk0 == walk1 {
		t.Errorf("sprites should differ: %q %q %q", idle, walk0, walk1)
	}
}
