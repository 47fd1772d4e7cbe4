// Package audio plays the procedural sound effects of Killer Emoji through
// the host sound card. Every trigger is fire-and-forget: sounds play on
// their own goroutine and failures only turn the sound off.
package audio

import (
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/killer-emoji/internal/config"
)

// Player plays sound effects with oto. The output device is opened on the
// first Init call, not at construction. Triggers are meant to be called
// from the single game loop goroutine.
type Player struct {
	enabled bool
	logger  *log.Logger

	once   sync.Once
	ctx    *oto.Context
	ready  chan struct{}
	sounds map[Sound][]byte
	gain   atomic.Uint64 // math.Float64bits of the 0..1 gain
}

// New creates a player. With cfg.Enabled false every trigger is a no-op.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{enabled: cfg.Enabled, logger: logger}
	p.SetVolume(cfg.Volume)
	return p
}

// Init opens the audio device. Only the first call does anything; a device
// that cannot be opened leaves the player silent.
func (p *Player) Init() {
	p.once.Do(func() {
		if !p.enabled {
			return
		}
		ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
		if err != nil {
			p.logger.Warn("audio unavailable, continuing without sound", "err", err)
			return
		}
		p.sounds = make(map[Sound][]byte, len(recipes))
		for s := range recipes {
			p.sounds[s] = Encode(Samples(s))
		}
		p.ctx, p.ready = ctx, ready
		p.logger.Debug("audio ready", "rate", SampleRate)
	})
}

// OnSpawn plays the spawn blip.
func (p *Player) OnSpawn() { p.play(SoundSpawn) }

// OnCollision plays the crash.
func (p *Player) OnCollision() { p.play(SoundCollision) }

// OnSessionStart plays the start arpeggio.
func (p *Player) OnSessionStart() { p.play(SoundStart) }

// SetVolume sets the gain from a level in 0..config.MaxVolume.
func (p *Player) SetVolume(level int) {
	p.gain.Store(math.Float64bits(LevelGain(level)))
}

// Gain returns the current gain in 0..1.
func (p *Player) Gain() float64 {
	return math.Float64frombits(p.gain.Load())
}

// LevelGain maps a volume level to a gain in 0..1.
func LevelGain(level int) float64 {
	level = min(max(level, 0), config.MaxVolume)
	return float64(level) / config.MaxVolume
}

func (p *Player) play(s Sound) {
	if p.ctx == nil {
		return
	}
	gain := p.Gain()
	if gain <= 0 {
		return
	}
	data := p.sounds[s]
	if len(data) == 0 {
		return
	}

	go func() {
		<-p.ready
		player := p.ctx.NewPlayer(&soundReader{data: data})
		player.SetVolume(gain)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.logger.Debug("audio player close failed", "sound", s, "err", err)
		}
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(b []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(b, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// Nop is a silent player, used for remote sessions.
type Nop struct{}

func (Nop) Init()           {}
func (Nop) OnSpawn()        {}
func (Nop) OnCollision()    {}
func (Nop) OnSessionStart() {}
func (Nop) SetVolume(int)   {}
