package audio

import (
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundSpawn Sound = iota
	SoundCollision
	SoundStart
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundSpawn:
		return "spawn"
	case SoundCollision:
		return "collision"
	case SoundStart:
		return "start"
	default:
		return "unknown"
	}
}

// waveform returns a sample in [-1,1] for a phase in radians.
type waveform func(phase float64) float64

func sineWave(phase float64) float64 {
	return math.Sin(phase)
}

func triWave(phase float64) float64 {
	return (2.0 / math.Pi) * math.Asin(math.Sin(phase))
}

func squareWave(phase float64) float64 {
	if math.Sin(phase) >= 0 {
		return 1
	}
	return -1
}

// floorGain is where every envelope decays to.
const floorGain = 0.0001

// decay is an exponential ramp from gain at p=0 to floorGain at p=1.
func decay(gain, p float64) float64 {
	if gain <= floorGain {
		return gain
	}
	return gain * math.Pow(floorGain/gain, p)
}

// voice is one oscillator or noise burst in a sound.
type voice struct {
	wave   waveform // nil for white noise
	freq   float64
	gain   float64
	offset float64 // Start time in seconds
	dur    float64 // Length in seconds
}

// recipes lists the voices of each sound.
var recipes = map[Sound][]voice{
	SoundSpawn: {
		{wave: triWave, freq: 880, gain: 0.15, dur: 0.1},
	},
	SoundCollision: {
		{gain: 0.4, dur: 0.3},
		{wave: squareWave, freq: 100, gain: 0.5, dur: 0.2},
	},
	SoundStart: {
		{wave: sineWave, freq: 261.63, gain: 0.3, offset: 0.0, dur: 0.1}, // C4
		{wave: sineWave, freq: 329.63, gain: 0.3, offset: 0.1, dur: 0.1}, // E4
		{wave: sineWave, freq: 392.00, gain: 0.3, offset: 0.2, dur: 0.1}, // G4
	},
}

// Samples renders a sound as mono samples in [-1,1] at SampleRate.
func Samples(s Sound) []float64 {
	voices := recipes[s]
	if len(voices) == 0 {
		return nil
	}

	length := 0.0
	for _, v := range voices {
		length = max(length, v.offset+v.dur)
	}
	out := make([]float64, int(length*SampleRate))

	seed := uint64(0x9e3779b97f4a7c15)
	for _, v := range voices {
		start := int(v.offset * SampleRate)
		n := int(v.dur * SampleRate)
		for i := 0; i < n && start+i < len(out); i++ {
			t := float64(i) / SampleRate
			p := float64(i) / float64(n)
			var sample float64
			if v.wave == nil {
				sample = lcg(&seed)
			} else {
				sample = v.wave(2 * math.Pi * v.freq * t)
			}
			out[start+i] += sample * decay(v.gain, p)
		}
	}

	for i := range out {
		out[i] = softSat(out[i])
	}
	return out
}

// Encode converts mono samples to interleaved stereo float32 LE.
func Encode(samples []float64) []byte {
	buf := make([]byte, len(samples)*4*ChannelCount)
	for i, s := range samples {
		putStereoF32(buf, i, s)
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		o := i*8 + ch*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle saturation so summed voices never clip.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}
