package assets

import (
	"encoding/binary"
	"math"
	"math/rand"

	cfg "github.com/automoto/marbledrones/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // 16-bit stereo PCM
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) bool {
	if _, ok := l.sfxCache[id]; ok {
		return true
	}
	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return false
	}
	l.sfxCache[id] = SynthesizeTone(tone, l.context.SampleRate())
	return true
}

// LoadSFX returns a new player for a sound effect, or nil when the sound has
// no tone configured.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) *audio.Player {
	if !l.PreloadSFX(id) {
		return nil
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id])
}

// SynthesizeTone renders a frequency sweep with optional noise and a linear
// fade out as 16-bit little-endian stereo PCM.
func SynthesizeTone(t cfg.Tone, sampleRate int) []byte {
	n := int(t.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		hz := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += 2 * math.Pi * hz / float64(sampleRate)

		v := math.Sin(phase)*(1-t.Noise) + (rand.Float64()*2-1)*t.Noise
		v *= t.Volume * (1 - progress)

		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
