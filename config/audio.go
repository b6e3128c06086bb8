package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Marble sounds
	SoundJump
	SoundDrop
	SoundLand
	SoundDash
	SoundBounce
	// Drone sounds
	SoundPickup
	SoundFireRocket
	SoundFireMortar
	SoundFireSeeker
	SoundHit
	SoundDroneEmpty
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// Tone describes a synthesized sound effect: a sweep from StartHz to EndHz
// with a linear fade out.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Noise    float64 // 0..1 mix of white noise
	Volume   float64
}

// SoundConfig maps sound IDs to their synthesized tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundJump:         {StartHz: 320, EndHz: 640, Duration: 0.12, Volume: 0.4},
			SoundDrop:         {StartHz: 520, EndHz: 140, Duration: 0.15, Volume: 0.4},
			SoundLand:         {StartHz: 120, EndHz: 60, Duration: 0.08, Noise: 0.5, Volume: 0.5},
			SoundDash:         {StartHz: 200, EndHz: 900, Duration: 0.18, Noise: 0.3, Volume: 0.45},
			SoundBounce:       {StartHz: 260, EndHz: 200, Duration: 0.05, Volume: 0.3},
			SoundPickup:       {StartHz: 660, EndHz: 990, Duration: 0.14, Volume: 0.4},
			SoundFireRocket:   {StartHz: 900, EndHz: 300, Duration: 0.16, Noise: 0.4, Volume: 0.45},
			SoundFireMortar:   {StartHz: 180, EndHz: 90, Duration: 0.22, Noise: 0.6, Volume: 0.5},
			SoundFireSeeker:   {StartHz: 700, EndHz: 1400, Duration: 0.2, Volume: 0.35},
			SoundHit:          {StartHz: 160, EndHz: 40, Duration: 0.25, Noise: 0.8, Volume: 0.7},
			SoundDroneEmpty:   {StartHz: 400, EndHz: 200, Duration: 0.1, Volume: 0.3},
			SoundMenuNavigate: {StartHz: 880, EndHz: 880, Duration: 0.04, Volume: 0.25},
			SoundMenuSelect:   {StartHz: 660, EndHz: 1320, Duration: 0.08, Volume: 0.3},
		},
	}
}
