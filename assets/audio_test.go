package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/automoto/marbledrones/config"
)

func TestSynthesizeToneLength(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		want     int
	}{
		{"tenth of a second", 0.1, 4410 * 4},
		{"zero", 0, 0},
		{"negative", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := SynthesizeTone(cfg.Tone{StartHz: 440, EndHz: 440, Duration: tt.duration, Volume: 0.5}, 44100)
			if len(buf) != tt.want {
				t.Errorf("len = %d, want %d", len(buf), tt.want)
			}
		})
	}
}

func TestSynthesizeToneStereoAndFade(t *testing.T) {
	buf := SynthesizeTone(cfg.Tone{StartHz: 300, EndHz: 900, Duration: 0.05, Volume: 1}, 44100)

	peakStart, peakEnd := 0, 0
	n := len(buf) / 4
	for i := 0; i < n; i++ {
		l := int16(binary.LittleEndian.Uint16(buf[i*4:]))
		r := int16(binary.LittleEndian.Uint16(buf[i*4+2:]))
		if l != r {
			t.Fatalf("sample %d: left %d != right %d", i, l, r)
		}
		a := int(l)
		if a < 0 {
			a = -a
		}
		if i < n/4 && a > peakStart {
			peakStart = a
		}
		if i >= n*3/4 && a > peakEnd {
			peakEnd = a
		}
	}
	if peakEnd >= peakStart {
		t.Errorf("tone does not fade: start peak %d, end peak %d", peakStart, peakEnd)
	}
}
