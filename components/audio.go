package components

import (
	cfg "github.com/automoto/marbledrones/config"
	"github.com/yohamta/donburi"
)

// AudioData stores sound effects queued by gameplay systems (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
