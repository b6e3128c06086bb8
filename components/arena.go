package components

import (
	"math/rand"

	"github.com/automoto/marbledrones/shared/leveldata"
	"github.com/yohamta/donburi"
)

// ArenaData holds the loaded arena and the match's random source (singleton).
type ArenaData struct {
	Data        *leveldata.ArenaData
	Rng         *rand.Rand
	PlayerCount int
	CursorGrab  bool
}

var Arena = donburi.NewComponentType[ArenaData]()
