package components

import (
	"image/color"

	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index    int
	Color    color.RGBA
	Drones   []*donburi.Entry // in anchor order, at most loadout.MaxDrones
	Selected int              // index into Drones
	Layer    int              // overlay layer only this player's camera draws
	Spawn    gamemath.Vec2
	Hits     int // projectiles landed on other players
}

var Player = donburi.NewComponentType[PlayerData]()
