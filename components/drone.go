package components

import (
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type DroneData struct {
	Type     loadout.DroneType
	Owner    *donburi.Entry
	Ammo     int
	Anchor   int
	Position gamemath.Vec2
	Altitude float64
	Rotation float64 // degrees
	Bob      *gween.Tween
}

var Drone = donburi.NewComponentType[DroneData]()
