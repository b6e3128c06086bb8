package components

import (
	"github.com/automoto/marbledrones/shared/gamemath"
	"github.com/automoto/marbledrones/shared/loadout"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Type          loadout.DroneType
	Owner         *donburi.Entry
	Velocity      gamemath.Vec2
	Altitude      float64
	VerticalSpeed float64
	Target        *donburi.Entry // seeker only
	Lifetime      float64        // seconds left
}

var Projectile = donburi.NewComponentType[ProjectileData]()
