package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Pickup     = donburi.NewTag().SetName("Pickup")
	Drone      = donburi.NewTag().SetName("Drone")
	Projectile = donburi.NewTag().SetName("Projectile")
	Wall       = donburi.NewTag().SetName("Wall")

	// Pooled marks entries parked in the entity pool; systems skip them.
	Pooled = donburi.NewTag().SetName("Pooled")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvMarble     = "marble"
	ResolvPickup     = "pickup"
	ResolvProjectile = "projectile"
)
