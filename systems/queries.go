package systems

import (
	"github.com/automoto/marbledrones/components"
	"github.com/automoto/marbledrones/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Queries over live entries; pooled entries are excluded.
var (
	pickupQuery = donburi.NewQuery(filter.And(
		filter.Contains(tags.Pickup),
		filter.Not(filter.Contains(tags.Pooled)),
	))
	droneQuery = donburi.NewQuery(filter.And(
		filter.Contains(tags.Drone),
		filter.Not(filter.Contains(tags.Pooled)),
	))
	projectileQuery = donburi.NewQuery(filter.And(
		filter.Contains(tags.Projectile),
		filter.Not(filter.Contains(tags.Pooled)),
	))
	cameraQuery = donburi.NewQuery(filter.Contains(components.Camera))
)
