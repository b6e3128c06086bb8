// Package leveldata parses TMX arena maps into plain data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// ArenaData holds everything the arena scene needs from a TMX map.
type ArenaData struct {
	Name        string
	Walls       []SolidRect
	SpawnPoints []SpawnPoint
	PickupZone  SolidRect // area pickups may land in; the whole map when absent
	MapWidth    int
	MapHeight   int
}

// SolidRect is an axis-aligned blocking rectangle in map pixels.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint is a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
