package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/marbledrones/shared/leveldata"
)

//go:embed arenas/*.tmx
var arenaFS embed.FS

// ArenaDir is the embedded directory holding arena maps.
const ArenaDir = "arenas"

// Arenas holds every embedded arena keyed by name, filled by LoadAssets.
var (
	Arenas     map[string]*leveldata.ArenaData
	ArenaNames []string
)

// LoadArenas parses every embedded arena map.
func LoadArenas() (map[string]*leveldata.ArenaData, []string, error) {
	return leveldata.LoadAllArenas(arenaFS, ArenaDir)
}

// LoadAssets loads arenas and compiles shaders. Call once before the first scene.
func LoadAssets() error {
	arenas, names, err := LoadArenas()
	if err != nil {
		return fmt.Errorf("load arenas: %w", err)
	}
	Arenas = arenas
	ArenaNames = names

	if err := LoadShaders(); err != nil {
		return err
	}
	return nil
}

// Arena returns the named arena, falling back to the first one by name.
func Arena(name string) (*leveldata.ArenaData, error) {
	if a, ok := Arenas[name]; ok {
		return a, nil
	}
	if len(ArenaNames) == 0 {
		return nil, fmt.Errorf("arena %q: no arenas loaded", name)
	}
	return Arenas[ArenaNames[0]], fmt.Errorf("arena %q not found, using %s", name, ArenaNames[0])
}
