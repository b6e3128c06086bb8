package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from arena maps.
const (
	SolidTileLayer  = "wg-tiles"
	WallGroup       = "Walls"
	SpawnGroup      = "PlayerSpawn"
	PickupZoneGroup = "PickupZone"
	spawnIndexProp  = "spawnIndex"
)

// ErrNoSpawnPoints is returned for maps without a PlayerSpawn group.
var ErrNoSpawnPoints = errors.New("arena has no player spawn points")

// LoadArena parses a TMX file into ArenaData. It takes an fs.FS so callers can
// pass an embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  arenaMap.Width * arenaMap.TileWidth,
		MapHeight: arenaMap.Height * arenaMap.TileHeight,
	}
	data.PickupZone = SolidRect{W: float64(data.MapWidth), H: float64(data.MapHeight)}

	// Solid tiles become one wall each
	tileW := float64(arenaMap.TileWidth)
	tileH := float64(arenaMap.TileHeight)
	for _, layer := range arenaMap.Layers {
		if layer.Name != SolidTileLayer {
			continue
		}
		for y := 0; y < arenaMap.Height; y++ {
			for x := 0; x < arenaMap.Width; x++ {
				tile := layer.Tiles[y*arenaMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.Walls = append(data.Walls, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case WallGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				data.Walls = append(data.Walls, SolidRect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case SpawnGroup:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt(spawnIndexProp),
				})
			}
		case PickupZoneGroup:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				data.PickupZone = SolidRect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			}
		}
	}

	if len(data.SpawnPoints) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawnPoints)
	}

	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].Index < data.SpawnPoints[j].Index
	})

	return data, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		arenas[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return arenas, names, nil
}
