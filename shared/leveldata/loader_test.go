package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="10">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="320" height="16"/>
  <object id="2" x="100" y="50" width="0" height="10"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" x="200" y="80">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="4" x="40" y="80">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="PickupZone">
  <object id="5" x="16" y="16" width="288" height="128"/>
 </objectgroup>
</map>
`

const noSpawnArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="64" height="16"/>
 </objectgroup>
</map>
`

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/test.tmx": {Data: []byte(testArena)},
	}

	data, err := LoadArena(fsys, "arenas/test.tmx")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if data.Name != "test" {
		t.Errorf("Name = %q, want %q", data.Name, "test")
	}
	if data.MapWidth != 320 || data.MapHeight != 160 {
		t.Errorf("map size = %dx%d, want 320x160", data.MapWidth, data.MapHeight)
	}
	if len(data.Walls) != 1 {
		t.Fatalf("len(Walls) = %d, want 1 (zero-size walls are skipped)", len(data.Walls))
	}
	if data.Walls[0] != (SolidRect{X: 0, Y: 0, W: 320, H: 16}) {
		t.Errorf("Walls[0] = %+v", data.Walls[0])
	}
	if len(data.SpawnPoints) != 2 {
		t.Fatalf("len(SpawnPoints) = %d, want 2", len(data.SpawnPoints))
	}
	if data.SpawnPoints[0].Index != 0 || data.SpawnPoints[0].X != 40 {
		t.Errorf("SpawnPoints not sorted by index: %+v", data.SpawnPoints)
	}
	if data.PickupZone != (SolidRect{X: 16, Y: 16, W: 288, H: 128}) {
		t.Errorf("PickupZone = %+v", data.PickupZone)
	}
}

func TestLoadArenaWithoutSpawns(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/empty.tmx": {Data: []byte(noSpawnArena)},
	}

	_, err := LoadArena(fsys, "arenas/empty.tmx")
	if !errors.Is(err, ErrNoSpawnPoints) {
		t.Fatalf("err = %v, want ErrNoSpawnPoints", err)
	}
}

func TestLoadArenaMissingFile(t *testing.T) {
	if _, err := LoadArena(fstest.MapFS{}, "arenas/missing.tmx"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadAllArenas(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/b.tmx": {Data: []byte(testArena)},
		"arenas/a.tmx": {Data: []byte(testArena)},
	}

	arenas, names, err := LoadAllArenas(fsys, "arenas")
	if err != nil {
		t.Fatalf("LoadAllArenas: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v, want [a b]", names)
	}
	if arenas["a"] == nil || arenas["a"].Name != "a" {
		t.Errorf("arena a missing or misnamed: %+v", arenas["a"])
	}

	if _, _, err := LoadAllArenas(fstest.MapFS{}, "arenas"); err == nil {
		t.Error("expected error for empty directory")
	}
}
