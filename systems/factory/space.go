package factory

import (
	"github.com/automoto/marbledrones/archetypes"
	"github.com/automoto/marbledrones/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace places obj in the world's collision space, if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if obj.Space != nil {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// placeObject reuses the entry's collision object or creates one, moves it to
// (x, y) and makes sure it is in the space.
func placeObject(ecs *ecs.ECS, entry *donburi.Entry, x, y, w, h float64, tag string) *resolv.Object {
	obj := components.Object.Get(entry).Object
	if obj == nil {
		obj = resolv.NewObject(x, y, w, h, tag)
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		obj.Data = entry
		components.Object.SetValue(entry, components.ObjectData{Object: obj})
	}
	obj.X = x
	obj.Y = y
	addToSpace(ecs, obj)
	obj.Update()
	return obj
}
