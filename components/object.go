package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entry to its collision object. The object's Data field
// points back at the entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the arena's collision space singleton.
var Space = donburi.NewComponentType[resolv.Space]()
