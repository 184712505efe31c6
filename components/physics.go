package components

import (
	"github.com/automoto/flapping/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData is velocity in pixels per frame.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()

// ObjectData links an entity to its box in the collision space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Box returns the object's bounds as a center and half extents.
func (o ObjectData) Box() gamemath.Box {
	return gamemath.BoxFromRect(o.X, o.Y, o.W, o.H)
}

// Space is the broadphase grid holding walls and hazards.
var Space = donburi.NewComponentType[resolv.Space]()
