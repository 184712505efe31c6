package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Hazard = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvHazard = "kill"
	ResolvPlayer = "Player"
)
