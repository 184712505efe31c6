// Package leveldata parses TMX maps into the rectangles the game collides
// against. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Layer and object group names read from a map.
const (
	LayerWalls   = "walls"
	LayerKill    = "kill"
	GroupSpawns  = "PlayerSpawn"
	PropSpawnIdx = "spawnIndex"
)

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	Name        string
	SolidRects  []Rect
	HazardRects []Rect
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
	TileWidth   int
	TileHeight  int
}

// Rect is one tile-sized box, top-left anchored.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player respawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}
