package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadCollisionData parses a TMX file and returns its walls, hazards and
// spawn points. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
// A map without a walls layer is rejected; the kill layer is optional.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	foundWalls := false
	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case LayerWalls:
			foundWalls = true
			data.SolidRects = tileRects(levelMap, layer)
		case LayerKill:
			data.HazardRects = tileRects(levelMap, layer)
		}
	}
	if !foundWalls {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, LayerWalls)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != GroupSpawns {
			continue
		}
		for _, o := range og.Objects {
			data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt(PropSpawnIdx),
			})
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

func tileRects(m *tiled.Map, layer *tiled.Layer) []Rect {
	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)
	var rects []Rect
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			i := y*m.Width + x
			if i >= len(layer.Tiles) || layer.Tiles[i].IsNil() {
				continue
			}
			rects = append(rects, Rect{
				X: float64(x) * tileW,
				Y: float64(y) * tileH,
				W: tileW,
				H: tileH,
			})
		}
	}
	return rects
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads collision
// data for each, and returns a map keyed by file name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadCollisionData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		name := filepath.Base(path)
		levels[name] = data
		names = append(names, name)
	}

	sort.Strings(names)
	return levels, names, nil
}
