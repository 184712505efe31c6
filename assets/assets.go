package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/automoto/flapping/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

const (
	levelsDir  = "levels"
	avatarsDir = "images/avatars"
)

type LevelLoader struct {
	fsys  fs.FS
	cache map[string]*leveldata.CollisionData
}

// NewLevelLoader returns a loader over the embedded maps.
func NewLevelLoader() *LevelLoader {
	return NewLevelLoaderFS(assetFS)
}

// NewLevelLoaderFS returns a loader over any file system with a levels/ directory.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{
		fsys:  fsys,
		cache: make(map[string]*leveldata.CollisionData),
	}
}

// Load parses levels/<name>, caching the result.
func (l *LevelLoader) Load(name string) (*leveldata.CollisionData, error) {
	if data, ok := l.cache[name]; ok {
		return data, nil
	}
	data, err := leveldata.LoadCollisionData(l.fsys, path.Join(levelsDir, name))
	if err != nil {
		return nil, err
	}
	l.cache[name] = data
	return data, nil
}

// CheckAll loads every named map so a missing or broken one fails at startup.
func (l *LevelLoader) CheckAll(names []string) error {
	for _, name := range names {
		if _, err := l.Load(name); err != nil {
			return err
		}
	}
	return nil
}

type ImageLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		fsys:  imageFS,
		cache: make(map[string]*ebiten.Image),
	}
}

// CheckAvatars verifies that every roster entry has an image file.
func (l *ImageLoader) CheckAvatars(avatars map[string]string) error {
	names := make([]string, 0, len(avatars))
	for name := range avatars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := path.Join(avatarsDir, avatars[name])
		if _, err := fs.Stat(l.fsys, p); err != nil {
			return fmt.Errorf("avatar %s: %w", name, err)
		}
	}
	return nil
}

// Avatar returns the image for an avatar file.
func (l *ImageLoader) Avatar(file string) (*ebiten.Image, error) {
	p := path.Join(avatarsDir, file)
	if img, ok := l.cache[p]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", p, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", p, err)
	}

	l.cache[p] = img
	return img, nil
}

// MustAvatar is Avatar for images already verified by CheckAvatars.
func (l *ImageLoader) MustAvatar(file string) *ebiten.Image {
	img, err := l.Avatar(file)
	if err != nil {
		panic(err)
	}
	return img
}
