package game

import (
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"circleshooter/assets"
)

// ImageLoader loads sprites by path and remembers both hits and misses, so a
// missing file is reported once and then simply not drawn
type ImageLoader struct {
	fsys   fs.FS
	images map[string]*ebiten.Image
	failed map[string]error
}

// NewImageLoader reads from dir, or from the embedded assets when dir is empty
func NewImageLoader(dir string) *ImageLoader {
	var fsys fs.FS = assets.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	return &ImageLoader{
		fsys:   fsys,
		images: make(map[string]*ebiten.Image),
		failed: make(map[string]error),
	}
}

// Load returns the image at path
func (l *ImageLoader) Load(path string) (*ebiten.Image, error) {
	if img, ok := l.images[path]; ok {
		return img, nil
	}
	if err, ok := l.failed[path]; ok {
		return nil, err
	}

	img, _, err := ebitenutil.NewImageFromFileSystem(l.fsys, path)
	if err != nil {
		err = fmt.Errorf("load %s: %w", path, err)
		l.failed[path] = err
		log.Printf("Failed to load image: %v", err)
		return nil, err
	}
	l.images[path] = img
	return img, nil
}
