package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"sync"

	"github.com/automoto/blockdude/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Sprite is an image scaled to its entity's size together with its mirror
// image, so drawing a left-facing entity needs no per-frame transform.
type Sprite struct {
	Image   *ebiten.Image
	Flipped *ebiten.Image
}

// Facing returns the image for the given facing.
func (s *Sprite) Facing(right bool) *ebiten.Image {
	if right {
		return s.Image
	}
	return s.Flipped
}

type spriteKey struct {
	name string
	w, h int
}

// SpriteLoader loads PNG sprites from a directory and caches them per size.
// Missing or unreadable files fall back to a generated image.
type SpriteLoader struct {
	fsys  fs.FS
	mu    sync.Mutex
	cache map[spriteKey]*Sprite
}

func NewSpriteLoader(fsys fs.FS) *SpriteLoader {
	return &SpriteLoader{
		fsys:  fsys,
		cache: make(map[spriteKey]*Sprite),
	}
}

// Load returns the sprite called name scaled to w×h. fill colours the
// generated fallback.
func (l *SpriteLoader) Load(name string, w, h int, fill color.Color) *Sprite {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := spriteKey{name, w, h}
	if s, ok := l.cache[key]; ok {
		return s
	}

	src, err := l.read(name)
	if err != nil {
		log.Debug("using generated sprite", "name", name, "err", err)
		src = generate(w, h, fill)
	}

	s := &Sprite{
		Image:   scale(src, w, h, false),
		Flipped: scale(src, w, h, true),
	}
	l.cache[key] = s
	return s
}

func (l *SpriteLoader) read(name string) (*ebiten.Image, error) {
	if l.fsys == nil {
		return nil, fs.ErrNotExist
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", name, err)
	}
	return img, nil
}

// scale draws src into a new w×h image, mirrored horizontally if flip is set.
func scale(src *ebiten.Image, w, h int, flip bool) *ebiten.Image {
	dst := ebiten.NewImage(w, h)
	b := src.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(w), 0)
	}
	dst.DrawImage(src, op)
	return dst
}

// generate builds a flat sprite with a darker band on its right side so the
// facing stays visible.
func generate(w, h int, fill color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(fill)

	band := max(w/5, 1)
	r, g, b, a := fill.RGBA()
	shade := color.RGBA{R: uint8(r >> 9), G: uint8(g >> 9), B: uint8(b >> 9), A: uint8(a >> 8)}
	img.SubImage(image.Rect(w-band, 0, w, h)).(*ebiten.Image).Fill(shade)
	return img
}

var (
	loaderOnce sync.Once
	loader     *SpriteLoader
)

// GetSprite loads a sprite through the shared loader rooted at
// config.Debug.SpriteDir.
func GetSprite(name string, w, h int, fill color.Color) *Sprite {
	loaderOnce.Do(func() {
		loader = NewSpriteLoader(os.DirFS(config.Debug.SpriteDir))
	})
	return loader.Load(name, w, h, fill)
}
