package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	mu    sync.Mutex
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the HUD faces built from the Go regular font.
func LoadDefaults() error {
	if err := LoadFontWithSize(Regular, goregular.TTF, 18); err != nil {
		return err
	}
	return LoadFontWithSize(Title, goregular.TTF, 48)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	mu.Lock()
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	mu.Unlock()
	return nil
}

func getFont(name FontName) font.Face {
	mu.Lock()
	defer mu.Unlock()
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
