// internal/assets/fonts.go
package assets

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const minFontSize = 6

// FontManager разбирает встроенный шрифт Go один раз и кэширует начертания по кеглю.
type FontManager struct {
	font  *opentype.Font
	faces map[int]font.Face
}

// NewFontManager создает новый экземпляр FontManager.
func NewFontManager() (*FontManager, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontManager{font: tt, faces: make(map[int]font.Face)}, nil
}

// Face возвращает начертание кегля size, округлённого до целого.
func (m *FontManager) Face(size float64) (font.Face, error) {
	key := int(math.Round(size))
	if key < minFontSize {
		key = minFontSize
	}
	if face, ok := m.faces[key]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    float64(key),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %dpt face: %w", key, err)
	}
	m.faces[key] = face
	return face, nil
}

// Cached — число созданных начертаний
func (m *FontManager) Cached() int {
	return len(m.faces)
}

// Close освобождает все начертания
func (m *FontManager) Close() error {
	for key, face := range m.faces {
		if err := face.Close(); err != nil {
			return err
		}
		delete(m.faces, key)
	}
	return nil
}
