// pkg/render/canvas/canvas.go
package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// FaceSource отдаёт начертание шрифта нужного кегля
type FaceSource interface {
	Face(size float64) (font.Face, error)
}

// Canvas рисует на кадре ebiten. Цель задаётся каждый кадр через SetTarget.
type Canvas struct {
	screen   *ebiten.Image
	fonts    FaceSource
	textSize float64
}

// New создаёт холст, рисующий текст HUD кеглем textSize
func New(fonts FaceSource, textSize float64) *Canvas {
	return &Canvas{fonts: fonts, textSize: textSize}
}

func (c *Canvas) SetTarget(screen *ebiten.Image) {
	c.screen = screen
}

func (c *Canvas) Width() float64 {
	if c.screen == nil {
		return 0
	}
	return float64(c.screen.Bounds().Dx())
}

func (c *Canvas) Height() float64 {
	if c.screen == nil {
		return 0
	}
	return float64(c.screen.Bounds().Dy())
}

// Clear накладывает полупрозрачный прямоугольник поверх прошлого кадра
func (c *Canvas) Clear(trail color.Color) {
	vector.DrawFilledRect(c.screen, 0, 0, float32(c.Width()), float32(c.Height()), trail, false)
}

func (c *Canvas) DrawCircle(x, y, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.screen, float32(x), float32(y), float32(r), clr, true)
}

func (c *Canvas) DrawText(s string, x, y float64, clr color.Color) {
	face, err := c.fonts.Face(c.textSize)
	if err != nil {
		return
	}
	b := text.BoundString(face, s)
	text.Draw(c.screen, s, face, int(x), int(y)-b.Min.Y, clr)
}

func (c *Canvas) DrawTextCentered(s string, x, y, size float64, clr color.Color) {
	face, err := c.fonts.Face(size)
	if err != nil {
		return
	}
	b := text.BoundString(face, s)
	text.Draw(c.screen, s, face, int(x)-b.Min.X-b.Dx()/2, int(y)-b.Min.Y-b.Dy()/2, clr)
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}
