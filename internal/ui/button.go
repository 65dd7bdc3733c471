// internal/ui/button.go
package ui

import (
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/interfaces"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H float64
	Text       string
}

func NewButton(text string, w, h float64) *Button {
	return &Button{Text: text, W: w, H: h}
}

// CenterAt размещает кнопку центром в точке (cx, cy)
func (b *Button) CenterAt(cx, cy float64) {
	b.X = cx - b.W/2
	b.Y = cy - b.H/2
}

// Contains проверяет, попадает ли точка в кнопку
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Draw отрисовывает кнопку, подсвечивая её под курсором.
func (b *Button) Draw(canvas interfaces.Canvas, cursorX, cursorY float64) {
	bg := config.ButtonColor
	if b.Contains(cursorX, cursorY) {
		bg = config.ButtonHoverColor
	}
	canvas.FillRect(b.X, b.Y, b.W, b.H, bg)
	canvas.DrawTextCentered(b.Text, b.X+b.W/2, b.Y+b.H/2, config.HUDFontSize, config.TextLightColor)
}
