// internal/interfaces/canvas.go
package interfaces

import "image/color"

// Canvas — поверхность рисования. Симуляция о ней ничего не знает,
// рисует только RenderSystem и UI.
type Canvas interface {
	Width() float64
	Height() float64
	// Clear заливает холст полупрозрачным цветом, оставляя шлейф от движения
	Clear(trail color.Color)
	DrawCircle(x, y, r float64, c color.Color)
	// DrawText рисует строку от левого верхнего угла (x, y)
	DrawText(s string, x, y float64, c color.Color)
	// DrawTextCentered рисует строку кеглем size с центром в (x, y)
	DrawTextCentered(s string, x, y, size float64, c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
}
