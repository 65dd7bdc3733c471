// internal/ui/overlay.go
package ui

import (
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/interfaces"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Overlay затемняет поле и выводит подсказку по центру
type Overlay struct {
	Title   string
	Hint    string
	Button  *Button
	printer *message.Printer
}

// NewPauseOverlay — экран паузы
func NewPauseOverlay() *Overlay {
	return &Overlay{Title: "PAUSED", Hint: "Esc to resume, Tab to restart"}
}

// NewGameOverOverlay — экран конца игры с кнопкой рестарта
func NewGameOverOverlay(tag language.Tag) *Overlay {
	return &Overlay{
		Title:   "GAME OVER",
		Button:  NewButton("Restart", config.RestartButtonWidth, config.RestartButtonHeight),
		printer: message.NewPrinter(tag),
	}
}

// SetScore подставляет итоговый счёт в подсказку
func (o *Overlay) SetScore(score int) {
	if o.printer == nil {
		return
	}
	o.Hint = o.printer.Sprintf("Score: %d", score)
}

// Layout пересчитывает положение кнопки под размер холста
func (o *Overlay) Layout(width, height float64) {
	if o.Button != nil {
		o.Button.CenterAt(width/2, height/2+config.PromptFontSize*2)
	}
}

func (o *Overlay) Draw(canvas interfaces.Canvas, cursorX, cursorY float64) {
	w, h := canvas.Width(), canvas.Height()
	o.Layout(w, h)
	canvas.FillRect(0, 0, w, h, config.OverlayColor)
	canvas.DrawTextCentered(o.Title, w/2, h/2-config.PromptFontSize, config.PromptFontSize, config.TextLightColor)
	if o.Hint != "" {
		canvas.DrawTextCentered(o.Hint, w/2, h/2+config.HUDFontSize/2, config.HUDFontSize, config.TextLightColor)
	}
	if o.Button != nil {
		o.Button.Draw(canvas, cursorX, cursorY)
	}
}
