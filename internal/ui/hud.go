// internal/ui/hud.go
package ui

import (
	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/event"
	"go-circle-shooter/internal/interfaces"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HUD показывает счётчики сессии. Значения приходят только через события.
type HUD struct {
	stats   component.Stats
	printer *message.Printer
}

func NewHUD(tag language.Tag) *HUD {
	return &HUD{printer: message.NewPrinter(tag)}
}

// Attach подписывает HUD на события со счётчиками
func (h *HUD) Attach(d *event.Dispatcher) {
	d.SubscribeAll(h, event.ScoreChanged, event.ProjectileFired, event.GameOver, event.Restarted)
}

func (h *HUD) OnEvent(e event.Event) {
	data, ok := e.Data.(event.StatsData)
	if !ok {
		return
	}
	if e.Type == event.Restarted {
		h.stats = component.Stats{Deaths: data.Stats.Deaths}
		return
	}
	h.stats = data.Stats
}

// Set выставляет счётчики напрямую, например после восстановления снимка
func (h *HUD) Set(stats component.Stats) {
	h.stats = stats
}

func (h *HUD) Stats() component.Stats {
	return h.stats
}

// Lines — строки HUD с разделителями разрядов по локали
func (h *HUD) Lines() []string {
	return []string{
		h.printer.Sprintf("Score: %d", h.stats.Score),
		h.printer.Sprintf("Eliminations: %d", h.stats.Eliminations),
		h.printer.Sprintf("Shots: %d", h.stats.Projectiles),
		h.printer.Sprintf("Deaths: %d", h.stats.Deaths),
	}
}

func (h *HUD) Draw(canvas interfaces.Canvas) {
	for i, line := range h.Lines() {
		canvas.DrawText(line, config.HUDMarginX, float64(config.HUDMarginY+i*config.HUDLineSpacing), config.TextLightColor)
	}
}
