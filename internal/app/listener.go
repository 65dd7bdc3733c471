// internal/app/listener.go
package app

import "go-circle-shooter/internal/event"

// GameEventListener пишет в журнал ключевые события сессии
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	log := l.game.log
	switch e.Type {
	case event.GameOver:
		if data, ok := e.Data.(event.StatsData); ok {
			log.Info().
				Int("score", data.Stats.Score).
				Int("eliminations", data.Stats.Eliminations).
				Int("deaths", data.Stats.Deaths).
				Msg("game over")
		}
	case event.Restarted:
		log.Info().Msg("session restarted")
	case event.PowerUpCollected:
		log.Debug().Interface("kind", e.Data).Msg("power-up collected")
	case event.PowerUpExpired:
		log.Debug().Msg("power-up expired")
	}
}
