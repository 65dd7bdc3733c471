// internal/event/types.go
package event

import "go-circle-shooter/internal/component"

const (
	ProjectileFired  EventType = "ProjectileFired"  // Игрок выстрелил вручную
	EnemyHit         EventType = "EnemyHit"         // Враг ранен, но жив
	EnemyEliminated  EventType = "EnemyEliminated"  // Враг уничтожен
	ScoreChanged     EventType = "ScoreChanged"     // Изменились счётчики
	PowerUpCollected EventType = "PowerUpCollected" // Игрок подобрал бонус
	PowerUpExpired   EventType = "PowerUpExpired"   // Бонус закончился
	StatusChanged    EventType = "StatusChanged"    // Переход статуса игры
	GameOver         EventType = "GameOver"         // Игрок столкнулся с врагом
	Restarted        EventType = "Restarted"        // Новая сессия
)

// StatsData — снимок счётчиков для HUD
type StatsData struct {
	Stats component.Stats
}

// StatusData — переход статуса
type StatusData struct {
	From, To component.GameStatus
}

// EliminationData — сведения об уничтоженном враге
type EliminationData struct {
	Radius float64
	Points int
	Damage int // урон игрока после пересчёта улучшений
}
