// internal/component/player.go
package component

import "image/color"

// PowerUpKind — вид временного бонуса
type PowerUpKind int

const (
	PowerUpNone PowerUpKind = iota
	PowerUpRapidFire
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpRapidFire:
		return "rapid-fire"
	}
	return "none"
}

// PlayerState хранит информацию, специфичную для игрока:
// активный бонус и цвет, к которому игрок возвращается после его окончания.
type PlayerState struct {
	ActivePowerUp PowerUpKind
	BaseColor     color.RGBA
}

// Pickup — бонус, который можно подобрать.
type Pickup struct {
	Kind PowerUpKind
}
