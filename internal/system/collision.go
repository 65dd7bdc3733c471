// internal/system/collision.go
package system

import (
	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/utils"
)

// Collides — true, если расстояние между центрами меньше суммы радиусов.
// Чистая функция, о смысле сущностей ничего не знает.
func Collides(a, b *component.Entity) bool {
	if a == nil || b == nil {
		return false
	}
	return utils.Distance(a.Position.X, a.Position.Y, b.Position.X, b.Position.Y) < a.Radius+b.Radius
}
