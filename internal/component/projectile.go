// internal/component/projectile.go
package component

// Projectile представляет летящий снаряд.
type Projectile struct {
	RapidFire bool // выпущен автоматически бонусом, в статистику выстрелов не идёт
}
