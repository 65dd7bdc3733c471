// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp ограничивает значение диапазоном [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Velocity возвращает вектор скорости длины speed, направленный из (ox, oy) в (tx, ty).
// Если точки совпадают, возвращается нулевой вектор.
func Velocity(ox, oy, tx, ty, speed float64) (float64, float64) {
	if ox == tx && oy == ty {
		return 0, 0
	}
	angle := math.Atan2(ty-oy, tx-ox)
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// Distance — евклидово расстояние между двумя точками
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}
