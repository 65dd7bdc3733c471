// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости, пикселей за тик
type Velocity struct {
	DX, DY float64
}

// IsZero сообщает, что сущность неподвижна.
func (v Velocity) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}
