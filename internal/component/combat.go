package component

// Combat — здоровье врага или урон игрока
type Combat struct {
	Health    int
	MaxHealth int
	Damage    int
}

// Enemy хранит исходный радиус врага, от которого считается уменьшение при попаданиях.
type Enemy struct {
	BaseRadius float64
}
