// internal/defs/upgrades.go
package defs

import (
	"errors"
	"fmt"
)

// Upgrade — порог очков, начиная с которого урон игрока повышается.
type Upgrade struct {
	ScoreRequired int `yaml:"score_required"`
	Damage        int `yaml:"damage"`
}

// UpgradeTable — упорядоченная по возрастанию порогов таблица улучшений.
type UpgradeTable []Upgrade

var ErrInvalidUpgradeTable = errors.New("invalid upgrade table")

// DefaultUpgrades определяет улучшения урона по умолчанию.
var DefaultUpgrades = UpgradeTable{
	{ScoreRequired: 0, Damage: 1},
	{ScoreRequired: 5000, Damage: 2},
	{ScoreRequired: 15000, Damage: 3},
	{ScoreRequired: 30000, Damage: 4},
	{ScoreRequired: 60000, Damage: 5},
}

// DamageFor возвращает урон последнего улучшения, порог которого не превышает score.
func (t UpgradeTable) DamageFor(score int) int {
	damage := 1
	for _, u := range t {
		if u.ScoreRequired > score {
			break
		}
		damage = u.Damage
	}
	return damage
}

// Validate проверяет, что таблица начинается с нуля, пороги строго растут,
// а урон не меньше единицы.
func (t UpgradeTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidUpgradeTable)
	}
	if t[0].ScoreRequired != 0 {
		return fmt.Errorf("%w: first threshold is %d, want 0", ErrInvalidUpgradeTable, t[0].ScoreRequired)
	}
	for i, u := range t {
		if u.Damage < 1 {
			return fmt.Errorf("%w: entry %d has damage %d", ErrInvalidUpgradeTable, i, u.Damage)
		}
		if i > 0 && u.ScoreRequired <= t[i-1].ScoreRequired {
			return fmt.Errorf("%w: threshold %d does not increase after %d", ErrInvalidUpgradeTable, u.ScoreRequired, t[i-1].ScoreRequired)
		}
	}
	return nil
}
