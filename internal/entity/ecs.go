// internal/entity/ecs.go
package entity

import (
	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/types"
)

// ECS — контекст симуляции: игрок, упорядоченные коллекции сущностей,
// статистика и отложенные изменения текущего тика.
// Удаления и вставки во время прохода только накапливаются и применяются
// в ApplyPending, поэтому итерация по коллекциям всегда безопасна.
type ECS struct {
	NextID      types.EntityID
	Width       float64
	Height      float64
	Frames      uint64
	Player      *component.Entity
	Enemies     []*component.Entity
	Projectiles []*component.Entity
	Particles   []*component.Entity
	PowerUps    []*component.Entity
	Stats       component.Stats
	Status      component.GameStatus

	inTick  bool
	removed map[types.EntityID]struct{}
	pending []*component.Entity
}

func NewECS(width, height float64) *ECS {
	return &ECS{
		NextID:  1,
		Width:   width,
		Height:  height,
		Status:  component.StatusUp,
		removed: make(map[types.EntityID]struct{}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// BeginTick включает режим отложенных изменений.
func (ecs *ECS) BeginTick() {
	ecs.inTick = true
}

// InTick сообщает, идёт ли сейчас проход симуляции.
func (ecs *ECS) InTick() bool {
	return ecs.inTick
}

// Add добавляет сущность в коллекцию её типа. Во время тика вставка откладывается.
func (ecs *ECS) Add(e *component.Entity) {
	if e.ID == 0 {
		e.ID = ecs.NewEntity()
	}
	if ecs.inTick {
		ecs.pending = append(ecs.pending, e)
		return
	}
	ecs.insert(e)
}

// AddNow добавляет сущность сразу, даже во время тика. Допустимо только пока
// коллекция её типа не обходится: так автоматический выстрел успевает
// в проход снарядов и боя того же тика.
func (ecs *ECS) AddNow(e *component.Entity) {
	if e.ID == 0 {
		e.ID = ecs.NewEntity()
	}
	ecs.insert(e)
}

func (ecs *ECS) insert(e *component.Entity) {
	switch e.Kind {
	case component.KindEnemy:
		ecs.Enemies = append(ecs.Enemies, e)
	case component.KindProjectile:
		ecs.Projectiles = append(ecs.Projectiles, e)
	case component.KindParticle:
		ecs.Particles = append(ecs.Particles, e)
	case component.KindPowerUp:
		ecs.PowerUps = append(ecs.PowerUps, e)
	case component.KindPlayer:
		ecs.Player = e
	}
}

// MarkRemoved планирует удаление сущности. Повторная отметка ничего не меняет.
func (ecs *ECS) MarkRemoved(id types.EntityID) {
	ecs.removed[id] = struct{}{}
}

// IsRemoved сообщает, что удаление сущности уже запланировано в этом тике.
func (ecs *ECS) IsRemoved(id types.EntityID) bool {
	_, ok := ecs.removed[id]
	return ok
}

// PendingRemovals — число запланированных удалений.
func (ecs *ECS) PendingRemovals() int {
	return len(ecs.removed)
}

// ApplyPending пересобирает коллекции без удалённых сущностей,
// затем добавляет отложенные вставки и завершает тик.
func (ecs *ECS) ApplyPending() {
	if len(ecs.removed) > 0 {
		ecs.Enemies = ecs.keep(ecs.Enemies)
		ecs.Projectiles = ecs.keep(ecs.Projectiles)
		ecs.Particles = ecs.keep(ecs.Particles)
		ecs.PowerUps = ecs.keep(ecs.PowerUps)
		clear(ecs.removed)
	}

	ecs.inTick = false
	pending := ecs.pending
	ecs.pending = nil
	for _, e := range pending {
		ecs.insert(e)
	}
}

func (ecs *ECS) keep(list []*component.Entity) []*component.Entity {
	kept := list[:0]
	for _, e := range list {
		if _, gone := ecs.removed[e.ID]; !gone {
			kept = append(kept, e)
		}
	}
	// Обнуляем хвост, чтобы удалённые сущности не удерживались в памяти
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	return kept
}

// ClearTransient очищает все временные коллекции и отложенные изменения.
func (ecs *ECS) ClearTransient() {
	ecs.Enemies = nil
	ecs.Projectiles = nil
	ecs.Particles = nil
	ecs.PowerUps = nil
	ecs.pending = nil
	clear(ecs.removed)
	ecs.inTick = false
}
