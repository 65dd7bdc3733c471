// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в пределах сессии
type EntityID uint64
