// internal/types/types.go
package types

// EntityID identifies an entity in the ECS. IDs are handed out in
// increasing order and never reused within one game.
type EntityID uint64
