package component

import "go-path-defense/internal/defs"

// Health — компонент здоровья. Max is fixed at spawn for the health bar.
type Health struct {
	Value int
	Max   int
}

// Fraction returns Value/Max clamped to [0, 1].
func (h Health) Fraction() float64 {
	if h.Max <= 0 || h.Value <= 0 {
		return 0
	}
	if h.Value >= h.Max {
		return 1
	}
	return float64(h.Value) / float64(h.Max)
}

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Range       float64
	Damage      int
	Cooldown    int // тиков до следующего выстрела, 0 = готова
	MaxCooldown int
	DoT         *defs.DoTDef
}
