// internal/component/status_effect.go
package component

// DoTInstance is one pending damage-over-time application.
type DoTInstance struct {
	DamagePerTick int
	TicksLeft     int // сколько раз ещё нанести урон
	Countdown     int // тиков до следующего срабатывания
}

// DoTContainer holds every DoT stacked on one enemy. It lives in the ECS
// next to the enemy and is deleted together with it.
type DoTContainer struct {
	Instances []DoTInstance
}

// Pending returns the number of damage applications still scheduled.
func (c *DoTContainer) Pending() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, inst := range c.Instances {
		total += inst.TicksLeft
	}
	return total
}
