// internal/app/game.go
package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"
	"go-path-defense/pkg/route"
	"log"
)

// Game holds the simulation state and runs one tick per Advance call.
// It is the single writer of every counter; front-ends only read snapshots
// and send commands.
type Game struct {
	Route              *route.Path
	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	ProjectileSystem   *system.ProjectileSystem
	CombatSystem       *system.CombatSystem
	WaveSystem         *system.WaveSystem
	Stats              *Stats

	selectedTower defs.TowerID
}

// NewGame initializes a new game on the given route.
func NewGame(path *route.Path) *Game {
	if path == nil {
		panic("route cannot be nil")
	}
	g := &Game{Route: path, selectedTower: defs.ShopOrder[0]}
	g.init()
	return g
}

func (g *Game) init() {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()

	g.ECS = ecs
	g.EventDispatcher = eventDispatcher
	g.MovementSystem = system.NewMovementSystem(ecs, g.Route, eventDispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, g.ProjectileSystem)
	g.WaveSystem = system.NewWaveSystem(ecs, g.Route, eventDispatcher)
	g.Stats = &Stats{}

	listener := &GameEventListener{game: g}
	for _, t := range []event.EventType{
		event.EnemyKilled,
		event.EnemyEscaped,
		event.TowerPlaced,
		event.ProjectileFired,
		event.WaveCompleted,
		event.GameOver,
	} {
		eventDispatcher.Subscribe(t, listener)
	}
}

// Advance progresses the simulation by one tick. It does nothing once the
// game is over.
func (g *Game) Advance() {
	if g.IsGameOver() {
		return
	}
	g.ECS.Tick++

	g.MovementSystem.Update()
	g.StatusEffectSystem.Update()
	g.cleanupDestroyedEntities()
	g.CombatSystem.Update()
	g.cleanupDestroyedEntities()
	g.WaveSystem.Update()

	if g.ECS.Economy.Lives <= 0 {
		g.ECS.Phase = component.PhaseGameOver
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: g.ECS.Economy.Level})
	}
}

// SpawnNext is called by the spawn timer. It appends one enemy unless the
// game is over.
func (g *Game) SpawnNext() (types.EntityID, bool) {
	if g.IsGameOver() {
		return 0, false
	}
	return g.WaveSystem.SpawnNext(), true
}

// ResetGame discards all state and starts over from the initial values.
func (g *Game) ResetGame() {
	g.init()
	log.Println("Game reset")
}

// IsGameOver reports whether lives have run out.
func (g *Game) IsGameOver() bool {
	return g.ECS.Phase == component.PhaseGameOver
}

// Economy returns a copy of the current counters.
func (g *Game) Economy() component.Economy {
	return *g.ECS.Economy
}

// cleanupDestroyedEntities removes defeated enemies and pays their bounty.
func (g *Game) cleanupDestroyedEntities() {
	var defeated []types.EntityID
	for _, id := range g.ECS.EnemyOrder {
		if health, ok := g.ECS.Healths[id]; ok && health.Value <= 0 {
			defeated = append(defeated, id)
		}
	}

	for _, id := range defeated {
		enemy := g.ECS.Enemies[id]
		data := event.EnemyData{ID: id, Variant: enemy.Variant, Bounty: enemy.Bounty}
		g.ECS.RemoveEnemy(id)
		g.ECS.Economy.Money += enemy.Bounty
		g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: data})
	}
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	stats := l.game.Stats
	switch e.Type {
	case event.EnemyKilled:
		stats.Kills++
		if data, ok := e.Data.(event.EnemyData); ok {
			stats.BountyEarned += data.Bounty
		}
	case event.EnemyEscaped:
		stats.Escapes++
	case event.TowerPlaced:
		stats.TowersBuilt++
	case event.ProjectileFired:
		stats.ShotsFired++
	case event.WaveCompleted:
		if data, ok := e.Data.(event.WaveData); ok {
			stats.WavesCleared = data.Level - 1
		}
	case event.GameOver:
		log.Printf("Game over at level %d: %d kills, %d escapes, %d towers",
			l.game.ECS.Economy.Level, stats.Kills, stats.Escapes, stats.TowersBuilt)
	}
}
