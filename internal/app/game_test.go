package app

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/system"
	"go-path-defense/pkg/route"
	"testing"
)

// openField is a spot far from the default route.
var openField = route.Point{X: 200, Y: 100}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(defs.Route)
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t)
	econ := g.Economy()

	if econ.Money != config.StartMoney || econ.Lives != config.StartLives || econ.Level != config.StartLevel {
		t.Errorf("unexpected initial economy %+v", econ)
	}
	if econ.EnemiesPerWave != config.StartEnemiesPerWave || econ.EnemiesSpawned != 0 {
		t.Errorf("unexpected initial wave counters %+v", econ)
	}
	if econ.EnemySpeed != config.StartEnemySpeed || econ.BaseEnemyHealth != config.StartEnemyHealth {
		t.Errorf("unexpected initial enemy stats %+v", econ)
	}
	if g.IsGameOver() {
		t.Error("new game must not be over")
	}
	if g.SelectedTowerType() != defs.TowerBasic {
		t.Errorf("expected BASIC selected, got %s", g.SelectedTowerType())
	}
}

func TestPlaceTowerDeductsCostAndRejectsOverlap(t *testing.T) {
	g := newTestGame(t)
	g.ECS.Economy.Money = 100

	if !g.TryPlaceTower(openField, defs.TowerBasic) {
		t.Fatal("expected first placement to succeed")
	}
	if g.Economy().Money != 50 {
		t.Fatalf("expected 50 money left, got %d", g.Economy().Money)
	}

	nearby := route.Point{X: openField.X + 10, Y: openField.Y}
	if g.TryPlaceTower(nearby, defs.TowerBasic) {
		t.Error("expected placement within overlap distance to be rejected")
	}
	if g.Economy().Money != 50 || len(g.ECS.TowerOrder) != 1 {
		t.Errorf("rejected placement changed state: money %d, towers %d", g.Economy().Money, len(g.ECS.TowerOrder))
	}

	if !g.TryPlaceTower(route.Point{X: openField.X + 40, Y: openField.Y}, defs.TowerBasic) {
		t.Error("expected placement outside overlap distance to succeed")
	}
	if g.Economy().Money != 0 {
		t.Errorf("expected 0 money left, got %d", g.Economy().Money)
	}
	if g.Stats.TowersBuilt != 2 {
		t.Errorf("expected 2 towers built, got %d", g.Stats.TowersBuilt)
	}
}

func TestPlaceTowerRejectsInsufficientFunds(t *testing.T) {
	g := newTestGame(t)
	if g.TryPlaceTower(openField, defs.TowerFlame) {
		t.Fatal("flame tower costs more than the starting money")
	}
	if g.CanAfford(defs.TowerFlame) {
		t.Error("CanAfford should agree with placement")
	}
	if g.Economy().Money != config.StartMoney {
		t.Errorf("money changed on rejected placement: %d", g.Economy().Money)
	}
}

func TestPlaceTowerRejectsPathRegardlessOfFunds(t *testing.T) {
	g := newTestGame(t)
	g.ECS.Economy.Money = 10000

	for _, p := range []route.Point{
		{X: 150, Y: 450}, // на самом пути
		{X: 150, Y: 440},
		{X: 150, Y: 480}, // ровно на границе
		{X: 350, Y: 200},
	} {
		if g.TryPlaceTower(p, defs.TowerBasic) {
			t.Errorf("expected placement at %+v to be rejected as on the path", p)
		}
	}
	if len(g.ECS.TowerOrder) != 0 || g.Economy().Money != 10000 {
		t.Errorf("rejected placements changed state")
	}

	if !g.TryPlaceTower(route.Point{X: 150, Y: 481}, defs.TowerBasic) {
		t.Error("expected placement just outside the clearance to succeed")
	}
}

func TestPlaceTowerUnknownType(t *testing.T) {
	g := newTestGame(t)
	if g.TryPlaceTower(openField, defs.TowerID("LASER")) {
		t.Error("unknown tower type must be rejected")
	}
	if g.SelectTowerType(defs.TowerID("LASER")) {
		t.Error("unknown tower type must not be selectable")
	}
	if g.SelectedTowerType() != defs.TowerBasic {
		t.Errorf("selection changed to %s", g.SelectedTowerType())
	}
}

func TestPlaceSelectedTower(t *testing.T) {
	g := newTestGame(t)
	g.ECS.Economy.Money = 500
	if !g.SelectTowerType(defs.TowerSniper) {
		t.Fatal("expected SNIPER to be selectable")
	}
	if !g.PlaceSelectedTower(openField) {
		t.Fatal("expected placement to succeed")
	}
	id := g.ECS.TowerOrder[0]
	if g.ECS.Towers[id].DefID != defs.TowerSniper {
		t.Errorf("expected sniper, got %s", g.ECS.Towers[id].DefID)
	}
	if g.ECS.Combats[id].Range != 200 || g.ECS.Combats[id].Damage != 50 {
		t.Errorf("unexpected combat stats %+v", *g.ECS.Combats[id])
	}
	if g.Economy().Money != 400 {
		t.Errorf("expected 400 money left, got %d", g.Economy().Money)
	}
}

func TestHoverAtTogglesRange(t *testing.T) {
	g := newTestGame(t)
	g.TryPlaceTower(openField, defs.TowerBasic)
	id := g.ECS.TowerOrder[0]

	g.HoverAt(route.Point{X: openField.X + 5, Y: openField.Y})
	if !g.ECS.Towers[id].ShowRange {
		t.Error("expected range to show while hovering")
	}
	g.HoverAt(route.Point{X: openField.X + 16, Y: openField.Y})
	if g.ECS.Towers[id].ShowRange {
		t.Error("expected range to hide when the cursor leaves")
	}
}

func TestEscapeCostsOneLifeAndEndsGame(t *testing.T) {
	short := route.MustNew(route.Point{X: 0, Y: 0}, route.Point{X: 3, Y: 0})
	g := NewGame(short)
	g.ECS.Economy.Lives = 1

	if _, ok := g.SpawnNext(); !ok {
		t.Fatal("expected spawn to succeed")
	}
	for i := 0; i < 10 && !g.IsGameOver(); i++ {
		g.Advance()
	}

	if !g.IsGameOver() {
		t.Fatal("expected game over after the only life was lost")
	}
	if g.Economy().Lives != 0 {
		t.Errorf("expected 0 lives, got %d", g.Economy().Lives)
	}
	if g.ECS.EnemyCount() != 0 {
		t.Errorf("escaped enemy still in the world")
	}
	if g.Stats.Escapes != 1 || g.Economy().Money != config.StartMoney {
		t.Errorf("escape must not pay a bounty: stats %+v, money %d", *g.Stats, g.Economy().Money)
	}
}

func TestAdvanceIsNoOpAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	id, _ := g.SpawnNext()
	g.ECS.Economy.Lives = 0
	g.Advance()
	if !g.IsGameOver() {
		t.Fatal("expected game over with zero lives")
	}

	tick := g.ECS.Tick
	pos := *g.ECS.Positions[id]
	for i := 0; i < 5; i++ {
		g.Advance()
	}
	if g.ECS.Tick != tick || *g.ECS.Positions[id] != pos {
		t.Error("simulation advanced after game over")
	}
	if _, ok := g.SpawnNext(); ok {
		t.Error("spawn must be refused after game over")
	}
	if g.TryPlaceTower(openField, defs.TowerBasic) {
		t.Error("placement must be refused after game over")
	}
}

func TestWaveScalesOncePerWave(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < config.StartEnemiesPerWave; i++ {
		g.SpawnNext()
	}
	last := g.ECS.EnemyOrder[len(g.ECS.EnemyOrder)-1]
	if g.ECS.Enemies[last].Variant != defs.EnemyTank {
		t.Errorf("expected last enemy of the wave to be a tank")
	}
	if g.ECS.Healths[last].Max != 150 {
		t.Errorf("expected tank health 150, got %d", g.ECS.Healths[last].Max)
	}

	g.Advance()
	econ := g.Economy()
	if econ.Level != 2 || econ.EnemiesPerWave != 7 || econ.EnemiesSpawned != 0 || econ.BaseEnemyHealth != 120 {
		t.Fatalf("unexpected economy after first wave %+v", econ)
	}

	g.Advance()
	if g.Economy().Level != 2 {
		t.Errorf("wave scaled twice: level %d", g.Economy().Level)
	}
	if g.Stats.WavesCleared != 1 {
		t.Errorf("expected 1 wave cleared, got %d", g.Stats.WavesCleared)
	}

	// Уже живые враги не ускоряются.
	if g.ECS.Velocities[last].Speed != config.StartEnemySpeed {
		t.Errorf("existing enemy speed changed to %f", g.ECS.Velocities[last].Speed)
	}
	id, _ := g.SpawnNext()
	if g.ECS.Velocities[id].Speed != config.StartEnemySpeed+config.EnemySpeedIncrement {
		t.Errorf("new enemy speed %f", g.ECS.Velocities[id].Speed)
	}
}

func TestDoTKillPaysBounty(t *testing.T) {
	g := newTestGame(t)
	id, _ := g.SpawnNext()
	g.ECS.Healths[id].Value = 4
	if !system.ApplyDoT(g.ECS, id, &defs.DoTDef{DamagePerSecond: 4, Duration: 3}) {
		t.Fatal("expected DoT to apply")
	}

	for i := 0; i < config.DoTTickInterval-1; i++ {
		g.Advance()
	}
	if !g.ECS.IsEnemyAlive(id) {
		t.Fatal("DoT must not fire before a full second")
	}

	g.Advance()
	if g.ECS.IsEnemyAlive(id) || g.ECS.EnemyCount() != 0 {
		t.Fatal("expected DoT to kill the enemy")
	}
	if g.Economy().Money != config.StartMoney+config.EnemyBounty {
		t.Errorf("expected bounty paid, money %d", g.Economy().Money)
	}
	if g.ECS.PendingDoTTicks(id) != 0 {
		t.Errorf("expected no pending DoT, got %d", g.ECS.PendingDoTTicks(id))
	}
	if g.Stats.Kills != 1 || g.Stats.BountyEarned != config.EnemyBounty {
		t.Errorf("unexpected stats %+v", *g.Stats)
	}
}

func TestTowerKillsEnemyEndToEnd(t *testing.T) {
	g := newTestGame(t)
	// у старта маршрута, вне полосы пути
	if !g.TryPlaceTower(route.Point{X: 50, Y: 350}, defs.TowerBasic) {
		t.Fatal("expected placement to succeed")
	}
	id, _ := g.SpawnNext()
	g.ECS.Healths[id].Value = 20

	for i := 0; i < 60 && g.ECS.IsEnemyAlive(id); i++ {
		g.Advance()
	}
	g.Advance()

	if g.ECS.EnemyCount() != 0 {
		t.Fatal("expected the tower to kill the enemy")
	}
	if g.Economy().Money != config.StartMoney-50+config.EnemyBounty {
		t.Errorf("unexpected money %d", g.Economy().Money)
	}
	if g.Stats.ShotsFired != 1 {
		t.Errorf("expected exactly one shot, got %d", g.Stats.ShotsFired)
	}
}

func TestResetGameRestoresInitialState(t *testing.T) {
	g := newTestGame(t)
	g.TryPlaceTower(openField, defs.TowerBasic)
	g.SpawnNext()
	g.ECS.Economy.Lives = 0
	g.Advance()

	g.ResetGame()

	econ := g.Economy()
	if econ.Money != config.StartMoney || econ.Lives != config.StartLives || econ.Level != config.StartLevel || econ.EnemiesSpawned != 0 {
		t.Errorf("unexpected economy after reset %+v", econ)
	}
	if g.IsGameOver() {
		t.Error("reset game must be running")
	}
	if len(g.ECS.TowerOrder) != 0 || g.ECS.EnemyCount() != 0 || len(g.ECS.Projectiles) != 0 {
		t.Error("expected empty world after reset")
	}
	if *g.Stats != (Stats{}) {
		t.Errorf("expected zero stats after reset, got %+v", *g.Stats)
	}
	if _, ok := g.SpawnNext(); !ok {
		t.Error("expected spawn to work after reset")
	}
}

func TestSnapshotOrderAndIsolation(t *testing.T) {
	g := newTestGame(t)
	g.TryPlaceTower(openField, defs.TowerBasic)
	a, _ := g.SpawnNext()
	b, _ := g.SpawnNext()

	snap := g.Snapshot()
	if len(snap.Enemies) != 2 || snap.Enemies[0].ID != a || snap.Enemies[1].ID != b {
		t.Fatalf("expected enemies in spawn order, got %+v", snap.Enemies)
	}
	if len(snap.Towers) != 1 || snap.Towers[0].Range != 100 {
		t.Fatalf("unexpected towers %+v", snap.Towers)
	}
	if snap.Economy.Money != 50 || snap.Selected != defs.TowerBasic || snap.GameOver {
		t.Errorf("unexpected snapshot header %+v", snap)
	}

	snap.Economy.Money = 9999
	snap.Enemies[0].Health = 0
	if g.Economy().Money != 50 || g.ECS.Healths[a].Value == 0 {
		t.Error("snapshot must not alias simulation state")
	}
}

func TestCanPlaceAtMatchesPlacement(t *testing.T) {
	g := newTestGame(t)
	if !g.CanPlaceAt(openField, defs.TowerBasic) {
		t.Fatal("expected open field to be placeable")
	}
	if g.CanPlaceAt(route.Point{X: 150, Y: 450}, defs.TowerBasic) {
		t.Error("expected path to be rejected")
	}
	g.TryPlaceTower(openField, defs.TowerBasic)
	if g.CanPlaceAt(openField, defs.TowerBasic) {
		t.Error("expected occupied spot to be rejected")
	}
	if g.Economy().Money != 50 {
		t.Errorf("CanPlaceAt must not spend money, got %d", g.Economy().Money)
	}
}
