package app

// Stats collects run totals from simulation events. Shown on the game
// over screen.
type Stats struct {
	Kills        int
	Escapes      int
	TowersBuilt  int
	ShotsFired   int
	BountyEarned int
	WavesCleared int
}
