package tui

import (
	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Command is one player action decoded from a key.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdPlace
	CmdRestart
	CmdSpeed
	CmdPause
	CmdSelectBasic
	CmdSelectSniper
	CmdSelectRapid
	CmdSelectFlame
)

var selectCommands = map[Command]defs.TowerID{
	CmdSelectBasic:  defs.TowerBasic,
	CmdSelectSniper: defs.TowerSniper,
	CmdSelectRapid:  defs.TowerRapid,
	CmdSelectFlame:  defs.TowerFlame,
}

var runeCommands = map[rune]Command{
	'q': CmdQuit,
	'r': CmdRestart,
	's': CmdSpeed,
	'p': CmdPause,
	' ': CmdPlace,
	'h': CmdLeft,
	'j': CmdDown,
	'k': CmdUp,
	'l': CmdRight,
	'1': CmdSelectBasic,
	'2': CmdSelectSniper,
	'3': CmdSelectRapid,
	'4': CmdSelectFlame,
}

// DecodeKey maps a key event to a command.
func DecodeKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyUp:
		return CmdUp
	case tcell.KeyDown:
		return CmdDown
	case tcell.KeyLeft:
		return CmdLeft
	case tcell.KeyRight:
		return CmdRight
	case tcell.KeyEnter:
		return CmdPlace
	case tcell.KeyRune:
		return runeCommands[ev.Rune()]
	}
	return CmdNone
}

// Session drives one game in a terminal. Like the window front-end it is
// the only caller of Advance and SpawnNext.
type Session struct {
	screen    tcell.Screen
	game      *app.Game
	renderer  *Renderer
	cursorCol int
	cursorRow int
	speed     int // индекс в config.SpeedSteps
	paused    bool
	spawnAcc  time.Duration
}

func NewSession(screen tcell.Screen, game *app.Game) *Session {
	return &Session{
		screen:    screen,
		game:      game,
		renderer:  NewRenderer(screen, game.Route),
		cursorCol: FieldCols / 2,
		cursorRow: FieldRows / 4,
	}
}

// Apply executes a command. It returns false when the session should end.
func (s *Session) Apply(cmd Command) bool {
	if id, ok := selectCommands[cmd]; ok {
		s.game.SelectTowerType(id)
		return true
	}

	switch cmd {
	case CmdQuit:
		return false
	case CmdUp:
		s.moveCursor(0, -1)
	case CmdDown:
		s.moveCursor(0, 1)
	case CmdLeft:
		s.moveCursor(-1, 0)
	case CmdRight:
		s.moveCursor(1, 0)
	case CmdPlace:
		s.game.PlaceSelectedTower(CellCenter(s.cursorCol, s.cursorRow))
	case CmdRestart:
		if s.game.IsGameOver() {
			s.game.ResetGame()
			s.spawnAcc = 0
		}
	case CmdSpeed:
		s.speed = (s.speed + 1) % len(config.SpeedSteps)
	case CmdPause:
		s.paused = !s.paused
	}
	return true
}

func (s *Session) moveCursor(dc, dr int) {
	s.cursorCol = clamp(s.cursorCol+dc, 0, FieldCols-1)
	s.cursorRow = clamp(s.cursorRow+dr, 0, FieldRows-1)
	center := CellCenter(s.cursorCol, s.cursorRow)
	s.game.HoverAt(center)
}

// Step advances the simulation by one frame of elapsed wall-clock time.
func (s *Session) Step(elapsed time.Duration) {
	if s.paused || s.game.IsGameOver() {
		return
	}
	mult := config.SpeedSteps[s.speed]
	for i := 0; i < mult; i++ {
		s.game.Advance()
	}

	interval := time.Duration(config.SpawnInterval) * time.Millisecond
	s.spawnAcc += elapsed * time.Duration(mult)
	for s.spawnAcc >= interval {
		s.spawnAcc -= interval
		s.game.SpawnNext()
	}
}

// Draw renders the current snapshot.
func (s *Session) Draw() {
	center := CellCenter(s.cursorCol, s.cursorRow)
	s.renderer.Draw(s.game.Snapshot(), Cursor{
		Col:   s.cursorCol,
		Row:   s.cursorRow,
		Valid: s.game.CanPlaceAt(center, s.game.SelectedTowerType()),
	})
}

// Run is the event loop: a frame ticker drives the simulation and input
// arrives from a PollEvent goroutine. It returns when the player quits or
// the screen is finalized.
func (s *Session) Run() {
	frame := time.Second / config.TicksPerSecond
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.Apply(DecodeKey(ev)) {
					log.Println("Quit requested")
					return
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}

		case now := <-ticker.C:
			elapsed := now.Sub(last)
			if maxElapsed := time.Duration(config.MaxDeltaTime * float64(time.Second)); elapsed > maxElapsed {
				elapsed = maxElapsed
			}
			last = now
			s.Step(elapsed)
			s.Draw()
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
