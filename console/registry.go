package console

// GameID is the stable identity of a module; the order below is the
// menu order.
type GameID uint8

const (
	GameSnakeWall GameID = iota
	GameSnakeWrap
	GameTetris
	GameFlappyEasy
	GameFlappyHard
	GameAsteroids
	GamePacmanEasy
	GamePacmanHard
	GameShooter
	GameBreakout
	GameTTTAI
	GameTTT2P
	GamePong
	GameTug
	GameCheckersAI
	GameCheckers2P
	GameMinesweeper
	GameDino
	GameCount
)

// Spec describes one registered module.
type Spec struct {
	ID   GameID
	Name string

	// ClaimsAct marks modules that use the action button as a gameplay
	// control. For everyone else the session consumes it as the pause
	// toggle.
	ClaimsAct bool

	New func() Game
}

var registered [GameCount]*Spec

// Register adds a module. Games call this from init; duplicate or
// malformed registrations are a programming error and panic at boot.
func Register(s Spec) {
	if s.ID >= GameCount || s.New == nil {
		panic("console: bad game spec: " + s.Name)
	}
	if registered[s.ID] != nil {
		panic("console: game already registered: " + s.Name)
	}
	cp := s
	registered[s.ID] = &cp
}

// Specs returns every registered module in menu order.
func Specs() []Spec {
	out := make([]Spec, 0, GameCount)
	for _, s := range registered {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}
