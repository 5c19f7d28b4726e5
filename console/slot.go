package console

// Slot holds the one live game module. Loading a new module bumps the
// generation, which invalidates every SlotRef taken before; nothing that
// survived the previous module may be trusted afterwards. The old state
// has no teardown, it is simply no longer addressed.
type Slot struct {
	id   GameID
	game Game
	gen  uint32
}

// SlotRef is an ownership token tied to one occupancy of the slot.
type SlotRef struct {
	gen uint32
}

// Load installs spec's module and runs its Init. The generation is
// bumped before Init so even a module that fails to reach a legal start
// position invalidates its predecessor.
func (s *Slot) Load(spec Spec, env *Env) {
	s.gen++
	s.id = spec.ID
	s.game = spec.New()
	s.game.Init(env)
}

// ID of the occupying module; meaningless while Game is nil.
func (s *Slot) ID() GameID { return s.id }

// Game returns the live module, nil before the first Load.
func (s *Slot) Game() Game { return s.game }

// Gen is the current generation, for tests and diagnostics.
func (s *Slot) Gen() uint32 { return s.gen }

// Ref captures a token for the current occupancy.
func (s *Slot) Ref() SlotRef { return SlotRef{gen: s.gen} }

// Valid reports whether r still refers to the live occupancy.
func (s *Slot) Valid(r SlotRef) bool {
	return s.game != nil && r.gen == s.gen
}
