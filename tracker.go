package cubeperm

// Tracker wraps a State, keeps the history of applied moves and reports
// when a sequence brings the state back to solved.
type Tracker struct {
	state    *State
	history  []Move
	keep     bool
	onSolved func(moves int)
	run      int // moves applied since the state was last solved
}

// NewTracker creates a new tracker starting from a solved state.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Tracker{
		state: NewState(cfg.catalog),
		keep:  cfg.moveHistory,
	}
}

// OnSolved sets a callback that fires when a non-empty run of moves returns
// the state to solved. It receives the length of that run.
func (t *Tracker) OnSolved(cb func(moves int)) {
	t.onSolved = cb
}

// Reset resets the tracker to a solved state and clears the history.
func (t *Tracker) Reset() {
	t.state.Reset()
	t.history = nil
	t.run = 0
}

// ApplyMove applies a move and checks whether the state is solved again.
func (t *Tracker) ApplyMove(m Move) error {
	if err := t.state.ApplyMove(m); err != nil {
		return err
	}
	if t.keep {
		t.history = append(t.history, m)
	}
	t.run++
	t.checkSolved()
	return nil
}

// ApplyMoves applies multiple moves, stopping at the first error.
func (t *Tracker) ApplyMoves(moves []Move) error {
	for _, m := range moves {
		if err := t.ApplyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// ApplyNotation parses and applies a move sequence.
func (t *Tracker) ApplyNotation(notation string) error {
	moves, err := ParseMoves(notation)
	if err != nil {
		return err
	}
	// Resolve first so a bad generator name applies nothing.
	if _, err := SequencePerm(t.state.catalog, moves); err != nil {
		return err
	}
	return t.ApplyMoves(moves)
}

// Undo removes the last move from the history and applies its inverse.
func (t *Tracker) Undo() (Move, error) {
	if len(t.history) == 0 {
		return Move{}, ErrNothingToUndo
	}
	last := t.history[len(t.history)-1]
	if err := t.state.ApplyMove(last.Inverse()); err != nil {
		return Move{}, err
	}
	t.history = t.history[:len(t.history)-1]
	t.run++
	t.checkSolved()
	return last, nil
}

func (t *Tracker) checkSolved() {
	if !t.state.IsSolved() {
		return
	}
	n := t.run
	t.run = 0
	if n > 0 && t.onSolved != nil {
		t.onSolved(n)
	}
}

// Moves returns a copy of the move history.
func (t *Tracker) Moves() []Move {
	out := make([]Move, len(t.history))
	copy(out, t.history)
	return out
}

// IsSolved returns true if the tracked state is solved.
func (t *Tracker) IsSolved() bool {
	return t.state.IsSolved()
}

// State returns the underlying state for inspection.
func (t *Tracker) State() *State {
	return t.state
}
