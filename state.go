package cubeperm

// State is the cumulative permutation applied to the solved facelet
// arrangement. It is created solved and changes only by composing whole
// permutations into it.
//
// A State is owned by a single caller; it is not safe for concurrent use.
type State struct {
	catalog *Catalog
	current Perm
}

// NewState creates a solved state over catalog. A nil catalog selects
// Standard().
func NewState(catalog *Catalog) *State {
	if catalog == nil {
		catalog = Standard()
	}
	return &State{
		catalog: catalog,
		current: Identity(catalog.Size()),
	}
}

// Catalog returns the catalog the state resolves generator names against.
func (s *State) Catalog() *Catalog {
	return s.catalog
}

// Reset returns the state to the identity.
func (s *State) Reset() {
	s.current = Identity(s.catalog.Size())
}

// Apply composes the named generator into the state.
func (s *State) Apply(name string) error {
	g, err := s.catalog.Generator(name)
	if err != nil {
		return err
	}
	s.current = s.current.compose(g.Perm)
	return nil
}

// ApplyInverse composes the inverse of the named generator into the state.
func (s *State) ApplyInverse(name string) error {
	g, err := s.catalog.Generator(name)
	if err != nil {
		return err
	}
	s.current = s.current.compose(g.Perm.Inverse())
	return nil
}

// ApplyPerm composes an arbitrary permutation into the state, for example
// the inverse of a generator or a whole precomputed sequence.
func (s *State) ApplyPerm(p Perm) error {
	next, err := s.current.Compose(p)
	if err != nil {
		return err
	}
	s.current = next
	return nil
}

// ApplyMove applies a single move.
func (s *State) ApplyMove(m Move) error {
	p, err := m.Perm(s.catalog)
	if err != nil {
		return err
	}
	s.current = s.current.compose(p)
	return nil
}

// ApplyMoves applies a sequence of moves. The sequence is resolved before
// anything is applied, so an unknown generator leaves the state untouched.
func (s *State) ApplyMoves(moves []Move) error {
	p, err := SequencePerm(s.catalog, moves)
	if err != nil {
		return err
	}
	s.current = s.current.compose(p)
	return nil
}

// ApplyNotation parses and applies a space-separated move sequence.
func (s *State) ApplyNotation(notation string) error {
	moves, err := ParseMoves(notation)
	if err != nil {
		return err
	}
	return s.ApplyMoves(moves)
}

// Labeling returns the current arrangement: entry i is the home position of
// the facelet now at position i. It is recomputed on every call.
func (s *State) Labeling() []int {
	labels, _ := Apply(s.current, Identity(s.current.Len()).p)
	return labels
}

// IsSolved returns true if the state is the identity.
func (s *State) IsSolved() bool {
	return s.current.IsIdentity()
}

// Permutation returns the current permutation.
func (s *State) Permutation() Perm {
	return s.current
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	return &State{catalog: s.catalog, current: s.current}
}
