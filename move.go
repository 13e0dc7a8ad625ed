package cubeperm

import (
	"fmt"
	"strings"
)

// Turn represents the direction and magnitude of a generator application.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move is a single generator application in standard notation.
type Move struct {
	Generator string // Catalog name, e.g. "R"
	Turn      Turn   // Direction and amount
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Generator + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// Perm resolves the move against a catalog.
func (m Move) Perm(c *Catalog) (Perm, error) {
	g, err := c.Generator(m.Generator)
	if err != nil {
		return Perm{}, err
	}
	switch m.Turn {
	case CW:
		return g.Perm, nil
	case CCW:
		return g.Perm.Inverse(), nil
	case Double:
		return g.Perm.Power(2), nil
	default:
		return Perm{}, fmt.Errorf("%w: turn %d on %s", ErrInvalidNotation, m.Turn, m.Generator)
	}
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// The generator must be an upper-case letter; lower case denotes wide turns,
// which are not generators. Whether the letter exists is only checked when
// the move is resolved against a catalog.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty move", ErrInvalidNotation)
	}

	name := s[:1]
	if name[0] < 'A' || name[0] > 'Z' {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2", "2'", "2`":
			turn = Double
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Generator: name, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// The first invalid token fails the whole sequence.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseSequence returns the sequence that undoes moves.
func InverseSequence(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// SequencePerm composes the permutations of moves in order.
func SequencePerm(c *Catalog, moves []Move) (Perm, error) {
	result := Identity(c.Size())
	for _, m := range moves {
		p, err := m.Perm(c)
		if err != nil {
			return Perm{}, err
		}
		result = result.compose(p)
	}
	return result, nil
}

// Simplify merges adjacent moves of the same generator and drops those
// that cancel, e.g. "R R" -> "R2", "R R'" -> "", "U R2 R2 U" -> "U2".
// The result composes to the same permutation as moves.
func Simplify(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if n := len(out); n > 0 && out[n-1].Generator == m.Generator {
			merged, ok := out[n-1].merge(m)
			out = out[:n-1]
			if ok {
				out = append(out, merged)
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

// merge combines two moves of the same generator. ok is false when they
// cancel out completely.
func (m Move) merge(other Move) (merged Move, ok bool) {
	// Quarter turns modulo 4: CW=1, Double=2, CCW=3.
	q := ((int(m.Turn)+int(other.Turn))%4 + 4) % 4
	switch q {
	case 0:
		return Move{}, false
	case 1:
		return Move{Generator: m.Generator, Turn: CW}, true
	case 2:
		return Move{Generator: m.Generator, Turn: Double}, true
	default:
		return Move{Generator: m.Generator, Turn: CCW}, true
	}
}
