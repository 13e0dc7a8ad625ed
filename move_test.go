package cubeperm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"U'", UPrime},
		{"U`", UPrime},
		{"F2", F2},
		{"F2'", F2},
		{" D ", D},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseMove_Invalid(t *testing.T) {
	for _, in := range []string{"", "R3", "1", "R''", "?", "r", "u'", "f2"} {
		_, err := ParseMove(in)
		assert.ErrorIs(t, err, ErrInvalidNotation, in)
	}
}

func TestParseMoves_Strict(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	require.NoError(t, err)
	assert.Equal(t, SexyMove, moves)

	_, err = ParseMoves("R U x3 U'")
	require.ErrorIs(t, err, ErrInvalidNotation)
	assert.Contains(t, err.Error(), "token 3")
}

func TestFormatMoves(t *testing.T) {
	assert.Equal(t, "R U R' U'", FormatMoves(SexyMove))
	assert.Equal(t, "", FormatMoves(nil))
}

func TestMoveInverse(t *testing.T) {
	assert.Equal(t, RPrime, R.Inverse())
	assert.Equal(t, R, RPrime.Inverse())
	assert.Equal(t, R2, R2.Inverse())
}

func TestInverseSequence_Undoes(t *testing.T) {
	s := NewState(nil)
	require.NoError(t, s.ApplyMoves(TPerm))
	require.NoError(t, s.ApplyMoves([]Move{F, B2, LPrime}))

	undo := InverseSequence(append(append([]Move{}, TPerm...), F, B2, LPrime))
	assert.Equal(t, L, undo[0])
	require.NoError(t, s.ApplyMoves(undo))
	assert.True(t, s.IsSolved())
}

func TestMovePerm(t *testing.T) {
	c := Standard()
	g, _ := c.Generator("D")

	cw, err := D.Perm(c)
	require.NoError(t, err)
	eq, _ := cw.Equal(g.Perm)
	assert.True(t, eq)

	ccw, err := DPrime.Perm(c)
	require.NoError(t, err)
	eq, _ = ccw.Equal(g.Perm.Power(3))
	assert.True(t, eq)

	half, err := D2.Perm(c)
	require.NoError(t, err)
	assert.Equal(t, 2, half.Order())

	_, err = Move{Generator: "D", Turn: 3}.Perm(c)
	require.ErrorIs(t, err, ErrInvalidNotation)

	_, err = Move{Generator: "Z", Turn: CW}.Perm(c)
	require.ErrorIs(t, err, ErrUnknownGenerator)
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R R", "R2"},
		{"R R'", ""},
		{"R2 R", "R'"},
		{"R2 R2", ""},
		{"U R2 R2 U", "U2"},
		{"R U R' U'", "R U R' U'"},
		{"F F F", "F'"},
		{"F' F' F'", "F"},
	}
	for _, tt := range tests {
		moves, err := ParseMoves(tt.in)
		require.NoError(t, err)

		got := Simplify(moves)
		assert.Equal(t, tt.want, FormatMoves(got), tt.in)

		before, err := SequencePerm(Standard(), moves)
		require.NoError(t, err)
		after, err := SequencePerm(Standard(), got)
		require.NoError(t, err)
		eq, err := before.Equal(after)
		require.NoError(t, err)
		assert.True(t, eq, tt.in)
	}
}
