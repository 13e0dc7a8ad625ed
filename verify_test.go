package cubeperm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCatalog_Standard(t *testing.T) {
	require.NoError(t, VerifyCatalog(Standard(), QuarterTurnOrder))
}

func TestStandardGenerators_OrderExactlyFour(t *testing.T) {
	for _, g := range Standard().Generators() {
		assert.Equal(t, 4, g.Perm.Order(), g.Name)
		require.NoError(t, VerifyOrder(g, 4))
	}
}

func TestVerifyOrder_RejectsDivisorOrder(t *testing.T) {
	// A 2-cycle satisfies g^4 = id but its order is 2.
	p, err := FromCycles(FaceletCount, []int{0, 2})
	require.NoError(t, err)
	require.True(t, p.Power(4).IsIdentity())

	err = VerifyOrder(Generator{Name: "swap", Perm: p}, 4)
	require.ErrorIs(t, err, ErrOrderMismatch)
	assert.Contains(t, err.Error(), "order 2")
}

func TestVerifyOrder_RejectsNonClosingPower(t *testing.T) {
	p, err := New(threeCycle())
	require.NoError(t, err)

	err = VerifyOrder(Generator{Name: "tri", Perm: p}, 4)
	require.ErrorIs(t, err, ErrOrderMismatch)
	assert.Contains(t, err.Error(), "not the identity")
}

func TestVerifyOrder_NonPositive(t *testing.T) {
	g, _ := Standard().Generator("U")
	require.ErrorIs(t, VerifyOrder(g, 0), ErrOrderMismatch)
}

func TestVerifyCatalog_ReportsEveryFailure(t *testing.T) {
	swap, _ := FromCycles(6, []int{0, 1})
	tri, _ := FromCycles(6, []int{0, 1, 2})
	c, err := NewCatalog(
		GeneratorDef{Name: "A", Table: swap.Values()},
		GeneratorDef{Name: "B", Table: tri.Values()},
	)
	require.NoError(t, err)

	err = VerifyCatalog(c, 4)
	require.ErrorIs(t, err, ErrOrderMismatch)
	assert.Contains(t, err.Error(), "A has order 2, want 4")
	assert.Contains(t, err.Error(), "B^4 is not the identity")
}

func TestKnownSequenceOrders(t *testing.T) {
	tests := []struct {
		name  string
		moves string
		order int
	}{
		{"sexy move", "R U R' U'", 6},
		{"t-perm", "R U R' U' R' F R2 U' R' U' R U R' F'", 2},
		{"R U", "R U", 105},
		{"R2 U2", "R2 U2", 6},
		{"half turn", "F2", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := ParseMoves(tt.moves)
			require.NoError(t, err)
			p, err := SequencePerm(Standard(), moves)
			require.NoError(t, err)
			assert.Equal(t, tt.order, p.Order())
		})
	}
}
