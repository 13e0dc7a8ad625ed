package cubeperm

import (
	"errors"
	"testing"
)

func TestNewStateIsSolved(t *testing.T) {
	s := NewState(nil)
	if !s.IsSolved() {
		t.Error("New state should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	s := NewState(nil)
	if err := s.Apply("R"); err != nil {
		t.Fatal(err)
	}
	if s.IsSolved() {
		t.Error("State should not be solved after R")
	}
}

func TestFFFF_ReturnsToSolvedLabeling(t *testing.T) {
	s := NewState(nil)
	for i := 0; i < 4; i++ {
		if err := s.Apply("F"); err != nil {
			t.Fatal(err)
		}
	}
	labels := s.Labeling()
	for i, v := range labels {
		if v != i {
			t.Fatalf("F x 4: labeling[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestQuarterTurnX4_AllFaces(t *testing.T) {
	for _, name := range Standard().Names() {
		s := NewState(nil)
		for i := 0; i < 4; i++ {
			_ = s.Apply(name)
		}
		if !s.IsSolved() {
			t.Errorf("%s x 4 should return to solved", name)
		}
	}
}

func TestR2R2_ReturnsToSolved(t *testing.T) {
	s := NewState(nil)
	if err := s.ApplyNotation("R2 R2"); err != nil {
		t.Fatal(err)
	}
	if !s.IsSolved() {
		t.Error("R2 R2 should return to solved")
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	s := NewState(nil)
	for i := 0; i < 6; i++ {
		if err := s.ApplyMoves(SexyMove); err != nil {
			t.Fatal(err)
		}
		if i < 5 && s.IsSolved() {
			t.Fatalf("Sexy move x %d should not be solved", i+1)
		}
	}
	if !s.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
	}
}

func TestApplyInverseUndoesGenerator(t *testing.T) {
	s := NewState(nil)
	_ = s.Apply("U")
	_ = s.Apply("L")

	g, err := Standard().Generator("L")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.ApplyPerm(g.Perm.Inverse()); err != nil {
		t.Fatal(err)
	}
	if err := s.ApplyInverse("U"); err != nil {
		t.Fatal(err)
	}
	if !s.IsSolved() {
		t.Error("U L L' U' should return to solved")
	}
}

func TestApplyUnknownGenerator(t *testing.T) {
	s := NewState(nil)
	_ = s.Apply("R")
	before := s.Permutation()

	err := s.Apply("X")
	if !errors.Is(err, ErrUnknownGenerator) {
		t.Fatalf("expected ErrUnknownGenerator, got %v", err)
	}
	if eq, _ := s.Permutation().Equal(before); !eq {
		t.Error("failed Apply must not change the state")
	}
}

func TestApplyMovesIsAtomic(t *testing.T) {
	s := NewState(nil)
	err := s.ApplyMoves([]Move{R, {Generator: "M", Turn: CW}})
	if !errors.Is(err, ErrUnknownGenerator) {
		t.Fatalf("expected ErrUnknownGenerator, got %v", err)
	}
	if !s.IsSolved() {
		t.Error("a sequence with an unknown generator should apply nothing")
	}
}

func TestApplyPermDimensionMismatch(t *testing.T) {
	s := NewState(nil)
	if err := s.ApplyPerm(Identity(8)); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestLabelingIsSnapshot(t *testing.T) {
	s := NewState(nil)
	labels := s.Labeling()
	labels[0] = 99

	if s.Labeling()[0] != 0 {
		t.Error("mutating a labeling must not affect the state")
	}

	_ = s.Apply("F")
	if s.Labeling()[0] != 6 {
		t.Errorf("after F, position 0 should hold facelet 6, got %d", s.Labeling()[0])
	}
}

func TestResetAndClone(t *testing.T) {
	s := NewState(nil)
	_ = s.ApplyNotation("R U F")
	c := s.Clone()

	s.Reset()
	if !s.IsSolved() {
		t.Error("Reset should solve the state")
	}
	if c.IsSolved() {
		t.Error("Clone should keep its own permutation")
	}
}

func TestCentersNeverMove(t *testing.T) {
	s := NewState(nil)
	if err := s.ApplyMoves(TPerm); err != nil {
		t.Fatal(err)
	}
	_ = s.ApplyNotation("F B' R2 L D U'")
	labels := s.Labeling()
	for _, f := range Faces {
		if labels[CenterOf(f)] != CenterOf(f) {
			t.Errorf("center of %s moved", f)
		}
	}
}
