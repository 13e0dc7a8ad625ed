// Package cubeperm models a 3x3x3 cube puzzle as permutations of its 54
// facelets.
//
// # Features
//
//   - Validated permutations with composition, inverse, power and order
//   - A catalog of the six quarter-turn face generators, checked at startup
//   - Cube state built by composing generators, with a read-only labeling
//   - Move notation (R, U', F2, ...) and a tracker with history and undo
//
// # Conventions
//
// Facelet i of face f is position 9f+i, faces ordered F, B, R, L, U, D.
// A permutation value p[i] names the position whose content moves into i,
// and p.Compose(q) applies p first, then q.
//
// # Quick Start
//
//	state := cubeperm.NewState(nil)
//	for i := 0; i < 4; i++ {
//	    _ = state.Apply("F")
//	}
//	fmt.Println("Solved:", state.IsSolved()) // true
//
//	p, _ := cubeperm.SequencePerm(cubeperm.Standard(), cubeperm.SexyMove)
//	fmt.Println(p.Order()) // 6
//
// # Rendering
//
// The render subpackage draws State.Labeling() as an unfolded net. The
// engine itself never formats output.
package cubeperm
