package cubeperm

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	state.ApplyMoves([]cubeperm.Move{cubeperm.R, cubeperm.U, cubeperm.RPrime, cubeperm.UPrime})
var (
	// Right face moves
	R      = Move{Generator: "R", Turn: CW}     // Right clockwise
	RPrime = Move{Generator: "R", Turn: CCW}    // Right counter-clockwise
	R2     = Move{Generator: "R", Turn: Double} // Right 180

	// Left face moves
	L      = Move{Generator: "L", Turn: CW}
	LPrime = Move{Generator: "L", Turn: CCW}
	L2     = Move{Generator: "L", Turn: Double}

	// Up face moves
	U      = Move{Generator: "U", Turn: CW}
	UPrime = Move{Generator: "U", Turn: CCW}
	U2     = Move{Generator: "U", Turn: Double}

	// Down face moves
	D      = Move{Generator: "D", Turn: CW}
	DPrime = Move{Generator: "D", Turn: CCW}
	D2     = Move{Generator: "D", Turn: Double}

	// Front face moves
	F      = Move{Generator: "F", Turn: CW}
	FPrime = Move{Generator: "F", Turn: CCW}
	F2     = Move{Generator: "F", Turn: Double}

	// Back face moves
	B      = Move{Generator: "B", Turn: CW}
	BPrime = Move{Generator: "B", Turn: CCW}
	B2     = Move{Generator: "B", Turn: Double}
)

// Sexy move: R U R' U'. Has order 6.
var SexyMove = []Move{R, U, RPrime, UPrime}

// T-perm algorithm. Swaps two corners and two edges, so it has order 2.
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
