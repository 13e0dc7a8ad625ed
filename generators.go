package cubeperm

// Quarter-turn tables for the six faces, one row per face block
// (F, B, R, L, U, D). Entry i is the position whose facelet lands on i
// after a clockwise turn of the named face, seen from outside the cube.
//
// Each table rotates the turned face's ring of eight facelets by two places
// and carries the twelve side facelets of the adjacent faces through three
// 4-cycles. The tables are validated when the standard catalog is built.
var standardDefs = []GeneratorDef{
	{Name: "F", Table: []int{
		6, 3, 0, 7, 4, 1, 8, 5, 2,
		9, 10, 11, 12, 13, 14, 15, 16, 17,
		42, 19, 20, 43, 22, 23, 44, 25, 26,
		27, 28, 45, 30, 31, 46, 33, 34, 47,
		36, 37, 38, 39, 40, 41, 35, 32, 29,
		24, 21, 18, 48, 49, 50, 51, 52, 53,
	}},
	{Name: "B", Table: []int{
		0, 1, 2, 3, 4, 5, 6, 7, 8,
		15, 12, 9, 16, 13, 10, 17, 14, 11,
		18, 19, 53, 21, 22, 52, 24, 25, 51,
		38, 28, 29, 37, 31, 32, 36, 34, 35,
		20, 23, 26, 39, 40, 41, 42, 43, 44,
		45, 46, 47, 48, 49, 50, 27, 30, 33,
	}},
	{Name: "R", Table: []int{
		0, 1, 47, 3, 4, 50, 6, 7, 53,
		44, 10, 11, 41, 13, 14, 38, 16, 17,
		24, 21, 18, 25, 22, 19, 26, 23, 20,
		27, 28, 29, 30, 31, 32, 33, 34, 35,
		36, 37, 2, 39, 40, 5, 42, 43, 8,
		45, 46, 15, 48, 49, 12, 51, 52, 9,
	}},
	{Name: "L", Table: []int{
		36, 1, 2, 39, 4, 5, 42, 7, 8,
		9, 10, 51, 12, 13, 48, 15, 16, 45,
		18, 19, 20, 21, 22, 23, 24, 25, 26,
		33, 30, 27, 34, 31, 28, 35, 32, 29,
		17, 37, 38, 14, 40, 41, 11, 43, 44,
		0, 46, 47, 3, 49, 50, 6, 52, 53,
	}},
	{Name: "U", Table: []int{
		18, 19, 20, 3, 4, 5, 6, 7, 8,
		27, 28, 29, 12, 13, 14, 15, 16, 17,
		9, 10, 11, 21, 22, 23, 24, 25, 26,
		0, 1, 2, 30, 31, 32, 33, 34, 35,
		42, 39, 36, 43, 40, 37, 44, 41, 38,
		45, 46, 47, 48, 49, 50, 51, 52, 53,
	}},
	{Name: "D", Table: []int{
		0, 1, 2, 3, 4, 5, 33, 34, 35,
		9, 10, 11, 12, 13, 14, 24, 25, 26,
		18, 19, 20, 21, 22, 23, 6, 7, 8,
		27, 28, 29, 30, 31, 32, 15, 16, 17,
		36, 37, 38, 39, 40, 41, 42, 43, 44,
		51, 48, 45, 52, 49, 46, 53, 50, 47,
	}},
}
