package cubeperm

// FaceletCount is the number of addressable facelets on a 3x3x3 cube.
const FaceletCount = 54

// Face identifies one of the six 9-facelet blocks of the facelet space.
// Face f owns positions 9f through 9f+8, each indexed as
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// as the face appears in the unfolded net. Index 4 is the center and never
// moves under a face turn.
type Face int

const (
	FaceF Face = 0 // Front
	FaceB Face = 1 // Back
	FaceR Face = 2 // Right
	FaceL Face = 3 // Left
	FaceU Face = 4 // Up
	FaceD Face = 5 // Down
)

// Faces lists every face in block order.
var Faces = []Face{FaceF, FaceB, FaceR, FaceL, FaceU, FaceD}

func (f Face) String() string {
	switch f {
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	default:
		return "?"
	}
}

// Facelet returns the global position of local index i (0-8) on face f.
func Facelet(f Face, i int) int {
	return int(f)*9 + i
}

// FaceOf returns the face that owns position pos.
func FaceOf(pos int) Face {
	return Face(pos / 9)
}

// CenterOf returns the position of the center facelet of f.
func CenterOf(f Face) int {
	return Facelet(f, 4)
}
