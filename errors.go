package cubeperm

import "errors"

// Sentinel errors for the cubeperm package.
var (
	// Permutation errors
	ErrInvalidPermutation = errors.New("cubeperm: invalid permutation")
	ErrDimensionMismatch  = errors.New("cubeperm: dimension mismatch")

	// Catalog errors
	ErrUnknownGenerator = errors.New("cubeperm: unknown generator")
	ErrInvalidCatalog   = errors.New("cubeperm: invalid generator catalog")
	ErrOrderMismatch    = errors.New("cubeperm: generator order mismatch")

	// Parsing errors
	ErrInvalidNotation = errors.New("cubeperm: invalid move notation")

	// State errors
	ErrNothingToUndo = errors.New("cubeperm: nothing to undo")
)
