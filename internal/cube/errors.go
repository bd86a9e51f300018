package cube

import "errors"

// Sentinel errors for cube operations.
var (
	// ErrInvalidTwist is returned when a twist names an unknown axis or a layer outside the lattice.
	ErrInvalidTwist = errors.New("cube: invalid twist")

	// ErrLevelOutOfRange is returned when a move turns more layers than the cube has.
	ErrLevelOutOfRange = errors.New("cube: move level out of range")
)
