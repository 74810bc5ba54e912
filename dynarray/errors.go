package dynarray

import (
	"errors"
	"strconv"
)

var (
	// ErrIndexOutOfRange is matched by every IndexOutOfRangeError via errors.Is.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrEmpty is the panic value of PopBack, Front and Back on an empty array.
	ErrEmpty = errors.New("dynarray: empty array")
)

// IndexOutOfRangeError reports an index outside the valid range [0, Bound).
//
// At and AtRef return it as an error. The unchecked accessors and the
// positional mutators panic with it.
type IndexOutOfRangeError struct {
	// Index is the index that was requested.
	Index int

	// Bound is the exclusive upper bound checked against: Len() for element
	// access and Erase, Len()+1 for Insert.
	Bound int
}

// Error implements the error interface.
func (e IndexOutOfRangeError) Error() string {
	// Example: dynarray: index 5 out of range [0,5)
	return "dynarray: index " + strconv.Itoa(e.Index) +
		" out of range [0," + strconv.Itoa(e.Bound) + ")"
}

// Is reports whether target is ErrIndexOutOfRange.
func (e IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
