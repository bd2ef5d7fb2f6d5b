package utf16str

import (
	"errors"
	"fmt"
)

// Sentinel errors for slicing operations.
var (
	// ErrOutOfRange indicates a start or end index outside [0, length].
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidRange indicates an end index that precedes the start index.
	ErrInvalidRange = errors.New("invalid range")

	// ErrOddLength indicates UTF-16 input with a trailing half code unit.
	ErrOddLength = errors.New("odd number of bytes in UTF-16 input")
)

// IndexError describes a rejected index or range.
type IndexError struct {
	Op     string // Operation that failed ("substring")
	Start  int    // Requested start index
	End    int    // Requested end index
	Length int    // Length of the string in code units
	Err    error  // ErrOutOfRange or ErrInvalidRange
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	switch {
	case errors.Is(e.Err, ErrInvalidRange):
		return fmt.Sprintf("%s: end index %d precedes start index %d: %v",
			e.Op, e.End, e.Start, e.Err)
	case e.Start < 0 || e.Start > e.Length:
		return fmt.Sprintf("%s: start index %d not valid in string of length %d: %v",
			e.Op, e.Start, e.Length, e.Err)
	default:
		return fmt.Sprintf("%s: end index %d not valid in string of length %d: %v",
			e.Op, e.End, e.Length, e.Err)
	}
}

// Unwrap returns the underlying sentinel for errors.Is support.
func (e *IndexError) Unwrap() error {
	return e.Err
}

func newIndexError(op string, start, end, length int, err error) *IndexError {
	return &IndexError{
		Op:     op,
		Start:  start,
		End:    end,
		Length: length,
		Err:    err,
	}
}
