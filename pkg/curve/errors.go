package curve

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidPoint is returned when a point fails validation because its
	// coordinates are missing, it does not satisfy the curve equation, or it
	// is the point at infinity.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrScalarType is returned when a scalar multiplication is attempted
	// with a missing scalar operand.
	ErrScalarType = ErrorKind("ErrScalarType")

	// ErrInvalidLength is returned when a serialized compressed point is not
	// exactly 33 bytes.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidPrefix is returned when a serialized compressed point does
	// not start with the 0x02 or 0x03 format byte.
	ErrInvalidPrefix = ErrorKind("ErrInvalidPrefix")

	// ErrInvalidX is returned when no point on the curve exists for a given
	// x coordinate.
	ErrInvalidX = ErrorKind("ErrInvalidX")

	// ErrInfinity is returned when a coordinate accessor or serialization is
	// attempted on the point at infinity.
	ErrInfinity = ErrorKind("ErrInfinity")

	// ErrInvalidHex is returned when a hex-encoded compressed point cannot
	// be decoded.
	ErrInvalidHex = ErrorKind("ErrInvalidHex")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies a point validation or serialization error. It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error kind.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error kind.
func (e Error) Unwrap() error {
	return e.Err
}

// pointError creates an Error given a set of arguments.
func pointError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
