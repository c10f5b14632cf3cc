package errors

// Code classifies a failure surfaced by the dungeon core
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeCanceled           Code = "CANCELED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitCode maps the code to a process exit status for the command line tools.
// Bad input exits with 2, missing data with 3, unreachable stores with 4
// and everything else with 1.
func (c Code) ExitCode() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument, CodeFailedPrecondition:
		return 2
	case CodeNotFound:
		return 3
	case CodeUnavailable:
		return 4
	default:
		return 1
	}
}

// Recoverable reports whether a caller can fall back to default state
// instead of aborting. Missing and unreadable saves are recoverable.
func (c Code) Recoverable() bool {
	switch c {
	case CodeNotFound, CodeDataLoss:
		return true
	default:
		return false
	}
}
