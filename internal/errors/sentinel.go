package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates an input document does not match the kamut schema.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file or pattern match was not found.
	ErrNotFound = errors.New("not found")
)

// Exit codes returned by the kamut binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates at least one input document failed to parse.
	ExitValidationError = 2

	// ExitNotFound indicates an input file could not be found.
	ExitNotFound = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
