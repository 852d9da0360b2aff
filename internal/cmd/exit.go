// Package cmd provides CLI command implementations.
package cmd

// Exit codes for the mvvmkit CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitPreconditionError indicates the target is not a usable Expo
	// project; the engine never ran.
	ExitPreconditionError = 2

	// ExitPartialFailure indicates the run completed but one or more
	// entries failed. Successful entries remain on disk.
	ExitPartialFailure = 3
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitPreconditionError:
		return "Precondition Error"
	case ExitPartialFailure:
		return "Partial Failure"
	default:
		return "Unknown"
	}
}
