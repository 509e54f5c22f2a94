package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// SomethingWentWrong is returned when an unexpected error occurs.
	SomethingWentWrong = ErrorKind("Something went wrong")

	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when an argument is invalid.
	InvalidArgument = ErrorKind("Invalid Argument")

	// Unsupported is returned when a feature or value is not supported.
	Unsupported = ErrorKind("Unsupported")

	// Timeout is returned when an operation times out.
	Timeout = ErrorKind("Timeout")
)

// Probe and aggregation failure classes.
const (
	// TransportFailure is a timeout, DNS failure or refused connection. Possibly transient.
	TransportFailure = ErrorKind("Transport Failure")

	// ProtocolMismatch is a non-2xx status or a response body of an unexpected shape.
	ProtocolMismatch = ErrorKind("Protocol Mismatch")

	// DecisiveSignal is a response that proves the node unusable (stale head block, wrong chain).
	DecisiveSignal = ErrorKind("Decisive Signal")

	// ValidationSkipped is a secondary enrichment that could not be completed and fell back to its default.
	ValidationSkipped = ErrorKind("Validation Skipped")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
