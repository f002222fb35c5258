package llm

import "errors"

var (
	// ErrDisabled indicates the completion service is switched off; callers
	// fall back to their deterministic path.
	ErrDisabled = errors.New("completion service disabled")

	// ErrUnavailable indicates the completion service is unreachable.
	ErrUnavailable = errors.New("completion service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("completion request timed out")

	// ErrInvalidOutput indicates the response could not be parsed into the
	// expected structured format.
	ErrInvalidOutput = errors.New("invalid completion output format")
)
