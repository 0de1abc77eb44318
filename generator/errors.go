package generator

import (
	"errors"
	"fmt"
)

// ErrTimeout means the collaborator did not answer within the deadline.
var ErrTimeout = errors.New("request timed out")

// TransportError wraps failures reaching the collaborator or reading its
// response: connection errors, non-2xx status codes.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ReportedError is a well-formed failure answer from the collaborator.
type ReportedError struct {
	Message string
}

func (e *ReportedError) Error() string {
	return fmt.Sprintf("generation failed: %s", e.Message)
}

// Failure is how an orchestrator describes a failed generation: the text kept
// on the record and the text returned to the client.
type Failure struct {
	RecordMessage string
	ClientMessage string
}

// Classify maps err onto the collaborator failure taxonomy. Errors outside it
// produce ok == false so callers can apply their own generic wording.
func Classify(err error) (Failure, bool) {
	var reported *ReportedError
	var transport *TransportError

	switch {
	case errors.As(err, &reported):
		return Failure{RecordMessage: reported.Message, ClientMessage: reported.Message}, true
	case errors.Is(err, ErrTimeout):
		return Failure{
			RecordMessage: "Request timed out",
			ClientMessage: "Request timed out. Please try again.",
		}, true
	case errors.As(err, &transport):
		return Failure{
			RecordMessage: fmt.Sprintf("API request failed: %s", transport.Err),
			ClientMessage: "Failed to connect to image generation service",
		}, true
	default:
		return Failure{}, false
	}
}
