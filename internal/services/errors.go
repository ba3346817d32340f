package services

import "fmt"

// InvalidInputError rejects a malformed request before any outbound call is
// made. Handlers surface it as a client error together with a corrective
// example payload.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return e.Message
}

func NewInvalidInputError(message string) *InvalidInputError {
	return &InvalidInputError{Message: message}
}

// UpstreamFailureError means the skill extraction call failed. There is no
// substitute market-skill source, so the pipeline aborts and handlers surface
// it as a server error.
type UpstreamFailureError struct {
	JobTitle string
	Err      error
}

func (e *UpstreamFailureError) Error() string {
	return fmt.Sprintf("skill extraction failed for %q: %v", e.JobTitle, e.Err)
}

func (e *UpstreamFailureError) Unwrap() error {
	return e.Err
}
