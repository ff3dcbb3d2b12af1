package models

// ValidationError rejects bad input before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ServiceError reports a failed evaluation attempt: the scoring service
// answered success:false, the transport failed, or the response could not be
// parsed. Message carries the service-supplied text when there is one.
type ServiceError struct {
	Message string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Evaluation failed."
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// NoResultError means an export or share was requested before any
// evaluation succeeded.
type NoResultError struct {
	Action string
}

func (e *NoResultError) Error() string {
	if e.Action == "" {
		return "No results available. Please evaluate a transcript first."
	}
	return "No results to " + e.Action + ". Please evaluate a transcript first."
}
