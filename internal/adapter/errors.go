package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoResponse is matched by every [*NoResponseError].
	ErrNoResponse = errors.New("no response from upstream")
	// ErrLocalFailure is matched by every [*LocalFailureError].
	ErrLocalFailure = errors.New("upstream request not dispatched")

	errInvalidTargetURL     = errors.New("invalid upstream url")
	errInvalidAuthorization = errors.New("authorization value contains control characters")
)

// UpstreamError is returned when the upstream answered with a non-2xx status.
type UpstreamError struct {
	Operation Operation
	// Status is the upstream status code, never zero.
	Status int
	// Body is the raw upstream error body. It may be empty or not JSON.
	Body []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream responded %d %s", e.Operation.Name, e.Status, http.StatusText(e.Status))
}

// NoResponseError is returned when the request was sent but no response
// arrived.
type NoResponseError struct {
	Operation Operation
	Err       error
}

func (e *NoResponseError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Operation.Name, ErrNoResponse, e.Err)
}

func (e *NoResponseError) Unwrap() error { return e.Err }

func (e *NoResponseError) Is(target error) bool { return target == ErrNoResponse }

// LocalFailureError is returned when the request could not be built or
// handed to the transport.
type LocalFailureError struct {
	Operation Operation
	Err       error
}

func (e *LocalFailureError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Operation.Name, ErrLocalFailure, e.Err)
}

func (e *LocalFailureError) Unwrap() error { return e.Err }

func (e *LocalFailureError) Is(target error) bool { return target == ErrLocalFailure }

// OperationOf reports the operation a classified failure belongs to.
func OperationOf(err error) (Operation, bool) {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Operation, true
	}
	var noResponseErr *NoResponseError
	if errors.As(err, &noResponseErr) {
		return noResponseErr.Operation, true
	}
	var localErr *LocalFailureError
	if errors.As(err, &localErr) {
		return localErr.Operation, true
	}
	return Operation{}, false
}
