package request

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ANcpLua/qyl/pkg/serialization"
)

// problem is implemented by decoded problem+json bodies.
type problem interface {
	ProblemCode() string
	ProblemMessage() string
}

// APIError is a non-2xx response whose body was decoded through the
// operation's error mapping.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	// Body is the decoded error model, e.g. *models.NotFoundError.
	Body    serialization.Parsable
	Headers http.Header
}

// NewAPIError wraps a decoded error body.
func NewAPIError(status int, body serialization.Parsable, headers http.Header) *APIError {
	e := &APIError{StatusCode: status, Body: body, Headers: headers}
	if p, ok := body.(problem); ok {
		e.Code = p.ProblemCode()
		e.Message = p.ProblemMessage()
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("qyl api: status %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("qyl api: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap exposes the body when it is itself an error, so errors.As can
// reach *models.ValidationError and friends.
func (e *APIError) Unwrap() error {
	if err, ok := e.Body.(error); ok {
		return err
	}
	return nil
}

// TransportError covers failures that produced no mapped error model: network
// errors (StatusCode 0), unmapped statuses and undecodable bodies.
type TransportError struct {
	StatusCode int
	Body       []byte
	// Problem holds a problem+json body decoded on a best-effort basis.
	Problem serialization.Parsable
	Err     error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return "qyl transport: " + e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("qyl transport: status %d: %v", e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("qyl transport: unexpected status %d", e.StatusCode)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusCode reports the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr.StatusCode
	}
	return 0
}

// AsAPIError unwraps err to an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

func IsNotFound(err error) bool   { return StatusCode(err) == http.StatusNotFound }
func IsValidation(err error) bool { return StatusCode(err) == http.StatusBadRequest }

// IsServerFailure reports a 5xx response.
func IsServerFailure(err error) bool { return StatusCode(err) >= 500 }
