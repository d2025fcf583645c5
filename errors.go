package eway

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a required request field is absent.
	// The call fails before anything is sent to the gateway.
	ErrMissingField = errors.New("missing required field")
	// ErrMalformedResponse is returned when the response body could not be
	// parsed as XML.
	ErrMalformedResponse = errors.New("malformed response")
)

// MissingFieldError names the first required field found absent while
// building a request.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

func missingField(field string) error {
	return &MissingFieldError{Field: field}
}

// MalformedResponseError wraps the XML parse failure for a response body.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return ErrMalformedResponse
}
