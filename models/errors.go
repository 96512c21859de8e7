package models

import (
	"fmt"
	"net/http"
)

// ErrorKind discriminates the failures a contact submission can end in
type ErrorKind int

const (
	ErrConfiguration ErrorKind = iota + 1
	ErrMissingField
	ErrCaptchaConfiguration
	ErrCaptchaInvalid
	ErrCaptchaInvalidAction
	ErrCaptchaUnavailable
	ErrSend
	ErrMethodNotAllowed
	ErrInternal
)

func (k ErrorKind) String() string {
	switch k {
	case ErrConfiguration:
		return "configuration"
	case ErrMissingField:
		return "missing_field"
	case ErrCaptchaConfiguration:
		return "captcha_configuration"
	case ErrCaptchaInvalid:
		return "captcha_invalid"
	case ErrCaptchaInvalidAction:
		return "captcha_invalid_action"
	case ErrCaptchaUnavailable:
		return "captcha_unavailable"
	case ErrSend:
		return "send"
	case ErrMethodNotAllowed:
		return "method_not_allowed"
	case ErrInternal:
		return "internal"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// PipelineError is a classified failure. Field is set for ErrMissingField,
// Err carries the upstream cause and is never shown to the client.
type PipelineError struct {
	Kind  ErrorKind
	Field string
	Err   error
}

// NewPipelineError wraps cause under the given kind
func NewPipelineError(kind ErrorKind, cause error) *PipelineError {
	return &PipelineError{Kind: kind, Err: cause}
}

// MissingField reports a required form field that was absent or empty
func MissingField(field string) *PipelineError {
	return &PipelineError{Kind: ErrMissingField, Field: field}
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	}
	return e.Kind.String()
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error kind
func (e *PipelineError) Status() int {
	switch e.Kind {
	case ErrMissingField, ErrCaptchaInvalid, ErrCaptchaInvalidAction:
		return http.StatusBadRequest
	case ErrMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing error text
func (e *PipelineError) Message() string {
	switch e.Kind {
	case ErrConfiguration:
		return "configuration error"
	case ErrMissingField:
		return e.Field + " field not populated"
	case ErrCaptchaConfiguration:
		return "recaptcha failed due to configuration error"
	case ErrCaptchaInvalid:
		return "recaptcha failed"
	case ErrCaptchaInvalidAction:
		return "recaptcha failed due to invalid action"
	case ErrCaptchaUnavailable:
		return "recaptcha verification failed"
	case ErrSend:
		return "error sending email"
	case ErrMethodNotAllowed:
		return "method not allowed"
	default:
		return "internal error"
	}
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error string `json:"error" example:"name field not populated"`
}
