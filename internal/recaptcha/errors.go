package recaptcha

import (
	"fmt"
	"strings"
)

// Kind classifies a failed verification
type Kind int

const (
	// ConfigurationError means the verifier rejected our own request
	// (bad secret, malformed input) and reported error codes.
	ConfigurationError Kind = iota + 1
	// ValidationError means the token itself was not accepted.
	ValidationError
	// InvalidAction is a ValidationError where the token was issued for a
	// different action than the one expected.
	InvalidAction
	// RequestFailed covers transport and decoding failures.
	RequestFailed
)

func (k Kind) String() string {
	switch k {
	case ConfigurationError:
		return "configuration error"
	case ValidationError:
		return "validation failed"
	case InvalidAction:
		return "invalid action"
	case RequestFailed:
		return "request failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a classified verification failure
type Error struct {
	Kind       Kind
	ErrorCodes []string // ConfigurationError
	Expected   string   // InvalidAction
	Actual     string   // InvalidAction
	Err        error    // RequestFailed
}

func (e *Error) Error() string {
	switch e.Kind {
	case ConfigurationError:
		return fmt.Sprintf("recaptcha %s: [%s]", e.Kind, strings.Join(e.ErrorCodes, ", "))
	case ValidationError:
		return "recaptcha validation failed: captcha was invalid"
	case InvalidAction:
		return fmt.Sprintf("recaptcha validation failed: invalid action: expected %q, got %q", e.Expected, e.Actual)
	default:
		return fmt.Sprintf("recaptcha %s: %v", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsValidation reports whether the token, rather than the setup or the
// network, was at fault.
func (e *Error) IsValidation() bool {
	return e.Kind == ValidationError || e.Kind == InvalidAction
}
