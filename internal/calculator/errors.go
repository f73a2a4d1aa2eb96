package calculator

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// Kind classifies why an operation could not produce a result.
type Kind int

const (
	KindInternal Kind = iota
	KindMissingInput
	KindInvalidNumber
	KindDivisionByZero
	KindNegativeSquareRoot
	KindMalformedBody
)

func (k Kind) String() string {
	switch k {
	case KindMissingInput:
		return "missing_input"
	case KindInvalidNumber:
		return "invalid_number"
	case KindDivisionByZero:
		return "division_by_zero"
	case KindNegativeSquareRoot:
		return "negative_square_root"
	case KindMalformedBody:
		return "malformed_body"
	default:
		return "internal"
	}
}

// Status is the HTTP status a caller sees for this kind.
func (k Kind) Status() int {
	if k == KindInternal {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// Public messages. These are part of the wire contract.
const (
	MsgMissingInput       = "All inputs are required"
	MsgInvalidNumber      = "All inputs must be valid numbers"
	MsgDivideByZero       = "Cannot divide by zero"
	MsgModuloByZero       = "Divisor cannot be zero"
	MsgNegativeSquareRoot = "Input must be a non-negative number"
	MsgMalformedBody      = "Request body must be a JSON object"
	MsgUnavailable        = "Calculator service unavailable"
)

// Error carries a Kind and the message that is safe to return to the caller.
// Internal errors keep their real cause for server-side logging only.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Cause returns the underlying error, or the error itself when there is none.
func (e *Error) Cause() error {
	if e.cause != nil {
		return e.cause
	}
	return e
}

var (
	ErrMissingInput       = &Error{Kind: KindMissingInput, Message: MsgMissingInput}
	ErrInvalidNumber      = &Error{Kind: KindInvalidNumber, Message: MsgInvalidNumber}
	ErrDivideByZero       = &Error{Kind: KindDivisionByZero, Message: MsgDivideByZero}
	ErrModuloByZero       = &Error{Kind: KindDivisionByZero, Message: MsgModuloByZero}
	ErrNegativeSquareRoot = &Error{Kind: KindNegativeSquareRoot, Message: MsgNegativeSquareRoot}
)

// MalformedBody wraps a body decoding failure.
func MalformedBody(cause error) *Error {
	return &Error{Kind: KindMalformedBody, Message: MsgMalformedBody, cause: cause}
}

// Internal wraps an unexpected failure. The caller only ever sees MsgUnavailable.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: MsgUnavailable, cause: cause}
}

// FromError finds the *Error in err's chain. Anything else is internal.
func FromError(err error) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return Internal(err)
}
