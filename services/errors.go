package services

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure. The HTTP layer maps each Kind to a
// status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindReferenceNotFound
	KindNotFound
	KindCredential
	KindRateLimited
	KindUnavailable
)

// Error codes carried in the error field of a response body.
const (
	CodeInvalidPayload     = "invalid_payload"
	CodeInvalidReference   = "invalid_reference"
	CodeNotFound           = "not_found"
	CodeInvalidCredentials = "invalid_credentials"
	CodeOTPMissing         = "otp_missing"
	CodeOTPExpired         = "otp_expired"
	CodeOTPInvalid         = "otp_invalid"
	CodeRateLimited        = "rate_limited"
	CodeUnavailable        = "unavailable"
	CodeInternal           = "internal_error"
)

// Error is returned by every service operation that fails.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind of err. Errors that did not come from this
// package are internal.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

func validation(msg string) *Error {
	return &Error{Kind: KindValidation, Code: CodeInvalidPayload, Message: msg}
}

func referenceNotFound(msg string) *Error {
	return &Error{Kind: KindReferenceNotFound, Code: CodeInvalidReference, Message: msg}
}

func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Code: CodeNotFound, Message: msg}
}

func credential(code, msg string) *Error {
	return &Error{Kind: KindCredential, Code: code, Message: msg}
}

func internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: msg, Err: err}
}
