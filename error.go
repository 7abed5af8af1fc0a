package panshare

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and describe the class of error rather than
// a specific failure. Codes map to behavior at the boundary: EFETCH on a
// listing page is fatal, EFETCH on one article inside a listing run is
// skipped, EINVALID surfaces as a usage error.
const (
	EFETCH    = "fetch_failed" // upstream page could not be retrieved
	EINTERNAL = "internal"     // internal error
	EINVALID  = "invalid"      // validation failed
	ENOTFOUND = "not_found"    // entity does not exist
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("panshare error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
