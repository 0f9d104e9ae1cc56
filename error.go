package tldr

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECACHEUPDATE         = "cache_update_failed"
	EEMPTYINDEX          = "empty_index"
	EUNKNOWNCOMMAND      = "unknown_command"
	ELANGUAGEUNAVAILABLE = "language_unavailable"
	EPAGENOTFOUND        = "page_not_found"
	EINVALIDOPTIONS      = "invalid_options"
	EINVALID             = "invalid"
	EINTERNAL            = "internal"
)

// Error represents an application-specific error. None of them are fatal
// to the running process; callers turn them into messages for the user.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("tldr error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
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
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
