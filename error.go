package docsearch

import (
	"errors"
	"fmt"
	"strings"
)

// Application error codes.
const (
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EINTERNAL    = "internal"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("docsearch error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// UnknownLibraryError is returned when a library identifier is not in the registry.
type UnknownLibraryError struct {
	Library   string
	Supported []string
}

func (e *UnknownLibraryError) Error() string {
	return fmt.Sprintf("library %q not supported. Available: %s", e.Library, strings.Join(e.Supported, ", "))
}

// SearchError is returned when the search service cannot be reached or
// responds with a failure. It aborts the whole request.
type SearchError struct {
	Query string
	Err   error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search failed: %v", e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	var unknown *UnknownLibraryError
	var search *SearchError
	switch {
	case errors.As(err, &e):
		return e.Code
	case errors.As(err, &unknown):
		return EINVALID
	case errors.As(err, &search):
		return EUNAVAILABLE
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Other errors return their own text.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
