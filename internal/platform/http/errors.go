package http

import (
	"errors"
	"net/http"
)

// Error is a failure the client is allowed to see. Code is a stable,
// machine-readable identifier; Message is the human text.
type Error struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return http.StatusText(e.StatusCode)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(statusCode int, code, message string, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Err:        err,
	}
}

func NotFound(code, message string, err error) *Error {
	return New(http.StatusNotFound, code, message, err)
}

func BadRequest(code, message string, err error) *Error {
	return New(http.StatusBadRequest, code, message, err)
}

// StatusOf reports the status carried anywhere in err's chain, or 500.
func StatusOf(err error) int {
	var httpErr *Error
	if errors.As(err, &httpErr) && httpErr.StatusCode != 0 {
		return httpErr.StatusCode
	}
	return http.StatusInternalServerError
}
