package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error carries an HTTP status and stable code across service boundaries so
// handlers can respond without re-deriving the failure class.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Classify extracts status and code from err, defaulting to a 500.
func Classify(err error) (int, string) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		code := apiErr.Code
		if code == "" {
			code = "internal_error"
		}
		return status, code
	}
	return http.StatusInternalServerError, "internal_error"
}
