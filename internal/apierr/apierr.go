package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Codes for the error taxonomy surfaced by the scoring and roadmap
// services. Handlers map these through Status to HTTP responses.
const (
	CodeValidation    = "validation_failed"
	CodeNotFound      = "not_found"
	CodeCycleDetected = "cycle_detected"
	CodeConflict      = "conflict"
	CodeUpstream      = "upstream_unavailable"
)

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

func Validation(format string, args ...interface{}) *Error {
	return New(http.StatusBadRequest, CodeValidation, fmt.Errorf(format, args...))
}

func NotFound(format string, args ...interface{}) *Error {
	return New(http.StatusNotFound, CodeNotFound, fmt.Errorf(format, args...))
}

func CycleDetected(format string, args ...interface{}) *Error {
	return New(http.StatusConflict, CodeCycleDetected, fmt.Errorf(format, args...))
}

func Conflict(format string, args ...interface{}) *Error {
	return New(http.StatusConflict, CodeConflict, fmt.Errorf(format, args...))
}

func Upstream(err error) *Error {
	return New(http.StatusBadGateway, CodeUpstream, err)
}

func HasCode(err error, code string) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

func IsNotFound(err error) bool      { return HasCode(err, CodeNotFound) }
func IsValidation(err error) bool    { return HasCode(err, CodeValidation) }
func IsCycleDetected(err error) bool { return HasCode(err, CodeCycleDetected) }
func IsConflict(err error) bool      { return HasCode(err, CodeConflict) }
