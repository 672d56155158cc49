package apperror

import (
	"fmt"
	"net/http"
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Conflict reports a uniqueness violation (duplicate email). The public API
// answers these with 400, which is what existing clients expect.
func Conflict(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Internal wraps an unexpected storage or hashing failure. The underlying
// cause stays in the message so failures are diagnosable from the response.
func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, fmt.Sprintf("internal error: %v", err), err)
}
