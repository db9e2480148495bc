package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"pet_market/pkg/errcodes"
)

// ErrStaleResponse is returned when a fetch finished after a newer one was issued.
// Callers treat it as success: the result was discarded, nothing is wrong.
var ErrStaleResponse = NewError(errcodes.StaleResponse, "response superseded by a newer request") //nolint:gochecknoglobals

// AppError is a domain error carrying a stable code.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// ErrorCode lets the HTTP layer map the error to a status without importing domain.
func (e *AppError) ErrorCode() failure.ErrorCode {
	return e.Code
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode returns the code of the outermost AppError in the chain.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code failure.ErrorCode) bool {
	got, ok := GetCode(err)
	return ok && got == code
}
