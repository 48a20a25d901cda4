package domain

import "fmt"

type ErrCode string

const (
	CodeValidation   ErrCode = "validation_error"
	CodeNotFound     ErrCode = "not_found"
	CodeConflict     ErrCode = "conflict"
	CodeUnauthorized ErrCode = "unauthorized"
	CodeForbidden    ErrCode = "forbidden"
	CodeInternal     ErrCode = "internal_error"
)

// AppError is the tagged error used across the service. HTTP status selection
// happens in the response package from Code, never from the message text.
type AppError struct {
	Code    ErrCode
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func ErrValidation(msg string) error   { return &AppError{Code: CodeValidation, Message: msg} }
func ErrNotFound(msg string) error     { return &AppError{Code: CodeNotFound, Message: msg} }
func ErrConflict(msg string) error     { return &AppError{Code: CodeConflict, Message: msg} }
func ErrUnauthorized(msg string) error { return &AppError{Code: CodeUnauthorized, Message: msg} }
func ErrForbidden(msg string) error    { return &AppError{Code: CodeForbidden, Message: msg} }
func ErrInternal(msg string) error     { return &AppError{Code: CodeInternal, Message: msg} }
