package apperror

import "errors"

// Fault codes form a closed set; transports map them to their own status
// vocabulary.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeValidation = "VALIDATION"
)

// Error is a service-level fault with a short human-readable reason.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NotFound builds a NOT_FOUND fault.
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// Conflict builds a CONFLICT fault.
func Conflict(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

// Validation builds a VALIDATION fault.
func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

// CodeOf returns the fault code of err, or an empty string when err does not
// carry one.
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsNotFound reports whether err is a NOT_FOUND fault.
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}

// IsConflict reports whether err is a CONFLICT fault.
func IsConflict(err error) bool {
	return CodeOf(err) == CodeConflict
}

// IsValidation reports whether err is a VALIDATION fault.
func IsValidation(err error) bool {
	return CodeOf(err) == CodeValidation
}
