package apperror

import "net/http"

// AppError is an error that already knows its HTTP status code and the
// payload that should appear in the response envelope's data field.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
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

// WithData attaches a payload for the envelope's data field.
func (e *AppError) WithData(data any) *AppError {
	e.Data = data
	return e
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation wraps a field violation map as a 400 response.
func Validation(violations map[string][]string) *AppError {
	return BadRequest("Invalid inputs").WithData(violations)
}

// NotFound echoes the requested identifier back to the caller.
func NotFound(message, id string) *AppError {
	return New(http.StatusNotFound, message, nil).WithData(map[string]string{"id": id})
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
