// Package apierror defines the error taxonomy surfaced to API clients.
// Services return these values; the response envelope middleware renders
// them as {message, error, statusCode}.
package apierror

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "Bad Request", Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: "Unauthorized", Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Code: "Forbidden", Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: "Not Found", Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Code: "Conflict", Message: message}
}

func ShortPassword() *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    "Short Password",
		Message: "Password must be minimum of eight(8) characters",
	}
}

// From flattens any error into an *Error. Binding failures surface only
// the first field error; a missing mandatory field becomes the fixed
// "missing required field" code with a synthesized message.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "required" {
			return &Error{
				Status:  http.StatusBadRequest,
				Code:    "missing required field",
				Message: fe.Field() + " is required",
			}
		}
		// Any other failed rule surfaces its tag verbatim as the code.
		return &Error{
			Status:  http.StatusBadRequest,
			Code:    fe.Tag(),
			Message: fe.Field() + " must be a valid " + fe.Tag(),
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) {
		return BadRequest("Invalid JSON in request body")
	}

	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    "Internal Server Error",
		Message: "Internal server error",
	}
}
