package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppError represents an application error
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequestError creates a 400 Bad Request error
func BadRequestError(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, message, err)
}

// NotFoundError creates a 404 Not Found error
func NotFoundError(message string, err error) *AppError {
	return NewAppError(http.StatusNotFound, message, err)
}

// ConflictError creates a 409 Conflict error
func ConflictError(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, message, err)
}

// ServiceUnavailableError creates a 503 Service Unavailable error
func ServiceUnavailableError(message string, err error) *AppError {
	return NewAppError(http.StatusServiceUnavailable, message, err)
}

// GetAppError returns the AppError if the error wraps one
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// RespondAppError writes err as a standard error response. Errors that are
// not AppErrors are logged and reported as a 500 with a generic message.
func RespondAppError(c *gin.Context, err error) {
	appErr := GetAppError(err)
	if appErr == nil {
		LogError("Unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		InternalServerError(c, ErrInternalServer, nil)
		return
	}
	if appErr.Code >= http.StatusInternalServerError {
		LogError("%s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
	}
	var detail interface{}
	if appErr.Err != nil && appErr.Code < http.StatusInternalServerError {
		detail = appErr.Err.Error()
	}
	Error(c, appErr.Code, appErr.Message, detail)
}
