package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorKind classifies every failure the CRUD engine can report.
type ErrorKind string

const (
	KindValidation ErrorKind = "VALIDATION_ERROR"
	KindNotFound   ErrorKind = "NOT_FOUND"
	KindReference  ErrorKind = "REFERENCE_ERROR"
	KindCodec      ErrorKind = "CODEC_ERROR"
	KindStore      ErrorKind = "STORE_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Internal reports whether the error is a server-side fault rather than a
// problem with the caller's request.
func (e *AppError) Internal() bool {
	return e.Kind == KindCodec || e.Kind == KindStore
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: message,
	}
}

func NewReferenceError(message string, err error) *AppError {
	return &AppError{
		Kind:    KindReference,
		Message: message,
		Err:     err,
	}
}

func NewCodecError(err error) *AppError {
	return &AppError{
		Kind:    KindCodec,
		Message: "Stored value could not be decoded",
		Err:     err,
	}
}

func NewStoreError(err error) *AppError {
	return &AppError{
		Kind:    KindStore,
		Message: "Internal server error",
		Err:     err,
	}
}

// KindOf returns the kind carried by err. Errors that never went through the
// result mapper are treated as store faults.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// RespondWithError creates a standardized error response. Internal causes are
// never echoed to the client.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  string(appErr.Kind),
		}
		if appErr.Err != nil && !appErr.Internal() {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: "Internal server error",
			Code:  string(KindStore),
		}
	}

	return c.Status(status).JSON(response)
}
