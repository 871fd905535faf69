// Package response defines consistent HTTP response structures.
// Every error response uses Error so clients see one shape.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"economia/src/core/domain"
)

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Field is the field that caused the error (for validation errors)
	Field string `json:"field,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// OK sends a 200 response with v as the body.
func OK(c *gin.Context, v any) {
	c.JSON(http.StatusOK, v)
}

// Created sends a 201 response with the created resource as the body.
func Created(c *gin.Context, v any) {
	c.JSON(http.StatusCreated, v)
}

// NoContent sends a 204 response with no body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error: ErrorDetail{
			Code:      "BAD_REQUEST",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// ValidationError sends a 400 response for validation failures.
func ValidationError(c *gin.Context, field, message, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error: ErrorDetail{
			Code:      "VALIDATION_ERROR",
			Message:   message,
			Field:     field,
			RequestID: requestID,
		},
	})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusNotFound, Error{
		Error: ErrorDetail{
			Code:      "NOT_FOUND",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, field, message, requestID string) {
	c.JSON(http.StatusConflict, Error{
		Error: ErrorDetail{
			Code:      "CONFLICT",
			Message:   message,
			Field:     field,
			RequestID: requestID,
		},
	})
}

// InternalError sends a 500 response. The cause is never exposed.
func InternalError(c *gin.Context, message, requestID string) {
	if message == "" {
		message = "Erro interno do servidor"
	}
	c.JSON(http.StatusInternalServerError, Error{
		Error: ErrorDetail{
			Code:      "INTERNAL_ERROR",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// Errors outside the domain kinds become a 500 carrying fallback as message.
func FromDomainError(c *gin.Context, err error, fallback, requestID string) {
	var de *domain.DomainError
	if !errors.As(err, &de) {
		InternalError(c, fallback, requestID)
		return
	}

	switch {
	case domain.IsNotFound(err):
		NotFound(c, notFoundMessage(de), requestID)
	case domain.IsValidationError(err):
		ValidationError(c, de.Field, de.Message, requestID)
	case domain.IsConflict(err):
		Conflict(c, de.Field, de.Message, requestID)
	default:
		InternalError(c, fallback, requestID)
	}
}

func notFoundMessage(de *domain.DomainError) string {
	if de.Message == "" {
		return "Recurso não encontrado"
	}
	return de.Message + " não encontrado"
}
