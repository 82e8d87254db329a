package utils

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
)

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
	KindForbidden  ErrorKind = "forbidden"
	KindInternal   ErrorKind = "internal"
)

// AppError carries the error taxonomy business code returns to handlers.
// Validation, not-found, conflict and forbidden messages are safe to
// surface verbatim; internal errors are logged and masked.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error // wrapped cause, internal only
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func ValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func ConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func ForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func InternalErrorf(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// RespondError maps an error onto the response envelope. Anything
// outside the taxonomy is treated as internal: logged with detail,
// surfaced as a generic failure.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		TrackError("internal", "unclassified")
		InternalError(c, "Something went wrong")
		return
	}

	switch appErr.Kind {
	case KindValidation:
		BadRequest(c, appErr.Message)
	case KindNotFound:
		NotFound(c, appErr.Message)
	case KindConflict:
		Conflict(c, appErr.Message)
	case KindForbidden:
		Forbidden(c, appErr.Message)
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
		TrackError("internal", "handler")
		InternalError(c, "Something went wrong")
	}
}
