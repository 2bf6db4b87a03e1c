// Package models contains data structures for the application's domain models.
package models

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Error codes for the application error taxonomy. Every code maps
// deterministically to one HTTP status and one response shape in
// RespondWithError.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeDuplicateEmail = "DUPLICATE_EMAIL"
	CodeNotFound       = "NOT_FOUND"
	CodeProfileMissing = "PROFILE_MISSING"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeAlreadyLiked   = "ALREADY_LIKED"
	CodeNotLiked       = "NOT_LIKED"
	CodeUpstream       = "UPSTREAM_ERROR"
	CodeInternal       = "INTERNAL_ERROR"
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	// Msgs holds per-field validation messages; only validation errors use it.
	Msgs []string
	Err  error
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

// HTTPStatus returns the HTTP status this error maps to.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CodeValidation, CodeDuplicateEmail, CodeAlreadyLiked, CodeNotLiked, CodeProfileMissing:
		return fiber.StatusBadRequest
	case CodeUnauthorized, CodeForbidden:
		return fiber.StatusUnauthorized
	case CodeNotFound, CodeUpstream:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Predefined error constructors

func NewValidationError(msgs ...string) *AppError {
	msg := "Invalid request"
	if len(msgs) > 0 {
		msg = msgs[0]
	}
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Msgs:    msgs,
	}
}

func NewDuplicateEmailError() *AppError {
	return &AppError{
		Code:    CodeDuplicateEmail,
		Message: "User already exists",
	}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: message,
	}
}

// NewProfileMissingError reports the absence of a profile for an existing
// user. Unlike other lookups this is a 400, not a 404; clients rely on the
// distinction to route to the create-profile flow.
func NewProfileMissingError() *AppError {
	return &AppError{
		Code:    CodeProfileMissing,
		Message: "There is no profile for this user",
	}
}

func NewUnauthorizedError() *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: "User not authorized",
	}
}

func NewForbiddenError() *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: "User not authorized",
	}
}

func NewAlreadyLikedError() *AppError {
	return &AppError{
		Code:    CodeAlreadyLiked,
		Message: "Post already liked",
	}
}

func NewNotLikedError() *AppError {
	return &AppError{
		Code:    CodeNotLiked,
		Message: "Post has not yet been liked",
	}
}

func NewUpstreamError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeUpstream,
		Message: message,
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Server Error",
		Err:     err,
	}
}

type errorItem struct {
	Msg string `json:"msg"`
}

// RespondWithError writes the standardized JSON error response for err.
// Validation-class errors produce {"errors":[{"msg":...}]}; everything else
// produces {"msg":...}. Internal details are logged, never serialized.
func RespondWithError(c *fiber.Ctx, err error) error {
	appErr, ok := err.(*AppError)
	if !ok {
		appErr = NewInternalError(err)
	}

	if appErr.Code == CodeInternal {
		slog.ErrorContext(c.UserContext(), "request error",
			slog.String("code", appErr.Code),
			slog.String("error", appErr.Error()),
		)
	}

	switch appErr.Code {
	case CodeValidation:
		items := make([]errorItem, 0, len(appErr.Msgs))
		for _, m := range appErr.Msgs {
			items = append(items, errorItem{Msg: m})
		}
		if len(items) == 0 {
			items = append(items, errorItem{Msg: appErr.Message})
		}
		return c.Status(appErr.HTTPStatus()).JSON(fiber.Map{"errors": items})
	case CodeDuplicateEmail:
		return c.Status(appErr.HTTPStatus()).JSON(fiber.Map{
			"errors": []errorItem{{Msg: appErr.Message}},
		})
	default:
		return c.Status(appErr.HTTPStatus()).JSON(fiber.Map{"msg": appErr.Message})
	}
}
