package handler

import (
	"errors"

	"github.com/loadouthq/setups/internal/model"
	"github.com/loadouthq/setups/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// Every handler funnels failures through here so status codes stay
// consistent and unexpected errors never leak internals to the client.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotSetupOwner):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrSetupNotFound):
		return model.NewNotFoundError("setup")

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrTitleRequired):
		return model.NewValidationError([]model.FieldError{{Field: "title", Message: "required"}})
	case errors.Is(err, service.ErrTitleTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "title", Message: "exceeds maximum length"}})
	case errors.Is(err, service.ErrDescriptionTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "description", Message: "exceeds maximum length"}})
	case errors.Is(err, service.ErrCategoryTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "category", Message: "exceeds maximum length"}})
	case errors.Is(err, service.ErrTooManyTags):
		return model.NewValidationError([]model.FieldError{{Field: "tags", Message: "too many tags"}})

	// ===== Everything Else → 500 =====
	default:
		return model.NewInternalError("")
	}
}
