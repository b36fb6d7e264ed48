package service

import (
	"errors"

	"github.com/sangkips/fiscal-console/internal/domain/fiscal"
	"github.com/sangkips/fiscal-console/internal/infrastructure/printservice"
	"github.com/sangkips/fiscal-console/pkg/apperror"
)

// validationError turns a failed validation into a 422 listing every field.
func validationError(r fiscal.ValidationResult) *apperror.AppError {
	fields := r.Fields()
	fieldErrors := make([]apperror.FieldError, len(fields))
	for i, f := range fields {
		fieldErrors[i] = apperror.FieldError{Field: f, Message: r.Errors[f]}
	}
	return apperror.NewValidationError(fiscal.MsgBlocking, fieldErrors)
}

// printServiceError maps a print service failure onto an AppError. Requests
// the service rejected keep its status and detail; anything else is a 502.
func printServiceError(err error) *apperror.AppError {
	var apiErr *printservice.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return apperror.NewAppError(apiErr.Status, apiErr.Detail)
	}
	if errors.As(err, &apiErr) {
		return apperror.NewBadGatewayError(apiErr.Detail)
	}
	if errors.Is(err, printservice.ErrUnavailable) {
		return apperror.ErrUpstreamDown
	}
	return apperror.NewBadGatewayError(err.Error())
}
