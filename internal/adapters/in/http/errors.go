package http

import (
	"errors"
	"net/http"

	"foodservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps domain errors to HTTP status codes. Validation
// failures are client errors, missing objects are 404, authorization
// failures 403 and violated business preconditions 412. Anything
// unrecognized is a 500 with a generic message so internals never leak.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondErrorCode(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondErrorCode(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return respondErrorCode(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrPreconditionFailed):
		return respondErrorCode(ctx, http.StatusPreconditionFailed, err.Error())
	default:
		return respondErrorCode(ctx, http.StatusInternalServerError, "internal error")
	}
}

func respondErrorCode(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
