package apicontrollers

import (
	"net/http"

	"github.com/drujensen/chatkeeper/internal/domain/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"chat completion not found"`
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch err.(type) {
	case *errs.ValidationError:
		return http.StatusBadRequest
	case *errs.UnauthorizedError:
		return http.StatusUnauthorized
	case *errs.NotFoundError:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx echo.Context, logger *zap.Logger, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Error occurred", zap.String("path", ctx.Path()), zap.Error(err))
	} else {
		logger.Debug("Request rejected", zap.String("path", ctx.Path()), zap.Int("status", status), zap.Error(err))
	}
	return ctx.JSON(status, ErrorResponse{Error: err.Error()})
}

// bindPage reads the optional page and limit query parameters.
func bindPage(ctx echo.Context) (page, limit int, err error) {
	if bindErr := echo.QueryParamsBinder(ctx).
		Int("page", &page).
		Int("limit", &limit).
		BindError(); bindErr != nil {
		return 0, 0, errs.ValidationErrorf("page and limit must be integers")
	}
	return page, limit, nil
}
