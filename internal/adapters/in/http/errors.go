package http

import (
	"errors"
	"log/slog"
	"net/http"

	"parcel/internal/core/domain/model/booking"
	"parcel/internal/core/domain/model/pricing"
	"parcel/internal/core/domain/services"
	"parcel/internal/generated/servers"
	"parcel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Something went wrong, please try again later"

// statusFor maps a use case error onto an HTTP status. Lookups that miss and
// bookings hidden from the caller share 404 so existence is never confirmed.
func statusFor(err error) int {
	if status, ok := statusForAuth(err); ok {
		return status
	}

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrIllegalCancellation):
		return http.StatusConflict
	case errors.Is(err, pricing.ErrInvalidPricingInput),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error, status int) string {
	if status == http.StatusInternalServerError {
		return internalErrorMessage
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
		return http.StatusText(httpErr.Code)
	}
	return err.Error()
}

func writeError(ctx echo.Context, logger *slog.Logger, err error) error {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Request().URL.Path,
			"error", err,
		)
	}

	if ctx.Request().Method == http.MethodHead {
		return ctx.NoContent(status)
	}
	return ctx.JSON(status, servers.ApiResponse{
		Success: false,
		Message: messageFor(err, status),
	})
}

// ErrorHandler renders errors that escape handlers and middleware, binding
// failures and unknown routes included, in the response envelope.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}
		if writeErr := writeError(ctx, logger, err); writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
