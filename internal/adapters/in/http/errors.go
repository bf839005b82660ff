package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error codes of the {code, message, details} response body.
const (
	CodeForbiddenRole     = "FORBIDDEN_ROLE"
	CodeForbiddenOwner    = "FORBIDDEN_OWNER"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeUnverifiedFarmer  = "UNVERIFIED_FARMER"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeValidationFailed  = "VALIDATION_FAILED"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeTooManyRequests   = "TOO_MANY_REQUESTS"
	CodeStorageFailure    = "STORAGE_FAILURE"
	CodeInternal          = "INTERNAL_ERROR"
)

const internalMessage = "Internal server error"

// classify maps a use case error to its HTTP status and response body. Storage
// failures never leak their cause.
func classify(err error) (int, servers.Error) {
	var (
		forbiddenRole *user.ForbiddenRoleError
		notFound      *errs.ObjectNotFoundError
		insufficient  *product.InsufficientStockError
		transition    *order.InvalidTransitionError
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.Is(err, errs.ErrStorageFailure):
		return http.StatusInternalServerError, servers.Error{Code: CodeStorageFailure, Message: internalMessage}

	case errors.As(err, &forbiddenRole):
		return http.StatusForbidden, servers.Error{
			Code:    CodeForbiddenRole,
			Message: "Your role does not allow this action",
			Details: &map[string]interface{}{"role": forbiddenRole.Role.String(), "action": forbiddenRole.Action},
		}

	case errors.Is(err, services.ErrForbiddenOwner):
		return http.StatusForbidden, servers.Error{Code: CodeForbiddenOwner, Message: "You do not own this product"}

	case errors.Is(err, services.ErrAccessDenied):
		return http.StatusForbidden, servers.Error{Code: CodeForbidden, Message: "Access denied"}

	case errors.As(err, &notFound):
		return http.StatusNotFound, servers.Error{
			Code:    CodeNotFound,
			Message: capitalize(notFound.ParamName) + " not found",
			Details: &map[string]interface{}{"id": notFound.ID},
		}

	case errors.Is(err, user.ErrFarmerIsNotVerified):
		return http.StatusBadRequest, servers.Error{Code: CodeUnverifiedFarmer, Message: "Farmer is not verified"}

	case errors.As(err, &insufficient):
		return http.StatusConflict, servers.Error{
			Code:    CodeInsufficientStock,
			Message: "Insufficient stock",
			Details: &map[string]interface{}{"available": insufficient.Available, "requested": insufficient.Requested},
		}

	case errors.As(err, &transition):
		return http.StatusConflict, servers.Error{
			Code:    CodeInvalidTransition,
			Message: "Invalid status transition",
			Details: &map[string]interface{}{
				"current":   transition.Current.String(),
				"requested": transition.Requested.String(),
			},
		}

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, servers.Error{Code: CodeValidationFailed, Message: err.Error()}

	case errors.As(err, &httpErr):
		return httpErr.Code, servers.Error{Code: codeForStatus(httpErr.Code), Message: messageOf(httpErr)}

	default:
		return http.StatusInternalServerError, servers.Error{Code: CodeInternal, Message: internalMessage}
	}
}

func (s *Server) respondError(ctx echo.Context, err error) error {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}
	return ctx.JSON(status, body)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: CodeValidationFailed, Message: message})
}

// ErrorHandler renders errors that escape handlers and middleware (unknown routes,
// binding failures, panics recovered by echo) in the API error format.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}
		status, body := classify(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Unhandled error", "path", ctx.Path(), "error", err)
		}
		if ctx.Request().Method == http.MethodHead {
			_ = ctx.NoContent(status)
			return
		}
		_ = ctx.JSON(status, body)
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeValidationFailed
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusTooManyRequests:
		return CodeTooManyRequests
	default:
		if status >= http.StatusInternalServerError {
			return CodeInternal
		}
		return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	}
}

func messageOf(he *echo.HTTPError) string {
	if msg, ok := he.Message.(string); ok {
		return msg
	}
	return http.StatusText(he.Code)
}

func capitalize(s string) string {
	if s == "" {
		return "Resource"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
