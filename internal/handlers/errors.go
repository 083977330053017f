package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fiscal_balance/internal/apperrors"
	"github.com/SscSPs/fiscal_balance/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Error codes returned in the "code" field of error bodies.
const (
	CodeValidation            = "VALIDATION"
	CodeBadRequest            = "BAD_REQUEST"
	CodeNotFound              = "NOT_FOUND"
	CodeConflict              = "CONFLICT"
	CodeDuplicate             = "DUPLICATE"
	CodeAlreadyReversed       = "ALREADY_REVERSED"
	CodeCannotReverseReversal = "CANNOT_REVERSE_REVERSAL"
	CodeConcurrencyConflict   = "CONCURRENCY_CONFLICT"
	CodeForbidden             = "FORBIDDEN"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeInternal              = "INTERNAL"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ValidationErrorResponse is returned with 422 when a journal breaks a ledger rule.
// Rule, LegIndex and Field repeat the first violation.
type ValidationErrorResponse struct {
	Error      string                `json:"error"`
	Code       string                `json:"code"`
	Rule       string                `json:"rule"`
	LegIndex   int                   `json:"legIndex"`
	Field      string                `json:"field,omitempty"`
	Violations []apperrors.Violation `json:"violations"`
}

// FieldError describes one binding tag failure.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

// BindingErrorResponse is returned with 400 when the request body or query cannot be bound.
type BindingErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []FieldError `json:"fields,omitempty"`
}

// respondBindingError answers a failed ShouldBind* call.
func respondBindingError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))

	res := BindingErrorResponse{Error: "Invalid request: " + err.Error(), Code: CodeBadRequest}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		res.Error = "Invalid request"
		res.Code = CodeValidation
		for _, fe := range verrs {
			res.Fields = append(res.Fields, FieldError{Field: fe.Field(), Tag: fe.Tag()})
		}
	}
	c.JSON(http.StatusBadRequest, res)
}

// respondError maps service errors onto HTTP responses. Checks run from the
// most specific sentinel to the most general one.
func respondError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("action", action))

	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		first := verr.First()
		logger.Warn("Journal rejected", slog.String("rule", string(first.Rule)), slog.Int("leg_index", first.LegIndex))
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Error:      verr.Error(),
			Code:       CodeValidation,
			Rule:       string(first.Rule),
			LegIndex:   first.LegIndex,
			Field:      first.Field,
			Violations: verr.Violations,
		})
		return
	}

	status, code := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", slog.String("error", msg))
		msg = "Failed to " + action
	} else {
		logger.Warn("Request rejected", slog.String("error", msg), slog.Int("status", status))
	}
	c.JSON(status, ErrorResponse{Error: msg, Code: code})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrAlreadyReversed):
		return http.StatusConflict, CodeAlreadyReversed
	case errors.Is(err, apperrors.ErrCannotReverseReversal):
		return http.StatusConflict, CodeCannotReverseReversal
	case errors.Is(err, apperrors.ErrConcurrencyConflict):
		return http.StatusConflict, CodeConcurrencyConflict
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, CodeValidation
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, CodeDuplicate
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, CodeConflict
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, CodeForbidden
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, CodeUnauthorized
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// requireUserID reads the authenticated user or answers 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok || userID == "" {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized", Code: CodeUnauthorized})
		return "", false
	}
	return userID, true
}
