package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/didley/decimal-input/pkg/binder"
	"github.com/didley/decimal-input/pkg/logger"
	"github.com/didley/decimal-input/pkg/requestid"
	"github.com/didley/decimal-input/pkg/validator"
)

// ErrorInfo is the client-facing classification of an error.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string][]string
}

// Classify maps err to a status and message. Validation failures are 422
// with per-field details, request decoding failures 400, HTTPError its own
// code. Anything else is a 500 whose message does not leak err.
func Classify(err error) ErrorInfo {
	if errs := validator.ExtractValidationErrors(err); errs != nil {
		return ErrorInfo{
			StatusCode: http.StatusUnprocessableEntity,
			Code:       "validation_error",
			Message:    "the request has invalid fields",
			Details:    errs.Map(),
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return ErrorInfo{StatusCode: httpErr.Code, Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	if errors.Is(err, binder.ErrFailedToParseQuery) || errors.Is(err, binder.ErrFailedToParseSignals) {
		return ErrorInfo{StatusCode: http.StatusBadRequest, Code: ErrBadRequest.Key, Message: err.Error()}
	}

	return ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrInternalServerError.Key,
		Message:    http.StatusText(http.StatusInternalServerError),
	}
}

// NewErrorHandler returns the default ErrorHandler. It logs through the
// context logger, client errors at warn and server errors at error, then
// answers datastar requests with an {"error": message} signal patch and
// everything else with a JSON error envelope.
func NewErrorHandler() ErrorHandler {
	return func(ctx Context, err error) {
		r := ctx.Request()
		info := Classify(err)

		level := slog.LevelError
		if info.StatusCode < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		ctx.Logger().LogAttrs(ctx, level, "request failed",
			logger.Component("handler"),
			logger.RequestID(requestid.FromContext(ctx)),
			logger.Error(err),
			slog.Int("status", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		var resp Response
		if IsDataStar(r) {
			resp = DataStar(map[string]any{"error": info.Message})
		} else {
			resp = JSONError(err)
		}
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			ctx.Logger().ErrorContext(ctx, "failed to render error response",
				logger.Component("handler"),
				logger.Error(renderErr),
			)
		}
	}
}
