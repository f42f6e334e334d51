package http

import (
	"errors"
	"net/http"

	"onboarding/internal/adapters/http/response"
	httpErrors "onboarding/internal/platform/http"
	"onboarding/internal/platform/logger"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

var errInternal = errors.New("internal server error")

// ErrorHandler renders the error a handler returns. Only *httpErrors.Error
// reaches the client verbatim; anything else is logged and becomes a bare 500.
func ErrorHandler(next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		log := logger.FromContext(r.Context()).With(
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
		)

		var httpErr *httpErrors.Error
		if !errors.As(err, &httpErr) {
			log.Error("Unexpected server error",
				logger.String("remote_addr", r.RemoteAddr),
				logger.Error(err))
			response.RespondError(w, http.StatusInternalServerError, errInternal)
			return
		}

		status := httpErrors.StatusOf(httpErr)
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", logger.String("code", httpErr.Code), logger.Error(err))
		} else {
			log.Debug("Request rejected", logger.String("code", httpErr.Code), logger.Int("status", status))
		}
		response.RespondCodedError(w, status, httpErr.Code, httpErr)
	}
}
