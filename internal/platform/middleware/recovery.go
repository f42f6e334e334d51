package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"onboarding/internal/platform/logger"
)

const panicBody = `{"error":"internal server error"}` + "\n"

// Recovery turns a handler panic into a 500 with the JSON error envelope.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func Recovery(fallback logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.FromContextOr(r.Context(), fallback).Error("Recovered from panic",
					logger.String("method", r.Method),
					logger.String("path", r.URL.Path),
					logger.String("panic", fmt.Sprint(rec)),
					logger.String("stack", string(debug.Stack())),
				)

				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(panicBody))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
