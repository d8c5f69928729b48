package middleware

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/notifyhub/regionhealth/internal/api/handler"
)

// Recoverer turns a handler panic into a JSON 500 and logs the panic value
// with its stack through zap. Mount it inside RequestLogger so the recovered
// 500 is also logged as a request line.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// net/http uses this to abort a response; let it through.
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.Error("handler panic",
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("correlation_id", GetCorrelationID(r.Context())),
					zap.Stack("stack"),
				)

				handler.InternalError(w, r)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
