package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// InternalErrorMessage - текст ответа при панике обработчика
const InternalErrorMessage = "Internal server error"

// Recoverer перехватывает панику, пишет стек в лог и отвечает JSON 500
func Recoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				logger.Error("Panic recovered",
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rvr),
					zap.ByteString("stack", debug.Stack()),
				)

				writeJSONError(logger, w, http.StatusInternalServerError, InternalErrorMessage)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
