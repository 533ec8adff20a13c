package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// LoggerMiddleware создает middleware для логирования запросов и ответов
func LoggerMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Обертка для ResponseWriter, чтобы отслеживать статус и размер
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := []zap.Field{
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Duration("latency", time.Since(start)),
				zap.Int("status", status),
				zap.Int("size", ww.BytesWritten()),
			}

			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("Request processed", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("Request processed", fields...)
			default:
				logger.Info("Request processed", fields...)
			}
		})
	}
}
