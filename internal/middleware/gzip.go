package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// GzipMiddleware распаковывает тела запросов с Content-Encoding: gzip
// и сжимает ответы для клиентов, принимающих gzip.
// Сжатие начинается с первой записи ответа: если обработчик ничего не записал
// (например, упал с паникой), ответ остается незафиксированным.
func GzipMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				if r.Body == nil || r.Body == http.NoBody {
					writeJSONError(logger, w, http.StatusBadRequest, "Empty request body")
					return
				}

				gz, err := gzip.NewReader(r.Body)
				if err != nil {
					logger.Warn("Invalid gzip request body", zap.String("path", r.URL.Path), zap.Error(err))
					writeJSONError(logger, w, http.StatusBadRequest, "Invalid gzip body")
					return
				}
				defer gz.Close()

				r.Body = gz
				r.Header.Del("Content-Encoding")
				r.Header.Del("Content-Length")
				r.ContentLength = -1
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Accept-Encoding")

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer func() {
				if err := gw.close(); err != nil {
					logger.Error("Error closing gzip writer", zap.Error(err))
				}
			}()

			next.ServeHTTP(gw, r)
		})
	}
}

// gzipResponseWriter сжимает тело ответа; gzip-поток создается лениво
type gzipResponseWriter struct {
	http.ResponseWriter
	writer      *gzip.Writer
	wroteHeader bool
	compress    bool
}

// WriteHeader выставляет Content-Encoding для ответов, у которых есть тело
func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if bodyAllowed(statusCode) {
		w.compress = true
		h := w.ResponseWriter.Header()
		h.Del("Content-Length")
		h.Set("Content-Encoding", "gzip")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write записывает данные в сжатый поток
func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if !w.compress {
		return w.ResponseWriter.Write(b)
	}
	return w.gzipWriter().Write(b)
}

func (w *gzipResponseWriter) gzipWriter() *gzip.Writer {
	if w.writer == nil {
		w.writer = gzipWriterPool.Get().(*gzip.Writer)
		w.writer.Reset(w.ResponseWriter)
	}
	return w.writer
}

// close завершает gzip-поток, если ответ был начат; пустое тело
// со сжатием все равно получает корректный gzip-поток
func (w *gzipResponseWriter) close() error {
	if !w.compress {
		return nil
	}
	gz := w.gzipWriter()
	err := gz.Close()
	gzipWriterPool.Put(gz)
	w.writer = nil
	return err
}

func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status < 200:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}
