package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/askaround/internal/logger"
	"go.uber.org/zap"
)

const (
	requestIDHeader   = "X-Request-ID"
	maxRequestIDBytes = 64
)

// LoggingMiddleware tags every request with an id, taken from X-Request-ID when
// the caller sent a usable one, and echoes it back. Downstream code logs through
// logger.FromContext so its lines carry the same id. One line is written per
// request once the response is done.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := requestID(r)
			start := time.Now()

			reqLog := log.With("request_id", reqID)
			r = r.WithContext(logger.WithContext(r.Context(), reqLog))
			w.Header().Set(requestIDHeader, reqID)

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			fields := []any{
				"method", r.Method,
				"uri", r.RequestURI,
				"remote_addr", r.RemoteAddr,
				"status", rw.statusCode,
				"response_size", rw.size,
				"duration", time.Since(start),
			}
			if rw.statusCode >= http.StatusInternalServerError {
				reqLog.Warnw("request", fields...)
				return
			}
			reqLog.Infow("request", fields...)
		})
	}
}

func requestID(r *http.Request) string {
	id := strings.TrimSpace(r.Header.Get(requestIDHeader))
	if id == "" || len(id) > maxRequestIDBytes || strings.ContainsAny(id, "\r\n") {
		return uuid.New().String()
	}
	return id
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
