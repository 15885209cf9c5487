package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequestLogger логирует каждый запрос и проставляет X-Request-ID
func RequestLogger(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, reqID)

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			logger.Info("%s %s - status=%d, duration_ms=%d, request_id=%s, remote=%s",
				r.Method, r.URL.Path, rec.status, time.Since(start).Milliseconds(), reqID, r.RemoteAddr)
		})
	}
}
