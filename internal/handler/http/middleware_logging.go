package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/project-elevate/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request. Server errors are
// logged at error level, everything else at info.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		status := lw.status
		if !lw.wroteHeader {
			status = http.StatusOK
		}

		level := zerolog.InfoLevel
		if status >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		logger.FromRequest(r).WithLevel(level).
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
