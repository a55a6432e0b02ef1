package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. Server errors are
// logged at error level, everything else at info.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		recorder := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(recorder, r)

		status := recorder.status
		if status == 0 {
			// nothing was written, net/http answers 200
			status = http.StatusOK
		}

		level := zerolog.InfoLevel
		if status >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		logger.FromRequest(r).WithLevel(level).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Int("size", recorder.size).
			Dur("duration", time.Since(started)).
			Str("remote_addr", r.RemoteAddr).
			Msg("request served")
	})
}
