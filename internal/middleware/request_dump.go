package middleware

import (
	"bytes"
	"net/http"
	"time"

	"flightcal/server/internal/logging"
)

type respLogger struct {
	http.ResponseWriter
	status int
	buf    *bytes.Buffer
}

func (l *respLogger) WriteHeader(code int) {
	l.status = code
	l.ResponseWriter.WriteHeader(code)
}

func (l *respLogger) Write(b []byte) (int, error) {
	l.buf.Write(b)
	return l.ResponseWriter.Write(b)
}

// RequestDumpMiddleware logs request headers and the full response body at debug level.
// Only mounted when DEBUG is set.
func RequestDumpMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logging.WithRequest(GetRequestID(r.Context()), r.URL.Path)

		headers := make(map[string][]string, len(r.Header))
		for name, vals := range r.Header {
			headers[name] = vals
		}
		log.Debugw("→ request", "method", r.Method, "url", r.URL.String(), "headers", headers)

		buf := &bytes.Buffer{}
		lw := &respLogger{ResponseWriter: w, status: http.StatusOK, buf: buf}

		start := time.Now()
		next.ServeHTTP(lw, r)

		log.Debugw("← response",
			"status_code", lw.status,
			"status", http.StatusText(lw.status),
			"duration", time.Since(start).String(),
			"body", buf.String(),
		)
	})
}
