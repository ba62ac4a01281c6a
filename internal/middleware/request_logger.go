package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// LogRequest logs every request once it has been served. An X-Request-ID is assigned
// when the client did not send one and echoed back in the response.
func LogRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, requestID)

		next.ServeHTTP(w, r)

		attrs := []any{
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.String(),
			"proto", r.Proto,
			"ip", getIPAddress(r),
			"user_agent", r.UserAgent(),
			"duration", time.Since(start),
		}
		if writer, ok := w.(*SafeResponseWriter); ok {
			attrs = append(attrs,
				slog.Int("status_code", writer.Status()),
				slog.Int("bytes", writer.BytesWritten()),
			)
		}

		slog.Info("Request served.", attrs...)
	})
}

// getIPAddress extracts the client's IP address from the request.
func getIPAddress(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}
