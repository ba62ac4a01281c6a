package middleware

import "net/http"

// InjectWriter wraps the response writer in a SafeResponseWriter. It must be the
// outermost middleware so that LogRequest can read the status and size.
func InjectWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(NewSafeResponseWriter(r.Context(), w), r)
	})
}
