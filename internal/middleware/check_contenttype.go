package middleware

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/ferdiebergado/templat/internal/pkg/message"
	"github.com/ferdiebergado/templat/internal/pkg/web"
)

// CheckContentType rejects requests with a body that is not JSON.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get(web.HeaderContentType)
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != web.MimeJSON {
			web.RespondUnsupportedMediaType(w, fmt.Errorf("invalid content-type: %q", contentType), message.InvalidInput, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
