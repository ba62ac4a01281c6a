package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/ferdiebergado/templat/internal/pkg/message"
	"github.com/ferdiebergado/templat/internal/pkg/web"
)

const unknownFieldPrefix = "json: unknown field "

var errTrailingData = errors.New("request body holds more than one json value")

// DecodePayload decodes a single JSON value of type T from the request body, at most
// maxBytes long, and stores it in the request context for ParamsFromContext.
func DecodePayload[T any](maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes))
			decoder.DisallowUnknownFields()

			var params T
			if err := decoder.Decode(&params); err != nil {
				failDecode(w, err)
				return
			}

			if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
				web.RespondBadRequest(w, errTrailingData, message.InvalidInput, nil)
				return
			}

			ctx := web.NewContextWithParams(r.Context(), params)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func failDecode(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		web.RespondRequestEntityTooLarge(w, err, message.InvalidInput, nil)
		return
	}

	if field, ok := strings.CutPrefix(err.Error(), unknownFieldPrefix); ok {
		web.RespondUnprocessableEntity(w, err, "Unknown field in payload.", map[string]string{
			"field": strings.Trim(field, `"`),
		})
		return
	}

	web.RespondBadRequest(w, err, message.InvalidInput, nil)
}
