package middleware

import (
	"errors"
	"net/http"

	"github.com/ferdiebergado/templat/internal/pkg/message"
	"github.com/ferdiebergado/templat/internal/pkg/web"
	"github.com/ferdiebergado/templat/internal/platform/validation"
)

var errInvalidInput = errors.New("payload failed validation")

// ValidateInput validates the T stored by DecodePayload. Field errors are returned
// to the client with status 422.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.RespondBadRequest(w, err, message.InvalidInput, nil)
				return
			}

			if errs := validator.ValidateStruct(params); len(errs) > 0 {
				web.RespondUnprocessableEntity(w, errInvalidInput, message.InvalidInput, errs)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
