package web

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

// DecodeJSONResponse decodes the response body into a generic map, failing the test on error.
func DecodeJSONResponse(t *testing.T, res *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode json response: %v", err)
	}

	return body
}

func AssertContentType(t *testing.T, res *http.Response) {
	t.Helper()

	gotContent := res.Header.Get(HeaderContentType)
	if !strings.HasPrefix(gotContent, MimeJSON) {
		t.Errorf("res.Header.Get(%q) = %q, want: %q", HeaderContentType, gotContent, MimeJSON)
	}
}
