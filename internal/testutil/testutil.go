// Package testutil holds request helpers and fixtures shared by the
// HTTP-facing tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"catalogapi/internal/entity"
)

var TestAuthor = entity.Author{ID: 1, Name: "Ursula K. Le Guin"}

var TestPublisher = entity.Publisher{ID: 1, Name: "Harper Voyager"}

var TestBook = entity.Book{
	ID:        1,
	Title:     "The Dispossessed",
	ISBN:      "978-0061054884",
	Year:      1974,
	Authors:   []entity.Author{TestAuthor},
	Publisher: TestPublisher,
}

// NewRequest builds a test request, JSON-encoding body when non-nil.
func NewRequest(method, path string, body any) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	bodyBytes, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// DecodeJSON parses a recorded JSON body into out.
func DecodeJSON(t interface{ Fatalf(format string, args ...any) }, rec *httptest.ResponseRecorder, out any) {
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
