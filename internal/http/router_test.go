package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type stubHandler struct {
	claims bool
	called int
	status int
}

func (s *stubHandler) Handle(w http.ResponseWriter, r *http.Request) bool {
	s.called++
	if !s.claims {
		return false
	}
	w.WriteHeader(s.status)
	return true
}

func TestRouterFirstMatchWins(t *testing.T) {
	first := &stubHandler{claims: true, status: http.StatusOK}
	second := &stubHandler{claims: true, status: http.StatusTeapot}
	router := NewRouter(zerolog.Nop(), first, second)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/book", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, first.called)
	assert.Equal(t, 0, second.called)
}

func TestRouterOffersUnclaimedToNext(t *testing.T) {
	first := &stubHandler{claims: false}
	second := &stubHandler{claims: true, status: http.StatusOK}
	router := NewRouter(zerolog.Nop(), first, second)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/author", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, first.called)
	assert.Equal(t, 1, second.called)
}

func TestRouterUnclaimedIs404EmptyBody(t *testing.T) {
	router := NewRouter(zerolog.Nop(), &stubHandler{claims: false})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/magazine", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestResourceRest(t *testing.T) {
	tests := []struct {
		path     string
		resource string
		rest     string
		ok       bool
	}{
		{"/api/v1/book", "book", "", true},
		{"/api/v1/book/", "book", "/", true},
		{"/api/v1/book/12", "book", "/12", true},
		{"/api/v1/books", "book", "", false},
		{"/api/v1/author", "book", "", false},
		{"/book", "book", "", false},
	}
	for _, tt := range tests {
		rest, ok := resourceRest(tt.path, tt.resource)
		assert.Equal(t, tt.ok, ok, tt.path)
		if ok {
			assert.Equal(t, tt.rest, rest, tt.path)
		}
	}
}

func TestPathParts(t *testing.T) {
	assert.Empty(t, pathParts(""))
	assert.Empty(t, pathParts("/"))
	assert.Equal(t, []string{"12"}, pathParts("/12"))
	assert.Equal(t, []string{"12"}, pathParts("/12/"))
	assert.Equal(t, []string{"12", "extra"}, pathParts("/12/extra"))
}
