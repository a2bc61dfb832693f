package http

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// basePath prefixes every resource route.
const basePath = "/api/v1"

// Handler is a resource controller. Handle reports whether it claimed
// the request; an unclaimed request is offered to the next controller.
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request) bool
}

// Router offers each request to its controllers in registration order.
// The first one to claim it wins; if none does, the router answers 404
// with an empty body. The controller list is fixed at construction.
type Router struct {
	handlers []Handler
	log      zerolog.Logger
}

func NewRouter(log zerolog.Logger, handlers ...Handler) *Router {
	return &Router{
		handlers: handlers,
		log:      log.With().Str("component", "Router").Logger(),
	}
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for _, h := range rt.handlers {
		if h.Handle(w, r) {
			return
		}
	}
	rt.log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("no controller claimed the request")
	writeNotFound(w)
}

// resourceRest strips basePath and the resource segment from path.
// It reports false when the path does not belong to the resource; the
// remainder is "" for collection routes or starts with "/" for item
// routes.
func resourceRest(path, resource string) (string, bool) {
	prefix := basePath + "/" + resource
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	rest := strings.TrimPrefix(path, prefix)
	if rest != "" && !strings.HasPrefix(rest, "/") {
		return "", false
	}
	return rest, true
}

// pathParts splits the remainder into non-empty segments, so both
// "/12" and "/12/" yield one part.
func pathParts(rest string) []string {
	parts := make([]string, 0, 2)
	for _, p := range strings.Split(rest, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
