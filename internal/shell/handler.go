package shell

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ashramdev/sangha/pkg/response"
)

// Handler serves the shell's rendered module pages
type Handler struct {
	registry *Registry
}

// NewHandler creates a new shell handler over a registry
func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

// Routes returns the router for the app shell
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Index)
	r.Get("/{module}", h.Activate)

	return r
}

// Index redirects to the first registered module
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	names := h.registry.Names()
	if len(names) == 0 {
		response.NotFound(w, "No modules registered")
		return
	}
	http.Redirect(w, r, "/app/"+names[0], http.StatusFound)
}

// Activate handles GET /app/{module}: switches the active module and
// returns its markup wrapped in the shell chrome
func (h *Handler) Activate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "module")

	markup, err := h.registry.Activate(name)
	if err != nil {
		if errors.Is(err, ErrUnknownModule) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to render module")
		return
	}

	var b strings.Builder
	b.WriteString(`<!doctype html><html><head><meta charset="utf-8"><title>Ashram Sangha</title></head><body>`)
	b.WriteString(`<nav class="shell-nav">`)
	for _, n := range h.registry.Names() {
		class := ""
		if n == name {
			class = ` class="active"`
		}
		fmt.Fprintf(&b, `<a href="/app/%s"%s>%s</a>`, html.EscapeString(n), class, html.EscapeString(n))
	}
	b.WriteString(`</nav><main>`)
	b.WriteString(markup)
	b.WriteString(`</main></body></html>`)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(b.String()))
}
