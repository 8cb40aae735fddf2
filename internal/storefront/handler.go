// internal/storefront/handler.go
package storefront

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/cart"
	"storefront/internal/catalog"
)

const sessionCookie = "storefront_session"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Handler renders the storefront views and accepts the four cart actions.
// Every render emits fresh action forms, so there is nothing to re-bind on the client.
type Handler struct {
	registry *Registry
	catalog  catalog.Service
	logger   *zap.Logger
}

func NewHandler(registry *Registry, svc catalog.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{registry: registry, catalog: svc, logger: logger}
}

func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "page", h.session(w, r).Views())
}

func (h *Handler) HandleCatalogFragment(w http.ResponseWriter, r *http.Request) {
	h.render(w, "catalog", h.session(w, r).Views().Catalog)
}

func (h *Handler) HandleCartFragment(w http.ResponseWriter, r *http.Request) {
	h.render(w, "cart", h.session(w, r).Views().Cart)
}

func (h *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	action, err := ParseAction(chi.URLParam(r, "action"), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess := h.session(w, r)
	if _, err := sess.Dispatch(r.Context(), action); err != nil {
		h.logger.Info("cart action rejected",
			zap.Stringer("session_id", sess.ID),
			zap.String("action", string(action.Kind)),
			zap.Int("item_id", int(action.ItemID)),
			zap.Error(err),
		)
		switch {
		case errors.Is(err, cart.ErrUnknownItem), errors.Is(err, cart.ErrNotInCart):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, cart.ErrAlreadyInCart):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"items":  len(h.catalog.Items()),
	})
}

// session returns the caller's session, creating one and setting the cookie if needed.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) *Session {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			if s, ok := h.registry.Get(id); ok {
				return s
			}
		}
	}

	s := h.registry.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.ID.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s
}

// render executes into a buffer first so a template failure never leaves a half-written page.
func (h *Handler) render(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("render failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
