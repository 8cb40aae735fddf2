// internal/catalog/handler.go
package catalog

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	service    Service
	collection string
}

func NewHandler(service Service, collection string) *Handler {
	if collection == "" {
		collection = DefaultCollection
	}
	return &Handler{service: service, collection: collection}
}

// documentItem is an Item as it appears in a catalog document. Prices are JSON numbers there,
// while decimal.Decimal marshals to a quoted string.
type documentItem struct {
	ID          ItemID      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Color       string      `json:"color"`
	Image       string      `json:"image"`
	Price       json.Number `json:"price"`
}

func toDocument(items []Item) []documentItem {
	out := make([]documentItem, 0, len(items))
	for _, item := range items {
		out = append(out, documentItem{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Color:       item.Color,
			Image:       item.Image,
			Price:       json.Number(item.Price.String()),
		})
	}
	return out
}

// HandleDocument serves the loaded catalog in the same shape it was read from.
func (h *Handler) HandleDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if digest := h.service.Digest(); digest != "" {
		etag := `"` + digest + `"`
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]documentItem{h.collection: toDocument(h.service.Items())})
}
