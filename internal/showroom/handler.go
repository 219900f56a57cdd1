package showroom

import (
	"encoding/json"
	"net/http"
	"strings"
)

type Handler struct {
	directory *Directory
}

func NewHandler(d *Directory) *Handler {
	return &Handler{directory: d}
}

// List serves all showrooms, or a single one when ?id= is present.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if id := strings.TrimSpace(r.URL.Query().Get("id")); id != "" {
		loc, ok := h.directory.Location(id)
		if !ok {
			http.Error(w, "showroom not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(loc)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.directory.Locations())
}
