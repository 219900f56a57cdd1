package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	f := Filter{
		Category:    strings.TrimSpace(q.Get("category")),
		Material:    strings.TrimSpace(q.Get("material")),
		Gemstone:    strings.TrimSpace(q.Get("gemstone")),
		InStockOnly: q.Get("in_stock") == "true",
		Sort:        strings.TrimSpace(q.Get("sort")),
	}
	if v := strings.TrimSpace(q.Get("min_price")); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 {
			http.Error(w, "invalid min_price", http.StatusBadRequest)
			return
		}
		f.MinPrice = p
	}
	if v := strings.TrimSpace(q.Get("max_price")); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 {
			http.Error(w, "invalid max_price", http.StatusBadRequest)
			return
		}
		f.MaxPrice = p
	}
	if v := strings.TrimSpace(q.Get("page")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		f.Page = n
	}
	if v := strings.TrimSpace(q.Get("page_size")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "invalid page_size", http.StatusBadRequest)
			return
		}
		f.PageSize = n
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.catalog.Search(f))
}

func (h *Handler) Consultations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.catalog.Consultations())
}
