package showroom

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/maison-lumiere/storefront/internal/events"
	"github.com/maison-lumiere/storefront/internal/validate"
)

const maxContactMessageLen = 2000

type contactRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	LocationID string `json:"location_id"`
	Message    string `json:"message"`
}

type eventPublisher interface {
	Publish(ctx context.Context, eventType string, aggregateID string, payload any) error
}

// ContactHandler accepts storefront contact-form submissions and forwards
// them as domain events; there is no inbox storage in this service.
type ContactHandler struct {
	directory *Directory
	publisher eventPublisher
	logger    *slog.Logger
}

func NewContactHandler(d *Directory, publisher eventPublisher, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{directory: d, publisher: publisher, logger: logger}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	req.LocationID = strings.TrimSpace(req.LocationID)

	fieldErrors := map[string]string{}
	if !validate.Name(req.Name) {
		fieldErrors["name"] = "name must be at least 2 characters"
	}
	if !validate.Email(req.Email) {
		fieldErrors["email"] = "a valid email address is required"
	}
	if req.Message == "" {
		fieldErrors["message"] = "message is required"
	} else if len(req.Message) > maxContactMessageLen {
		fieldErrors["message"] = "message must be 2000 characters or fewer"
	}
	if req.LocationID != "" {
		if _, ok := h.directory.Location(req.LocationID); !ok {
			fieldErrors["location_id"] = "unknown showroom"
		}
	}
	if len(fieldErrors) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{"errors": fieldErrors})
		return
	}

	if err := h.publisher.Publish(r.Context(), events.TypeContactReceived, req.Email, map[string]any{
		"name":        req.Name,
		"email":       req.Email,
		"phone":       strings.TrimSpace(req.Phone),
		"location_id": req.LocationID,
		"message":     req.Message,
		"received_at": time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		h.logger.Error("contact event publish failed", "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "received"})
}
