package booking

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/maison-lumiere/storefront/internal/catalog"
	"github.com/maison-lumiere/storefront/internal/events"
	"github.com/maison-lumiere/storefront/internal/showroom"
)

type eventPublisher interface {
	Publish(ctx context.Context, eventType string, aggregateID string, payload any) error
}

// Notifier delivers booking confirmations over the channels the customer
// opted into. Implementations live outside this package.
type Notifier interface {
	BookingConfirmed(ctx context.Context, b Booking, loc showroom.Location, ct catalog.ConsultationType)
}

// Handler serves the public booking API: slot listings, one-shot booking,
// lookup and cancellation.
type Handler struct {
	catalog   *catalog.Catalog
	directory *showroom.Directory
	pricing   PricingConfig
	checker   AvailabilityChecker
	registry  *Registry
	publisher eventPublisher
	notifier  Notifier
	logger    *slog.Logger
}

func NewHandler(cat *catalog.Catalog, dir *showroom.Directory, pricing PricingConfig, checker AvailabilityChecker, registry *Registry, publisher eventPublisher, notifier Notifier, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:   cat,
		directory: dir,
		pricing:   pricing,
		checker:   checker,
		registry:  registry,
		publisher: publisher,
		notifier:  notifier,
		logger:    logger,
	}
}

type slotsResponse struct {
	LocationID string                `json:"location_id"`
	Date       string                `json:"date"`
	Slots      []TimeSlot            `json:"slots"`
	Grouped    map[string][]TimeSlot `json:"grouped"`
}

func (h *Handler) Slots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	locationID := strings.TrimSpace(r.URL.Query().Get("location_id"))
	dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
	if locationID == "" || dateStr == "" {
		http.Error(w, "location_id and date are required", http.StatusBadRequest)
		return
	}
	loc, ok := h.directory.Location(locationID)
	if !ok {
		http.Error(w, "showroom not found", http.StatusNotFound)
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	slots := AvailableSlots(loc, date)
	if slots == nil {
		slots = []TimeSlot{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(slotsResponse{
		LocationID: locationID,
		Date:       dateStr,
		Slots:      slots,
		Grouped:    GroupSlots(slots),
	})
}

type bookResponse struct {
	Result
	Validation *Validation `json:"validation,omitempty"`
}

// Book is the one-shot path: a complete form in a single request. The wizard
// session API covers the step-by-step flow; both end in the same Submit.
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var form FormData
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}

	wiz := NewWizard(h.catalog, h.directory, h.pricing, h.checker)
	wiz.Restore(StepReview, form)

	if v := wiz.Validation(); !v.IsValid {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(bookResponse{
			Result:     Result{Success: false, Error: "the booking form is incomplete or invalid"},
			Validation: &v,
		})
		return
	}

	res := wiz.Submit(r.Context())
	if !res.Success {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(bookResponse{Result: res})
		return
	}

	h.finalize(r.Context(), form, res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(bookResponse{Result: res})
}

// finalize records the confirmation and fans out events and notifications.
// Shared by the one-shot and wizard-session paths.
func (h *Handler) finalize(ctx context.Context, form FormData, res Result) {
	b := Booking{
		ConfirmationNumber: res.ConfirmationNumber,
		CancellationToken:  res.CancellationToken,
		Form:               form,
		TotalPrice:         res.TotalPrice,
		Status:             StatusConfirmed,
		CreatedAt:          time.Now().UTC(),
	}
	h.registry.Add(b)

	if err := h.publisher.Publish(ctx, events.TypeBookingConfirmed, res.ConfirmationNumber, map[string]any{
		"confirmation_number": res.ConfirmationNumber,
		"consultation_type":   form.ConsultationType,
		"location_id":         form.Location,
		"date":                form.Date,
		"time_slot":           form.TimeSlot,
		"customer_email":      form.Email,
		"customer_phone":      form.Phone,
		"total_price":         res.TotalPrice,
		"recurring":           form.Recurring,
		"confirmed_at":        b.CreatedAt.Format(time.RFC3339),
	}); err != nil {
		h.logger.Error("booking event publish failed", "err", err, "confirmation", res.ConfirmationNumber)
	}

	if h.notifier != nil {
		loc, _ := h.directory.Location(form.Location)
		ct, _ := h.catalog.Consultation(form.ConsultationType)
		h.notifier.BookingConfirmed(ctx, b, loc, ct)
	}
}

func (h *Handler) Lookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	confirmation := strings.TrimSpace(r.URL.Query().Get("confirmation_number"))
	if confirmation == "" {
		http.Error(w, "confirmation_number required", http.StatusBadRequest)
		return
	}
	b, ok := h.registry.Get(confirmation)
	if !ok {
		http.Error(w, "booking not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(b)
}

type cancelRequest struct {
	ConfirmationNumber string `json:"confirmation_number"`
	CancellationToken  string `json:"cancellation_token"`
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.ConfirmationNumber = strings.TrimSpace(req.ConfirmationNumber)
	req.CancellationToken = strings.TrimSpace(req.CancellationToken)
	if req.ConfirmationNumber == "" || req.CancellationToken == "" {
		http.Error(w, "confirmation_number and cancellation_token required", http.StatusBadRequest)
		return
	}

	b, err := h.registry.Cancel(req.ConfirmationNumber, req.CancellationToken, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, "booking not found", http.StatusNotFound)
		case errors.Is(err, ErrBadToken):
			http.Error(w, "cancellation token does not match", http.StatusForbidden)
		default:
			http.Error(w, "failed to cancel booking", http.StatusInternalServerError)
		}
		return
	}

	if err := h.publisher.Publish(r.Context(), events.TypeBookingCancelled, b.ConfirmationNumber, map[string]any{
		"confirmation_number": b.ConfirmationNumber,
		"location_id":         b.Form.Location,
		"date":                b.Form.Date,
		"time_slot":           b.Form.TimeSlot,
		"cancelled_at":        b.CancelledAt.Format(time.RFC3339),
	}); err != nil {
		h.logger.Error("cancel event publish failed", "err", err, "confirmation", b.ConfirmationNumber)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(b)
}
