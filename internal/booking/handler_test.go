package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maison-lumiere/storefront/internal/catalog"
	"github.com/maison-lumiere/storefront/internal/showroom"
)

type recordingPublisher struct {
	types []string
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, _ string, _ any) error {
	p.types = append(p.types, eventType)
	return nil
}

type recordingNotifier struct {
	bookings []Booking
}

func (n *recordingNotifier) BookingConfirmed(_ context.Context, b Booking, _ showroom.Location, _ catalog.ConsultationType) {
	n.bookings = append(n.bookings, b)
}

func newTestHandler(checker AvailabilityChecker) (*Handler, *recordingPublisher, *recordingNotifier) {
	if checker == nil {
		checker = GridChecker{}
	}
	pub := &recordingPublisher{}
	not := &recordingNotifier{}
	h := NewHandler(catalog.Default(), showroom.Default(), DefaultPricing(), checker, NewRegistry(), pub, not, slog.Default())
	return h, pub, not
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw)))
	return rec
}

func TestSlotsEndpoint(t *testing.T) {
	h, _, _ := newTestHandler(nil)

	rec := httptest.NewRecorder()
	h.Slots(rec, httptest.NewRequest(http.MethodGet, "/api/v1/public/slots?location_id=flagship-rue-royale&date="+dateOn(time.Thursday), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp slotsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Slots) != 10 {
		t.Fatalf("expected 10 slots, got %d", len(resp.Slots))
	}

	// Closed day answers an empty list, not an error.
	rec = httptest.NewRecorder()
	h.Slots(rec, httptest.NewRequest(http.MethodGet, "/api/v1/public/slots?location_id=flagship-rue-royale&date="+dateOn(time.Monday), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for closed day, got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Slots) != 0 {
		t.Fatalf("expected no slots on a closed day, got %d", len(resp.Slots))
	}
}

func TestSlotsEndpointBadRequests(t *testing.T) {
	h, _, _ := newTestHandler(nil)

	rec := httptest.NewRecorder()
	h.Slots(rec, httptest.NewRequest(http.MethodGet, "/api/v1/public/slots", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing params, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Slots(rec, httptest.NewRequest(http.MethodGet, "/api/v1/public/slots?location_id=nowhere&date=2026-09-10", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown showroom, got %d", rec.Code)
	}
}

func TestBookEndToEnd(t *testing.T) {
	h, pub, not := newTestHandler(nil)
	form := validForm(t)
	form.Notifications = NotificationPrefs{Email: true}

	rec := postJSON(t, h.Book, "/api/v1/public/book", form)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp bookResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !resp.Success || resp.ConfirmationNumber == "" {
		t.Fatalf("unexpected result: %+v", resp.Result)
	}
	if resp.TotalPrice != 165.00 {
		t.Fatalf("expected 165.00, got %v", resp.TotalPrice)
	}

	if len(pub.types) != 1 || pub.types[0] != "storefront.booking.confirmed.v1" {
		t.Fatalf("expected one confirmed event, got %v", pub.types)
	}
	if len(not.bookings) != 1 {
		t.Fatalf("expected one notification, got %d", len(not.bookings))
	}

	// The confirmation is immediately visible through lookup.
	lookup := httptest.NewRecorder()
	h.Lookup(lookup, httptest.NewRequest(http.MethodGet, "/api/v1/public/bookings?confirmation_number="+resp.ConfirmationNumber, nil))
	if lookup.Code != http.StatusOK {
		t.Fatalf("expected 200 lookup, got %d", lookup.Code)
	}
}

func TestBookRejectsInvalidForm(t *testing.T) {
	h, pub, _ := newTestHandler(nil)
	form := validForm(t)
	form.Email = "not-an-email"

	rec := postJSON(t, h.Book, "/api/v1/public/book", form)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp bookResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Validation == nil || resp.Validation.Errors["email"] == "" {
		t.Fatalf("expected email validation error, got %+v", resp.Validation)
	}
	if len(pub.types) != 0 {
		t.Fatalf("no event should be published on validation failure, got %v", pub.types)
	}
}

func TestBookSlotConflict(t *testing.T) {
	taken := CheckerFunc(func(context.Context, showroom.Location, time.Time, string) (Decision, error) {
		return Decision{Available: false, Reason: "the selected time slot is no longer available"}, nil
	})
	h, pub, _ := newTestHandler(taken)

	rec := postJSON(t, h.Book, "/api/v1/public/book", validForm(t))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var resp bookResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Success || resp.Error == "" {
		t.Fatalf("expected failure-as-data, got %+v", resp.Result)
	}
	if len(pub.types) != 0 {
		t.Fatalf("no event on conflict, got %v", pub.types)
	}
}

func TestCancelFlow(t *testing.T) {
	h, pub, _ := newTestHandler(nil)

	rec := postJSON(t, h.Book, "/api/v1/public/book", validForm(t))
	var created bookResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	// Wrong token is refused.
	rec = postJSON(t, h.Cancel, "/api/v1/public/bookings/cancel", cancelRequest{
		ConfirmationNumber: created.ConfirmationNumber,
		CancellationToken:  "wrong",
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for bad token, got %d", rec.Code)
	}

	rec = postJSON(t, h.Cancel, "/api/v1/public/bookings/cancel", cancelRequest{
		ConfirmationNumber: created.ConfirmationNumber,
		CancellationToken:  created.CancellationToken,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var cancelled Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &cancelled); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if cancelled.Status != StatusCancelled || cancelled.CancelledAt == nil {
		t.Fatalf("unexpected cancel state: %+v", cancelled)
	}

	if len(pub.types) != 2 || pub.types[1] != "storefront.booking.cancelled.v1" {
		t.Fatalf("expected cancelled event, got %v", pub.types)
	}

	// Unknown confirmation number.
	rec = postJSON(t, h.Cancel, "/api/v1/public/bookings/cancel", cancelRequest{
		ConfirmationNumber: "LUM-000000-XXXX",
		CancellationToken:  "tok",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
