package booking

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// WizardHandler exposes the step-by-step booking flow over HTTP. Each client
// holds a session id; the wizard itself is rebuilt from the stored snapshot
// on every request, mutated, and saved back.
type WizardHandler struct {
	booking  *Handler
	sessions SessionStore
	logger   *slog.Logger
}

func NewWizardHandler(booking *Handler, sessions SessionStore, logger *slog.Logger) *WizardHandler {
	return &WizardHandler{booking: booking, sessions: sessions, logger: logger}
}

type wizardView struct {
	SessionID  string     `json:"session_id"`
	Step       int        `json:"step"`
	StepName   string     `json:"step_name"`
	Form       FormData   `json:"form"`
	Validation Validation `json:"validation"`
	Slots      []TimeSlot `json:"slots,omitempty"`
	TotalPrice *float64   `json:"total_price,omitempty"`
}

func (h *WizardHandler) view(id string, w *Wizard) wizardView {
	v := wizardView{
		SessionID:  id,
		Step:       int(w.Step()),
		StepName:   w.Step().String(),
		Form:       w.Form(),
		Validation: w.Validation(),
		Slots:      w.Slots(),
	}
	if total, ok := w.Quote(); ok {
		v.TotalPrice = &total
	}
	return v
}

func (h *WizardHandler) newWizard() *Wizard {
	return NewWizard(h.booking.catalog, h.booking.directory, h.booking.pricing, h.booking.checker)
}

// Create starts a fresh wizard session.
func (h *WizardHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := uuid.NewString()
	wiz := h.newWizard()
	if err := h.saveSession(r, id, wiz); err != nil {
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(h.view(id, wiz))
}

// Get returns the current session state.
func (h *WizardHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimSpace(r.URL.Query().Get("session_id"))
	if id == "" {
		http.Error(w, "session_id required", http.StatusBadRequest)
		return
	}
	wiz, ok := h.loadSession(w, r, id)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.view(id, wiz))
}

type fieldsRequest struct {
	SessionID string `json:"session_id"`
	Fields    Patch  `json:"fields"`
}

// Fields applies a partial form update and returns the refreshed view.
func (h *WizardHandler) Fields(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req fieldsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	wiz, ok := h.loadSession(w, r, strings.TrimSpace(req.SessionID))
	if !ok {
		return
	}

	wiz.Apply(req.Fields)
	if err := h.saveSession(r, req.SessionID, wiz); err != nil {
		http.Error(w, "failed to save session", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.view(req.SessionID, wiz))
}

type sessionRequest struct {
	SessionID string `json:"session_id"`
}

// Next advances the wizard when the active step validates. A gated step
// answers 200 with the unchanged view so clients render the field errors.
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(wiz *Wizard) { wiz.Next() })
}

func (h *WizardHandler) Previous(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(wiz *Wizard) { wiz.Previous() })
}

func (h *WizardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(wiz *Wizard) { wiz.Reset() })
}

func (h *WizardHandler) transition(w http.ResponseWriter, r *http.Request, step func(*Wizard)) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	wiz, ok := h.loadSession(w, r, strings.TrimSpace(req.SessionID))
	if !ok {
		return
	}

	step(wiz)
	if err := h.saveSession(r, req.SessionID, wiz); err != nil {
		http.Error(w, "failed to save session", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.view(req.SessionID, wiz))
}

// Submit finalizes the session's booking. The session is discarded on
// success and kept on failure so the customer can correct the form.
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	wiz, ok := h.loadSession(w, r, strings.TrimSpace(req.SessionID))
	if !ok {
		return
	}

	res := wiz.Submit(r.Context())
	if !res.Success {
		v := wiz.Validation()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(bookResponse{Result: res, Validation: &v})
		return
	}

	h.booking.finalize(r.Context(), wiz.Form(), res)
	if err := h.sessions.Delete(r.Context(), req.SessionID); err != nil {
		h.logger.Warn("session delete failed", "err", err, "session_id", req.SessionID)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(bookResponse{Result: res})
}

func (h *WizardHandler) loadSession(w http.ResponseWriter, r *http.Request, id string) (*Wizard, bool) {
	if id == "" {
		http.Error(w, "session_id required", http.StatusBadRequest)
		return nil, false
	}
	s, ok, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("session load failed", "err", err, "session_id", id)
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return nil, false
	}
	if !ok {
		http.Error(w, "session not found or expired", http.StatusNotFound)
		return nil, false
	}
	wiz := h.newWizard()
	wiz.Restore(s.Step, s.Form)
	return wiz, true
}

func (h *WizardHandler) saveSession(r *http.Request, id string, wiz *Wizard) error {
	return h.sessions.Save(r.Context(), Session{
		ID:   id,
		Step: wiz.Step(),
		Form: wiz.Form(),
	})
}
