package booking

import (
	"errors"
	"sync"
	"time"
)

// Booking statuses.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

var (
	ErrNotFound = errors.New("booking not found")
	ErrBadToken = errors.New("cancellation token does not match")
)

// Booking is an issued confirmation. The registry is deliberately in-memory
// only: the storefront fabricates confirmations, it is not a reservation
// system of record.
type Booking struct {
	ConfirmationNumber string    `json:"confirmation_number"`
	CancellationToken  string    `json:"-"`
	Form               FormData  `json:"form"`
	TotalPrice         float64   `json:"total_price"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
}

// Registry keeps issued confirmations for lookup and token-checked
// cancellation.
type Registry struct {
	mu       sync.Mutex
	bookings map[string]*Booking
}

func NewRegistry() *Registry {
	return &Registry{bookings: map[string]*Booking{}}
}

func (r *Registry) Add(b Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := b
	r.bookings[b.ConfirmationNumber] = &stored
}

func (r *Registry) Get(confirmationNumber string) (Booking, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[confirmationNumber]
	if !ok {
		return Booking{}, false
	}
	return *b, true
}

// Cancel marks a booking cancelled when the token matches. Cancelling an
// already-cancelled booking is idempotent.
func (r *Registry) Cancel(confirmationNumber, token string, now time.Time) (Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[confirmationNumber]
	if !ok {
		return Booking{}, ErrNotFound
	}
	if b.CancellationToken != token {
		return Booking{}, ErrBadToken
	}
	if b.Status != StatusCancelled {
		b.Status = StatusCancelled
		at := now.UTC()
		b.CancelledAt = &at
	}
	return *b, nil
}
