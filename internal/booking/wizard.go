package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/maison-lumiere/storefront/internal/catalog"
	"github.com/maison-lumiere/storefront/internal/showroom"
)

// Step is one stage of the booking flow. Steps are strictly ordered; Next is
// gated on the active step's required fields.
type Step int

const (
	StepSelectService Step = iota
	StepSelectLocation
	StepPickDateTime
	StepEnterInfo
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepSelectService:
		return "select_service"
	case StepSelectLocation:
		return "select_location"
	case StepPickDateTime:
		return "pick_date_time"
	case StepEnterInfo:
		return "enter_info"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// stepFields maps each step to the form fields that must validate before the
// customer may advance past it. The Review step has no fields of its own;
// Submit re-checks the whole form.
var stepFields = map[Step][]string{
	StepSelectService:  {"consultation_type"},
	StepSelectLocation: {"location"},
	StepPickDateTime:   {"date", "time_slot"},
	StepEnterInfo: {
		"first_name", "last_name", "email", "phone",
		"communication_type", "special_requests", "recurring_frequency",
	},
	StepReview: {},
}

// Result is the outcome of Submit. Failures are data, never panics: callers
// must check Success rather than expect an error path.
type Result struct {
	Success            bool    `json:"success"`
	ConfirmationNumber string  `json:"confirmation_number,omitempty"`
	CancellationToken  string  `json:"cancellation_token,omitempty"`
	TotalPrice         float64 `json:"total_price,omitempty"`
	Error              string  `json:"error,omitempty"`
}

// Wizard holds one customer's in-progress booking: current step, form values
// and the validation snapshot recomputed after every mutation. It is not safe
// for concurrent use; each customer session owns its own instance.
type Wizard struct {
	catalog   *catalog.Catalog
	directory *showroom.Directory
	pricing   PricingConfig
	checker   AvailabilityChecker
	now       func() time.Time

	step       Step
	form       FormData
	validation Validation
}

func NewWizard(cat *catalog.Catalog, dir *showroom.Directory, pricing PricingConfig, checker AvailabilityChecker) *Wizard {
	w := &Wizard{
		catalog:   cat,
		directory: dir,
		pricing:   pricing,
		checker:   checker,
		now:       time.Now,
	}
	w.revalidate()
	return w
}

// Restore rebuilds wizard state from a persisted session snapshot.
func (w *Wizard) Restore(step Step, form FormData) {
	if step < StepSelectService {
		step = StepSelectService
	}
	if step > StepReview {
		step = StepReview
	}
	w.step = step
	w.form = form
	w.revalidate()
}

func (w *Wizard) Step() Step             { return w.step }
func (w *Wizard) Form() FormData         { return w.form }
func (w *Wizard) Validation() Validation { return w.validation }

// Slots derives the bookable slots for the currently selected showroom and
// date. Recomputed fresh on every call; nothing is cached.
func (w *Wizard) Slots() []TimeSlot {
	loc, ok := w.directory.Location(w.form.Location)
	if !ok {
		return nil
	}
	date, err := time.Parse("2006-01-02", w.form.Date)
	if err != nil {
		return nil
	}
	return AvailableSlots(loc, date)
}

// Quote returns the current total price. The second return is false until
// both a consultation type and a showroom are selected.
func (w *Wizard) Quote() (float64, bool) {
	ct, ok := w.catalog.Consultation(w.form.ConsultationType)
	if !ok {
		return 0, false
	}
	loc, ok := w.directory.Location(w.form.Location)
	if !ok {
		return 0, false
	}
	return w.pricing.Quote(ct, loc, w.form.Recurring), true
}

// Apply merges a partial update into the form and recomputes full-form
// validation. Cross-field rules (recurring frequency) make per-field
// revalidation insufficient, so the whole form is always re-checked.
func (w *Wizard) Apply(p Patch) {
	w.form.apply(p)
	w.revalidate()
}

func (w *Wizard) SetConsultationType(id string) { w.Apply(Patch{ConsultationType: &id}) }
func (w *Wizard) SetLocation(id string)         { w.Apply(Patch{Location: &id}) }
func (w *Wizard) SetDate(isoDate string)        { w.Apply(Patch{Date: &isoDate}) }
func (w *Wizard) SetTimeSlot(id string)         { w.Apply(Patch{TimeSlot: &id}) }

// Next advances one step when the active step's required fields validate.
// It reports whether the step changed; at Review it is a no-op.
func (w *Wizard) Next() bool {
	if w.step >= StepReview {
		return false
	}
	if !w.StepValid(w.step) {
		return false
	}
	w.step++
	return true
}

// Previous steps back without clearing entered data; a no-op at the first
// step.
func (w *Wizard) Previous() bool {
	if w.step <= StepSelectService {
		return false
	}
	w.step--
	return true
}

// Reset returns the wizard to its initial state: step zero, empty form.
func (w *Wizard) Reset() {
	w.step = StepSelectService
	w.form = FormData{}
	w.revalidate()
}

// StepValid reports whether the given step's fields are free of validation
// errors.
func (w *Wizard) StepValid(s Step) bool {
	for _, field := range stepFields[s] {
		if _, bad := w.validation.Errors[field]; bad {
			return false
		}
	}
	return true
}

// Submit finalizes the booking. It re-validates the full form, asks the
// availability checker for a final verdict, and fabricates the confirmation
// identifiers. Wizard state is left intact on failure so the customer can
// correct the form or pick another slot.
func (w *Wizard) Submit(ctx context.Context) Result {
	w.revalidate()
	if !w.validation.IsValid {
		return Result{Success: false, Error: "the booking form is incomplete or invalid"}
	}

	loc, _ := w.directory.Location(w.form.Location)
	date, err := time.Parse("2006-01-02", w.form.Date)
	if err != nil {
		return Result{Success: false, Error: "invalid date"}
	}

	decision, err := w.checker.Check(ctx, loc, date, w.form.TimeSlot)
	if err != nil {
		return Result{Success: false, Error: "availability could not be confirmed, please try again"}
	}
	if !decision.Available {
		reason := decision.Reason
		if reason == "" {
			reason = "the selected time slot is no longer available"
		}
		return Result{Success: false, Error: reason}
	}

	total, ok := w.Quote()
	if !ok {
		return Result{Success: false, Error: "the booking form is incomplete or invalid"}
	}

	return Result{
		Success:            true,
		ConfirmationNumber: NewConfirmationNumber(w.now()),
		CancellationToken:  uuid.NewString(),
		TotalPrice:         total,
	}
}

func (w *Wizard) revalidate() {
	w.validation = Validate(w.form, w.catalog, w.directory, w.now())
}
