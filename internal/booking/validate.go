package booking

import (
	"strings"
	"time"

	"github.com/maison-lumiere/storefront/internal/catalog"
	"github.com/maison-lumiere/storefront/internal/showroom"
	"github.com/maison-lumiere/storefront/internal/validate"
)

// BookableDays is the forward booking window: appointments may be requested
// from tomorrow through this many days out.
const BookableDays = 60

// Validation is a computed snapshot of the whole form. It is recomputed from
// scratch after every mutation; nothing is cached between edits.
type Validation struct {
	IsValid bool              `json:"is_valid"`
	Errors  map[string]string `json:"errors"`
}

// Validate checks every field independently; no rule short-circuits another
// except recurring_frequency, which is only required while recurring is set.
// Error keys are the form's wire field names.
func Validate(form FormData, cat *catalog.Catalog, dir *showroom.Directory, now time.Time) Validation {
	errs := map[string]string{}

	if !validate.Name(form.FirstName) {
		errs["first_name"] = "first name must be at least 2 characters"
	}
	if !validate.Name(form.LastName) {
		errs["last_name"] = "last name must be at least 2 characters"
	}
	if !validate.Email(form.Email) {
		errs["email"] = "a valid email address is required"
	}
	if !validate.Phone(form.Phone) {
		errs["phone"] = "a valid phone number is required"
	}

	if strings.TrimSpace(form.ConsultationType) == "" {
		errs["consultation_type"] = "select a consultation type"
	} else if _, ok := cat.Consultation(form.ConsultationType); !ok {
		errs["consultation_type"] = "unknown consultation type"
	}

	loc, haveLocation := dir.Location(form.Location)
	if strings.TrimSpace(form.Location) == "" {
		errs["location"] = "select a showroom"
	} else if !haveLocation {
		errs["location"] = "unknown showroom"
	}

	if strings.TrimSpace(form.TimeSlot) == "" {
		errs["time_slot"] = "select a time slot"
	}

	switch form.CommunicationType {
	case CommunicationInPerson, CommunicationVideo, CommunicationPhone:
	case "":
		errs["communication_type"] = "select how you would like to meet"
	default:
		errs["communication_type"] = "invalid communication preference"
	}

	if msg := validateDate(form.Date, loc, haveLocation, now); msg != "" {
		errs["date"] = msg
	}

	if len(form.SpecialRequests) > maxSpecialRequestsLen {
		errs["special_requests"] = "special requests must be 500 characters or fewer"
	}

	if form.Recurring {
		switch form.RecurringFrequency {
		case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		case "":
			errs["recurring_frequency"] = "select a frequency for recurring appointments"
		default:
			errs["recurring_frequency"] = "invalid recurring frequency"
		}
	}

	return Validation{IsValid: len(errs) == 0, Errors: errs}
}

func validateDate(raw string, loc showroom.Location, haveLocation bool, now time.Time) string {
	if strings.TrimSpace(raw) == "" {
		return "select a date"
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return "invalid date"
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	earliest := today.AddDate(0, 0, 1)
	latest := today.AddDate(0, 0, BookableDays)
	if date.Before(earliest) || date.After(latest) {
		return "date must be between tomorrow and 60 days from now"
	}

	// Availability is only checkable once a showroom is chosen; the location
	// rule reports that gap on its own field.
	if haveLocation && len(AvailableSlots(loc, date)) == 0 {
		return "the selected showroom is closed on that date"
	}
	return ""
}
