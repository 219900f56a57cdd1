package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/maison-lumiere/storefront/internal/catalog"
	"github.com/maison-lumiere/storefront/internal/showroom"
)

// validForm builds a complete, valid booking for the flagship showroom on
// its next open Thursday.
func validForm(t *testing.T) FormData {
	t.Helper()
	date := dateOn(time.Thursday)
	loc := mustLocation(t, "flagship-rue-royale")
	parsed, _ := time.Parse("2006-01-02", date)
	slots := AvailableSlots(loc, parsed)
	if len(slots) == 0 {
		t.Fatal("expected slots on an open Thursday")
	}
	return FormData{
		FirstName:         "Claire",
		LastName:          "Dubois",
		Email:             "claire.dubois@example.com",
		Phone:             "+33 1 42 60 00 12",
		ConsultationType:  "custom-design",
		Location:          "flagship-rue-royale",
		Date:              date,
		TimeSlot:          slots[0].ID,
		CommunicationType: CommunicationInPerson,
	}
}

func runValidate(form FormData) Validation {
	return Validate(form, catalog.Default(), showroom.Default(), time.Now())
}

func TestValidateCompleteForm(t *testing.T) {
	v := runValidate(validForm(t))
	if !v.IsValid {
		t.Fatalf("expected valid form, got errors: %v", v.Errors)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	v := runValidate(FormData{})
	if v.IsValid {
		t.Fatal("empty form must be invalid")
	}
	required := []string{
		"first_name", "last_name", "email", "phone",
		"consultation_type", "location", "date", "time_slot", "communication_type",
	}
	for _, field := range required {
		if v.Errors[field] == "" {
			t.Errorf("expected an error for missing %q", field)
		}
	}
}

func TestValidateEachRequiredFieldIndependently(t *testing.T) {
	clear := func(f *FormData, field string) {
		switch field {
		case "first_name":
			f.FirstName = ""
		case "last_name":
			f.LastName = ""
		case "email":
			f.Email = ""
		case "phone":
			f.Phone = ""
		case "consultation_type":
			f.ConsultationType = ""
		case "location":
			f.Location = ""
		case "date":
			f.Date = ""
		case "time_slot":
			f.TimeSlot = ""
		case "communication_type":
			f.CommunicationType = ""
		}
	}
	for _, field := range []string{
		"first_name", "last_name", "email", "phone",
		"consultation_type", "location", "date", "time_slot", "communication_type",
	} {
		form := validForm(t)
		clear(&form, field)
		v := runValidate(form)
		if v.IsValid {
			t.Errorf("form missing %q should be invalid", field)
		}
		if v.Errors[field] == "" {
			t.Errorf("expected error keyed by %q, got %v", field, v.Errors)
		}
	}
}

func TestValidateEmailFormats(t *testing.T) {
	form := validForm(t)
	form.Email = "not-an-email"
	if v := runValidate(form); v.Errors["email"] == "" {
		t.Fatal("expected email error for malformed address")
	}
	form.Email = "a@b.com"
	if v := runValidate(form); v.Errors["email"] != "" {
		t.Fatalf("expected no email error, got %q", v.Errors["email"])
	}
}

func TestValidateDateWindow(t *testing.T) {
	form := validForm(t)

	form.Date = time.Now().Format("2006-01-02") // today: too soon
	if v := runValidate(form); v.Errors["date"] == "" {
		t.Fatal("expected date error for today")
	}

	form.Date = time.Now().AddDate(0, 0, BookableDays+10).Format("2006-01-02")
	if v := runValidate(form); v.Errors["date"] == "" {
		t.Fatal("expected date error past the window")
	}

	form.Date = "not-a-date"
	if v := runValidate(form); v.Errors["date"] == "" {
		t.Fatal("expected date error for unparseable input")
	}
}

func TestValidateClosedDay(t *testing.T) {
	form := validForm(t)
	form.Date = dateOn(time.Monday) // flagship is closed Mondays
	v := runValidate(form)
	if v.Errors["date"] == "" {
		t.Fatal("expected date error for a closed weekday")
	}

	loc := mustLocation(t, "flagship-rue-royale")
	parsed, _ := time.Parse("2006-01-02", form.Date)
	if got := AvailableSlots(loc, parsed); len(got) != 0 {
		t.Fatalf("closed day should derive no slots, got %d", len(got))
	}
}

func TestValidateSpecialRequestsCap(t *testing.T) {
	form := validForm(t)
	form.SpecialRequests = strings.Repeat("x", 500)
	if v := runValidate(form); v.Errors["special_requests"] != "" {
		t.Fatal("500 characters should be accepted")
	}
	form.SpecialRequests = strings.Repeat("x", 501)
	if v := runValidate(form); v.Errors["special_requests"] == "" {
		t.Fatal("501 characters should be rejected")
	}
}

func TestValidateRecurringFrequency(t *testing.T) {
	form := validForm(t)

	// Not recurring: frequency not required.
	if v := runValidate(form); v.Errors["recurring_frequency"] != "" {
		t.Fatal("frequency must not be required when not recurring")
	}

	form.Recurring = true
	if v := runValidate(form); v.Errors["recurring_frequency"] == "" {
		t.Fatal("frequency required when recurring")
	}

	form.RecurringFrequency = FrequencyMonthly
	if v := runValidate(form); v.Errors["recurring_frequency"] != "" {
		t.Fatal("monthly frequency should be accepted")
	}

	form.RecurringFrequency = "fortnightly"
	if v := runValidate(form); v.Errors["recurring_frequency"] == "" {
		t.Fatal("unknown frequency should be rejected")
	}
}

func TestValidateUnknownSelections(t *testing.T) {
	form := validForm(t)
	form.ConsultationType = "tarot-reading"
	form.Location = "atlantis"
	v := runValidate(form)
	if v.Errors["consultation_type"] == "" || v.Errors["location"] == "" {
		t.Fatalf("expected unknown-id errors, got %v", v.Errors)
	}
}
