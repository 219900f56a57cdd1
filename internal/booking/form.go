// Package booking implements the appointment flow: form validation, price
// quoting, availability derivation and the five-step wizard the storefront
// drives on behalf of its clients.
package booking

// Communication preferences for the appointment itself.
const (
	CommunicationInPerson = "in-person"
	CommunicationVideo    = "video"
	CommunicationPhone    = "phone"
)

// Recurrence frequencies. A recurring booking is a form flag only; no
// recurrence engine exists behind it.
const (
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

const maxSpecialRequestsLen = 500

// NotificationPrefs records which confirmation channels the customer opted
// into.
type NotificationPrefs struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

// FormData is the in-progress reservation request. It is built up field by
// field as the customer moves through the wizard and discarded after
// submission or reset; it is never persisted.
type FormData struct {
	FirstName          string            `json:"first_name"`
	LastName           string            `json:"last_name"`
	Email              string            `json:"email"`
	Phone              string            `json:"phone"`
	ConsultationType   string            `json:"consultation_type"`
	Location           string            `json:"location"`
	Date               string            `json:"date"` // ISO date, e.g. 2026-09-14
	TimeSlot           string            `json:"time_slot"`
	CommunicationType  string            `json:"communication_type"`
	SpecialRequests    string            `json:"special_requests"`
	Recurring          bool              `json:"recurring"`
	RecurringFrequency string            `json:"recurring_frequency"`
	Notifications      NotificationPrefs `json:"notifications"`
}

// Patch is a partial form update: nil fields are left untouched. This is the
// wire shape of the wizard's field-update operation.
type Patch struct {
	FirstName          *string `json:"first_name"`
	LastName           *string `json:"last_name"`
	Email              *string `json:"email"`
	Phone              *string `json:"phone"`
	ConsultationType   *string `json:"consultation_type"`
	Location           *string `json:"location"`
	Date               *string `json:"date"`
	TimeSlot           *string `json:"time_slot"`
	CommunicationType  *string `json:"communication_type"`
	SpecialRequests    *string `json:"special_requests"`
	Recurring          *bool   `json:"recurring"`
	RecurringFrequency *string `json:"recurring_frequency"`
	NotifyEmail        *bool   `json:"notify_email"`
	NotifySMS          *bool   `json:"notify_sms"`
}

func (f *FormData) apply(p Patch) {
	if p.FirstName != nil {
		f.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		f.LastName = *p.LastName
	}
	if p.Email != nil {
		f.Email = *p.Email
	}
	if p.Phone != nil {
		f.Phone = *p.Phone
	}
	if p.ConsultationType != nil {
		f.ConsultationType = *p.ConsultationType
	}
	if p.Location != nil {
		f.Location = *p.Location
	}
	if p.Date != nil {
		f.Date = *p.Date
	}
	if p.TimeSlot != nil {
		f.TimeSlot = *p.TimeSlot
	}
	if p.CommunicationType != nil {
		f.CommunicationType = *p.CommunicationType
	}
	if p.SpecialRequests != nil {
		f.SpecialRequests = *p.SpecialRequests
	}
	if p.Recurring != nil {
		f.Recurring = *p.Recurring
	}
	if p.RecurringFrequency != nil {
		f.RecurringFrequency = *p.RecurringFrequency
	}
	if p.NotifyEmail != nil {
		f.Notifications.Email = *p.NotifyEmail
	}
	if p.NotifySMS != nil {
		f.Notifications.SMS = *p.NotifySMS
	}
}
