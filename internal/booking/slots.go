package booking

import (
	"time"

	"github.com/maison-lumiere/storefront/internal/showroom"
)

// SlotMinutes is the uniform slot granularity across the whole catalog.
const SlotMinutes = 60

// Day-part buckets used when presenting slots. Boundaries are exact:
// morning < 12:00 <= afternoon < 17:00 <= evening.
const (
	PeriodMorning   = "morning"
	PeriodAfternoon = "afternoon"
	PeriodEvening   = "evening"
)

// TimeSlot is a discrete bookable interval derived from a showroom's hours
// for one date. Every synthesized slot is available: no capacity or conflict
// tracking is modeled here.
type TimeSlot struct {
	ID        string `json:"id"`
	Start     string `json:"start"` // local clock, 15:04
	End       string `json:"end"`
	Available bool   `json:"available"`
	Period    string `json:"period"`
}

// AvailableSlots derives the bookable slots for a showroom on a date. A
// closed or missing weekday row yields nil.
func AvailableSlots(loc showroom.Location, date time.Time) []TimeSlot {
	hours, ok := loc.HoursOn(date.Weekday())
	if !ok || hours.Closed {
		return nil
	}

	open, err := parseClock(hours.Open)
	if err != nil {
		return nil
	}
	close, err := parseClock(hours.Close)
	if err != nil || !close.After(open) {
		return nil
	}

	slotLen := SlotMinutes * time.Minute
	day := date.Format("2006-01-02")

	var slots []TimeSlot
	for t := open; !t.Add(slotLen).After(close); t = t.Add(slotLen) {
		start := t.Format("15:04")
		slots = append(slots, TimeSlot{
			ID:        day + "-" + t.Format("1504"),
			Start:     start,
			End:       t.Add(slotLen).Format("15:04"),
			Available: true,
			Period:    PeriodOf(t.Hour()),
		})
	}
	return slots
}

// PeriodOf buckets a starting hour into a day part.
func PeriodOf(hour int) string {
	switch {
	case hour < 12:
		return PeriodMorning
	case hour < 17:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// GroupSlots splits slots into day-part buckets preserving order.
func GroupSlots(slots []TimeSlot) map[string][]TimeSlot {
	out := map[string][]TimeSlot{}
	for _, s := range slots {
		out[s.Period] = append(out[s.Period], s)
	}
	return out
}

func findSlot(slots []TimeSlot, id string) (TimeSlot, bool) {
	for _, s := range slots {
		if s.ID == id {
			return s, true
		}
	}
	return TimeSlot{}, false
}

func parseClock(s string) (time.Time, error) {
	return time.Parse("15:04", s)
}
