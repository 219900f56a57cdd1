package booking

import (
	"testing"
	"time"

	"github.com/maison-lumiere/storefront/internal/showroom"
)

// dateOn returns the first date at least one day out that falls on the given
// weekday, formatted as the booking flow expects. Always inside the bookable
// window.
func dateOn(day time.Weekday) string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func mustLocation(t *testing.T, id string) showroom.Location {
	t.Helper()
	loc, ok := showroom.Default().Location(id)
	if !ok {
		t.Fatalf("location %s missing from directory", id)
	}
	return loc
}

func TestAvailableSlotsGrid(t *testing.T) {
	loc := mustLocation(t, "flagship-rue-royale")
	date, _ := time.Parse("2006-01-02", dateOn(time.Thursday))

	slots := AvailableSlots(loc, date)
	// Thursday 10:00-20:00 with 60-minute slots: 10 slots, last starting 19:00.
	if len(slots) != 10 {
		t.Fatalf("expected 10 slots, got %d", len(slots))
	}
	if slots[0].Start != "10:00" || slots[0].End != "11:00" {
		t.Fatalf("unexpected first slot: %+v", slots[0])
	}
	last := slots[len(slots)-1]
	if last.Start != "19:00" || last.End != "20:00" {
		t.Fatalf("unexpected last slot: %+v", last)
	}
	for _, s := range slots {
		if !s.Available {
			t.Fatalf("derived slot should be available: %+v", s)
		}
	}
}

func TestAvailableSlotsClosedDaysAcrossCatalog(t *testing.T) {
	for _, loc := range showroom.Default().Locations() {
		for _, h := range loc.Hours {
			if !h.Closed {
				continue
			}
			date, _ := time.Parse("2006-01-02", dateOn(h.Weekday))
			if got := AvailableSlots(loc, date); len(got) != 0 {
				t.Errorf("%s: expected no slots on closed %s, got %d", loc.ID, h.Weekday, len(got))
			}
		}
	}
}

func TestAvailableSlotsMissingWeekdayRow(t *testing.T) {
	loc := showroom.Location{
		ID:    "test",
		Hours: []showroom.DayHours{{Weekday: time.Monday, Open: "09:00", Close: "17:00"}},
	}
	date, _ := time.Parse("2006-01-02", dateOn(time.Tuesday))
	if got := AvailableSlots(loc, date); got != nil {
		t.Fatalf("expected nil for missing weekday row, got %v", got)
	}
}

func TestPeriodBoundaries(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{9, PeriodMorning},
		{11, PeriodMorning},
		{12, PeriodAfternoon},
		{16, PeriodAfternoon},
		{17, PeriodEvening},
		{19, PeriodEvening},
	}
	for _, c := range cases {
		if got := PeriodOf(c.hour); got != c.want {
			t.Errorf("PeriodOf(%d) = %s, want %s", c.hour, got, c.want)
		}
	}
}

func TestGroupSlots(t *testing.T) {
	loc := mustLocation(t, "flagship-rue-royale")
	date, _ := time.Parse("2006-01-02", dateOn(time.Thursday))
	grouped := GroupSlots(AvailableSlots(loc, date))

	// 10:00-20:00: two morning starts, five afternoon, three evening.
	if len(grouped[PeriodMorning]) != 2 {
		t.Errorf("expected 2 morning slots, got %d", len(grouped[PeriodMorning]))
	}
	if len(grouped[PeriodAfternoon]) != 5 {
		t.Errorf("expected 5 afternoon slots, got %d", len(grouped[PeriodAfternoon]))
	}
	if len(grouped[PeriodEvening]) != 3 {
		t.Errorf("expected 3 evening slots, got %d", len(grouped[PeriodEvening]))
	}
}
