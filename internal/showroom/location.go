package showroom

import "time"

// DayHours is one weekday row in a showroom's opening-hours table. Open and
// Close are local "15:04" clock strings; Closed rows carry no times.
type DayHours struct {
	Weekday time.Weekday `json:"weekday"`
	Open    string       `json:"open,omitempty"`
	Close   string       `json:"close,omitempty"`
	Closed  bool         `json:"closed"`
}

// Location is a physical showroom. Like the product catalog this is static
// reference data; the booking flow treats it as read-only.
type Location struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Address  string     `json:"address"`
	City     string     `json:"city"`
	Phone    string     `json:"phone"`
	Email    string     `json:"email"`
	Timezone string     `json:"timezone"`
	Lat      float64    `json:"lat,omitempty"`
	Lng      float64    `json:"lng,omitempty"`
	Hours    []DayHours `json:"hours"`

	// PriceMultiplier scales consultation base prices at this showroom
	// (1.10 means a 10% surcharge). Zero is treated as 1.
	PriceMultiplier float64 `json:"price_multiplier,omitempty"`
}

// HoursOn returns the opening-hours row for the given weekday. The second
// return is false when the table has no row for that day; callers treat a
// missing row the same as a closed one.
func (l Location) HoursOn(day time.Weekday) (DayHours, bool) {
	for _, h := range l.Hours {
		if h.Weekday == day {
			return h, true
		}
	}
	return DayHours{}, false
}

func (l Location) Surcharge() float64 {
	if l.PriceMultiplier <= 0 {
		return 1
	}
	return l.PriceMultiplier
}

// Directory is the set of showrooms the storefront knows about.
type Directory struct {
	locations []Location
}

func NewDirectory(locations []Location) *Directory {
	return &Directory{locations: locations}
}

func Default() *Directory {
	return NewDirectory(locations)
}

func (d *Directory) Locations() []Location {
	return d.locations
}

func (d *Directory) Location(id string) (Location, bool) {
	for _, l := range d.locations {
		if l.ID == id {
			return l, true
		}
	}
	return Location{}, false
}
