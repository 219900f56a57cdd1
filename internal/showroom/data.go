package showroom

import "time"

var locations = []Location{
	{
		ID:       "flagship-rue-royale",
		Name:     "Maison Lumière — Rue Royale",
		Address:  "12 Rue Royale",
		City:     "Paris",
		Phone:    "+33 1 42 60 00 12",
		Email:    "rueroyale@maison-lumiere.example",
		Timezone: "Europe/Paris",
		Lat:      48.8673,
		Lng:      2.3222,
		// Flagship appointments carry a 10% atelier surcharge.
		PriceMultiplier: 1.10,
		Hours: []DayHours{
			{Weekday: time.Monday, Closed: true},
			{Weekday: time.Tuesday, Open: "10:00", Close: "18:00"},
			{Weekday: time.Wednesday, Open: "10:00", Close: "18:00"},
			{Weekday: time.Thursday, Open: "10:00", Close: "20:00"},
			{Weekday: time.Friday, Open: "10:00", Close: "20:00"},
			{Weekday: time.Saturday, Open: "11:00", Close: "19:00"},
			{Weekday: time.Sunday, Closed: true},
		},
	},
	{
		ID:       "salon-mayfair",
		Name:     "Maison Lumière — Mayfair Salon",
		Address:  "4 Mount Street",
		City:     "London",
		Phone:    "+44 20 7491 0004",
		Email:    "mayfair@maison-lumiere.example",
		Timezone: "Europe/London",
		Lat:      51.5103,
		Lng:      -0.1497,
		Hours: []DayHours{
			{Weekday: time.Monday, Open: "10:00", Close: "18:00"},
			{Weekday: time.Tuesday, Open: "10:00", Close: "18:00"},
			{Weekday: time.Wednesday, Open: "10:00", Close: "18:00"},
			{Weekday: time.Thursday, Open: "10:00", Close: "18:00"},
			{Weekday: time.Friday, Open: "10:00", Close: "18:00"},
			{Weekday: time.Saturday, Open: "11:00", Close: "17:00"},
			{Weekday: time.Sunday, Closed: true},
		},
	},
	{
		ID:       "atelier-madison",
		Name:     "Maison Lumière — Madison Avenue",
		Address:  "660 Madison Avenue",
		City:     "New York",
		Phone:    "+1 212 355 0660",
		Email:    "madison@maison-lumiere.example",
		Timezone: "America/New_York",
		Lat:      40.7639,
		Lng:      -73.9713,
		Hours: []DayHours{
			{Weekday: time.Monday, Open: "10:00", Close: "19:00"},
			{Weekday: time.Tuesday, Open: "10:00", Close: "19:00"},
			{Weekday: time.Wednesday, Open: "10:00", Close: "19:00"},
			{Weekday: time.Thursday, Open: "10:00", Close: "19:00"},
			{Weekday: time.Friday, Open: "10:00", Close: "19:00"},
			{Weekday: time.Saturday, Open: "10:00", Close: "18:00"},
			{Weekday: time.Sunday, Open: "12:00", Close: "17:00"},
		},
	},
}
