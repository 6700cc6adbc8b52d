package repository

import "atlaz/pkg/model"

// SeedBookings returns the records present at process start.
func SeedBookings() []model.Booking {
	return []model.Booking{
		{
			Date:  "2025-10-18",
			Start: model.StringPtr("22:00"),
			End:   model.StringPtr("02:00"),
			Name:  "Warehouse Night",
			Venue: "Warehouse 27, Antwerp",
			Link:  model.StringPtr("https://example.com/warehouse-night"),
		},
		{
			Date:  "2025-11-02",
			Start: model.StringPtr("23:00"),
			End:   model.StringPtr("03:00"),
			Name:  "Nightshift",
			Venue: "Brussels",
			Link:  model.StringPtr("https://example.com/nightshift"),
		},
	}
}
