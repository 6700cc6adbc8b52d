package model

const (
	DateLayout       = "2006-01-02"
	TimeLayout       = "15:04"
	DefaultStartTime = "00:00"
)

// Booking is an accepted event record. Values are never mutated after they
// enter the store.
type Booking struct {
	Date  string  `json:"date"`
	Start *string `json:"start"`
	End   *string `json:"end"`
	Name  string  `json:"name"`
	Venue string  `json:"venue"`
	Link  *string `json:"link"`
}

// BookingRequest is the candidate decoded from a request body. Name and Venue
// are pointers so that a missing field can be told apart from an empty one.
type BookingRequest struct {
	Date  string  `json:"date" validate:"required,calendar_date"`
	Start *string `json:"start" validate:"omitempty,clock_time"`
	End   *string `json:"end" validate:"omitempty,clock_time"`
	Name  *string `json:"name" validate:"required"`
	Venue *string `json:"venue" validate:"required"`
	Link  *string `json:"link"`
}

func (r *BookingRequest) ToBooking() Booking {
	b := Booking{
		Date:  r.Date,
		Start: r.Start,
		End:   r.End,
		Link:  r.Link,
	}
	if r.Name != nil {
		b.Name = *r.Name
	}
	if r.Venue != nil {
		b.Venue = *r.Venue
	}
	return b
}

// SortKey returns the ordering key used when listing bookings. A missing
// start time orders as midnight.
func (b Booking) SortKey() (string, string) {
	if b.Start == nil {
		return b.Date, DefaultStartTime
	}
	return b.Date, *b.Start
}

// StringPtr is a convenience for building optional fields.
func StringPtr(s string) *string {
	return &s
}
