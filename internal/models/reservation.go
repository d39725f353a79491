package models

import "time"

// Reservation links a guest to a property for a date range.
type Reservation struct {
	ID         int64     `json:"id"`
	GuestID    int64     `json:"guest_id"`
	PropertyID int64     `json:"property_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// GuestReservation is a reservation joined with its property and the
// property's average review rating.
type GuestReservation struct {
	Reservation
	Property      Property `json:"property"`
	AverageRating float64  `json:"average_rating"`
}

// NewReservation is used by the seeder; the data-access API does not create
// reservations.
type NewReservation struct {
	GuestID    int64     `validate:"required,gt=0"`
	PropertyID int64     `validate:"required,gt=0"`
	StartDate  time.Time `validate:"required"`
	EndDate    time.Time `validate:"required,gtfield=StartDate"`
}

// NewPropertyReview is a single rating left by a guest after a stay.
type NewPropertyReview struct {
	GuestID       int64 `validate:"required,gt=0"`
	PropertyID    int64 `validate:"required,gt=0"`
	ReservationID int64 `validate:"required,gt=0"`
	Rating        int   `validate:"gte=1,lte=5"`
	Message       string
}
