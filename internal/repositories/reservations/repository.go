package reservations

import (
	"context"

	"github.com/dmitrijs2005/lightbnb/internal/models"
)

// Repository is the reservations table gateway.
type Repository interface {
	Create(ctx context.Context, r models.NewReservation) (*models.Reservation, error)
	ListForGuest(ctx context.Context, guestID int64, limit int) ([]*models.GuestReservation, error)
}
