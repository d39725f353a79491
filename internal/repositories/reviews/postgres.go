// Package reviews provides the PostgreSQL-backed property reviews repository.
package reviews

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lightbnb/internal/dbx"
	"github.com/dmitrijs2005/lightbnb/internal/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a review and returns its id.
func (r *PostgresRepository) Create(ctx context.Context, review models.NewPropertyReview) (int64, error) {
	query :=
		`INSERT INTO property_reviews (guest_id, property_id, reservation_id, rating, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		review.GuestID, review.PropertyID, review.ReservationID, review.Rating, review.Message).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}
