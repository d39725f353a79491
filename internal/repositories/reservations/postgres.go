// Package reservations provides the PostgreSQL-backed reservations repository.
package reservations

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lightbnb/internal/dbx"
	"github.com/dmitrijs2005/lightbnb/internal/models"
	"github.com/dmitrijs2005/lightbnb/internal/repositories/properties"
)

// DefaultLimit caps a listing when the caller passes a non-positive limit.
const DefaultLimit = 10

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a reservation and returns the stored row.
func (r *PostgresRepository) Create(ctx context.Context, res models.NewReservation) (*models.Reservation, error) {
	query :=
		`INSERT INTO reservations (guest_id, property_id, start_date, end_date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, guest_id, property_id, start_date, end_date
		 `

	created := &models.Reservation{}
	err := r.db.QueryRowContext(ctx, query, res.GuestID, res.PropertyID, res.StartDate, res.EndDate).
		Scan(&created.ID, &created.GuestID, &created.PropertyID, &created.StartDate, &created.EndDate)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

// ListForGuest returns the guest's reservations with their property and the
// property's average rating, earliest start date first, at most limit rows.
// The reviews join is an inner join: reservations of properties that have no
// review are not listed.
func (r *PostgresRepository) ListForGuest(ctx context.Context, guestID int64, limit int) ([]*models.GuestReservation, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := `
	SELECT reservations.id, reservations.guest_id, reservations.property_id,
		reservations.start_date, reservations.end_date,
		` + properties.Columns + `,
		AVG(property_reviews.rating)::float8 AS average_rating
	FROM reservations
	JOIN properties ON reservations.property_id = properties.id
	JOIN property_reviews ON property_reviews.property_id = properties.id
	WHERE reservations.guest_id = $1
	GROUP BY reservations.id, properties.id
	ORDER BY reservations.start_date ASC, reservations.id ASC
	LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, guestID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select reservations: %w", err)
	}
	defer rows.Close()

	result := make([]*models.GuestReservation, 0)
	for rows.Next() {
		var item models.GuestReservation
		dest := []any{
			&item.ID, &item.GuestID, &item.PropertyID, &item.StartDate, &item.EndDate,
		}
		dest = append(dest, properties.ScanTargets(&item.Property)...)
		dest = append(dest, &item.AverageRating)

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
