// Package properties provides the PostgreSQL-backed properties repository,
// including the filtered search with per-property average ratings.
package properties

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lightbnb/internal/dbx"
	"github.com/dmitrijs2005/lightbnb/internal/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a property and returns the stored row.
func (r *PostgresRepository) Create(ctx context.Context, p models.NewProperty) (*models.Property, error) {
	query := `
		INSERT INTO properties (
			owner_id, title, description, thumbnail_photo_url, cover_photo_url, cost_per_night,
			street, city, province, post_code, country,
			parking_spaces, number_of_bathrooms, number_of_bedrooms)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + Columns

	created := &models.Property{}
	err := r.db.QueryRowContext(ctx, query,
		p.OwnerID, p.Title, p.Description, p.ThumbnailPhotoURL, p.CoverPhotoURL, int64(p.CostPerNight),
		p.Street, p.City, p.Province, p.PostCode, p.Country,
		p.ParkingSpaces, p.NumberOfBathrooms, p.NumberOfBedrooms,
	).Scan(ScanTargets(created)...)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

// Search returns properties matching filter with their average rating, cheapest
// first, at most limit rows. Properties without reviews never match.
func (r *PostgresRepository) Search(ctx context.Context, filter models.PropertyFilter, limit int) ([]*models.PropertyListing, error) {
	query, args := buildSearchQuery(filter, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	defer rows.Close()

	result := make([]*models.PropertyListing, 0)
	for rows.Next() {
		var item models.PropertyListing
		if err := rows.Scan(append(ScanTargets(&item.Property), &item.AverageRating)...); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
