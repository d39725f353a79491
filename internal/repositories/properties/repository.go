package properties

import (
	"context"

	"github.com/dmitrijs2005/lightbnb/internal/models"
)

// Repository is the properties table gateway.
type Repository interface {
	Create(ctx context.Context, property models.NewProperty) (*models.Property, error)
	Search(ctx context.Context, filter models.PropertyFilter, limit int) ([]*models.PropertyListing, error)
}
