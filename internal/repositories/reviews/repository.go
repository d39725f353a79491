package reviews

import (
	"context"

	"github.com/dmitrijs2005/lightbnb/internal/models"
)

// Repository is the property_reviews table gateway. Reviews are only read in
// aggregate (see the properties and reservations repositories).
type Repository interface {
	Create(ctx context.Context, review models.NewPropertyReview) (int64, error)
}
