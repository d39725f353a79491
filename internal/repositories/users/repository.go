package users

import (
	"context"

	"github.com/dmitrijs2005/lightbnb/internal/models"
)

// Repository is the users table gateway.
type Repository interface {
	Create(ctx context.Context, user models.NewUser) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
