// Package services exposes DataAccess, the single entry point the web layer
// uses to read and write LightBnB data.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/lightbnb/internal/common"
	"github.com/dmitrijs2005/lightbnb/internal/config"
	"github.com/dmitrijs2005/lightbnb/internal/logging"
	"github.com/dmitrijs2005/lightbnb/internal/models"
	"github.com/dmitrijs2005/lightbnb/internal/repositories/repomanager"
)

// Operation names used in errors and logs.
const (
	OpFindUserByEmail          = "find user by email"
	OpFindUserByID             = "find user by id"
	OpCreateUser               = "create user"
	OpListReservationsForGuest = "list reservations for guest"
	OpSearchProperties         = "search properties"
	OpCreateProperty           = "create property"
)

// DataAccess runs each operation as one statement on the shared pool.
//
// Lookups that match nothing return a nil record and a nil error. Any failure
// is logged and returned as a *common.DataAccessError, so callers can always
// tell "no data" from "operation failed". DataAccess is safe for concurrent use.
type DataAccess struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	logger       logging.Logger
	users        *userCache
	defaultLimit int
}

// NewDataAccess constructs a DataAccess over db using the repositories vended by m.
func NewDataAccess(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger, cfg *config.Config) *DataAccess {
	return &DataAccess{
		db:           db,
		repomanager:  m,
		logger:       logger.With("module", "data_access"),
		users:        newUserCache(cfg.UserCacheSize, cfg.UserCacheTTL),
		defaultLimit: cfg.DefaultLimit,
	}
}

// Close releases the user cache. The pool belongs to the caller.
func (s *DataAccess) Close() {
	s.users.stop()
}

// FindUserByEmail returns the user whose email matches exactly (case-sensitive),
// or nil if there is none.
func (s *DataAccess) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := s.users.byEmail(email); ok {
		return u, nil
	}

	u, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, s.fail(ctx, OpFindUserByEmail, err)
	}

	s.users.add(u)
	return u, nil
}

// FindUserByID returns the user with the given id, or nil if there is none.
func (s *DataAccess) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	if u, ok := s.users.byID(id); ok {
		return u, nil
	}

	u, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, s.fail(ctx, OpFindUserByID, err, "user_id", id)
	}

	s.users.add(u)
	return u, nil
}

// CreateUser registers user and returns the stored record with its new id.
// A duplicate email fails with common.ErrorAlreadyExists.
func (s *DataAccess) CreateUser(ctx context.Context, user models.NewUser) (*models.User, error) {
	if err := models.Validate(user); err != nil {
		return nil, s.fail(ctx, OpCreateUser, err)
	}

	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		return nil, s.fail(ctx, OpCreateUser, err)
	}

	s.users.add(u)
	s.logger.Info(ctx, "user created", "user_id", u.ID)
	return u, nil
}

// ListReservationsForGuest returns up to limit reservations of guestID,
// earliest first, each with its property and that property's average rating.
// A non-positive limit uses the configured default.
func (s *DataAccess) ListReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]*models.GuestReservation, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	list, err := s.repomanager.Reservations(s.db).ListForGuest(ctx, guestID, limit)
	if err != nil {
		return nil, s.fail(ctx, OpListReservationsForGuest, err, "guest_id", guestID)
	}
	return list, nil
}

// SearchProperties returns up to limit properties matching filter, cheapest
// first, each with its average rating. A non-positive limit uses the
// configured default.
func (s *DataAccess) SearchProperties(ctx context.Context, filter models.PropertyFilter, limit int) ([]*models.PropertyListing, error) {
	if err := models.Validate(filter); err != nil {
		return nil, s.fail(ctx, OpSearchProperties, err)
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	list, err := s.repomanager.Properties(s.db).Search(ctx, filter, limit)
	if err != nil {
		return nil, s.fail(ctx, OpSearchProperties, err)
	}
	return list, nil
}

// CreateProperty stores property and returns the inserted row. An unknown
// owner fails with common.ErrorInvalidReference.
func (s *DataAccess) CreateProperty(ctx context.Context, property models.NewProperty) (*models.Property, error) {
	if err := models.Validate(property); err != nil {
		return nil, s.fail(ctx, OpCreateProperty, err)
	}

	p, err := s.repomanager.Properties(s.db).Create(ctx, property)
	if err != nil {
		return nil, s.fail(ctx, OpCreateProperty, err, "owner_id", property.OwnerID)
	}

	s.logger.Info(ctx, "property created", "property_id", p.ID, "owner_id", p.OwnerID)
	return p, nil
}

// fail logs err and converts it into a *common.DataAccessError for op.
func (s *DataAccess) fail(ctx context.Context, op string, err error, args ...any) error {
	dae := common.NewDataAccessError(op, err)
	s.logger.Error(ctx, "data access failed", append([]any{"op", op, "kind", dae.Kind.Error(), "error", err.Error()}, args...)...)
	return dae
}
