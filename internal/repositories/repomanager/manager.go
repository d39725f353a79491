package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/lightbnb/internal/dbx"
	"github.com/dmitrijs2005/lightbnb/internal/repositories/properties"
	"github.com/dmitrijs2005/lightbnb/internal/repositories/reservations"
	"github.com/dmitrijs2005/lightbnb/internal/repositories/reviews"
	"github.com/dmitrijs2005/lightbnb/internal/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code runs
// against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Properties(db dbx.DBTX) properties.Repository
	Reservations(db dbx.DBTX) reservations.Repository
	Reviews(db dbx.DBTX) reviews.Repository
}
