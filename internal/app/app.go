// Package app assembles the data-access layer from a Config: logger, shared
// connection pool, optional schema bootstrap and the DataAccess service.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/lightbnb/internal/config"
	"github.com/dmitrijs2005/lightbnb/internal/dbx"
	"github.com/dmitrijs2005/lightbnb/internal/logging"
	"github.com/dmitrijs2005/lightbnb/internal/repositories/repomanager"
	"github.com/dmitrijs2005/lightbnb/internal/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	data        *services.DataAccess
}

// openDB is a seam for tests.
var openDB = dbx.Open

// NewApp opens the pool described by c and builds the services on top of it.
// Logs go to logOut.
func NewApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {
	logger, err := logging.New(c.LogBackend, c.LogLevel, logOut)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, err := openDB(ctx, c.DatabaseDSN, logger, c.TraceSQL)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	return newApp(ctx, c, logger, db, rm)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) (*App, error) {
	if c.MigrateOnStart {
		logger.Info(ctx, "applying schema migrations")
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
	}

	data := services.NewDataAccess(db, rm, logger, c)

	return &App{config: c, logger: logger, db: db, repomanager: rm, data: data}, nil
}

// DataAccess returns the service shared by all callers of this App.
func (app *App) DataAccess() *services.DataAccess { return app.data }

// DB returns the shared pool.
func (app *App) DB() *sql.DB { return app.db }

// RepositoryManager returns the repository factory bound to the pool.
func (app *App) RepositoryManager() repomanager.RepositoryManager { return app.repomanager }

// Logger returns the application logger.
func (app *App) Logger() logging.Logger { return app.logger }

// Close releases the cache and the pool.
func (app *App) Close() error {
	app.data.Close()
	return app.db.Close()
}

// WithSignals returns a context cancelled on SIGINT, SIGTERM or SIGQUIT.
func WithSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelFunc := context.WithCancel(ctx)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()

	return ctx, cancelFunc
}
