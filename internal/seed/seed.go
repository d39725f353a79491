// Package seed fills an empty LightBnB database with demo data: users,
// their properties, reservations between them and a review per reservation.
// Everything is inserted in one transaction.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/lightbnb/internal/dbx"
	"github.com/dmitrijs2005/lightbnb/internal/logging"
	"github.com/dmitrijs2005/lightbnb/internal/models"
	"github.com/dmitrijs2005/lightbnb/internal/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Options struct {
	Users             int    `validate:"gte=1"`
	PropertiesPerUser int    `validate:"gte=0"`
	Password          string `validate:"required"`
}

// Summary counts the rows inserted by Run.
type Summary struct {
	Users        int `json:"users"`
	Properties   int `json:"properties"`
	Reservations int `json:"reservations"`
	Reviews      int `json:"reviews"`
}

type Seeder struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger

	newID func() string
	hash  func(password string) (string, error)
	now   func() time.Time
}

func NewSeeder(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *Seeder {
	return &Seeder{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "seed"),
		newID:       func() string { return uuid.NewString() },
		hash:        bcryptHash,
		now:         time.Now,
	}
}

func bcryptHash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var cities = []struct{ city, province string }{
	{"Vancouver", "British Columbia"},
	{"Calgary", "Alberta"},
	{"Toronto", "Ontario"},
	{"Montreal", "Quebec"},
	{"Halifax", "Nova Scotia"},
}

func (s *Seeder) newProperty(ownerID int64, n int) models.NewProperty {
	c := cities[n%len(cities)]
	return models.NewProperty{
		OwnerID:           ownerID,
		Title:             fmt.Sprintf("Demo listing %d", n+1),
		Description:       "description",
		ThumbnailPhotoURL: fmt.Sprintf("https://images.example.com/%d-thumb.jpg", n+1),
		CoverPhotoURL:     fmt.Sprintf("https://images.example.com/%d.jpg", n+1),
		CostPerNight:      models.DollarsToCents(int64(50 + 25*(n%8))),
		Street:            fmt.Sprintf("%d Main Street", 100+n),
		City:              c.city,
		Province:          c.province,
		PostCode:          fmt.Sprintf("%05d", 10000+n),
		Country:           "Canada",
		ParkingSpaces:     n % 3,
		NumberOfBathrooms: 1 + n%2,
		NumberOfBedrooms:  1 + n%4,
	}
}

// Run inserts the demo data described by opts. Each user i reserves the first
// property of user i+1 (wrapping around) and reviews the stay.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Summary, error) {
	if err := models.Validate(opts); err != nil {
		return nil, err
	}

	hash, err := s.hash(opts.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	sum := &Summary{}
	today := s.now().UTC().Truncate(24 * time.Hour)

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		userIDs := make([]int64, 0, opts.Users)
		for i := 0; i < opts.Users; i++ {
			u := models.NewUser{
				Name:     fmt.Sprintf("Demo User %d", i+1),
				Email:    fmt.Sprintf("demo-%s@example.com", s.newID()),
				Password: hash,
			}
			created, err := s.repomanager.Users(tx).Create(ctx, u)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			userIDs = append(userIDs, created.ID)
			sum.Users++
		}

		firstProperty := make([]int64, len(userIDs))
		for i, ownerID := range userIDs {
			for j := 0; j < opts.PropertiesPerUser; j++ {
				p, err := s.repomanager.Properties(tx).Create(ctx, s.newProperty(ownerID, sum.Properties))
				if err != nil {
					return fmt.Errorf("create property: %w", err)
				}
				if j == 0 {
					firstProperty[i] = p.ID
				}
				sum.Properties++
			}
		}

		if len(userIDs) < 2 || opts.PropertiesPerUser == 0 {
			return nil
		}

		for i, guestID := range userIDs {
			start := today.AddDate(0, 0, -30+7*i)
			nr := models.NewReservation{
				GuestID:    guestID,
				PropertyID: firstProperty[(i+1)%len(userIDs)],
				StartDate:  start,
				EndDate:    start.AddDate(0, 0, 3),
			}
			if err := models.Validate(nr); err != nil {
				return err
			}
			r, err := s.repomanager.Reservations(tx).Create(ctx, nr)
			if err != nil {
				return fmt.Errorf("create reservation: %w", err)
			}
			sum.Reservations++

			review := models.NewPropertyReview{
				GuestID:       guestID,
				PropertyID:    r.PropertyID,
				ReservationID: r.ID,
				Rating:        1 + (i+3)%5,
				Message:       "message",
			}
			if _, err := s.repomanager.Reviews(tx).Create(ctx, review); err != nil {
				return fmt.Errorf("create review: %w", err)
			}
			sum.Reviews++
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "seed failed", "error", err.Error())
		return nil, err
	}

	s.logger.Info(ctx, "seed complete",
		"users", sum.Users, "properties", sum.Properties,
		"reservations", sum.Reservations, "reviews", sum.Reviews)
	return sum, nil
}
