package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lightbnb/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func (a *App) user(ctx context.Context, args []string) error {
	fs := a.newFlagSet("user")
	email := fs.String("email", "", "user email (exact match)")
	id := fs.Int64("id", 0, "user id")
	if err := parse(fs, args); err != nil {
		return err
	}

	var (
		u   *models.User
		err error
	)
	switch {
	case *email != "" && *id != 0:
		return fmt.Errorf("%w: user: -email and -id are mutually exclusive", ErrUsage)
	case *email != "":
		u, err = a.data.FindUserByEmail(ctx, *email)
	case *id != 0:
		u, err = a.data.FindUserByID(ctx, *id)
	default:
		return fmt.Errorf("%w: user: -email or -id is required", ErrUsage)
	}
	if err != nil {
		return err
	}
	if u == nil {
		return ErrNoResult
	}
	return a.printJSON(u)
}

// hashPassword is a seam for tests; bcrypt at the default cost is slow.
var hashPassword = func(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.newFlagSet("register")
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "plain-text password, stored as a bcrypt hash")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *password == "" {
		return fmt.Errorf("%w: register: -password is required", ErrUsage)
	}

	hash, err := hashPassword(*password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u, err := a.data.CreateUser(ctx, models.NewUser{Name: *name, Email: *email, Password: hash})
	if err != nil {
		return err
	}
	return a.printJSON(u)
}

func (a *App) reservations(ctx context.Context, args []string) error {
	fs := a.newFlagSet("reservations")
	guest := fs.Int64("guest", 0, "guest user id")
	limit := fs.Int("limit", 0, "maximum number of reservations (0 uses the default)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *guest <= 0 {
		return fmt.Errorf("%w: reservations: -guest is required", ErrUsage)
	}

	list, err := a.data.ListReservationsForGuest(ctx, *guest, *limit)
	if err != nil {
		return err
	}
	return a.printJSON(list)
}

func (a *App) search(ctx context.Context, args []string) error {
	fs := a.newFlagSet("search")
	var f models.PropertyFilter
	fs.StringVar(&f.City, "city", "", "city substring, case-insensitive")
	fs.Int64Var(&f.MinimumPricePerNight, "min-price", 0, "minimum nightly price in whole units")
	fs.Int64Var(&f.MaximumPricePerNight, "max-price", 0, "maximum nightly price in whole units")
	fs.Float64Var(&f.MinimumRating, "min-rating", 0, "minimum average rating")
	fs.Int64Var(&f.OwnerID, "owner", 0, "owner user id")
	limit := fs.Int("limit", 0, "maximum number of properties (0 uses the default)")
	if err := parse(fs, args); err != nil {
		return err
	}

	list, err := a.data.SearchProperties(ctx, f, *limit)
	if err != nil {
		return err
	}
	return a.printJSON(list)
}

func (a *App) addProperty(ctx context.Context, args []string) error {
	fs := a.newFlagSet("add-property")
	var p models.NewProperty
	var cost int64
	fs.Int64Var(&p.OwnerID, "owner", 0, "owner user id")
	fs.StringVar(&p.Title, "title", "", "title")
	fs.StringVar(&p.Description, "description", "", "description")
	fs.StringVar(&p.ThumbnailPhotoURL, "thumbnail", "", "thumbnail photo URL")
	fs.StringVar(&p.CoverPhotoURL, "cover", "", "cover photo URL")
	fs.Int64Var(&cost, "cost", 0, "nightly price in whole units")
	fs.StringVar(&p.Street, "street", "", "street")
	fs.StringVar(&p.City, "city", "", "city")
	fs.StringVar(&p.Province, "province", "", "province")
	fs.StringVar(&p.PostCode, "post-code", "", "post code")
	fs.StringVar(&p.Country, "country", "", "country")
	fs.IntVar(&p.ParkingSpaces, "parking", 0, "parking spaces")
	fs.IntVar(&p.NumberOfBathrooms, "bathrooms", 0, "number of bathrooms")
	fs.IntVar(&p.NumberOfBedrooms, "bedrooms", 0, "number of bedrooms")
	if err := parse(fs, args); err != nil {
		return err
	}
	if cost < 0 || cost > models.MaxDollars {
		return fmt.Errorf("%w: add-property: -cost must be between 0 and %d", ErrUsage, models.MaxDollars)
	}
	p.CostPerNight = models.DollarsToCents(cost)

	created, err := a.data.CreateProperty(ctx, p)
	if err != nil {
		return err
	}
	return a.printJSON(created)
}
