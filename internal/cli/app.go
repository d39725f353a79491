package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/lightbnb/internal/flagx"
	"github.com/dmitrijs2005/lightbnb/internal/models"
)

// ErrNoResult is returned when a lookup command matched nothing.
var ErrNoResult = errors.New("no matching record")

// ErrUsage is returned for an unknown command or invalid arguments.
var ErrUsage = errors.New("usage error")

// DataAccess is the set of operations the commands call.
type DataAccess interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, user models.NewUser) (*models.User, error)
	ListReservationsForGuest(ctx context.Context, guestID int64, limit int) ([]*models.GuestReservation, error)
	SearchProperties(ctx context.Context, filter models.PropertyFilter, limit int) ([]*models.PropertyListing, error)
	CreateProperty(ctx context.Context, property models.NewProperty) (*models.Property, error)
}

type App struct {
	data   DataAccess
	out    io.Writer
	errOut io.Writer
}

func NewApp(data DataAccess, out, errOut io.Writer) *App {
	return &App{data: data, out: out, errOut: errOut}
}

type command struct {
	name  string
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = []command{
	{"user", "user -email EMAIL | -id ID", (*App).user},
	{"register", "register -name NAME -email EMAIL -password PASSWORD", (*App).register},
	{"reservations", "reservations -guest ID [-limit N]", (*App).reservations},
	{"search", "search [-city C] [-min-price P] [-max-price P] [-min-rating R] [-owner ID] [-limit N]", (*App).search},
	{"add-property", "add-property -owner ID -title T -cost P -street S -city C -province P -post-code Z -country C [...]", (*App).addProperty},
}

// Usage prints the available commands to w.
func Usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lightbnb-cli <command> [flags]")
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %s\n", c.usage)
	}
}

// Run executes the command named cmd. args may contain flags of other flag
// sets; only the command's own flags are parsed.
func (a *App) Run(ctx context.Context, cmd string, args []string) error {
	if cmd == "help" {
		Usage(a.out)
		return nil
	}
	for _, c := range commands {
		if c.name == cmd {
			return c.run(a, ctx, args)
		}
	}
	Usage(a.errOut)
	return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
}

// newFlagSet returns a flag set that reports problems to errOut instead of exiting.
func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(flagx.FilterArgs(args, flagx.FlagNames(fs))); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUsage, fs.Name(), err)
	}
	return nil
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
