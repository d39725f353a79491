package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/dmitrijs2005/lightbnb/internal/app"
	"github.com/dmitrijs2005/lightbnb/internal/config"
	"github.com/dmitrijs2005/lightbnb/internal/flagx"
	"github.com/dmitrijs2005/lightbnb/internal/seed"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("%v", err)
		return 2
	}

	opts := seed.Options{}
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.IntVar(&opts.Users, "users", 5, "number of demo users")
	fs.IntVar(&opts.PropertiesPerUser, "properties", 2, "properties per user")
	fs.StringVar(&opts.Password, "password", "password", "password for every demo user")
	if err := fs.Parse(flagx.FilterArgs(os.Args[1:], flagx.FlagNames(fs))); err != nil {
		log.Printf("%v", err)
		return 2
	}

	ctx, cancel := app.WithSignals(context.Background())
	defer cancel()

	a, err := app.NewApp(ctx, cfg, os.Stderr)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}
	defer a.Close()

	s := seed.NewSeeder(a.DB(), a.RepositoryManager(), a.Logger())
	sum, err := s.Run(ctx, opts)
	if err != nil {
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(sum)
	return 0
}
