package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/lightbnb/internal/app"
	"github.com/dmitrijs2005/lightbnb/internal/cli"
	"github.com/dmitrijs2005/lightbnb/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		cli.Usage(os.Stderr)
		return 2
	}

	cfg, err := config.LoadConfig()
	if err != nil {
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

	c := cli.NewApp(a.DataAccess(), os.Stdout, os.Stderr)
	if err := c.Run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, cli.ErrUsage) {
			return 2
		}
		return 1
	}
	return 0
}
