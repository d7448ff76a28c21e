package main

import (
	"context"
	"fmt"
	"os"

	"github.com/avictorio/fieldparts/internal/api"
	"github.com/avictorio/fieldparts/internal/cache"
	"github.com/avictorio/fieldparts/internal/catalog"
	"github.com/avictorio/fieldparts/internal/lifecycle"
	"github.com/avictorio/fieldparts/internal/localpurchase"
	"github.com/avictorio/fieldparts/internal/maintenance"
	"github.com/avictorio/fieldparts/pkg/config"
	"github.com/avictorio/fieldparts/pkg/db"
	"github.com/avictorio/fieldparts/pkg/logger"
	"github.com/joho/godotenv"
)

const usage = `usage: fieldparts <command> [flags]

commands:
  catalog         list the part catalog (paged locally)
  search          search the catalog by part number or name
  wallet          show the engineer's part request records
  request         request parts for a maintenance ticket
  approve         approve pending part requests
  install         mark approved parts as installed
  remove          take parts off an asset
  assign          hand parts to another engineer
  local-purchase  submit off-inventory purchase lines
  ticket          show one maintenance ticket in full
  photo           attach a photo to a ticket

run "fieldparts <command> -h" for command flags
`

// app bundles the wired services every command draws from.
type app struct {
	logg      *logger.Logger
	catalog   *catalog.Service
	lifecycle lifecycle.Service
	purchases *localpurchase.Service
	tickets   *maintenance.Service
	snapshots *cache.Service
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "fieldparts"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "fieldparts",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	client, err := api.NewClient(cfg.API, logg)
	if err != nil {
		logg.Error(ctx, "failed to build api client", err)
		os.Exit(1)
	}

	a := &app{logg: logg}

	if a.catalog, err = catalog.NewService(catalog.ServiceParams{
		API: client, Logger: logg, Search: cfg.Search,
	}); err != nil {
		logg.Error(ctx, "failed to build catalog service", err)
		os.Exit(1)
	}
	if a.lifecycle, err = lifecycle.NewService(lifecycle.ServiceParams{
		API: client, Logger: logg,
	}); err != nil {
		logg.Error(ctx, "failed to build lifecycle service", err)
		os.Exit(1)
	}
	if a.purchases, err = localpurchase.NewService(localpurchase.ServiceParams{
		API: client, Logger: logg,
	}); err != nil {
		logg.Error(ctx, "failed to build local purchase service", err)
		os.Exit(1)
	}
	if a.tickets, err = maintenance.NewService(maintenance.ServiceParams{
		API: client, Logger: logg,
	}); err != nil {
		logg.Error(ctx, "failed to build maintenance service", err)
		os.Exit(1)
	}

	if cfg.Cache.Enabled {
		dbClient, err := db.New(ctx, cfg.Cache, logg)
		if err != nil {
			logg.Error(ctx, "failed to open snapshot store", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(ctx, "error closing snapshot store", err)
			}
		}()
		if a.snapshots, err = cache.NewService(cache.ServiceParams{DB: dbClient, Logger: logg}); err != nil {
			logg.Error(ctx, "failed to build snapshot service", err)
			os.Exit(1)
		}
	}

	if err := run(ctx, a, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", messageFor(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, a *app, command string, args []string) error {
	switch command {
	case "catalog":
		return cmdCatalog(ctx, a, args)
	case "search":
		return cmdSearch(ctx, a, args)
	case "wallet":
		return cmdWallet(ctx, a, args)
	case "request":
		return cmdRequest(ctx, a, args)
	case "approve":
		return cmdApprove(ctx, a, args)
	case "install":
		return cmdInstall(ctx, a, args)
	case "remove":
		return cmdRemove(ctx, a, args)
	case "assign":
		return cmdAssign(ctx, a, args)
	case "local-purchase":
		return cmdLocalPurchase(ctx, a, args)
	case "ticket":
		return cmdTicket(ctx, a, args)
	case "photo":
		return cmdPhoto(ctx, a, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
