package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/joestump/joe-photos/internal/config"
	"github.com/joestump/joe-photos/internal/db"
	"github.com/joestump/joe-photos/internal/library"
	"github.com/joestump/joe-photos/internal/logger"
	"github.com/joestump/joe-photos/internal/store"
)

// loadConfig reads configuration with cmd's flags bound over it and
// initializes logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	return cfg, nil
}

// openGateway returns the album store selected by cfg. SQL stores are
// migrated before use. The returned func releases the store.
func openGateway(cfg *config.Config) (store.Gateway, func(), error) {
	if !cfg.IsSQL() {
		return store.NewFileStore(cfg.Storage.Path), func() {}, nil
	}

	database, err := db.New(cfg.Storage.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(database, cfg.Storage.Driver); err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	return store.NewSQLStore(database), func() { _ = database.Close() }, nil
}

// openLibrary builds and loads a Library for one command run. The returned
// func closes it.
func openLibrary(cmd *cobra.Command) (*library.Library, *config.Config, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	gw, closeStore, err := openGateway(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open %s store: %w", cfg.Storage.Driver, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	lib := library.New(gw)
	if err := lib.Init(ctx); err != nil {
		closeStore()
		return nil, nil, nil, err
	}
	log.Debug().Str("driver", cfg.Storage.Driver).Msg("library opened")

	return lib, cfg, func() {
		_ = lib.Close(context.Background())
		closeStore()
	}, nil
}
