package main

import (
	"fmt"
	"os"
	"strings"

	"stockfolio/api"
	"stockfolio/internal"
	"stockfolio/internal/app"
	"stockfolio/internal/config"
	"stockfolio/internal/logger"
	"stockfolio/internal/repository"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "stockfolio",
		Short: "stock portfolio tracker backend",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(refreshCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			store, cache, gateway, err := buildState(cfg)
			if err != nil {
				return err
			}

			log := logger.New()
			handler := api.ApiHandler{
				Store: store,
				Portfolio: app.PortfolioHandler{
					Store:        store,
					HistoryCache: cache,
					PriceGateway: gateway,
				},
				Logger: log,
			}
			return handler.StartApi(cfg.HTTP.Port)
		},
	}
}

func refreshCmd() *cobra.Command {
	var symbols []string
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "warm the historical price cache for the given symbols",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(symbols) == 0 {
				return fmt.Errorf("at least one symbol is required")
			}
			for i := range symbols {
				symbols[i] = strings.ToUpper(symbols[i])
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			_, cache, _, err := buildState(cfg)
			if err != nil {
				return err
			}

			ctx := logger.AddToContext(cmd.Context(), logger.New())
			return cache.Refresh(ctx, symbols)
		},
	}
	cmd.Flags().StringSliceVar(&symbols, "symbols", nil, "ticker symbols to refresh")
	return cmd
}

func buildState(cfg *config.Config) (*internal.PortfolioStore, *internal.HistoryCache, repository.PriceGateway, error) {
	var (
		snapshots repository.SnapshotRepository
		err       error
	)
	switch cfg.Snapshot.Backend {
	case "memory":
		snapshots = repository.NewMemorySnapshotRepository()
	case "sqlite":
		snapshots, err = repository.NewSqliteSnapshotRepository(cfg.Snapshot.SQLitePath)
	case "postgres":
		snapshots, err = repository.NewPostgresSnapshotRepository(cfg.Snapshot.PostgresDSN)
	default:
		err = fmt.Errorf("unknown snapshot backend %q", cfg.Snapshot.Backend)
	}
	if err != nil {
		return nil, nil, nil, err
	}

	store, err := internal.NewPortfolioStore(snapshots)
	if err != nil {
		return nil, nil, nil, err
	}

	gateway := repository.NewPriceGateway()
	cache, err := internal.NewHistoryCache(gateway, snapshots)
	if err != nil {
		return nil, nil, nil, err
	}

	return store, cache, gateway, nil
}
