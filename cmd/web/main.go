package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/modelyard/reportdeck/pkg/server"
	"github.com/modelyard/reportdeck/pkg/services/catalog"
	"github.com/modelyard/reportdeck/pkg/services/config"
	"github.com/modelyard/reportdeck/pkg/services/report"
	"github.com/modelyard/reportdeck/pkg/store"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the reportdeck dashboard server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the reportdeck config file (built-in defaults when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	artifactStore, err := store.NewFromConfig(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to create artifact store: %w", err)
	}

	explorer := catalog.NewExplorer(artifactStore)
	loader := report.NewLoader(artifactStore)

	addr := cfg.Addr
	if envAddr := os.Getenv("SERVER_ADDR"); envAddr != "" {
		addr = envAddr
	}

	logger.Info().
		Str("backend", cfg.Store.Backend).
		Str("addr", addr).
		Msg("configuration loaded")

	api := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Explorer: explorer,
			Loader:   loader,
			Links:    cfg.Links,
		},
	})

	return api.Start()
}
