package commands

import (
	"context"
	"fmt"

	"github.com/modelyard/reportdeck/pkg/services/catalog"
	"github.com/modelyard/reportdeck/pkg/services/config"
	"github.com/modelyard/reportdeck/pkg/services/report"
	"github.com/modelyard/reportdeck/pkg/store"
)

// buildServices resolves the config file into the explorer and loader
// every command works through.
func buildServices(ctx context.Context, cfgPath string) (catalog.Explorer, report.Loader, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	artifactStore, err := store.NewFromConfig(ctx, cfg.Store)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create artifact store: %w", err)
	}

	return catalog.NewExplorer(artifactStore), report.NewLoader(artifactStore), nil
}
