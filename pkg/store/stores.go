package store

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/modelyard/reportdeck/pkg/services/config"
	"github.com/modelyard/reportdeck/pkg/store/artifact"
	"github.com/modelyard/reportdeck/pkg/store/reportfs"
	"github.com/modelyard/reportdeck/pkg/store/s3"
)

// NewFromConfig builds the artifact store the config asks for.
func NewFromConfig(ctx context.Context, cfg config.StoreConfig) (artifact.Store, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		return reportfs.NewStore(cfg.Root), nil
	case config.BackendS3:
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load aws config: %w", err)
		}
		return s3.NewStore(awsCfg, cfg.Bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
