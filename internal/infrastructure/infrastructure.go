// Package infrastructure provides core service initialization for application
// startup. It assembles the dependencies domain systems require: lifecycle
// coordination, logging, database access, and the trained model artifact.
package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/campuswell/pulse/internal/config"
	"github.com/campuswell/pulse/internal/model"
	"github.com/campuswell/pulse/pkg/database"
	"github.com/campuswell/pulse/pkg/lifecycle"
	"github.com/campuswell/pulse/pkg/storage"
)

const blobLoadTimeout = 30 * time.Second

// Infrastructure holds the core systems required by all domain modules.
// Storage is nil when the model artifact comes from the local filesystem.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Model     *model.Artifact
}

// New creates an Infrastructure from the application configuration. The
// model artifact load is synchronous and fatal on failure: the service must
// never come up without a classifier.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	infra := &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
	}

	if cfg.Model.Source == config.ModelSourceBlob {
		store, err := storage.New(&cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("storage init failed: %w", err)
		}
		infra.Storage = store
	}

	artifact, err := infra.loadArtifact(&cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("model load failed: %w", err)
	}
	infra.Model = artifact

	logger.Info(
		"model artifact loaded",
		"source", cfg.Model.Source,
		"version", artifact.Version(),
		"features", len(artifact.Features()),
	)

	return infra, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if i.Storage != nil {
		if err := i.Storage.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("storage start failed: %w", err)
		}
	}
	return nil
}

func (i *Infrastructure) loadArtifact(cfg *config.ModelConfig) (*model.Artifact, error) {
	if cfg.Source == config.ModelSourceBlob {
		ctx, cancel := context.WithTimeout(context.Background(), blobLoadTimeout)
		defer cancel()

		exists, err := i.Storage.Exists(ctx, cfg.BlobKey)
		if err != nil {
			return nil, fmt.Errorf("%w: check %s: %w", model.ErrModelUnavailable, cfg.BlobKey, err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: blob %s not found", model.ErrModelUnavailable, cfg.BlobKey)
		}

		body, err := i.Storage.Download(ctx, cfg.BlobKey)
		if err != nil {
			return nil, fmt.Errorf("%w: download %s: %w", model.ErrModelUnavailable, cfg.BlobKey, err)
		}
		defer body.Close()

		return model.Decode(body)
	}

	return model.LoadFile(cfg.Path)
}
