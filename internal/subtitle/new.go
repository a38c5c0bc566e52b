package subtitle

import (
	"github.com/jasperlabs/caption-gen/internal/config"
	"github.com/jasperlabs/caption-gen/internal/logger"
	"github.com/jasperlabs/caption-gen/pkg/executor"
)

type implFetcher struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Fetcher instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Fetcher {
	return &implFetcher{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
