package audio

import (
	"github.com/jasperlabs/caption-gen/internal/config"
	"github.com/jasperlabs/caption-gen/internal/logger"
	"github.com/jasperlabs/caption-gen/pkg/executor"
)

type implAcquirer struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Acquirer instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Acquirer {
	return &implAcquirer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
