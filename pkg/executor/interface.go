package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs name with args and returns captured stdout
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// ExecuteInDir runs name with args in the given working directory
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
}
