// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.hollert.ch/sokforge/internal/core/domain"
)

// Executor defines the interface for running a build node's external command.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the given task's command, streaming the process output
	// to the provided writers. The call blocks until the process exits.
	//
	// A non-zero exit is returned as an error carrying the exit code; it is
	// terminal for the task, there are no retries.
	Execute(ctx context.Context, task *domain.Task, stdout, stderr io.Writer) error
}
