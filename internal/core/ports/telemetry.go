package ports

import (
	"context"
	"io"
)

// Telemetry records build progress as a set of vertices, one per build node.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts recording a new vertex for the named node.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is the recording handle for one build node.
type Vertex interface {
	// Stdout returns a writer capturing the node's standard output stream.
	Stdout() io.Writer

	// Stderr returns a writer capturing the node's error output stream.
	Stderr() io.Writer

	// Cached marks the vertex as a cache hit.
	Cached()

	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}
