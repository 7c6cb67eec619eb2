package ports

import (
	"context"
	"io"

	"go.trai.ch/seer/internal/core/domain"
)

// Telemetry records the progress of a prediction run.
type Telemetry interface {
	// Record starts a new vertex for a unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a unit of recorded work, one per predicted project.
type Vertex interface {
	// Stdout returns a writer for informational output of the vertex.
	Stdout() io.Writer
	// Log records a message associated with the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, failed when err is not nil.
	Complete(err error)
}
