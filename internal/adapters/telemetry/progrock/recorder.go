// Package progrock implements ports.Telemetry on top of progrock.
package progrock

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/seer/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder records one progrock vertex per unit of work.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder writing to an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewProgress creates a Recorder that prints a status line to w whenever a vertex completes.
func NewProgress(w io.Writer) *Recorder {
	return NewRecorder(NewStatusWriter(w))
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a new vertex named name. Vertices are keyed by the digest of their name.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.w.Close()
}
