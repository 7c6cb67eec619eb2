package progrock

import (
	"io"
	"sync"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
	"go.trai.ch/seer/internal/ui/output"
	"go.trai.ch/seer/internal/ui/style"
)

// StatusWriter is a progrock.Writer printing one line per completed vertex.
type StatusWriter struct {
	mu        sync.Mutex
	out       *termenv.Output
	completed map[string]struct{}
	failed    int
}

// NewStatusWriter creates a StatusWriter printing to w.
func NewStatusWriter(w io.Writer) *StatusWriter {
	return &StatusWriter{
		out:       output.New(w),
		completed: make(map[string]struct{}),
	}
}

// WriteStatus prints the vertices of the update that completed since the last update.
func (s *StatusWriter) WriteStatus(update *progrock.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Completed == nil {
			continue
		}
		if _, seen := s.completed[v.Id]; seen {
			continue
		}
		s.completed[v.Id] = struct{}{}

		line := s.out.String(style.Check + " " + v.Name).Foreground(s.out.Color(string(style.Green)))
		if v.Error != nil {
			s.failed++
			line = s.out.String(style.Cross + " " + v.Name + ": " + v.GetError()).Foreground(s.out.Color(string(style.Red)))
		}
		if _, err := s.out.WriteString(line.String() + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Close does nothing; every line is written as soon as its vertex completes.
func (s *StatusWriter) Close() error {
	return nil
}

// Completed returns the number of completed vertices.
func (s *StatusWriter) Completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.completed)
}

// Failed returns the number of vertices completed with an error.
func (s *StatusWriter) Failed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failed
}
