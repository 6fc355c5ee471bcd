package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

// ConsoleWriter is a progrock.Writer that prints one line per finished vertex.
// It is the terminal consumer of the recording session: each pipeline stage
// shows up as it completes, with its cache and error state.
type ConsoleWriter struct {
	out io.Writer

	mu   sync.Mutex
	done map[string]bool
}

// NewConsoleWriter creates a ConsoleWriter printing to out.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{
		out:  out,
		done: make(map[string]bool),
	}
}

// WriteStatus prints finished vertices. A vertex is printed once, on the
// first update carrying its completion time.
func (w *ConsoleWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		if v.Completed == nil || w.done[v.Id] {
			continue
		}
		w.done[v.Id] = true

		switch {
		case v.Error != nil:
			fmt.Fprintf(w.out, "✗ %s: %s\n", v.Name, *v.Error)
		case v.Cached:
			fmt.Fprintf(w.out, "✓ %s (cached)\n", v.Name)
		default:
			fmt.Fprintf(w.out, "✓ %s\n", v.Name)
		}
	}
	return nil
}

// Close does nothing; the underlying writer is not owned by the session.
func (w *ConsoleWriter) Close() error { return nil }
