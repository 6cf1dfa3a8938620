// ABOUTME: Registry of snapshot exporters keyed by format name
// ABOUTME: Export dispatches a graph to the named format

package snapshot

import (
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/prateek/cyclegc/graph"
)

// ErrNoExporter is returned when no exporter is registered for a format.
var ErrNoExporter = errors.New("no exporter registered for format")

// Exporter writes a snapshot graph in one interchange format.
type Exporter interface {
	// Format is the name Export dispatches on, e.g. "json".
	Format() string

	// Export writes g to w.
	Export(w io.Writer, g graph.Graph) error
}

type exporterRegistry struct {
	mu        sync.RWMutex
	exporters map[string]Exporter
}

var registry = &exporterRegistry{exporters: make(map[string]Exporter)}

// Register adds an exporter, replacing any previous one for the same format.
func Register(e Exporter) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.exporters[e.Format()] = e
}

// Export writes g to w in the named format.
func Export(w io.Writer, g graph.Graph, format string) error {
	registry.mu.RLock()
	e, ok := registry.exporters[format]
	registry.mu.RUnlock()
	if !ok {
		return ErrNoExporter
	}
	return e.Export(w, g)
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	out := make([]string, 0, len(registry.exporters))
	for name := range registry.exporters {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
