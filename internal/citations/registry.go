package citations

import (
	"fmt"
	"sort"

	"github.com/mOrsExtension/LUBA-Headnotes/internal/core/ports/driven"
)

// BuilderFunc creates a CitationScanner from generic config.
// Config is a map of scanner-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.CitationScanner, error)

// Registry maps scanner names to their builders.
// It allows dynamic construction of scanners from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new scanner registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a scanner builder to the registry.
// Name should be unique and match the scanner's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a scanner by name with the given config.
// Returns error if the scanner name is not registered.
func (r *Registry) Build(name string, cfg map[string]any) (driven.CitationScanner, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown citation scanner: %s", name)
	}
	return builder(cfg)
}

// BuildAll creates the named scanners in order. cfgs maps a scanner name
// to its config and may be nil.
func (r *Registry) BuildAll(names []string, cfgs map[string]map[string]any) ([]driven.CitationScanner, error) {
	scanners := make([]driven.CitationScanner, 0, len(names))
	for _, name := range names {
		s, err := r.Build(name, cfgs[name])
		if err != nil {
			return nil, err
		}
		scanners = append(scanners, s)
	}
	return scanners, nil
}

// Has returns true if a scanner with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered scanner names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
