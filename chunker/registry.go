package chunker

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/sevigo/textchunk/schema"
)

// Algorithm is one chunking strategy. Implementations are stateless pure
// functions of their inputs and safe for concurrent use.
type Algorithm interface {
	// Chunk splits text according to the algorithm's strategy.
	Chunk(text string, cfg Config) ([]schema.Chunk, error)
	// Name returns the stable method name.
	Name() string
}

// Registry tracks algorithms by method name.
type Registry struct {
	mu         sync.RWMutex
	algorithms map[string]Algorithm
	logger     *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		algorithms: make(map[string]Algorithm),
		logger:     logger,
	}
}

// Register adds an algorithm under its name.
func (r *Registry) Register(algorithm Algorithm) error {
	if algorithm == nil {
		return fmt.Errorf("%w: algorithm is nil", ErrNilAlgorithm)
	}
	name := algorithm.Name()
	if name == "" {
		return fmt.Errorf("%w: algorithm has no name", ErrNilAlgorithm)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.algorithms[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateMethod, name)
	}
	r.algorithms[name] = algorithm
	r.logger.Debug("registered chunking algorithm", "method", name)
	return nil
}

// Get returns the algorithm registered under name.
func (r *Registry) Get(name string) (Algorithm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	algorithm, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, name)
	}
	return algorithm, nil
}

// Names lists all registered method names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
