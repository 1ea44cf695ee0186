package tomography

import (
	"slices"
	"sync"

	"github.com/theapemachine/errnie"
)

/*
Registry maps basis names to descriptors so a tomography run can be set up
from a name such as "Pauli" or "SIC". Names are matched ignoring case and
surrounding whitespace.
*/
type Registry struct {
	mu     sync.RWMutex
	bases  map[string]*Basis
	config *Config
}

func NewRegistry(cfg *Config) *Registry {
	if cfg == nil {
		cfg = NewConfig()
	}

	return &Registry{
		bases:  make(map[string]*Basis),
		config: cfg,
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry holds the Pauli and SIC bases.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(nil)
		for _, b := range []*Basis{PauliBasis(), SICBasis()} {
			// Fixed, distinct names; Register cannot fail here.
			_ = defaultRegistry.Register(b)
		}
	})
	return defaultRegistry
}

// Register adds b under its name. A second basis with the same name is rejected.
func (r *Registry) Register(b *Basis) error {
	if b == nil {
		return newBasisError("", "register", ErrInvalidArgument, "cannot register a nil basis")
	}

	key := normalizeBasisName(b.Name())

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bases[key]; exists {
		return newBasisError(b.Name(), "register", ErrDuplicateBasis, "basis %s is already registered", b.Name())
	}

	r.bases[key] = b

	if r.config.Verbose {
		errnie.Info("Registry.Register - %s, total bases: %d", b, len(r.bases))
	}

	return nil
}

func (r *Registry) Lookup(name string) (*Basis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bases[normalizeBasisName(name)]
	if !ok {
		return nil, newBasisError(name, "lookup", ErrUnknownBasis, "unrecognized basis %q", name)
	}
	return b, nil
}

// Names returns the registered basis names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.bases))
	for _, b := range r.bases {
		names = append(names, b.Name())
	}
	slices.Sort(names)
	return names
}
