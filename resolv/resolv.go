package resolv

import (
	"fmt"
	"net/url"
	"sort"
	"sync"

	"github.com/birkland/lresolv"
	"github.com/birkland/lresolv/entity"
	"github.com/birkland/lresolv/resolvers/local"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// ImplProperty names the property selecting a resolver implementation
const ImplProperty = "resolver.impl"

// DefaultImpl is the resolver implementation used when none is configured
const DefaultImpl = "local"

// Factory creates a resolver implementation
type Factory func(log logr.Logger) (lresolv.ReferentResolver, error)

var registry = struct {
	sync.RWMutex
	factories map[string]Factory
}{
	factories: map[string]Factory{
		DefaultImpl: func(log logr.Logger) (lresolv.ReferentResolver, error) {
			return local.NewResolver(local.Config{Log: log})
		},
	},
}

// Register makes a resolver implementation available under the given name,
// replacing any previous registration.
func Register(name string, f Factory) {
	registry.Lock()
	defer registry.Unlock()
	registry.factories[name] = f
}

// Impls lists the names of all registered resolver implementations
func Impls() []string {
	registry.RLock()
	defer registry.RUnlock()

	names := make([]string, 0, len(registry.factories))
	for name := range registry.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Cxt establishes a context for resolving referents,
// i.e. a configured resolver implementation
type Cxt struct {
	resolver lresolv.ReferentResolver
	log      logr.Logger
}

// NewCxt establishes a new resolver context.  The implementation is chosen by
// the ImplProperty property, and is handed all the properties.
func NewCxt(props lresolv.Properties, log logr.Logger) (*Cxt, error) {
	if log.GetSink() == nil {
		log = logr.Discard()
	}

	impl := props[ImplProperty]
	if impl == "" {
		impl = DefaultImpl
	}

	registry.RLock()
	factory, ok := registry.factories[impl]
	registry.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown resolver implementation %s, expected one of %v", impl, Impls())
	}

	resolver, err := factory(log.WithName(impl))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to initialize resolver implementation %s", impl)
	}

	err = resolver.SetProperties(props)
	if err != nil {
		return nil, errors.Wrapf(err, "could not configure resolver implementation %s", impl)
	}

	return &Cxt{
		resolver: resolver,
		log:      log,
	}, nil
}

// Resolver returns the context's resolver
func (cxt *Cxt) Resolver() lresolv.ReferentResolver {
	return cxt.resolver
}

// ParseRef parses a set of strings into a referent.  The first is its identifier,
// which must parse as a URI.  Any others become string descriptors.
func (cxt *Cxt) ParseRef(refs []string) (*entity.Entity, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("no referent identifier given")
	}

	uri, err := url.Parse(refs[0])
	if err != nil {
		return nil, errors.Wrapf(err, "referent identifier %s is not a URI", refs[0])
	}

	referent := entity.NewReferent(uri)
	for _, ref := range refs[1:] {
		_ = referent.AddDescriptor(ref)
	}

	return referent, nil
}
