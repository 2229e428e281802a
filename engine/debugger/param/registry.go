package param

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrParamNotFound is returned by Lookup for names outside the catalog. The
// name space is closed, so hitting this is a caller bug, not a runtime state
// to recover from.
var ErrParamNotFound = errors.New("compilation param not found")

// Registry is the fixed collection of compilation parameters. It is built
// once from the catalog; every derived view is computed at construction and
// the whole structure is read-only afterwards, so unsynchronized concurrent
// reads are safe.
type Registry struct {
	byName  map[string]*Param
	sorted  []*Param
	byGroup map[Group][]*Param
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry built from the catalog.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// New builds a registry from the static catalog. It panics on a duplicate
// name or a missing Apply func: both are catalog authoring errors that can
// only be introduced at compile time.
func New() *Registry {
	params := catalog()
	r := &Registry{
		byName:  make(map[string]*Param, len(params)),
		sorted:  make([]*Param, 0, len(params)),
		byGroup: make(map[Group][]*Param, len(Groups())),
	}
	for _, g := range Groups() {
		r.byGroup[g] = nil
	}
	for _, p := range params {
		if p.Apply == nil {
			panic(fmt.Sprintf("param %s has no apply func", p.Name))
		}
		if _, exists := r.byName[p.Name]; exists {
			panic(fmt.Sprintf("duplicate param name: %s", p.Name))
		}
		r.byName[p.Name] = p
		r.sorted = append(r.sorted, p)
		// Declaration order within each group is the curated presentation
		// order, so the bucket is filled before the global sort below.
		r.byGroup[p.Group] = append(r.byGroup[p.Group], p)
	}
	sort.Slice(r.sorted, func(i, j int) bool {
		return r.sorted[i].Name < r.sorted[j].Name
	})
	return r
}

// Lookup returns the parameter with the given name.
func (r *Registry) Lookup(name string) (*Param, error) {
	p, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrParamNotFound, name)
	}
	return p, nil
}

// Has reports whether a parameter with the given name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Len returns the number of parameters in the catalog.
func (r *Registry) Len() int {
	return len(r.byName)
}

// AllSorted returns every parameter ordered by name. The returned slice is a
// copy; the parameters themselves are shared and must not be mutated.
func (r *Registry) AllSorted() []*Param {
	out := make([]*Param, len(r.sorted))
	copy(out, r.sorted)
	return out
}

// ByGroup returns the parameters partitioned by group. Every group declared
// in Groups has an entry, possibly empty. Within a group, parameters keep
// their catalog declaration order rather than the alphabetical order of
// AllSorted.
func (r *Registry) ByGroup() map[Group][]*Param {
	out := make(map[Group][]*Param, len(r.byGroup))
	for g, params := range r.byGroup {
		bucket := make([]*Param, len(params))
		copy(bucket, params)
		out[g] = bucket
	}
	return out
}

// Group returns the parameters of one group in declaration order.
func (r *Registry) Group(g Group) []*Param {
	params := r.byGroup[g]
	out := make([]*Param, len(params))
	copy(out, params)
	return out
}
