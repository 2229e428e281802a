package param

import (
	"fmt"
	"maps"

	"github.com/jscomp/jscomp/engine/compiler/options"
)

// Values is a chosen assignment of parameter names to booleans, typically the
// catalog defaults overlaid with the toggles a debugger session flipped.
type Values map[string]bool

// Defaults returns the declared default for every parameter in the registry.
func Defaults(r *Registry) Values {
	v := make(Values, r.Len())
	for _, p := range r.AllSorted() {
		v[p.Name] = p.Default
	}
	return v
}

// Merge overlays other onto v. Entries present in other win, including ones
// that set a parameter back to false; entries absent from other are left
// untouched. A plain key copy is the only merge that honors this on a bool
// map, where a merging library cannot tell "absent" from "false".
func (v Values) Merge(other Values) {
	maps.Copy(v, other)
}

// ApplyAll applies every entry to the given options. Entries are applied in
// the registry's sorted order so the outcome is deterministic when one
// parameter's apply touches a field another also writes. Unknown names abort
// with the registry's not-found error before anything else is applied.
func (v Values) ApplyAll(r *Registry, o *options.Options) error {
	for name := range v {
		if !r.Has(name) {
			return fmt.Errorf("%w: %s", ErrParamNotFound, name)
		}
	}
	for _, p := range r.AllSorted() {
		value, ok := v[p.Name]
		if !ok {
			continue
		}
		p.Apply(o, value)
	}
	return nil
}
