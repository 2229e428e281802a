// Package param defines the debugger's catalog of boolean compilation
// parameters. Each parameter knows which category it belongs to, its default
// value, and how to apply itself to a caller-owned options.Options. The
// catalog is fixed at build time; the registry built from it is read-only and
// safe for concurrent use.
package param

import "github.com/jscomp/jscomp/engine/compiler/options"

// Group categorizes parameters for presentation. The set is closed; buckets
// always appear in the order declared here.
type Group int

const (
	GroupErrorChecking Group = iota
	GroupTranspilation
	GroupOptimization
	GroupSpecialPasses
	GroupMisc
)

// Groups returns every group in presentation order.
func Groups() []Group {
	return []Group{
		GroupErrorChecking,
		GroupTranspilation,
		GroupOptimization,
		GroupSpecialPasses,
		GroupMisc,
	}
}

// DisplayName returns the human-readable label for the group.
func (g Group) DisplayName() string {
	switch g {
	case GroupErrorChecking:
		return "Lint and Error Checking"
	case GroupTranspilation:
		return "Transpilation"
	case GroupOptimization:
		return "Optimization"
	case GroupSpecialPasses:
		return "Specialized Passes"
	case GroupMisc:
		return "Other"
	default:
		return "Unknown"
	}
}

func (g Group) String() string {
	switch g {
	case GroupErrorChecking:
		return "error_checking"
	case GroupTranspilation:
		return "transpilation"
	case GroupOptimization:
		return "optimization"
	case GroupSpecialPasses:
		return "special_passes"
	case GroupMisc:
		return "misc"
	default:
		return "unknown"
	}
}

// ApplyFunc mutates the given options so the parameter's behavior is enabled
// or disabled. It must touch only the options it is handed, never shared
// state, and it never fails.
type ApplyFunc func(o *options.Options, value bool)

// StateFunc reads back whether the parameter is currently in effect on the
// given options.
type StateFunc func(o *options.Options) bool

// Param describes one boolean compilation toggle. All fields are set once in
// the catalog and never mutated.
type Param struct {
	// Name is the unique identifier of the parameter.
	Name string

	// Group is the presentation category the parameter belongs to.
	Group Group

	// Default is the value the debugger pre-selects for this parameter.
	Default bool

	// Hint optionally documents the exact options mutation Apply performs,
	// for parameters where the name alone does not make that obvious. It
	// also carries documented preconditions (for example "only supported
	// with CHECKS_ONLY"); those are never enforced here. Empty means no
	// hint.
	Hint string

	// Apply performs the setter side effect on the options. Required.
	Apply ApplyFunc

	// State reads the parameter's current effect back from the options.
	// Nil means the setting cannot be cheaply introspected, which is
	// distinct from "known to be disabled".
	State StateFunc
}

// IsApplied reports whether the options currently reflect this parameter as
// enabled. Parameters without a State reader always report false; use
// Introspectable to tell that apart from a genuine "disabled".
func (p *Param) IsApplied(o *options.Options) bool {
	if p.State == nil {
		return false
	}
	return p.State(o)
}

// Introspectable reports whether IsApplied returns ground truth for this
// parameter rather than the not-tracked default.
func (p *Param) Introspectable() bool {
	return p.State != nil
}

// ApplyHint returns the documentation hint and whether one is declared.
func (p *Param) ApplyHint() (string, bool) {
	return p.Hint, p.Hint != ""
}

func (p *Param) String() string {
	return p.Name
}
