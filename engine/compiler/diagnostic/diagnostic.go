// Package diagnostic defines the named diagnostic categories the compiler can
// report on and the warning levels that can be assigned to them.
package diagnostic

// CheckLevel controls how findings in a diagnostic group are reported.
type CheckLevel int

const (
	// Off suppresses all findings in the group.
	Off CheckLevel = iota
	// Warning reports findings without failing the compilation.
	Warning
	// Error reports findings and fails the compilation.
	Error
)

func (l CheckLevel) String() string {
	switch l {
	case Off:
		return "off"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Group is a named category of related diagnostics. Groups are comparable and
// usable as map keys; identity is the registered name.
type Group struct {
	name string
}

// Name returns the registered name of the group.
func (g Group) Name() string { return g.name }

func (g Group) String() string { return g.name }

// The fixed set of diagnostic groups the compiler registers.
var (
	AccessControls    = Group{"accessControls"}
	CheckRegExp       = Group{"checkRegExp"}
	Const             = Group{"const"}
	Deprecated        = Group{"deprecated"}
	ES5Strict         = Group{"es5Strict"}
	GlobalThis        = Group{"globalThis"}
	LintChecks        = Group{"lintChecks"}
	MissingOverride   = Group{"missingOverride"}
	MissingProperties = Group{"missingProperties"}
	MissingProvide    = Group{"missingProvide"}
	MissingRequire    = Group{"missingRequire"}
	MissingReturn     = Group{"missingReturn"}
	StrictCheckTypes  = Group{"strictCheckTypes"}
	SuspiciousCode    = Group{"suspiciousCode"}
	UndefinedVars     = Group{"undefinedVars"}
	UselessCode       = Group{"uselessCode"}
	Visibility        = Group{"visibility"}
)

// registered lists every group in registration order. Kept in sync with the
// vars above.
var registered = []Group{
	AccessControls,
	CheckRegExp,
	Const,
	Deprecated,
	ES5Strict,
	GlobalThis,
	LintChecks,
	MissingOverride,
	MissingProperties,
	MissingProvide,
	MissingRequire,
	MissingReturn,
	StrictCheckTypes,
	SuspiciousCode,
	UndefinedVars,
	UselessCode,
	Visibility,
}

// Registered returns every diagnostic group the compiler defines, in
// registration order. The returned slice is a copy.
func Registered() []Group {
	out := make([]Group, len(registered))
	copy(out, registered)
	return out
}

// ForName returns the registered group with the given name.
func ForName(name string) (Group, bool) {
	for _, g := range registered {
		if g.name == name {
			return g, true
		}
	}
	return Group{}, false
}
