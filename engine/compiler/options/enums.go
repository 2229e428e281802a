package options

// LanguageMode identifies an ECMAScript language level for input parsing or
// output generation.
type LanguageMode int

const (
	// LanguageModeStable is the latest language level the compiler fully
	// supports for both input and output.
	LanguageModeStable LanguageMode = iota
	LanguageModeES3
	LanguageModeES5
	LanguageModeES2015
	LanguageModeES2017
	LanguageModeES2020
	LanguageModeESNext
	// LanguageModeNoTranspile leaves the input language level untouched.
	LanguageModeNoTranspile
)

func (m LanguageMode) String() string {
	switch m {
	case LanguageModeStable:
		return "stable"
	case LanguageModeES3:
		return "es3"
	case LanguageModeES5:
		return "es5"
	case LanguageModeES2015:
		return "es2015"
	case LanguageModeES2017:
		return "es2017"
	case LanguageModeES2020:
		return "es2020"
	case LanguageModeESNext:
		return "esnext"
	case LanguageModeNoTranspile:
		return "no_transpile"
	default:
		return "unknown"
	}
}

// OutputJS controls whether the compiler emits real output or a sentinel
// placeholder (used by checks-only runs).
type OutputJS int

const (
	OutputJSNormal OutputJS = iota
	OutputJSSentinel
)

// AliasStringsMode controls aliasing of string literals to shared globals.
type AliasStringsMode int

const (
	AliasStringsNone AliasStringsMode = iota
	AliasStringsAll
)

// PropertyCollapseLevel controls flattening of multi-level property names.
type PropertyCollapseLevel int

const (
	PropertyCollapseNone PropertyCollapseLevel = iota
	PropertyCollapseModulesOnly
	PropertyCollapseAll
)

// Reach describes how far an optimization is allowed to apply.
type Reach int

const (
	ReachNone Reach = iota
	ReachLocalOnly
	ReachAll
)

// VariableRenamingPolicy controls renaming of variables.
type VariableRenamingPolicy int

const (
	VariableRenamingOff VariableRenamingPolicy = iota
	VariableRenamingLocal
	VariableRenamingAll
)

// PropertyRenamingPolicy controls renaming of properties.
type PropertyRenamingPolicy int

const (
	PropertyRenamingOff PropertyRenamingPolicy = iota
	PropertyRenamingAllUnquoted
)

// JSDocParsing controls how much JSDoc documentation the parser retains.
type JSDocParsing int

const (
	// JSDocParsingTypesOnly keeps type annotations and drops descriptions.
	JSDocParsingTypesOnly JSDocParsing = iota
	// JSDocParsingIncludeDescriptions keeps descriptions with surrounding
	// whitespace collapsed.
	JSDocParsingIncludeDescriptions
)
