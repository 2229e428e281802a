package param

import (
	"fmt"

	"github.com/jscomp/jscomp/engine/compiler/diagnostic"
	"github.com/jscomp/jscomp/engine/compiler/options"
)

// setWarningLevel builds the apply func shared by all parameters that toggle
// a single diagnostic group between Warning and Off.
func setWarningLevel(g diagnostic.Group) ApplyFunc {
	return func(o *options.Options, value bool) {
		level := diagnostic.Off
		if value {
			level = diagnostic.Warning
		}
		o.SetWarningLevel(g, level)
	}
}

func warnHint(member string) string {
	return fmt.Sprintf("options.SetWarningLevel(diagnostic.%s, diagnostic.Warning)", member)
}

// catalog returns the full parameter table in declaration order. Declaration
// order within a group is the order the debugger presents the group in, so
// entries are grouped thematically rather than alphabetically.
func catalog() []*Param {
	return []*Param{
		{
			Name:  "ENABLE_ALL_DIAGNOSTIC_GROUPS",
			Group: GroupErrorChecking,
			Hint:  "sets every registered diagnostic group to diagnostic.Warning",
			// Applying false is deliberately a no-op: there is no record of
			// which levels the groups had before, so there is nothing to
			// restore.
			Apply: func(o *options.Options, value bool) {
				if !value {
					return
				}
				for _, g := range diagnostic.Registered() {
					o.SetWarningLevel(g, diagnostic.Warning)
				}
			},
		},
		{
			Name:  "TRANSPILE",
			Group: GroupTranspilation,
			Hint:  "options.SetLanguageOut(options.LanguageModeES5)",
			// Pins the input level too, so the toggle has a stable meaning
			// regardless of what the caller configured before.
			Apply: func(o *options.Options, value bool) {
				o.SetLanguageIn(options.LanguageModeStable)
				if value {
					o.SetLanguageOut(options.LanguageModeES5)
				} else {
					o.SetLanguageOut(options.LanguageModeNoTranspile)
				}
			},
		},
		{
			Name:  "SKIP_NON_TRANSPILATION_PASSES",
			Group: GroupTranspilation,
			Apply: func(o *options.Options, value bool) { o.SetSkipNonTranspilationPasses(value) },
		},

		// Checks.

		{
			Name:    "CHECK_TYPES",
			Group:   GroupErrorChecking,
			Default: true,
			Apply:   func(o *options.Options, value bool) { o.SetCheckTypes(value) },
			State:   func(o *options.Options) bool { return o.CheckTypes() },
		},
		{
			Name:  "STRICT_CHECK_TYPES",
			Group: GroupErrorChecking,
			Hint:  warnHint("StrictCheckTypes"),
			Apply: setWarningLevel(diagnostic.StrictCheckTypes),
		},
		{
			Name:  "CHECKS_ONLY",
			Group: GroupErrorChecking,
			Hint:  "options.SetChecksOnly(true) + options.SetOutputJS(options.OutputJSSentinel)",
			Apply: func(o *options.Options, value bool) {
				o.SetChecksOnly(value)
				if value {
					o.SetOutputJS(options.OutputJSSentinel)
				} else {
					o.SetOutputJS(options.OutputJSNormal)
				}
			},
		},
		{
			Name:  "PRESERVE_TYPES_FOR_DEBUGGING",
			Group: GroupErrorChecking,
			Hint:  "options.SetPreserveTypesForDebugging(true); may change optimization output",
			Apply: func(o *options.Options, value bool) { o.SetPreserveTypesForDebugging(value) },
		},
		{
			Name:    "REWRITE_MODULES_BEFORE_TYPECHECKING",
			Group:   GroupErrorChecking,
			Default: true,
			Hint:    "options.SetRewriteModulesBeforeTypechecking(true)",
			Apply:   func(o *options.Options, value bool) { o.SetRewriteModulesBeforeTypechecking(value) },
		},
		{
			Name:  "DISABLE_MODULE_REWRITING",
			Group: GroupErrorChecking,
			Hint:  "options.SetModuleRewritingEnabled(!value); only supported with CHECKS_ONLY",
			Apply: func(o *options.Options, value bool) { o.SetModuleRewritingEnabled(!value) },
		},
		{
			Name:  "CHECK_CONSTANTS",
			Group: GroupErrorChecking,
			Hint:  warnHint("Const"),
			Apply: setWarningLevel(diagnostic.Const),
		},
		{
			Name:  "CHECK_DEPRECATED",
			Group: GroupErrorChecking,
			Hint:  warnHint("Deprecated"),
			Apply: setWarningLevel(diagnostic.Deprecated),
		},
		{
			Name:  "CHECK_ES5_STRICT",
			Group: GroupErrorChecking,
			Hint:  warnHint("ES5Strict"),
			Apply: setWarningLevel(diagnostic.ES5Strict),
		},
		{
			Name:  "CHECK_GLOBAL_THIS",
			Group: GroupErrorChecking,
			Hint:  warnHint("GlobalThis"),
			Apply: setWarningLevel(diagnostic.GlobalThis),
		},
		{
			Name:  "CHECK_LINT",
			Group: GroupErrorChecking,
			Hint:  warnHint("LintChecks"),
			Apply: setWarningLevel(diagnostic.LintChecks),
		},
		{
			Name:  "CHECK_MISSING_RETURN",
			Group: GroupErrorChecking,
			Hint:  warnHint("MissingReturn"),
			Apply: setWarningLevel(diagnostic.MissingReturn),
			// Explicitly declared not in effect, as opposed to the nil-State
			// "cannot tell" parameters.
			State: func(o *options.Options) bool { return false },
		},
		{
			Name:  "CHECK_UNREACHABLE_CODE",
			Group: GroupErrorChecking,
			Hint:  warnHint("UselessCode"),
			Apply: setWarningLevel(diagnostic.UselessCode),
		},
		{
			Name:  "CHECK_PROVIDES",
			Group: GroupErrorChecking,
			Hint:  warnHint("MissingProvide"),
			Apply: setWarningLevel(diagnostic.MissingProvide),
		},
		{
			Name:  "CHECK_REQUIRES",
			Group: GroupErrorChecking,
			Hint:  warnHint("MissingRequire"),
			Apply: setWarningLevel(diagnostic.MissingRequire),
		},
		{
			Name:  "CHECK_REPORT_MISSING_OVERRIDE",
			Group: GroupErrorChecking,
			Hint:  warnHint("MissingOverride"),
			Apply: setWarningLevel(diagnostic.MissingOverride),
		},
		{
			Name:  "CHECK_SUSPICIOUS_CODE",
			Group: GroupErrorChecking,
			Apply: func(o *options.Options, value bool) { o.SetCheckSuspiciousCode(value) },
			State: func(o *options.Options) bool { return o.CheckSuspiciousCode() },
		},
		{
			Name:  "CHECK_SYMBOLS",
			Group: GroupErrorChecking,
			Apply: func(o *options.Options, value bool) { o.SetCheckSymbols(value) },
			State: func(o *options.Options) bool { return o.CheckSymbols() },
		},
		{
			Name:  "CHECK_VISIBILITY",
			Group: GroupErrorChecking,
			Hint:  warnHint("Visibility"),
			Apply: setWarningLevel(diagnostic.Visibility),
		},
		{
			Name:  "MISSING_PROPERTIES",
			Group: GroupErrorChecking,
			Hint:  warnHint("MissingProperties"),
			Apply: setWarningLevel(diagnostic.MissingProperties),
		},

		// Optimizations.

		{
			Name:  "ALIAS_ALL_STRINGS",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) {
				if value {
					o.SetAliasStringsMode(options.AliasStringsAll)
				} else {
					o.SetAliasStringsMode(options.AliasStringsNone)
				}
			},
			State: func(o *options.Options) bool {
				return o.AliasStringsMode() == options.AliasStringsAll
			},
		},
		{
			Name:  "AMBIGUATE_PROPERTIES",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetAmbiguateProperties(value) },
			State: func(o *options.Options) bool { return o.AmbiguateProperties() },
		},
		{
			Name:  "COALESCE_VARIABLE_NAMES",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetCoalesceVariableNames(value) },
			State: func(o *options.Options) bool { return o.CoalesceVariableNames() },
		},
		{
			Name:  "COLLAPSE_VARIABLE_DECLARATIONS",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetCollapseVariableDeclarations(value) },
			State: func(o *options.Options) bool { return o.CollapseVariableDeclarations() },
		},
		{
			Name:  "COLLAPSE_ANONYMOUS_FUNCTIONS",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetCollapseAnonymousFunctions(value) },
			State: func(o *options.Options) bool { return o.CollapseAnonymousFunctions() },
		},
		{
			Name:  "COLLAPSE_PROPERTIES",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) {
				if value {
					o.SetCollapsePropertiesLevel(options.PropertyCollapseAll)
				} else {
					o.SetCollapsePropertiesLevel(options.PropertyCollapseNone)
				}
			},
			State: func(o *options.Options) bool {
				return o.CollapsePropertiesLevel() == options.PropertyCollapseAll
			},
		},
		{
			Name:  "COLLAPSE_OBJECT_LITERALS",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetCollapseObjectLiterals(value) },
			State: func(o *options.Options) bool { return o.CollapseObjectLiterals() },
		},
		{
			Name:  "COMPUTE_FUNCTION_SIDE_EFFECTS",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetComputeFunctionSideEffects(value) },
			State: func(o *options.Options) bool { return o.ComputeFunctionSideEffects() },
		},
		{
			Name:  "CONVERT_TO_DOTTED_PROPERTIES",
			Group: GroupOptimization,
			Hint:  "options.SetConvertToDottedProperties(true)",
			Apply: func(o *options.Options, value bool) { o.SetConvertToDottedProperties(value) },
			State: func(o *options.Options) bool { return o.ConvertToDottedProperties() },
		},
		{
			Name:  "CROSS_CHUNK_CODE_MOTION",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetCrossChunkCodeMotion(value) },
			State: func(o *options.Options) bool { return o.CrossChunkCodeMotion() },
		},
		{
			Name:  "CROSS_CHUNK_METHOD_MOTION",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetCrossChunkMethodMotion(value) },
			State: func(o *options.Options) bool { return o.CrossChunkMethodMotion() },
		},
		{
			Name:  "DEAD_ASSIGNMENT_ELIMINATION",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetDeadAssignmentElimination(value) },
			State: func(o *options.Options) bool { return o.DeadAssignmentElimination() },
		},
		{
			Name:  "DEVIRTUALIZE_METHODS",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetDevirtualizeMethods(value) },
			State: func(o *options.Options) bool { return o.DevirtualizeMethods() },
		},
		{
			Name:  "DISAMBIGUATE_PROPERTIES",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetDisambiguateProperties(value) },
			State: func(o *options.Options) bool { return o.DisambiguateProperties() },
		},
		{
			Name:  "EXTRACT_PROTOTYPE_MEMBER_DECLARATIONS",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetExtractPrototypeMemberDeclarations(value) },
		},
		{
			Name:  "FOLD_CONSTANTS",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetFoldConstants(value) },
			State: func(o *options.Options) bool { return o.FoldConstants() },
		},
		{
			Name:  "INLINE_CONSTANTS",
			Group: GroupOptimization,
			Hint:  "options.SetInlineConstantVars(true)",
			Apply: func(o *options.Options, value bool) { o.SetInlineConstantVars(value) },
			State: func(o *options.Options) bool { return o.InlineConstantVars() },
		},
		{
			Name:  "INLINE_FUNCTIONS",
			Group: GroupOptimization,
			Hint:  "options.SetInlineFunctions(options.ReachAll)",
			Apply: func(o *options.Options, value bool) {
				if value {
					o.SetInlineFunctions(options.ReachAll)
				} else {
					o.SetInlineFunctions(options.ReachNone)
				}
			},
			State: func(o *options.Options) bool {
				return o.InlineFunctionsLevel() == options.ReachAll
			},
		},
		{
			Name:  "INLINE_PROPERTIES",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetInlineProperties(value) },
			State: func(o *options.Options) bool { return o.InlineProperties() },
		},
		{
			Name:  "INLINE_VARIABLES",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetInlineVariables(value) },
			State: func(o *options.Options) bool { return o.InlineVariables() },
		},
		{
			Name:  "LABEL_RENAMING",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetLabelRenaming(value) },
			State: func(o *options.Options) bool { return o.LabelRenaming() },
		},
		{
			Name:  "OPTIMIZE_CALLS",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetOptimizeCalls(value) },
			State: func(o *options.Options) bool { return o.OptimizeCalls() },
		},
		{
			Name:  "OPTIMIZE_CONSTRUCTORS",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetOptimizeESClassConstructors(value) },
			State: func(o *options.Options) bool { return o.OptimizeESClassConstructors() },
		},
		{
			Name:  "OPTIMIZE_ARGUMENTS_ARRAY",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetOptimizeArgumentsArray(value) },
			State: func(o *options.Options) bool { return o.OptimizeArgumentsArray() },
		},
		{
			Name:  "REMOVE_ABSTRACT_METHODS",
			Group: GroupOptimization,
			Hint:  "options.SetRemoveAbstractMethods(true)",
			Apply: func(o *options.Options, value bool) { o.SetRemoveAbstractMethods(value) },
		},
		{
			Name:  "REMOVE_DEAD_CODE",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetRemoveDeadCode(value) },
			State: func(o *options.Options) bool { return o.RemoveDeadCode() },
		},
		{
			Name:  "REMOVE_UNUSED_CLASS_PROPERTIES",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetRemoveUnusedClassProperties(value) },
			State: func(o *options.Options) bool { return o.RemoveUnusedClassProperties() },
		},
		{
			Name:  "REMOVE_UNUSED_PROTOTYPE_PROPERTIES",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetRemoveUnusedPrototypeProperties(value) },
			State: func(o *options.Options) bool { return o.RemoveUnusedPrototypeProperties() },
		},
		{
			Name:  "REMOVE_UNUSED_VARIABLES",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) {
				if value {
					o.SetRemoveUnusedVariables(options.ReachAll)
				} else {
					o.SetRemoveUnusedVariables(options.ReachNone)
				}
			},
			State: func(o *options.Options) bool {
				return o.RemoveUnusedVariables() == options.ReachAll
			},
		},
		{
			Name:  "REWRITE_FUNCTION_EXPRESSIONS",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetRewriteFunctionExpressions(value) },
			State: func(o *options.Options) bool { return o.RewriteFunctionExpressions() },
		},
		{
			Name:  "SMART_NAME_REMOVAL",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) { o.SetSmartNameRemoval(value) },
			State: func(o *options.Options) bool { return o.SmartNameRemoval() },
		},
		{
			Name:  "USE_TYPES_FOR_LOCAL_OPTIMIZATION",
			Group: GroupOptimization,
			Hint:  "options.SetUseTypesForLocalOptimization(true)",
			Apply: func(o *options.Options, value bool) { o.SetUseTypesForLocalOptimization(value) },
			State: func(o *options.Options) bool { return o.UseTypesForLocalOptimization() },
		},
		{
			Name:  "VARIABLE_RENAMING",
			Group: GroupOptimization,
			Hint:  "options.SetVariableRenaming(options.VariableRenamingAll)",
			Apply: func(o *options.Options, value bool) {
				if value {
					o.SetVariableRenaming(options.VariableRenamingAll)
				} else {
					o.SetVariableRenaming(options.VariableRenamingOff)
				}
			},
			State: func(o *options.Options) bool {
				return o.VariableRenaming() == options.VariableRenamingAll
			},
		},
		{
			Name:  "PROPERTY_RENAMING",
			Group: GroupOptimization,
			Hint:  "options.SetPropertyRenaming(options.PropertyRenamingAllUnquoted)",
			Apply: func(o *options.Options, value bool) {
				if value {
					o.SetPropertyRenaming(options.PropertyRenamingAllUnquoted)
				} else {
					o.SetPropertyRenaming(options.PropertyRenamingOff)
				}
			},
			State: func(o *options.Options) bool {
				return o.PropertyRenaming() == options.PropertyRenamingAllUnquoted
			},
		},
		{
			Name:  "MOVE_FUNCTION_DECLARATIONS",
			Group: GroupOptimization,
			Apply: func(o *options.Options, value bool) {
				o.SetRewriteGlobalDeclarationsForTryCatchWrapping(value)
			},
			State: func(o *options.Options) bool {
				return o.RewriteGlobalDeclarationsForTryCatchWrapping()
			},
		},
		{
			Name:  "GENERATE_EXPORTS",
			Group: GroupMisc,
			Apply: func(o *options.Options, value bool) { o.SetGenerateExports(value) },
			State: func(o *options.Options) bool { return o.GenerateExports() },
		},
		{
			Name:  "ALLOW_LOCAL_EXPORTS",
			Group: GroupMisc,
			Hint:  "options.SetExportLocalPropertyDefinitions(true)",
			Apply: func(o *options.Options, value bool) { o.SetExportLocalPropertyDefinitions(value) },
			State: func(o *options.Options) bool { return o.ExportLocalPropertyDefinitions() },
		},
		{
			Name:  "SYNTHETIC_BLOCK_MARKER",
			Group: GroupOptimization,
			Hint:  `options.SetSyntheticBlockStartMarker("start") + options.SetSyntheticBlockEndMarker("end")`,
			Apply: func(o *options.Options, value bool) {
				if value {
					o.SetSyntheticBlockStartMarker("start")
					o.SetSyntheticBlockEndMarker("end")
				} else {
					o.SetSyntheticBlockStartMarker("")
					o.SetSyntheticBlockEndMarker("")
				}
			},
		},

		// Special passes.

		{
			Name:  "ANGULAR_PASS",
			Group: GroupSpecialPasses,
			Apply: func(o *options.Options, value bool) { o.SetAngularPass(value) },
		},
		{
			Name:  "CHROME_PASS",
			Group: GroupSpecialPasses,
			Apply: func(o *options.Options, value bool) { o.SetChromePass(value) },
		},
		{
			Name:    "CLOSURE_PASS",
			Group:   GroupSpecialPasses,
			Default: true,
			Apply:   func(o *options.Options, value bool) { o.SetClosurePass(value) },
			State:   func(o *options.Options) bool { return o.ClosurePass() },
		},
		{
			Name:  "POLYMER_PASS",
			Group: GroupSpecialPasses,
			Apply: func(o *options.Options, value bool) {
				if value {
					version := 1
					o.SetPolymerVersion(&version)
				} else {
					o.SetPolymerVersion(nil)
				}
			},
		},

		// Misc.

		{
			Name:  "GENERATE_PSEUDO_NAMES",
			Group: GroupMisc,
			Apply: func(o *options.Options, value bool) { o.SetGeneratePseudoNames(value) },
			State: func(o *options.Options) bool { return o.GeneratePseudoNames() },
		},
		{
			Name:  "CONTINUE_AFTER_ERRORS",
			Group: GroupMisc,
			Apply: func(o *options.Options, value bool) { o.SetContinueAfterErrors(value) },
		},
		{
			Name:  "PRESERVE_DETAILED_SOURCE_INFO",
			Group: GroupMisc,
			Apply: func(o *options.Options, value bool) { o.SetPreserveDetailedSourceInfo(value) },
		},
		{
			Name:  "PRESERVE_FULL_JSDOC_DESCRIPTIONS",
			Group: GroupMisc,
			Hint:  "options.SetJSDocParsing(options.JSDocParsingIncludeDescriptions)",
			Apply: func(o *options.Options, value bool) {
				if value {
					o.SetJSDocParsing(options.JSDocParsingIncludeDescriptions)
				} else {
					o.SetJSDocParsing(options.JSDocParsingTypesOnly)
				}
			},
		},
		{
			Name:    "PRESERVE_TYPE_ANNOTATIONS",
			Group:   GroupMisc,
			Default: true,
			Apply:   func(o *options.Options, value bool) { o.SetPreserveTypeAnnotations(value) },
		},
		{
			Name:    "PRETTY_PRINT",
			Group:   GroupMisc,
			Default: true,
			Apply:   func(o *options.Options, value bool) { o.SetPrettyPrint(value) },
		},
	}
}
