// Package options holds the mutable compilation configuration the rest of the
// toolchain reads. An Options value is owned by the caller that builds it; the
// compiler never mutates it after a run starts. Setters perform no validation
// and no cross-field enforcement: combinations that make no sense (for example
// disabling module rewriting outside a checks-only run) are tolerated here and
// resolved downstream.
package options

import "github.com/jscomp/jscomp/engine/compiler/diagnostic"

// Options is the full set of knobs for one compilation. Build one with New to
// start from the compiler's baseline configuration.
type Options struct {
	languageIn  LanguageMode
	languageOut LanguageMode

	skipNonTranspilationPasses bool

	checkTypes          bool
	checksOnly          bool
	outputJS            OutputJS
	checkSuspiciousCode bool
	checkSymbols        bool

	preserveTypesForDebugging        bool
	rewriteModulesBeforeTypechecking bool
	moduleRewritingEnabled           bool

	warningLevels map[diagnostic.Group]diagnostic.CheckLevel

	aliasStringsMode                   AliasStringsMode
	ambiguateProperties                bool
	coalesceVariableNames              bool
	collapseVariableDeclarations       bool
	collapseAnonymousFunctions         bool
	collapsePropertiesLevel            PropertyCollapseLevel
	collapseObjectLiterals             bool
	computeFunctionSideEffects         bool
	convertToDottedProperties          bool
	crossChunkCodeMotion               bool
	crossChunkMethodMotion             bool
	deadAssignmentElimination          bool
	devirtualizeMethods                bool
	disambiguateProperties             bool
	extractPrototypeMemberDeclarations bool
	foldConstants                      bool
	inlineConstantVars                 bool
	inlineFunctionsLevel               Reach
	inlineProperties                   bool
	inlineVariables                    bool
	labelRenaming                      bool
	optimizeCalls                      bool
	optimizeESClassConstructors        bool
	optimizeArgumentsArray             bool
	removeAbstractMethods              bool
	removeDeadCode                     bool
	removeUnusedClassProperties        bool
	removeUnusedPrototypeProperties    bool
	removeUnusedVariables              Reach
	rewriteFunctionExpressions         bool
	smartNameRemoval                   bool
	useTypesForLocalOptimization       bool
	variableRenaming                   VariableRenamingPolicy
	propertyRenaming                   PropertyRenamingPolicy

	rewriteGlobalDeclarationsForTryCatchWrapping bool

	syntheticBlockStartMarker string
	syntheticBlockEndMarker   string

	angularPass    bool
	chromePass     bool
	closurePass    bool
	polymerVersion *int

	generateExports                bool
	exportLocalPropertyDefinitions bool
	generatePseudoNames            bool
	continueAfterErrors            bool
	preserveDetailedSourceInfo     bool
	jsDocParsing                   JSDocParsing
	preserveTypeAnnotations        bool
	prettyPrint                    bool
}

// New returns an Options at the compiler baseline. Module rewriting starts
// enabled; everything else starts at its zero value.
func New() *Options {
	return &Options{moduleRewritingEnabled: true}
}

// Language levels.

func (o *Options) SetLanguageIn(m LanguageMode)  { o.languageIn = m }
func (o *Options) SetLanguageOut(m LanguageMode) { o.languageOut = m }
func (o *Options) LanguageIn() LanguageMode      { return o.languageIn }
func (o *Options) LanguageOut() LanguageMode     { return o.languageOut }

func (o *Options) SetSkipNonTranspilationPasses(v bool) { o.skipNonTranspilationPasses = v }
func (o *Options) SkipNonTranspilationPasses() bool     { return o.skipNonTranspilationPasses }

// Checks.

func (o *Options) SetCheckTypes(v bool) { o.checkTypes = v }
func (o *Options) CheckTypes() bool     { return o.checkTypes }

func (o *Options) SetChecksOnly(v bool) { o.checksOnly = v }
func (o *Options) ChecksOnly() bool     { return o.checksOnly }

func (o *Options) SetOutputJS(v OutputJS) { o.outputJS = v }
func (o *Options) OutputJS() OutputJS     { return o.outputJS }

func (o *Options) SetCheckSuspiciousCode(v bool) { o.checkSuspiciousCode = v }
func (o *Options) CheckSuspiciousCode() bool     { return o.checkSuspiciousCode }

func (o *Options) SetCheckSymbols(v bool) { o.checkSymbols = v }
func (o *Options) CheckSymbols() bool     { return o.checkSymbols }

func (o *Options) SetPreserveTypesForDebugging(v bool) { o.preserveTypesForDebugging = v }
func (o *Options) PreserveTypesForDebugging() bool     { return o.preserveTypesForDebugging }

func (o *Options) SetRewriteModulesBeforeTypechecking(v bool) {
	o.rewriteModulesBeforeTypechecking = v
}

func (o *Options) RewriteModulesBeforeTypechecking() bool {
	return o.rewriteModulesBeforeTypechecking
}

func (o *Options) SetModuleRewritingEnabled(v bool) { o.moduleRewritingEnabled = v }
func (o *Options) ModuleRewritingEnabled() bool     { return o.moduleRewritingEnabled }

// SetWarningLevel assigns a reporting level to one diagnostic group.
func (o *Options) SetWarningLevel(g diagnostic.Group, level diagnostic.CheckLevel) {
	if o.warningLevels == nil {
		o.warningLevels = make(map[diagnostic.Group]diagnostic.CheckLevel)
	}
	o.warningLevels[g] = level
}

// WarningLevel reports the level assigned to a diagnostic group. Groups that
// were never assigned report Off.
func (o *Options) WarningLevel(g diagnostic.Group) diagnostic.CheckLevel {
	return o.warningLevels[g]
}

// Optimizations.

func (o *Options) SetAliasStringsMode(v AliasStringsMode) { o.aliasStringsMode = v }
func (o *Options) AliasStringsMode() AliasStringsMode     { return o.aliasStringsMode }

func (o *Options) SetAmbiguateProperties(v bool) { o.ambiguateProperties = v }
func (o *Options) AmbiguateProperties() bool     { return o.ambiguateProperties }

func (o *Options) SetCoalesceVariableNames(v bool) { o.coalesceVariableNames = v }
func (o *Options) CoalesceVariableNames() bool     { return o.coalesceVariableNames }

func (o *Options) SetCollapseVariableDeclarations(v bool) { o.collapseVariableDeclarations = v }
func (o *Options) CollapseVariableDeclarations() bool     { return o.collapseVariableDeclarations }

func (o *Options) SetCollapseAnonymousFunctions(v bool) { o.collapseAnonymousFunctions = v }
func (o *Options) CollapseAnonymousFunctions() bool     { return o.collapseAnonymousFunctions }

func (o *Options) SetCollapsePropertiesLevel(v PropertyCollapseLevel) {
	o.collapsePropertiesLevel = v
}

func (o *Options) CollapsePropertiesLevel() PropertyCollapseLevel {
	return o.collapsePropertiesLevel
}

func (o *Options) SetCollapseObjectLiterals(v bool) { o.collapseObjectLiterals = v }
func (o *Options) CollapseObjectLiterals() bool     { return o.collapseObjectLiterals }

func (o *Options) SetComputeFunctionSideEffects(v bool) { o.computeFunctionSideEffects = v }
func (o *Options) ComputeFunctionSideEffects() bool     { return o.computeFunctionSideEffects }

func (o *Options) SetConvertToDottedProperties(v bool) { o.convertToDottedProperties = v }
func (o *Options) ConvertToDottedProperties() bool     { return o.convertToDottedProperties }

func (o *Options) SetCrossChunkCodeMotion(v bool) { o.crossChunkCodeMotion = v }
func (o *Options) CrossChunkCodeMotion() bool     { return o.crossChunkCodeMotion }

func (o *Options) SetCrossChunkMethodMotion(v bool) { o.crossChunkMethodMotion = v }
func (o *Options) CrossChunkMethodMotion() bool     { return o.crossChunkMethodMotion }

func (o *Options) SetDeadAssignmentElimination(v bool) { o.deadAssignmentElimination = v }
func (o *Options) DeadAssignmentElimination() bool     { return o.deadAssignmentElimination }

func (o *Options) SetDevirtualizeMethods(v bool) { o.devirtualizeMethods = v }
func (o *Options) DevirtualizeMethods() bool     { return o.devirtualizeMethods }

func (o *Options) SetDisambiguateProperties(v bool) { o.disambiguateProperties = v }
func (o *Options) DisambiguateProperties() bool     { return o.disambiguateProperties }

func (o *Options) SetExtractPrototypeMemberDeclarations(v bool) {
	o.extractPrototypeMemberDeclarations = v
}

func (o *Options) ExtractPrototypeMemberDeclarations() bool {
	return o.extractPrototypeMemberDeclarations
}

func (o *Options) SetFoldConstants(v bool) { o.foldConstants = v }
func (o *Options) FoldConstants() bool     { return o.foldConstants }

func (o *Options) SetInlineConstantVars(v bool) { o.inlineConstantVars = v }
func (o *Options) InlineConstantVars() bool     { return o.inlineConstantVars }

func (o *Options) SetInlineFunctions(v Reach)  { o.inlineFunctionsLevel = v }
func (o *Options) InlineFunctionsLevel() Reach { return o.inlineFunctionsLevel }

func (o *Options) SetInlineProperties(v bool) { o.inlineProperties = v }
func (o *Options) InlineProperties() bool     { return o.inlineProperties }

func (o *Options) SetInlineVariables(v bool) { o.inlineVariables = v }
func (o *Options) InlineVariables() bool     { return o.inlineVariables }

func (o *Options) SetLabelRenaming(v bool) { o.labelRenaming = v }
func (o *Options) LabelRenaming() bool     { return o.labelRenaming }

func (o *Options) SetOptimizeCalls(v bool) { o.optimizeCalls = v }
func (o *Options) OptimizeCalls() bool     { return o.optimizeCalls }

func (o *Options) SetOptimizeESClassConstructors(v bool) { o.optimizeESClassConstructors = v }
func (o *Options) OptimizeESClassConstructors() bool     { return o.optimizeESClassConstructors }

func (o *Options) SetOptimizeArgumentsArray(v bool) { o.optimizeArgumentsArray = v }
func (o *Options) OptimizeArgumentsArray() bool     { return o.optimizeArgumentsArray }

func (o *Options) SetRemoveAbstractMethods(v bool) { o.removeAbstractMethods = v }
func (o *Options) RemoveAbstractMethods() bool     { return o.removeAbstractMethods }

func (o *Options) SetRemoveDeadCode(v bool) { o.removeDeadCode = v }
func (o *Options) RemoveDeadCode() bool     { return o.removeDeadCode }

func (o *Options) SetRemoveUnusedClassProperties(v bool) { o.removeUnusedClassProperties = v }
func (o *Options) RemoveUnusedClassProperties() bool     { return o.removeUnusedClassProperties }

func (o *Options) SetRemoveUnusedPrototypeProperties(v bool) {
	o.removeUnusedPrototypeProperties = v
}

func (o *Options) RemoveUnusedPrototypeProperties() bool {
	return o.removeUnusedPrototypeProperties
}

func (o *Options) SetRemoveUnusedVariables(v Reach) { o.removeUnusedVariables = v }
func (o *Options) RemoveUnusedVariables() Reach     { return o.removeUnusedVariables }

func (o *Options) SetRewriteFunctionExpressions(v bool) { o.rewriteFunctionExpressions = v }
func (o *Options) RewriteFunctionExpressions() bool     { return o.rewriteFunctionExpressions }

func (o *Options) SetSmartNameRemoval(v bool) { o.smartNameRemoval = v }
func (o *Options) SmartNameRemoval() bool     { return o.smartNameRemoval }

func (o *Options) SetUseTypesForLocalOptimization(v bool) { o.useTypesForLocalOptimization = v }
func (o *Options) UseTypesForLocalOptimization() bool     { return o.useTypesForLocalOptimization }

func (o *Options) SetVariableRenaming(v VariableRenamingPolicy) { o.variableRenaming = v }
func (o *Options) VariableRenaming() VariableRenamingPolicy     { return o.variableRenaming }

func (o *Options) SetPropertyRenaming(v PropertyRenamingPolicy) { o.propertyRenaming = v }
func (o *Options) PropertyRenaming() PropertyRenamingPolicy     { return o.propertyRenaming }

func (o *Options) SetRewriteGlobalDeclarationsForTryCatchWrapping(v bool) {
	o.rewriteGlobalDeclarationsForTryCatchWrapping = v
}

func (o *Options) RewriteGlobalDeclarationsForTryCatchWrapping() bool {
	return o.rewriteGlobalDeclarationsForTryCatchWrapping
}

// SetSyntheticBlockStartMarker sets the marker that opens a synthetic block.
// An empty string clears it.
func (o *Options) SetSyntheticBlockStartMarker(marker string) {
	o.syntheticBlockStartMarker = marker
}

// SetSyntheticBlockEndMarker sets the marker that closes a synthetic block.
// An empty string clears it.
func (o *Options) SetSyntheticBlockEndMarker(marker string) {
	o.syntheticBlockEndMarker = marker
}

func (o *Options) SyntheticBlockStartMarker() string { return o.syntheticBlockStartMarker }
func (o *Options) SyntheticBlockEndMarker() string   { return o.syntheticBlockEndMarker }

// Special passes.

func (o *Options) SetAngularPass(v bool) { o.angularPass = v }
func (o *Options) AngularPass() bool     { return o.angularPass }

func (o *Options) SetChromePass(v bool) { o.chromePass = v }
func (o *Options) ChromePass() bool     { return o.chromePass }

func (o *Options) SetClosurePass(v bool) { o.closurePass = v }
func (o *Options) ClosurePass() bool     { return o.closurePass }

// SetPolymerVersion enables the Polymer pass for the given major version; nil
// disables it.
func (o *Options) SetPolymerVersion(version *int) { o.polymerVersion = version }
func (o *Options) PolymerVersion() *int           { return o.polymerVersion }

// Output and misc.

func (o *Options) SetGenerateExports(v bool) { o.generateExports = v }
func (o *Options) GenerateExports() bool     { return o.generateExports }

func (o *Options) SetExportLocalPropertyDefinitions(v bool) {
	o.exportLocalPropertyDefinitions = v
}

func (o *Options) ExportLocalPropertyDefinitions() bool {
	return o.exportLocalPropertyDefinitions
}

func (o *Options) SetGeneratePseudoNames(v bool) { o.generatePseudoNames = v }
func (o *Options) GeneratePseudoNames() bool     { return o.generatePseudoNames }

func (o *Options) SetContinueAfterErrors(v bool) { o.continueAfterErrors = v }
func (o *Options) ContinueAfterErrors() bool     { return o.continueAfterErrors }

func (o *Options) SetPreserveDetailedSourceInfo(v bool) { o.preserveDetailedSourceInfo = v }
func (o *Options) PreserveDetailedSourceInfo() bool     { return o.preserveDetailedSourceInfo }

func (o *Options) SetJSDocParsing(v JSDocParsing) { o.jsDocParsing = v }
func (o *Options) JSDocParsing() JSDocParsing     { return o.jsDocParsing }

func (o *Options) SetPreserveTypeAnnotations(v bool) { o.preserveTypeAnnotations = v }
func (o *Options) PreserveTypeAnnotations() bool     { return o.preserveTypeAnnotations }

func (o *Options) SetPrettyPrint(v bool) { o.prettyPrint = v }
func (o *Options) PrettyPrint() bool     { return o.prettyPrint }
