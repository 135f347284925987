package schema

// RuleValueSpecKind classifies one acceptable shape/reference for a field's
// right-hand value. Ported from the usage surface of
// original_source/jominipy/typecheck/rules.py's `_matches_value_spec` (the
// concrete `RuleValueSpec`/`RuleFieldConstraint` dataclasses themselves sit
// in jominipy/rules/semantics.py, which was filtered out of the retrieval
// pack; this module reconstructs their shape from every call site that
// survived the filter: typecheck/rules.py and
// rules/adapters/common.py/subtypes.py).
type RuleValueSpecKind string

const (
	SpecMissing       RuleValueSpecKind = "missing"
	SpecPrimitive     RuleValueSpecKind = "primitive"
	SpecBlock         RuleValueSpecKind = "block"
	SpecTaggedBlock   RuleValueSpecKind = "tagged_block"
	SpecError         RuleValueSpecKind = "error"
	SpecUnknownRef    RuleValueSpecKind = "unknown_ref"
	SpecEnumRef       RuleValueSpecKind = "enum_ref"
	SpecScopeRef      RuleValueSpecKind = "scope_ref"
	SpecValueRef      RuleValueSpecKind = "value_ref"
	SpecValueSetRef   RuleValueSpecKind = "value_set_ref"
	SpecTypeRef       RuleValueSpecKind = "type_ref"
	SpecAliasFamilyRef RuleValueSpecKind = "alias_ref"
	SpecSingleAliasRef RuleValueSpecKind = "single_alias_ref"
)

// RuleValueSpec is one acceptable shape or reference for a field's value.
// `Primitive` is populated only when Kind == SpecPrimitive (one of `bool`,
// `int`, `float`, `date_field`, `percentage_field`, `filepath`, `icon`,
// `variable_field`, `value_field`, `int_variable_field`,
// `int_value_field`, `scope_field`, `scalar`, `localisation`,
// `localisation_synced`, `localisation_inline`); `Argument` carries the
// primitive's range/format argument (e.g. `0..100`, a filepath prefix) or,
// for *_ref kinds, the referenced enum/type/value-set/alias-family/scope
// name.
type RuleValueSpec struct {
	Kind      RuleValueSpecKind
	Primitive string
	Argument  string
	Raw       string
}

// RuleFieldConstraint is the merged set of acceptable value specs for one
// field, plus the cardinality/reference metadata type-check and lint rules
// consult.
type RuleFieldConstraint struct {
	Required               bool
	ValueSpecs             []RuleValueSpec
	Comparison             string
	ErrorIfOnlyMatch        bool
	OutgoingReferenceLabel string
	IncomingReferenceLabel string
}

// SubtypeMatcher is a subtype matcher extracted from `type[...]` subtype
// declarations: the condition under which an object occurrence is treated
// as this subtype, and the scope it pushes while fields inside it are
// scope-checked. Ported from
// rules/adapters/models.py's SubtypeMatcher.
type SubtypeMatcher struct {
	SubtypeName            string
	ExpectedFieldValues    [][2]string
	TypeKeyFilters         []string
	ExcludedTypeKeyFilters []string
	StartsWith             string
	PushScope              []string
}

// LinkDefinition is a normalized link definition from a special file's
// `links` section: the scope(s) a link like `owner`/`capital_scope`
// consumes and produces. Ported from
// rules/adapters/models.py's LinkDefinition.
type LinkDefinition struct {
	Name         string
	OutputScope  string
	InputScopes  []string
	Prefix       string
	FromData     bool
	DataSources  []string
	LinkType     string
}

// AliasDefinition is a normalized `alias[family:name]` declaration: the
// value specs and nested field constraints an invocation of this alias
// family member accepts. Ported from
// rules/adapters/models.py's AliasDefinition.
type AliasDefinition struct {
	Family           string
	Name             string
	ValueSpecs       []RuleValueSpec
	FieldConstraints map[string]RuleFieldConstraint
}

// AliasInvocation is a site where dynamic alias-family keys are accepted
// (e.g. every key under `triggers = { ... }` may be any `alias[trigger:*]`
// member). Ported from rules/adapters/models.py's AliasInvocation.
type AliasInvocation struct {
	Family          string
	ParentPath      []string
	RequiredSubtype string
}

// SingleAliasDefinition is a normalized `single_alias[...]` declaration:
// a named, non-family bundle of field constraints spliced into a parent
// block wherever it's invoked. Ported from
// rules/adapters/models.py's SingleAliasDefinition.
type SingleAliasDefinition struct {
	Name             string
	ValueSpecs       []RuleValueSpec
	FieldConstraints map[string]RuleFieldConstraint
}

// SingleAliasInvocation is a site where a single-alias should apply.
// Ported from rules/adapters/models.py's SingleAliasInvocation.
type SingleAliasInvocation struct {
	AliasName       string
	FieldPath       []string
	RequiredSubtype string
}

// ScopeReplacementRule describes how a field rewrites the active scope
// stack for its nested block: `this`/`from`/`prevN` aliases each map to
// zero-or-more concrete scope names produced by the field's own reference
// (`replace_scope`), and `push_scope` unconditionally pushes one or more
// scopes regardless of the field's value. FieldScopeContextRule in package
// rules consumes this to detect both a missing required scope and an
// ambiguous replace-scope mapping (more than one target scope for a single
// source alias). Grounded on spec.md's description of push_scope/
// replace_scope in §4.10 and §GLOSSARY; rules/adapters/subtypes.py's
// `push_scope` field on SubtypeMatcher is the sibling mechanism for
// subtype-conditional pushes.
type ScopeReplacementRule struct {
	FieldPath     []string
	RequiredScope string
	PushScope     []string
	ReplaceScope  map[string][]string
}
