// Package rules is the pluggable type-check/lint rule engine: rule
// contracts, the default rule sets, services wiring, and the pipeline
// entrypoints (RunLint, RunTypecheck, RunFormat via package format, and
// RunCheck) that coordinate a single shared parse lifecycle. Ported from
// original_source/jominipy/typecheck/{rules,runner,services}.py,
// jominipy/lint/{rules,runner}.py, and jominipy/pipeline/entrypoints.py.
package rules

import (
	"github.com/jomini-tools/jominicore/asset"
	"github.com/jomini-tools/jominicore/schema"
)

// UnresolvedPolicy controls how a rule treats a reference or asset lookup
// that resolves to "unknown" (no registry/membership data available to
// decide). Ported from
// original_source/jominipy/typecheck/services.py's UnresolvedPolicy.
type UnresolvedPolicy string

const (
	// PolicyDefer treats an unknown resolution as provisionally valid: no
	// diagnostic is raised until the caller supplies real membership data.
	PolicyDefer UnresolvedPolicy = "defer"
	// PolicyError treats an unknown resolution as invalid.
	PolicyError UnresolvedPolicy = "error"
)

// Policy is the pair of unresolved-reference toggles carried on Services.
// Type-check rules consult UnresolvedReference; UnresolvedAsset is not read
// by any rule, and an Unknown asset lookup is always accepted. Ported from
// original_source/jominipy/typecheck/services.py's TypecheckPolicy.
type Policy struct {
	UnresolvedAsset     UnresolvedPolicy
	UnresolvedReference UnresolvedPolicy
}

// DefaultPolicy mirrors the reference implementation's dataclass defaults
// (both toggles default to "defer").
func DefaultPolicy() Policy {
	return Policy{UnresolvedAsset: PolicyDefer, UnresolvedReference: PolicyDefer}
}

// Services bundles every schema artifact and shared resolver type-check
// (and, transitively, lint) rules consult. Ported from
// original_source/jominipy/typecheck/services.py's TypecheckServices,
// widened per spec.md §4.10 with the scope/alias/link indexes the
// reference implementation's dataclass doesn't carry but its rule
// descriptions (FieldReferenceConstraintRule, FieldScopeContextRule,
// subtype-aware rules) require as injected services. Every field is
// optional: a zero-value Services is a valid, maximally permissive
// configuration (every *_ref spec is deferred, no subtype/scope data is
// available so those rules are no-ops).
type Services struct {
	AssetRegistry asset.Registry
	Policy        Policy

	// TypeMembershipsByKey maps a CWTools `type[...]` key to the set of
	// concrete member names discovered in the project (e.g. `type[country]`
	// -> every defined country tag).
	TypeMembershipsByKey map[string]map[string]struct{}
	// ValueMembershipsByKey maps a `value[...]` key to its members.
	ValueMembershipsByKey map[string]map[string]struct{}
	// EnumMembershipsByKey maps an `enum[...]` key to its members.
	EnumMembershipsByKey map[string]map[string]struct{}
	// ValueSetMembershipsByKey maps a `value_set[...]` key to the members
	// observed anywhere a field declares that value set (value sets, unlike
	// enums, are populated by usage rather than declared closed).
	ValueSetMembershipsByKey map[string]map[string]struct{}
	// AliasFamilyMembers maps an alias family name to its member names
	// (`alias[family:name]` declarations).
	AliasFamilyMembers map[string]map[string]struct{}
	// SingleAliasNames is the set of declared `single_alias[...]` names.
	SingleAliasNames map[string]struct{}
	// KnownScopes is the set of scope names the schema declares (used by
	// `scope_ref` specs and by FieldScopeContextRule to validate pushed
	// scopes).
	KnownScopes map[string]struct{}
	// ScopeReplacementRulesByPath maps a dotted field path (joined with ".",
	// e.g. "country_event.immediate") to its scope behavior for
	// FieldScopeContextRule.
	ScopeReplacementRulesByPath map[string]schema.ScopeReplacementRule
	// SubtypeMatchersByObject maps a top-level object key to the subtype
	// matchers that apply to its occurrences, for subtype-aware rules.
	SubtypeMatchersByObject map[string][]schema.SubtypeMatcher
}

// DefaultServices returns a zero-value-equivalent Services with an
// explicit NullRegistry and DefaultPolicy, matching
// typecheck/services.py's TypecheckServices() with no arguments.
func DefaultServices() Services {
	return Services{
		AssetRegistry: asset.NullRegistry{},
		Policy:        DefaultPolicy(),
	}
}
