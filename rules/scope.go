package rules

import (
	"fmt"
	"strings"

	"github.com/jomini-tools/jominicore/diagnostic"
	"github.com/jomini-tools/jominicore/schema"
	"github.com/jomini-tools/jominicore/syntax"
)

// FieldScopeContextRule walks the field-fact ancestor paths produced by
// syntax.BuildFacts, re-deriving the `this`/`from`/`prevN` scope-alias
// stack a CWTools schema's push_scope/replace_scope directives would
// establish at each nesting level, and flags fields used outside their
// declared required scope (TYPECHECK_INVALID_SCOPE_CONTEXT) or whose
// ancestor chain has a replace_scope mapping with more than one candidate
// target scope (TYPECHECK_AMBIGUOUS_SCOPE_CONTEXT). Grounded on spec.md's
// §4.10 description of this rule and the GLOSSARY's scope-alias entries;
// no single original_source file implements this rule under this name
// (see DESIGN.md), so its scope-stack walk is original, built directly
// atop schema.ScopeReplacementRule and syntax.FieldFact.Path.
type FieldScopeContextRule struct {
	RulesByPath map[string]schema.ScopeReplacementRule
	KnownScopes map[string]struct{}
}

func (FieldScopeContextRule) Code() string                { return diagnostic.TypecheckInvalidScopeContext.Code }
func (FieldScopeContextRule) Name() string                { return "fieldScopeContext" }
func (FieldScopeContextRule) Domain() TypecheckDomain      { return domainCorrectness }
func (FieldScopeContextRule) Confidence() TypecheckConfidence { return DomainCorrectness }

func (r FieldScopeContextRule) Run(facts *syntax.Facts, typeFacts *TypecheckFacts, sourceText string) []diagnostic.Diagnostic {
	if len(r.RulesByPath) == 0 {
		return nil
	}

	var diags []diagnostic.Diagnostic
	for _, ff := range facts.AllFieldFacts {
		dottedPath := strings.Join(ff.Path, ".")
		rule, ok := r.RulesByPath[dottedPath]
		if !ok || rule.RequiredScope == "" {
			continue
		}

		current, ambiguous := r.resolveScope(ff.Path)
		if ambiguous {
			spec := diagnostic.TypecheckAmbiguousScopeContext
			diags = append(diags, spec.Build(
				findKeyOccurrenceRange(sourceText, ff.ObjectKey, ff.ObjectOccurrence),
				fmt.Sprintf("%s Field `%s` has conflicting scope-alias replacements.", spec.Message, dottedPath),
			))
			continue
		}
		if current != rule.RequiredScope {
			spec := diagnostic.TypecheckInvalidScopeContext
			diags = append(diags, spec.Build(
				findKeyOccurrenceRange(sourceText, ff.ObjectKey, ff.ObjectOccurrence),
				fmt.Sprintf("%s Field `%s` requires scope `%s`, current scope is `%s`.", spec.Message, dottedPath, rule.RequiredScope, current),
			))
		}
	}

	sortDiagnostics(diags)
	return diags
}

// resolveScope replays every ancestor path's push_scope/replace_scope
// directive, innermost ancestor winning, and reports the active scope at
// path's own nesting depth (not path itself, which names the field being
// checked, not a scope-pushing container).
func (r FieldScopeContextRule) resolveScope(path []string) (scope string, ambiguous bool) {
	scope = "this"
	for depth := 2; depth < len(path); depth++ {
		ancestorPath := strings.Join(path[:depth], ".")
		rule, ok := r.RulesByPath[ancestorPath]
		if !ok {
			continue
		}
		if len(rule.PushScope) > 1 {
			return "", true
		}
		if len(rule.PushScope) == 1 {
			scope = rule.PushScope[0]
			continue
		}
		if targets, ok := rule.ReplaceScope[scope]; ok {
			if len(targets) > 1 {
				return "", true
			}
			if len(targets) == 1 {
				scope = targets[0]
			}
		}
	}
	return scope, false
}
