package rules

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/jomini-tools/jominicore/diagnostic"
	"github.com/jomini-tools/jominicore/localisation"
	"github.com/jomini-tools/jominicore/syntax"
	"github.com/jomini-tools/jominicore/text"
)

// LintDomain classifies a lint rule's basis, as opposed to a type-check
// rule's "correctness" guarantee.
type LintDomain string

// LintConfidence classifies how strongly a lint finding should be trusted.
type LintConfidence string

const (
	LintDomainSemantic  LintDomain = "semantic"
	LintDomainStyle     LintDomain = "style"
	LintDomainHeuristic LintDomain = "heuristic"

	LintConfidencePolicy    LintConfidence = "policy"
	LintConfidenceHeuristic LintConfidence = "heuristic"
)

// LintRule is the Biome-style lint rule contract. Ported from
// original_source/jominipy/lint/rules.py's LintRule Protocol.
type LintRule interface {
	Code() string
	Name() string
	Category() string
	Domain() LintDomain
	Confidence() LintConfidence
	Run(facts *syntax.Facts, typeFacts *TypecheckFacts, sourceText string) []diagnostic.Diagnostic
}

// SemanticInconsistentShapeRule re-surfaces TypecheckFacts'
// inconsistent-shape findings as a softer, heuristic-confidence lint (the
// type-check rule of the same underlying fact is sound/correctness;
// this one is heuristic/semantic, mirroring the duplication in the
// reference implementation). Ported from lint/rules.py's
// SemanticInconsistentShapeRule.
type SemanticInconsistentShapeRule struct{}

func (SemanticInconsistentShapeRule) Code() string             { return diagnostic.LintSemanticInconsistentShape.Code }
func (SemanticInconsistentShapeRule) Name() string              { return "semanticInconsistentShape" }
func (SemanticInconsistentShapeRule) Category() string          { return "semantic" }
func (SemanticInconsistentShapeRule) Domain() LintDomain         { return LintDomainSemantic }
func (SemanticInconsistentShapeRule) Confidence() LintConfidence { return LintConfidenceHeuristic }

func (r SemanticInconsistentShapeRule) Run(facts *syntax.Facts, typeFacts *TypecheckFacts, sourceText string) []diagnostic.Diagnostic {
	keys := make([]string, 0, len(typeFacts.InconsistentTopLevelShapes))
	for key := range typeFacts.InconsistentTopLevelShapes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var diags []diagnostic.Diagnostic
	for _, key := range keys {
		spec := diagnostic.LintSemanticInconsistentShape
		diags = append(diags, diagnostic.Diagnostic{
			Code:     r.Code(),
			Message:  fmt.Sprintf("%s Key `%s` should use one shape.", spec.Message, key),
			Range:    findKeyRange(sourceText, key),
			Severity: spec.Severity,
			Hint:     "Move alternative shapes under explicit nested keys.",
			Category: spec.Category,
		})
	}
	return diags
}

// SemanticMissingRequiredFieldRule flags top-level objects that omit a
// field their schema marks required. Ported from lint/rules.py's
// SemanticMissingRequiredFieldRule, with the HOI4-specific
// load_hoi4_required_fields() default dropped (that convenience loader sits
// on the out-of-scope .cwt adapter stack, see DESIGN.md) in favor of an
// explicit, caller-supplied map.
type SemanticMissingRequiredFieldRule struct {
	RequiredFieldsByObject map[string][]string
}

func (SemanticMissingRequiredFieldRule) Code() string    { return diagnostic.LintSemanticMissingRequiredField.Code }
func (SemanticMissingRequiredFieldRule) Name() string    { return "semanticMissingRequiredField" }
func (SemanticMissingRequiredFieldRule) Category() string { return "semantic" }
func (SemanticMissingRequiredFieldRule) Domain() LintDomain { return LintDomainSemantic }
func (SemanticMissingRequiredFieldRule) Confidence() LintConfidence { return LintConfidencePolicy }

func (r SemanticMissingRequiredFieldRule) Run(facts *syntax.Facts, typeFacts *TypecheckFacts, sourceText string) []diagnostic.Diagnostic {
	keys := make([]string, 0, len(facts.TopLevelValues))
	for key := range facts.TopLevelValues {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var diags []diagnostic.Diagnostic
	for _, key := range keys {
		requiredFields, ok := r.RequiredFieldsByObject[key]
		if !ok {
			continue
		}
		for _, value := range facts.TopLevelValues[key] {
			block, ok := value.(*syntax.Block)
			if !ok || !block.IsObjectLike() {
				continue
			}
			blockObject := block.ToObject(false)
			for _, requiredField := range requiredFields {
				if _, present := blockObject[requiredField]; present {
					continue
				}
				spec := diagnostic.LintSemanticMissingRequiredField
				diags = append(diags, diagnostic.Diagnostic{
					Code:     r.Code(),
					Message:  fmt.Sprintf("%s Object `%s` is missing `%s`.", spec.Message, key, requiredField),
					Range:    findKeyRange(sourceText, key),
					Severity: spec.Severity,
					Hint:     fmt.Sprintf("Add `%s = ...` to `%s`.", requiredField, key),
					Category: spec.Category,
				})
			}
		}
	}
	return diags
}

var singleLineMultiValueBlockPattern = regexp.MustCompile(`\{[^\n{}]*\s+[^\n{}]*\}`)

// StyleSingleLineMultiValueBlockRule flags `{ ... }` blocks containing
// multiple values on one line. Ported verbatim (same regex) from
// lint/rules.py's StyleSingleLineMultiValueBlockRule.
type StyleSingleLineMultiValueBlockRule struct{}

func (StyleSingleLineMultiValueBlockRule) Code() string     { return diagnostic.LintStyleSingleLineBlock.Code }
func (StyleSingleLineMultiValueBlockRule) Name() string     { return "styleSingleLineMultiValueBlock" }
func (StyleSingleLineMultiValueBlockRule) Category() string { return "style" }
func (StyleSingleLineMultiValueBlockRule) Domain() LintDomain { return LintDomainStyle }
func (StyleSingleLineMultiValueBlockRule) Confidence() LintConfidence { return LintConfidencePolicy }

func (r StyleSingleLineMultiValueBlockRule) Run(facts *syntax.Facts, typeFacts *TypecheckFacts, sourceText string) []diagnostic.Diagnostic {
	spec := diagnostic.LintStyleSingleLineBlock
	var diags []diagnostic.Diagnostic
	for _, loc := range singleLineMultiValueBlockPattern.FindAllStringIndex(sourceText, -1) {
		diags = append(diags, diagnostic.Diagnostic{
			Code:     r.Code(),
			Message:  spec.Message,
			Range:    text.RangeAt(text.FromInt(loc[0]), text.FromInt(loc[1]-loc[0])),
			Severity: spec.Severity,
			Hint:     "Use multiline layout inside braces when multiple values are present.",
			Category: spec.Category,
		})
	}
	return diags
}

// LocalisationCoverageRule flags top-level objects whose `name`-like
// field (or another configured field) references a localisation key that
// isn't covered in the required locales under the given policy. This has
// no original_source equivalent (the reference's localisation package
// stops at computing missing locales, see DESIGN.md on package
// localisation); grounded on spec.md §4.10's description of a
// localisation-coverage lint consuming KeyProvider + CoveragePolicy,
// following this package's existing rule shape.
type LocalisationCoverageRule struct {
	Provider          localisation.KeyProvider
	RequiredLocales   []string
	Policy            localisation.CoveragePolicy
	KeyFieldsByObject map[string]string
}

func (LocalisationCoverageRule) Code() string     { return diagnostic.LintSemanticMissingRequiredField.Code }
func (LocalisationCoverageRule) Name() string     { return "localisationCoverage" }
func (LocalisationCoverageRule) Category() string { return "semantic" }
func (LocalisationCoverageRule) Domain() LintDomain { return LintDomainSemantic }
func (LocalisationCoverageRule) Confidence() LintConfidence { return LintConfidencePolicy }

func (r LocalisationCoverageRule) Run(facts *syntax.Facts, typeFacts *TypecheckFacts, sourceText string) []diagnostic.Diagnostic {
	if r.Provider == nil {
		return nil
	}
	objectKeys := make([]string, 0, len(r.KeyFieldsByObject))
	for key := range r.KeyFieldsByObject {
		objectKeys = append(objectKeys, key)
	}
	sort.Strings(objectKeys)

	var diags []diagnostic.Diagnostic
	for _, objectKey := range objectKeys {
		fieldName := r.KeyFieldsByObject[objectKey]
		fieldMap, ok := facts.ObjectFieldMap[objectKey]
		if !ok {
			continue
		}
		fieldFact, ok := fieldMap[fieldName]
		if !ok {
			continue
		}
		scalar, ok := fieldFact.Value.(*syntax.Scalar)
		if !ok {
			continue
		}
		if localisation.Covered(r.Provider, scalar.RawText, r.RequiredLocales, r.Policy) {
			continue
		}
		spec := diagnostic.LintSemanticMissingRequiredField
		coverage := "every required locale"
		if r.Policy == localisation.CoverageAny {
			coverage = "any required locale"
		}
		diags = append(diags, diagnostic.Diagnostic{
			Code:     r.Code(),
			Message:  fmt.Sprintf("Localisation key `%s` referenced by `%s.%s` is not covered in %s.", scalar.RawText, objectKey, fieldName, coverage),
			Range:    findKeyOccurrenceRange(sourceText, objectKey, fieldFact.ObjectOccurrence),
			Severity: spec.Severity,
			Hint:     "Add the missing locale translations.",
			Category: spec.Category,
		})
	}
	return diags
}

// DefaultLintRules returns the built-in lint rules plus any extras
// (e.g. a configured LocalisationCoverageRule), sorted deterministically
// by (category, code, name) per spec.md §4.10. Ported from
// lint/rules.py's default_lint_rules, widened to accept caller-supplied
// required-fields data and extra rules instead of baking in the HOI4
// loader.
func DefaultLintRules(requiredFieldsByObject map[string][]string, extra ...LintRule) []LintRule {
	rulesList := []LintRule{
		SemanticInconsistentShapeRule{},
		SemanticMissingRequiredFieldRule{RequiredFieldsByObject: requiredFieldsByObject},
		StyleSingleLineMultiValueBlockRule{},
	}
	rulesList = append(rulesList, extra...)
	sort.Slice(rulesList, func(i, j int) bool {
		a, b := rulesList[i], rulesList[j]
		if a.Category() != b.Category() {
			return a.Category() < b.Category()
		}
		if a.Code() != b.Code() {
			return a.Code() < b.Code()
		}
		return a.Name() < b.Name()
	})
	return rulesList
}

// ValidateLintRules enforces every lint rule's domain, confidence, and
// code prefix at registration time. Ported from lint/rules.py's
// validate_lint_rules.
func ValidateLintRules(rulesList []LintRule) error {
	for _, rule := range rulesList {
		switch rule.Domain() {
		case LintDomainSemantic, LintDomainStyle, LintDomainHeuristic:
		default:
			return fmt.Errorf("lint rule `%s` has invalid domain `%s`; expected semantic/style/heuristic", rule.Name(), rule.Domain())
		}
		switch rule.Confidence() {
		case LintConfidencePolicy, LintConfidenceHeuristic:
		default:
			return fmt.Errorf("lint rule `%s` has invalid confidence `%s`; expected policy/heuristic", rule.Name(), rule.Confidence())
		}
		if len(rule.Code()) < 5 || rule.Code()[:5] != "LINT_" {
			return fmt.Errorf("lint rule `%s` has invalid code `%s`; expected `LINT_` prefix", rule.Name(), rule.Code())
		}
	}
	return nil
}
