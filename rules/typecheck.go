package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/runenames"

	"github.com/jomini-tools/jominicore/asset"
	"github.com/jomini-tools/jominicore/diagnostic"
	"github.com/jomini-tools/jominicore/schema"
	"github.com/jomini-tools/jominicore/syntax"
)

// firstNonASCIIRune returns the first rune in s outside the ASCII range, if
// any, so a diagnostic can name the offending character.
func firstNonASCIIRune(s string) (rune, bool) {
	for _, r := range s {
		if r > 0x7F {
			return r, true
		}
	}
	return 0, false
}

// TypecheckDomain is the fixed domain every type-check rule reports.
// Ported from original_source/jominipy/typecheck/rules.py's
// TypecheckDomain literal.
type TypecheckDomain string

// TypecheckConfidence is the fixed confidence every type-check rule
// reports.
type TypecheckConfidence string

const (
	DomainCorrectness TypecheckConfidence = "sound"
	domainCorrectness TypecheckDomain     = "correctness"
)

// TypecheckRule is the Biome-style type-check rule contract. Ported from
// typecheck/rules.py's TypecheckRule Protocol.
type TypecheckRule interface {
	Code() string
	Name() string
	Domain() TypecheckDomain
	Confidence() TypecheckConfidence
	Run(facts *syntax.Facts, typeFacts *TypecheckFacts, sourceText string) []diagnostic.Diagnostic
}

// InconsistentTopLevelShapeRule flags top-level keys whose value shape
// varies across occurrences (spec.md §8 S4). Ported from
// typecheck/rules.py's InconsistentTopLevelShapeRule.
type InconsistentTopLevelShapeRule struct{}

func (InconsistentTopLevelShapeRule) Code() string                { return diagnostic.TypecheckInconsistentValueShape.Code }
func (InconsistentTopLevelShapeRule) Name() string                { return "inconsistentTopLevelShape" }
func (InconsistentTopLevelShapeRule) Domain() TypecheckDomain      { return domainCorrectness }
func (InconsistentTopLevelShapeRule) Confidence() TypecheckConfidence { return DomainCorrectness }

func (r InconsistentTopLevelShapeRule) Run(facts *syntax.Facts, typeFacts *TypecheckFacts, sourceText string) []diagnostic.Diagnostic {
	keys := make([]string, 0, len(typeFacts.InconsistentTopLevelShapes))
	for key := range typeFacts.InconsistentTopLevelShapes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var diags []diagnostic.Diagnostic
	for _, key := range keys {
		shapes := typeFacts.InconsistentTopLevelShapes[key]
		spec := diagnostic.TypecheckInconsistentValueShape
		diags = append(diags, spec.Build(
			findKeyRange(sourceText, key),
			fmt.Sprintf("%s Key `%s` uses %s.", spec.Message, key, strings.Join(shapes, ", ")),
		))
	}
	return diags
}

// FieldConstraintRule checks each immediate object field against
// CWTools-derived primitive constraints, consulting a per-object-occurrence
// subtype matcher (if any) to pick the right constraint set. Ported from
// typecheck/rules.py's FieldConstraintRule, widened with subtype dispatch
// grounded on rules/adapters/subtypes.py's
// build_subtype_field_constraints_by_object.
type FieldConstraintRule struct {
	FieldConstraintsByObject        map[string]map[string]schema.RuleFieldConstraint
	SubtypeFieldConstraintsByObject map[string]map[string]map[string]schema.RuleFieldConstraint
	SubtypeMatchersByObject         map[string][]schema.SubtypeMatcher
	AssetRegistry                   asset.Registry
}

func (FieldConstraintRule) Code() string                { return diagnostic.TypecheckInvalidFieldType.Code }
func (FieldConstraintRule) Name() string                { return "fieldConstraint" }
func (FieldConstraintRule) Domain() TypecheckDomain      { return domainCorrectness }
func (FieldConstraintRule) Confidence() TypecheckConfidence { return DomainCorrectness }

func (r FieldConstraintRule) Run(facts *syntax.Facts, typeFacts *TypecheckFacts, sourceText string) []diagnostic.Diagnostic {
	registry := r.AssetRegistry
	if registry == nil {
		registry = asset.NullRegistry{}
	}

	objectKeys := make([]string, 0, len(r.FieldConstraintsByObject))
	for key := range r.FieldConstraintsByObject {
		objectKeys = append(objectKeys, key)
	}
	sort.Strings(objectKeys)

	var diags []diagnostic.Diagnostic
	for _, objectKey := range objectKeys {
		fieldConstraints := r.FieldConstraintsByObject[objectKey]
		fieldFacts, ok := facts.ObjectFields[objectKey]
		if !ok {
			continue
		}
		matchers := r.SubtypeMatchersByObject[objectKey]
		subtypeConstraints := r.SubtypeFieldConstraintsByObject[objectKey]

		byFieldName := make(map[string][]syntax.FieldFact)
		for _, ff := range fieldFacts {
			byFieldName[ff.FieldKey] = append(byFieldName[ff.FieldKey], ff)
		}

		for fieldName, constraint := range fieldConstraints {
			for _, fieldFact := range byFieldName[fieldName] {
				effective := constraint
				if subtype := matchOccurrenceSubtype(matchers, fieldFacts, fieldFact.ObjectOccurrence); subtype != "" {
					if perSubtype, ok := subtypeConstraints[subtype][fieldName]; ok {
						effective = perSubtype
					}
				}
				if matchesFieldConstraint(fieldFact.Value, effective, registry) {
					continue
				}
				spec := diagnostic.TypecheckInvalidFieldType
				d := spec.Build(
					findKeyOccurrenceRange(sourceText, objectKey, fieldFact.ObjectOccurrence),
					fmt.Sprintf("%s `%s.%s` does not match %s.", spec.Message, objectKey, fieldName, formatValueSpecs(effective.ValueSpecs)),
				)
				if scalar, ok := fieldFact.Value.(*syntax.Scalar); ok {
					if offending, found := firstNonASCIIRune(scalar.RawText); found {
						d.Hint = fmt.Sprintf("Value contains %U (%s); CWTools primitives expect plain ASCII scalars.", offending, runenames.Name(offending))
					}
				}
				diags = append(diags, d)
			}
		}
	}
	sortDiagnostics(diags)
	return diags
}

// matchOccurrenceSubtype returns the first matcher whose expected-field
// conditions are satisfied by occurrenceIndex's sibling fields, or "" if
// none match.
func matchOccurrenceSubtype(matchers []schema.SubtypeMatcher, allFields []syntax.FieldFact, occurrenceIndex int) string {
	if len(matchers) == 0 {
		return ""
	}
	occurrenceFields := make(map[string]string)
	for _, ff := range allFields {
		if ff.ObjectOccurrence != occurrenceIndex {
			continue
		}
		if scalar, ok := ff.Value.(*syntax.Scalar); ok {
			occurrenceFields[ff.FieldKey] = scalar.RawText
		}
	}
	for _, matcher := range matchers {
		if subtypeMatches(matcher, occurrenceFields) {
			return matcher.SubtypeName
		}
	}
	return ""
}

func subtypeMatches(matcher schema.SubtypeMatcher, fields map[string]string) bool {
	for _, expected := range matcher.ExpectedFieldValues {
		if fields[expected[0]] != expected[1] {
			return false
		}
	}
	return true
}

var (
	variableRefPattern = regexp.MustCompile(`^[A-Za-z_@][A-Za-z0-9_:@.\-]*$`)
	rangePattern        = regexp.MustCompile(`^(-?(?:\d+\.\d+|\d+)|-?inf)\.\.(-?(?:\d+\.\d+|\d+)|inf)$`)
)

func matchesFieldConstraint(value syntax.Value, constraint schema.RuleFieldConstraint, registry asset.Registry) bool {
	if len(constraint.ValueSpecs) == 0 {
		return true
	}
	for _, spec := range constraint.ValueSpecs {
		if matchesValueSpec(value, spec, registry) {
			return true
		}
	}
	return false
}

func matchesValueSpec(value syntax.Value, spec schema.RuleValueSpec, registry asset.Registry) bool {
	switch spec.Kind {
	case schema.SpecUnknownRef, schema.SpecEnumRef, schema.SpecScopeRef, schema.SpecValueRef,
		schema.SpecValueSetRef, schema.SpecTypeRef, schema.SpecAliasFamilyRef, schema.SpecSingleAliasRef:
		return true
	case schema.SpecBlock:
		_, ok := value.(*syntax.Block)
		return ok
	case schema.SpecTaggedBlock:
		_, ok := value.(*syntax.TaggedBlockValue)
		return ok
	case schema.SpecError:
		return true
	case schema.SpecPrimitive:
		scalar, ok := value.(*syntax.Scalar)
		if !ok {
			return false
		}
		if spec.Primitive == "" {
			return true
		}
		return matchesPrimitive(scalar, spec.Primitive, spec.Argument, registry)
	default:
		return true
	}
}

func matchesPrimitive(value *syntax.Scalar, primitive, argument string, registry asset.Registry) bool {
	parsed := syntax.InterpretScalar(value.RawText, value.WasQuoted, false)

	switch primitive {
	case "scalar", "localisation", "localisation_synced", "localisation_inline":
		return true
	case "bool":
		return parsed.Bool != nil
	case "int":
		return matchesNumeric(parsed.Number, argument, true)
	case "float":
		return matchesNumeric(parsed.Number, argument, false)
	case "date_field":
		return parsed.Date != nil
	case "percentage_field":
		raw := strings.TrimSpace(value.RawText)
		if !strings.HasSuffix(raw, "%") {
			return false
		}
		stripped := syntax.InterpretScalar(raw[:len(raw)-1], value.WasQuoted, false)
		return stripped.Number != nil
	case "variable_field", "value_field":
		return matchesNumericOrReference(value.RawText, parsed.Number, argument, false)
	case "int_variable_field", "int_value_field":
		return matchesNumericOrReference(value.RawText, parsed.Number, argument, true)
	case "filepath", "icon":
		return matchesAssetPrimitive(value.RawText, primitive, argument, registry)
	case "scope_field":
		return true
	default:
		return true
	}
}

func matchesNumeric(number any, argument string, requireInt bool) bool {
	if number == nil {
		return false
	}
	if requireInt {
		if _, ok := number.(int64); !ok {
			return false
		}
	}
	bounds, ok := parseRangeArgument(argument)
	if !ok {
		return true
	}
	return inRange(numericValue(number), bounds)
}

func matchesNumericOrReference(rawText string, number any, argument string, requireInt bool) bool {
	if number != nil {
		if requireInt {
			if _, ok := number.(int64); !ok {
				return false
			}
		}
		bounds, ok := parseRangeArgument(argument)
		if !ok {
			return true
		}
		return inRange(numericValue(number), bounds)
	}
	return variableRefPattern.MatchString(strings.TrimSpace(rawText))
}

func numericValue(number any) float64 {
	switch n := number.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

func matchesAssetPrimitive(rawText, primitive, argument string, registry asset.Registry) bool {
	rawValue := stripScalarQuotes(rawText)
	if rawValue == "" {
		return false
	}

	var candidate string
	switch primitive {
	case "filepath":
		candidate = buildFilepathCandidate(rawValue, argument)
	case "icon":
		candidate = buildIconCandidate(rawValue, argument)
	default:
		return true
	}
	if candidate == "" {
		return false
	}

	lookup := registry.Lookup(candidate)
	if lookup.Status == asset.Unknown {
		return true
	}
	return lookup.Status == asset.Found
}

func buildFilepathCandidate(rawValue, argument string) string {
	spec := strings.TrimSpace(argument)
	if spec == "" {
		return rawValue
	}
	prefix := spec
	extension := ""
	if idx := strings.Index(spec, ","); idx >= 0 {
		prefix = strings.TrimSpace(spec[:idx])
		extension = strings.TrimSpace(spec[idx+1:])
	}
	return prefix + rawValue + extension
}

func buildIconCandidate(rawValue, argument string) string {
	prefix := strings.TrimRight(strings.TrimSpace(argument), "/")
	if prefix == "" {
		return rawValue + ".dds"
	}
	return prefix + "/" + rawValue + ".dds"
}

func stripScalarQuotes(rawText string) string {
	stripped := strings.TrimSpace(rawText)
	if len(stripped) >= 2 && stripped[0] == '"' && stripped[len(stripped)-1] == '"' {
		return stripped[1 : len(stripped)-1]
	}
	return stripped
}

func parseRangeArgument(argument string) (bounds [2]*float64, ok bool) {
	if argument == "" {
		return bounds, false
	}
	m := rangePattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(argument)))
	if m == nil {
		return bounds, false
	}
	bounds[0] = parseRangeBound(m[1])
	bounds[1] = parseRangeBound(m[2])
	return bounds, true
}

func parseRangeBound(raw string) *float64 {
	if raw == "-inf" || raw == "inf" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func inRange(value float64, bounds [2]*float64) bool {
	if bounds[0] != nil && value < *bounds[0] {
		return false
	}
	if bounds[1] != nil && value > *bounds[1] {
		return false
	}
	return true
}

func formatValueSpecs(specs []schema.RuleValueSpec) string {
	if len(specs) == 0 {
		return "schema constraints"
	}
	rendered := make([]string, 0, len(specs))
	for _, spec := range specs {
		rendered = append(rendered, spec.Raw)
	}
	return strings.Join(rendered, " | ")
}

// FieldReferenceConstraintRule validates enum/type/value-set/alias-family/
// scope/single-alias references against injected membership services,
// honoring Services.Policy.UnresolvedReference when a key has no
// membership data at all (as opposed to having data that doesn't contain
// the referenced name). Grounded on spec.md §4.10's
// "FieldReferenceConstraintRule" description; there is no surviving
// original_source rule of this name to port verbatim (see DESIGN.md), so
// this follows FieldConstraintRule's own structure and diagnostic style.
type FieldReferenceConstraintRule struct {
	FieldConstraintsByObject map[string]map[string]schema.RuleFieldConstraint
	Services                 Services
}

func (FieldReferenceConstraintRule) Code() string           { return diagnostic.TypecheckInvalidFieldReference.Code }
func (FieldReferenceConstraintRule) Name() string           { return "fieldReferenceConstraint" }
func (FieldReferenceConstraintRule) Domain() TypecheckDomain { return domainCorrectness }
func (FieldReferenceConstraintRule) Confidence() TypecheckConfidence { return DomainCorrectness }

func (r FieldReferenceConstraintRule) Run(facts *syntax.Facts, typeFacts *TypecheckFacts, sourceText string) []diagnostic.Diagnostic {
	objectKeys := make([]string, 0, len(r.FieldConstraintsByObject))
	for key := range r.FieldConstraintsByObject {
		objectKeys = append(objectKeys, key)
	}
	sort.Strings(objectKeys)

	var diags []diagnostic.Diagnostic
	for _, objectKey := range objectKeys {
		fieldMap := facts.ObjectFieldMap[objectKey]
		if fieldMap == nil {
			continue
		}
		for fieldName, constraint := range r.FieldConstraintsByObject[objectKey] {
			fieldFact, ok := fieldMap[fieldName]
			if !ok {
				continue
			}
			scalar, ok := fieldFact.Value.(*syntax.Scalar)
			if !ok {
				continue
			}
			if !r.anyReferenceSpecUnresolved(constraint.ValueSpecs, scalar.RawText) {
				continue
			}
			spec := diagnostic.TypecheckInvalidFieldReference
			diags = append(diags, spec.Build(
				findKeyOccurrenceRange(sourceText, objectKey, fieldFact.ObjectOccurrence),
				fmt.Sprintf("%s `%s.%s` does not resolve to a known reference.", spec.Message, objectKey, fieldName),
			))
		}
	}
	sortDiagnostics(diags)
	return diags
}

func (r FieldReferenceConstraintRule) isReferenceSpec(spec schema.RuleValueSpec) bool {
	switch spec.Kind {
	case schema.SpecEnumRef, schema.SpecTypeRef, schema.SpecValueRef, schema.SpecValueSetRef,
		schema.SpecAliasFamilyRef, schema.SpecScopeRef, schema.SpecSingleAliasRef:
		return true
	default:
		return false
	}
}

func (r FieldReferenceConstraintRule) anyReferenceSpecUnresolved(specs []schema.RuleValueSpec, rawText string) bool {
	foundReferenceSpec := false
	for _, spec := range specs {
		if !r.isReferenceSpec(spec) {
			continue
		}
		foundReferenceSpec = true
		status := r.resolveStatus(spec, rawText)
		if status == referenceResolved || status == referenceUnknown {
			return false
		}
	}
	if !foundReferenceSpec {
		return false
	}
	return true
}

type referenceStatus int

const (
	referenceUnresolved referenceStatus = iota
	referenceResolved
	referenceUnknown
)

func (r FieldReferenceConstraintRule) resolveStatus(spec schema.RuleValueSpec, rawText string) referenceStatus {
	value := stripScalarQuotes(rawText)
	var membership map[string]map[string]struct{}
	switch spec.Kind {
	case schema.SpecEnumRef:
		membership = r.Services.EnumMembershipsByKey
	case schema.SpecTypeRef:
		membership = r.Services.TypeMembershipsByKey
	case schema.SpecValueRef:
		membership = r.Services.ValueMembershipsByKey
	case schema.SpecValueSetRef:
		membership = r.Services.ValueSetMembershipsByKey
	case schema.SpecAliasFamilyRef:
		if members, ok := r.Services.AliasFamilyMembers[spec.Argument]; ok {
			if _, ok := members[value]; ok {
				return referenceResolved
			}
			return referenceUnresolved
		}
		return r.unresolvedStatus()
	case schema.SpecScopeRef:
		if len(r.Services.KnownScopes) == 0 {
			return r.unresolvedStatus()
		}
		if _, ok := r.Services.KnownScopes[value]; ok {
			return referenceResolved
		}
		return referenceUnresolved
	case schema.SpecSingleAliasRef:
		if _, ok := r.Services.SingleAliasNames[spec.Argument]; ok {
			return referenceResolved
		}
		return r.unresolvedStatus()
	default:
		return referenceResolved
	}

	members, ok := membership[spec.Argument]
	if !ok {
		return r.unresolvedStatus()
	}
	if _, ok := members[value]; ok {
		return referenceResolved
	}
	return referenceUnresolved
}

func (r FieldReferenceConstraintRule) unresolvedStatus() referenceStatus {
	if r.Services.Policy.UnresolvedReference == PolicyError {
		return referenceUnresolved
	}
	return referenceUnknown
}

// default sort helper shared by every typecheck rule so diagnostic output
// within one rule's own result is deterministic before the pipeline's
// final merge-sort.
func sortDiagnostics(diags []diagnostic.Diagnostic) {
	sort.Slice(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.Range.Start() != b.Range.Start() {
			return int(a.Range.Start()) < int(b.Range.Start())
		}
		if a.Range.End() != b.Range.End() {
			return int(a.Range.End()) < int(b.Range.End())
		}
		if a.Code != b.Code {
			return a.Code < b.Code
		}
		return a.Message < b.Message
	})
}

// DefaultTypecheckRules returns the built-in type-check rules, sorted
// deterministically by (code, name) as spec.md §4.10 requires. Ported from
// typecheck/rules.py's default_typecheck_rules, parameterized over
// Services per this module's richer services wiring (the reference
// implementation binds services post-hoc via dataclasses.replace; this
// module threads them through at construction instead, which is simpler in
// Go and has the same effect).
func DefaultTypecheckRules(services Services, fieldConstraintsByObject map[string]map[string]schema.RuleFieldConstraint) []TypecheckRule {
	rules := []TypecheckRule{
		InconsistentTopLevelShapeRule{},
		FieldConstraintRule{
			FieldConstraintsByObject: fieldConstraintsByObject,
			SubtypeMatchersByObject:  services.SubtypeMatchersByObject,
			AssetRegistry:            services.AssetRegistry,
		},
		FieldReferenceConstraintRule{
			FieldConstraintsByObject: fieldConstraintsByObject,
			Services:                 services,
		},
		FieldScopeContextRule{
			RulesByPath: services.ScopeReplacementRulesByPath,
			KnownScopes: services.KnownScopes,
		},
	}
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Code() != rules[j].Code() {
			return rules[i].Code() < rules[j].Code()
		}
		return rules[i].Name() < rules[j].Name()
	})
	return rules
}

// ValidateTypecheckRules enforces every type-check rule's domain,
// confidence, and code prefix at registration time. Ported from
// typecheck/rules.py's validate_typecheck_rules.
func ValidateTypecheckRules(rulesList []TypecheckRule) error {
	for _, rule := range rulesList {
		if rule.Domain() != domainCorrectness {
			return fmt.Errorf("typecheck rule `%s` has invalid domain `%s`; expected `correctness`", rule.Name(), rule.Domain())
		}
		if rule.Confidence() != DomainCorrectness {
			return fmt.Errorf("typecheck rule `%s` has invalid confidence `%s`; expected `sound`", rule.Name(), rule.Confidence())
		}
		if !strings.HasPrefix(rule.Code(), "TYPECHECK_") {
			return fmt.Errorf("typecheck rule `%s` has invalid code `%s`; expected `TYPECHECK_` prefix", rule.Name(), rule.Code())
		}
	}
	return nil
}
