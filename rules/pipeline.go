package rules

import (
	"errors"

	"github.com/jomini-tools/jominicore/diagnostic"
	"github.com/jomini-tools/jominicore/schema"
	"github.com/jomini-tools/jominicore/syntax"
)

// LintRunResult is the outcome of RunLint: the shared parse, its combined
// lint diagnostics, and the type-check facts lint rules were allowed to
// consume. Ported from
// original_source/jominipy/pipeline/results.py's LintRunResult, widened
// with TypeFacts since spec.md §6 lists `type_facts?` on this carrier.
type LintRunResult struct {
	Parse       *syntax.Result
	Diagnostics []diagnostic.Diagnostic
	TypeFacts   *TypecheckFacts
}

// TypecheckRunResult is the outcome of RunTypecheck. Ported from
// pipeline/results.py's TypecheckRunResult, widened with Facts per
// spec.md §6.
type TypecheckRunResult struct {
	Parse       *syntax.Result
	Diagnostics []diagnostic.Diagnostic
	Facts       *TypecheckFacts
}

// CheckRunResult is the outcome of RunCheck. Ported from
// pipeline/results.py's CheckRunResult.
type CheckRunResult struct {
	Parse       *syntax.Result
	Diagnostics []diagnostic.Diagnostic
	HasErrors   bool
}

// ErrMismatchedTypecheckParse is returned by RunLint when a caller passes
// a TypecheckRunResult built from a different parse than the one RunLint
// resolves. Ported from pipeline/entrypoints.py's run_lint
// "Provided typecheck result must reuse the same parse result" guard.
var ErrMismatchedTypecheckParse = errors.New("rules: provided typecheck result must reuse the same parse result")

// RunTypecheck runs type-check rules over one shared parse lifecycle. A
// nil rulesList builds DefaultTypecheckRules from services and
// fieldConstraintsByObject. Ported from
// original_source/jominipy/typecheck/runner.py's run_typecheck, minus its
// project_root convenience loader (out of this module's scope, see
// DESIGN.md) and its post-hoc dataclasses.replace rule/service binding
// (this module threads Services through DefaultTypecheckRules at
// construction time instead, so there is nothing left to rebind when a
// caller supplies both rules and services explicitly).
func RunTypecheck(text string, input syntax.ParseInput, rulesList []TypecheckRule, services Services, fieldConstraintsByObject map[string]map[string]schema.RuleFieldConstraint) (*TypecheckRunResult, error) {
	parse, err := syntax.ResolveParse(text, input)
	if err != nil {
		return nil, err
	}

	facts := parse.AnalysisFacts()
	typeFacts := BuildTypecheckFacts(facts)

	resolvedRules := rulesList
	if resolvedRules == nil {
		resolvedRules = DefaultTypecheckRules(services, fieldConstraintsByObject)
	}
	if err := ValidateTypecheckRules(resolvedRules); err != nil {
		return nil, err
	}

	diags := append([]diagnostic.Diagnostic(nil), parse.Diagnostics()...)
	for _, rule := range resolvedRules {
		diags = append(diags, rule.Run(facts, typeFacts, parse.SourceText)...)
	}
	sortDiagnostics(diags)

	return &TypecheckRunResult{Parse: parse, Diagnostics: diags, Facts: typeFacts}, nil
}

// RunLint runs lint rules over one shared parse lifecycle, reusing (or
// computing) a TypecheckRunResult so lint rules may consult
// TypecheckFacts. A nil rulesList builds DefaultLintRules with no extra
// required-field data. A nil typecheckResult computes one with
// DefaultServices. Ported from lint/runner.py's run_lint, widened per
// spec.md §4.10's "lint ... may consume TypecheckFacts" beyond the
// reference's current parse-diagnostics-only placeholder.
func RunLint(text string, input syntax.ParseInput, rulesList []LintRule, typecheckResult *TypecheckRunResult) (*LintRunResult, error) {
	parse, err := syntax.ResolveParse(text, input)
	if err != nil {
		return nil, err
	}

	resolvedTypecheck := typecheckResult
	if resolvedTypecheck == nil {
		resolvedTypecheck, err = RunTypecheck(text, syntax.ParseInput{Parse: parse}, nil, DefaultServices(), nil)
		if err != nil {
			return nil, err
		}
	} else if resolvedTypecheck.Parse != parse {
		return nil, ErrMismatchedTypecheckParse
	}

	resolvedRules := rulesList
	if resolvedRules == nil {
		resolvedRules = DefaultLintRules(nil)
	}
	if err := ValidateLintRules(resolvedRules); err != nil {
		return nil, err
	}

	facts := parse.AnalysisFacts()
	var diags []diagnostic.Diagnostic
	for _, rule := range resolvedRules {
		diags = append(diags, rule.Run(facts, resolvedTypecheck.Facts, parse.SourceText)...)
	}
	sortDiagnostics(diags)

	return &LintRunResult{Parse: parse, Diagnostics: diags, TypeFacts: resolvedTypecheck.Facts}, nil
}

// RunCheck runs type-check then lint against one shared parse lifecycle
// and de-duplicates the combined diagnostics by
// (range, code, message, category, hint). Ported from
// pipeline/entrypoints.py's run_check / `_dedupe_diagnostics`.
func RunCheck(text string, input syntax.ParseInput, services Services, fieldConstraintsByObject map[string]map[string]schema.RuleFieldConstraint) (*CheckRunResult, error) {
	parse, err := syntax.ResolveParse(text, input)
	if err != nil {
		return nil, err
	}

	typecheckResult, err := RunTypecheck(text, syntax.ParseInput{Parse: parse}, nil, services, fieldConstraintsByObject)
	if err != nil {
		return nil, err
	}
	lintResult, err := RunLint(text, syntax.ParseInput{Parse: parse}, nil, typecheckResult)
	if err != nil {
		return nil, err
	}

	combined := append(append([]diagnostic.Diagnostic(nil), typecheckResult.Diagnostics...), lintResult.Diagnostics...)
	deduped := dedupeDiagnostics(combined)
	sortDiagnostics(deduped)

	return &CheckRunResult{
		Parse:       parse,
		Diagnostics: deduped,
		HasErrors:   diagnostic.HasErrors(deduped),
	}, nil
}

type dedupeKey struct {
	start, end     int
	code, message  string
	category, hint string
}

// dedupeDiagnostics removes duplicate diagnostics by
// (range, code, message, category, hint), preserving first-seen order.
// Ported from pipeline/entrypoints.py's `_dedupe_diagnostics`.
func dedupeDiagnostics(diags []diagnostic.Diagnostic) []diagnostic.Diagnostic {
	seen := make(map[dedupeKey]struct{}, len(diags))
	out := make([]diagnostic.Diagnostic, 0, len(diags))
	for _, d := range diags {
		key := dedupeKey{
			start:    int(d.Range.Start()),
			end:      int(d.Range.End()),
			code:     d.Code,
			message:  d.Message,
			category: d.Category,
			hint:     d.Hint,
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	return out
}
