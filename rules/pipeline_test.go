package rules

import (
	"testing"

	"github.com/jomini-tools/jominicore/syntax"
)

func TestRunTypecheckFlagsInconsistentShape(t *testing.T) {
	src := "value=1\nvalue={ a=1 }\n"
	result, err := RunTypecheck(src, syntax.ParseInput{}, nil, DefaultServices(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, d := range result.Diagnostics {
		if d.Code == "TYPECHECK_INCONSISTENT_VALUE_SHAPE" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected TYPECHECK_INCONSISTENT_VALUE_SHAPE, got %#v", result.Diagnostics)
	}
}

func TestRunLintAndTypecheckShareParseLifecycle(t *testing.T) {
	src := "a = 1\nb = 2\n"
	parsed := syntax.NewResult(src, syntax.Parse(src, syntax.DefaultOptions()))

	lintResult, err := RunLint(src, syntax.ParseInput{Parse: parsed}, nil, nil)
	if err != nil {
		t.Fatalf("RunLint: %v", err)
	}
	if lintResult.Parse != parsed {
		t.Fatalf("expected RunLint to reuse the supplied parse result")
	}

	typecheckResult, err := RunTypecheck(src, syntax.ParseInput{Parse: parsed}, nil, DefaultServices(), nil)
	if err != nil {
		t.Fatalf("RunTypecheck: %v", err)
	}
	if typecheckResult.Parse != parsed {
		t.Fatalf("expected RunTypecheck to reuse the supplied parse result")
	}

	if parsed.AnalysisFacts() != parsed.AnalysisFacts() {
		t.Fatalf("expected AnalysisFacts to be pointer-equal across calls")
	}
}

func TestRunLintRejectsMismatchedTypecheckResult(t *testing.T) {
	srcA := "a = 1\n"
	srcB := "b = 2\n"
	parseA := syntax.NewResult(srcA, syntax.Parse(srcA, syntax.DefaultOptions()))
	parseB := syntax.NewResult(srcB, syntax.Parse(srcB, syntax.DefaultOptions()))

	typecheckForB, err := RunTypecheck(srcB, syntax.ParseInput{Parse: parseB}, nil, DefaultServices(), nil)
	if err != nil {
		t.Fatalf("RunTypecheck: %v", err)
	}

	_, err = RunLint(srcA, syntax.ParseInput{Parse: parseA}, nil, typecheckForB)
	if err != ErrMismatchedTypecheckParse {
		t.Fatalf("expected ErrMismatchedTypecheckParse, got %v", err)
	}
}

func TestResolveParseRejectsParseWithOptions(t *testing.T) {
	src := "a = 1\n"
	parsed := syntax.NewResult(src, syntax.Parse(src, syntax.DefaultOptions()))
	opts := syntax.DefaultOptions()

	_, err := syntax.ResolveParse(src, syntax.ParseInput{Parse: parsed, Options: &opts})
	if err != syntax.ErrAmbiguousParseInput {
		t.Fatalf("expected ErrAmbiguousParseInput, got %v", err)
	}
}

func TestRunCheckDedupesDiagnostics(t *testing.T) {
	src := "value=1\nvalue={ a=1 }\n"
	result, err := RunCheck(src, syntax.ParseInput{}, DefaultServices(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]int)
	for _, d := range result.Diagnostics {
		seen[d.Code]++
	}
	for code, count := range seen {
		if count > 1 {
			t.Fatalf("expected each diagnostic to be deduplicated, code %s appeared %d times", code, count)
		}
	}
}

func TestRunCheckSortsDiagnosticsByRangeThenCode(t *testing.T) {
	src := "a=1 ?=oops\nb=2\n"
	result, err := RunCheck(src, syntax.ParseInput{}, DefaultServices(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(result.Diagnostics); i++ {
		prev, cur := result.Diagnostics[i-1], result.Diagnostics[i]
		if prev.Range.Start() > cur.Range.Start() {
			t.Fatalf("diagnostics not sorted by range start: %#v", result.Diagnostics)
		}
		if prev.Range.Start() == cur.Range.Start() && prev.Range.End() > cur.Range.End() {
			t.Fatalf("diagnostics with equal start not sorted by range end: %#v", result.Diagnostics)
		}
		if prev.Range == cur.Range && prev.Code > cur.Code {
			t.Fatalf("diagnostics with equal range not sorted by code: %#v", result.Diagnostics)
		}
	}
}
