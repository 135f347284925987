package format

import (
	"testing"

	"github.com/jomini-tools/jominicore/syntax"
)

func TestRunFormatReturnsSourceTextUnchanged(t *testing.T) {
	src := "a = 1\nb = { c = 2 }\n"
	result, err := RunFormat(src, syntax.ParseInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FormattedText != src {
		t.Fatalf("expected formatted text to equal source text, got %q", result.FormattedText)
	}
	if result.Changed {
		t.Fatalf("expected Changed to be false when formatted text matches source")
	}
}

func TestRunFormatReusesSuppliedParse(t *testing.T) {
	src := "a = 1\n"
	parsed := syntax.NewResult(src, syntax.Parse(src, syntax.DefaultOptions()))

	result, err := RunFormat(src, syntax.ParseInput{Parse: parsed})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Parse != parsed {
		t.Fatalf("expected RunFormat to reuse the supplied parse result")
	}
}

func TestDefaultPolicyMatchesReferenceDefaults(t *testing.T) {
	policy := DefaultPolicy()
	if policy.MaxWidth != 100 || policy.IndentWidth != 4 {
		t.Fatalf("unexpected width/indent defaults: %#v", policy)
	}
	if policy.InlineListMaxItems != 2 || policy.InlineBlockMaxEntries != 1 {
		t.Fatalf("unexpected inline heuristics defaults: %#v", policy)
	}
	if !policy.TrimFloatTrailingZero {
		t.Fatalf("expected TrimFloatTrailingZero to default true")
	}
}
