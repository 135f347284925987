package diagnostic

import (
	"testing"

	"github.com/jomini-tools/jominicore/text"
)

func TestSpecBuildDefaultsMessage(t *testing.T) {
	d := LexerUnterminatedString.Build(text.NewRange(0, 3), "")
	if d.Message != LexerUnterminatedString.Message {
		t.Fatalf("expected default message, got %q", d.Message)
	}
	if d.Code != "LEXER_UNTERMINATED_STRING" || d.Severity != SeverityError {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
}

func TestSpecBuildOverridesMessage(t *testing.T) {
	d := ParserExpectedToken.Build(text.NewRange(1, 2), "Expected token RBRACE")
	if d.Message != "Expected token RBRACE" {
		t.Fatalf("expected override message, got %q", d.Message)
	}
}

func TestCollectFlattensInOrder(t *testing.T) {
	a := []Diagnostic{{Code: "A"}, {Code: "B"}}
	b := []Diagnostic{{Code: "C"}}
	got := Collect(a, b)
	want := []string{"A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("Collect() len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Code != w {
			t.Errorf("Collect()[%d].Code = %q, want %q", i, got[i].Code, w)
		}
	}
}

func TestHasErrors(t *testing.T) {
	if HasErrors(nil) {
		t.Fatalf("HasErrors(nil) should be false")
	}
	onlyWarnings := []Diagnostic{{Severity: SeverityWarning}}
	if HasErrors(onlyWarnings) {
		t.Fatalf("HasErrors should be false with only warnings")
	}
	withError := []Diagnostic{{Severity: SeverityWarning}, {Severity: SeverityError}}
	if !HasErrors(withError) {
		t.Fatalf("HasErrors should be true when an error is present")
	}
}
