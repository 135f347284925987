package syntax

import "testing"

func newTestResult(src string) *Result {
	return NewResult(src, Parse(src, DefaultOptions()))
}

func TestRenameTopLevelKeyPreservesEverythingElse(t *testing.T) {
	src := "a = 1\nb = 2\nc = 3\n"
	out, err := RenameTopLevelKey(newTestResult(src), "b", "renamed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a = 1\nrenamed = 2\nc = 3\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}

	reparsed := Parse(out, DefaultOptions())
	if reparsed.HasErrors() {
		t.Fatalf("renamed text failed to re-parse cleanly: %v", reparsed.Diagnostics)
	}
}

func TestRenameTopLevelKeyMissingKeyErrors(t *testing.T) {
	src := "a = 1\n"
	if _, err := RenameTopLevelKey(newTestResult(src), "nope", "x"); err == nil {
		t.Fatalf("expected an error for a missing top-level key")
	}
}

func TestInsertFieldAppendsWithInferredIndent(t *testing.T) {
	src := "country = {\n    tag = SWE\n}\n"
	out, err := InsertField(newTestResult(src), "country", "capital = 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "country = {\n    tag = SWE\n    capital = 1\n}\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}

	reparsed := Parse(out, DefaultOptions())
	if reparsed.HasErrors() {
		t.Fatalf("edited text failed to re-parse cleanly: %v", reparsed.Diagnostics)
	}
	sf := LowerSyntaxTree(NewRedTree(reparsed.Green), out)
	kv := sf.Statements[0].(*KeyValue)
	block := kv.Value.(*Block)
	if len(block.Statements) != 2 {
		t.Fatalf("expected 2 fields after insert, got %d", len(block.Statements))
	}
}

func TestInsertFieldIntoEmptyBlock(t *testing.T) {
	// The gap between "{" and "}" is a single bare newline with no
	// indentation of its own to infer from, so the inserted field reuses
	// exactly that: a newline, nothing more.
	src := "country = {\n}\n"
	out, err := InsertField(newTestResult(src), "country", "tag = SWE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "country = {\ntag = SWE\n}\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}

	reparsed := Parse(out, DefaultOptions())
	if reparsed.HasErrors() {
		t.Fatalf("edited text failed to re-parse cleanly: %v", reparsed.Diagnostics)
	}
}

func TestInsertFieldIntoEmptyBlockFallsBackToDefaultIndent(t *testing.T) {
	// No newline anywhere between the braces at all: falls back to the
	// default indent.
	src := "country = {}\n"
	out, err := InsertField(newTestResult(src), "country", "tag = SWE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "country = {\n    tag = SWE}\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestInsertFieldRejectsArrayLikeBlock(t *testing.T) {
	src := "list = { 1 2 3 }\n"
	if _, err := InsertField(newTestResult(src), "list", "x = 1"); err == nil {
		t.Fatalf("expected an error inserting a field into an array-like block")
	}
}
