package syntax

import "testing"

func TestParseSimpleKeyValue(t *testing.T) {
	parsed := Parse(`foo = bar`, DefaultOptions())
	if parsed.HasErrors() {
		t.Fatalf("unexpected errors: %v", parsed.Diagnostics)
	}
	root := NewRedTree(parsed.Green)
	sf := LowerSyntaxTree(root, `foo = bar`)
	if len(sf.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(sf.Statements))
	}
	kv, ok := sf.Statements[0].(*KeyValue)
	if !ok {
		t.Fatalf("expected KeyValue, got %T", sf.Statements[0])
	}
	if kv.Key.RawText != "foo" || kv.Operator != "=" {
		t.Fatalf("unexpected key/operator: %q %q", kv.Key.RawText, kv.Operator)
	}
	scalar, ok := kv.Value.(*Scalar)
	if !ok || scalar.RawText != "bar" {
		t.Fatalf("unexpected value: %#v", kv.Value)
	}
}

func TestParseNestedBlock(t *testing.T) {
	src := `country = { tag = SWE capital = 1 }`
	parsed := Parse(src, DefaultOptions())
	if parsed.HasErrors() {
		t.Fatalf("unexpected errors: %v", parsed.Diagnostics)
	}
	sf := LowerSyntaxTree(NewRedTree(parsed.Green), src)
	if len(sf.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(sf.Statements))
	}
	kv := sf.Statements[0].(*KeyValue)
	block, ok := kv.Value.(*Block)
	if !ok {
		t.Fatalf("expected Block value, got %T", kv.Value)
	}
	if !block.IsObjectLike() {
		t.Fatalf("expected object-like block")
	}
	obj := block.ToObject(false)
	if len(obj) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(obj))
	}
}

func TestParseArrayBlock(t *testing.T) {
	src := `list = { 1 2 3 }`
	parsed := Parse(src, DefaultOptions())
	if parsed.HasErrors() {
		t.Fatalf("unexpected errors: %v", parsed.Diagnostics)
	}
	sf := LowerSyntaxTree(NewRedTree(parsed.Green), src)
	kv := sf.Statements[0].(*KeyValue)
	block := kv.Value.(*Block)
	if !block.IsArrayLike() {
		t.Fatalf("expected array-like block")
	}
	if len(block.ToArray()) != 3 {
		t.Fatalf("expected 3 array elements, got %d", len(block.ToArray()))
	}
}

func TestParseMissingClosingBracePermissive(t *testing.T) {
	src := `a = { b = 1`
	opts := ForMode(ModePermissive)
	parsed := Parse(src, opts)
	if parsed.HasErrors() {
		t.Fatalf("permissive mode should only warn, not error: %v", parsed.Diagnostics)
	}
}

func TestParseMissingClosingBraceStrict(t *testing.T) {
	src := `a = { b = 1`
	parsed := Parse(src, DefaultOptions())
	if !parsed.HasErrors() {
		t.Fatalf("strict mode should error on missing closing brace")
	}
}

func TestAnalysisFactsSkipBareTopLevelStatements(t *testing.T) {
	src := `bare_scalar foo = 1`
	parsed := Parse(src, ForMode(ModePermissive))
	sf := LowerSyntaxTree(NewRedTree(parsed.Green), src)
	facts := BuildFacts(sf)
	if _, ok := facts.TopLevelValues["foo"]; !ok {
		t.Fatalf("expected foo to be recorded as a top-level key-value fact")
	}
}

func TestParseTaggedBlockValue(t *testing.T) {
	src := "color = rgb { 100 200 150 }\n"
	parsed := Parse(src, DefaultOptions())
	if parsed.HasErrors() {
		t.Fatalf("unexpected errors: %v", parsed.Diagnostics)
	}
	sf := LowerSyntaxTree(NewRedTree(parsed.Green), src)
	kv := sf.Statements[0].(*KeyValue)
	tagged, ok := kv.Value.(*TaggedBlockValue)
	if !ok {
		t.Fatalf("expected TaggedBlockValue, got %T", kv.Value)
	}
	if tagged.Tag.RawText != "rgb" {
		t.Fatalf("unexpected tag: %q", tagged.Tag.RawText)
	}
	if len(tagged.Block.Statements) != 3 {
		t.Fatalf("expected 3 scalars in tagged block, got %d", len(tagged.Block.Statements))
	}
}

func TestParseLegacyExtraRBrace(t *testing.T) {
	src := "a = { 1 }\n}\nb = 2\n"

	strict := Parse(src, DefaultOptions())
	if !strict.HasErrors() {
		t.Fatalf("expected strict mode to error on extra closing brace")
	}

	permissive := Parse(src, ForMode(ModePermissive))
	if permissive.HasErrors() {
		t.Fatalf("expected permissive mode to only warn, got errors: %v", permissive.Diagnostics)
	}
	found := false
	for _, d := range permissive.Diagnostics {
		if d.Code == "PARSER_LEGACY_EXTRA_RBRACE" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected PARSER_LEGACY_EXTRA_RBRACE warning, got %#v", permissive.Diagnostics)
	}
	sf := LowerSyntaxTree(NewRedTree(permissive.Green), src)
	kvCount := 0
	for _, stmt := range sf.Statements {
		if _, ok := stmt.(*KeyValue); ok {
			kvCount++
		}
	}
	if kvCount != 2 {
		t.Fatalf("expected 2 key-value statements, got %d", kvCount)
	}
}

func TestParseQuotedVsUnquotedScalar(t *testing.T) {
	src := "unit_type=\"western\"\nunit_type=western\n"
	parsed := Parse(src, DefaultOptions())
	if parsed.HasErrors() {
		t.Fatalf("unexpected errors: %v", parsed.Diagnostics)
	}
	sf := LowerSyntaxTree(NewRedTree(parsed.Green), src)
	if len(sf.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(sf.Statements))
	}
	quoted := sf.Statements[0].(*KeyValue).Value.(*Scalar)
	unquoted := sf.Statements[1].(*KeyValue).Value.(*Scalar)
	if quoted.RawText != `"western"` || !quoted.WasQuoted {
		t.Fatalf("unexpected quoted scalar: %#v", quoted)
	}
	if unquoted.RawText != "western" || unquoted.WasQuoted {
		t.Fatalf("unexpected unquoted scalar: %#v", unquoted)
	}
}

func TestParseRepeatedKeys(t *testing.T) {
	src := "a=1\nb=\"hello\"\na=2\n"
	parsed := Parse(src, DefaultOptions())
	if parsed.HasErrors() {
		t.Fatalf("unexpected errors: %v", parsed.Diagnostics)
	}
	sf := LowerSyntaxTree(NewRedTree(parsed.Green), src)
	if len(sf.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(sf.Statements))
	}
	facts := BuildFacts(sf)
	if len(facts.TopLevelValues["a"]) != 2 {
		t.Fatalf("expected top_level_values[a] to have 2 entries, got %d", len(facts.TopLevelValues["a"]))
	}
}

func TestParseScopeSigilScalarIsNotParameterSyntax(t *testing.T) {
	src := "@my_scope\n"
	parsed := Parse(src, DefaultOptions())
	if parsed.HasErrors() {
		t.Fatalf("expected @-prefixed scope scalar to parse cleanly, got: %v", parsed.Diagnostics)
	}
	sf := LowerSyntaxTree(NewRedTree(parsed.Green), src)
	if len(sf.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(sf.Statements))
	}
	scalar, ok := sf.Statements[0].(*Scalar)
	if !ok || scalar.RawText != "@my_scope" {
		t.Fatalf("unexpected statement: %#v", sf.Statements[0])
	}
}

func TestParseBracketParameterSyntaxRejectedByDefault(t *testing.T) {
	src := "[[param]]\n"
	parsed := Parse(src, DefaultOptions())
	if !parsed.HasErrors() {
		t.Fatalf("expected [[...]] parameter syntax to be rejected by default")
	}
	found := false
	for _, d := range parsed.Diagnostics {
		if d.Code == "PARSER_UNSUPPORTED_PARAMETER_SYNTAX" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected PARSER_UNSUPPORTED_PARAMETER_SYNTAX, got %#v", parsed.Diagnostics)
	}
}

func TestParseBareScalarAfterKeyValueRestrictedAtTopLevel(t *testing.T) {
	src := "a=1 bare\nb=2\n"

	strict := Parse(src, DefaultOptions())
	if !strict.HasErrors() {
		t.Fatalf("expected strict mode to reject a bare scalar following a key-value")
	}
	foundUnexpected := false
	for _, d := range strict.Diagnostics {
		if d.Code == "PARSER_UNEXPECTED_TOKEN" {
			foundUnexpected = true
		}
	}
	if !foundUnexpected {
		t.Fatalf("expected PARSER_UNEXPECTED_TOKEN, got %#v", strict.Diagnostics)
	}
	strictSf := LowerSyntaxTree(NewRedTree(strict.Green), src)
	kvCount := 0
	for _, stmt := range strictSf.Statements {
		if _, ok := stmt.(*KeyValue); ok {
			kvCount++
		}
	}
	if kvCount != 2 {
		t.Fatalf("expected both surrounding key-values to survive recovery, got %d (%#v)", kvCount, strictSf.Statements)
	}

	permissive := Parse(src, ForMode(ModePermissive))
	if permissive.HasErrors() {
		t.Fatalf("expected permissive mode (AllowBareScalarAfterKeyValue) to tolerate it, got: %v", permissive.Diagnostics)
	}
	permissiveSf := LowerSyntaxTree(NewRedTree(permissive.Green), src)
	if len(permissiveSf.Statements) != 3 {
		t.Fatalf("expected 3 statements (key-value, bare scalar, key-value), got %d", len(permissiveSf.Statements))
	}
}

func TestParseAlternatingValueKeyValueInsideBlock(t *testing.T) {
	src := "obj = { a=1 bare b=2 }\n"

	strict := Parse(src, DefaultOptions())
	if !strict.HasErrors() {
		t.Fatalf("expected strict mode to reject a bare scalar following a key-value inside a block")
	}

	permissive := Parse(src, ForMode(ModePermissive))
	if permissive.HasErrors() {
		t.Fatalf("expected permissive mode (AllowAlternatingValueKeyValue) to tolerate it, got: %v", permissive.Diagnostics)
	}
	sf := LowerSyntaxTree(NewRedTree(permissive.Green), src)
	obj := sf.Statements[0].(*KeyValue).Value.(*Block)
	if len(obj.Statements) != 3 {
		t.Fatalf("expected 3 statements inside the block, got %d", len(obj.Statements))
	}
}

func TestParseRecoveryBetweenValidStatements(t *testing.T) {
	src := "a=1 ?=oops\nb=2\n"
	parsed := Parse(src, DefaultOptions())
	if !parsed.HasErrors() {
		t.Fatalf("expected at least one diagnostic")
	}
	sf := LowerSyntaxTree(NewRedTree(parsed.Green), src)
	count := 0
	for _, stmt := range sf.Statements {
		if _, ok := stmt.(*KeyValue); ok {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 key-value statements, got %d (%#v)", count, sf.Statements)
	}
}
