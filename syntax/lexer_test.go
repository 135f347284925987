package syntax

import "testing"

func lexAll(src string) []Token {
	l := NewLexer(src)
	var out []Token
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return out
}

func TestLexerIdentifierAndOperator(t *testing.T) {
	toks := lexAll("foo = bar")
	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	want := []Kind{Identifier, Equal, Identifier, EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(kinds), len(want), kinds)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token %d = %v, want %v", i, kinds[i], k)
		}
	}
}

func TestLexerString(t *testing.T) {
	l := NewLexer(`"hello world"`)
	tok := l.NextToken()
	if tok.Kind != String {
		t.Fatalf("expected STRING, got %v", tok.Kind)
	}
	if !tok.Flags.Has(FlagWasQuoted) {
		t.Fatalf("expected FlagWasQuoted")
	}
	if len(l.Diagnostics()) != 0 {
		t.Fatalf("expected no diagnostics for terminated string")
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	l := NewLexer(`"unterminated`)
	l.NextToken()
	diags := l.Diagnostics()
	if len(diags) != 1 || diags[0].Code != "LEXER_UNTERMINATED_STRING" {
		t.Fatalf("expected unterminated string diagnostic, got %v", diags)
	}
}

func TestLexerNumberVsDate(t *testing.T) {
	// A date literal has two dots, but a number token admits only one: the
	// lexer stops after the first ".digits" group, leaving the second dot
	// and trailing digits as separate DOT/INT tokens for the parser's
	// scalar-gluing loop to reassemble into a single AST scalar.
	toks := lexAll("1444.11.11")
	kinds := make([]Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	want := []Kind{Float, Dot, Int, EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(kinds), len(want), kinds)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token %d = %v, want %v", i, kinds[i], k)
		}
	}
	if toks[0].Range.Len() != 7 {
		t.Fatalf("expected FLOAT token to cover %q, got range len %d", "1444.11", toks[0].Range.Len())
	}
}

func TestLexerCheckpointRewind(t *testing.T) {
	l := NewLexer("foo   \"unterminated")
	first := l.NextToken()
	if first.Kind != Identifier {
		t.Fatalf("expected identifier, got %v", first.Kind)
	}
	l.Trivia()

	cp := l.Checkpoint()
	speculative := l.NextToken()
	if speculative.Kind != String {
		t.Fatalf("expected string, got %v", speculative.Kind)
	}
	if len(l.trivia) == 0 {
		t.Fatalf("expected leading whitespace trivia to be recorded before rewind")
	}
	if len(l.diags) == 0 {
		t.Fatalf("expected the unterminated-string diagnostic to be recorded before rewind")
	}

	l.Rewind(cp)
	if len(l.diags) != 0 {
		t.Fatalf("rewind should truncate diagnostics accumulated after the checkpoint, got %v", l.diags)
	}
	if len(l.trivia) != 0 {
		t.Fatalf("rewind should truncate trivia accumulated after the checkpoint, got %v", l.trivia)
	}

	replayed := l.NextToken()
	if replayed.Kind != speculative.Kind || replayed.Range != speculative.Range {
		t.Fatalf("replaying after rewind should reproduce the same token, got %v want %v", replayed, speculative)
	}
	replayedDiags := l.Diagnostics()
	if len(replayedDiags) != 1 || replayedDiags[0].Code != "LEXER_UNTERMINATED_STRING" {
		t.Fatalf("expected unterminated string diagnostic on replay, got %v", replayedDiags)
	}
}

func TestLexerTrivia(t *testing.T) {
	l := NewLexer("foo # comment\nbar")
	l.NextToken() // foo
	trivia := l.Trivia()
	_ = trivia
	tok := l.NextToken() // bar, with comment+newline as leading trivia
	leading := l.Trivia()
	if tok.Kind != Identifier {
		t.Fatalf("expected identifier, got %v", tok.Kind)
	}
	sawComment, sawNewline := false, false
	for _, tr := range leading {
		if tr.Kind == TriviaComment {
			sawComment = true
		}
		if tr.Kind == TriviaNewline {
			sawNewline = true
		}
	}
	if !sawComment || !sawNewline {
		t.Fatalf("expected comment and newline trivia, got %v", leading)
	}
}
