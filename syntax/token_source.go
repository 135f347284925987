package syntax

import "github.com/jomini-tools/jominicore/diagnostic"

// TokenSourceCheckpoint captures a TokenSource's position for rewinding.
type TokenSourceCheckpoint struct {
	pos int
}

// splitTrivia classifies a run of raw lexer Trivia into the piece that
// trails the previous non-trivia token and the piece that leads the next
// one. Everything up to and including the first NEWLINE belongs to the
// previous token's trailing trivia; everything after that first NEWLINE,
// on the new physical line, leads the next token. Ported from
// original_source/jominipy/parser/token_source.py's _next_non_trivia_token,
// the algorithm spec.md calls out by name as the trivia-ownership model.
func splitTrivia(raw []Trivia) (trailing, leading []Trivia) {
	sawNewline := false
	for _, t := range raw {
		if !sawNewline {
			trailing = append(trailing, t)
			if t.Kind == TriviaNewline {
				sawNewline = true
			}
			continue
		}
		leading = append(leading, t)
	}
	return trailing, leading
}

// TokenSource sits between the BufferedLexer and the parser: it hides
// trivia tokens from the parser entirely while still recording where each
// piece of trivia attaches (trailing the previous real token or leading the
// next one), so the tree sink can later reattach it losslessly. Ported from
// original_source/jominipy/parser/token_source.py's TokenSource.
type TokenSource struct {
	buf *BufferedLexer

	// Non-trivia tokens, in order, with their split trivia already
	// computed relative to their neighbors.
	tokens          []Token
	leadingTrivia   [][]Trivia
	trailingTrivia  [][]Trivia
	pos             int
	diags           []diagnostic.Diagnostic
}

// NewTokenSource drains buf of all tokens up front, classifying trivia
// eagerly; the parser then only ever sees non-trivia tokens via Nth.
func NewTokenSource(buf *BufferedLexer) *TokenSource {
	ts := &TokenSource{buf: buf}
	var pendingLeading []Trivia
	i := 0
	for {
		tok := buf.Nth(i)
		raw := buf.NthLeadingTrivia(i)
		trailing, leading := splitTrivia(raw)
		if len(ts.tokens) > 0 {
			ts.trailingTrivia[len(ts.trailingTrivia)-1] = append(ts.trailingTrivia[len(ts.trailingTrivia)-1], trailing...)
		} else {
			// No earlier token to trail: all of it leads the first token.
			pendingLeading = trailing
		}
		combinedLeading := append(pendingLeading, leading...)
		pendingLeading = nil
		ts.tokens = append(ts.tokens, tok)
		ts.leadingTrivia = append(ts.leadingTrivia, combinedLeading)
		ts.trailingTrivia = append(ts.trailingTrivia, nil)
		if tok.Kind == EOF {
			break
		}
		i++
	}
	ts.diags = append(ts.diags, buf.Diagnostics()...)
	return ts
}

// Nth returns the kind of the token n positions ahead of the cursor.
func (ts *TokenSource) Nth(n int) Kind {
	idx := ts.pos + n
	if idx >= len(ts.tokens) {
		return EOF
	}
	return ts.tokens[idx].Kind
}

// NthToken returns the full token n positions ahead of the cursor.
func (ts *TokenSource) NthToken(n int) Token {
	idx := ts.pos + n
	if idx >= len(ts.tokens) {
		return ts.tokens[len(ts.tokens)-1]
	}
	return ts.tokens[idx]
}

// HasNthPrecedingLineBreak reports whether a NEWLINE separates the token n
// positions ahead from the token before it, as recorded by the lexer's
// FlagPrecedingLineBreak (the first NEWLINE of a gap is the previous
// token's trailing trivia, so leading trivia alone would not show it).
func (ts *TokenSource) HasNthPrecedingLineBreak(n int) bool {
	idx := ts.pos + n
	if idx >= len(ts.tokens) {
		return false
	}
	return ts.tokens[idx].Flags.Has(FlagPrecedingLineBreak)
}

// HasNthPrecedingTrivia reports whether any trivia separates the token n
// positions ahead from the token before it, whether it was split into that
// token's trailing trivia or this one's leading trivia (used by the
// scalar-gluing loop, which must stop as soon as any trivia — even a
// single space — separates two scalar tokens).
func (ts *TokenSource) HasNthPrecedingTrivia(n int) bool {
	idx := ts.pos + n
	if idx >= len(ts.leadingTrivia) {
		return false
	}
	if idx > 0 && len(ts.trailingTrivia[idx-1]) > 0 {
		return true
	}
	return len(ts.leadingTrivia[idx]) > 0
}

// Bump advances the cursor past the current token.
func (ts *TokenSource) Bump() {
	if ts.pos < len(ts.tokens)-1 {
		ts.pos++
	}
}

// SkipAsTrivia folds the current token into the leading trivia of the next
// token as a SKIPPED piece, instead of handing it to the parser. No parser
// path calls it: the lexer already records bytes it couldn't classify as
// SKIPPED trivia.
func (ts *TokenSource) SkipAsTrivia() {
	if ts.pos >= len(ts.tokens)-1 {
		return
	}
	cur := ts.tokens[ts.pos]
	ts.leadingTrivia[ts.pos+1] = append([]Trivia{{Kind: TriviaSkipped, Range: cur.Range}}, ts.leadingTrivia[ts.pos+1]...)
	ts.tokens = append(ts.tokens[:ts.pos], ts.tokens[ts.pos+1:]...)
	ts.leadingTrivia = append(ts.leadingTrivia[:ts.pos], ts.leadingTrivia[ts.pos+1:]...)
	ts.trailingTrivia = append(ts.trailingTrivia[:ts.pos], ts.trailingTrivia[ts.pos+1:]...)
}

// Checkpoint captures the cursor position for later rewinding.
func (ts *TokenSource) Checkpoint() TokenSourceCheckpoint {
	return TokenSourceCheckpoint{pos: ts.pos}
}

// Rewind restores the cursor to a previously captured checkpoint.
func (ts *TokenSource) Rewind(cp TokenSourceCheckpoint) {
	ts.pos = cp.pos
}

// tokenAt exposes the token and its surrounding trivia at absolute index i,
// used by the tree sink when replaying events.
func (ts *TokenSource) tokenAt(i int) (Token, []Trivia, []Trivia) {
	return ts.tokens[i], ts.leadingTrivia[i], ts.trailingTrivia[i]
}

// Len returns the number of non-trivia tokens, including the trailing EOF.
func (ts *TokenSource) Len() int {
	return len(ts.tokens)
}

// Finish returns every diagnostic the lexer raised while producing these
// tokens.
func (ts *TokenSource) Finish() []diagnostic.Diagnostic {
	return ts.diags
}
