package syntax

import "github.com/jomini-tools/jominicore/diagnostic"

// bufferedEntry pairs a lexed token with the trivia that preceded it.
type bufferedEntry struct {
	leading []Trivia
	tok     Token
}

// BufferedLexer wraps a Lexer with unlimited lookahead by eagerly lexing
// ahead and caching tokens (and their leading trivia) as they're requested.
// Ported from original_source/jominipy/lexer/buffered_lexer.py's
// BufferedLexer, whose Lookahead/LexContext/checkpoint-queue machinery
// collapses here into a simple growable slice, since Go needs no
// generator/iterator ceremony to get the same amortized-O(1) lookahead.
type BufferedLexer struct {
	lexer   *Lexer
	entries []bufferedEntry
	diags   []diagnostic.Diagnostic
}

// NewBufferedLexer wraps lexer with lookahead buffering.
func NewBufferedLexer(lexer *Lexer) *BufferedLexer {
	return &BufferedLexer{lexer: lexer}
}

// fill lexes until at least n+1 entries are buffered.
func (b *BufferedLexer) fill(n int) {
	for len(b.entries) <= n {
		tok := b.lexer.NextToken()
		leading := b.lexer.Trivia()
		b.diags = append(b.diags, b.lexer.Diagnostics()...)
		b.entries = append(b.entries, bufferedEntry{leading: leading, tok: tok})
		if tok.Kind == EOF && len(b.entries) > n {
			break
		}
	}
}

// Nth returns the token n positions ahead of the current position (0 is
// the current token).
func (b *BufferedLexer) Nth(n int) Token {
	b.fill(n)
	if n >= len(b.entries) {
		return b.entries[len(b.entries)-1].tok
	}
	return b.entries[n].tok
}

// NthLeadingTrivia returns the trivia that precedes the nth token.
func (b *BufferedLexer) NthLeadingTrivia(n int) []Trivia {
	b.fill(n)
	if n >= len(b.entries) {
		return nil
	}
	return b.entries[n].leading
}

// Bump discards the current (0th) buffered entry, advancing the window by
// one token.
func (b *BufferedLexer) Bump() {
	if len(b.entries) == 0 {
		b.fill(0)
	}
	if len(b.entries) > 0 {
		b.entries = b.entries[1:]
	}
}

// Diagnostics drains and returns every lexer diagnostic observed so far.
func (b *BufferedLexer) Diagnostics() []diagnostic.Diagnostic {
	d := b.diags
	b.diags = nil
	return d
}
