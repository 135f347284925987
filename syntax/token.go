package syntax

import "github.com/jomini-tools/jominicore/text"

// TriviaKind classifies a piece of trivia recorded alongside tokens.
// Ported from original_source/jominipy/lexer/tokens.py's TriviaKind.
type TriviaKind uint8

const (
	TriviaWhitespace TriviaKind = iota
	TriviaNewline
	TriviaComment
	TriviaSkipped
)

// Flags records lexer-observed facts about a token that the parser or tree
// builder need but that don't belong in Kind itself. Ported from
// original_source/jominipy/lexer/tokens.py's TokenFlags bitmask.
type Flags uint8

const (
	FlagNone Flags = 0
	// FlagPrecedingLineBreak marks a token immediately preceded by a NEWLINE
	// trivia piece, used by has_nth_preceding_line_break-style lookahead.
	FlagPrecedingLineBreak Flags = 1 << iota
	// FlagWasQuoted marks a STRING token that was written with surrounding
	// quotes in the source text, as opposed to a bare scalar lexed as STRING.
	FlagWasQuoted
	// FlagHasEscape marks a STRING token whose text contains an escape
	// sequence, so callers cannot treat its raw text as pre-unescaped.
	FlagHasEscape
)

// iota starts at 1 for FlagPrecedingLineBreak since FlagNone occupies the
// const block's first line; the bits used are 1<<1, 1<<2, 1<<3.

// Has reports whether f contains every bit set in other.
func (f Flags) Has(other Flags) bool {
	return f&other == other
}

// Token is a single lexical token together with its source range and
// lexer-observed flags. Ported from original_source/jominipy/lexer/tokens.py's
// Token dataclass.
type Token struct {
	Kind  Kind
	Range text.Range
	Flags Flags
}

// Trivia is a piece of skipped/whitespace/comment text recorded by the
// lexer during scanning, range-based (unlike the tree-side TriviaPiece,
// which is length-only once attached to a green token). Ported from
// original_source/jominipy/lexer/tokens.py's Trivia dataclass. Trailing
// records whether this trivia should attach to the preceding token (true)
// or the following one (false). The lexer records every piece with
// Trailing=true; TokenSource decides attachment from each piece's position
// relative to the first NEWLINE (see splitTrivia) and does not update this
// field.
type Trivia struct {
	Kind     TriviaKind
	Range    text.Range
	Trailing bool
}

// TriviaPiece is the length-only, tree-side counterpart of Trivia: once a
// green token owns its leading/trailing trivia, absolute source ranges no
// longer matter, only lengths, since the green tree carries no offsets.
// Ported from original_source/jominipy/cst/green.py's TriviaPiece.
type TriviaPiece struct {
	Kind   TriviaKind
	Length text.Size
}

// EOFToken is the sentinel token the lexer repeats with zero width once the
// end of input has been reached.
var EOFToken = Kind(EOF)
