package syntax

import (
	"golang.org/x/text/unicode/runenames"

	"github.com/jomini-tools/jominicore/diagnostic"
	"github.com/jomini-tools/jominicore/text"
)

// LexerCheckpoint captures a Lexer's position so callers can rewind after
// speculative scanning: the byte cursor, the EOF-emitted flag, and the
// lengths of the pending trivia and diagnostics buffers, so Rewind can
// truncate anything accumulated since the checkpoint was taken. Ported
// from original_source/jominipy/lexer/lexer.py's LexerCheckpoint/
// checkpoint/rewind. That reference also snapshots a "current kind/flags"
// pair and an after-newline flag, both there only because Python's Lexer
// re-derives PRECEDING_LINE_BREAK itself as running state carried between
// NextToken calls; this Lexer never carries that state at all — each
// Trivia it records is handed whole to TokenSource, which derives
// line-break ownership itself from the NEWLINE pieces in the stream (see
// token_source.go's splitTrivia) — so there is nothing of that kind here
// to snapshot.
type LexerCheckpoint struct {
	cursor     int
	eofEmitted bool
	triviaLen  int
	diagsLen   int
}

// Lexer produces one Token at a time from source text, plus the Trivia
// (whitespace, newlines, comments, skipped bytes) and Diagnostics observed
// along the way. Cursor movement is delegated to a Scanner (the teacher's
// rune-cursor primitive, kept from gotypst's syntax package), which already
// handles the byte-vs-codepoint bookkeeping Python's lexer.py does by
// indexing strings as code points; Jomini's lexical grammar is ASCII for
// every structural character (operators, punctuation, digits), so Scanner's
// rune-at-a-time Peek/Eat gives the same token boundaries. Ported from
// original_source/jominipy/lexer/lexer.py.
type Lexer struct {
	s          *Scanner
	eofEmitted bool
	diags      []diagnostic.Diagnostic
	trivia     []Trivia
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{s: NewScanner(src)}
}

// cur returns the Scanner's current cursor position as a text.Size.
func (l *Lexer) cur() text.Size {
	return text.FromInt(l.s.Cursor())
}

// Checkpoint returns a snapshot of the lexer's current position.
func (l *Lexer) Checkpoint() LexerCheckpoint {
	return LexerCheckpoint{
		cursor:     l.s.Cursor(),
		eofEmitted: l.eofEmitted,
		triviaLen:  len(l.trivia),
		diagsLen:   len(l.diags),
	}
}

// Rewind restores the lexer to a previously captured checkpoint, truncating
// any trivia or diagnostics recorded since the checkpoint was taken (so a
// speculative scan that gets rewound never leaks an unterminated-string
// diagnostic or a trivia piece from the abandoned attempt).
func (l *Lexer) Rewind(cp LexerCheckpoint) {
	l.s.Jump(cp.cursor)
	l.eofEmitted = cp.eofEmitted
	l.trivia = l.trivia[:cp.triviaLen]
	l.diags = l.diags[:cp.diagsLen]
}

// NextToken scans and returns the next non-trivia token, recording any
// leading/trailing trivia encountered along the way into l.trivia (consumed
// later via Trivia()) and any diagnostics into l.diags (consumed via
// Diagnostics()). An unrecognized byte is recorded as SKIPPED trivia rather
// than returned, and a token with a NEWLINE among the trivia recorded
// before it carries FlagPrecedingLineBreak. Once EOF is reached it is
// emitted exactly once with a zero-width range, after which subsequent
// calls repeat it.
func (l *Lexer) NextToken() Token {
	triviaStart := len(l.trivia)
	tok := l.nextToken()
	for tok.Kind == Skipped {
		l.trivia = append(l.trivia, Trivia{Kind: TriviaSkipped, Range: tok.Range, Trailing: true})
		tok = l.nextToken()
	}
	for _, t := range l.trivia[triviaStart:] {
		if t.Kind == TriviaNewline {
			tok.Flags |= FlagPrecedingLineBreak
			break
		}
	}
	return tok
}

func (l *Lexer) nextToken() Token {
	l.consumeNewlineOrWhitespaces()
	l.consumeComments()

	start := l.cur()
	if l.s.Done() {
		l.eofEmitted = true
		return Token{Kind: EOF, Range: text.EmptyRange(start)}
	}

	c := l.s.Peek()
	switch {
	case c == '"':
		return l.lexString(start)
	case isDigitRune(c) || ((c == '+' || c == '-') && isDigitRune(l.s.Scout(1))):
		return l.lexNumber(start)
	case isIdentStartRune(c):
		return l.lexIdentifier(start)
	default:
		return l.lexOperator(start)
	}
}

func (l *Lexer) consumeNewlineOrWhitespaces() {
	for !l.s.Done() {
		if l.s.AtAny('\n', '\r') {
			start := l.cur()
			l.s.EatNewline()
			l.trivia = append(l.trivia, Trivia{Kind: TriviaNewline, Range: text.NewRange(start, l.cur()), Trailing: true})
			continue
		}
		if l.s.AtAny(' ', '\t') {
			start := l.cur()
			for l.s.AtAny(' ', '\t') {
				l.s.Eat()
			}
			l.trivia = append(l.trivia, Trivia{Kind: TriviaWhitespace, Range: text.NewRange(start, l.cur()), Trailing: true})
			continue
		}
		break
	}
}

func (l *Lexer) consumeComments() {
	for l.s.AtAny('#') {
		start := l.cur()
		l.s.EatUntil(func(r rune) bool { return r == '\n' })
		l.trivia = append(l.trivia, Trivia{Kind: TriviaComment, Range: text.NewRange(start, l.cur()), Trailing: true})
		l.consumeNewlineOrWhitespaces()
	}
}

func (l *Lexer) lexString(start text.Size) Token {
	l.s.Eat() // opening quote
	hasEscape := false
	terminated := false
	for !l.s.Done() {
		c := l.s.Peek()
		if c == '\\' {
			hasEscape = true
			l.s.Eat()
			if !l.s.Done() {
				l.s.Eat()
			}
			continue
		}
		if c == '"' {
			l.s.Eat()
			terminated = true
			break
		}
		if c == '\n' {
			break
		}
		l.s.Eat()
	}
	r := text.NewRange(start, l.cur())
	if !terminated {
		l.diags = append(l.diags, diagnostic.LexerUnterminatedString.Build(r, ""))
	}
	flags := FlagWasQuoted
	if hasEscape {
		flags |= FlagHasEscape
	}
	return Token{Kind: String, Range: r, Flags: flags}
}

func (l *Lexer) lexNumber(start text.Size) Token {
	if l.s.AtAny('+', '-') {
		l.s.Eat()
	}
	l.s.EatWhile(isDigitRune)
	kind := Int
	if l.s.Peek() == '.' && isDigitRune(l.s.Scout(1)) {
		kind = Float
		l.s.Eat()
		l.s.EatWhile(isDigitRune)
		// Exactly one dot group: a second one (dates like 1444.11.11) starts
		// a new DOT/INT pair instead, reassembled by the parser's
		// scalar-gluing loop into a single AST scalar.
	}
	return Token{Kind: kind, Range: text.NewRange(start, l.cur())}
}

func (l *Lexer) lexIdentifier(start text.Size) Token {
	l.s.EatWhile(isIdentRune)
	return Token{Kind: Identifier, Range: text.NewRange(start, l.cur())}
}

func (l *Lexer) lexOperator(start text.Size) Token {
	c := l.s.Eat()
	two := func(second rune, k2 Kind, k1 Kind) Token {
		if l.s.Peek() == second {
			l.s.Eat()
			return Token{Kind: k2, Range: text.NewRange(start, l.cur())}
		}
		return Token{Kind: k1, Range: text.NewRange(start, l.cur())}
	}
	switch c {
	case '=':
		return two('=', EqualEqual, Equal)
	case '!':
		return two('=', NotEqual, Bang)
	case '<':
		return two('=', LessThanOrEqual, LessThan)
	case '>':
		return two('=', GreaterThanOrEqual, GreaterThan)
	case '?':
		return two('=', QuestionEqual, Question)
	case ':':
		return Token{Kind: Colon, Range: text.NewRange(start, l.cur())}
	case ';':
		return Token{Kind: Semicolon, Range: text.NewRange(start, l.cur())}
	case ',':
		return Token{Kind: Comma, Range: text.NewRange(start, l.cur())}
	case '.':
		return Token{Kind: Dot, Range: text.NewRange(start, l.cur())}
	case '/':
		return Token{Kind: Slash, Range: text.NewRange(start, l.cur())}
	case '\\':
		return Token{Kind: Backslash, Range: text.NewRange(start, l.cur())}
	case '@':
		return Token{Kind: At, Range: text.NewRange(start, l.cur())}
	case '+':
		return Token{Kind: Plus, Range: text.NewRange(start, l.cur())}
	case '-':
		return Token{Kind: Minus, Range: text.NewRange(start, l.cur())}
	case '*':
		return Token{Kind: Star, Range: text.NewRange(start, l.cur())}
	case '%':
		return Token{Kind: Percent, Range: text.NewRange(start, l.cur())}
	case '^':
		return Token{Kind: Caret, Range: text.NewRange(start, l.cur())}
	case '|':
		return Token{Kind: Pipe, Range: text.NewRange(start, l.cur())}
	case '&':
		return Token{Kind: Amp, Range: text.NewRange(start, l.cur())}
	case '{':
		return Token{Kind: LBrace, Range: text.NewRange(start, l.cur())}
	case '}':
		return Token{Kind: RBrace, Range: text.NewRange(start, l.cur())}
	case '[':
		return Token{Kind: LBracket, Range: text.NewRange(start, l.cur())}
	case ']':
		return Token{Kind: RBracket, Range: text.NewRange(start, l.cur())}
	case '(':
		return Token{Kind: LParen, Range: text.NewRange(start, l.cur())}
	case ')':
		return Token{Kind: RParen, Range: text.NewRange(start, l.cur())}
	default:
		r := text.NewRange(start, l.cur())
		hint := "Unicode name: " + runenames.Name(c)
		d := diagnostic.LexerUnrecognizedByte.Build(r, "")
		d.Hint = hint
		l.diags = append(l.diags, d)
		return Token{Kind: Skipped, Range: r}
	}
}

// Trivia drains and returns every Trivia piece recorded since the last
// call.
func (l *Lexer) Trivia() []Trivia {
	t := l.trivia
	l.trivia = nil
	return t
}

// Diagnostics drains and returns every Diagnostic recorded since the last
// call.
func (l *Lexer) Diagnostics() []diagnostic.Diagnostic {
	d := l.diags
	l.diags = nil
	return d
}

func isDigitRune(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStartRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r >= 0x80
}

func isIdentRune(r rune) bool {
	return isIdentStartRune(r) || isDigitRune(r) || r == '-' || r == '.' || r == '\''
}
