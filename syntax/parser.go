package syntax

import "github.com/jomini-tools/jominicore/diagnostic"

// Parser drives the token source through an event-driven recursive-descent
// grammar, recording a flat event stream and a diagnostics list. Ported
// from original_source/jominipy/parser/parser.py's Parser.
type Parser struct {
	source      *TokenSource
	options     Options
	sourceText  string
	events      []Event
	diags       []diagnostic.Diagnostic
	speculative int // nesting depth of BeginSpeculative/EndSpeculative
}

// NewParser returns a Parser over source configured with opts. sourceText
// is the full original text, needed only to resolve a handful of
// keyword-shaped scalars (e.g. the legacy `list` unmarked-list form) by
// their literal spelling.
func NewParser(source *TokenSource, opts Options, sourceText string) *Parser {
	return &Parser{source: source, options: opts, sourceText: sourceText}
}

// Options returns the parser's configured Options.
func (p *Parser) Options() Options {
	return p.options
}

// Start opens a new node and returns a Marker to complete or abandon it
// later.
func (p *Parser) Start() Marker {
	pos := len(p.events)
	p.events = append(p.events, Event{Kind: EventStart})
	return Marker{pos: pos}
}

// Nth returns the kind of the token n positions ahead of the cursor.
func (p *Parser) Nth(n int) Kind {
	return p.source.Nth(n)
}

// At reports whether the current token has kind k.
func (p *Parser) At(k Kind) bool {
	return p.source.Nth(0) == k
}

// AtSet reports whether the current token's kind is a member of s.
func (p *Parser) AtSet(s Set) bool {
	return s.Contains(p.source.Nth(0))
}

// HasNthPrecedingLineBreak reports whether a line break precedes the token
// n positions ahead.
func (p *Parser) HasNthPrecedingLineBreak(n int) bool {
	return p.source.HasNthPrecedingLineBreak(n)
}

// HasPrecedingTrivia reports whether any trivia (space, comment, newline)
// precedes the current token.
func (p *Parser) HasPrecedingTrivia() bool {
	return p.source.HasNthPrecedingTrivia(0)
}

// Position returns a monotonically increasing cursor position, used by
// ParserProgress to detect stalled loops.
func (p *Parser) Position() int {
	return p.source.pos
}

// BumpAny consumes the current token unconditionally and emits a Token
// event for it.
func (p *Parser) BumpAny() Token {
	tok, leading, trailing := p.source.tokenAt(p.source.pos)
	p.events = append(p.events, Event{Kind: EventToken, Token: tok, Leading: leading, Trailing: trailing})
	p.source.Bump()
	return tok
}

// Bump consumes the current token, asserting it has kind k.
func (p *Parser) Bump(k Kind) Token {
	if !p.At(k) {
		panic("syntax: Bump called on mismatched token kind")
	}
	return p.BumpAny()
}

// Eat consumes the current token if it has kind k, reporting whether it
// did.
func (p *Parser) Eat(k Kind) bool {
	if !p.At(k) {
		return false
	}
	p.BumpAny()
	return true
}

// Expect consumes the current token if it has kind k; otherwise it records
// an expected-token diagnostic and leaves the cursor unmoved.
func (p *Parser) Expect(k Kind) bool {
	if p.Eat(k) {
		return true
	}
	p.errorAt(diagnostic.ParserExpectedToken, "Expected "+k.Name())
	return false
}

// Error records a diagnostic at the current token's range, unless the
// parser is currently inside speculative parsing (in which case diagnostics
// are suppressed: a failed speculative attempt should not pollute the
// user-visible diagnostic list).
func (p *Parser) Error(spec diagnostic.Spec, message string) {
	p.errorAt(spec, message)
}

func (p *Parser) errorAt(spec diagnostic.Spec, message string) {
	if p.IsSpeculativeParsing() {
		return
	}
	r := p.source.NthToken(0).Range
	p.diags = append(p.diags, spec.Build(r, message))
}

// SpeculativeCheckpoint captures enough state to fully rewind a speculative
// parse attempt: the token cursor, the event list length, and the
// diagnostics list length.
type SpeculativeCheckpoint struct {
	token TokenSourceCheckpoint
	events int
	diags  int
}

// BeginSpeculative marks the start of a speculative parse and returns a
// checkpoint to rewind to if the attempt is abandoned.
func (p *Parser) BeginSpeculative() SpeculativeCheckpoint {
	p.speculative++
	return SpeculativeCheckpoint{
		token:  p.source.Checkpoint(),
		events: len(p.events),
		diags:  len(p.diags),
	}
}

// EndSpeculative closes a speculative region opened with BeginSpeculative,
// without rewinding (used when the attempt succeeded and its events should
// be kept).
func (p *Parser) EndSpeculative() {
	if p.speculative > 0 {
		p.speculative--
	}
}

// Rewind abandons a speculative attempt, restoring the token cursor, event
// list, and diagnostics list to the checkpoint, and closing the speculative
// region.
func (p *Parser) Rewind(cp SpeculativeCheckpoint) {
	p.source.Rewind(cp.token)
	p.events = p.events[:cp.events]
	p.diags = p.diags[:cp.diags]
	p.EndSpeculative()
}

// IsSpeculativeParsing reports whether the parser is currently inside a
// BeginSpeculative/EndSpeculative or BeginSpeculative/Rewind region. Gates
// error reporting and recovery, both of which must not run speculatively:
// see TokenSet.Recover.
func (p *Parser) IsSpeculativeParsing() bool {
	return p.speculative > 0
}

// Finish returns the accumulated event list and parser diagnostics.
func (p *Parser) Finish() ([]Event, []diagnostic.Diagnostic) {
	return p.events, p.diags
}

// ParserProgress guards list-parsing loops against stalling: if a loop
// iterates without the parser's cursor advancing, something in the grammar
// failed to consume a token, and continuing would loop forever. Ported from
// original_source/jominipy/parser/parser.py's ParserProgress.
type ParserProgress struct {
	lastPos int
	started bool
}

// HasProgressed reports whether p's cursor has moved since the last call
// (or since construction, on the first call), recording the new position
// either way.
func (pp *ParserProgress) HasProgressed(p *Parser) bool {
	pos := p.Position()
	if !pp.started {
		pp.started = true
		pp.lastPos = pos
		return true
	}
	progressed := pos != pp.lastPos
	pp.lastPos = pos
	return progressed
}

// AssertProgressing panics if the parser's cursor has not advanced since
// the last check, surfacing a grammar bug immediately instead of hanging.
func (pp *ParserProgress) AssertProgressing(p *Parser) {
	if !pp.HasProgressed(p) {
		panic("syntax: parser failed to make progress; grammar bug")
	}
}
