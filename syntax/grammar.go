package syntax

import (
	"strings"

	"github.com/jomini-tools/jominicore/diagnostic"
	"github.com/jomini-tools/jominicore/text"
)

// statementListStopSet is the recovery set used while parsing a statement
// list inside a block: stop at the closing brace or end of input.
var statementListStopSet = NewSet(RBrace, EOF)

// ParseSourceFile parses an entire source file: a SourceFile node wrapping
// a single StatementList followed by the EOF token, which carries any
// trivia after the last statement's line. Ported from
// original_source/jominipy/parser/grammar.py's parse_source_file.
func ParseSourceFile(p *Parser) {
	m := p.Start()
	parseStatementList(p, NewSet(EOF), !p.Options().AllowBareScalarAfterKeyValue)
	if p.At(EOF) {
		p.BumpAny()
	}
	p.Complete(m, SourceFile)
}

// parseStatementList parses zero or more statements until the current
// token is a member of stopSet, recovering with line-break-bounded
// token-set recovery on any statement that fails to parse cleanly.
// restrictBareScalarsAfterKeyValue, once a key-value statement has been
// seen in this list, forbids a further bare scalar statement from
// following it: at the top level this is driven by
// Options.AllowBareScalarAfterKeyValue, inside a block by
// Options.AllowAlternatingValueKeyValue — the original source uses two
// distinct options for the same restriction at the two nesting levels.
// Ported from parse_statement_list.
func parseStatementList(p *Parser, stopSet Set, restrictBareScalarsAfterKeyValue bool) {
	m := p.Start()
	recovery := NewTokenSet(stopSet).EnableRecoveryOnLineBreak()
	hasSeenKeyValue := false

	ParseNodeList(p,
		func() bool { return p.AtSet(stopSet) },
		func() {
			allowBareScalars := !restrictBareScalarsAfterKeyValue || !hasSeenKeyValue
			present, isKeyValue := parseStatement(p, allowBareScalars)
			if isKeyValue {
				hasSeenKeyValue = true
			}
			if present && p.Options().AllowSemicolonTerminator {
				p.Eat(Semicolon)
			}
		},
		func() { recovery.Recover(p) },
	)
	p.Complete(m, StatementList)
}

// parseStatement parses a single top-level or block-level statement: a
// bare block, a key-value pair, or a bare scalar/tagged value. Returns
// whether a statement was consumed at all, and separately whether it was a
// key-value (used by parseStatementList to track hasSeenKeyValue). When
// allowBareScalars is false, a statement that turns out to be a bare
// scalar (neither a key-value nor an implicit-block key-value) is rewound
// entirely rather than accepted, so parseStatementList's caller sees no
// progress and its recovery logic takes over — this diverges from
// grammar.py's parse_statement, which in that case leaves the scalar
// parsed but reports it as not present; Go's ParseNodeList is
// position-progress-based rather than present/absent-based, so a clean
// rewind is the faithful equivalent in this architecture. Ported from
// grammar.py's parse_statement.
func parseStatement(p *Parser, allowBareScalars bool) (present bool, isKeyValue bool) {
	if p.At(RBrace) {
		if p.Options().AllowLegacyExtraRBrace {
			m := p.Start()
			p.Error(diagnostic.ParserLegacyExtraRBrace, "")
			p.BumpAny()
			p.Complete(m, Error)
			return true, false
		}
		return false, false
	}
	if p.At(LBrace) {
		parseBlock(p)
		return true, false
	}
	if !canStartScalar(p) {
		return false, false
	}

	cp := p.BeginSpeculative()
	m := p.Start()
	scalarMark, scalarRange := parseScalar(p)

	if p.AtSet(AssignmentOperators) {
		p.EndSpeculative()
		p.BumpAny()
		parseValue(p)
		p.Complete(m, KeyValue)
		return true, true
	}

	if p.At(LBrace) {
		// Implicit-block key-value: `key { ... }` with no operator.
		p.EndSpeculative()
		parseBlock(p)
		p.Complete(m, KeyValue)
		return true, true
	}

	if !allowBareScalars {
		p.Rewind(cp)
		return false, false
	}

	p.EndSpeculative()
	_ = scalarMark
	if isParameterSyntaxScalar(text.Slice(p.sourceText, scalarRange)) && !p.Options().AllowParameterSyntax {
		p.Error(diagnostic.ParserUnsupportedParameterSyntax, "")
	}
	p.Abandon(m)
	return true, false
}

// parseValue parses the value side of a key-value pair: a block, a tagged
// block value (scalar immediately followed by a block), or a bare scalar.
// Ported from grammar.py's parse_value.
func parseValue(p *Parser) {
	if p.At(LBrace) {
		parseBlock(p)
		return
	}
	if !canStartScalar(p) {
		p.Error(diagnostic.ParserExpectedValue, "")
		return
	}

	if p.Nth(0) == Identifier && p.Nth(1) == String && !p.Options().AllowUnmarkedListForm {
		if isUnmarkedListKeyword(p) {
			m := p.Start()
			p.Error(diagnostic.ParserUnsupportedUnmarkedList, "")
			p.BumpAny()
			p.BumpAny()
			p.Complete(m, Error)
			return
		}
	}

	m := p.Start()
	parseScalar(p)
	if p.At(LBrace) {
		parseBlock(p)
		p.Complete(m, TaggedBlockValue)
		return
	}
	p.Abandon(m)
}

// isUnmarkedListKeyword reports whether the current token's text is the
// literal identifier "list", used to recognize the legacy unmarked list
// value form (`key = list "a b c"`) before it gets glued into an ordinary scalar. Ported
// from grammar.py's check inside parse_value for the unmarked-list special
// case.
func isUnmarkedListKeyword(p *Parser) bool {
	tok := p.source.NthToken(0)
	return text.Slice(p.sourceText, tok.Range) == "list"
}

// parseBlock parses a `{ ... }` block as a node wrapping a StatementList.
// Tolerates a missing closing brace in permissive mode. Ported from
// grammar.py's parse_block.
func parseBlock(p *Parser) CompletedMarker {
	m := p.Start()
	p.Expect(LBrace)
	parseStatementList(p, statementListStopSet, !p.Options().AllowAlternatingValueKeyValue)
	if !p.Eat(RBrace) {
		if p.Options().AllowLegacyMissingRBrace {
			p.Error(diagnostic.ParserLegacyMissingRBrace, "")
		} else {
			p.Expect(RBrace)
		}
	}
	return p.Complete(m, Block)
}

// parseScalar parses one scalar, gluing together any further
// scalar-starting tokens that immediately follow with no intervening
// trivia (the source-level "a-b.c" style compound scalars Clausewitz
// script allows). A lone STRING token never glues with what follows.
// Returns the completed node along with the source range it covers, so a
// caller that needs the scalar's literal text (e.g. to detect parameter
// syntax, or the legacy `list` keyword) can slice it without re-deriving
// token boundaries. Ported from grammar.py's parse_scalar; the parameter-
// syntax rejection that lived here in the original has moved to
// parseStatement, matching where grammar.py's caller actually applies it
// (see isParameterSyntaxScalar).
func parseScalar(p *Parser) (CompletedMarker, text.Range) {
	start := p.source.NthToken(0).Range.Start()
	m := p.Start()
	first := p.BumpAny()
	end := first.Range.End()
	if first.Kind != String {
		for canStartScalar(p) && !p.HasPrecedingTrivia() {
			tok := p.BumpAny()
			end = tok.Range.End()
		}
	}
	return p.Complete(m, Scalar), text.NewRange(start, end)
}

// isParameterSyntaxScalar reports whether a scalar's literal text is the
// `[[...]]` or `$...$` parameter-substitution syntax. Checked against the
// scalar's text rather than its leading token kind so that a legitimate
// `@scope`-style glued scalar (spec.md §4.5) is never mistaken for
// unsupported parameter syntax: `@` has nothing to do with `$...$`
// parameters, and `$` is not even a lexed token kind in this module (a `$`
// byte falls through to LEXER_UNRECOGNIZED_BYTE), so this check only ever
// fires for the `[[` form in practice — kept text-based regardless, to
// match grammar.py's _is_parameter_syntax_scalar exactly and to keep
// working if `$` gains lexer support later. Ported from grammar.py's
// _is_parameter_syntax_scalar.
func isParameterSyntaxScalar(rawText string) bool {
	stripped := strings.TrimSpace(rawText)
	if strings.HasPrefix(stripped, "[[") {
		return true
	}
	return len(stripped) >= 2 && strings.HasPrefix(stripped, "$") && strings.HasSuffix(stripped, "$")
}

// canStartScalar reports whether the current token can begin a scalar:
// everything except EOF, braces, and assignment operators.
func canStartScalar(p *Parser) bool {
	k := p.Nth(0)
	if k == EOF || k == LBrace || k == RBrace {
		return false
	}
	return !AssignmentOperators.Contains(k)
}
