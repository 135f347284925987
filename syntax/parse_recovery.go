package syntax

import "github.com/jomini-tools/jominicore/diagnostic"

// RecoveryErrorKind classifies why TokenSet.Recover declined to
// recover. Ported from
// original_source/jominipy/parser/parse_recovery.py's RecoveryError variants.
type RecoveryErrorKind uint8

const (
	// RecoveryOK means recovery consumed at least one token into an ERROR
	// node.
	RecoveryOK RecoveryErrorKind = iota
	// RecoveryAtEOF means the current token is already EOF; there is
	// nothing left to recover into.
	RecoveryAtEOF
	// RecoveryAlreadyAtRecoverySet means the current token is already a
	// member of the recovery set, so there is nothing to skip.
	RecoveryAlreadyAtRecoverySet
	// RecoveryDisabled means recovery was attempted while the parser is
	// speculatively parsing, where recovery must never run.
	RecoveryDisabled
)

// TokenSet performs bounded error recovery: it consumes tokens into an
// ERROR node until the current token is a member of its recovery set (or
// EOF), optionally also stopping at a preceding line break. Ported from
// original_source/jominipy/parser/parse_recovery.py's ParseRecoveryTokenSet.
type TokenSet struct {
	recoverySet        Set
	stopAtLineBreak    bool
}

// NewTokenSet returns a TokenSet that recovers up to (not including) any
// token in recoverySet.
func NewTokenSet(recoverySet Set) TokenSet {
	return TokenSet{recoverySet: recoverySet}
}

// EnableRecoveryOnLineBreak returns a copy of rs that additionally stops
// recovery before the first token after the starting one that is preceded
// by a line break, even if that token isn't in the recovery set (the
// starting token is always consumed). Statement lists use this so one
// missing statement doesn't swallow the rest of the file.
func (rs TokenSet) EnableRecoveryOnLineBreak() TokenSet {
	rs.stopAtLineBreak = true
	return rs
}

// Recover attempts to recover at the parser's current position, wrapping
// every consumed token in a single ERROR node and reporting an
// unexpected-token diagnostic. Returns RecoveryOK on success, or the
// specific reason recovery declined to run.
func (rs TokenSet) Recover(p *Parser) RecoveryErrorKind {
	if p.IsSpeculativeParsing() {
		return RecoveryDisabled
	}
	if p.At(EOF) {
		return RecoveryAtEOF
	}
	if p.AtSet(rs.recoverySet) {
		return RecoveryAlreadyAtRecoverySet
	}

	m := p.Start()
	p.errorAt(diagnostic.ParserUnexpectedToken, "Unexpected token "+p.Nth(0).Name())
	start := p.Position()
	for !p.At(EOF) && !p.AtSet(rs.recoverySet) {
		if rs.stopAtLineBreak && p.Position() > start && p.HasNthPrecedingLineBreak(0) {
			break
		}
		p.BumpAny()
	}
	p.Complete(m, Error)
	return RecoveryOK
}
