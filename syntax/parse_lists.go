package syntax

// ParseNodeList runs a reusable statement-list parsing loop: while isAtEnd
// reports false, it calls parseElement once per iteration, falling back to
// recover whenever parseElement made no progress, and bails out entirely if
// progress stalls twice in a row (a grammar bug, not a malformed input).
// Ported from original_source/jominipy/parser/parse_lists.py's
// ParseNodeList.
func ParseNodeList(p *Parser, isAtEnd func() bool, parseElement func(), recover func()) {
	for !isAtEnd() && !p.At(EOF) {
		before := p.Position()
		parseElement()
		if p.Position() != before {
			continue
		}
		recover()
		if p.Position() == before {
			break
		}
	}
}
