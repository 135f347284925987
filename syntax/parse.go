package syntax

import "github.com/jomini-tools/jominicore/diagnostic"

// Parse lexes and parses sourceText under opts, returning the resulting
// ParsedGreenTree (green root plus every diagnostic the lexer and parser
// raised, lexer diagnostics first). Ported from
// original_source/jominipy/parser/jomini.py's parse_jomini, minus its
// options-vs-mode argument juggling (this module takes Options directly;
// ForMode/DefaultOptions build one from a ParseMode when that's all a
// caller has).
func Parse(sourceText string, opts Options) *ParsedGreenTree {
	lexer := NewLexer(sourceText)
	buffered := NewBufferedLexer(lexer)
	source := NewTokenSource(buffered)
	parser := NewParser(source, opts, sourceText)

	ParseSourceFile(parser)

	events, parserDiags := parser.Finish()
	lexerDiags := source.Finish()

	green := BuildLosslessTree(sourceText, events)
	return &ParsedGreenTree{
		Green:       green,
		Diagnostics: diagnostic.Collect(lexerDiags, parserDiags),
	}
}
