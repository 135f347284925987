package syntax

// BuildLosslessTree replays a parser's event stream into a GreenNode,
// losslessly preserving every byte of sourceText (code, whitespace,
// newlines, comments) as token text or trivia. Ported from
// original_source/jominipy/parser/tree_sink.py's LosslessTreeSink combined
// with parser/parse.py's build_lossless_tree.
func BuildLosslessTree(sourceText string, events []Event) *GreenNode {
	builder := NewTreeBuilder(sourceText)
	ProcessEvents(events, builder)
	return builder.Finish()
}
