package syntax

import "github.com/jomini-tools/jominicore/diagnostic"

// Result carries one parse's source text and green tree, lazily building
// and caching the red tree, AST, and analysis facts derived from it on
// first access. Ported from
// original_source/jominipy/pipeline/result.py's ParseResultBase/
// JominiParseResult.
type Result struct {
	SourceText string
	Parsed     *ParsedGreenTree

	syntaxRoot *SyntaxNode
	astRoot    *SourceFile
	facts      *Facts
	rootView   *BlockView
}

// NewResult wraps a completed parse.
func NewResult(sourceText string, parsed *ParsedGreenTree) *Result {
	return &Result{SourceText: sourceText, Parsed: parsed}
}

// Diagnostics returns every diagnostic raised while parsing.
func (r *Result) Diagnostics() []diagnostic.Diagnostic {
	return r.Parsed.Diagnostics
}

// HasErrors reports whether any diagnostic is an error.
func (r *Result) HasErrors() bool {
	return diagnostic.HasErrors(r.Parsed.Diagnostics)
}

// GreenRoot returns the parse's green tree root.
func (r *Result) GreenRoot() *GreenNode {
	return r.Parsed.Green
}

// SyntaxRoot lazily builds and caches the red tree root.
func (r *Result) SyntaxRoot() *SyntaxNode {
	if r.syntaxRoot == nil {
		r.syntaxRoot = NewRedTree(r.Parsed.Green)
	}
	return r.syntaxRoot
}

// AstRoot lazily builds and caches the lowered AST.
func (r *Result) AstRoot() *SourceFile {
	if r.astRoot == nil {
		r.astRoot = LowerSyntaxTree(r.SyntaxRoot(), r.SourceText)
	}
	return r.astRoot
}

// AnalysisFacts lazily builds and caches the analysis facts for this
// parse.
func (r *Result) AnalysisFacts() *Facts {
	if r.facts == nil {
		r.facts = BuildFacts(r.AstRoot())
	}
	return r.facts
}

// RootView lazily builds and caches a BlockView-like root wrapper by
// treating the source file's statements as a synthetic top-level Block,
// letting callers reuse BlockView's accessors at the file level. Ported
// from pipeline/result.py's JominiParseResult.root_view.
func (r *Result) RootView() *BlockView {
	if r.rootView == nil {
		r.rootView = NewBlockView(&Block{Statements: r.AstRoot().Statements})
	}
	return r.rootView
}
