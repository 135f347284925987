package syntax

import "github.com/jomini-tools/jominicore/diagnostic"

// ParsedGreenTree bundles a parse's green root with the diagnostics
// collected while producing it. It is the durable, offset-free artifact a
// ParseResult caches: cheap to keep around, since it carries no red-tree
// navigation state. Ported from
// original_source/jominipy/parser/parsed_syntax.py's ParsedSyntax.
type ParsedGreenTree struct {
	Green       *GreenNode
	Diagnostics []diagnostic.Diagnostic
}

// SyntaxRoot lazily builds and returns the red tree rooted at the parsed
// green tree. Callers should generally prefer caching this on a
// ParseResult rather than calling it repeatedly, since each call builds a
// fresh root (though children below the root are lazy either way).
func (p *ParsedGreenTree) SyntaxRoot() *SyntaxNode {
	return NewRedTree(p.Green)
}

// HasErrors reports whether any diagnostic in the parse is an error.
func (p *ParsedGreenTree) HasErrors() bool {
	return diagnostic.HasErrors(p.Diagnostics)
}
