package syntax

import "github.com/jomini-tools/jominicore/text"

// GreenElement is either a *GreenToken or a *GreenNode.
type GreenElement interface {
	textLen() text.Size
}

// GreenToken is an immutable leaf of the green tree: a kind, raw text, and
// the trivia pieces attached to it. Green tokens carry no source offsets,
// only lengths, so the same GreenToken value could in principle be shared
// across trees (rope-style reuse); this module always builds a fresh tree
// per parse, but the type itself stays offset-free to keep that option
// open. Ported from original_source/jominipy/cst/green.py's GreenToken.
type GreenToken struct {
	Kind           Kind
	Text           string
	LeadingTrivia  []TriviaPiece
	TrailingTrivia []TriviaPiece
}

func triviaLen(pieces []TriviaPiece) text.Size {
	total := text.Zero
	for _, p := range pieces {
		total = total.Add(p.Length)
	}
	return total
}

// TextLen returns the token's full length: leading trivia + token text +
// trailing trivia.
func (t *GreenToken) TextLen() text.Size {
	return triviaLen(t.LeadingTrivia).Add(text.Of(t.Text)).Add(triviaLen(t.TrailingTrivia))
}

func (t *GreenToken) textLen() text.Size { return t.TextLen() }

// GreenNode is an immutable interior node of the green tree: a kind and an
// ordered list of children (tokens and/or nodes). Ported from
// original_source/jominipy/cst/green.py's GreenNode.
//
// TextLen sums every child's TextLen, which already includes each child
// token's own leading/trailing trivia; this is the invariant this module's
// specification requires (a node's length always equals the length of text
// it spans, trivia included), rather than the reference implementation's
// simpler children-only sum that happened to coincide with it because every
// leaf there already folded trivia into itself the same way.
type GreenNode struct {
	Kind     Kind
	Children []GreenElement
}

// TextLen returns the total length spanned by the node, trivia included.
func (n *GreenNode) TextLen() text.Size {
	total := text.Zero
	for _, c := range n.Children {
		total = total.Add(c.textLen())
	}
	return total
}

func (n *GreenNode) textLen() text.Size { return n.TextLen() }

// TreeBuilder assembles a green tree from a replayed event stream. Ported
// from original_source/jominipy/cst/green.py's TreeBuilder, which
// implements the syntax.TreeSink interface consumed by ProcessEvents.
type TreeBuilder struct {
	stack      [][]GreenElement
	sourceText string
}

// NewTreeBuilder returns an empty TreeBuilder that slices token text out of
// sourceText.
func NewTreeBuilder(sourceText string) *TreeBuilder {
	return &TreeBuilder{stack: [][]GreenElement{{}}, sourceText: sourceText}
}

// StartNode implements TreeSink.
func (b *TreeBuilder) StartNode(kind Kind) {
	b.stack = append(b.stack, []GreenElement{})
	b.stack[len(b.stack)-1] = append(b.stack[len(b.stack)-1], pendingKind{kind: kind})
}

// pendingKind is a sentinel pushed at the start of each node's children
// slice recording which kind FinishNode should close with; it is replaced
// by the assembled *GreenNode when the node closes.
type pendingKind struct{ kind Kind }

func (pendingKind) textLen() text.Size { return text.Zero }

// FinishNode implements TreeSink.
func (b *TreeBuilder) FinishNode() {
	top := b.stack[len(b.stack)-1]
	kind := top[0].(pendingKind).kind
	children := top[1:]
	node := &GreenNode{Kind: kind, Children: append([]GreenElement{}, children...)}
	b.stack = b.stack[:len(b.stack)-1]
	parent := len(b.stack) - 1
	b.stack[parent] = append(b.stack[parent], node)
}

// Token implements TreeSink: it materializes a GreenToken from the
// replayed token event, folding its leading/trailing Trivia ranges into
// length-only TriviaPiece values.
func (b *TreeBuilder) Token(tok Token, leading, trailing []Trivia) {
	gt := &GreenToken{
		Kind:           tok.Kind,
		Text:           text.Slice(b.sourceText, tok.Range),
		LeadingTrivia:  toPieces(leading),
		TrailingTrivia: toPieces(trailing),
	}
	top := len(b.stack) - 1
	b.stack[top] = append(b.stack[top], gt)
}

func toPieces(trivia []Trivia) []TriviaPiece {
	if len(trivia) == 0 {
		return nil
	}
	pieces := make([]TriviaPiece, 0, len(trivia))
	for _, t := range trivia {
		pieces = append(pieces, TriviaPiece{Kind: t.Kind, Length: t.Range.Len()})
	}
	return pieces
}

// Finish returns the single root GreenNode the builder assembled. If
// exactly one root-level node was produced and it is already a Root node,
// it is returned directly; otherwise every root-level element is wrapped in
// a synthetic Root node. Ported from green.py's TreeBuilder.finish.
func (b *TreeBuilder) Finish() *GreenNode {
	roots := b.stack[0]
	if len(roots) == 1 {
		if n, ok := roots[0].(*GreenNode); ok && n.Kind == Root {
			return n
		}
	}
	return &GreenNode{Kind: Root, Children: append([]GreenElement{}, roots...)}
}
