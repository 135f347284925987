package syntax

import "github.com/jomini-tools/jominicore/text"

// SyntaxTriviaPiece is the red-tree counterpart of TriviaPiece: a trivia
// piece with its text resolved, once an offset is known to slice it from.
type SyntaxTriviaPiece struct {
	Kind TriviaKind
	Text string
}

// SyntaxToken is a red-tree leaf: an offset-resolved view onto a
// GreenToken, with its own leading/trailing trivia text and a pointer back
// to its parent SyntaxNode. Ported from
// original_source/jominipy/cst/red.py's SyntaxToken.
type SyntaxToken struct {
	green  *GreenToken
	parent *SyntaxNode
	start  text.Size
	index  int
}

// Kind returns the token's kind.
func (t *SyntaxToken) Kind() Kind { return t.green.Kind }

// Range returns the trimmed (trivia-excluded) range of the token's own text.
func (t *SyntaxToken) Range() text.Range {
	s := t.start.Add(triviaLen(t.green.LeadingTrivia))
	e := s.Add(text.Of(t.green.Text))
	return text.NewRange(s, e)
}

// FullRange returns the range of the token's text including its leading
// and trailing trivia.
func (t *SyntaxToken) FullRange() text.Range {
	e := t.start.Add(t.green.TextLen())
	return text.NewRange(t.start, e)
}

// TextTrimmed returns the token's own text, trivia excluded.
func (t *SyntaxToken) TextTrimmed() string { return t.green.Text }

// TextWithTrivia returns the token's text including leading and trailing
// trivia.
func (t *SyntaxToken) TextWithTrivia(sourceText string) string {
	return text.Slice(sourceText, t.FullRange())
}

// Parent returns the token's parent node.
func (t *SyntaxToken) Parent() *SyntaxNode { return t.parent }

// LeadingTrivia returns the token's leading trivia pieces with text
// resolved from sourceText.
func (t *SyntaxToken) LeadingTrivia(sourceText string) []SyntaxTriviaPiece {
	return resolveTrivia(sourceText, t.start, t.green.LeadingTrivia)
}

// TrailingTrivia returns the token's trailing trivia pieces with text
// resolved from sourceText.
func (t *SyntaxToken) TrailingTrivia(sourceText string) []SyntaxTriviaPiece {
	offset := t.start.Add(triviaLen(t.green.LeadingTrivia)).Add(text.Of(t.green.Text))
	return resolveTrivia(sourceText, offset, t.green.TrailingTrivia)
}

func resolveTrivia(sourceText string, start text.Size, pieces []TriviaPiece) []SyntaxTriviaPiece {
	out := make([]SyntaxTriviaPiece, 0, len(pieces))
	cur := start
	for _, p := range pieces {
		end := cur.Add(p.Length)
		out = append(out, SyntaxTriviaPiece{Kind: p.Kind, Text: text.Slice(sourceText, text.NewRange(cur, end))})
		cur = end
	}
	return out
}

// SyntaxNode is a red-tree interior node: an offset-resolved,
// parent-pointed view onto a GreenNode. Children are built lazily on first
// access and memoized, unlike
// original_source/jominipy/cst/red.py's SyntaxNode.from_green, which builds
// the entire subtree eagerly in one recursive pass; this module's own
// specification requires genuine laziness, so only the root is built
// eagerly and every other node is materialized the first time a caller
// navigates to it.
type SyntaxNode struct {
	green    *GreenNode
	parent   *SyntaxNode
	start    text.Size
	indexInParent int

	childrenOnce bool
	children     []any // each element is *SyntaxNode or *SyntaxToken
}

// NewRedTree returns the root SyntaxNode of the red tree overlaying green.
func NewRedTree(green *GreenNode) *SyntaxNode {
	return &SyntaxNode{green: green, start: text.Zero, indexInParent: -1}
}

// Kind returns the node's kind.
func (n *SyntaxNode) Kind() Kind { return n.green.Kind }

// Range returns the node's full source range.
func (n *SyntaxNode) Range() text.Range {
	end := n.start.Add(n.green.TextLen())
	return text.NewRange(n.start, end)
}

// Parent returns the node's parent, or nil for the root.
func (n *SyntaxNode) Parent() *SyntaxNode { return n.parent }

// ensureChildren lazily materializes n's direct children (nodes and
// tokens) in source order, resolving each child's starting offset from its
// predecessors' lengths.
func (n *SyntaxNode) ensureChildren() {
	if n.childrenOnce {
		return
	}
	n.childrenOnce = true
	n.children = make([]any, 0, len(n.green.Children))
	offset := n.start
	for i, c := range n.green.Children {
		switch g := c.(type) {
		case *GreenNode:
			n.children = append(n.children, &SyntaxNode{green: g, parent: n, start: offset, indexInParent: i})
		case *GreenToken:
			n.children = append(n.children, &SyntaxToken{green: g, parent: n, start: offset, index: i})
		}
		offset = offset.Add(c.textLen())
	}
}

// Children returns every direct child (nodes and tokens), in source order.
func (n *SyntaxNode) Children() []any {
	n.ensureChildren()
	return n.children
}

// ChildNodes returns only the direct children that are nodes.
func (n *SyntaxNode) ChildNodes() []*SyntaxNode {
	n.ensureChildren()
	var out []*SyntaxNode
	for _, c := range n.children {
		if node, ok := c.(*SyntaxNode); ok {
			out = append(out, node)
		}
	}
	return out
}

// ChildTokens returns only the direct children that are tokens.
func (n *SyntaxNode) ChildTokens() []*SyntaxToken {
	n.ensureChildren()
	var out []*SyntaxToken
	for _, c := range n.children {
		if tok, ok := c.(*SyntaxToken); ok {
			out = append(out, tok)
		}
	}
	return out
}

// DescendantTokens returns every token in the subtree, in source order,
// walking lazily.
func (n *SyntaxNode) DescendantTokens() []*SyntaxToken {
	var out []*SyntaxToken
	for _, c := range n.Children() {
		switch v := c.(type) {
		case *SyntaxToken:
			out = append(out, v)
		case *SyntaxNode:
			out = append(out, v.DescendantTokens()...)
		}
	}
	return out
}

// FirstChildNode returns the first direct child node, or nil.
func (n *SyntaxNode) FirstChildNode() *SyntaxNode {
	nodes := n.ChildNodes()
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// NextSibling returns the node's next sibling node, or nil if it is the
// last child or the root.
func (n *SyntaxNode) NextSibling() *SyntaxNode {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.Children()
	for i := n.indexInParent + 1; i < len(siblings); i++ {
		if node, ok := siblings[i].(*SyntaxNode); ok {
			return node
		}
	}
	return nil
}

// PrevSibling returns the node's previous sibling node, or nil.
func (n *SyntaxNode) PrevSibling() *SyntaxNode {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.Children()
	for i := n.indexInParent - 1; i >= 0; i-- {
		if node, ok := siblings[i].(*SyntaxNode); ok {
			return node
		}
	}
	return nil
}

// Text returns the node's full source text, including trivia.
func (n *SyntaxNode) Text(sourceText string) string {
	return text.Slice(sourceText, n.Range())
}
