package syntax

// Value is the sum type of everything an AST statement's value side can
// be: *Scalar, *Block, *TaggedBlockValue, or *AstError. Consumers type-switch
// on it. Ported from original_source/jominipy/ast/model.py's AstValue
// alias.
type Value interface{ isValue() }

// Statement is the sum type of everything a statement list can contain:
// *KeyValue, *Scalar, *Block, or *AstError. Ported from ast/model.py's
// AstStatement alias.
type Statement interface{ isStatement() }

// Scalar is a lowered scalar: its raw source text (the text of all glued
// tokens, quotes included), the token kinds that
// were glued together to produce it, and whether it was a single quoted
// STRING token. Ported from ast/model.py's AstScalar.
type Scalar struct {
	RawText    string
	TokenKinds []Kind
	WasQuoted  bool
}

func (*Scalar) isValue()     {}
func (*Scalar) isStatement() {}

// TaggedBlockValue is a scalar immediately followed by a block, the `tag {
// ... }` value shape. Ported from ast/model.py's AstTaggedBlockValue.
type TaggedBlockValue struct {
	Tag   *Scalar
	Block *Block
}

func (*TaggedBlockValue) isValue() {}

// KeyValue is a `key OP value` statement; Operator is empty and Value is
// the *Block for the implicit-block `key { ... }` shape lowered with no
// explicit operator token. Ported from ast/model.py's AstKeyValue.
type KeyValue struct {
	Key      *Scalar
	Operator string
	Value    Value
}

func (*KeyValue) isStatement() {}

// AstError is a statement or value that failed to parse into anything more
// specific, carrying its raw source text for diagnostics/formatting.
// Ported from ast/model.py's AstError.
type AstError struct {
	RawText string
}

func (*AstError) isValue()     {}
func (*AstError) isStatement() {}

// Block is an ordered list of statements, lowered from a Block node's
// StatementList child. Ported from ast/model.py's AstBlock.
type Block struct {
	Statements []Statement
}

func (*Block) isValue()     {}
func (*Block) isStatement() {}

// IsEmptyAmbiguous reports whether b has no statements, and so could be
// read as either an empty object or an empty array.
func (b *Block) IsEmptyAmbiguous() bool {
	return len(b.Statements) == 0
}

// IsObjectLike reports whether every statement in b is a KeyValue (or b is
// empty).
func (b *Block) IsObjectLike() bool {
	for _, s := range b.Statements {
		if _, ok := s.(*KeyValue); !ok {
			return false
		}
	}
	return true
}

// IsArrayLike reports whether no statement in b is a KeyValue (or b is
// empty).
func (b *Block) IsArrayLike() bool {
	for _, s := range b.Statements {
		if _, ok := s.(*KeyValue); ok {
			return false
		}
	}
	return true
}

// IsMixed reports whether b contains both KeyValue and non-KeyValue
// statements.
func (b *Block) IsMixed() bool {
	return !b.IsEmptyAmbiguous() && !b.IsObjectLike() && !b.IsArrayLike()
}

// ToObject converts b's KeyValue statements into a key->value map. When
// multimap is false, a repeated key's last occurrence wins; when true,
// every occurrence is preserved as a slice under its key. Non-KeyValue
// statements are ignored. Ported from ast/model.py's AstBlock.to_object.
func (b *Block) ToObject(multimap bool) map[string]any {
	if multimap {
		out := make(map[string]any)
		for _, s := range b.Statements {
			kv, ok := s.(*KeyValue)
			if !ok {
				continue
			}
			key := kv.Key.RawText
			list, _ := out[key].([]Value)
			out[key] = append(list, kv.Value)
		}
		return out
	}
	out := make(map[string]any)
	for _, s := range b.Statements {
		kv, ok := s.(*KeyValue)
		if !ok {
			continue
		}
		out[kv.Key.RawText] = kv.Value
	}
	return out
}

// ToArray returns every non-KeyValue statement's value, in order. Ported
// from ast/model.py's AstBlock.to_array.
func (b *Block) ToArray() []Value {
	var out []Value
	for _, s := range b.Statements {
		switch v := s.(type) {
		case *KeyValue:
			continue
		case Value:
			out = append(out, v)
		}
	}
	return out
}

// SourceFile is the lowered root: the statement list of an entire parsed
// source file. Ported from ast/model.py's AstSourceFile.
type SourceFile struct {
	Statements []Statement
}

// assignmentOperatorText maps an assignment-operator Kind to its source
// spelling, used by the key-value lowering pass to populate
// KeyValue.Operator.
var assignmentOperatorText = map[Kind]string{
	Equal:              "=",
	EqualEqual:         "==",
	NotEqual:           "!=",
	LessThanOrEqual:    "<=",
	GreaterThanOrEqual: ">=",
	LessThan:           "<",
	GreaterThan:        ">",
	QuestionEqual:      "?=",
}

// LowerSyntaxTree lowers a parsed red tree into a typed SourceFile AST.
// Descends SourceFile -> StatementList; returns an empty SourceFile if
// either is missing (a malformed or empty parse). Ported from
// original_source/jominipy/ast/lower.py's lower_syntax_tree/lower_tree.
func LowerSyntaxTree(root *SyntaxNode, sourceText string) *SourceFile {
	sourceFileNode := findChildNodeOfKind(root, SourceFile)
	if sourceFileNode == nil {
		return &SourceFile{}
	}
	listNode := findChildNodeOfKind(sourceFileNode, StatementList)
	if listNode == nil {
		return &SourceFile{}
	}
	return &SourceFile{Statements: lowerStatementList(listNode, sourceText)}
}

func findChildNodeOfKind(n *SyntaxNode, kind Kind) *SyntaxNode {
	if n == nil {
		return nil
	}
	if n.Kind() == kind {
		return n
	}
	for _, c := range n.ChildNodes() {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

func lowerStatementList(listNode *SyntaxNode, sourceText string) []Statement {
	var out []Statement
	for _, child := range listNode.ChildNodes() {
		switch child.Kind() {
		case KeyValue:
			out = append(out, lowerKeyValue(child, sourceText))
		case Scalar:
			out = append(out, lowerScalar(child, sourceText))
		case Block:
			out = append(out, lowerBlock(child, sourceText))
		case Error:
			out = append(out, &AstError{RawText: collectNodeText(child, sourceText)})
		}
	}
	return out
}

// lowerKeyValue scans a KeyValue node's children in source order: the
// first Scalar child becomes the key, the first assignment-operator token
// after it supplies the operator text, and the first node kind-matching
// {Scalar, Block, TaggedBlockValue} after the key becomes the value.
// Ported from ast/lower.py's _lower_key_value.
func lowerKeyValue(n *SyntaxNode, sourceText string) *KeyValue {
	children := n.Children()
	keyIndex := -1
	var key *Scalar
	var operator string
	var value Value

	for i, c := range children {
		node, ok := c.(*SyntaxNode)
		if !ok || node.Kind() != Scalar {
			continue
		}
		key = lowerScalar(node, sourceText)
		keyIndex = i
		break
	}
	if key == nil {
		return &KeyValue{Value: &AstError{RawText: collectNodeText(n, sourceText)}}
	}

	for i := keyIndex + 1; i < len(children); i++ {
		if tok, ok := children[i].(*SyntaxToken); ok {
			if op, isAssign := assignmentOperatorText[tok.Kind()]; isAssign {
				operator = op
				break
			}
		}
	}

	for i := keyIndex + 1; i < len(children); i++ {
		node, ok := children[i].(*SyntaxNode)
		if !ok {
			continue
		}
		switch node.Kind() {
		case Scalar:
			value = lowerScalar(node, sourceText)
		case Block:
			value = lowerBlock(node, sourceText)
		case TaggedBlockValue:
			value = lowerTaggedBlockValue(node, sourceText)
		default:
			continue
		}
		break
	}

	return &KeyValue{Key: key, Operator: operator, Value: value}
}

// lowerTaggedBlockValue scans for the first Scalar child (the tag) and the
// first Block child (the body), independent of order between them beyond
// "both present". Ported from ast/lower.py's _lower_tagged_block_value.
func lowerTaggedBlockValue(n *SyntaxNode, sourceText string) *TaggedBlockValue {
	var tag *Scalar
	var block *Block
	for _, c := range n.ChildNodes() {
		switch c.Kind() {
		case Scalar:
			if tag == nil {
				tag = lowerScalar(c, sourceText)
			}
		case Block:
			if block == nil {
				block = lowerBlock(c, sourceText)
			}
		}
	}
	return &TaggedBlockValue{Tag: tag, Block: block}
}

func lowerBlock(n *SyntaxNode, sourceText string) *Block {
	listNode := findChildNodeOfKind(n, StatementList)
	if listNode == nil {
		return &Block{}
	}
	return &Block{Statements: lowerStatementList(listNode, sourceText)}
}

// lowerScalar concatenates every child token's text (the gluing the parser
// performed at the token level) and records whether the scalar is exactly
// one quoted STRING token. Ported from ast/lower.py's _lower_scalar.
func lowerScalar(n *SyntaxNode, sourceText string) *Scalar {
	tokens := n.ChildTokens()
	raw := ""
	kinds := make([]Kind, 0, len(tokens))
	for _, t := range tokens {
		raw += t.TextTrimmed()
		kinds = append(kinds, t.Kind())
	}
	wasQuoted := len(kinds) == 1 && kinds[0] == String
	return &Scalar{RawText: raw, TokenKinds: kinds, WasQuoted: wasQuoted}
}

// collectNodeText reconstructs an Error node's raw text by concatenating
// every descendant token's trimmed text, used since an error node has no
// other structure to render from. Ported from ast/lower.py's
// _collect_node_text.
func collectNodeText(n *SyntaxNode, sourceText string) string {
	raw := ""
	for _, t := range n.DescendantTokens() {
		raw += t.TextTrimmed()
	}
	return raw
}
