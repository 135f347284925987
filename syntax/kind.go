package syntax

// Kind is the unified syntax vocabulary: both lexical tokens and tree
// nodes share one enum, exactly as original_source/jominipy/syntax/kind.py's
// JominiSyntaxKind unifies jominipy.lexer.tokens.TokenKind with its own
// node kinds. The Python implementation keeps the two enums in separate
// modules (lexer.tokens.TokenKind, syntax.kind.JominiSyntaxKind) to avoid an
// import cycle between its lexer and syntax packages; since the lexer and
// the tree live in one Go package here, that split collapses into a single
// type with no loss of meaning (see DESIGN.md).
//
// This replaces the teacher's SyntaxKind (syntax/kind.go), which plays the
// same role for Typst's markup/math/code token-and-node vocabulary: a
// uint8-backed enum with IsGrouping/IsTerminator/IsTrivia/Name-style
// classification methods.
type Kind uint16

const (
	Tombstone Kind = iota
	EOF

	// Trivia tokens.
	Whitespace
	Newline
	Comment
	Skipped

	// Lexical tokens.
	Identifier
	String
	Int
	Float

	Equal
	EqualEqual
	NotEqual
	LessThanOrEqual
	GreaterThanOrEqual
	LessThan
	GreaterThan
	QuestionEqual

	Colon
	Semicolon
	Comma
	Dot
	Slash
	Backslash
	At

	Plus
	Minus
	Star
	Percent
	Caret
	Pipe
	Amp
	Question
	Bang

	LBrace
	RBrace
	LBracket
	RBracket
	LParen
	RParen

	// Node kinds.
	Root
	Error
	SourceFile
	StatementList
	KeyValue
	Block
	Scalar
	TaggedBlockValue
)

// AssignmentOperators is the set of token kinds that can appear as the
// operator in a key-value statement. Ported from
// original_source/jominipy/parser/grammar.py's ASSIGNMENT_OPERATORS (and
// jominipy/ast/lower.py's _ASSIGNMENT_OPERATORS, which lists the same eight
// kinds against the node-kind vocabulary instead of the token vocabulary).
var AssignmentOperators = NewSet(
	Equal, EqualEqual, NotEqual, LessThanOrEqual, GreaterThanOrEqual,
	LessThan, GreaterThan, QuestionEqual,
)

// IsTrivia reports whether k is automatically hidden from the parser by the
// token source (but still recorded and re-attached to the green tree).
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, Newline, Comment, Skipped:
		return true
	}
	return false
}

// IsToken reports whether k is a lexical token kind (as opposed to a tree
// node kind).
func (k Kind) IsToken() bool {
	return k != Tombstone && k < Root
}

// IsNode reports whether k is a tree node kind.
func (k Kind) IsNode() bool {
	return k >= Root
}

// Name returns a human-readable name for the kind, used in diagnostic
// messages (e.g. "Expected closing brace").
func (k Kind) Name() string {
	switch k {
	case Tombstone:
		return "tombstone"
	case EOF:
		return "end of input"
	case Whitespace:
		return "whitespace"
	case Newline:
		return "newline"
	case Comment:
		return "comment"
	case Skipped:
		return "skipped byte"
	case Identifier:
		return "identifier"
	case String:
		return "string"
	case Int:
		return "integer"
	case Float:
		return "float"
	case Equal:
		return "`=`"
	case EqualEqual:
		return "`==`"
	case NotEqual:
		return "`!=`"
	case LessThanOrEqual:
		return "`<=`"
	case GreaterThanOrEqual:
		return "`>=`"
	case LessThan:
		return "`<`"
	case GreaterThan:
		return "`>`"
	case QuestionEqual:
		return "`?=`"
	case Colon:
		return "`:`"
	case Semicolon:
		return "`;`"
	case Comma:
		return "`,`"
	case Dot:
		return "`.`"
	case Slash:
		return "`/`"
	case Backslash:
		return "`\\`"
	case At:
		return "`@`"
	case Plus:
		return "`+`"
	case Minus:
		return "`-`"
	case Star:
		return "`*`"
	case Percent:
		return "`%`"
	case Caret:
		return "`^`"
	case Pipe:
		return "`|`"
	case Amp:
		return "`&`"
	case Question:
		return "`?`"
	case Bang:
		return "`!`"
	case LBrace:
		return "opening brace"
	case RBrace:
		return "closing brace"
	case LBracket:
		return "opening bracket"
	case RBracket:
		return "closing bracket"
	case LParen:
		return "opening paren"
	case RParen:
		return "closing paren"
	case Root:
		return "root"
	case Error:
		return "error"
	case SourceFile:
		return "source file"
	case StatementList:
		return "statement list"
	case KeyValue:
		return "key-value statement"
	case Block:
		return "block"
	case Scalar:
		return "scalar"
	case TaggedBlockValue:
		return "tagged block value"
	default:
		return "unknown"
	}
}

func (k Kind) String() string {
	return k.Name()
}
