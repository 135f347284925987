// Package diagnostic holds the single structured-error channel used by the
// lexer, parser, and rule engine. Every failure in this module surfaces as a
// Diagnostic; nothing logs. This follows the teacher's (boergens-gotypst)
// discipline in its syntax package, where every failure becomes a
// *SyntaxError folded into the tree rather than a log line.
package diagnostic

import "github.com/jomini-tools/jominicore/text"

// Severity classifies how serious a Diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is the structured failure emitted by lexers, parsers, linters,
// and the formatter.
type Diagnostic struct {
	Code     string
	Message  string
	Range    text.Range
	Severity Severity
	Hint     string
	Category string
}

// Spec is a named, reusable diagnostic template: a code, default message,
// hint, severity, and category. Call Build to stamp one out at a concrete
// range, optionally overriding the message.
type Spec struct {
	Code     string
	Message  string
	Hint     string
	Severity Severity
	Category string
}

// Build returns a Diagnostic from the spec at the given range. An empty
// message keeps the spec's default message.
func (s Spec) Build(r text.Range, message string) Diagnostic {
	if message == "" {
		message = s.Message
	}
	return Diagnostic{
		Code:     s.Code,
		Message:  message,
		Range:    r,
		Severity: s.Severity,
		Hint:     s.Hint,
		Category: s.Category,
	}
}

// The diagnostic vocabulary, ported verbatim (code, message, hint, severity,
// category) from original_source/jominipy/diagnostics/codes.py, plus
// LexerUnrecognizedByte, which this module adds.
var (
	LexerUnterminatedString = Spec{
		Code:     "LEXER_UNTERMINATED_STRING",
		Message:  "Unterminated string literal.",
		Hint:     "Close the string with a double quote or enable multiline strings.",
		Severity: SeverityError,
		Category: "lexer",
	}

	LexerUnrecognizedByte = Spec{
		Code:     "LEXER_UNRECOGNIZED_BYTE",
		Message:  "Unrecognized character; skipped as trivia.",
		Severity: SeverityWarning,
		Category: "lexer",
	}

	ParserExpectedValue = Spec{
		Code:     "PARSER_EXPECTED_VALUE",
		Message:  "Expected a value",
		Severity: SeverityError,
		Category: "parser",
	}

	ParserExpectedToken = Spec{
		Code:     "PARSER_EXPECTED_TOKEN",
		Message:  "Expected token",
		Severity: SeverityError,
		Category: "parser",
	}

	ParserUnexpectedToken = Spec{
		Code:     "PARSER_UNEXPECTED_TOKEN",
		Message:  "Unexpected token",
		Severity: SeverityError,
		Category: "parser",
	}

	ParserLegacyExtraRBrace = Spec{
		Code:     "PARSER_LEGACY_EXTRA_RBRACE",
		Message:  "Ignoring extra closing brace in permissive mode",
		Severity: SeverityWarning,
		Category: "parser",
	}

	ParserLegacyMissingRBrace = Spec{
		Code:     "PARSER_LEGACY_MISSING_RBRACE",
		Message:  "Missing closing brace tolerated in permissive mode",
		Severity: SeverityWarning,
		Category: "parser",
	}

	ParserUnsupportedUnmarkedList = Spec{
		Code:     "PARSER_UNSUPPORTED_UNMARKED_LIST",
		Message:  "Unsupported unmarked list form: expected tagged list block, got `list \"...\"`",
		Severity: SeverityError,
		Category: "parser",
	}

	ParserUnsupportedParameterSyntax = Spec{
		Code:     "PARSER_UNSUPPORTED_PARAMETER_SYNTAX",
		Message:  "Unsupported parameter syntax scalar (`[[...]]` or `$...$`)",
		Severity: SeverityError,
		Category: "parser",
	}

	TypecheckInconsistentValueShape = Spec{
		Code:     "TYPECHECK_INCONSISTENT_VALUE_SHAPE",
		Message:  "Top-level key mixes incompatible value shapes.",
		Severity: SeverityWarning,
		Category: "typecheck",
	}

	TypecheckInvalidFieldType = Spec{
		Code:     "TYPECHECK_INVALID_FIELD_TYPE",
		Message:  "Field value does not match CWTools type constraints.",
		Severity: SeverityWarning,
		Category: "typecheck",
	}

	TypecheckInvalidFieldReference = Spec{
		Code:     "TYPECHECK_INVALID_FIELD_REFERENCE",
		Message:  "Field value does not match CWTools reference constraints.",
		Severity: SeverityWarning,
		Category: "typecheck",
	}

	TypecheckInvalidScopeContext = Spec{
		Code:     "TYPECHECK_INVALID_SCOPE_CONTEXT",
		Message:  "Field is used outside allowed CWTools scope context.",
		Severity: SeverityWarning,
		Category: "typecheck",
	}

	TypecheckAmbiguousScopeContext = Spec{
		Code:     "TYPECHECK_AMBIGUOUS_SCOPE_CONTEXT",
		Message:  "Scope context is ambiguous due to conflicting scope alias replacements.",
		Severity: SeverityWarning,
		Category: "typecheck",
	}

	TypecheckRuleCustomError = Spec{
		Code:     "TYPECHECK_RULE_CUSTOM_ERROR",
		Message:  "Field matched a CWTools custom error rule.",
		Severity: SeverityWarning,
		Category: "typecheck",
	}

	LintSemanticInconsistentShape = Spec{
		Code:     "LINT_SEMANTIC_INCONSISTENT_SHAPE",
		Message:  "Semantic rule: mixed value shapes should be normalized.",
		Severity: SeverityWarning,
		Category: "lint/semantic",
	}

	LintSemanticMissingRequiredField = Spec{
		Code:     "LINT_SEMANTIC_MISSING_REQUIRED_FIELD",
		Message:  "Semantic rule: required field missing according to CWTools schema.",
		Severity: SeverityWarning,
		Category: "lint/semantic",
	}

	LintSemanticInvalidFieldType = Spec{
		Code:     "LINT_SEMANTIC_INVALID_FIELD_TYPE",
		Message:  "Semantic rule: field value does not match CWTools type constraints.",
		Severity: SeverityWarning,
		Category: "lint/semantic",
	}

	LintStyleSingleLineBlock = Spec{
		Code:     "LINT_STYLE_SINGLE_LINE_BLOCK",
		Message:  "Style rule: multi-value blocks should be split across lines.",
		Severity: SeverityWarning,
		Category: "lint/style",
	}
)
