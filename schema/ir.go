// Package schema holds the normalized intermediate representation that the
// out-of-scope `.cwt` schema parser is assumed to deliver: field
// constraints, scope rules, subtype matchers, enum/type/value memberships,
// alias families, and link definitions. Nothing in this package parses
// `.cwt` text; every type here is a plain data carrier that the rule
// engine (package rules) consumes. Ported from
// original_source/jominipy/rules/ir.py and
// original_source/jominipy/rules/adapters/models.py.
package schema

import "github.com/jomini-tools/jominicore/text"

// RuleExpressionKind classifies the right-hand side of a RuleStatement.
// Ported from rules/ir.py's RuleExpressionKind.
type RuleExpressionKind string

const (
	RuleExpressionMissing      RuleExpressionKind = "missing"
	RuleExpressionScalar       RuleExpressionKind = "scalar"
	RuleExpressionBlock        RuleExpressionKind = "block"
	RuleExpressionTaggedBlock  RuleExpressionKind = "tagged_block"
	RuleExpressionError        RuleExpressionKind = "error"
)

// RuleStatementKind classifies one normalized rules-file statement. Ported
// from rules/ir.py's RuleStatementKind.
type RuleStatementKind string

const (
	RuleStatementKeyValue RuleStatementKind = "key_value"
	RuleStatementValue    RuleStatementKind = "value"
	RuleStatementError    RuleStatementKind = "error"
)

// RuleOption is a structured option parsed from a `##` comment (e.g.
// `## cardinality = 0..1`). Ported from rules/ir.py's RuleOption.
type RuleOption struct {
	Key   string
	Value string
	Raw   string
}

// RuleCardinality is the `## cardinality = min..max` option, normalized.
type RuleCardinality struct {
	Minimum          *int
	Maximum          *int
	MinimumUnbounded bool
	MaximumUnbounded bool
}

// RuleMetadata is documentation and options attached to one declaration.
// Ported from rules/ir.py's RuleMetadata, widened with the fields
// rules/adapters/common.py reads off `statement.metadata` (cardinality,
// comparison, error_if_only_match, push_scope, the two reference labels)
// since the distilled rules/ir.py kept only documentation/options.
type RuleMetadata struct {
	Documentation          []string
	Options                []RuleOption
	Cardinality            *RuleCardinality
	Comparison             string
	ErrorIfOnlyMatch        bool
	PushScope              []string
	OutgoingReferenceLabel string
	IncomingReferenceLabel string
}

// RuleExpression is the right-hand expression for a rules-file statement.
// Ported from rules/ir.py's RuleExpression.
type RuleExpression struct {
	Kind  RuleExpressionKind
	Text  string
	Block []RuleStatement
	Tag   string
}

// RuleStatement is one normalized statement from a rules file. Ported from
// rules/ir.py's RuleStatement.
type RuleStatement struct {
	SourcePath   string
	SourceRange  text.Range
	Kind         RuleStatementKind
	Key          string
	HasKey       bool
	Operator     string
	Value        RuleExpression
	Metadata     RuleMetadata
}

// RuleFileIR is the IR for one parsed rules file. Ported from
// rules/ir.py's RuleFileIR.
type RuleFileIR struct {
	Path       string
	Statements []RuleStatement
}

// IndexedRuleStatement is a category-indexed declaration reference (e.g.
// one `type[country]` or `enum[trait]` declaration). Ported from
// rules/ir.py's IndexedRuleStatement.
type IndexedRuleStatement struct {
	Category    string
	SourcePath  string
	SourceRange text.Range
	Key         string
	Family      string
	Argument    string
	Statement   RuleStatement
}

// RuleSetIR is the merged rules IR across multiple files, indexed by
// category. Ported from rules/ir.py's RuleSetIR.
type RuleSetIR struct {
	Files      []RuleFileIR
	Indexed    []IndexedRuleStatement
	ByCategory map[string][]IndexedRuleStatement
}
