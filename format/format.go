// Package format is a thin formatting wrapper around a parse result.
// spec.md §1 keeps concrete formatting rules out of this module's scope
// ("the format runner is a thin wrapper around the parse result"); this
// package only wires the shared parse lifecycle and the CST-formatter
// policy knobs a concrete formatter would consult, exactly as far as
// original_source/jominipy/format/runner.py's own placeholder goes.
package format

import (
	"github.com/jomini-tools/jominicore/diagnostic"
	"github.com/jomini-tools/jominicore/syntax"
)

// Policy is the set of formatting knobs a concrete CST formatter (out of
// this module's scope) would consult. Ported verbatim (field names and
// defaults) from
// original_source/docs/clausewitz/format/policy.py's FormatPolicy.
type Policy struct {
	MaxWidth    int
	IndentWidth int

	// InlineListMaxItems and InlineBlockMaxEntries are the canonical
	// heuristics for when a short array-like or object-like block stays on
	// one line instead of breaking across multiple.
	InlineListMaxItems    int
	InlineBlockMaxEntries int

	// TrimFloatTrailingZero is a canonical output tweak: a float like
	// `1.0` renders as `1.0`, not `1.00`, wherever the formatter re-emits
	// a number it parsed itself.
	TrimFloatTrailingZero bool
}

// DefaultPolicy mirrors the reference dataclass's field defaults.
func DefaultPolicy() Policy {
	return Policy{
		MaxWidth:              100,
		IndentWidth:           4,
		InlineListMaxItems:    2,
		InlineBlockMaxEntries: 1,
		TrimFloatTrailingZero: true,
	}
}

// RunResult is the outcome of RunFormat. Ported from
// original_source/jominipy/pipeline/results.py's FormatRunResult.
type RunResult struct {
	Parse         *syntax.Result
	FormattedText string
	Diagnostics   []diagnostic.Diagnostic
	Changed       bool
}

// RunFormat runs formatting over one shared parse lifecycle. No concrete
// formatting rules live in this module (spec.md §1's explicit
// out-of-scope list); the formatted text is the parse's own source text,
// exactly mirroring
// original_source/jominipy/format/runner.py's run_format placeholder,
// which a concrete formatter built on top of this module's green/red CST
// would replace with an actual CST-to-text rendering pass driven by
// Policy.
func RunFormat(text string, input syntax.ParseInput) (*RunResult, error) {
	parse, err := syntax.ResolveParse(text, input)
	if err != nil {
		return nil, err
	}

	formatted := parse.SourceText
	return &RunResult{
		Parse:         parse,
		FormattedText: formatted,
		Diagnostics:   append([]diagnostic.Diagnostic(nil), parse.Diagnostics()...),
		Changed:       formatted != parse.SourceText,
	}, nil
}
