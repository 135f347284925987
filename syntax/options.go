package syntax

// ParseMode selects a built-in options preset, mirroring
// original_source/jominipy/parser/options.py's ParserOptions.for_mode.
type ParseMode uint8

const (
	// ModeStrict rejects every legacy/ambiguous construct: no stray extra
	// closing brace, no tolerated missing closing brace, no unmarked list
	// form, no parameter syntax, no semicolon statement terminators.
	ModeStrict ParseMode = iota
	// ModePermissive tolerates the legacy constructs real-world Clausewitz
	// script files are full of.
	ModePermissive
)

// Options configures the grammar's tolerance for legacy and ambiguous
// constructs. The first four fields are a direct port of
// original_source/jominipy/parser/options.py's ParserOptions; the remaining
// four (AllowAlternatingValueKeyValue, AllowParameterSyntax,
// AllowUnmarkedListForm, AllowBareScalarAfterKeyValue) are referenced by
// original_source/jominipy/parser/grammar.py but live on a richer options
// shape that this module's own specification is authoritative for.
type Options struct {
	Mode ParseMode

	// AllowLegacyExtraRBrace tolerates a stray `}` with no matching `{` by
	// emitting a warning diagnostic and skipping it, instead of treating it
	// as a hard parse error.
	AllowLegacyExtraRBrace bool
	// AllowLegacyMissingRBrace tolerates a block left unclosed at EOF by
	// emitting a warning diagnostic instead of a hard parse error.
	AllowLegacyMissingRBrace bool
	// AllowSemicolonTerminator permits (and silently consumes) a trailing
	// `;` after a statement, as some Clausewitz files use.
	AllowSemicolonTerminator bool

	// AllowAlternatingValueKeyValue permits a block's statement list to
	// contain bare scalar statements after a key-value statement; the
	// top-level list follows AllowBareScalarAfterKeyValue instead.
	AllowAlternatingValueKeyValue bool
	// AllowParameterSyntax permits `[[...]]`/`$...$` parameter-substitution
	// scalars to parse as ordinary scalars with no diagnostic, instead of
	// reporting ParserUnsupportedParameterSyntax.
	AllowParameterSyntax bool
	// AllowUnmarkedListForm turns off the ParserUnsupportedUnmarkedList
	// error for the legacy unmarked list value (`key = list "a b c"`):
	// `list` then parses as an ordinary scalar value and the string after
	// it as the next statement, with no diagnostic.
	AllowUnmarkedListForm bool
	// AllowBareScalarAfterKeyValue permits the top-level statement list to
	// contain bare scalar statements after a key-value statement; blocks
	// follow AllowAlternatingValueKeyValue instead.
	AllowBareScalarAfterKeyValue bool
}

// ForMode returns the canonical Options preset for mode.
func ForMode(mode ParseMode) Options {
	switch mode {
	case ModePermissive:
		return Options{
			Mode:                          ModePermissive,
			AllowLegacyExtraRBrace:        true,
			AllowLegacyMissingRBrace:      true,
			AllowSemicolonTerminator:      true,
			AllowAlternatingValueKeyValue: true,
			AllowParameterSyntax:          false,
			AllowUnmarkedListForm:         false,
			AllowBareScalarAfterKeyValue:  true,
		}
	default:
		return Options{Mode: ModeStrict}
	}
}

// DefaultOptions is ForMode(ModeStrict).
func DefaultOptions() Options {
	return ForMode(ModeStrict)
}
