package syntax

import "errors"

// ErrAmbiguousParseInput is returned when a caller supplies both an
// existing Result and parse configuration (Options/Mode) to ResolveParse.
// Ported from original_source/jominipy/pipeline/entrypoints.py's
// `_resolve_parse` "Pass either parse or options/mode, not both" guard,
// which the reference raises as a ValueError; this module's equivalent
// programmer error (see spec.md §7 item 5) is an error return rather than
// a panic, since callers choose which of Options/Mode/Parse to supply at
// every call site and the mistake is easy to recover from.
var ErrAmbiguousParseInput = errors.New("syntax: pass either an existing Parse result or Options/Mode, not both")

// ParseInput selects how a pipeline entrypoint obtains its Result: either
// by parsing SourceText fresh under Options or Mode (at most one of
// these), or by reusing an already-built Result so that lint, type-check,
// and format share one parse lifecycle (spec.md §4.8).
type ParseInput struct {
	Options *Options
	Mode    *ParseMode
	Parse   *Result
}

// ResolveParse returns input.Parse if set, otherwise parses text fresh
// under input.Options (if set), input.Mode (if set), or DefaultOptions.
// Ported from pipeline/entrypoints.py's `_resolve_parse`.
func ResolveParse(text string, input ParseInput) (*Result, error) {
	if input.Parse != nil {
		if input.Options != nil || input.Mode != nil {
			return nil, ErrAmbiguousParseInput
		}
		return input.Parse, nil
	}

	opts := DefaultOptions()
	switch {
	case input.Options != nil:
		opts = *input.Options
	case input.Mode != nil:
		opts = ForMode(*input.Mode)
	}
	return NewResult(text, Parse(text, opts)), nil
}
