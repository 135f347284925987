package rules

import (
	"strings"

	"github.com/jomini-tools/jominicore/text"
)

// findKeyRange locates the first `key=`-shaped occurrence of key in text
// and returns the range of the key itself, or an empty range at offset 0
// if not found. Ported verbatim (including its "just find `key=`" crudeness,
// which is good enough for pointing a diagnostic at a plausible location
// without threading concrete-syntax ranges through every AST value) from
// original_source/jominipy/typecheck/rules.py's `_find_key_range`.
func findKeyRange(sourceText, key string) text.Range {
	needle := key + "="
	index := strings.Index(sourceText, needle)
	if index < 0 {
		return text.EmptyRange(text.Zero)
	}
	return text.RangeAt(text.FromInt(index), text.Of(key))
}

// findKeyOccurrenceRange locates the (occurrence+1)-th `key=`-shaped match
// of key in text, falling back to the first occurrence if there are fewer
// than occurrence+1 matches. Ported from
// original_source/jominipy/typecheck/rules.py's
// `_find_key_occurrence_range`.
func findKeyOccurrenceRange(sourceText, key string, occurrence int) text.Range {
	needle := key + "="
	start := 0
	index := -1
	for i := 0; i <= occurrence; i++ {
		next := strings.Index(sourceText[start:], needle)
		if next < 0 {
			return findKeyRange(sourceText, key)
		}
		index = start + next
		start = index + len(needle)
	}
	return text.RangeAt(text.FromInt(index), text.Of(key))
}
