package rules

import (
	"sort"

	"github.com/jomini-tools/jominicore/syntax"
)

// TypecheckFacts is derived from shared analysis facts once per run: the
// subset of type-check-specific conclusions lint rules are also allowed to
// consume (spec.md §4.10: "Style / semantic lints run after type-check and
// may consume TypecheckFacts.inconsistent_top_level_shapes"). Ported from
// original_source/jominipy/typecheck/rules.py's TypecheckFacts.
type TypecheckFacts struct {
	// InconsistentTopLevelShapes maps a top-level key to the sorted,
	// deduplicated set of shapes (as their string names) it takes across
	// its occurrences, only for keys with more than one distinct shape.
	InconsistentTopLevelShapes map[string][]string
}

// BuildTypecheckFacts computes TypecheckFacts from shared analysis facts.
// Ported from typecheck/rules.py's build_typecheck_facts.
func BuildTypecheckFacts(facts *syntax.Facts) *TypecheckFacts {
	inconsistent := make(map[string][]string)
	for key, values := range facts.TopLevelValues {
		shapes := distinctShapesForKey(values)
		if len(shapes) > 1 {
			sort.Strings(shapes)
			inconsistent[key] = shapes
		}
	}
	return &TypecheckFacts{InconsistentTopLevelShapes: inconsistent}
}

// distinctShapesForKey reclassifies every occurrence of a repeated
// top-level key (not just its last, the way Facts.TopLevelShapes does) so
// that inconsistent-shape detection sees every shape the key has taken,
// matching spec.md §8's S4 scenario (`value=1` then `value={ a=1 }`).
func distinctShapesForKey(values []syntax.Value) []string {
	seen := make(map[string]struct{})
	for _, v := range values {
		seen[shapeName(v)] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for shape := range seen {
		out = append(out, shape)
	}
	return out
}

func shapeName(v syntax.Value) string {
	switch v.(type) {
	case nil:
		return string(syntax.ShapeMissing)
	case *syntax.Scalar:
		return string(syntax.ShapeScalar)
	case *syntax.Block:
		return string(syntax.ShapeBlock)
	case *syntax.TaggedBlockValue:
		return string(syntax.ShapeTagged)
	case *syntax.AstError:
		return string(syntax.ShapeError)
	default:
		return string(syntax.ShapeError)
	}
}
