package syntax

// ValueShape classifies the shape of a top-level key's value for the
// analysis pass. Ported from original_source/jominipy/analysis/facts.py's
// ValueShape literal.
type ValueShape string

const (
	ShapeMissing ValueShape = "missing"
	ShapeScalar  ValueShape = "scalar"
	ShapeBlock   ValueShape = "block"
	ShapeTagged  ValueShape = "tagged"
	ShapeError   ValueShape = "error"
)

// FieldFact records one occurrence of a field inside some object,
// including its full ancestor path (object key, then each nested field key
// down to this one). Ported from analysis/facts.py's FieldFact.
type FieldFact struct {
	ObjectKey        string
	FieldKey         string
	Path             []string
	Value            Value
	ObjectOccurrence int
	FieldOccurrence  int
}

// Facts is the full set of analysis facts the rule engine consumes,
// computed once per parse in a single pass over the top-level statements.
// Ported from analysis/facts.py's AnalysisFacts.
type Facts struct {
	// TopLevelValues maps each top-level key to every value it was
	// assigned, in source order (a repeated top-level key keeps all its
	// occurrences, unlike the last-occurrence-wins AsObject view).
	TopLevelValues map[string][]Value
	// TopLevelShapes maps each top-level key to the shape of its last
	// occurrence.
	TopLevelShapes map[string]ValueShape
	// ObjectFields maps each top-level object-valued key to its immediate
	// (depth-1) field facts only.
	ObjectFields map[string][]FieldFact
	// ObjectFieldMap maps each top-level object-valued key to a
	// field-name -> last-occurrence-fact map, immediate fields only.
	ObjectFieldMap map[string]map[string]FieldFact
	// AllFieldFacts contains every field fact at every nesting depth
	// beneath every top-level object-valued key.
	AllFieldFacts []FieldFact
}

// shapeForValue classifies v's shape for the top-level shapes fact.
func shapeForValue(v Value) ValueShape {
	switch v.(type) {
	case nil:
		return ShapeMissing
	case *Scalar:
		return ShapeScalar
	case *Block:
		return ShapeBlock
	case *TaggedBlockValue:
		return ShapeTagged
	case *AstError:
		return ShapeError
	default:
		return ShapeError
	}
}

// BuildFacts computes Facts from a lowered SourceFile in a single pass.
// Only top-level KeyValue statements contribute; bare scalars/blocks at
// top level are silently skipped, matching the reference implementation's
// behavior (and spec.md's invariant of the same shape). Ported from
// analysis/facts.py's build_analysis_facts.
func BuildFacts(sf *SourceFile) *Facts {
	facts := &Facts{
		TopLevelValues: make(map[string][]Value),
		TopLevelShapes: make(map[string]ValueShape),
		ObjectFields:   make(map[string][]FieldFact),
		ObjectFieldMap: make(map[string]map[string]FieldFact),
	}
	objectOccurrences := make(map[string]int)

	for _, stmt := range sf.Statements {
		kv, ok := stmt.(*KeyValue)
		if !ok {
			continue
		}
		key := kv.Key.RawText
		facts.TopLevelValues[key] = append(facts.TopLevelValues[key], kv.Value)
		facts.TopLevelShapes[key] = shapeForValue(kv.Value)

		occurrence := objectOccurrences[key]
		objectOccurrences[key] = occurrence + 1

		block, ok := kv.Value.(*Block)
		if !ok || !block.IsObjectLike() {
			continue
		}

		all := collectFieldFactsRecursive(key, block, []string{key}, occurrence)
		facts.AllFieldFacts = append(facts.AllFieldFacts, all...)

		fieldMap := make(map[string]FieldFact)
		var immediate []FieldFact
		for _, f := range all {
			if len(f.Path) != 2 {
				continue
			}
			immediate = append(immediate, f)
			fieldMap[f.FieldKey] = f
		}
		facts.ObjectFields[key] = immediate
		facts.ObjectFieldMap[key] = fieldMap
	}

	return facts
}

// collectFieldFactsRecursive walks block's key-value statements, emitting a
// FieldFact for every one (at every nesting depth), recursing only into
// nested object-like Block values. fieldOccurrences is local to this call
// (one object's own repeated-field counting doesn't leak into a sibling or
// parent object's counts). Ported from analysis/facts.py's
// _collect_field_facts_recursive.
func collectFieldFactsRecursive(objectKey string, block *Block, path []string, objectOccurrence int) []FieldFact {
	var out []FieldFact
	fieldOccurrences := make(map[string]int)

	for _, stmt := range block.Statements {
		kv, ok := stmt.(*KeyValue)
		if !ok {
			continue
		}
		fieldKey := kv.Key.RawText
		fieldOccurrence := fieldOccurrences[fieldKey]
		fieldOccurrences[fieldKey] = fieldOccurrence + 1

		childPath := append(append([]string{}, path...), fieldKey)
		out = append(out, FieldFact{
			ObjectKey:        objectKey,
			FieldKey:         fieldKey,
			Path:             childPath,
			Value:            kv.Value,
			ObjectOccurrence: objectOccurrence,
			FieldOccurrence:  fieldOccurrence,
		})

		if nested, ok := kv.Value.(*Block); ok && nested.IsObjectLike() {
			out = append(out, collectFieldFactsRecursive(objectKey, nested, childPath, objectOccurrence)...)
		}
	}

	return out
}
