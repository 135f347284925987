package syntax

import "strings"

// BlockView wraps a Block with convenience accessors for reading it as an
// object, multimap, or array, and for reading a single field's scalar
// value. Ported from original_source/jominipy/ast/views.py's AstBlockView.
type BlockView struct {
	Block *Block
}

// NewBlockView wraps b.
func NewBlockView(b *Block) *BlockView {
	return &BlockView{Block: b}
}

// AsObject returns b as a last-occurrence-wins key->value map, or nil if b
// is mixed or array-like (empty-ambiguous blocks pass through as an empty
// object).
func (v *BlockView) AsObject() map[string]Value {
	if v.Block.IsMixed() || (!v.Block.IsObjectLike() && !v.Block.IsEmptyAmbiguous()) {
		return nil
	}
	out := make(map[string]Value)
	for _, s := range v.Block.Statements {
		if kv, ok := s.(*KeyValue); ok {
			out[kv.Key.RawText] = kv.Value
		}
	}
	return out
}

// AsMultimap returns b as a key->values map preserving every occurrence, or
// nil if b is mixed or array-like.
func (v *BlockView) AsMultimap() map[string][]Value {
	if v.Block.IsMixed() || (!v.Block.IsObjectLike() && !v.Block.IsEmptyAmbiguous()) {
		return nil
	}
	out := make(map[string][]Value)
	for _, s := range v.Block.Statements {
		if kv, ok := s.(*KeyValue); ok {
			out[kv.Key.RawText] = append(out[kv.Key.RawText], kv.Value)
		}
	}
	return out
}

// AsArray returns b's non-key-value values in order, or nil if b is mixed
// or object-like.
func (v *BlockView) AsArray() []Value {
	if v.Block.IsMixed() || (!v.Block.IsArrayLike() && !v.Block.IsEmptyAmbiguous()) {
		return nil
	}
	return v.Block.ToArray()
}

// GetScalar returns the scalar value of the last occurrence of key, and its
// Interpretation, or (nil, Interpretation{}, false) if key is absent or its
// value isn't a scalar. Ported from ast/views.py's get_scalar.
func (v *BlockView) GetScalar(key string, allowQuoted bool) (*Scalar, Interpretation, bool) {
	all := v.GetScalarAll(key, allowQuoted)
	if len(all) == 0 {
		return nil, Interpretation{}, false
	}
	last := all[len(all)-1]
	return last.scalar, last.interp, true
}

type scalarOccurrence struct {
	scalar *Scalar
	interp Interpretation
}

// GetScalarAll returns every occurrence of key whose value is a scalar, in
// order. Ported from ast/views.py's get_scalar_all.
func (v *BlockView) GetScalarAll(key string, allowQuoted bool) []scalarOccurrence {
	var out []scalarOccurrence
	for _, s := range v.Block.Statements {
		kv, ok := s.(*KeyValue)
		if !ok || kv.Key.RawText != key {
			continue
		}
		scalar, ok := kv.Value.(*Scalar)
		if !ok {
			continue
		}
		raw := stripMatchingQuotes(scalar.RawText, scalar.WasQuoted)
		out = append(out, scalarOccurrence{
			scalar: scalar,
			interp: InterpretScalar(raw, scalar.WasQuoted, allowQuoted),
		})
	}
	return out
}

// stripMatchingQuotes removes one pair of surrounding double quotes from
// raw if wasQuoted is true and they're present. Ported from ast/views.py's
// _strip_matching_quotes.
func stripMatchingQuotes(raw string, wasQuoted bool) string {
	if !wasQuoted {
		return raw
	}
	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		return raw[1 : len(raw)-1]
	}
	return raw
}
