// Package asset provides the asset-lookup contract that typecheck rules
// consult for `filepath`/`icon` field specs. Ported from
// original_source/jominipy/typecheck/assets.py.
package asset

import "strings"

// LookupStatus is the result of resolving one logical asset path against a
// project's asset registry.
type LookupStatus string

const (
	// Found means the registry positively located the asset.
	Found LookupStatus = "found"
	// Missing means the registry positively determined the asset does not
	// exist.
	Missing LookupStatus = "missing"
	// Unknown means the registry has no opinion (e.g. no project registry
	// was configured). The type-check rules accept a `filepath`/`icon`
	// value whose lookup is Unknown; rules.Policy.UnresolvedAsset is not
	// consulted for this case.
	Unknown LookupStatus = "unknown"
)

// Lookup is the result of one registry lookup for a normalized asset path.
type Lookup struct {
	Status         LookupStatus
	NormalizedPath string
}

// Registry resolves a logical asset path (as referenced in script, e.g. a
// `filepath`/`icon` field's value) to a Lookup result.
type Registry interface {
	Lookup(path string) Lookup
}

// NullRegistry is the default registry: it reports every lookup Unknown,
// used when no project asset registry has been configured. Ported from
// typecheck/assets.py's NullAssetRegistry.
type NullRegistry struct{}

// Lookup implements Registry.
func (NullRegistry) Lookup(path string) Lookup {
	return Lookup{Status: Unknown, NormalizedPath: normalize(path)}
}

// SetRegistry is a simple in-memory registry backed by a set of known
// paths, suitable for tests and small local wiring. Ported from
// typecheck/assets.py's SetAssetRegistry.
type SetRegistry struct {
	KnownPaths map[string]struct{}
}

// NewSetRegistry builds a SetRegistry from a slice of known paths,
// normalizing each one the same way Lookup normalizes its argument.
func NewSetRegistry(knownPaths []string) *SetRegistry {
	set := make(map[string]struct{}, len(knownPaths))
	for _, p := range knownPaths {
		set[normalize(p)] = struct{}{}
	}
	return &SetRegistry{KnownPaths: set}
}

// Lookup implements Registry.
func (r *SetRegistry) Lookup(path string) Lookup {
	normalized := normalize(path)
	if _, ok := r.KnownPaths[normalized]; ok {
		return Lookup{Status: Found, NormalizedPath: normalized}
	}
	return Lookup{Status: Missing, NormalizedPath: normalized}
}

func normalize(path string) string {
	stripped := strings.TrimSpace(path)
	if stripped == "" {
		return ""
	}
	return strings.ReplaceAll(stripped, "\\", "/")
}
