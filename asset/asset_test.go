package asset

import "testing"

func TestNullRegistryAlwaysUnknown(t *testing.T) {
	lookup := NullRegistry{}.Lookup(`gfx\icons\foo.dds`)
	if lookup.Status != Unknown {
		t.Fatalf("expected Unknown, got %v", lookup.Status)
	}
	if lookup.NormalizedPath != "gfx/icons/foo.dds" {
		t.Fatalf("expected normalized path with forward slashes, got %q", lookup.NormalizedPath)
	}
}

func TestSetRegistryFoundAndMissing(t *testing.T) {
	registry := NewSetRegistry([]string{`gfx/icons/foo.dds`})

	if status := registry.Lookup(`gfx\icons\foo.dds`).Status; status != Found {
		t.Fatalf("expected Found for a known path regardless of slash style, got %v", status)
	}
	if status := registry.Lookup("gfx/icons/missing.dds").Status; status != Missing {
		t.Fatalf("expected Missing for an unknown path, got %v", status)
	}
}

func TestNormalizeEmptyPath(t *testing.T) {
	if got := (NullRegistry{}).Lookup("   ").NormalizedPath; got != "" {
		t.Fatalf("expected empty normalized path for blank input, got %q", got)
	}
}
