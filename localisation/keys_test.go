package localisation

import "testing"

func TestMapKeyProviderHasKeyAndLocales(t *testing.T) {
	provider := NewMapKeyProvider(map[string][]string{
		"EVENT_TITLE": {"en", "en-US"},
	})

	if !provider.HasKey("EVENT_TITLE") {
		t.Fatalf("expected EVENT_TITLE to be present")
	}
	if provider.HasKey("OTHER_KEY") {
		t.Fatalf("expected OTHER_KEY to be absent")
	}

	locales := provider.LocalesForKey("EVENT_TITLE")
	if len(locales) != 2 {
		t.Fatalf("expected 2 locales, got %v", locales)
	}
}

func TestMapKeyProviderCanonicalizesLocaleTags(t *testing.T) {
	provider := NewMapKeyProvider(map[string][]string{
		"EVENT_TITLE": {"en_US"},
	})

	missing := provider.MissingLocalesForKey("EVENT_TITLE", []string{"en-US"})
	if len(missing) != 0 {
		t.Fatalf("expected en_US and en-US to canonicalize to the same locale, missing: %v", missing)
	}
}

func TestCoveredAnyVsAll(t *testing.T) {
	provider := NewMapKeyProvider(map[string][]string{
		"EVENT_TITLE": {"en"},
	})
	required := []string{"en", "fr"}

	if Covered(provider, "EVENT_TITLE", required, CoverageAll) {
		t.Fatalf("expected CoverageAll to fail when fr is missing")
	}
	if !Covered(provider, "EVENT_TITLE", required, CoverageAny) {
		t.Fatalf("expected CoverageAny to succeed when en is present")
	}
}

func TestCoveredMissingKey(t *testing.T) {
	provider := NewMapKeyProvider(map[string][]string{})
	if Covered(provider, "UNKNOWN_KEY", []string{"en"}, CoverageAll) {
		t.Fatalf("expected coverage to fail for a key with no translations at all")
	}
}
