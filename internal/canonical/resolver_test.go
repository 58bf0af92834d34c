package canonical

import (
	"testing"

	"PriceSentinel/internal/model"
)

func newTestResolver() *Resolver {
	r := NewResolver()
	r.SetAliases([]model.ItemAlias{
		{Alias: "나겔반지", CanonicalName: "나겔링반지"},
		{Alias: "주작", CanonicalName: "주작반지"},
		{Alias: "에테", CanonicalName: "에테르"},
	})
	r.SetCatalog([]model.KnownItem{
		{Name: "나겔링반지"},
		{Name: "주작반지"},
		{Name: "에테르", Type: "재료", Bundle: true},
		{Name: "둠의룬안대(3)"},
	})
	return r
}

func TestCanonicalize_AliasExact(t *testing.T) {
	r := newTestResolver()
	if got := r.Canonicalize("나겔반지"); got != "나겔링반지" {
		t.Errorf("got %q, want 나겔링반지", got)
	}
}

func TestCanonicalize_AliasSubstring(t *testing.T) {
	r := newTestResolver()
	// The alias is contained in the phrase.
	if got := r.Canonicalize("나겔반지 상태굿"); got != "나겔링반지" {
		t.Errorf("got %q, want 나겔링반지", got)
	}
}

func TestCanonicalize_CatalogExact(t *testing.T) {
	r := newTestResolver()
	if got := r.Canonicalize("주작반지"); got != "주작반지" {
		t.Errorf("got %q, want 주작반지", got)
	}
}

func TestCanonicalize_CatalogLevelSuffix(t *testing.T) {
	r := newTestResolver()
	if got := r.Canonicalize("둠의룬안대"); got != "둠의룬안대" {
		t.Errorf("got %q, want 둠의룬안대", got)
	}
}

func TestCanonicalize_UnknownKept(t *testing.T) {
	r := newTestResolver()
	if got := r.Canonicalize("정체불명템"); got != "정체불명템" {
		t.Errorf("unknown phrase must pass through, got %q", got)
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	r := newTestResolver()
	for _, phrase := range []string{"나겔반지", "주작", "정체불명템", "에테"} {
		first := r.Canonicalize(phrase)
		second := r.Canonicalize(first)
		if first != second {
			t.Errorf("%q: %q != %q, canonicalization must be idempotent", phrase, first, second)
		}
	}
}

func TestResolveReportsMatch(t *testing.T) {
	r := newTestResolver()
	tests := []struct {
		phrase   string
		want     string
		resolved bool
	}{
		{"나겔반지", "나겔링반지", true}, // alias
		{"주작반지", "주작반지", true},   // catalog exact
		{"둠의룬안대", "둠의룬안대", true}, // level-suffix-stripped catalog
		{"정체불명템", "정체불명템", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, resolved := r.Resolve(tt.phrase)
		if got != tt.want || resolved != tt.resolved {
			t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)",
				tt.phrase, got, resolved, tt.want, tt.resolved)
		}
	}
}

func TestRejected(t *testing.T) {
	r := newTestResolver()
	r.SetRejected([]string{"쓰레기값"})
	if !r.Rejected("쓰레기값", "whatever") {
		t.Error("expected canonical hit")
	}
	if !r.Rejected("whatever", "쓰레기값") {
		t.Error("expected raw-phrase hit")
	}
	if r.Rejected("나겔링반지", "나겔반지") {
		t.Error("unexpected rejection")
	}
}

func TestBundle(t *testing.T) {
	r := newTestResolver()
	if !r.Bundle("에테르") {
		t.Error("에테르 must be bundle-flagged")
	}
	if r.Bundle("나겔링반지") {
		t.Error("나겔링반지 must not be bundle-flagged")
	}
}

func TestValid(t *testing.T) {
	r := newTestResolver()
	tests := []struct {
		name string
		want bool
	}{
		{"나겔링반지", true},  // alias canonical set
		{"주작반지", true},   // catalog exact
		{"둠의룬안대", true},  // level-suffix-stripped catalog
		{"나겔링반", true},   // ≥3-rune substring of a catalog name
		{"정체불명템", false}, // unknown
		{"값", false},      // too short for substring matching
	}
	for _, tt := range tests {
		if got := r.Valid(tt.name); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPutDropAlias(t *testing.T) {
	r := newTestResolver()
	r.PutAlias("신규약어", "신규아이템")
	if got := r.Canonicalize("신규약어"); got != "신규아이템" {
		t.Errorf("got %q after PutAlias", got)
	}
	r.DropAlias("신규약어")
	if got := r.Canonicalize("신규약어"); got == "신규아이템" {
		t.Error("alias still resolving after DropAlias")
	}
}

func TestSeedAliases(t *testing.T) {
	seeds := SeedAliases()
	if len(seeds) == 0 {
		t.Fatal("seed list is empty")
	}
	seen := map[string]bool{}
	for _, a := range seeds {
		if a.Alias == "" || a.CanonicalName == "" {
			t.Errorf("incomplete seed: %+v", a)
		}
		if seen[a.Alias] {
			t.Errorf("duplicate alias %q", a.Alias)
		}
		seen[a.Alias] = true
	}
}
