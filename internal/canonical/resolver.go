// Package canonical maps raw extracted item phrases to canonical item names.
// Resolution consults, in order: the curated alias table, the read-only
// known-item catalog, and finally the phrase itself; unknown items are still
// stored so the cleanup loop can judge them later. A learned rejection set
// screens out phrases the cleanup loop has repeatedly invalidated.
package canonical

import (
	"regexp"
	"strings"
	"sync"

	"PriceSentinel/internal/model"
)

// minCleanupOverlap is the substring length the cleanup loop requires before a
// catalog name validates a stored canonical name.
const minCleanupOverlap = 3

// levelSuffixRe strips catalog level suffixes like "나겔링반지(3)".
var levelSuffixRe = regexp.MustCompile(`\s*\([^)]*\d[^)]*\)$`)

// Resolver holds the canonicalization state. Aliases and the rejection set are
// mutable behind a single-writer interface; the catalog is an immutable
// snapshot for the process lifetime.
type Resolver struct {
	mu       sync.RWMutex
	aliases  map[string]string // alias → canonical
	catalog  map[string]model.KnownItem
	stripped map[string]string // level-suffix-stripped catalog name → full name
	rejected map[string]bool   // active rejection patterns
}

// NewResolver creates an empty Resolver.
func NewResolver() *Resolver {
	return &Resolver{
		aliases:  make(map[string]string),
		catalog:  make(map[string]model.KnownItem),
		stripped: make(map[string]string),
		rejected: make(map[string]bool),
	}
}

// SetAliases replaces the alias table.
func (r *Resolver) SetAliases(aliases []model.ItemAlias) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases = make(map[string]string, len(aliases))
	for _, a := range aliases {
		r.aliases[a.Alias] = a.CanonicalName
	}
}

// PutAlias adds or overwrites one alias.
func (r *Resolver) PutAlias(alias, canonicalName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = canonicalName
}

// DropAlias removes one alias.
func (r *Resolver) DropAlias(alias string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.aliases, alias)
}

// SetCatalog installs the known-item snapshot.
func (r *Resolver) SetCatalog(items []model.KnownItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalog = make(map[string]model.KnownItem, len(items))
	r.stripped = make(map[string]string, len(items))
	for _, it := range items {
		r.catalog[it.Name] = it
		if s := levelSuffixRe.ReplaceAllString(it.Name, ""); s != it.Name && s != "" {
			r.stripped[s] = it.Name
		}
	}
}

// SetRejected replaces the active rejection set.
func (r *Resolver) SetRejected(patterns []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected = make(map[string]bool, len(patterns))
	for _, p := range patterns {
		r.rejected[p] = true
	}
}

// CatalogSize reports how many known items the resolver holds. Zero means the
// catalog failed to load and catalog-backed features should not run.
func (r *Resolver) CatalogSize() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.catalog)
}

// Canonicalize resolves a cleaned item phrase. First hit wins; with no hit the
// phrase itself becomes the canonical name. Canonical names resolve to
// themselves, so the function is idempotent.
func (r *Resolver) Canonicalize(phrase string) string {
	name, _ := r.Resolve(phrase)
	return name
}

// Resolve is Canonicalize plus a flag reporting whether any alias or catalog
// rule matched. resolved=false means the phrase passed through unchanged and
// callers may consult other sources (historical records) for a better name.
func (r *Resolver) Resolve(phrase string) (string, bool) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return "", false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// 1. Exact alias.
	if c, ok := r.aliases[phrase]; ok {
		return c, true
	}

	// 2. Alias substring, either direction.
	for alias, c := range r.aliases {
		if len([]rune(alias)) < 2 {
			continue
		}
		if strings.Contains(phrase, alias) || strings.Contains(alias, phrase) {
			return c, true
		}
	}

	// 3. Exact catalog match, including the level-suffix-stripped form.
	if _, ok := r.catalog[phrase]; ok {
		return phrase, true
	}
	if _, ok := r.stripped[phrase]; ok {
		return phrase, true
	}

	// 4. Catalog substring, either direction, at least 2 runes of overlap.
	if len([]rune(phrase)) >= 2 {
		for name := range r.catalog {
			if strings.Contains(name, phrase) || strings.Contains(phrase, name) {
				return name, true
			}
		}
		for s := range r.stripped {
			if strings.Contains(s, phrase) || strings.Contains(phrase, s) {
				return s, true
			}
		}
	}

	// 5. Unknown: keep the phrase, let the cleanup loop judge it.
	return phrase, false
}

// Rejected reports whether either the canonical or the raw phrase is in the
// active rejection set. A hit discards the whole candidate line.
func (r *Resolver) Rejected(canonical, raw string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rejected[canonical] || r.rejected[raw]
}

// Bundle reports whether a canonical name is catalog-flagged as transactable
// in multi-unit lots.
func (r *Resolver) Bundle(canonical string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if it, ok := r.catalog[canonical]; ok {
		return it.Bundle
	}
	if full, ok := r.stripped[canonical]; ok {
		return r.catalog[full].Bundle
	}
	return false
}

// Valid is the cleanup loop's validity test: the name belongs to the alias
// canonical-name set, or matches the catalog exactly or by a substring of at
// least minCleanupOverlap runes.
func (r *Resolver) Valid(canonical string) bool {
	if canonical == "" {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.aliases {
		if c == canonical {
			return true
		}
	}
	if _, ok := r.catalog[canonical]; ok {
		return true
	}
	if _, ok := r.stripped[canonical]; ok {
		return true
	}
	if len([]rune(canonical)) >= minCleanupOverlap {
		for name := range r.catalog {
			if strings.Contains(name, canonical) {
				return true
			}
			if len([]rune(name)) >= minCleanupOverlap && strings.Contains(canonical, name) {
				return true
			}
		}
	}
	return false
}
