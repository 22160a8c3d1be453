package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"

	"jobmatch/internal/errors"
)

// Skill categories
const (
	CategoryTechnical     = "technical"
	CategorySoft          = "soft"
	CategoryLanguages     = "languages"
	CategoryTools         = "tools"
	CategoryFrameworks    = "frameworks"
	CategoryDatabases     = "databases"
	CategoryPlatforms     = "platforms"
	CategoryCertification = "certifications"
	CategoryMethodologies = "methodologies"
)

// similarityThreshold is the minimum edit-distance ratio for accepting a
// fuzzy alias match during normalization.
const similarityThreshold = 0.8

// snapshot is an immutable view of the skill tables. Readers load it
// atomically; writers build a new one and swap it in.
type snapshot struct {
	aliases    map[string]string // lowercased alias -> canonical
	aliasOrder []string          // registration order, for deterministic ties
	categories map[string]string // canonical -> category
	synonyms   map[string][]string
}

// SkillMap reconciles free-text skill mentions into canonical names.
// It is safe for concurrent use: reads never block, and the append-only
// write operations replace the snapshot atomically.
type SkillMap struct {
	snap   atomic.Pointer[snapshot]
	mu     sync.Mutex // serializes writers
	logger *errors.Logger
}

// NewSkillMap creates a skill map populated with the built-in tables.
func NewSkillMap(logger *errors.Logger) *SkillMap {
	sm := &SkillMap{logger: logger}
	sm.snap.Store(buildDefaultSnapshot())
	return sm
}

// skillMapFile is the on-disk JSON shape for LoadFile
type skillMapFile struct {
	Aliases    map[string]string   `json:"aliases"`
	Categories map[string][]string `json:"categories"`
	Synonyms   map[string][]string `json:"synonyms"`
}

// LoadFile merges alias/category/synonym tables from a JSON file on top
// of the current snapshot. Existing alias mappings are never overwritten,
// so normalization results for known inputs do not change.
func (sm *SkillMap) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read skill map file: %s", path), err)
	}

	var file skillMapFile
	if err := json.Unmarshal(data, &file); err != nil {
		return errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Skill map file is not valid JSON: %s", path), err)
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	next := sm.snap.Load().clone()
	added := 0
	for alias, canonical := range file.Aliases {
		if next.addAlias(alias, canonical) {
			added++
		}
	}
	for category, canonicals := range file.Categories {
		for _, canonical := range canonicals {
			next.addCategory(canonical, category)
		}
	}
	for canonical, syns := range file.Synonyms {
		next.addSynonyms(canonical, syns)
	}
	sm.snap.Store(next)

	if sm.logger != nil {
		sm.logger.Info("Skill map file merged",
			"path", path,
			"aliases_added", added,
			"alias_count", len(next.aliases))
	}
	return nil
}

// Normalize maps an arbitrary skill string to its canonical name.
// Lookup order: exact alias match, longest substring containment,
// edit-distance ratio above the acceptance threshold. Unknown skills are
// preserved with the first letter capitalized, never dropped.
// The operation is idempotent: Normalize(Normalize(s)) == Normalize(s).
func (sm *SkillMap) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	snap := sm.snap.Load()
	lowered := strings.ToLower(trimmed)

	if canonical, ok := snap.aliases[lowered]; ok {
		return canonical
	}

	// Substring containment: the longest matching alias key wins, ties
	// broken by registration order.
	bestLen := 0
	bestCanonical := ""
	for _, key := range snap.aliasOrder {
		if strings.Contains(lowered, key) || strings.Contains(key, lowered) {
			if len(key) > bestLen {
				bestLen = len(key)
				bestCanonical = snap.aliases[key]
			}
		}
	}
	if bestCanonical != "" {
		return bestCanonical
	}

	// Fuzzy match against all alias keys
	bestScore := similarityThreshold
	bestCanonical = ""
	for _, key := range snap.aliasOrder {
		if ratio := similarityRatio(key, lowered); ratio > bestScore {
			bestScore = ratio
			bestCanonical = snap.aliases[key]
		}
	}
	if bestCanonical != "" {
		return bestCanonical
	}

	return CapitalizeFirst(trimmed)
}

// NormalizeAll normalizes a list of skills into technical/soft buckets,
// suppressing duplicates within each bucket.
func (sm *SkillMap) NormalizeAll(raws []string) (technical, soft []string) {
	seenTech := make(map[string]bool)
	seenSoft := make(map[string]bool)

	for _, raw := range raws {
		canonical := sm.Normalize(raw)
		if canonical == "" {
			continue
		}
		if sm.Categorize(canonical) == CategorySoft {
			if !seenSoft[canonical] {
				seenSoft[canonical] = true
				soft = append(soft, canonical)
			}
		} else {
			if !seenTech[canonical] {
				seenTech[canonical] = true
				technical = append(technical, canonical)
			}
		}
	}
	return technical, soft
}

// Categorize returns the category of a canonical skill name. Unmapped
// skills fall back to a soft-skill keyword heuristic, then to technical.
func (sm *SkillMap) Categorize(canonical string) string {
	snap := sm.snap.Load()

	if category, ok := snap.categories[canonical]; ok {
		return category
	}

	lowered := strings.ToLower(canonical)
	for _, pattern := range softKeywordPatterns {
		if strings.Contains(lowered, pattern) {
			return CategorySoft
		}
	}

	return CategoryTechnical
}

// Synonyms returns the registered synonym set for a skill. If the skill
// is itself a synonym of another canonical, that canonical and its other
// synonyms are returned. Unknown skills yield a single-element list.
func (sm *SkillMap) Synonyms(skill string) []string {
	canonical := sm.Normalize(skill)
	snap := sm.snap.Load()

	if syns, ok := snap.synonyms[canonical]; ok {
		out := make([]string, len(syns))
		copy(out, syns)
		return out
	}

	for key, syns := range snap.synonyms {
		for _, s := range syns {
			if s == canonical {
				out := []string{key}
				for _, other := range syns {
					if other != canonical {
						out = append(out, other)
					}
				}
				return out
			}
		}
	}

	return []string{canonical}
}

// Similarity scores how close two skill mentions are after normalization:
// 1.0 for identical canonicals, 0.9 for registered synonyms, 0.8 for
// substring containment, otherwise the raw edit-distance ratio.
func (sm *SkillMap) Similarity(a, b string) float64 {
	normA := sm.Normalize(a)
	normB := sm.Normalize(b)

	if normA == normB {
		return 1.0
	}

	for _, syn := range sm.Synonyms(normA) {
		if syn == normB {
			return 0.9
		}
	}

	lowA := strings.ToLower(normA)
	lowB := strings.ToLower(normB)
	if strings.Contains(lowA, lowB) || strings.Contains(lowB, lowA) {
		return 0.8
	}

	return similarityRatio(lowA, lowB)
}

// RegisterAlias adds a new alias mapping at runtime. Additions are
// append-only: an alias that already exists is left untouched and the
// call reports false.
func (sm *SkillMap) RegisterAlias(alias, canonical string) bool {
	alias = strings.ToLower(strings.TrimSpace(alias))
	canonical = strings.TrimSpace(canonical)
	if alias == "" || canonical == "" {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.snap.Load().aliases[alias]; exists {
		return false
	}

	next := sm.snap.Load().clone()
	next.addAlias(alias, canonical)
	sm.snap.Store(next)

	if sm.logger != nil {
		sm.logger.Debug("Skill alias registered", "alias", alias, "canonical", canonical)
	}
	return true
}

// RegisterSynonyms appends synonyms for a canonical skill. Existing
// entries are kept; duplicates are ignored.
func (sm *SkillMap) RegisterSynonyms(skill string, synonyms []string) {
	canonical := sm.Normalize(skill)
	if canonical == "" || len(synonyms) == 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	next := sm.snap.Load().clone()
	next.addSynonyms(canonical, synonyms)
	sm.snap.Store(next)
}

// AliasCount returns the number of registered aliases
func (sm *SkillMap) AliasCount() int {
	return len(sm.snap.Load().aliases)
}

func buildDefaultSnapshot() *snapshot {
	snap := &snapshot{
		aliases:    make(map[string]string),
		categories: make(map[string]string),
		synonyms:   make(map[string][]string),
	}

	for _, entry := range defaultAliases {
		snap.addAlias(entry.Alias, entry.Canonical)
	}
	for category, canonicals := range defaultCategories {
		for _, canonical := range canonicals {
			snap.addCategory(canonical, category)
		}
	}
	for canonical, syns := range defaultSynonyms {
		snap.addSynonyms(canonical, syns)
	}

	return snap
}

func (s *snapshot) clone() *snapshot {
	next := &snapshot{
		aliases:    make(map[string]string, len(s.aliases)),
		aliasOrder: make([]string, len(s.aliasOrder)),
		categories: make(map[string]string, len(s.categories)),
		synonyms:   make(map[string][]string, len(s.synonyms)),
	}
	for k, v := range s.aliases {
		next.aliases[k] = v
	}
	copy(next.aliasOrder, s.aliasOrder)
	for k, v := range s.categories {
		next.categories[k] = v
	}
	for k, v := range s.synonyms {
		syns := make([]string, len(v))
		copy(syns, v)
		next.synonyms[k] = syns
	}
	return next
}

// addAlias registers an alias if absent and reports whether it was added.
// Every canonical also self-aliases under its lowercased form, which is
// what makes Normalize idempotent.
func (s *snapshot) addAlias(alias, canonical string) bool {
	alias = strings.ToLower(strings.TrimSpace(alias))
	canonical = strings.TrimSpace(canonical)
	if alias == "" || canonical == "" {
		return false
	}
	if _, exists := s.aliases[alias]; exists {
		return false
	}
	s.aliases[alias] = canonical
	s.aliasOrder = append(s.aliasOrder, alias)

	self := strings.ToLower(canonical)
	if _, exists := s.aliases[self]; !exists {
		s.aliases[self] = canonical
		s.aliasOrder = append(s.aliasOrder, self)
	}
	return true
}

func (s *snapshot) addCategory(canonical, category string) {
	if canonical == "" || category == "" {
		return
	}
	if _, exists := s.categories[canonical]; !exists {
		s.categories[canonical] = category
	}
}

func (s *snapshot) addSynonyms(canonical string, synonyms []string) {
	existing := s.synonyms[canonical]
	for _, syn := range synonyms {
		syn = strings.TrimSpace(syn)
		if syn == "" {
			continue
		}
		duplicate := false
		for _, have := range existing {
			if have == syn {
				duplicate = true
				break
			}
		}
		if !duplicate {
			existing = append(existing, syn)
		}
	}
	s.synonyms[canonical] = existing
}

// CapitalizeFirst upper-cases the first rune of s
func CapitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
