package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/animura/animura/pkg/slug"
)

/*
Snapshot is an immutable, fully in-memory Store over one load of the
reference data. Slug and compact renderings of every matchable value are
precomputed at build time so lookups are plain string comparisons.

A Snapshot is never mutated after construction; any number of resolutions
may read it concurrently while a newer snapshot is being built.
*/
type Snapshot struct {
	entries    map[Kind][]*indexedEntry
	characters map[Kind]map[int][]*indexedCharacter
	popular    map[Kind]map[int]struct{}
	franchises map[Kind]map[string][]int
	rules      []TagRule
	loadedAt   time.Time
}

// fieldForms holds the precomputed renderings of a single value. The pv
// flag marks preview rows ("PV" in the raw value), which are excluded
// from direct equality lookups.
type fieldForms struct {
	exact   string
	slug    string
	compact string
	pv      bool
}

type indexedEntry struct {
	entry     Entry
	title     fieldForms
	english   fieldForms
	franchise fieldForms
	synonyms  []fieldForms
}

type indexedCharacter struct {
	character Character
	exact     []string
	slug      []string
}

func newFieldForms(raw string) fieldForms {
	return fieldForms{
		exact:   strings.ToLower(raw),
		slug:    slug.From(raw),
		compact: slug.Compact(raw),
		pv:      strings.Contains(raw, "PV"),
	}
}

// NewSnapshot builds a snapshot from already-loaded reference data. Entries
// and characters carry their catalog kind; ordering within each catalog is
// normalized to ascending id so lookups are deterministic.
func NewSnapshot(entries []Entry, characters []Character, popular []Popular, rules []TagRule) *Snapshot {
	snapshot := &Snapshot{
		entries:    make(map[Kind][]*indexedEntry),
		characters: make(map[Kind]map[int][]*indexedCharacter),
		popular:    make(map[Kind]map[int]struct{}),
		franchises: make(map[Kind]map[string][]int),
		rules:      rules,
		loadedAt:   time.Now().UTC(),
	}
	for _, kind := range Kinds {
		snapshot.characters[kind] = make(map[int][]*indexedCharacter)
		snapshot.popular[kind] = make(map[int]struct{})
		snapshot.franchises[kind] = make(map[string][]int)
	}

	for _, entry := range entries {
		indexed := &indexedEntry{entry: entry}
		indexed.title = newFieldForms(entry.Title)
		if entry.English != nil {
			indexed.english = newFieldForms(*entry.English)
		}
		if entry.Franchise != nil {
			indexed.franchise = fieldForms{
				exact:   strings.ToLower(*entry.Franchise),
				compact: strings.ReplaceAll(strings.ToLower(*entry.Franchise), "_", ""),
			}
		}
		for _, synonym := range entry.Synonyms {
			indexed.synonyms = append(indexed.synonyms, newFieldForms(synonym))
		}
		snapshot.entries[entry.Kind] = append(snapshot.entries[entry.Kind], indexed)

		if indexed.franchise.exact != "" {
			key := indexed.franchise.exact
			snapshot.franchises[entry.Kind][key] = append(snapshot.franchises[entry.Kind][key], entry.ID)
		}
	}
	for _, kind := range Kinds {
		sort.Slice(snapshot.entries[kind], func(i, j int) bool {
			return snapshot.entries[kind][i].entry.ID < snapshot.entries[kind][j].entry.ID
		})
	}

	for _, character := range characters {
		indexed := &indexedCharacter{character: character}
		for _, name := range character.Names {
			indexed.exact = append(indexed.exact, strings.ToLower(name))
			indexed.slug = append(indexed.slug, slug.From(name))
		}
		byEntry := snapshot.characters[character.Kind]
		byEntry[character.EntryID] = append(byEntry[character.EntryID], indexed)
	}

	for _, entry := range popular {
		snapshot.popular[entry.Kind][entry.EntryID] = struct{}{}
	}

	return snapshot
}

// BuildSnapshot loads all reference data through the source and indexes it.
func BuildSnapshot(context context.Context, source Source) (*Snapshot, error) {
	var entries []Entry
	var characters []Character
	for _, kind := range Kinds {
		kindEntries, err := source.LoadEntries(context, kind)
		if err != nil {
			return nil, err
		}
		entries = append(entries, kindEntries...)

		kindCharacters, err := source.LoadCharacters(context, kind)
		if err != nil {
			return nil, err
		}
		characters = append(characters, kindCharacters...)
	}

	popular, err := source.LoadPopular(context)
	if err != nil {
		return nil, err
	}

	rules, err := source.LoadTagRules(context)
	if err != nil {
		return nil, err
	}

	return NewSnapshot(entries, characters, popular, rules), nil
}

// forms returns the renderings of the field to compare against. Synonyms
// yield one value per alias, the title fields exactly one.
func (indexed *indexedEntry) forms(field Field) []fieldForms {
	switch field {
	case FieldTitle:
		return []fieldForms{indexed.title}
	case FieldEnglish:
		return []fieldForms{indexed.english}
	case FieldFranchise:
		return []fieldForms{indexed.franchise}
	case FieldSynonyms:
		return indexed.synonyms
	}
	return nil
}

func (forms fieldForms) value(form Form) string {
	switch form {
	case FormExact:
		return forms.exact
	case FormSlug:
		return forms.slug
	case FormCompact:
		return forms.compact
	}
	return ""
}

// directEquality reports whether the lookup is one the preview exclusion
// applies to: verbatim or slug equality on a title column.
func directEquality(field Field, form Form) bool {
	return (field == FieldTitle || field == FieldEnglish) && (form == FormExact || form == FormSlug)
}

func (snapshot *Snapshot) FindEqual(kind Kind, field Field, form Form, needle string) []Entry {
	if needle == "" {
		return nil
	}

	var matches []Entry
	for _, indexed := range snapshot.entries[kind] {
		for _, forms := range indexed.forms(field) {
			if forms.pv && directEquality(field, form) {
				continue
			}
			if value := forms.value(form); value != "" && value == needle {
				matches = append(matches, indexed.entry)
				break
			}
		}
	}
	return matches
}

func (snapshot *Snapshot) FindContaining(kind Kind, field Field, form Form, needle string) []Entry {
	if needle == "" {
		return nil
	}

	// One candidate per franchise: a hit across a family of sequels is a
	// single vote, not an ambiguity. Entries without a franchise share one
	// group, mirroring how the reference data treats them.
	seen := make(map[string]struct{})
	var matches []Entry
	for _, indexed := range snapshot.entries[kind] {
		hit := false
		for _, forms := range indexed.forms(field) {
			if value := forms.value(form); value != "" && strings.Contains(value, needle) {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}

		group := indexed.franchise.exact
		if _, ok := seen[group]; ok {
			continue
		}
		seen[group] = struct{}{}
		matches = append(matches, indexed.entry)
	}
	return matches
}

func (snapshot *Snapshot) IsPopular(kind Kind, entryID int) bool {
	_, ok := snapshot.popular[kind][entryID]
	return ok
}

func (snapshot *Snapshot) CharacterNames(kind Kind, entryID int, role Role, form Form, needle string) [][]string {
	if needle == "" {
		return nil
	}

	var matches [][]string
	for _, indexed := range snapshot.characters[kind][entryID] {
		if indexed.character.Role != role {
			continue
		}
		aliases := indexed.exact
		if form == FormSlug {
			aliases = indexed.slug
		}
		for _, alias := range aliases {
			if alias == needle {
				matches = append(matches, indexed.character.Names)
				break
			}
		}
	}
	return matches
}

func (snapshot *Snapshot) FranchiseOf(kind Kind, entryID int) string {
	for _, indexed := range snapshot.entries[kind] {
		if indexed.entry.ID == entryID {
			return indexed.franchise.exact
		}
	}
	return ""
}

func (snapshot *Snapshot) FranchiseMembers(kind Kind, franchise string, exceptID int) []int {
	if franchise == "" {
		return nil
	}

	var members []int
	for _, id := range snapshot.franchises[kind][franchise] {
		if id != exceptID {
			members = append(members, id)
		}
	}
	return members
}

func (snapshot *Snapshot) TagRules() []TagRule {
	return snapshot.rules
}

// Stats summarizes the snapshot's contents for the admin surface.
type Stats struct {
	Entries    map[Kind]int `json:"entries"`
	Characters map[Kind]int `json:"characters"`
	Popular    int          `json:"popular"`
	TagRules   int          `json:"tag_rules"`
	LoadedAt   time.Time    `json:"loaded_at"`
}

func (snapshot *Snapshot) Stats() Stats {
	stats := Stats{
		Entries:    make(map[Kind]int),
		Characters: make(map[Kind]int),
		TagRules:   len(snapshot.rules),
		LoadedAt:   snapshot.loadedAt,
	}
	for _, kind := range Kinds {
		stats.Entries[kind] = len(snapshot.entries[kind])
		for _, group := range snapshot.characters[kind] {
			stats.Characters[kind] += len(group)
		}
		stats.Popular += len(snapshot.popular[kind])
	}
	return stats
}
