package resolver

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/animura/animura/internal/core/catalog"
	"github.com/animura/animura/internal/platform/constants"
	"github.com/animura/animura/pkg/pointer"
	"github.com/animura/animura/pkg/slice"
	"github.com/animura/animura/pkg/slug"
)

// ResolvedTags is the final output of one caption resolution.
type ResolvedTags struct {
	EntryID   *int          `json:"entry_id"`
	Kind      *catalog.Kind `json:"kind,omitempty"`
	Visible   []string      `json:"visible_tags"`
	Invisible []string      `json:"invisible_tags"`
}

// Resolver orchestrates detection, character lookup, rule evaluation and
// tag shaping over one catalog snapshot.
type Resolver struct {
	store catalog.Store
}

func New(store catalog.Store) *Resolver {
	return &Resolver{store: store}
}

/*
Resolve maps a raw caption to its tag sets. Bracketed fragments are the
candidate titles (the whole caption when there are none); candidates
containing cross-post markers are discarded and the rest are tried longest
first. The first candidate the cascade accepts wins.
*/
func (resolver *Resolver) Resolve(caption string) ResolvedTags {
	candidates := ExtractBracketed(caption)
	if len(candidates) == 0 {
		candidates = []string{caption}
	}

	prepared := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		candidate = stripDailyCounter(candidate)
		if strings.Contains(strings.ToLower(candidate), "x-post") {
			continue
		}
		prepared = append(prepared, candidate)
	}
	sort.SliceStable(prepared, func(i, j int) bool {
		return len(prepared[i]) > len(prepared[j])
	})

	matcher := NewMatcher(resolver.store)
	var match *Match
	for _, candidate := range prepared {
		if match = matcher.Match(candidate); match != nil {
			break
		}
	}

	visible, invisible := shapeTags(match)

	if match != nil {
		// Character search reads the raw caption: capitalization is the
		// ranking signal and brackets may hold the title, not the name.
		if name := DetectCharacter(resolver.store, caption, match.Kind, match.Entry.ID); name != "" {
			visible = append(visible, name)
		}
	}

	// Rule contributions join before the subtraction: no tag ever appears
	// in both sets.
	invisible = append(invisible, ApplyRules(caption, resolver.store.TagRules())...)
	invisible = slice.Filter(invisible, func(tag string) bool { return tag != "" })
	invisible = subtract(slice.Dedupe(invisible), visible)
	if invisible == nil {
		invisible = []string{}
	}

	result := ResolvedTags{Visible: visible, Invisible: invisible}
	if match != nil {
		result.EntryID = pointer.To(match.Entry.ID)
		result.Kind = pointer.To(match.Kind)
	}
	return result
}

/*
shapeTags renders the visible/invisible split for a match according to the
winning strategy's tag shape. A nil match yields the fixed fallback label.
*/
func shapeTags(match *Match) (visible, invisible []string) {
	if match == nil {
		return []string{constants.FallbackVisibleTag}, nil
	}

	entry := match.Entry
	title := humanizeTitle(entry.Title)
	english := humanizeTitle(pointer.Val(entry.English))
	localized := humanizeLocalized(pointer.Val(entry.Localized))
	franchise := humanizeFranchise(pointer.Val(entry.Franchise))

	// An English title restating the canonical one adds nothing.
	if english != "" && sameWordMultiset(title, english) {
		english = ""
	}

	switch match.Strategy.Shape() {
	case ShapeTitle, ShapeSynonym:
		if localized != "" {
			for _, tag := range []string{title, english, franchise} {
				if tag != "" {
					invisible = append(invisible, tag)
				}
			}
			return []string{localized}, invisible
		}
		if prefersEnglish(match.Strategy) && english != "" {
			return []string{english}, nil
		}
		return []string{title}, nil

	case ShapeFranchise:
		return []string{franchise}, nil

	case ShapeFranchiseOrTitle:
		if franchise != "" {
			return []string{franchise}, nil
		}
		if english != "" {
			return []string{english}, nil
		}
		return []string{title}, nil
	}

	return []string{constants.FallbackVisibleTag}, nil
}

// prefersEnglish reports whether the hit was specifically on the English
// column of a direct-tier lookup.
func prefersEnglish(strategy Strategy) bool {
	return strategy == StrategyEnglishExact || strategy == StrategyEnglishSlug
}

var (
	dailyPattern   = regexp.MustCompile(`(?i)daily`)
	counterPattern = regexp.MustCompile(`#\d+`)
)

// stripDailyCounter removes episode-counter noise like "Daily Megumin #847"
// so the counter is not mistaken for part of the title.
func stripDailyCounter(text string) string {
	if strings.Contains(strings.ToLower(text), "daily") && strings.Contains(text, "#") {
		text = dailyPattern.ReplaceAllString(text, "")
		text = counterPattern.ReplaceAllString(text, "")
	}
	return text
}

/*
humanizeTitle renders a raw catalog title as a tag: slugged, each word
capitalized, joined with underscores. "Sword Art Online" becomes
"Sword_Art_Online".
*/
func humanizeTitle(raw string) string {
	if raw == "" {
		return ""
	}

	parts := strings.Split(slug.From(raw), "-")
	for i, part := range parts {
		parts[i] = capitalize(part)
	}
	name := strings.Join(parts, "_")

	// The "@" in this franchise slugs into a stray separator.
	if strings.Contains(strings.ToLower(name), "idolm_ster") {
		name = strings.ReplaceAll(name, "Idolm_Ster", "Idolmaster")
		name = strings.ReplaceAll(name, "Idolm_ster", "Idolmaster")
	}
	return name
}

// humanizeLocalized keeps Cyrillic letters intact, which the slugger would
// strip, and otherwise renders like humanizeTitle.
func humanizeLocalized(raw string) string {
	if raw == "" {
		return ""
	}

	mapped := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || unicode.Is(unicode.Cyrillic, r) {
			return r
		}
		return '_'
	}, raw)

	parts := slice.Filter(strings.Split(mapped, "_"), func(part string) bool { return part != "" })
	for i, part := range parts {
		parts[i] = capitalize(part)
	}
	return strings.Join(parts, "_")
}

func humanizeFranchise(raw string) string {
	if raw == "" {
		return ""
	}

	parts := strings.Split(raw, "_")
	for i, part := range parts {
		parts[i] = capitalize(part)
	}
	return strings.Join(parts, "_")
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// sameWordMultiset compares two humanized titles word for word, ignoring
// order.
func sameWordMultiset(a, b string) bool {
	wordsA := strings.Split(a, "_")
	wordsB := strings.Split(b, "_")
	if len(wordsA) != len(wordsB) {
		return false
	}
	sort.Strings(wordsA)
	sort.Strings(wordsB)
	for i := range wordsA {
		if wordsA[i] != wordsB[i] {
			return false
		}
	}
	return true
}

func subtract(tags, remove []string) []string {
	return slice.Filter(tags, func(tag string) bool {
		return !slice.Contains(remove, tag)
	})
}
