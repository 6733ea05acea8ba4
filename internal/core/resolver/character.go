package resolver

import (
	"sort"
	"strings"
	"unicode"

	"github.com/animura/animura/internal/core/catalog"
	"github.com/animura/animura/pkg/slug"
)

// characterProbe pairs a role with the alias rendering to try. Main-role
// characters are always preferred over supporting ones.
type characterProbe struct {
	role catalog.Role
	form catalog.Form
}

var characterProbes = []characterProbe{
	{catalog.RoleMain, catalog.FormExact},
	{catalog.RoleSupporting, catalog.FormExact},
	{catalog.RoleMain, catalog.FormSlug},
	{catalog.RoleSupporting, catalog.FormSlug},
}

/*
DetectCharacter finds a character of the matched entry mentioned in the
raw caption and returns its full name array joined with underscores, or
"" when nothing (or nothing unambiguous) is found.

The raw caption is used on purpose: capitalization is the ranking signal,
so tokens are ordered by uppercase-letter count then length before any
lookup. When the entry itself yields nothing the search widens to its
franchise mates.
*/
func DetectCharacter(store catalog.Store, caption string, kind catalog.Kind, entryID int) string {
	words := captionWords(caption)
	if len(words) == 0 {
		return ""
	}

	if name := probeEntry(store, words, kind, entryID); name != "" {
		return name
	}

	franchise := store.FranchiseOf(kind, entryID)
	if franchise == "" {
		return ""
	}
	for _, memberID := range store.FranchiseMembers(kind, franchise, entryID) {
		if name := probeEntry(store, words, kind, memberID); name != "" {
			return name
		}
	}
	return ""
}

func probeEntry(store catalog.Store, words []string, kind catalog.Kind, entryID int) string {
	for _, probe := range characterProbes {
		for _, word := range words {
			needle := strings.ToLower(word)
			if probe.form == catalog.FormSlug {
				needle = slug.From(word)
			}
			names := store.CharacterNames(kind, entryID, probe.role, probe.form, needle)
			if len(names) != 1 {
				// Zero is a miss, more than one is ambiguous; either way
				// move on to the next word.
				continue
			}
			return strings.Join(names[0], "_")
		}
	}
	return ""
}

// captionWords splits the caption on whitespace, drops short tokens and
// orders the rest so capitalized proper nouns surface first. Tokens keep
// any surrounding punctuation; a name like "Miku," only matches through
// the slug probes.
func captionWords(caption string) []string {
	var words []string
	for _, token := range strings.Fields(caption) {
		if len([]rune(token)) > 2 {
			words = append(words, token)
		}
	}

	sort.SliceStable(words, func(i, j int) bool {
		ui, uj := uppercaseCount(words[i]), uppercaseCount(words[j])
		if ui != uj {
			return ui > uj
		}
		return len(words[i]) > len(words[j])
	})
	return words
}

func uppercaseCount(word string) int {
	count := 0
	for _, r := range word {
		if unicode.IsUpper(r) {
			count++
		}
	}
	return count
}
