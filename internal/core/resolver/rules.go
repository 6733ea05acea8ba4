package resolver

import (
	"strings"

	"github.com/animura/animura/internal/core/catalog"
	"github.com/animura/animura/pkg/slice"
)

/*
ApplyRules evaluates the keyword tag rules against a caption, independent
of title detection. The caption is reduced to its distinct alphanumeric
tokens; an ANY rule fires when one keyword occurs in the reduced text, an
ALL rule when every keyword does. Contributions of firing rules are
unioned with empties and duplicates removed.
*/
func ApplyRules(caption string, rules []catalog.TagRule) []string {
	cleaned := cleanForRules(caption)

	var tags []string
	for _, rule := range rules {
		if !ruleFires(cleaned, rule) {
			continue
		}
		tags = append(tags, rule.Visible...)
		tags = append(tags, rule.Invisible...)
	}

	tags = slice.Filter(tags, func(tag string) bool { return tag != "" })
	return slice.Dedupe(tags)
}

func ruleFires(cleaned string, rule catalog.TagRule) bool {
	if len(rule.Keywords) == 0 {
		return false
	}
	switch rule.Mode {
	case catalog.ModeAny:
		for _, keyword := range rule.Keywords {
			if strings.Contains(cleaned, keyword) {
				return true
			}
		}
		return false
	case catalog.ModeAll:
		for _, keyword := range rule.Keywords {
			if !strings.Contains(cleaned, keyword) {
				return false
			}
		}
		return true
	}
	return false
}

// cleanForRules replaces every non-alphanumeric rune with a space and
// deduplicates the resulting tokens.
func cleanForRules(caption string) string {
	mapped := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return r
		}
		return ' '
	}, caption)

	return strings.Join(slice.Dedupe(strings.Fields(mapped)), " ")
}
