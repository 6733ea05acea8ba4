package resolver

import (
	"strings"

	"github.com/animura/animura/internal/core/catalog"
)

// Match is the transient result of one successful cascade attempt. It is
// consumed immediately by tag shaping and never persisted.
type Match struct {
	Entry    catalog.Entry
	Kind     catalog.Kind
	Strategy Strategy
}

// Matcher runs the strategy cascade against one catalog snapshot.
type Matcher struct {
	store catalog.Store
}

func NewMatcher(store catalog.Store) *Matcher {
	return &Matcher{store: store}
}

/*
matchOnce runs both tiers over already-normalized text and returns the
first hit. Ambiguous results and untrusted low-confidence results count
as no match and the cascade moves on.
*/
func (matcher *Matcher) matchOnce(text string) *Match {
	for _, kind := range catalog.Kinds {
		for _, strategy := range directCascade {
			info := strategy.info()
			needle := info.render(text)
			if needle == "" {
				continue
			}
			entries := matcher.store.FindEqual(kind, info.field, info.form, needle)
			if len(entries) == 0 {
				continue
			}
			return &Match{Entry: entries[0], Kind: kind, Strategy: strategy}
		}
	}

	for _, kind := range catalog.Kinds {
		for _, strategy := range heuristicCascade {
			info := strategy.info()
			needle := info.render(text)
			if needle == "" {
				continue
			}

			var entries []catalog.Entry
			if info.substring {
				entries = matcher.store.FindContaining(kind, info.field, info.form, needle)
			} else {
				entries = matcher.store.FindEqual(kind, info.field, info.form, needle)
				if info.collapseFranchise {
					entries = collapseFranchises(entries)
				}
			}
			if len(entries) == 0 {
				continue
			}
			if (info.substring || info.requireUnique) && len(entries) != 1 {
				// Ambiguous. Precision beats recall at this tier.
				continue
			}

			entry := entries[0]
			if info.lowConfidence && !matcher.store.IsPopular(kind, entry.ID) {
				// Untrusted guess about an obscure entry; treat exactly
				// as no match.
				continue
			}
			return &Match{Entry: entry, Kind: kind, Strategy: strategy}
		}
	}

	return nil
}

// collapseFranchises keeps the first entry of each franchise, preserving
// input order. Entries without a franchise share one group, matching the
// substring lookups.
func collapseFranchises(entries []catalog.Entry) []catalog.Entry {
	seen := make(map[string]struct{})
	var collapsed []catalog.Entry
	for _, entry := range entries {
		group := ""
		if entry.Franchise != nil {
			group = strings.ToLower(*entry.Franchise)
		}
		if _, ok := seen[group]; ok {
			continue
		}
		seen[group] = struct{}{}
		collapsed = append(collapsed, entry)
	}
	return collapsed
}
