package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animura/animura/internal/core/catalog"
	"github.com/animura/animura/internal/core/resolver"
	"github.com/animura/animura/pkg/pointer"
)

func TestMatcher_CatalogOrder(t *testing.T) {
	// The same title exists in both catalogs; the non-anime one wins.
	matcher := resolver.NewMatcher(testSnapshot())

	match := matcher.Match("clannad")
	require.NotNil(t, match)
	assert.Equal(t, catalog.KindNonAnime, match.Kind)
	assert.Equal(t, 11, match.Entry.ID)
}

/*
TestMatcher_TrustGate verifies that a substring-only hit is accepted for a
popular entry and treated as no match for an obscure one.
*/
func TestMatcher_TrustGate(t *testing.T) {
	entries := []catalog.Entry{
		{
			ID: 1, Kind: catalog.KindAnime,
			Title:     "Sword Art Online",
			Franchise: pointer.To("sword_art_online"),
		},
	}

	t.Run("popular_entry_matches", func(t *testing.T) {
		snapshot := catalog.NewSnapshot(entries, nil, []catalog.Popular{{Kind: catalog.KindAnime, EntryID: 1}}, nil)
		match := resolver.NewMatcher(snapshot).Match("sword art")
		require.NotNil(t, match)
		assert.Equal(t, 1, match.Entry.ID)
	})

	t.Run("obscure_entry_is_no_match", func(t *testing.T) {
		snapshot := catalog.NewSnapshot(entries, nil, nil, nil)
		match := resolver.NewMatcher(snapshot).Match("sword art")
		assert.Nil(t, match)
	})
}

/*
TestMatcher_FranchiseCollapseOnEquality verifies that the de-hyphenated
franchise and synonym lookups fold a multi-entry franchise into a single
candidate before the uniqueness check. Two sequels sharing a franchise are
one vote, and the franchise-equality strategy stays open to obscure
entries.
*/
func TestMatcher_FranchiseCollapseOnEquality(t *testing.T) {
	t.Run("franchise_equality", func(t *testing.T) {
		// Neither entry is popular; the whole family still matches by
		// franchise name.
		entries := []catalog.Entry{
			{ID: 1, Kind: catalog.KindAnime, Title: "Fate/Zero", Franchise: pointer.To("fate")},
			{ID: 2, Kind: catalog.KindAnime, Title: "Fate/Stay Night", Franchise: pointer.To("fate")},
		}
		snapshot := catalog.NewSnapshot(entries, nil, nil, nil)

		match := resolver.NewMatcher(snapshot).Match("fate")
		require.NotNil(t, match)
		assert.Equal(t, 1, match.Entry.ID)
		assert.Equal(t, resolver.ShapeFranchise, match.Strategy.Shape())
	})

	t.Run("synonym_equality", func(t *testing.T) {
		// Both sequels carry the same hyphenated synonym; the de-hyphenated
		// synonym lookup is the only strategy that can reach it.
		entries := []catalog.Entry{
			{ID: 5, Kind: catalog.KindAnime, Title: "Stargate Chronicle", Synonyms: []string{"gate-keepers"}, Franchise: pointer.To("stargate")},
			{ID: 6, Kind: catalog.KindAnime, Title: "Stargate Chronicle 21", Synonyms: []string{"gate-keepers"}, Franchise: pointer.To("stargate")},
		}
		popular := []catalog.Popular{{Kind: catalog.KindAnime, EntryID: 5}}
		snapshot := catalog.NewSnapshot(entries, nil, popular, nil)

		match := resolver.NewMatcher(snapshot).Match("gatekeepers")
		require.NotNil(t, match)
		assert.Equal(t, 5, match.Entry.ID)
	})

	t.Run("two_franchises_stay_ambiguous", func(t *testing.T) {
		entries := []catalog.Entry{
			{ID: 1, Kind: catalog.KindAnime, Title: "Alpha", Franchise: pointer.To("ga_te")},
			{ID: 2, Kind: catalog.KindAnime, Title: "Beta", Franchise: pointer.To("gate")},
		}
		snapshot := catalog.NewSnapshot(entries, nil, nil, nil)

		assert.Nil(t, resolver.NewMatcher(snapshot).Match("gate"))
	})
}

// A substring needle hitting two franchises is ambiguous and discarded.
func TestMatcher_AmbiguousSubstring(t *testing.T) {
	entries := []catalog.Entry{
		{ID: 1, Kind: catalog.KindAnime, Title: "Fate/Zero", Franchise: pointer.To("fate")},
		{ID: 2, Kind: catalog.KindAnime, Title: "Zero no Tsukaima", Franchise: pointer.To("tsukaima")},
	}
	popular := []catalog.Popular{
		{Kind: catalog.KindAnime, EntryID: 1},
		{Kind: catalog.KindAnime, EntryID: 2},
	}
	snapshot := catalog.NewSnapshot(entries, nil, popular, nil)

	match := resolver.NewMatcher(snapshot).Match("zero")
	assert.Nil(t, match)
}

func TestMatcher_SplitterRetries(t *testing.T) {
	matcher := resolver.NewMatcher(testSnapshot())

	tests := []struct {
		name    string
		text    string
		wantID  int
		wantNil bool
	}{
		{"comma_split", "k-on!, kotobuki tsumugi", 3, false},
		{"slash_split", "some nonsense / sword art online", 1, false},
		{"colon_split_whole_first", "re:zero kara hajimeru isekai seikatsu", 6, false},
		{"connective_word_split", "miku from vocaloid", 10, false},
		{"series_stripped", "clannad series", 11, false},
		{"nothing_to_split", "totally unknown show", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := matcher.Match(tt.text)
			if tt.wantNil {
				assert.Nil(t, match)
				return
			}
			require.NotNil(t, match)
			assert.Equal(t, tt.wantID, match.Entry.ID)
		})
	}
}

// A caption stacking every delimiter must terminate as a plain no-match.
func TestMatcher_PathologicalCaptionTerminates(t *testing.T) {
	matcher := resolver.NewMatcher(testSnapshot())

	match := matcher.Match("aaa & bbb series, ccc / ddd - eee : fff x ggg or hhh from iii")
	assert.Nil(t, match)
}

func TestMatcher_URLAndEmpty(t *testing.T) {
	matcher := resolver.NewMatcher(testSnapshot())

	assert.Nil(t, matcher.Match(""))
	assert.Nil(t, matcher.Match("https://imgur.com/abc123"))
}
