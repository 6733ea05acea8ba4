package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animura/animura/internal/core/catalog"
	"github.com/animura/animura/pkg/pointer"
)

func fixtureSnapshot() *catalog.Snapshot {
	entries := []catalog.Entry{
		{
			ID: 1, Kind: catalog.KindAnime,
			Title:     "Sword Art Online",
			English:   pointer.To("Sword Art Online"),
			Localized: pointer.To("Мастера меча онлайн"),
			Franchise: pointer.To("sword_art_online"),
		},
		{
			ID: 2, Kind: catalog.KindAnime,
			Title:     "Sword Art Online II",
			Franchise: pointer.To("sword_art_online"),
		},
		{
			ID: 3, Kind: catalog.KindAnime,
			Title:     "K-On!",
			English:   pointer.To("K-On!"),
			Synonyms:  []string{"keion"},
			Franchise: pointer.To("k_on"),
		},
		{
			ID: 4, Kind: catalog.KindAnime,
			Title: "Overlord PV",
		},
		{
			ID: 10, Kind: catalog.KindNonAnime,
			Title:     "Vocaloid",
			Franchise: pointer.To("vocaloid"),
		},
	}
	characters := []catalog.Character{
		{ID: 1, Kind: catalog.KindNonAnime, EntryID: 10, Names: []string{"Hatsune", "Miku"}, Role: catalog.RoleMain},
		{ID: 2, Kind: catalog.KindAnime, EntryID: 1, Names: []string{"Asuna"}, Role: catalog.RoleMain},
		{ID: 3, Kind: catalog.KindAnime, EntryID: 2, Names: []string{"Sinon"}, Role: catalog.RoleSupporting},
	}
	popular := []catalog.Popular{
		{Kind: catalog.KindAnime, EntryID: 1},
	}
	rules := []catalog.TagRule{
		{ID: 1, Mode: catalog.ModeAll, Keywords: []string{"maid", "cafe"}, Invisible: []string{"MaidCafe"}},
	}
	return catalog.NewSnapshot(entries, characters, popular, rules)
}

/*
TestSnapshot_FindEqual covers verbatim and slug equality, including the
preview-row exclusion.
*/
func TestSnapshot_FindEqual(t *testing.T) {
	snapshot := fixtureSnapshot()

	tests := []struct {
		name    string
		kind    catalog.Kind
		field   catalog.Field
		form    catalog.Form
		needle  string
		wantIDs []int
	}{
		{"exact_title", catalog.KindAnime, catalog.FieldTitle, catalog.FormExact, "sword art online", []int{1}},
		{"slug_title", catalog.KindAnime, catalog.FieldTitle, catalog.FormSlug, "k-on", []int{3}},
		{"compact_title", catalog.KindAnime, catalog.FieldTitle, catalog.FormCompact, "kon", []int{3}},
		{"synonym_exact", catalog.KindAnime, catalog.FieldSynonyms, catalog.FormExact, "keion", []int{3}},
		{"franchise_compact", catalog.KindAnime, catalog.FieldFranchise, catalog.FormCompact, "swordartonline", []int{1, 2}},
		{"pv_title_excluded", catalog.KindAnime, catalog.FieldTitle, catalog.FormExact, "overlord pv", nil},
		{"wrong_catalog", catalog.KindNonAnime, catalog.FieldTitle, catalog.FormExact, "sword art online", nil},
		{"empty_needle", catalog.KindAnime, catalog.FieldTitle, catalog.FormSlug, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := snapshot.FindEqual(tt.kind, tt.field, tt.form, tt.needle)

			var ids []int
			for _, entry := range matches {
				ids = append(ids, entry.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

// Preview rows stay reachable through the de-hyphenated form, which the
// exclusion does not cover.
func TestSnapshot_FindEqual_PreviewCompact(t *testing.T) {
	snapshot := fixtureSnapshot()

	matches := snapshot.FindEqual(catalog.KindAnime, catalog.FieldTitle, catalog.FormCompact, "overlordpv")
	require.Len(t, matches, 1)
	assert.Equal(t, 4, matches[0].ID)
}

/*
TestSnapshot_FindContaining verifies the one-candidate-per-franchise
collapse of substring lookups.
*/
func TestSnapshot_FindContaining(t *testing.T) {
	snapshot := fixtureSnapshot()

	t.Run("franchise_collapse", func(t *testing.T) {
		// Both Sword Art Online entries contain the needle, but they share
		// a franchise and count as one candidate.
		matches := snapshot.FindContaining(catalog.KindAnime, catalog.FieldTitle, catalog.FormSlug, "sword-art")
		require.Len(t, matches, 1)
		assert.Equal(t, 1, matches[0].ID)
	})

	t.Run("two_franchises_two_candidates", func(t *testing.T) {
		matches := snapshot.FindContaining(catalog.KindAnime, catalog.FieldTitle, catalog.FormSlug, "o")
		assert.Greater(t, len(matches), 1)
	})

	t.Run("raw_franchise_substring", func(t *testing.T) {
		matches := snapshot.FindContaining(catalog.KindAnime, catalog.FieldFranchise, catalog.FormExact, "sword_art")
		require.Len(t, matches, 1)
		assert.Equal(t, 1, matches[0].ID)
	})

	t.Run("no_hit", func(t *testing.T) {
		matches := snapshot.FindContaining(catalog.KindAnime, catalog.FieldTitle, catalog.FormSlug, "bleach")
		assert.Empty(t, matches)
	})
}

func TestSnapshot_CharacterNames(t *testing.T) {
	snapshot := fixtureSnapshot()

	t.Run("exact_alias_main", func(t *testing.T) {
		names := snapshot.CharacterNames(catalog.KindNonAnime, 10, catalog.RoleMain, catalog.FormExact, "miku")
		require.Len(t, names, 1)
		assert.Equal(t, []string{"Hatsune", "Miku"}, names[0])
	})

	t.Run("role_mismatch", func(t *testing.T) {
		names := snapshot.CharacterNames(catalog.KindNonAnime, 10, catalog.RoleSupporting, catalog.FormExact, "miku")
		assert.Empty(t, names)
	})

	t.Run("slug_alias", func(t *testing.T) {
		names := snapshot.CharacterNames(catalog.KindAnime, 2, catalog.RoleSupporting, catalog.FormSlug, "sinon")
		require.Len(t, names, 1)
	})
}

func TestSnapshot_Franchise(t *testing.T) {
	snapshot := fixtureSnapshot()

	assert.Equal(t, "sword_art_online", snapshot.FranchiseOf(catalog.KindAnime, 2))
	assert.Equal(t, "", snapshot.FranchiseOf(catalog.KindAnime, 4))

	members := snapshot.FranchiseMembers(catalog.KindAnime, "sword_art_online", 1)
	assert.Equal(t, []int{2}, members)

	assert.Empty(t, snapshot.FranchiseMembers(catalog.KindAnime, "", 1))
}

func TestSnapshot_PopularAndStats(t *testing.T) {
	snapshot := fixtureSnapshot()

	assert.True(t, snapshot.IsPopular(catalog.KindAnime, 1))
	assert.False(t, snapshot.IsPopular(catalog.KindAnime, 2))
	assert.False(t, snapshot.IsPopular(catalog.KindNonAnime, 1))

	stats := snapshot.Stats()
	assert.Equal(t, 4, stats.Entries[catalog.KindAnime])
	assert.Equal(t, 1, stats.Entries[catalog.KindNonAnime])
	assert.Equal(t, 2, stats.Characters[catalog.KindAnime])
	assert.Equal(t, 1, stats.Popular)
	assert.Equal(t, 1, stats.TagRules)
}
