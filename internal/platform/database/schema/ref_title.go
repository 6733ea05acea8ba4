// Package schema centralizes table and column identifiers used to build SQL
// queries, so renames touch exactly one file.
package schema

// RefTitleTable represents one of the two disjoint title catalogs
// ('ref.anime' and 'ref.nonanime'); they share a single shape.
type RefTitleTable struct {
	Table         string
	ID            string
	Title         string
	TitleEnglish  string
	TitleRussian  string
	TitleSynonyms string
	Franchise     string
}

// RefAnime is the schema definition for ref.anime
var RefAnime = RefTitleTable{
	Table:         "ref.anime",
	ID:            "id",
	Title:         "title",
	TitleEnglish:  "titleenglish",
	TitleRussian:  "titlerussian",
	TitleSynonyms: "titlesynonyms",
	Franchise:     "franchise",
}

// RefNonAnime is the schema definition for ref.nonanime (games, vtubers,
// non-anime franchises).
var RefNonAnime = RefTitleTable{
	Table:         "ref.nonanime",
	ID:            "id",
	Title:         "title",
	TitleEnglish:  "titleenglish",
	TitleRussian:  "titlerussian",
	TitleSynonyms: "titlesynonyms",
	Franchise:     "franchise",
}

func (t RefTitleTable) Columns() []string {
	return []string{t.ID, t.Title, t.TitleEnglish, t.TitleRussian, t.TitleSynonyms, t.Franchise}
}
