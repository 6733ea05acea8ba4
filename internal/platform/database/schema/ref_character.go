package schema

// RefCharacterTable represents a character roster scoped to one title catalog
// ('ref.animecharacter' / 'ref.nonanimecharacter').
type RefCharacterTable struct {
	Table     string
	ID        string
	EntryID   string
	NameArray string
	Role      string
}

// RefAnimeCharacter is the schema definition for ref.animecharacter
var RefAnimeCharacter = RefCharacterTable{
	Table:     "ref.animecharacter",
	ID:        "id",
	EntryID:   "entryid",
	NameArray: "namearray",
	Role:      "role",
}

// RefNonAnimeCharacter is the schema definition for ref.nonanimecharacter
var RefNonAnimeCharacter = RefCharacterTable{
	Table:     "ref.nonanimecharacter",
	ID:        "id",
	EntryID:   "entryid",
	NameArray: "namearray",
	Role:      "role",
}

func (t RefCharacterTable) Columns() []string {
	return []string{t.ID, t.EntryID, t.NameArray, t.Role}
}
