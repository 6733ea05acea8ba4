package schema

// RefPopularTable represents the popularity allowlist ('ref.popular').
// Membership gates the low-confidence matching strategies.
type RefPopularTable struct {
	Table   string
	Kind    string
	EntryID string
}

// RefPopular is the schema definition for ref.popular
var RefPopular = RefPopularTable{
	Table:   "ref.popular",
	Kind:    "kind",
	EntryID: "entryid",
}

func (t RefPopularTable) Columns() []string {
	return []string{t.Kind, t.EntryID}
}
