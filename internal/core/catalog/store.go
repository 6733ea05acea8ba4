package catalog

import "context"

/*
Store is the read contract consumed by the detection engine. Callers render
the needle into the haystack's form themselves (pkg/slug); the store only
compares.

All methods are pure lookups over an immutable data set and are safe for
concurrent use.
*/
type Store interface {
	// FindEqual returns entries whose field, rendered in form, equals the
	// needle. Preview rows (titles containing "PV") are excluded from exact
	// and slug equality on the title columns.
	FindEqual(kind Kind, field Field, form Form, needle string) []Entry

	// FindContaining returns entries whose field, rendered in form, contains
	// the needle as a substring. Results are collapsed to one entry per
	// franchise so a family of sequels counts as a single candidate.
	FindContaining(kind Kind, field Field, form Form, needle string) []Entry

	// IsPopular reports membership in the curated well-known set.
	IsPopular(kind Kind, entryID int) bool

	// CharacterNames returns the name arrays of characters under the given
	// entry and role with an alias equal to the needle in the given form.
	CharacterNames(kind Kind, entryID int, role Role, form Form, needle string) [][]string

	// FranchiseOf returns the entry's franchise key, or "" if it has none.
	FranchiseOf(kind Kind, entryID int) string

	// FranchiseMembers returns the ids of all other entries sharing the
	// franchise, excluding exceptID.
	FranchiseMembers(kind Kind, franchise string, exceptID int) []int

	// TagRules returns the keyword tagging rules in evaluation order.
	TagRules() []TagRule
}

// Source bulk-loads reference data for snapshot construction.
type Source interface {
	LoadEntries(context context.Context, kind Kind) ([]Entry, error)
	LoadCharacters(context context.Context, kind Kind) ([]Character, error)
	LoadPopular(context context.Context) ([]Popular, error)
	LoadTagRules(context context.Context) ([]TagRule, error)
}
