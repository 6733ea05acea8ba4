package catalog

// Kind identifies which of the two disjoint title catalogs an entry belongs to.
type Kind string

const (
	KindAnime    Kind = "anime"
	KindNonAnime Kind = "nonanime"
)

// Kinds lists the catalogs in detection order. Non-anime sources (games,
// vocaloids etc) are checked first so a game title is not shadowed by an
// anime adaptation of the same name.
var Kinds = []Kind{KindNonAnime, KindAnime}

// Field names a matchable attribute of an entry.
type Field string

const (
	FieldTitle     Field = "title"
	FieldEnglish   Field = "english"
	FieldFranchise Field = "franchise"
	FieldSynonyms  Field = "synonyms"
)

// Form selects which rendering of a field a lookup compares against.
type Form string

const (
	// FormExact is the lowercased verbatim value.
	FormExact Form = "exact"
	// FormSlug is the hyphen-separated slug (diacritics stripped).
	FormSlug Form = "slug"
	// FormCompact is the slug with separators removed entirely, so
	// "K-On!" and "KOn" compare equal.
	FormCompact Form = "compact"
)

// Entry is a reference-store row in one of the two title catalogs.
type Entry struct {
	ID        int      `json:"id"`
	Kind      Kind     `json:"kind"`
	Title     string   `json:"title"`
	English   *string  `json:"title_english"`
	Localized *string  `json:"title_localized"`
	Synonyms  []string `json:"synonyms"`
	Franchise *string  `json:"franchise"`
}

// Role classifies a character within its entry. Main-role matches are
// preferred over supporting-role matches during detection.
type Role string

const (
	RoleMain       Role = "Main"
	RoleSupporting Role = "Supporting"
)

// Character is a named figure scoped to exactly one catalog entry. Names
// holds the canonical name plus nicknames; the full array joined with an
// underscore is the rendered character tag.
type Character struct {
	ID      int      `json:"id"`
	Kind    Kind     `json:"kind"`
	EntryID int      `json:"entry_id"`
	Names   []string `json:"names"`
	Role    Role     `json:"role"`
}

// Popular marks one entry as a member of the curated well-known set.
type Popular struct {
	Kind    Kind `json:"kind"`
	EntryID int  `json:"entry_id"`
}

// RuleMode selects how a tag rule's keywords combine.
type RuleMode string

const (
	ModeAny RuleMode = "ANY"
	ModeAll RuleMode = "ALL"
)

// TagRule contributes its tags when its keywords are found in a caption,
// independent of title detection.
type TagRule struct {
	ID        int      `json:"id"`
	Mode      RuleMode `json:"mode"`
	Keywords  []string `json:"keywords"`
	Visible   []string `json:"visible_tags"`
	Invisible []string `json:"invisible_tags"`
}
