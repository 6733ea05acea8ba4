package resolver

import (
	"fmt"

	"github.com/animura/animura/internal/core/catalog"
	"github.com/animura/animura/pkg/slug"
)

// Tier is the accuracy class of a strategy; direct-tier strategies run
// before any heuristic one.
type Tier int

const (
	TierDirect Tier = iota + 1
	TierHeuristic
)

// TagShape classifies which of the entry's names a winning strategy turns
// into the visible tag.
type TagShape int

const (
	// ShapeTitle uses the matched entry's own title (localized title
	// preferred when present).
	ShapeTitle TagShape = iota + 1
	// ShapeSynonym matched through the synonym array; tags render from the
	// entry's titles like ShapeTitle.
	ShapeSynonym
	// ShapeFranchise uses the franchise name.
	ShapeFranchise
	// ShapeFranchiseOrTitle prefers the franchise name, falling back to the
	// English then canonical title.
	ShapeFranchiseOrTitle
)

// Strategy identifies one matching rule of the cascade. Each strategy
// carries its tier, trust class, tag shape and lookup parameters as
// associated data, so detection and tag shaping can never drift apart.
type Strategy int

const (
	StrategyUnknown Strategy = iota
	StrategyTitleExact
	StrategyTitleSlug
	StrategyEnglishExact
	StrategyEnglishSlug
	StrategySynonymExact
	StrategySynonymSlug
	StrategyTitleCompact
	StrategyEnglishCompact
	StrategyFranchiseCompact
	StrategySynonymCompact
	StrategyTitleSlugSubstring
	StrategyEnglishSlugSubstring
	StrategySynonymSubstring
	StrategySynonymSlugSubstring
	StrategyFranchiseSubstring
)

// renderNeedle prepares the candidate text for one haystack rendering.
type renderNeedle func(text string) string

func renderExact(text string) string   { return text }
func renderSlug(text string) string    { return slug.From(text) }
func renderCompact(text string) string { return slug.Compact(text) }

// renderUnderscore matches the underscore-separated franchise keys.
func renderUnderscore(text string) string { return slug.Underscore(text) }

type strategyInfo struct {
	name  string
	tier  Tier
	shape TagShape

	field catalog.Field
	// form is the haystack rendering the lookup compares against.
	form   catalog.Form
	render renderNeedle

	// substring lookups discard ambiguous (>1 candidate) results.
	substring bool
	// requireUnique discards equality results unless exactly one row matched.
	requireUnique bool
	// collapseFranchise folds equality results to one entry per franchise
	// before the uniqueness check, so a family of sequels counts as a
	// single candidate rather than an ambiguity.
	collapseFranchise bool
	// lowConfidence matches pass the trust gate only for popular entries.
	lowConfidence bool
}

var strategyTable = map[Strategy]strategyInfo{
	StrategyTitleExact: {
		name: "title_exact", tier: TierDirect, shape: ShapeTitle,
		field: catalog.FieldTitle, form: catalog.FormExact, render: renderExact,
	},
	StrategyTitleSlug: {
		name: "title_slug", tier: TierDirect, shape: ShapeTitle,
		field: catalog.FieldTitle, form: catalog.FormSlug, render: renderSlug,
	},
	StrategyEnglishExact: {
		name: "english_exact", tier: TierDirect, shape: ShapeTitle,
		field: catalog.FieldEnglish, form: catalog.FormExact, render: renderExact,
	},
	StrategyEnglishSlug: {
		name: "english_slug", tier: TierDirect, shape: ShapeTitle,
		field: catalog.FieldEnglish, form: catalog.FormSlug, render: renderSlug,
	},
	StrategySynonymExact: {
		name: "synonym_exact", tier: TierHeuristic, shape: ShapeSynonym,
		field: catalog.FieldSynonyms, form: catalog.FormExact, render: renderExact,
	},
	StrategySynonymSlug: {
		name: "synonym_slug", tier: TierHeuristic, shape: ShapeSynonym,
		field: catalog.FieldSynonyms, form: catalog.FormSlug, render: renderSlug,
	},
	StrategyTitleCompact: {
		name: "title_dehyphenated", tier: TierHeuristic, shape: ShapeTitle,
		field: catalog.FieldTitle, form: catalog.FormCompact, render: renderCompact,
		requireUnique: true,
	},
	StrategyEnglishCompact: {
		name: "english_dehyphenated", tier: TierHeuristic, shape: ShapeTitle,
		field: catalog.FieldEnglish, form: catalog.FormCompact, render: renderCompact,
		requireUnique: true,
	},
	StrategyFranchiseCompact: {
		name: "franchise_dehyphenated", tier: TierHeuristic, shape: ShapeFranchise,
		field: catalog.FieldFranchise, form: catalog.FormCompact, render: renderCompact,
		requireUnique: true, collapseFranchise: true,
	},
	StrategySynonymCompact: {
		name: "synonym_dehyphenated", tier: TierHeuristic, shape: ShapeSynonym,
		field: catalog.FieldSynonyms, form: catalog.FormCompact, render: renderCompact,
		requireUnique: true, collapseFranchise: true, lowConfidence: true,
	},
	StrategyTitleSlugSubstring: {
		name: "title_slug_substring", tier: TierHeuristic, shape: ShapeTitle,
		field: catalog.FieldTitle, form: catalog.FormSlug, render: renderSlug,
		substring: true, lowConfidence: true,
	},
	StrategyEnglishSlugSubstring: {
		name: "english_slug_substring", tier: TierHeuristic, shape: ShapeTitle,
		field: catalog.FieldEnglish, form: catalog.FormSlug, render: renderSlug,
		substring: true, lowConfidence: true,
	},
	StrategySynonymSubstring: {
		name: "synonym_substring", tier: TierHeuristic, shape: ShapeFranchiseOrTitle,
		field: catalog.FieldSynonyms, form: catalog.FormExact, render: renderSlug,
		substring: true, lowConfidence: true,
	},
	StrategySynonymSlugSubstring: {
		name: "synonym_slug_substring", tier: TierHeuristic, shape: ShapeFranchiseOrTitle,
		field: catalog.FieldSynonyms, form: catalog.FormSlug, render: renderSlug,
		substring: true, lowConfidence: true,
	},
	StrategyFranchiseSubstring: {
		name: "franchise_substring", tier: TierHeuristic, shape: ShapeFranchise,
		field: catalog.FieldFranchise, form: catalog.FormExact, render: renderUnderscore,
		substring: true, lowConfidence: true,
	},
}

// directCascade and heuristicCascade fix the evaluation order. The order
// is load-bearing: strategies run from highest accuracy to lowest and the
// first hit wins.
var directCascade = []Strategy{
	StrategyTitleExact,
	StrategyTitleSlug,
	StrategyEnglishExact,
	StrategyEnglishSlug,
}

var heuristicCascade = []Strategy{
	StrategySynonymExact,
	StrategySynonymSlug,
	StrategyTitleCompact,
	StrategyEnglishCompact,
	StrategyFranchiseCompact,
	StrategySynonymCompact,
	StrategyTitleSlugSubstring,
	StrategyEnglishSlugSubstring,
	StrategySynonymSubstring,
	StrategySynonymSlugSubstring,
	StrategyFranchiseSubstring,
}

func (strategy Strategy) info() strategyInfo {
	return strategyTable[strategy]
}

func (strategy Strategy) String() string {
	if info, ok := strategyTable[strategy]; ok {
		return info.name
	}
	return "unknown"
}

// Tier returns the strategy's accuracy class.
func (strategy Strategy) Tier() Tier {
	return strategyTable[strategy].tier
}

// Shape returns the strategy's tag-shape classification.
func (strategy Strategy) Shape() TagShape {
	return strategyTable[strategy].shape
}

// LowConfidence reports whether the trust gate applies to this strategy.
func (strategy Strategy) LowConfidence() bool {
	return strategyTable[strategy].lowConfidence
}

// The cascade and the shape classification must cover exactly the same
// strategies; a mismatch means tag shaping would drift from detection, so
// it aborts startup rather than mis-tag requests.
func init() {
	cascade := len(directCascade) + len(heuristicCascade)
	if cascade != len(strategyTable) {
		panic(fmt.Sprintf("resolver: cascade lists %d strategies, shape table classifies %d", cascade, len(strategyTable)))
	}
	seen := make(map[Strategy]struct{})
	for _, strategy := range append(append([]Strategy{}, directCascade...), heuristicCascade...) {
		if _, ok := strategyTable[strategy]; !ok {
			panic(fmt.Sprintf("resolver: strategy %d has no shape classification", strategy))
		}
		if _, dup := seen[strategy]; dup {
			panic(fmt.Sprintf("resolver: strategy %q appears twice in the cascade", strategy))
		}
		seen[strategy] = struct{}{}
	}
}
