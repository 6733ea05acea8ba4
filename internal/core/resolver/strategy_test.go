package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestStrategyTableCoversCascade locks the invariant the init check enforces:
detection order and tag-shape classification describe exactly the same
strategy set.
*/
func TestStrategyTableCoversCascade(t *testing.T) {
	assert.Equal(t, len(strategyTable), len(directCascade)+len(heuristicCascade))

	for _, strategy := range append(append([]Strategy{}, directCascade...), heuristicCascade...) {
		info, ok := strategyTable[strategy]
		require.True(t, ok, "strategy %q missing from table", strategy)
		assert.NotZero(t, info.shape, "strategy %q has no tag shape", strategy)
		assert.NotZero(t, info.tier, "strategy %q has no tier", strategy)
		assert.NotNil(t, info.render, "strategy %q has no needle renderer", strategy)
	}
}

func TestStrategyTiers(t *testing.T) {
	for _, strategy := range directCascade {
		assert.Equal(t, TierDirect, strategy.Tier())
		assert.False(t, strategy.LowConfidence(), "direct strategies are always trusted")
	}
	for _, strategy := range heuristicCascade {
		assert.Equal(t, TierHeuristic, strategy.Tier())
	}
}

// Every substring strategy is trust-gated; so is de-hyphenated synonym
// equality, the loosest of the equality rules.
func TestLowConfidenceSet(t *testing.T) {
	var gated []Strategy
	for _, strategy := range heuristicCascade {
		if strategy.LowConfidence() {
			gated = append(gated, strategy)
		}
	}

	assert.ElementsMatch(t, []Strategy{
		StrategySynonymCompact,
		StrategyTitleSlugSubstring,
		StrategyEnglishSlugSubstring,
		StrategySynonymSubstring,
		StrategySynonymSlugSubstring,
		StrategyFranchiseSubstring,
	}, gated)

	for _, strategy := range gated {
		if strategy != StrategySynonymCompact {
			assert.True(t, strategy.info().substring)
		}
	}
}
