package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/animura/animura/internal/core/catalog"
	"github.com/animura/animura/internal/core/resolver"
)

/*
TestApplyRules covers the ANY/ALL firing modes and the contribution
cleanup.
*/
func TestApplyRules(t *testing.T) {
	rules := []catalog.TagRule{
		{ID: 1, Mode: catalog.ModeAll, Keywords: []string{"maid", "cafe"}, Visible: []string{"Maid"}, Invisible: []string{"MaidCafe"}},
		{ID: 2, Mode: catalog.ModeAny, Keywords: []string{"neko", "catgirl"}, Invisible: []string{"Neko", ""}},
	}

	tests := []struct {
		name    string
		caption string
		want    []string
	}{
		{"all_requires_every_keyword", "maid outfit", nil},
		{"all_fires_with_both", "maid at the cafe!", []string{"Maid", "MaidCafe"}},
		{"any_fires_with_one", "sleepy neko", []string{"Neko"}},
		{"both_rules_fire", "neko maid cafe", []string{"Maid", "MaidCafe", "Neko"}},
		{"punctuation_ignored", "neko... (really)", []string{"Neko"}},
		{"no_keywords_no_tags", "ordinary landscape", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.ApplyRules(tt.caption, rules)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyRules_Dedupes(t *testing.T) {
	rules := []catalog.TagRule{
		{ID: 1, Mode: catalog.ModeAny, Keywords: []string{"neko"}, Invisible: []string{"Neko"}},
		{ID: 2, Mode: catalog.ModeAny, Keywords: []string{"cat"}, Invisible: []string{"Neko"}},
	}

	got := resolver.ApplyRules("neko cat", rules)
	assert.Equal(t, []string{"Neko"}, got)
}
