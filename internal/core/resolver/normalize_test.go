package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/animura/animura/internal/core/resolver"
)

/*
TestNormalize covers the caption cleanup rules and their idempotence.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		caption string
		want    string
		ok      bool
	}{
		{"lowercases", "Sword Art Online", "sword art online", true},
		{"collapses_whitespace", "  k-on!\t movie ", "k-on! movie", true},
		{"strips_resolution", "Sword Art Online, 1280×800", "sword art online,", true},
		{"keeps_few_digits", "86 episode 2", "86 episode 2", true},
		{"at_sign_becomes_a", "love l@ve", "love lave", true},
		{"unescapes_ampersand", "sweetness &amp; lightning", "sweetness & lightning", true},
		{"empty", "", "", false},
		{"url", "https://example.com/art.png", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolver.Normalize(tt.caption)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)

			if ok {
				again, okAgain := resolver.Normalize(got)
				assert.True(t, okAgain)
				assert.Equal(t, got, again, "normalization must be idempotent")
			}
		})
	}
}

func TestExtractBracketed(t *testing.T) {
	tests := []struct {
		name    string
		caption string
		want    []string
	}{
		{"two_square", "A [B] C [D]", []string{"B", "D"}},
		{"square_before_round", "(round) [square]", []string{"square", "round"}},
		{"unbalanced_square", "A [B", []string{"B"}},
		{"unbalanced_round", "A (B", []string{"B"}},
		{"no_brackets", "plain caption", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.ExtractBracketed(tt.caption))
		})
	}
}
