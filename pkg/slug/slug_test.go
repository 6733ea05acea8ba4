// Copyright (c) 2026 Animura. All rights reserved.
// Author: dev@animura.app

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/animura/animura/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple_title", "Sword Art Online", "sword-art-online"},
		{"diacritics_stripped", "Ghost-Slayers-àyàshi", "ghost-slayers-ayashi"},
		{"punctuation_collapsed", "Kannazuki+no!miko", "kannazuki-no-miko"},
		{"mixed_symbols", "Re:Zero − Starting Life", "re-zero-starting-life"},
		{"leading_trailing_trimmed", "...Monogatari...", "monogatari"},
		{"empty", "", ""},
		{"symbols_only", "@!&", ""},
		{"digits_kept", "86", "86"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "sword_art_online", slug.Underscore("Sword Art Online"))
	assert.Equal(t, "k_on", slug.Underscore("K-On!"))
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"spaces_removed", "Gate Keepers", "gatekeepers"},
		{"hyphens_removed", "K-On!", "kon"},
		{"already_compact", "yurucamp", "yurucamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.Compact(tt.input))
		})
	}
}

// Slugification must be stable under repetition so that matcher comparisons
// can be applied to already-slugged catalog columns.
func TestFrom_Idempotent(t *testing.T) {
	inputs := []string{"Sword Art Online", "Kannazuki+no!miko", "iDOLM@STER"}
	for _, input := range inputs {
		once := slug.From(input)
		assert.Equal(t, once, slug.From(once))
	}
}
