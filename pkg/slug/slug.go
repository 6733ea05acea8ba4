// Copyright (c) 2026 Animura. All rights reserved.
// Author: dev@animura.app

// Package slug normalizes arbitrary Unicode strings into ASCII slugs.
//
// # Usage
//
// Slugs are the loose-comparison currency of the title matcher: every catalog
// title, synonym and caption fragment is slugified before fuzzy comparison
// ("Ghost-Slayers-àyàshi" and "ghost slayers ayashi" collapse to the same
// slug). This package handles normalization, accent removal, and character
// sanitization.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into an ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Replaces non-alphanumeric characters with hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
func From(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Replace whitespace and special chars with hyphens
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	// 4. Clean up hyphenation
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// Underscore slugifies s and joins tokens with underscores instead of
// hyphens. Franchise keys in the reference catalog use this form
// ("sword_art_online").
func Underscore(s string) string {
	return strings.ReplaceAll(From(s), "-", "_")
}

// Compact slugifies s and strips the separators entirely, yielding one
// contiguous token ("K-On!" → "kon"). Used by the de-hyphenated equality
// matchers where spacing in user captions is unreliable.
func Compact(s string) string {
	return strings.ReplaceAll(From(s), "-", "")
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
