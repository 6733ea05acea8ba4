/*
Package resolver implements the title detection and tag resolution engine:
given a raw image caption, it decides which catalogued entity the caption
refers to, which character appears, which keyword rules apply, and renders
everything into visible and invisible tag sets.

The engine is a pure function of (caption, catalog snapshot); it performs
no I/O of its own.
*/
package resolver

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	urlPattern        = regexp.MustCompile(`(?i)^(?:http|ftp)s?://(?:\S+\.\S+|localhost)(?::\d+)?(?:[/?]\S*)?$`)
	resolutionPattern = regexp.MustCompile(`(\d{2,4}x\d{2,4})+`)
)

/*
Normalize cleans a caption candidate for matching. It lowercases, strips
resolution noise such as "1280×800" when the text is digit-heavy, maps a
stylized "@" back to "a", unescapes the HTML ampersand and collapses
whitespace.

The empty string and plain URLs carry no title at all; ok is false for
those. Normalize is idempotent.
*/
func Normalize(caption string) (normalized string, ok bool) {
	if caption == "" {
		return "", false
	}
	if urlPattern.MatchString(caption) {
		return "", false
	}

	text := strings.ToLower(caption)

	if digitCount(text) > 4 {
		text = strings.ReplaceAll(text, "×", "x")
		text = resolutionPattern.ReplaceAllString(text, "")
	}

	text = strings.ReplaceAll(text, "@", "a")
	text = strings.ReplaceAll(text, "&amp;", "&")

	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return "", false
	}
	return text, true
}

func digitCount(text string) int {
	count := 0
	for _, r := range text {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

var (
	squareBracketPattern = regexp.MustCompile(`\[(.*?)\]`)
	roundBracketPattern  = regexp.MustCompile(`\((.*?)\)`)
)

/*
ExtractBracketed returns every substring enclosed in square or round
brackets, square matches first. A caption with an opening bracket but no
closer gets the closer synthesized and is scanned once more, so truncated
captions like "Asuna [Sword Art Online" still yield their hint.
*/
func ExtractBracketed(caption string) []string {
	var found []string
	for _, pattern := range []*regexp.Regexp{squareBracketPattern, roundBracketPattern} {
		for _, match := range pattern.FindAllStringSubmatch(caption, -1) {
			found = append(found, match[1])
		}
	}
	if len(found) > 0 {
		return found
	}

	if strings.Contains(caption, "[") && !strings.Contains(caption, "]") {
		return ExtractBracketed(caption + "]")
	}
	if strings.Contains(caption, "(") && !strings.Contains(caption, ")") {
		return ExtractBracketed(caption + ")")
	}
	return nil
}
