package resolver

import "strings"

// maxRetryDepth caps the splitter recursion. Every retry shortens or
// partitions the text, but pathological captions of alternating delimiters
// could still branch widely; past the ceiling the candidate is a NoMatch.
const maxRetryDepth = 8

var splitDelimiters = []string{",", "/", " x ", "-", ":"}

var splitWords = []string{"from", "and", "or"}

// Match normalizes the candidate text, runs the cascade and, on failure,
// retries transformed and split variants. Returns nil when everything is
// exhausted.
func (matcher *Matcher) Match(text string) *Match {
	return matcher.match(text, 0)
}

func (matcher *Matcher) match(text string, depth int) *Match {
	if depth > maxRetryDepth {
		return nil
	}

	normalized, ok := Normalize(text)
	if !ok {
		return nil
	}
	if match := matcher.matchOnce(normalized); match != nil {
		return match
	}
	return matcher.retry(normalized, depth)
}

/*
retry mutates and splits an unmatched candidate and resubmits it, first
success wins. Transformations apply in sequence, so a later split sees the
earlier replacements.
*/
func (matcher *Matcher) retry(text string, depth int) *Match {
	if strings.Contains(text, "&") {
		text = strings.ReplaceAll(text, "&", "and")
		if match := matcher.match(text, depth+1); match != nil {
			return match
		}
	}

	if strings.Contains(text, "series") {
		text = strings.ReplaceAll(text, "series", "")
		if match := matcher.match(text, depth+1); match != nil {
			return match
		}
	}

	// Two titles are often joined by a single delimiter; try each side.
	for _, delimiter := range splitDelimiters {
		if strings.Count(text, delimiter) != 1 {
			continue
		}
		for _, part := range strings.Split(text, delimiter) {
			if match := matcher.match(part, depth+1); match != nil {
				return match
			}
		}
	}

	for _, word := range splitWords {
		if tokenCount(text, word) != 1 {
			continue
		}
		for _, part := range strings.Split(text, word) {
			if match := matcher.match(part, depth+1); match != nil {
				return match
			}
		}
	}

	return nil
}

// tokenCount counts occurrences of word as a standalone token.
func tokenCount(text, word string) int {
	count := 0
	for _, token := range strings.Fields(text) {
		if token == word {
			count++
		}
	}
	return count
}
