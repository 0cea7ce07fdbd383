// Package suggest extracts structured code suggestions from a markdown
// review and reconciles them back into the reviewed file for diff display.
package suggest

import (
	"regexp"
	"strings"

	"github.com/deepakkumardewani/review-pilot/internal/core"
)

// Matches a **Current Code:** fenced block followed by a **Suggested Fix:**
// fenced block. The language tag on the fence is irrelevant for extraction.
var suggestionPairRegex = regexp.MustCompile(
	"(?s)\\*\\*Current Code:\\*\\*\\s*```[^\\n]*\\n(.*?)```\\s*\\*\\*Suggested Fix:\\*\\*\\s*```[^\\n]*\\n(.*?)```",
)

// ExtractPairs collects every Current Code / Suggested Fix pair from the
// review markdown, in document order. Pairs with an empty side or with
// identical sides (no-op suggestions) are discarded.
func ExtractPairs(review string) []core.SuggestionPair {
	matches := suggestionPairRegex.FindAllStringSubmatch(review, -1)

	var pairs []core.SuggestionPair
	for _, m := range matches {
		current := strings.TrimSpace(m[1])
		suggested := strings.TrimSpace(m[2])
		if current == "" || suggested == "" || current == suggested {
			continue
		}
		pairs = append(pairs, core.SuggestionPair{Current: current, Suggested: suggested})
	}
	return pairs
}

// ApplySuggestions applies every extracted pair sequentially against a
// running copy of the original content and returns the result. Model output
// rarely reproduces source whitespace byte-exactly, so matching is
// whitespace-tolerant while the splice respects the original line structure.
// Pairs that cannot be located are skipped; with zero valid pairs the
// original content is returned unchanged.
func ApplySuggestions(review, original string) string {
	pairs := ExtractPairs(review)
	if len(pairs) == 0 {
		return original
	}

	modified := original
	for _, pair := range pairs {
		modified = applyPair(modified, pair)
	}
	return modified
}

func applyPair(content string, pair core.SuggestionPair) string {
	normalized := normalizeWhitespace(content)
	normalizedSnippet := normalizeWhitespace(pair.Current)

	if strings.Contains(normalized, normalizedSnippet) {
		if spliced, ok := spliceLines(content, pair); ok {
			return spliced
		}
	}

	// Last resort: byte-exact replacement of the first occurrence.
	if strings.Contains(content, pair.Current) {
		return strings.Replace(content, pair.Current, pair.Suggested, 1)
	}

	return content
}

// spliceLines re-locates the whitespace-normalized snippet in the original
// line structure: the span starts at the first line from which the rest of
// the document, once normalized, begins with the snippet, and it spans as
// many physical lines as the snippet itself has.
func spliceLines(content string, pair core.SuggestionPair) (string, bool) {
	lines := strings.Split(content, "\n")
	snippetLineCount := len(strings.Split(pair.Current, "\n"))
	normalizedSnippet := normalizeWhitespace(pair.Current)

	for i := range lines {
		if i+snippetLineCount > len(lines) {
			break
		}
		rest := strings.Join(lines[i:], "\n")
		if !strings.HasPrefix(normalizeWhitespace(rest), normalizedSnippet) {
			continue
		}

		replacement := strings.Split(pair.Suggested, "\n")
		spliced := make([]string, 0, len(lines)-snippetLineCount+len(replacement))
		spliced = append(spliced, lines[:i]...)
		spliced = append(spliced, replacement...)
		spliced = append(spliced, lines[i+snippetLineCount:]...)
		return strings.Join(spliced, "\n"), true
	}

	return "", false
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
