// Package question finds question sentences inside raw OCR text.
//
// Two policies exist: ExtractAll collects every Latin-style question in a
// text block (used by the polling watcher), while ExtractFirst applies an
// Arabic-first fallback chain that always yields a candidate for non-empty
// input (used by the interactive flows).
package question

import (
	"regexp"
	"strings"
)

var (
	// A capitalised run of at least 4 characters ending with a Latin '?'.
	latinAll = regexp.MustCompile(`[A-Z][^?]{3,}?\?`)

	// First runs of at least 2 characters ending with the Arabic or Latin
	// question mark, for the single-question fallback chain.
	arabicFirst = regexp.MustCompile(`[^؟]{2,}؟`)
	latinFirst  = regexp.MustCompile(`[^?]{2,}\?`)
)

// ExtractAll returns the distinct Latin question sentences in text, in order
// of first appearance. Later verbatim duplicates are dropped.
func ExtractAll(text string) []string {
	matches := latinAll.FindAllString(text, -1)
	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		q := strings.TrimSpace(m)
		if seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
	}
	return out
}

// ExtractFirst returns the single best question candidate from text: the
// first Arabic-terminated run, else the first Latin-terminated run, else the
// whole trimmed text verbatim. The result is empty only when text is blank.
func ExtractFirst(text string) string {
	if m := arabicFirst.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	if m := latinFirst.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	return strings.TrimSpace(text)
}
