// Package sanitize turns markup-bearing source text into plain text.
// It is a best-effort normalizer, not a validating parser: malformed
// markup passes through the regex stripping without error.
package sanitize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	tagRe     = regexp.MustCompile(`<[^>]*>`)
	numRefRe  = regexp.MustCompile(`&#(\d+);`)
	spacesRe  = regexp.MustCompile(`\s+`)
	entityMap = []struct{ from, to string }{
		{"&amp;", "&"},
		{"&lt;", "<"},
		{"&gt;", ">"},
		{"&quot;", `"`},
		{"&#39;", "'"},
	}
)

// StripHTML removes tags, decodes the five standard named entities
// plus numeric character references, collapses whitespace runs to a
// single space and trims the result.
func StripHTML(text string) string {
	text = tagRe.ReplaceAllString(text, "")
	for _, e := range entityMap {
		text = strings.ReplaceAll(text, e.from, e.to)
	}
	text = numRefRe.ReplaceAllStringFunc(text, func(ref string) string {
		n, err := strconv.Atoi(ref[2 : len(ref)-1])
		if err != nil {
			return ref
		}
		return string(rune(n))
	})
	text = spacesRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
