// Package slug generates GitHub-compatible anchor slugs from heading
// text, used for TOC anchors and section output filenames.
package slug

import (
	"strings"
	"unicode"
)

// Make converts heading text to a base slug.
// Algorithm (GitHub-compatible):
//  1. Convert to lowercase
//  2. Remove punctuation (except hyphens and underscores)
//  3. Replace spaces with hyphens
//  4. Collapse multiple hyphens
//  5. Trim leading/trailing hyphens
func Make(text string) string {
	var buf strings.Builder
	buf.Grow(len(text))

	prevHyphen := false

	for _, ch := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(ch) || unicode.IsNumber(ch):
			buf.WriteRune(ch)
			prevHyphen = false
		case ch == '-' || ch == '_':
			buf.WriteRune(ch)
			prevHyphen = (ch == '-')
		case ch == ' ':
			// Replace space with hyphen, but avoid consecutive hyphens
			if !prevHyphen && buf.Len() > 0 {
				_ = buf.WriteByte('-') // strings.Builder.WriteByte never fails
				prevHyphen = true
			}
		}
		// Other punctuation is silently dropped
	}

	result := buf.String()

	// Trim leading/trailing hyphens
	result = strings.Trim(result, "-")

	// Collapse multiple consecutive hyphens
	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}

	return result
}

// Deduper generates unique slugs by appending -1, -2, ... suffixes when
// the same base slug repeats, matching GitHub's duplicate-heading
// behavior. The zero value is not usable; call NewDeduper.
type Deduper struct {
	seenCounts map[string]int
}

// NewDeduper creates an empty Deduper.
func NewDeduper() *Deduper {
	return &Deduper{
		seenCounts: make(map[string]int),
	}
}

// Take converts text to a slug, suffixing it when the base slug has
// already been handed out by this Deduper.
func (d *Deduper) Take(text string) string {
	base := Make(text)

	count := d.seenCounts[base]
	d.seenCounts[base] = count + 1

	if count == 0 {
		return base
	}
	return base + "-" + itoa(count)
}

// itoa is a simple int-to-string without importing strconv.
func itoa(num int) string {
	if num == 0 {
		return "0"
	}
	var buf [20]byte
	idx := len(buf)
	for num > 0 {
		idx--
		buf[idx] = byte('0' + num%10)
		num /= 10
	}
	return string(buf[idx:])
}
