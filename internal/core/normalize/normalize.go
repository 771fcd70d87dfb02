// Package normalize cleans scraped cause list fields before they are stored
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Strip control and zero-width characters
// 3 Unicode NFKC normalization
// 4 Width fold fullwidth to ASCII
// 5 Remove combining marks
// 6 Collapse whitespace to single spaces and trim
//
// Court portals emit copy-pasted text with fullwidth digits, stray BOMs, and
// non-breaking spaces; parties and judge names must round-trip the same bytes
// every sweep or the change detector reports phantom edits
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
		)
	},
}

// Field returns the canonical single-line form of a scraped display field
// (party names, judge names, hearing types)
func Field(s string) string {
	if s == "" {
		return ""
	}

	s = Sanitize(s)
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return collapseSpaces(ns)
}

// CaseNumber returns the canonical form of a case number: Field plus
// uppercasing, so "wp 12345/2024" and "WP  12345/2024" key the same row
func CaseNumber(s string) string {
	return strings.ToUpper(Field(s))
}

// CourtType trims and collapses a court type label without touching case
func CourtType(s string) string {
	return Field(s)
}

// collapseSpaces converts whitespace runs (including newlines) to a single
// ASCII space and trims the edges. Listing fields are single-line values
func collapseSpaces(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inWS := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inWS = true
			continue
		}
		if inWS && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inWS = false
		b.WriteRune(r)
	}
	return b.String()
}
