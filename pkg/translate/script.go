// Package translate implements the target-script detection the
// translation cache's self-purge rule depends on: a cached translation
// that contains no Han/Hiragana/Katakana/Hangul character is assumed to
// be an untranslated passthrough and is discarded on read.
package translate

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

var targetScript = rangetable.Merge(unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)

// HasTargetScript reports whether s contains at least one rune from the
// CJK target scripts the translation cache is meant to hold.
func HasTargetScript(s string) bool {
	for _, r := range s {
		if unicode.Is(targetScript, r) {
			return true
		}
	}
	return false
}
