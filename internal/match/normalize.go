package match

import (
	"strings"
	"unicode"
)

// qualifierSuffixes are dropped by FoldStripped, longest first. They are the
// words commonly appended to field, element and type names.
var qualifierSuffixes = []string{"element", "value", "type", "ids", "id"}

// Tokens splits a Go identifier, an element name or a qualified type name
// into lower-cased words. Separators are '_', '-', '.', '/' and spaces.
// An acronym ends before the upper-case letter that starts the next word:
// "USPrice" gives ["us", "price"] and "itemprice" stays one word.
func Tokens(s string) []string {
	var (
		words []string
		word  []rune
	)

	flush := func() {
		if len(word) > 0 {
			words = append(words, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		word = append(word, r)
	}

	flush()

	return words
}

// Fold reduces a name to the lower-cased concatenation of its words, so that
// "ship_to", "shipTo" and "ShipTo" compare equal.
func Fold(s string) string {
	return strings.Join(Tokens(s), "")
}

// FoldStripped is Fold without a trailing qualifier word such as "Type" or
// "ID". A name made of the qualifier alone is kept.
func FoldStripped(s string) string {
	words := Tokens(s)
	if len(words) > 1 {
		last := words[len(words)-1]
		for _, q := range qualifierSuffixes {
			if last == q {
				words = words[:len(words)-1]
				break
			}
		}
	}

	return strings.Join(words, "")
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', '/', ' ':
		return true
	default:
		return false
	}
}

// startsWord reports whether runes[i] begins a new word: a lower to upper
// transition, or the last capital of an acronym followed by a lower-case rune.
func startsWord(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	prev := runes[i-1]
	if !unicode.IsUpper(prev) {
		return !isSeparator(prev)
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
