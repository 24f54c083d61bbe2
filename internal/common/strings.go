package common

import (
	"unicode"
	"unicode/utf8"
)

// UnknownStr is the String() value of enum members without a name.
const UnknownStr = "unknown"

// LowerFirst lower-cases the first rune of s and leaves the rest untouched.
// "Price" becomes "price", "URL" becomes "uRL".
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}

// IsNCName reports whether s is a valid XML non-colonized name,
// i.e. usable as a local element name without a namespace prefix.
func IsNCName(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 {
			if !isNameStart(r) {
				return false
			}

			continue
		}

		if !isNameStart(r) && r != '-' && r != '.' && !unicode.IsDigit(r) &&
			!unicode.Is(unicode.Mn, r) && !unicode.Is(unicode.Mc, r) && r != '·' {
			return false
		}
	}

	return true
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
