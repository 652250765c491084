// Package match decides whether a free-form, possibly Hinglish product
// reference identifies a catalog item. It is pure: no state, no I/O.
package match

import (
	"strings"

	"vmitra/engine/lexicon"
)

// Matches reports whether userText identifies catalogName.
//
// The substring test is symmetric: merchants type partial names ("chini"
// for "Chini Packet") and catalog names may be more verbose than speech.
// The lexicon bridge is directional: the local term must appear in the
// user text and its canonical equivalent in the catalog name.
//
// Empty user text never matches; "" is a substring of everything and would
// otherwise resolve to the first catalog item.
func Matches(userText string, catalogName string, lex *lexicon.Lexicon) bool {
	input := strings.ToLower(strings.TrimSpace(userText))
	item := strings.ToLower(strings.TrimSpace(catalogName))

	if input == "" || item == "" {
		return false
	}
	if strings.Contains(item, input) || strings.Contains(input, item) {
		return true
	}
	if lex == nil {
		return false
	}

	matched := false
	lex.Each(func(local string, canonical string) bool {
		if strings.Contains(input, local) && strings.Contains(item, canonical) {
			matched = true
			return false
		}
		return true
	})
	return matched
}
