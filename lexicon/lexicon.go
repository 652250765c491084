package lexicon

import "strings"

// Lexicon maps local-language product terms to their canonical English
// equivalents. It is read-only after construction; keys and values are
// lowercased so matching never depends on caller casing.
type Lexicon struct {
	entries map[string]string
}

func New(pairs map[string]string) *Lexicon {
	entries := make(map[string]string, len(pairs))
	for local, canonical := range pairs {
		local = strings.ToLower(strings.TrimSpace(local))
		canonical = strings.ToLower(strings.TrimSpace(canonical))
		if local == "" || canonical == "" {
			continue
		}
		entries[local] = canonical
	}
	return &Lexicon{entries: entries}
}

// Default returns the built-in Hinglish dictionary used by small Indian
// merchants to reference common grocery items.
func Default() *Lexicon {
	return New(map[string]string{
		"cheeni": "sugar",
		"doodh":  "milk",
		"tel":    "oil",
		"chawal": "rice",
		"sabun":  "soap",
		"atta":   "atta",
		"dahi":   "curd",
		"namak":  "salt",
	})
}

// Canonical returns the English equivalent for a local term, if present.
func (l *Lexicon) Canonical(local string) (string, bool) {
	canonical, ok := l.entries[strings.ToLower(strings.TrimSpace(local))]
	return canonical, ok
}

// Each calls fn for every (local, canonical) entry. Iteration order is not
// specified; callers must not depend on it.
func (l *Lexicon) Each(fn func(local string, canonical string) bool) {
	for local, canonical := range l.entries {
		if !fn(local, canonical) {
			return
		}
	}
}

func (l *Lexicon) Len() int {
	return len(l.entries)
}
