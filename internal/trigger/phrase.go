package trigger

import "strings"

// containsPhrase reports whether text contains phrase, ignoring case. The
// mention form is tolerated: a phrase configured as "@claude" also matches a
// bare "claude", and "claude" matches "@claude".
//
// This is substring containment without word boundaries, so "@bot" also
// matches "@bottle".
func containsPhrase(text, phrase string) bool {
	if text == "" || phrase == "" {
		return false
	}
	lowerText := strings.ToLower(text)
	lowerPhrase := strings.ToLower(phrase)
	if strings.Contains(lowerText, lowerPhrase) {
		return true
	}

	bare := strings.TrimPrefix(lowerPhrase, "@")
	if bare == "" {
		return false
	}
	return strings.Contains(lowerText, bare)
}
