package trigger

import (
	"strings"

	"assistant-trigger/internal/model"
)

var (
	botSuffixes = []string{"bot", "[bot]", "service", "automation"}
	botPrefixes = []string{"gitlab-", "github-"}
)

// IsBot reports whether the user looks like an automation account, matching
// either the username or the display name.
func IsBot(user model.User) bool {
	return looksLikeBot(user.Username) || looksLikeBot(user.Name)
}

func looksLikeBot(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	for _, s := range botSuffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	for _, p := range botPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
