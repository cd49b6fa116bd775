package prompt

import (
	"regexp"
	"strings"
)

var (
	markdownLink    = regexp.MustCompile(`(!?)\[([^\]]*)\]\(([^)\s]*)(?:\s+"[^"]*")?\)`)
	absoluteURL     = regexp.MustCompile(`^(?i)(?:[a-z][a-z0-9+.\-]*:|//)`)
	fencedCodeBlock = regexp.MustCompile("(?s)```([^\\n`]*)\\n(.*?)```")
)

// SanitizeMarkdown strips relative links down to their text and re-trims
// fenced code blocks. Absolute links are left alone.
func SanitizeMarkdown(body string) string {
	body = markdownLink.ReplaceAllStringFunc(body, func(m string) string {
		parts := markdownLink.FindStringSubmatch(m)
		target := parts[3]
		if absoluteURL.MatchString(target) {
			return m
		}
		return parts[2]
	})

	body = fencedCodeBlock.ReplaceAllStringFunc(body, func(m string) string {
		parts := fencedCodeBlock.FindStringSubmatch(m)
		lang := strings.TrimSpace(parts[1])
		code := strings.Trim(parts[2], "\n")
		code = strings.TrimRight(code, " \t\n")
		return "```" + lang + "\n" + code + "\n```"
	})

	return strings.TrimSpace(body)
}
