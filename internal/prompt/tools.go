package prompt

import "strings"

// ResolveTools merges the caller's tool lists into the base lists and
// returns both comma-joined. A tool the caller allows is removed from the base
// deny list before the caller's own denials are appended.
func ResolveTools(allowed, disallowed []string) (allowedTools, disallowedTools string) {
	allow := make([]string, 0, len(baseAllowedTools)+len(allowed))
	allow = append(allow, baseAllowedTools...)
	allow = append(allow, allowed...)

	explicit := make(map[string]struct{}, len(allowed))
	for _, t := range allowed {
		explicit[t] = struct{}{}
	}

	deny := make([]string, 0, len(baseDisallowedTools)+len(disallowed))
	for _, t := range baseDisallowedTools {
		if _, ok := explicit[t]; !ok {
			deny = append(deny, t)
		}
	}
	deny = append(deny, disallowed...)

	return strings.Join(allow, ","), strings.Join(deny, ",")
}
