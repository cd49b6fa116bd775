package webhook

import "time"

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string        // Shared secret compared with X-Gitlab-Token; empty disables the check
	AllowedIPs      []string      // IP whitelist (optional)
	RateLimitPerMin int           // Max requests per minute per source; 0 disables limiting
	DedupTTL        time.Duration // How long a delivery id is remembered
}

// ManualTriggerRequest is the body of POST /trigger.
type ManualTriggerRequest struct {
	ProjectID    int    `json:"projectId"`
	ResourceType string `json:"resourceType"`
	ResourceID   int    `json:"resourceId"`
	Prompt       string `json:"prompt"`
	TriggeredBy  *struct {
		Username string `json:"username"`
		Name     string `json:"name"`
	} `json:"triggeredBy"`
}
