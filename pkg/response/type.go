package response

// Result is the success body of the webhook and trigger endpoints.
type Result struct {
	Message      string `json:"message"`
	TriggerType  string `json:"triggerType,omitempty"`
	ResourceType string `json:"resourceType,omitempty"`
	ResourceID   *int   `json:"resourceId,omitempty"`
	JobID        string `json:"jobId,omitempty"`
}

// ErrorBody is the failure body.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
