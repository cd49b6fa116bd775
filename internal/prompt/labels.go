package prompt

import (
	"fmt"

	"assistant-trigger/internal/model"
)

// EventLabels derives the event type label and a readable trigger
// description from the trigger type and the resource kind.
func EventLabels(c model.Context, cfg model.ActionConfig) (eventType, triggerContext string) {
	isMR := c.IsMergeRequest()
	ref := resourceRef(c)

	switch c.Trigger.TriggerType {
	case model.TriggerTypeComment:
		if isMR {
			return EventMRComment, fmt.Sprintf("merge request comment with '%s'", cfg.TriggerPhrase)
		}
		return EventIssueComment, fmt.Sprintf("issue comment with '%s'", cfg.TriggerPhrase)
	case model.TriggerTypeAssignee:
		if isMR {
			return EventMRAssigned, fmt.Sprintf("merge request %s assigned to '%s'", ref, cfg.AssigneeTrigger)
		}
		return EventIssueAssigned, fmt.Sprintf("issue %s assigned to '%s'", ref, cfg.AssigneeTrigger)
	case model.TriggerTypeLabel:
		if isMR {
			return EventMRLabeled, fmt.Sprintf("merge request %s labeled with '%s'", ref, cfg.LabelTrigger)
		}
		return EventIssueLabeled, fmt.Sprintf("issue %s labeled with '%s'", ref, cfg.LabelTrigger)
	case model.TriggerTypeDirect:
		return EventDirectTrigger, "direct invocation via API"
	default:
		return EventUnknown, "unknown trigger"
	}
}

// resourceRef renders the GitLab reference: !iid for merge requests, #iid for issues.
func resourceRef(c model.Context) string {
	switch {
	case c.MergeRequest != nil:
		return fmt.Sprintf("!%d", c.MergeRequest.IID)
	case c.Issue != nil:
		return fmt.Sprintf("#%d", c.Issue.IID)
	}
	return ""
}
