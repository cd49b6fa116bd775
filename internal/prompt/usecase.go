package prompt

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"assistant-trigger/internal/model"
)

// Assemble renders the prompt for c and writes it to the scratch file.
func (uc *usecase) Assemble(ctx context.Context, c model.Context, input AssembleInput) (AssembleOutput, error) {
	eventType, triggerContext := EventLabels(c, uc.cfg)
	allowed, disallowed := ResolveTools(uc.cfg.AllowedTools, uc.cfg.DisallowedTools)

	out := AssembleOutput{
		Prompt:          uc.render(c, input, eventType, triggerContext),
		EventType:       eventType,
		TriggerContext:  triggerContext,
		AllowedTools:    allowed,
		DisallowedTools: disallowed,
	}

	if input.SkipWrite {
		uc.l.Debugf(ctx, "Prompt for %s rendered (%d bytes), not written", eventType, len(out.Prompt))
		return out, nil
	}

	if err := writePrompt(uc.promptPath, out.Prompt); err != nil {
		return AssembleOutput{}, err
	}
	out.PromptPath = uc.promptPath
	uc.l.Infof(ctx, "Prompt for %s written to %s (%d bytes)", eventType, uc.promptPath, len(out.Prompt))
	return out, nil
}

func writePrompt(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePrompt, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePrompt, err)
	}
	return nil
}

func (uc *usecase) render(c model.Context, input AssembleInput, eventType, triggerContext string) string {
	var b strings.Builder
	isMR := c.IsMergeRequest()

	b.WriteString(promptHeader)
	b.WriteString("\n\n")

	b.WriteString(section("formatted_context", formatContext(c)))
	b.WriteString(section("mr_or_issue_body", formatBody(c)))
	b.WriteString(section("comments", formatNotes(c.Notes, input.CommentID)))
	if isMR {
		b.WriteString(section("commits", formatCommits(c.Commits)))
		b.WriteString(section("changed_files", formatChangedFiles(c.Diffs)))
		b.WriteString(section("diffs", formatDiffs(c.Diffs)))
		b.WriteString(section("file_contents", formatFiles(c.Files)))
	}

	fmt.Fprintf(&b, "<event_type>%s</event_type>\n", eventType)
	fmt.Fprintf(&b, "<is_mr>%t</is_mr>\n", isMR)
	fmt.Fprintf(&b, "<trigger_context>%s</trigger_context>\n", triggerContext)
	fmt.Fprintf(&b, "<repository>%s</repository>\n", c.Project.PathWithNamespace)
	if isMR {
		fmt.Fprintf(&b, "<mr_iid>%d</mr_iid>\n", c.ResourceIID())
	} else {
		fmt.Fprintf(&b, "<issue_iid>%d</issue_iid>\n", c.ResourceIID())
	}
	if input.CommentID != 0 {
		fmt.Fprintf(&b, "<comment_id>%d</comment_id>\n", input.CommentID)
	}
	fmt.Fprintf(&b, "<trigger_username>%s</trigger_username>\n", triggerUser(c.Trigger))
	fmt.Fprintf(&b, "<trigger_phrase>%s</trigger_phrase>\n", uc.cfg.TriggerPhrase)
	if tc := c.Trigger.TriggerComment; tc != nil {
		fmt.Fprintf(&b, "<trigger_comment>\n%s\n</trigger_comment>\n", SanitizeMarkdown(tc.Body))
	}
	if p := strings.TrimSpace(c.Trigger.DirectPrompt); p != "" {
		fmt.Fprintf(&b, "<direct_prompt>\n%s\n</direct_prompt>\n", p)
	}
	b.WriteString("\n")

	b.WriteString(commentToolInfo)
	b.WriteString("\n\n")

	b.WriteString(taskIntro)
	if input.Branch != "" {
		fmt.Fprintf(&b, branchReadyTemplate, input.Branch, uc.mergeRequestHint(c, input.Branch))
	} else {
		b.WriteString(noBranchTemplate)
	}
	b.WriteString(finalSteps)

	if ci := strings.TrimSpace(uc.cfg.CustomInstructions); ci != "" {
		b.WriteString("\n\nCUSTOM INSTRUCTIONS:\n")
		b.WriteString(uc.cfg.CustomInstructions)
	}
	b.WriteString("\n")
	return b.String()
}

// mergeRequestHint tells the assistant how to offer a merge request when it
// works on a fresh issue branch. Merge requests already have one.
func (uc *usecase) mergeRequestHint(c model.Context, branch string) string {
	if c.IsMergeRequest() {
		return "      - Push to the existing merge request source branch only.\n"
	}

	target := uc.cfg.BaseBranch
	if target == "" {
		target = c.Project.DefaultBranch
	}
	title := "Resolve #" + strconv.Itoa(c.ResourceIID())
	if c.Issue != nil && c.Issue.Title != "" {
		title = c.Issue.Title
	}

	q := url.Values{}
	q.Set("merge_request[source_branch]", branch)
	q.Set("merge_request[target_branch]", target)
	q.Set("merge_request[title]", title)
	link := fmt.Sprintf("%s/-/merge_requests/new?%s", c.Project.WebURL, q.Encode())

	return fmt.Sprintf("      - When you're done, provide a link to open a merge request from %s into %s:\n"+
		"        [Create a merge request](%s)\n", branch, target, link)
}

func triggerUser(t model.TriggerResult) string {
	if t.TriggeredBy == nil {
		return model.User{}.DisplayName()
	}
	return t.TriggeredBy.DisplayName()
}
