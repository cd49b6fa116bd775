package webhook

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"assistant-trigger/internal/model"
	"assistant-trigger/internal/trigger"
	pkgLog "assistant-trigger/pkg/log"
	pkgResponse "assistant-trigger/pkg/response"
)

const maxPayloadBytes = 5 << 20

// HandleWebhook processes GitLab webhook events. Classification happens
// before the response. Triggered work is queued and not awaited.
func (h *Handler) HandleWebhook(c *gin.Context) {
	deliveryID := c.GetHeader(HeaderDelivery)
	ctx := context.WithValue(c.Request.Context(), pkgLog.DeliveryIDKey, deliveryID)

	if !h.authorize(ctx, c) {
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPayloadBytes))
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.BadRequest(c, err)
		return
	}

	if h.security.SeenDelivery(deliveryID) {
		h.l.Infof(ctx, "Duplicate delivery %s ignored", deliveryID)
		pkgResponse.OK(c, pkgResponse.Result{Message: "Duplicate delivery ignored"})
		return
	}

	event, err := ParseGitLabEvent(body)
	if errors.Is(err, ErrUnsupportedEvent) {
		h.l.Infof(ctx, "Ignoring %s: %v", c.GetHeader(HeaderEvent), err)
		pkgResponse.OK(c, pkgResponse.Result{Message: "Event ignored"})
		return
	}
	if err != nil {
		h.l.Warnf(ctx, "Failed to parse GitLab event: %v", err)
		h.security.ReleaseDelivery(deliveryID)
		pkgResponse.BadRequest(c, err)
		return
	}

	result := h.triggerUC.Evaluate(ctx, event)
	if !result.ShouldTrigger {
		pkgResponse.OK(c, pkgResponse.Result{Message: "No trigger detected"})
		return
	}

	if !h.submit(ctx, c, deliveryID, result) {
		h.security.ReleaseDelivery(deliveryID)
	}
}

// HandleManualTrigger starts the assistant on a resource named by the caller.
func (h *Handler) HandleManualTrigger(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.authorize(ctx, c) {
		return
	}

	var req ManualTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		pkgResponse.BadRequest(c, fmt.Errorf("%w: %v", ErrMalformedPayload, err))
		return
	}

	input := trigger.DirectInput{
		ProjectID:    req.ProjectID,
		ResourceType: model.ResourceType(req.ResourceType),
		ResourceID:   req.ResourceID,
		Prompt:       req.Prompt,
	}
	if req.TriggeredBy != nil {
		input.TriggeredBy = &model.User{Username: req.TriggeredBy.Username, Name: req.TriggeredBy.Name}
	}
	if err := input.Validate(); err != nil {
		pkgResponse.BadRequest(c, err)
		return
	}

	result := h.triggerUC.ValidateDirectTrigger(ctx, input)
	h.submit(ctx, c, "", result)
}

// authorize runs the IP, token and rate limit checks and writes the failure
// response itself.
func (h *Handler) authorize(ctx context.Context, c *gin.Context) bool {
	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Webhook rejected: %v", err)
		pkgResponse.Forbidden(c)
		return false
	}

	if err := h.security.ValidateGitLabToken(c.GetHeader(HeaderToken)); err != nil {
		h.l.Warnf(ctx, "GitLab token verification failed: %v", err)
		pkgResponse.Unauthorized(c)
		return false
	}

	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		pkgResponse.TooManyRequests(c)
		return false
	}
	return true
}

// submit queues result and writes the response. It reports whether the job
// was accepted.
func (h *Handler) submit(ctx context.Context, c *gin.Context, deliveryID string, result model.TriggerResult) bool {
	jobID, err := h.dispatcher.Submit(deliveryID, result)
	if err != nil {
		h.l.Errorf(ctx, "Failed to queue %s trigger: %v", result.TriggerType, err)
		pkgResponse.ServiceUnavailable(c, err)
		return false
	}

	h.l.Infof(ctx, "Queued job %s: %s trigger on %s %d", jobID, result.TriggerType, result.ResourceType, derefInt(result.ResourceID))
	pkgResponse.OK(c, pkgResponse.Result{
		Message:      "Trigger accepted",
		TriggerType:  string(result.TriggerType),
		ResourceType: string(result.ResourceType),
		ResourceID:   result.ResourceID,
		JobID:        jobID,
	})
	return true
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
