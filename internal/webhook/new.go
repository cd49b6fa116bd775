package webhook

import (
	"assistant-trigger/internal/model"
	"assistant-trigger/internal/trigger"
	pkgLog "assistant-trigger/pkg/log"
)

// Dispatcher queues triggered work for background processing.
type Dispatcher interface {
	Submit(deliveryID string, t model.TriggerResult) (string, error)
}

type Handler struct {
	triggerUC  trigger.UseCase
	dispatcher Dispatcher
	security   *SecurityValidator
	l          pkgLog.Logger
}

func NewHandler(
	triggerUC trigger.UseCase,
	dispatcher Dispatcher,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		triggerUC:  triggerUC,
		dispatcher: dispatcher,
		security:   NewSecurityValidator(securityConfig),
		l:          l,
	}
}
