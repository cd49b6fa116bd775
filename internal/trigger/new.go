package trigger

import (
	"assistant-trigger/internal/model"
	pkgLog "assistant-trigger/pkg/log"
)

type usecase struct {
	cfg model.ActionConfig
	l   pkgLog.Logger
}

// New creates a trigger UseCase bound to cfg.
func New(cfg model.ActionConfig, l pkgLog.Logger) UseCase {
	return &usecase{
		cfg: cfg,
		l:   l,
	}
}
