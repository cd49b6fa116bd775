package prompt

import (
	"assistant-trigger/internal/model"
	pkgLog "assistant-trigger/pkg/log"
)

type usecase struct {
	cfg        model.ActionConfig
	promptPath string
	l          pkgLog.Logger
}

// New creates a prompt assembler that writes to promptPath.
func New(cfg model.ActionConfig, promptPath string, l pkgLog.Logger) UseCase {
	if promptPath == "" {
		promptPath = DefaultPromptPath
	}
	return &usecase{
		cfg:        cfg,
		promptPath: promptPath,
		l:          l,
	}
}
