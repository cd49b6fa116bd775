package orchestrator

import (
	"time"

	"assistant-trigger/internal/fetcher"
	"assistant-trigger/internal/prompt"
	pkgLog "assistant-trigger/pkg/log"
)

type usecase struct {
	cfg       Config
	repo      Repository
	fetcher   fetcher.UseCase
	assembler prompt.UseCase
	l         pkgLog.Logger
	now       func() time.Time
}

// New creates the orchestrator.
func New(cfg Config, repo Repository, f fetcher.UseCase, a prompt.UseCase, l pkgLog.Logger) UseCase {
	return &usecase{
		cfg:       cfg,
		repo:      repo,
		fetcher:   f,
		assembler: a,
		l:         l,
		now:       time.Now,
	}
}
