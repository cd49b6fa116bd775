package fetcher

import (
	pkgLog "assistant-trigger/pkg/log"
)

const (
	// MaxFiles caps how many changed files have their content fetched.
	MaxFiles = 20
	// fileFetchConcurrency bounds parallel file reads.
	fileFetchConcurrency = 5
)

type usecase struct {
	repo Repository
	l    pkgLog.Logger
}

// New creates a context fetcher backed by repo.
func New(repo Repository, l pkgLog.Logger) UseCase {
	return &usecase{
		repo: repo,
		l:    l,
	}
}
