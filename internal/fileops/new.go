package fileops

import (
	pkgLog "assistant-trigger/pkg/log"
)

type usecase struct {
	repo Repository
	l    pkgLog.Logger
}

// New creates a new fileops use case.
func New(repo Repository, l pkgLog.Logger) UseCase {
	return &usecase{repo: repo, l: l}
}
