package fetcher_test

import (
	"context"
	"encoding/base64"
	"sync"

	"assistant-trigger/pkg/gitlab"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockRepo struct {
	mu sync.Mutex

	project    gitlab.Project
	projectErr error
	issue      gitlab.Issue
	issueErr   error
	mr         gitlab.MergeRequest
	notes      []gitlab.Note
	notesErr   error
	commits    []gitlab.Commit
	diffs      []gitlab.Diff
	files      map[string]gitlab.EncodedFile
	fileErrs   map[string]error

	requestedFiles []string
	requestedRef   string
}

func (m *mockRepo) GetProject(ctx context.Context, projectID int) (gitlab.Project, error) {
	return m.project, m.projectErr
}
func (m *mockRepo) GetIssue(ctx context.Context, projectID, iid int) (gitlab.Issue, error) {
	return m.issue, m.issueErr
}
func (m *mockRepo) ListIssueNotes(ctx context.Context, projectID, iid int) ([]gitlab.Note, error) {
	return m.notes, m.notesErr
}
func (m *mockRepo) GetMergeRequest(ctx context.Context, projectID, iid int) (gitlab.MergeRequest, error) {
	return m.mr, nil
}
func (m *mockRepo) ListMergeRequestNotes(ctx context.Context, projectID, iid int) ([]gitlab.Note, error) {
	return m.notes, m.notesErr
}
func (m *mockRepo) ListMergeRequestCommits(ctx context.Context, projectID, iid int) ([]gitlab.Commit, error) {
	return m.commits, nil
}
func (m *mockRepo) GetMergeRequestChanges(ctx context.Context, projectID, iid int) ([]gitlab.Diff, error) {
	return m.diffs, nil
}
func (m *mockRepo) GetFile(ctx context.Context, projectID int, path, ref string) (gitlab.EncodedFile, error) {
	m.mu.Lock()
	m.requestedFiles = append(m.requestedFiles, path)
	m.requestedRef = ref
	m.mu.Unlock()

	if err := m.fileErrs[path]; err != nil {
		return gitlab.EncodedFile{}, err
	}
	if f, ok := m.files[path]; ok {
		return f, nil
	}
	return gitlab.EncodedFile{
		Path:     path,
		Encoding: "base64",
		Content:  base64.StdEncoding.EncodeToString([]byte("content of " + path)),
	}, nil
}
