package orchestrator_test

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"assistant-trigger/internal/model"
	"assistant-trigger/internal/orchestrator"
	"assistant-trigger/internal/prompt"
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

type noteCall struct {
	kind   string // issue or merge_request
	iid    int
	noteID int
	body   string
}

type branchCall struct {
	branch string
	ref    string
}

type mockRepo struct {
	mu sync.Mutex

	created  []noteCall
	updated  []noteCall
	branches []branchCall
	triggers []gitlab.PipelineTriggerInput

	createErr   error
	branchErr   error
	pipelineErr error
	pipeline    gitlab.Pipeline
}

func (m *mockRepo) CreateIssueNote(ctx context.Context, projectID, iid int, body string) (gitlab.Note, error) {
	return m.create("issue", iid, body)
}

func (m *mockRepo) CreateMergeRequestNote(ctx context.Context, projectID, iid int, body string) (gitlab.Note, error) {
	return m.create("merge_request", iid, body)
}

func (m *mockRepo) create(kind string, iid int, body string) (gitlab.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return gitlab.Note{}, m.createErr
	}
	m.created = append(m.created, noteCall{kind: kind, iid: iid, body: body})
	return gitlab.Note{ID: 555, Body: body}, nil
}

func (m *mockRepo) UpdateIssueNote(ctx context.Context, projectID, iid, noteID int, body string) (gitlab.Note, error) {
	return m.update("issue", iid, noteID, body)
}

func (m *mockRepo) UpdateMergeRequestNote(ctx context.Context, projectID, iid, noteID int, body string) (gitlab.Note, error) {
	return m.update("merge_request", iid, noteID, body)
}

func (m *mockRepo) update(kind string, iid, noteID int, body string) (gitlab.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updated = append(m.updated, noteCall{kind: kind, iid: iid, noteID: noteID, body: body})
	return gitlab.Note{ID: noteID, Body: body}, nil
}

func (m *mockRepo) CreateBranch(ctx context.Context, projectID int, branch, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.branchErr != nil {
		return m.branchErr
	}
	m.branches = append(m.branches, branchCall{branch: branch, ref: ref})
	return nil
}

func (m *mockRepo) TriggerPipeline(ctx context.Context, projectID int, input gitlab.PipelineTriggerInput) (gitlab.Pipeline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pipelineErr != nil {
		return gitlab.Pipeline{}, m.pipelineErr
	}
	m.triggers = append(m.triggers, input)
	return m.pipeline, nil
}

type mockFetcher struct {
	ctx model.Context
	err error
}

func (m *mockFetcher) Fetch(ctx context.Context, projectID int, trigger model.TriggerResult) (model.Context, error) {
	if m.err != nil {
		return model.Context{}, m.err
	}
	c := m.ctx
	c.Trigger = trigger
	return c, nil
}

type mockAssembler struct {
	input prompt.AssembleInput
	err   error
}

func (m *mockAssembler) Assemble(ctx context.Context, c model.Context, input prompt.AssembleInput) (prompt.AssembleOutput, error) {
	m.input = input
	if m.err != nil {
		return prompt.AssembleOutput{}, m.err
	}
	return prompt.AssembleOutput{
		Prompt:          "prompt",
		PromptPath:      "/tmp/prompt.txt",
		AllowedTools:    "Edit,Read",
		DisallowedTools: "WebSearch",
	}, nil
}

type mockOutputs struct {
	values   map[string]string
	flushErr error
	flushed  bool
}

func (m *mockOutputs) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
}

func (m *mockOutputs) SetInt(key string, value int) {
	m.Set(key, strconv.Itoa(value))
}

func (m *mockOutputs) Flush() error {
	m.flushed = true
	return m.flushErr
}

type mockUseCase struct {
	mu     sync.Mutex
	inputs []orchestrator.RunInput
	block  chan struct{}
}

var errBoom = errors.New("boom")

func (m *mockUseCase) Run(ctx context.Context, input orchestrator.RunInput) (orchestrator.RunOutput, error) {
	if m.block != nil {
		<-m.block
	}
	m.mu.Lock()
	m.inputs = append(m.inputs, input)
	m.mu.Unlock()

	if input.Trigger.TriggeredBy != nil && input.Trigger.TriggeredBy.Username == "fail" {
		return orchestrator.RunOutput{}, errBoom
	}
	return orchestrator.RunOutput{ResourceType: input.Trigger.ResourceType, ResourceID: *input.Trigger.ResourceID}, nil
}
