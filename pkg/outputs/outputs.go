// Package outputs writes named step outputs as a dotenv file that a later CI
// stage can load as variables.
package outputs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

// Output names.
const (
	ShouldTrigger   = "should_trigger"
	CommentID       = "comment_id"
	ProjectID       = "project_id"
	ResourceType    = "resource_type"
	ResourceID      = "resource_id"
	BranchName      = "branch_name"
	AllowedTools    = "allowed_tools"
	DisallowedTools = "disallowed_tools"
	PromptFile      = "prompt_file"
)

// Writer collects outputs and flushes them to a dotenv file.
type Writer struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// New returns a Writer for path. Existing outputs at path are kept and
// overwritten key by key on Flush.
func New(path string) *Writer {
	return &Writer{path: path, values: make(map[string]string)}
}

// Set records an output.
func (w *Writer) Set(key, value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.values[key] = value
}

// SetInt records an integer output.
func (w *Writer) SetInt(key string, value int) {
	w.Set(key, strconv.Itoa(value))
}

// Values returns a copy of the recorded outputs.
func (w *Writer) Values() map[string]string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[string]string, len(w.values))
	for k, v := range w.values {
		out[k] = v
	}
	return out
}

// Flush merges the recorded outputs into the dotenv file.
func (w *Writer) Flush() error {
	merged := make(map[string]string)
	if _, err := os.Stat(w.path); err == nil {
		existing, err := godotenv.Read(w.path)
		if err != nil {
			return fmt.Errorf("read outputs %s: %w", w.path, err)
		}
		merged = existing
	}
	for k, v := range w.Values() {
		merged[k] = v
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("create outputs dir: %w", err)
	}
	if err := godotenv.Write(merged, w.path); err != nil {
		return fmt.Errorf("write outputs %s: %w", w.path, err)
	}
	return nil
}
