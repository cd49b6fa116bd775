package prompt

import (
	"context"

	"assistant-trigger/internal/model"
)

// UseCase turns a fetched Context into the assistant's instruction payload.
type UseCase interface {
	// Assemble renders the prompt, resolves tool permissions and writes the
	// prompt to the scratch file unless input.SkipWrite is set. A failed write
	// fails the call.
	Assemble(ctx context.Context, c model.Context, input AssembleInput) (AssembleOutput, error)
}
