package interfaces

import (
	"context"

	"github.com/maxbolgarin/commitgen/internal/model"
)

// Repository defines the interface for the local version control system
type Repository interface {
	// Staged state
	StagedChanges(ctx context.Context) ([]model.StagedChange, error)
	StagedDiff(ctx context.Context) (string, error)

	// Repository info
	TopLevel(ctx context.Context) (string, error)
	CurrentBranch(ctx context.Context) (string, error)

	// Mutations
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context, remote, branch string) error
}

// AIAgent defines the interface for generating commit messages from diffs
type AIAgent interface {
	GenerateCommitMessage(ctx context.Context, diff string, files []model.StagedChange, project model.ProjectType) (string, error)
}

// AgentAPI defines the interface for calling LLM AI models
type AgentAPI interface {
	CallAPI(ctx context.Context, req model.APIRequest) (model.APIResponse, error)
}

// PromptBuilder defines the interface for building prompts for AI agents
type PromptBuilder interface {
	BuildCommitPrompt(diff string, files []model.StagedChange, project model.ProjectType) model.Prompt
}
