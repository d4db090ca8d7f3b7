package prompts

import (
	"fmt"
	"strings"

	"github.com/maxbolgarin/commitgen/internal/model"
)

// Builder provides methods to build prompts with a configured diff budget
type Builder struct {
	maxDiffLength int
}

// NewBuilder creates a new prompt builder.
// maxDiffLength is the character budget for diff text inside the prompt.
func NewBuilder(maxDiffLength int) *Builder {
	return &Builder{
		maxDiffLength: maxDiffLength,
	}
}

// BuildCommitPrompt creates a prompt for generating a conventional commit message
func (tb *Builder) BuildCommitPrompt(diff string, files []model.StagedChange, project model.ProjectType) model.Prompt {
	var projectContext string
	if project != model.ProjectUnknown {
		projectContext = fmt.Sprintf(projectContextTemplate, project)
	}

	userPrompt := fmt.Sprintf(commitUserPromptTemplate,
		projectContext,
		formatFileList(files),
		tb.TruncateDiff(diff),
	)

	return model.Prompt{
		SystemPrompt: commitSystemPrompt,
		UserPrompt:   userPrompt,
	}
}

// TruncateDiff cuts diff text to the configured budget and appends an
// explicit marker, so truncation never silently changes meaning.
func (tb *Builder) TruncateDiff(diff string) string {
	if len(diff) <= tb.maxDiffLength {
		return diff
	}
	return diff[:tb.maxDiffLength] + truncationMarker
}

func formatFileList(files []model.StagedChange) string {
	if len(files) == 0 {
		return "(not provided)"
	}
	var b strings.Builder
	for _, f := range files {
		b.WriteString("- ")
		b.WriteString(f.Path)
		b.WriteString(" (")
		b.WriteString(string(f.Kind))
		b.WriteString(")\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}
