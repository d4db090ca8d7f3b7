package prompts

import (
	"strings"
	"testing"

	"github.com/maxbolgarin/commitgen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateDiffShortInputUnchanged(t *testing.T) {
	b := NewBuilder(100)
	diff := "diff --git a/main.go b/main.go\n+fmt.Println(\"hi\")"
	assert.Equal(t, diff, b.TruncateDiff(diff))
}

func TestTruncateDiffNeverExceedsBudget(t *testing.T) {
	const budget = 50
	b := NewBuilder(budget)

	diff := strings.Repeat("+ added line\n", 100)
	got := b.TruncateDiff(diff)

	assert.LessOrEqual(t, len(got), budget+len(truncationMarker))
	assert.True(t, strings.HasSuffix(got, truncationMarker), "truncation must be marked explicitly")
	assert.Equal(t, diff[:budget], strings.TrimSuffix(got, truncationMarker))
}

func TestTruncateDiffExactBudget(t *testing.T) {
	b := NewBuilder(10)
	diff := strings.Repeat("x", 10)
	assert.Equal(t, diff, b.TruncateDiff(diff), "diff at the budget must not be marked")
}

func TestBuildCommitPrompt(t *testing.T) {
	b := NewBuilder(8000)

	files := []model.StagedChange{
		{Path: "app.js", Kind: model.ChangeModified},
		{Path: "lib/util.js", Kind: model.ChangeAdded},
	}
	prompt := b.BuildCommitPrompt("+console.log('hello')", files, model.ProjectNode)

	require.NotEmpty(t, prompt.SystemPrompt)
	assert.Contains(t, prompt.SystemPrompt, "Conventional Commits")
	assert.Contains(t, prompt.UserPrompt, "This is a node project")
	assert.Contains(t, prompt.UserPrompt, "app.js (modified)")
	assert.Contains(t, prompt.UserPrompt, "lib/util.js (added)")
	assert.Contains(t, prompt.UserPrompt, "+console.log('hello')")
}

func TestBuildCommitPromptUnknownProject(t *testing.T) {
	b := NewBuilder(8000)
	prompt := b.BuildCommitPrompt("+x", nil, model.ProjectUnknown)

	assert.NotContains(t, prompt.UserPrompt, "project.")
	assert.Contains(t, prompt.UserPrompt, "(not provided)")
}
