package committer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maxbolgarin/commitgen/internal/model"
	"github.com/maxbolgarin/errm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	commits []string
	pushes  []string
	branch  string

	commitErr error
	pushErr   error
}

func (f *fakeRepo) StagedChanges(ctx context.Context) ([]model.StagedChange, error) { return nil, nil }
func (f *fakeRepo) StagedDiff(ctx context.Context) (string, error)                  { return "", nil }
func (f *fakeRepo) TopLevel(ctx context.Context) (string, error)                    { return "", nil }

func (f *fakeRepo) CurrentBranch(ctx context.Context) (string, error) {
	return f.branch, nil
}

func (f *fakeRepo) Commit(ctx context.Context, message string) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.commits = append(f.commits, message)
	return nil
}

func (f *fakeRepo) Push(ctx context.Context, remote, branch string) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushes = append(f.pushes, remote+"/"+branch)
	return nil
}

var testMsg = model.CommitMessage{
	Type:        model.TypeFeat,
	Scope:       "app",
	Description: "add hello world console log",
}

func TestDryRunDoesNotCommit(t *testing.T) {
	repo := &fakeRepo{}
	var out bytes.Buffer
	c := NewWithIO(repo, "origin", strings.NewReader(""), &out)

	err := c.Run(context.Background(), testMsg, Options{Mode: model.ModeDryRun})
	require.NoError(t, err)

	assert.Empty(t, repo.commits)
	assert.Empty(t, repo.pushes)
	assert.Contains(t, out.String(), "feat(app): add hello world console log")
	assert.Contains(t, out.String(), "No commit made")
}

func TestInteractiveConfirmDefaultYes(t *testing.T) {
	repo := &fakeRepo{branch: "main"}
	var out bytes.Buffer
	c := NewWithIO(repo, "origin", strings.NewReader("\n"), &out)

	err := c.Run(context.Background(), testMsg, Options{Mode: model.ModeInteractive})
	require.NoError(t, err)

	require.Len(t, repo.commits, 1)
	assert.Equal(t, "feat(app): add hello world console log", repo.commits[0])
	assert.Empty(t, repo.pushes)
}

func TestInteractiveDeclineLeavesIndexStaged(t *testing.T) {
	repo := &fakeRepo{}
	var out bytes.Buffer
	c := NewWithIO(repo, "origin", strings.NewReader("n\n"), &out)

	err := c.Run(context.Background(), testMsg, Options{Mode: model.ModeInteractive})
	require.NoError(t, err, "a declined confirmation is not an error")

	assert.Empty(t, repo.commits)
	assert.Contains(t, out.String(), "Commit cancelled")
}

func TestInteractiveAssumeYesSkipsPrompt(t *testing.T) {
	repo := &fakeRepo{}
	var out bytes.Buffer
	c := NewWithIO(repo, "origin", strings.NewReader(""), &out)

	err := c.Run(context.Background(), testMsg, Options{Mode: model.ModeInteractive, AssumeYes: true})
	require.NoError(t, err)

	require.Len(t, repo.commits, 1)
	assert.NotContains(t, out.String(), "[Y/n]")
}

func TestCommitAndPush(t *testing.T) {
	repo := &fakeRepo{branch: "main"}
	var out bytes.Buffer
	c := NewWithIO(repo, "origin", strings.NewReader("yes\n"), &out)

	err := c.Run(context.Background(), testMsg, Options{Mode: model.ModeInteractive, Push: true})
	require.NoError(t, err)

	require.Len(t, repo.commits, 1)
	assert.Equal(t, []string{"origin/main"}, repo.pushes)
	assert.Contains(t, out.String(), "Push successful")
}

func TestPushFailureDoesNotFailRun(t *testing.T) {
	repo := &fakeRepo{branch: "main", pushErr: errm.New("remote unreachable")}
	var out bytes.Buffer
	c := NewWithIO(repo, "origin", strings.NewReader("\n"), &out)

	err := c.Run(context.Background(), testMsg, Options{Mode: model.ModeInteractive, Push: true})
	require.NoError(t, err, "push is best-effort, the commit stays")

	require.Len(t, repo.commits, 1)
	assert.Contains(t, out.String(), "Push failed")
}

func TestCommitFailureIsFatal(t *testing.T) {
	repo := &fakeRepo{commitErr: errm.New("index locked")}
	var out bytes.Buffer
	c := NewWithIO(repo, "origin", strings.NewReader("\n"), &out)

	err := c.Run(context.Background(), testMsg, Options{Mode: model.ModeInteractive})
	assert.Error(t, err)
}

func TestAutoModeWritesMessageFile(t *testing.T) {
	repo := &fakeRepo{}
	var out bytes.Buffer
	c := NewWithIO(repo, "origin", strings.NewReader(""), &out)

	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	err := c.Run(context.Background(), testMsg, Options{Mode: model.ModeAuto, MessageFile: path})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "feat(app): add hello world console log\n", string(content))
	assert.Empty(t, repo.commits, "auto mode leaves committing to git itself")
}

func TestAutoModeWithoutFilePrintsMessage(t *testing.T) {
	repo := &fakeRepo{}
	var out bytes.Buffer
	c := NewWithIO(repo, "origin", strings.NewReader(""), &out)

	err := c.Run(context.Background(), testMsg, Options{Mode: model.ModeAuto})
	require.NoError(t, err)
	assert.Equal(t, "feat(app): add hello world console log\n", out.String())
}
