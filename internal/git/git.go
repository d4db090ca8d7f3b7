package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/maxbolgarin/commitgen/internal/model"
	"github.com/maxbolgarin/commitgen/internal/model/interfaces"
	"github.com/maxbolgarin/errm"
)

var _ interfaces.Repository = (*Client)(nil)

// Client runs git commands against a single working directory.
// Index and object store locking is left entirely to git itself.
type Client struct {
	dir string
}

// New creates a client for the given working directory and verifies that it
// is inside a git repository. Returns model.ErrNotGitRepository otherwise.
func New(ctx context.Context, dir string) (*Client, error) {
	c := &Client{dir: dir}
	if _, err := c.run(ctx, "rev-parse", "--git-dir"); err != nil {
		return nil, model.ErrNotGitRepository
	}
	return c, nil
}

// StagedChanges returns the list of files staged in the index.
// Returns model.ErrNoStagedChanges when the staged set is empty.
func (c *Client) StagedChanges(ctx context.Context) ([]model.StagedChange, error) {
	out, err := c.run(ctx, "diff", "--cached", "--name-status")
	if err != nil {
		return nil, errm.Wrap(err, "get staged files")
	}
	changes := parseNameStatus(out)
	if len(changes) == 0 {
		return nil, model.ErrNoStagedChanges
	}
	return changes, nil
}

// StagedDiff returns the full staged diff text.
// Returns model.ErrNoStagedChanges when the diff is empty.
func (c *Client) StagedDiff(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "diff", "--cached", "--no-color")
	if err != nil {
		return "", errm.Wrap(err, "get staged diff")
	}
	if strings.TrimSpace(out) == "" {
		return "", model.ErrNoStagedChanges
	}
	return out, nil
}

// TopLevel returns the absolute path of the repository root
func (c *Client) TopLevel(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", errm.Wrap(err, "get repository root")
	}
	return strings.TrimSpace(out), nil
}

// GitDir returns the path of the .git directory
func (c *Client) GitDir(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", errm.Wrap(err, "get git dir")
	}
	return strings.TrimSpace(out), nil
}

// CurrentBranch returns the name of the checked out branch
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	out, err := c.run(ctx, "branch", "--show-current")
	if err != nil {
		return "", errm.Wrap(err, "get current branch")
	}
	return strings.TrimSpace(out), nil
}

// Commit creates a commit from the staged index with the given message
func (c *Client) Commit(ctx context.Context, message string) error {
	if _, err := c.run(ctx, "commit", "-m", message); err != nil {
		return errm.Wrap(err, "git commit")
	}
	return nil
}

// Push pushes the given branch to the remote
func (c *Client) Push(ctx context.Context, remote, branch string) error {
	if _, err := c.run(ctx, "push", remote, branch); err != nil {
		return errm.Wrap(err, "git push")
	}
	return nil
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	fullArgs := append([]string{"-C", c.dir}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", errm.Errorf("git %s: %s", args[0], msg)
	}

	return stdout.String(), nil
}

// parseNameStatus parses `git diff --name-status` output.
// Renames come as "R<score>\told\tnew", the new path is kept.
func parseNameStatus(out string) []model.StagedChange {
	var changes []model.StagedChange
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}

		kind := model.ChangeModified
		path := fields[1]
		switch fields[0][0] {
		case 'A':
			kind = model.ChangeAdded
		case 'D':
			kind = model.ChangeDeleted
		case 'R':
			kind = model.ChangeRenamed
			if len(fields) > 2 {
				path = fields[2]
			}
		}

		changes = append(changes, model.StagedChange{
			Path: path,
			Kind: kind,
		})
	}
	return changes
}
